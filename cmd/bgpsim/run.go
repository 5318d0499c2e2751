/* ============================================================= *\
   run.go

   "run" subcommand: load a relationships file and an announcements
   file, optionally a ROV ASNs file, propagate to a fixed point, and
   write ribs.csv. Ported in meaning from main.cpp's main().
\* ============================================================= */

package main

import (
	"errors"
	"log"

	"github.com/bgp-policy-sim/bgpsim/internal/diag"
	"github.com/bgp-policy-sim/bgpsim/internal/ioadapters"
	"github.com/bgp-policy-sim/bgpsim/internal/sim"
)

// simulate loads relationshipsFile/announcementsFile/rovASNsFile,
// propagates to a fixed point, and writes outputFile. If stats is
// true it logs graph/rank/convergence diagnostics; if coneReport is
// non-empty it additionally writes a customer-cone-size report there.
func simulate(relationshipsFile, announcementsFile, rovASNsFile, outputFile string, stats bool, coneReport string) error {
	log.Println("Loading AS relationships from", relationshipsFile, "...")
	loaded, err := ioadapters.LoadRelationships(relationshipsFile)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d relationships (%d skipped) for %d ASNs\n",
		loaded.LinesLoaded, loaded.LinesSkipped, loaded.Graph.Len())

	g := loaded.Graph
	if stats {
		s := g.Stats()
		log.Printf("Graph stats - ASNs: %d, Customer rels: %d, Peer rels: %d, Provider rels: %d\n",
			s.ASes, s.CustomerRelationships, s.PeerRelationships, s.ProviderRelationships)
		cc := diag.ConnectedComponents(g)
		log.Printf("Connected components: %d (largest: %d ASNs)\n", cc.ComponentCount, cc.LargestSize)
	}

	if g.HasCustomerProviderCycle() {
		return errors.New("customer-provider cycle detected in AS relationships")
	}

	engine := sim.New(g)

	if rovASNsFile != "" {
		log.Println("Loading ROV ASNs from", rovASNsFile, "...")
		rovASNs := ioadapters.LoadROVASNs(rovASNsFile)
		engine.SetROVASNs(rovASNs)
		log.Printf("Loaded %d ROV-enabled ASes\n", len(rovASNs))
	}

	log.Println("Loading announcements from", announcementsFile, "...")
	announcements, err := ioadapters.LoadAnnouncements(announcementsFile)
	if err != nil {
		return err
	}
	for _, a := range announcements {
		engine.SeedAnnouncement(a.Origin, a.Prefix, a.ROVInvalid)
	}
	log.Printf("Loaded %d announcements\n", len(announcements))

	log.Println("Starting BGP propagation...")
	if err := engine.Propagate(); err != nil {
		return err
	}
	log.Printf("Converged after %d iterations. Total RIB entries: %d\n",
		engine.Iterations(), engine.RIBCount())

	if err := ioadapters.WriteRIBCSV(outputFile, engine.AllRIBEntries()); err != nil {
		return err
	}

	if coneReport != "" {
		sizes := diag.CustomerCones(g)
		if err := diag.WriteConeReport(coneReport, sizes); err != nil {
			return err
		}
		log.Println("Wrote customer cone report to", coneReport)
	}

	return nil
}
