/* ============================================================= *\
   components.go

   Input-sanity diagnostic: the number of weakly-connected components
   of the AS graph, ignoring relationship direction/label. A
   relationships file that unexpectedly encodes several disjoint
   subgraphs is a common CAIDA ingestion mistake (the as-rel format
   has no requirement that the graph be connected).

   Grounded on rib_analysis.go's build_merge_overlays and
   overlays_processing.go's process_overlays, which both feed pairs
   into graph.New()/Add_edge and walk
   Set_iterator/Next_connected_component/Connected_component to
   compute connected components.
\* ============================================================= */

package diag

import (
	"strconv"

	graph "github.com/Emeline-1/basic_graph"

	"github.com/bgp-policy-sim/bgpsim/internal/asgraph"
)

// ComponentReport summarizes the AS graph's connectivity.
type ComponentReport struct {
	ComponentCount int
	LargestSize    int
}

// ConnectedComponents builds an undirected, unlabeled graph.Graph
// mirroring g's adjacency (dropping relationship labels, since
// basic_graph's Add_edge only knows vertices) and returns the number
// of its connected components and the size of the largest one.
func ConnectedComponents(g *asgraph.Graph) ComponentReport {
	bg := graph.New()

	seen := make(map[[2]asgraph.ASN]struct{})
	for _, asn := range g.AllASes() {
		bg.Add_edge(strconv.Itoa(int(asn)), strconv.Itoa(int(asn))) // register isolated ASes too
		for _, n := range g.Neighbors(asn) {
			key := edgeKey(asn, n.ASN)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			bg.Add_edge(strconv.Itoa(int(asn)), strconv.Itoa(int(n.ASN)))
		}
	}

	report := ComponentReport{}
	bg.Set_iterator()
	for bg.Next_connected_component() {
		component := bg.Connected_component()
		report.ComponentCount++
		if len(component) > report.LargestSize {
			report.LargestSize = len(component)
		}
	}
	return report
}

func edgeKey(a, b asgraph.ASN) [2]asgraph.ASN {
	if a <= b {
		return [2]asgraph.ASN{a, b}
	}
	return [2]asgraph.ASN{b, a}
}
