/* ============================================================= *\
   engine.go

   The propagation engine: per-AS RIBs and inbound message queues,
   iterated UP/ACROSS/DOWN until the total installed-route count is
   stable. Ported in meaning from BGPSimulator in the original
   bgp_simulator.cpp.
\* ============================================================= */

package sim

import (
	"fmt"

	"github.com/bgp-policy-sim/bgpsim/internal/asgraph"
	"github.com/bgp-policy-sim/bgpsim/internal/rank"
)

// MaxIterations is the hard convergence cap. Hitting it without a
// stable total RIB size is treated as a cycle-suspicion diagnostic.
const MaxIterations = 20

// ErrNotConverged is returned by Propagate when MaxIterations is
// exhausted without reaching a fixed point.
var ErrNotConverged = fmt.Errorf("propagation did not converge after %d iterations - possible routing cycle", MaxIterations)

// Engine holds the graph, the per-AS RIBs, the message queues, the
// ROV set, and the rank table computed at the start of Propagate.
type Engine struct {
	graph       *asgraph.Graph
	rovEnabled  map[asgraph.ASN]struct{}
	ribs        map[asgraph.ASN]map[string]*Route
	queues      map[asgraph.ASN]map[string][]*Route
	ranks       *rank.Table
	iterations  int
}

// New returns an Engine bound to g. ROV is disabled for every AS until
// SetROVASNs is called.
func New(g *asgraph.Graph) *Engine {
	return &Engine{
		graph:      g,
		rovEnabled: make(map[asgraph.ASN]struct{}),
		ribs:       make(map[asgraph.ASN]map[string]*Route),
		queues:     make(map[asgraph.ASN]map[string][]*Route),
	}
}

// SetROVASNs replaces the ROV-enabled set.
func (e *Engine) SetROVASNs(asns []asgraph.ASN) {
	e.rovEnabled = make(map[asgraph.ASN]struct{}, len(asns))
	for _, asn := range asns {
		e.rovEnabled[asn] = struct{}{}
	}
}

// SeedAnnouncement registers origin as a known AS and installs a RIB
// entry whose route is (prefix, [origin], from-customer, rovInvalid).
// The from-customer class gives the origin unrestricted export
// rights, modeling that the AS owns the prefix.
func (e *Engine) SeedAnnouncement(origin asgraph.ASN, prefix string, rovInvalid bool) {
	e.graph.Register(origin)
	route := &Route{
		Prefix:     prefix,
		ASPath:     []asgraph.ASN{origin},
		Learned:    LearnedFromCustomer,
		ROVInvalid: rovInvalid,
	}
	e.installUnconditionally(origin, route)
}

func (e *Engine) installUnconditionally(asn asgraph.ASN, route *Route) {
	rib, ok := e.ribs[asn]
	if !ok {
		rib = make(map[string]*Route)
		e.ribs[asn] = rib
	}
	rib[route.Prefix] = route
}

// RIBEntry is one exported (ASN, prefix) -> Route row.
type RIBEntry struct {
	ASN    asgraph.ASN
	Route  *Route
}

// RIBCount returns the total number of installed (ASN, prefix) cells.
func (e *Engine) RIBCount() int {
	total := 0
	for _, rib := range e.ribs {
		total += len(rib)
	}
	return total
}

// AllRIBEntries returns every installed RIB entry, order unspecified.
func (e *Engine) AllRIBEntries() []RIBEntry {
	entries := make([]RIBEntry, 0, e.RIBCount())
	for asn, rib := range e.ribs {
		for _, route := range rib {
			entries = append(entries, RIBEntry{ASN: asn, Route: route})
		}
	}
	return entries
}

// Ranks returns the rank table computed during the last Propagate
// call, or nil if Propagate has not run yet.
func (e *Engine) Ranks() *rank.Table {
	return e.ranks
}

// Iterations returns how many UP/ACROSS/DOWN rounds the last
// Propagate call took.
func (e *Engine) Iterations() int {
	return e.iterations
}

// canExport implements the Gao-Rexford export policy table from
// spec.md §4.4.2.
func canExport(learned LearnedFrom, exportRelationship asgraph.Relation) bool {
	switch learned {
	case LearnedFromCustomer:
		return true
	case LearnedFromPeer, LearnedFromProvider:
		return exportRelationship == asgraph.ProviderToCustomer
	default:
		return false
	}
}

// send implements spec.md §4.4.3: loop guard, export policy, then
// enqueue a route with the receiver prepended and its learned-from
// class rewritten.
func (e *Engine) send(receiver asgraph.ASN, route *Route, relFromSenderToReceiver asgraph.Relation) {
	if route.contains(receiver) {
		return
	}
	if !canExport(route.Learned, relFromSenderToReceiver) {
		return
	}

	sent := route.withPrependedHop(receiver, relFromSenderToReceiver)

	byPrefix, ok := e.queues[receiver]
	if !ok {
		byPrefix = make(map[string][]*Route)
		e.queues[receiver] = byPrefix
	}
	byPrefix[sent.Prefix] = append(byPrefix[sent.Prefix], sent)
}

// betterRoute is the deterministic, total decision function from
// spec.md §4.4.4.
func (e *Engine) betterRoute(candidate, incumbent *Route, asn asgraph.ASN) bool {
	if _, rovOn := e.rovEnabled[asn]; rovOn && candidate.ROVInvalid != incumbent.ROVInvalid {
		return !candidate.ROVInvalid
	}

	candidatePref := candidate.Learned.preference()
	incumbentPref := incumbent.Learned.preference()
	if candidatePref != incumbentPref {
		return candidatePref > incumbentPref
	}

	if len(candidate.ASPath) != len(incumbent.ASPath) {
		return len(candidate.ASPath) < len(incumbent.ASPath)
	}

	return candidate.nextHop() < incumbent.nextHop()
}

// process consumes every queued candidate for asn, installing better
// routes per spec.md §4.4.4, then clears the queue.
func (e *Engine) process(asn asgraph.ASN) {
	byPrefix, ok := e.queues[asn]
	if !ok {
		return
	}

	_, rovOn := e.rovEnabled[asn]
	for prefix, candidates := range byPrefix {
		for _, candidate := range candidates {
			if rovOn && candidate.ROVInvalid {
				continue
			}

			rib, ok := e.ribs[asn]
			if !ok {
				rib = make(map[string]*Route)
				e.ribs[asn] = rib
			}

			incumbent, present := rib[prefix]
			if !present {
				rib[prefix] = candidate
				continue
			}
			if e.betterRoute(candidate, incumbent, asn) {
				rib[prefix] = candidate
			}
		}
	}

	delete(e.queues, asn)
}

// sendRIBOver sends every route currently in asn's RIB to every
// neighbor reached through a relationship matching want, as seen from
// asn.
func (e *Engine) sendRIBOver(asn asgraph.ASN, want asgraph.Relation) {
	rib, ok := e.ribs[asn]
	if !ok {
		return
	}
	for _, route := range rib {
		for _, n := range e.graph.Neighbors(asn) {
			if n.Relation == want {
				e.send(n.ASN, route, n.Relation)
			}
		}
	}
}

// Propagate runs the three-phase UP/ACROSS/DOWN iteration to a fixed
// point, per spec.md §4.4.5-§4.4.6. It returns ErrNotConverged if
// MaxIterations is exhausted first.
func (e *Engine) Propagate() error {
	e.ranks = rank.Assign(e.graph)
	maxRank := e.ranks.MaxRank()

	prevTotal := 0
	for iteration := 1; ; iteration++ {
		e.iterations = iteration

		// Phase UP: customers -> providers.
		for r := 0; r <= maxRank; r++ {
			for _, asn := range e.ranks.RankToASNs[r] {
				e.sendRIBOver(asn, asgraph.CustomerToProvider)
			}
			if r+1 <= maxRank {
				for _, asn := range e.ranks.RankToASNs[r+1] {
					e.process(asn)
				}
			}
		}

		// Phase ACROSS: peers <-> peers, single low-to-high sweep.
		for r := 0; r <= maxRank; r++ {
			for _, asn := range e.ranks.RankToASNs[r] {
				e.sendRIBOver(asn, asgraph.PeerToPeer)
			}
			for _, asn := range e.ranks.RankToASNs[r] {
				e.process(asn)
			}
		}

		// Phase DOWN: providers -> customers.
		for r := maxRank; r >= 0; r-- {
			for _, asn := range e.ranks.RankToASNs[r] {
				e.sendRIBOver(asn, asgraph.ProviderToCustomer)
			}
			if r-1 >= 0 {
				for _, asn := range e.ranks.RankToASNs[r-1] {
					e.process(asn)
				}
			}
		}

		total := e.RIBCount()
		if total == prevTotal {
			return nil
		}
		prevTotal = total

		if iteration >= MaxIterations {
			return ErrNotConverged
		}
	}
}
