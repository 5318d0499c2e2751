/* ============================================================= *\
   route.go

   Route representation. Routes are immutable once installed;
   forwarding produces a new Route with a prepended ASN and a
   rewritten learned-from class. The engine shares *Route by pointer
   among RIB entries and queues, never mutating one after
   construction.
\* ============================================================= */

package sim

import "github.com/bgp-policy-sim/bgpsim/internal/asgraph"

// LearnedFrom classifies the relationship a route was learned over.
type LearnedFrom int

const (
	LearnedFromCustomer LearnedFrom = iota
	LearnedFromPeer
	LearnedFromProvider
)

func (l LearnedFrom) String() string {
	switch l {
	case LearnedFromCustomer:
		return "from-customer"
	case LearnedFromPeer:
		return "from-peer"
	case LearnedFromProvider:
		return "from-provider"
	default:
		return "unknown"
	}
}

// preference maps a learned-from class to the Gao-Rexford relationship
// preference order used by the decision function: customer-learned
// beats peer-learned beats provider-learned.
func (l LearnedFrom) preference() int {
	switch l {
	case LearnedFromCustomer:
		return 2
	case LearnedFromPeer:
		return 1
	case LearnedFromProvider:
		return 0
	default:
		return -1
	}
}

// relationToLearnedFrom maps the relationship as the sender sees the
// receiver into the class the receiver learns the route as: a sender
// sending up to its provider gives the receiver a customer-learned
// route, and so on.
func relationToLearnedFrom(relFromSender asgraph.Relation) LearnedFrom {
	switch relFromSender {
	case asgraph.CustomerToProvider:
		return LearnedFromCustomer
	case asgraph.PeerToPeer:
		return LearnedFromPeer
	case asgraph.ProviderToCustomer:
		return LearnedFromProvider
	default:
		return LearnedFromProvider
	}
}

// Route is (prefix, AS path, learned-from class, rov-invalid flag).
// The first element of ASPath is the most recent hop; the last is the
// origin.
type Route struct {
	Prefix     string
	ASPath     []asgraph.ASN
	Learned    LearnedFrom
	ROVInvalid bool
}

// Origin returns the last hop of the AS path.
func (r *Route) Origin() asgraph.ASN {
	return r.ASPath[len(r.ASPath)-1]
}

// nextHop returns the tie-breaker ASN: the second element of the path
// if it has at least two hops, otherwise the single element. Only
// self-comparisons at the origin ever hit the single-element branch.
func (r *Route) nextHop() asgraph.ASN {
	if len(r.ASPath) >= 2 {
		return r.ASPath[1]
	}
	return r.ASPath[0]
}

// contains reports whether asn already appears on the path (loop
// guard).
func (r *Route) contains(asn asgraph.ASN) bool {
	for _, hop := range r.ASPath {
		if hop == asn {
			return true
		}
	}
	return false
}

// withPrependedHop returns a new Route with receiver prepended to the
// path and the learned-from class rewritten from relFromSender, the
// relationship as the sender sees the receiver. The receiving Route is
// never mutated.
func (r *Route) withPrependedHop(receiver asgraph.ASN, relFromSender asgraph.Relation) *Route {
	path := make([]asgraph.ASN, 0, len(r.ASPath)+1)
	path = append(path, receiver)
	path = append(path, r.ASPath...)
	return &Route{
		Prefix:     r.Prefix,
		ASPath:     path,
		Learned:    relationToLearnedFrom(relFromSender),
		ROVInvalid: r.ROVInvalid,
	}
}
