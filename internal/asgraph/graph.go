/* ============================================================= *\
   graph.go

   The AS graph: an undirected labeled multigraph stored as
   adjacency lists, one entry per relationship as seen from each
   endpoint.
\* ============================================================= */

package asgraph

// ASN is an Autonomous System Number.
type ASN int

// Relation is a business relationship as seen from one endpoint of an edge.
type Relation int

const (
	ProviderToCustomer Relation = iota // the other endpoint is my customer
	CustomerToProvider                 // the other endpoint is my provider
	PeerToPeer                         // the other endpoint is my peer
)

func (r Relation) String() string {
	switch r {
	case ProviderToCustomer:
		return "provider-of"
	case CustomerToProvider:
		return "customer-of"
	case PeerToPeer:
		return "peer-of"
	default:
		return "unknown"
	}
}

// Neighbor is one adjacency-list entry: a neighboring ASN and the
// relationship from the owning AS's viewpoint.
type Neighbor struct {
	ASN      ASN
	Relation Relation
}

// Graph is the AS relationship graph. It is immutable once loading is
// done; nothing past this package mutates adjacency in place.
type Graph struct {
	adjacency map[ASN][]Neighbor
	all       map[ASN]struct{}
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[ASN][]Neighbor),
		all:       make(map[ASN]struct{}),
	}
}

// mirror returns the relationship as seen from the other endpoint.
func mirror(r Relation) Relation {
	switch r {
	case ProviderToCustomer:
		return CustomerToProvider
	case CustomerToProvider:
		return ProviderToCustomer
	case PeerToPeer:
		return PeerToPeer
	default:
		return r
	}
}

// AddRelationship inserts the edge a->b with relation "relFromA" (the
// relationship as seen from a), plus its mirror at b. Both endpoints
// are registered as known ASes. Duplicate calls are permitted and
// recorded; the graph does not deduplicate edges.
func (g *Graph) AddRelationship(a, b ASN, relFromA Relation) {
	g.adjacency[a] = append(g.adjacency[a], Neighbor{ASN: b, Relation: relFromA})
	g.adjacency[b] = append(g.adjacency[b], Neighbor{ASN: a, Relation: mirror(relFromA)})
	g.Register(a)
	g.Register(b)
}

// Register records asn as a known AS even if it has no edges, e.g. a
// seed-only origin.
func (g *Graph) Register(asn ASN) {
	g.all[asn] = struct{}{}
}

// Neighbors returns asn's adjacency list, duplicates preserved, in
// insertion order.
func (g *Graph) Neighbors(asn ASN) []Neighbor {
	return g.adjacency[asn]
}

// AllASes returns every ASN known to the graph, in no particular
// order.
func (g *Graph) AllASes() []ASN {
	ases := make([]ASN, 0, len(g.all))
	for asn := range g.all {
		ases = append(ases, asn)
	}
	return ases
}

// Len returns the number of known ASes.
func (g *Graph) Len() int {
	return len(g.all)
}

// Stats summarizes the relationship counts by type, the way the
// original loader's print_stats does.
type Stats struct {
	ASes                   int
	CustomerRelationships  int
	PeerRelationships      int
	ProviderRelationships  int
}

// Stats computes Stats by scanning every adjacency list once.
func (g *Graph) Stats() Stats {
	s := Stats{ASes: len(g.all)}
	for _, neighbors := range g.adjacency {
		for _, n := range neighbors {
			switch n.Relation {
			case CustomerToProvider:
				s.CustomerRelationships++
			case PeerToPeer:
				s.PeerRelationships++
			case ProviderToCustomer:
				s.ProviderRelationships++
			}
		}
	}
	return s
}
