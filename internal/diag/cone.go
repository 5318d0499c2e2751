/* ============================================================= *\
   cone.go

   Customer cone size reporting: for every AS, the number of distinct
   ASes reachable by following customer->provider edges in reverse
   (i.e. the AS's customers, transitively). Derived straight from the
   relationship graph already in memory, rather than requiring
   CAIDA's separate ppdc cone file the way caida_file_readers.go's
   read_customer_cone does.
\* ============================================================= */

package diag

import (
	"sort"

	"github.com/bgp-policy-sim/bgpsim/internal/asgraph"
)

// ConeSize is one AS's customer cone size.
type ConeSize struct {
	ASN  asgraph.ASN
	Size int
}

// CustomerCones computes every AS's customer cone size by a
// depth-first walk down customer->provider edges in reverse (i.e.
// provider->customer edges), memoizing per AS since cones overlap
// heavily in a hierarchy.
func CustomerCones(g *asgraph.Graph) []ConeSize {
	memo := make(map[asgraph.ASN]map[asgraph.ASN]struct{})

	var cone func(asn asgraph.ASN, visiting map[asgraph.ASN]struct{}) map[asgraph.ASN]struct{}
	cone = func(asn asgraph.ASN, visiting map[asgraph.ASN]struct{}) map[asgraph.ASN]struct{} {
		if cached, ok := memo[asn]; ok {
			return cached
		}
		if _, inProgress := visiting[asn]; inProgress {
			// Cycle guard: asgraph.Graph is expected to be acyclic over
			// customer->provider edges by the time diagnostics run, but
			// diagnostics must never panic on malformed input.
			return map[asgraph.ASN]struct{}{}
		}
		visiting[asn] = struct{}{}

		result := make(map[asgraph.ASN]struct{})
		for _, n := range g.Neighbors(asn) {
			if n.Relation != asgraph.ProviderToCustomer {
				continue
			}
			result[n.ASN] = struct{}{}
			for customer := range cone(n.ASN, visiting) {
				result[customer] = struct{}{}
			}
		}

		delete(visiting, asn)
		memo[asn] = result
		return result
	}

	ases := g.AllASes()
	sizes := make([]ConeSize, 0, len(ases))
	for _, asn := range ases {
		c := cone(asn, make(map[asgraph.ASN]struct{}))
		sizes = append(sizes, ConeSize{ASN: asn, Size: len(c)})
	}

	sort.Slice(sizes, func(i, j int) bool { return sizes[i].ASN < sizes[j].ASN })
	return sizes
}
