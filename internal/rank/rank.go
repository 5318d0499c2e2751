/* ============================================================= *\
   rank.go

   Kahn-style topological layering over customer->provider edges.
   Assigns each AS an integer rank equal to its longest customer
   chain. Terminates because the caller has already rejected any
   customer->provider cycle (see asgraph.HasCustomerProviderCycle).
\* ============================================================= */

package rank

import "github.com/bgp-policy-sim/bgpsim/internal/asgraph"

// Table is the rank assignment: ASN -> rank, and rank -> ASNs at that
// rank.
type Table struct {
	ASNToRank  map[asgraph.ASN]int
	RankToASNs [][]asgraph.ASN
}

// Assign computes Table over g. Rank 0 is every AS with no customers;
// rank k+1 is every AS whose every customer has already been placed.
func Assign(g *asgraph.Graph) *Table {
	customerCount := make(map[asgraph.ASN]int)
	for _, asn := range g.AllASes() {
		count := 0
		for _, n := range g.Neighbors(asn) {
			if n.Relation == asgraph.ProviderToCustomer {
				count++
			}
		}
		customerCount[asn] = count
	}

	queue := make([]asgraph.ASN, 0, len(customerCount))
	for asn, count := range customerCount {
		if count == 0 {
			queue = append(queue, asn)
		}
	}

	t := &Table{
		ASNToRank:  make(map[asgraph.ASN]int, len(customerCount)),
		RankToASNs: make([][]asgraph.ASN, 0),
	}

	currentRank := 0
	for len(queue) > 0 {
		levelSize := len(queue)
		layer := make([]asgraph.ASN, 0, levelSize)

		for i := 0; i < levelSize; i++ {
			asn := queue[i]
			t.ASNToRank[asn] = currentRank
			layer = append(layer, asn)

			for _, n := range g.Neighbors(asn) {
				if n.Relation != asgraph.CustomerToProvider {
					continue
				}
				customerCount[n.ASN]--
				if customerCount[n.ASN] == 0 {
					queue = append(queue, n.ASN)
				}
			}
		}

		queue = queue[levelSize:]
		t.RankToASNs = append(t.RankToASNs, layer)
		currentRank++
	}

	return t
}

// MaxRank returns the highest rank in the table, or -1 if the table is
// empty.
func (t *Table) MaxRank() int {
	return len(t.RankToASNs) - 1
}
