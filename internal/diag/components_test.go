package diag

import (
	"testing"

	"github.com/bgp-policy-sim/bgpsim/internal/asgraph"
)

func TestConnectedComponentsSingleComponent(t *testing.T) {
	g := asgraph.New()
	g.AddRelationship(1, 2, asgraph.ProviderToCustomer)
	g.AddRelationship(2, 3, asgraph.ProviderToCustomer)

	report := ConnectedComponents(g)
	if report.ComponentCount != 1 {
		t.Errorf("ComponentCount = %d, want 1", report.ComponentCount)
	}
	if report.LargestSize != 3 {
		t.Errorf("LargestSize = %d, want 3", report.LargestSize)
	}
}

func TestConnectedComponentsTwoDisjointSubgraphs(t *testing.T) {
	g := asgraph.New()
	g.AddRelationship(1, 2, asgraph.ProviderToCustomer)
	g.AddRelationship(10, 20, asgraph.PeerToPeer)

	report := ConnectedComponents(g)
	if report.ComponentCount != 2 {
		t.Errorf("ComponentCount = %d, want 2", report.ComponentCount)
	}
	if report.LargestSize != 2 {
		t.Errorf("LargestSize = %d, want 2", report.LargestSize)
	}
}

func TestConnectedComponentsIsolatedASCountsAsItsOwnComponent(t *testing.T) {
	g := asgraph.New()
	g.AddRelationship(1, 2, asgraph.ProviderToCustomer)
	g.Register(99)

	report := ConnectedComponents(g)
	if report.ComponentCount != 2 {
		t.Errorf("ComponentCount = %d, want 2 (the {1,2} component plus isolated 99)", report.ComponentCount)
	}
}
