package sim

import "github.com/bgp-policy-sim/bgpsim/internal/asgraph"
import "testing"

func TestNextHopSingleElementPath(t *testing.T) {
	r := &Route{ASPath: []asgraph.ASN{7}}
	if got := r.nextHop(); got != 7 {
		t.Fatalf("nextHop() on a single-element path = %d, want 7", got)
	}
}

func TestNextHopMultiElementPath(t *testing.T) {
	r := &Route{ASPath: []asgraph.ASN{4, 1, 3}}
	if got := r.nextHop(); got != 1 {
		t.Fatalf("nextHop() = %d, want 1 (the second hop)", got)
	}
}

func TestWithPrependedHopDoesNotMutateReceiver(t *testing.T) {
	original := &Route{Prefix: "p", ASPath: []asgraph.ASN{3}, Learned: LearnedFromCustomer}
	extended := original.withPrependedHop(2, asgraph.ProviderToCustomer)

	if len(original.ASPath) != 1 {
		t.Fatalf("original route was mutated: %v", original.ASPath)
	}
	if len(extended.ASPath) != 2 || extended.ASPath[0] != 2 || extended.ASPath[1] != 3 {
		t.Fatalf("extended path = %v, want [2 3]", extended.ASPath)
	}
	if extended.Learned != LearnedFromProvider {
		t.Fatalf("extended.Learned = %v, want from-provider (receiver saw sender as its provider)", extended.Learned)
	}
}

func TestContainsDetectsLoop(t *testing.T) {
	r := &Route{ASPath: []asgraph.ASN{4, 1, 3}}
	if !r.contains(1) {
		t.Fatalf("contains(1) = false, want true")
	}
	if r.contains(99) {
		t.Fatalf("contains(99) = true, want false")
	}
}

func TestPreferenceOrdering(t *testing.T) {
	if LearnedFromCustomer.preference() <= LearnedFromPeer.preference() {
		t.Fatalf("customer-learned must outrank peer-learned")
	}
	if LearnedFromPeer.preference() <= LearnedFromProvider.preference() {
		t.Fatalf("peer-learned must outrank provider-learned")
	}
}
