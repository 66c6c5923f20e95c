package component

import "testing"

func TestQuotientPreservesDuplicatesAndSelfLoops(t *testing.T) {
	groupOf := map[int]int{1: 10, 2: 10, 3: 20}
	edges := []Pair{{1, 3}, {2, 3}, {1, 2}}
	got := Quotient(edges, groupOf)
	want := []Pair{{10, 20}, {10, 20}, {10, 10}}
	if len(got) != len(want) {
		t.Fatalf("Quotient = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Quotient[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSCCFindsCycle(t *testing.T) {
	nodes := []int{1, 2, 3, 4}
	edges := []Pair{{1, 2}, {2, 3}, {3, 1}, {3, 4}}
	labels := SCC(nodes, edges)

	if labels[1] != labels[2] || labels[2] != labels[3] {
		t.Fatalf("expected 1,2,3 in the same SCC, got %v", labels)
	}
	if labels[4] == labels[1] {
		t.Fatalf("expected node 4 in its own SCC, got %v", labels)
	}
}

func TestSCCIsolatedNodesAreSingletons(t *testing.T) {
	nodes := []int{1, 2}
	labels := SCC(nodes, nil)
	if labels[1] == labels[2] {
		t.Fatalf("expected distinct SCC labels for disconnected nodes, got %v", labels)
	}
}

func TestWCCMergesAcrossDirection(t *testing.T) {
	nodes := []int{1, 2, 3, 4}
	edges := []Pair{{1, 2}, {3, 2}}
	labels := WCC(nodes, edges)
	if labels[1] != labels[2] || labels[2] != labels[3] {
		t.Fatalf("expected 1,2,3 in the same WCC, got %v", labels)
	}
	if labels[4] == labels[1] {
		t.Fatalf("expected node 4 in its own WCC, got %v", labels)
	}
}

func TestWCCIgnoresEdgesOutsideNodeSet(t *testing.T) {
	nodes := []int{1, 2}
	edges := []Pair{{1, 99}, {2, 100}}
	labels := WCC(nodes, edges)
	if labels[1] == labels[2] {
		t.Fatalf("edges to nodes outside the set must not merge 1 and 2, got %v", labels)
	}
}
