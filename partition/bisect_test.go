package partition

import "testing"

func TestBisectFindsSingleEdgeCut(t *testing.T) {
	nodes := []int{1, 2, 3, 4}
	weight := map[int]int{1: 1, 2: 1, 3: 1, 4: 1}
	edges := []Edge{{Src: 1, Tgt: 2}, {Src: 2, Tgt: 3}, {Src: 3, Tgt: 4}}

	res, err := Bisect(nodes, weight, edges, 0.5, DefaultOptions())
	if err != nil {
		t.Fatalf("Bisect: %v", err)
	}
	if res.CutWeight != 1 {
		t.Fatalf("CutWeight = %d, want 1 (a path of 4 bisects with exactly one crossing edge)", res.CutWeight)
	}
	for _, n := range nodes {
		if _, ok := res.Labels[n]; !ok {
			t.Fatalf("missing label for node %d", n)
		}
	}
}

func TestBisectRespectsBalanceBound(t *testing.T) {
	nodes := []int{1, 2, 3, 4}
	weight := map[int]int{1: 1, 2: 1, 3: 1, 4: 1}
	var edges []Edge

	res, err := Bisect(nodes, weight, edges, 0.0, DefaultOptions())
	if err != nil {
		t.Fatalf("Bisect: %v", err)
	}
	side0, side1 := 0, 0
	for _, n := range nodes {
		if res.Labels[n] == 0 {
			side0 += weight[n]
		} else {
			side1 += weight[n]
		}
	}
	if side0 != 2 || side1 != 2 {
		t.Fatalf("expected an even 2/2 split with eps=0, got %d/%d", side0, side1)
	}
}

func TestBisectInfeasibleWhenSingleNodeExceedsBound(t *testing.T) {
	nodes := []int{1, 2}
	weight := map[int]int{1: 100, 2: 1}

	_, err := Bisect(nodes, weight, nil, 0.0, DefaultOptions())
	if err != ErrNoFeasiblePartition {
		t.Fatalf("err = %v, want ErrNoFeasiblePartition", err)
	}
}

func TestBisectEnforcesDirectedPartOrder(t *testing.T) {
	// A directed edge 2 -> 1 forbids part(2) > part(1); with one node
	// per part forced by the balance bound, the only legal split puts
	// node 1 in part 1 and node 2 in part 0.
	nodes := []int{1, 2}
	weight := map[int]int{1: 1, 2: 1}
	edges := []Edge{{Src: 2, Tgt: 1, Directed: true}}

	res, err := Bisect(nodes, weight, edges, 0.0, DefaultOptions())
	if err != nil {
		t.Fatalf("Bisect: %v", err)
	}
	if res.Labels[2] > res.Labels[1] {
		t.Fatalf("Labels = %v, directed edge 2->1 requires part(2) <= part(1)", res.Labels)
	}
}

func TestBisectEmptyNodeSet(t *testing.T) {
	_, err := Bisect(nil, nil, nil, 0.5, DefaultOptions())
	if err != ErrEmptyNodeSet {
		t.Fatalf("err = %v, want ErrEmptyNodeSet", err)
	}
}
