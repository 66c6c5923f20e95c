package component

import "sort"

// disjointSet is the union-find structure behind WCC: path compression
// on Find, union by rank on Union.
type disjointSet struct {
	parent map[int]int
	rank   map[int]int
}

func newDisjointSet(nodes []int) *disjointSet {
	d := &disjointSet{parent: make(map[int]int, len(nodes)), rank: make(map[int]int, len(nodes))}
	for _, n := range nodes {
		d.parent[n] = n
	}
	return d
}

func (d *disjointSet) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

func (d *disjointSet) Union(a, b int) {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
}

// WCC labels every node of nodes by weakly connected component over
// the edge set edges, treating edges as undirected for connectivity
// purposes. Edges are consumed in ascending (Src, Tgt) order for
// determinism; labels are raw, assigned in ascending-node-id discovery
// order (see entity.DenseRelabelInts for canonicalization).
func WCC(nodes []int, edges []Pair) map[int]int {
	sortedNodes := append([]int(nil), nodes...)
	sort.Ints(sortedNodes)

	ds := newDisjointSet(sortedNodes)

	sortedEdges := append([]Pair(nil), edges...)
	sort.Slice(sortedEdges, func(i, j int) bool {
		if sortedEdges[i].Src != sortedEdges[j].Src {
			return sortedEdges[i].Src < sortedEdges[j].Src
		}
		return sortedEdges[i].Tgt < sortedEdges[j].Tgt
	})
	for _, e := range sortedEdges {
		if _, ok := ds.parent[e.Src]; !ok {
			continue
		}
		if _, ok := ds.parent[e.Tgt]; !ok {
			continue
		}
		ds.Union(e.Src, e.Tgt)
	}

	rootOrder := make(map[int]int)
	out := make(map[int]int, len(sortedNodes))
	nextLabel := 0
	for _, n := range sortedNodes {
		root := ds.Find(n)
		label, ok := rootOrder[root]
		if !ok {
			label = nextLabel
			nextLabel++
			rootOrder[root] = label
		}
		out[n] = label
	}
	return out
}
