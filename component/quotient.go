package component

// Pair is a directed (src, tgt) node pair.
type Pair struct {
	Src, Tgt int
}

// Quotient maps every edge's endpoints through groupOf, in the edges'
// original order. Nodes absent from groupOf are left unmapped
// (identity). Duplicates and self-loops that result from the mapping
// are preserved, not collapsed: SCC/WCC's underlying core.Graph
// tolerates multi-edges and loops directly, and callers that need a
// deduplicated edge set (cluster.computeEdgeWeights, for the
// binary-membership edge_weight table) dedupe explicitly themselves.
func Quotient(edges []Pair, groupOf map[int]int) []Pair {
	out := make([]Pair, len(edges))
	for i, e := range edges {
		src, tgt := e.Src, e.Tgt
		if g, ok := groupOf[src]; ok {
			src = g
		}
		if g, ok := groupOf[tgt]; ok {
			tgt = g
		}
		out[i] = Pair{src, tgt}
	}
	return out
}
