package cluster

import (
	"github.com/katalvlaran/splitcut/entity"
	"github.com/katalvlaran/splitcut/ident"
	"github.com/katalvlaran/splitcut/similarity"
)

// SimEdge is an undirected similarity edge between two strong_id
// groups, carrying the best pairwise name-similarity score found
// between their member entities.
type SimEdge struct {
	A, B  int
	Score float64
}

// buildSimilarityEdges implements the driver's step 2: for every
// unordered pair of distinct strong_id groups, the edge score is the
// maximum pairwise similarity between any non-file entity name in one
// group and any non-file entity name in the other, restricted to names
// present in idx. Pairs scoring at or above minSim become similarity
// edges.
func buildSimilarityEdges(table *entity.Table, tok *ident.Tokenizer, idx *similarity.NameIndex, minSim float64) []SimEdge {
	namesByStrong := make(map[int][]string)
	for _, e := range table.Entities {
		if e.IsFile() {
			continue
		}
		if !idx.HasDoc(tok, e.Name) {
			continue
		}
		sid := table.StrongID[e.ID]
		namesByStrong[sid] = append(namesByStrong[sid], e.Name)
	}

	strongIDs := make([]int, 0, len(namesByStrong))
	for sid := range namesByStrong {
		strongIDs = append(strongIDs, sid)
	}
	sortInts(strongIDs)

	var edges []SimEdge
	for i := 0; i < len(strongIDs); i++ {
		for j := i + 1; j < len(strongIDs); j++ {
			a, b := strongIDs[i], strongIDs[j]
			best := 0.0
			for _, na := range namesByStrong[a] {
				for _, nb := range namesByStrong[b] {
					if s := idx.Sim(tok, na, nb); s > best {
						best = s
					}
				}
			}
			if best >= minSim {
				edges = append(edges, SimEdge{A: a, B: b, Score: best})
			}
		}
	}
	return edges
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
