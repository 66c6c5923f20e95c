package cluster

import (
	"context"
	"sort"

	"github.com/katalvlaran/splitcut/partition"
)

// clusterRecursive implements the driver's step 4 for one weakly
// connected component. active is the current subset of strong_id
// nodes still being split; allNodes is the full strong_id domain,
// used only when d.opts.UseAll zeroes out inactive weight instead of
// restricting the edge set. name is this recursion node's block-name
// prefix ("W<k>" at the root, "...A"/"...B" below it).
func (d *Driver) clusterRecursive(ctx context.Context, active, allNodes []int, edgeWeights map[edgeKey]edgeInfo, strongWeight map[int]int, name string) (map[int]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	leaf := func() map[int]string {
		out := make(map[int]string, len(active))
		for _, sid := range active {
			out[sid] = name
		}
		return out
	}

	totalWeight := 0
	for _, sid := range active {
		totalWeight += strongWeight[sid]
	}
	if totalWeight <= d.opts.MaxWeight {
		return leaf(), nil
	}

	activeSet := make(map[int]bool, len(active))
	for _, sid := range active {
		activeSet[sid] = true
	}

	var bisectNodes []int
	weightFn := make(map[int]int)
	var bisectEdges []partition.Edge

	if d.opts.UseAll {
		bisectNodes = allNodes
		for _, sid := range allNodes {
			if activeSet[sid] {
				weightFn[sid] = strongWeight[sid]
			} else {
				weightFn[sid] = 0
			}
		}
		bisectEdges = toPartitionEdges(edgeWeights, nil)
	} else {
		bisectNodes = active
		for _, sid := range active {
			weightFn[sid] = strongWeight[sid]
		}
		bisectEdges = toPartitionEdges(edgeWeights, func(src, tgt int) bool { return activeSet[src] && activeSet[tgt] })
	}

	opts := partition.Options{TimeLimit: d.opts.SolverTimeLimit}
	result, err := partition.Bisect(bisectNodes, weightFn, bisectEdges, d.opts.CutEPS, opts)
	if err != nil {
		d.log.Warn("bisection failed, falling back to a leaf block", "block", name, "err", err)
		return leaf(), nil
	}

	var sideA, sideB []int
	for _, sid := range active {
		if result.Labels[sid] == 0 {
			sideA = append(sideA, sid)
		} else {
			sideB = append(sideB, sid)
		}
	}
	if len(sideA) == 0 || len(sideB) == 0 {
		d.log.Warn("bisection produced a degenerate split, falling back to a leaf block", "block", name)
		return leaf(), nil
	}

	resA, err := d.clusterRecursive(ctx, sideA, allNodes, edgeWeights, strongWeight, name+"A")
	if err != nil {
		return nil, err
	}
	resB, err := d.clusterRecursive(ctx, sideB, allNodes, edgeWeights, strongWeight, name+"B")
	if err != nil {
		return nil, err
	}

	merged := make(map[int]string, len(resA)+len(resB))
	for k, v := range resA {
		merged[k] = v
	}
	for k, v := range resB {
		merged[k] = v
	}
	return merged, nil
}

// toPartitionEdges builds the solver's edge list directly from
// edgeWeights's keys, which are already unique per ordered pair — no
// separate pair list to deduplicate. include, when non-nil, restricts
// the result to pairs both of whose endpoints it accepts (the
// !UseAll branch's active-subset restriction); a nil include keeps
// every pair. Results are sorted by (Src, Tgt) so the solver sees a
// deterministic edge order regardless of map iteration.
func toPartitionEdges(edgeWeights map[edgeKey]edgeInfo, include func(src, tgt int) bool) []partition.Edge {
	out := make([]partition.Edge, 0, len(edgeWeights))
	for k, info := range edgeWeights {
		if include != nil && !include(k.Src, k.Tgt) {
			continue
		}
		out = append(out, partition.Edge{Src: k.Src, Tgt: k.Tgt, Weight: info.Weight, Directed: info.Directed})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Src != out[j].Src {
			return out[i].Src < out[j].Src
		}
		return out[i].Tgt < out[j].Tgt
	})
	return out
}
