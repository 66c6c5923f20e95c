package cluster

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/splitcut/component"
	"github.com/katalvlaran/splitcut/config"
	"github.com/katalvlaran/splitcut/entity"
	"github.com/katalvlaran/splitcut/ident"
	"github.com/katalvlaran/splitcut/similarity"
)

// Driver runs one clustering pass over an entity.Table.
type Driver struct {
	opts config.Options
	tok  *ident.Tokenizer
	log  *slog.Logger
}

// NewDriver constructs a Driver with the given options. A nil logger
// defaults to slog.Default().
func NewDriver(opts config.Options, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	stopWords := map[string]struct{}(nil)
	return &Driver{opts: opts, tok: ident.NewTokenizer(stopWords), log: log}
}

// Cluster runs the full pipeline over table, populating its NameID,
// StrongID, WeakID, BlockName, and BlockID columns in place.
func (d *Driver) Cluster(ctx context.Context, table *entity.Table) error {
	depPairs := depsToPairs(table.Deps)

	// Step 1 — seed groupings.
	rawNameID := d.seedNameID(table)
	table.NameID = entity.DenseRelabelInts(rawNameID)

	nameEdges := component.Quotient(depPairs, table.NameID)
	rawStrongID := component.SCC(table.IDs(), nameEdges)
	table.StrongID = entity.DenseRelabelInts(mapThrough(rawStrongID, table.NameID, table))

	strongEdges := component.Quotient(depPairs, table.StrongID)
	rawWeakID := component.WCC(strongIDDomain(table), strongEdges)
	table.WeakID = entity.DenseRelabelInts(expandByEntity(rawWeakID, table.StrongID))

	d.log.Info("seeded groupings",
		"entities", len(table.Entities),
		"name_groups", distinctValues(table.NameID),
		"strong_groups", distinctValues(table.StrongID),
		"weak_groups", distinctValues(table.WeakID))

	// Step 2 — similarity edges.
	var simEdges []SimEdge
	if d.opts.UseTextEdges {
		names := make([]string, 0, len(table.Entities))
		for _, e := range table.Entities {
			if !e.IsFile() {
				names = append(names, e.Name)
			}
		}
		idx := similarity.BuildNameIndex(d.tok, names, similarity.BuildOptions{AllowDupNames: d.opts.AllowDupNames})
		simEdges = buildSimilarityEdges(table, d.tok, idx, d.opts.TextEdgeMinSim)
	}

	// Step 3 — weights.
	strongWeight := computeStrongWeights(table)
	edgeWeights := computeEdgeWeights(strongEdges, simEdges, d.opts.UnitEdgeWeight, d.opts.TextEdgeMultiplier)

	// Step 4 — recursive bisection, one goroutine per WCC.
	blockNameByStrong, err := d.bisectAllWCCs(ctx, table, edgeWeights, strongWeight)
	if err != nil {
		return err
	}

	// Step 5 — block assignment.
	table.BlockName = make(map[int]string, len(table.Entities))
	for _, e := range table.Entities {
		table.BlockName[e.ID] = blockNameByStrong[table.StrongID[e.ID]]
	}
	table.BlockID = entity.DenseRelabelStrings(table.BlockName)

	return nil
}

func depsToPairs(deps []entity.Dep) []component.Pair {
	out := make([]component.Pair, 0, len(deps))
	for _, dep := range deps {
		if dep.Src == dep.Tgt {
			continue
		}
		out = append(out, component.Pair{Src: dep.Src, Tgt: dep.Tgt})
	}
	return out
}

// mapThrough converts an SCC labeling keyed by name_id into a labeling
// keyed by entity id.
func mapThrough(sccByNameID map[int]int, nameIDOf map[int]int, table *entity.Table) map[int]int {
	out := make(map[int]int, len(table.Entities))
	for _, e := range table.Entities {
		out[e.ID] = sccByNameID[nameIDOf[e.ID]]
	}
	return out
}

func expandByEntity(wccByStrongID map[int]int, strongIDOf map[int]int) map[int]int {
	out := make(map[int]int, len(strongIDOf))
	for id, sid := range strongIDOf {
		out[id] = wccByStrongID[sid]
	}
	return out
}

func strongIDDomain(table *entity.Table) []int {
	seen := make(map[int]bool)
	var out []int
	for _, sid := range table.StrongID {
		if !seen[sid] {
			seen[sid] = true
			out = append(out, sid)
		}
	}
	return out
}

func distinctValues(m map[int]int) int {
	seen := make(map[int]bool, len(m))
	for _, v := range m {
		seen[v] = true
	}
	return len(seen)
}

func computeStrongWeights(table *entity.Table) map[int]int {
	out := make(map[int]int)
	for _, e := range table.Entities {
		out[table.StrongID[e.ID]] += e.Weight()
	}
	return out
}

// edgeKey identifies a (src, tgt) pair for weight lookup, independent
// of any cut-cost value attached to it downstream.
type edgeKey struct{ Src, Tgt int }

// edgeInfo is the accumulated cut weight and directedness for one
// ordered strong-group pair. Directed is set whenever the pair carries
// a dependency edge, even if it also carries a similarity edge — "an
// edge present in both di_edges and un_edges is treated as directed."
type edgeInfo struct {
	Weight   int
	Directed bool
}

// computeEdgeWeights builds the binary-membership edge_weight(a,b)
// table: each ordered pair contributes at most once for its dependency
// membership (depEdges is deduplicated first, since component.Quotient
// preserves duplicates and the weight here is per-pair, not
// per-duplicate) plus at most once per similarity edge orientation.
func computeEdgeWeights(depEdges []component.Pair, simEdges []SimEdge, unitEdgeWeight, textMultiplier int) map[edgeKey]edgeInfo {
	out := make(map[edgeKey]edgeInfo)
	for _, e := range distinctPairs(depEdges) {
		key := edgeKey{e.Src, e.Tgt}
		info := out[key]
		info.Weight += unitEdgeWeight
		info.Directed = true
		out[key] = info
	}
	for _, e := range simEdges {
		weight := int(e.Score*float64(unitEdgeWeight)*float64(textMultiplier) + 0.5)
		for _, key := range [2]edgeKey{{e.A, e.B}, {e.B, e.A}} {
			info := out[key]
			info.Weight += weight
			out[key] = info
		}
	}
	return out
}

// distinctPairs returns pairs with duplicate (Src, Tgt) occurrences
// collapsed to one, preserving first-seen order.
func distinctPairs(pairs []component.Pair) []component.Pair {
	seen := make(map[component.Pair]bool, len(pairs))
	out := make([]component.Pair, 0, len(pairs))
	for _, p := range pairs {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// bisectAllWCCs runs the recursive bisection independently for every
// weak component, fanning out across goroutines via errgroup; each
// goroutine's own recursion still calls partition.Bisect sequentially.
func (d *Driver) bisectAllWCCs(ctx context.Context, table *entity.Table, edgeWeights map[edgeKey]edgeInfo, strongWeight map[int]int) (map[int]string, error) {
	maxWeak := table.MaxWeakID()
	results := make([]map[int]string, maxWeak+1)
	allStrongIDs := strongIDDomain(table)

	eg, egCtx := errgroup.WithContext(ctx)
	for weakID := 0; weakID <= maxWeak; weakID++ {
		weakID := weakID
		eg.Go(func() error {
			nodes := table.StrongIDsInWeakID(weakID)

			res, err := d.clusterRecursive(egCtx, nodes, allStrongIDs, edgeWeights, strongWeight, fmt.Sprintf("W%d", weakID))
			if err != nil {
				return err
			}
			results[weakID] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[int]string)
	for _, r := range results {
		for sid, name := range r {
			merged[sid] = name
		}
	}
	return merged, nil
}
