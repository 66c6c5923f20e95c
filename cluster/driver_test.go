package cluster

import (
	"context"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splitcut/config"
	"github.com/katalvlaran/splitcut/entity"
)

func testOptions() config.Options {
	o := config.Default()
	o.UseTextEdges = false // keep these scenarios independent of the lexical engine
	o.MaxWeight = 2
	return o
}

// S1: a table with only the structural file entity (no methods, no
// deps) collapses to a single block, "W0".
func TestClusterEmptyInputYieldsSingleBlock(t *testing.T) {
	table := entity.NewTable([]entity.Entity{
		{ID: 0, Name: "thing.go", Kind: entity.FileKind},
	}, nil)

	d := NewDriver(testOptions(), nil)
	require.NoError(t, d.Cluster(context.Background(), table))

	require.Len(t, distinctStrings(table.BlockName), 1)
	for _, name := range table.BlockName {
		require.Equal(t, "W0", name)
	}
}

// S2: two strong groups with no dependency or similarity edge between
// them land in separate weak components, each a leaf block — no
// bisection is needed since each WCC's weight is already at or under
// MaxWeight.
func TestClusterDisjointGroupsYieldSeparateLeafBlocks(t *testing.T) {
	table := entity.NewTable([]entity.Entity{
		{ID: 0, Name: "file.go", Kind: entity.FileKind},
		{ID: 1, Name: "alpha", Kind: "method"},
		{ID: 2, Name: "beta", Kind: "method"},
	}, nil)

	opts := testOptions()
	opts.MaxWeight = 1
	d := NewDriver(opts, nil)
	require.NoError(t, d.Cluster(context.Background(), table))

	namesOf := func(ids ...int) map[string]bool {
		out := make(map[string]bool)
		for _, id := range ids {
			out[table.BlockName[id]] = true
		}
		return out
	}
	require.Len(t, namesOf(1), 1)
	require.Len(t, namesOf(2), 1)
	require.NotEqual(t, table.BlockName[1], table.BlockName[2])
}

// S3: one weak component whose two halves are joined by a single
// dependency edge bisects exactly along that edge once its combined
// weight exceeds MaxWeight. CutEPS is 0 so the balance bound is 2: on
// the chain 1->2->3->4 every edge is a one-edge cut, and only the
// middle one leaves two halves that fit under that bound.
func TestClusterBisectsAlongSingleCutEdge(t *testing.T) {
	table := entity.NewTable([]entity.Entity{
		{ID: 0, Name: "file.go", Kind: entity.FileKind},
		{ID: 1, Name: "a1", Kind: "method"},
		{ID: 2, Name: "a2", Kind: "method"},
		{ID: 3, Name: "b1", Kind: "method"},
		{ID: 4, Name: "b2", Kind: "method"},
	}, []entity.Dep{
		{Src: 1, Tgt: 2, Kind: "call"},
		{Src: 3, Tgt: 4, Kind: "call"},
		{Src: 2, Tgt: 3, Kind: "call"}, // the only edge crossing the eventual cut
	})

	opts := testOptions()
	opts.MaxWeight = 2
	opts.UseAll = false
	opts.CutEPS = 0
	d := NewDriver(opts, nil)
	require.NoError(t, d.Cluster(context.Background(), table))

	require.Equal(t, table.BlockName[1], table.BlockName[2])
	require.Equal(t, table.BlockName[3], table.BlockName[4])
	require.NotEqual(t, table.BlockName[1], table.BlockName[3])
}

// Invariant: block_name covers every entity and every name shares the
// W<digits> prefix of its entity's weak_id.
func TestInvariantBlockNamePrefixMatchesWeakID(t *testing.T) {
	table := entity.NewTable([]entity.Entity{
		{ID: 0, Name: "file.go", Kind: entity.FileKind},
		{ID: 1, Name: "a1", Kind: "method"},
		{ID: 2, Name: "a2", Kind: "method"},
		{ID: 3, Name: "b1", Kind: "method"},
	}, []entity.Dep{
		{Src: 1, Tgt: 2, Kind: "call"},
	})

	d := NewDriver(testOptions(), nil)
	require.NoError(t, d.Cluster(context.Background(), table))

	prefixRe := regexp.MustCompile(`^W(\d+)`)
	for _, e := range table.Entities {
		name, ok := table.BlockName[e.ID]
		require.True(t, ok, "entity %d missing a block_name", e.ID)
		m := prefixRe.FindStringSubmatch(name)
		require.NotNil(t, m, "block_name %q for entity %d has no W<digits> prefix", name, e.ID)
		require.Equal(t, strconv.Itoa(table.WeakID[e.ID]), m[1], "block_name %q for entity %d does not match its weak_id", name, e.ID)
	}
}

// Invariant: name_id refines strong_id refines weak_id — two entities
// sharing a name_id always share a strong_id, and two entities sharing
// a strong_id always share a weak_id.
func TestInvariantGroupingRefinement(t *testing.T) {
	table := entity.NewTable([]entity.Entity{
		{ID: 0, Name: "file.go", Kind: entity.FileKind},
		{ID: 1, Name: "doIt", Kind: "method"},
		{ID: 2, Name: "doIt", Kind: "method"},
		{ID: 3, Name: "other", Kind: "method"},
	}, []entity.Dep{
		{Src: 1, Tgt: 3, Kind: "call"},
	})

	d := NewDriver(testOptions(), nil)
	require.NoError(t, d.Cluster(context.Background(), table))

	for _, a := range table.Entities {
		for _, b := range table.Entities {
			if table.NameID[a.ID] == table.NameID[b.ID] {
				require.Equal(t, table.StrongID[a.ID], table.StrongID[b.ID])
			}
			if table.StrongID[a.ID] == table.StrongID[b.ID] {
				require.Equal(t, table.WeakID[a.ID], table.WeakID[b.ID])
			}
		}
	}
}

// Invariant: a strong_id group is never split across two block_names.
func TestInvariantStrongGroupsStayWhole(t *testing.T) {
	table := entity.NewTable([]entity.Entity{
		{ID: 0, Name: "file.go", Kind: entity.FileKind},
		{ID: 1, Name: "loopA", Kind: "method"},
		{ID: 2, Name: "loopB", Kind: "method"},
		{ID: 3, Name: "far", Kind: "method"},
	}, []entity.Dep{
		{Src: 1, Tgt: 2, Kind: "call"},
		{Src: 2, Tgt: 1, Kind: "call"}, // mutual calls put 1,2 in one SCC
	})

	opts := testOptions()
	opts.MaxWeight = 1
	d := NewDriver(opts, nil)
	require.NoError(t, d.Cluster(context.Background(), table))

	require.Equal(t, table.StrongID[1], table.StrongID[2])
	require.Equal(t, table.BlockName[1], table.BlockName[2])
}

func distinctStrings(m map[int]string) map[string]bool {
	out := make(map[string]bool)
	for _, v := range m {
		out[v] = true
	}
	return out
}
