package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splitcut/entity"
)

func TestBuildDSMIndexesByOrderAndMergesKinds(t *testing.T) {
	targets := []entity.Entity{
		{ID: 1, Name: "alpha", Kind: "method"},
		{ID: 2, Name: "beta", Kind: "method"},
	}
	deps := []entity.Dep{
		{Src: 1, Tgt: 2, Kind: "call"},
		{Src: 1, Tgt: 2, Kind: "reference"},
	}

	dsm := BuildDSM("thing.go", targets, deps)
	require.Equal(t, "1.0", dsm.SchemaVersion)
	require.Equal(t, []string{"alpha", "beta"}, dsm.Variables)
	require.Len(t, dsm.Cells, 1)
	require.Equal(t, DSMCell{Src: 0, Dest: 1, Values: map[string]float64{"call": 1.0, "reference": 1.0}}, dsm.Cells[0])
}

func TestToIdxListParsesWeakIDAndLetters(t *testing.T) {
	require.Equal(t, []int{0}, toIdxList("W0"))
	require.Equal(t, []int{12, 0, 1}, toIdxList("W12AB"))
	require.Equal(t, []int{3, 1, 1, 0}, toIdxList("W3BBA"))
}

func TestBuildDRHNestsByBisectionPath(t *testing.T) {
	entities := []entity.Entity{
		{ID: 1, Name: "alpha", Kind: "method"},
		{ID: 2, Name: "beta", Kind: "method"},
		{ID: 3, Name: "gamma", Kind: "method"},
	}
	blockName := map[int]string{
		1: "W0A",
		2: "W0B",
		3: "W1",
	}

	drh := BuildDRH("thing-drh", entities, blockName)
	require.Equal(t, "1.0", drh.SchemaVersion)
	require.Len(t, drh.Structure, 2)

	data, err := json.Marshal(drh)
	require.NoError(t, err)
	require.Contains(t, string(data), `"alpha"`)
	require.Contains(t, string(data), `"beta"`)
	require.Contains(t, string(data), `"gamma"`)
	require.Contains(t, string(data), `"W0"`)
	require.Contains(t, string(data), `"W1"`)
}
