package report

import (
	"encoding/json"
	"os"

	"github.com/katalvlaran/splitcut/entity"
)

// DSM is a design structure matrix: a square matrix of inter-entity
// dependencies, keyed by row/column index into Variables.
type DSM struct {
	SchemaVersion string         `json:"schemaVersion"`
	Name          string         `json:"name"`
	Variables     []string       `json:"variables"`
	Cells         []DSMCell      `json:"cells"`
}

// DSMCell is one nonzero (src, dest) entry, with one 1.0 value per
// distinct dependency kind observed between that pair.
type DSMCell struct {
	Src    int                `json:"src"`
	Dest   int                `json:"dest"`
	Values map[string]float64 `json:"values"`
}

// BuildDSM builds a DSM named name over targets (in targets' given
// order, which becomes the row/column order) and the dependency edges
// among them.
func BuildDSM(name string, targets []entity.Entity, deps []entity.Dep) DSM {
	ix := make(map[int]int, len(targets))
	vars := make([]string, len(targets))
	for i, e := range targets {
		ix[e.ID] = i
		vars[i] = e.Name
	}

	type pair struct{ src, dst int }
	values := make(map[pair]map[string]float64)
	var order []pair
	for _, d := range deps {
		srcIx, srcOK := ix[d.Src]
		dstIx, dstOK := ix[d.Tgt]
		if !srcOK || !dstOK {
			continue
		}
		p := pair{srcIx, dstIx}
		if _, ok := values[p]; !ok {
			values[p] = make(map[string]float64)
			order = append(order, p)
		}
		values[p][d.Kind] = 1.0
	}

	cells := make([]DSMCell, len(order))
	for i, p := range order {
		cells[i] = DSMCell{Src: p.src, Dest: p.dst, Values: values[p]}
	}

	return DSM{
		SchemaVersion: "1.0",
		Name:          name,
		Variables:     vars,
		Cells:         cells,
	}
}

// WriteDSM renders dsm as JSON to path.
func WriteDSM(path string, dsm DSM) error {
	data, err := json.Marshal(dsm)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
