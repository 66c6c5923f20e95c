package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/splitcut/entity"
)

// DRH is a design rule hierarchy: a tree of nested groups mirroring
// the recursive bisection path recorded in each entity's block_name.
type DRH struct {
	SchemaVersion string      `json:"@schemaVersion"`
	Name          string      `json:"name"`
	Structure     []*drhGroup `json:"structure"`
}

type drhGroup struct {
	Type   string        `json:"@type"`
	Name   string        `json:"name"`
	Nested []*drhGroup   `json:"nested,omitempty"`
	Items  []*drhItem    `json:"-"`
}

type drhItem struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// MarshalJSON flattens Nested and Items into a single "nested" array,
// since dv8.py's groups mix child groups and leaf items in one list.
func (g *drhGroup) MarshalJSON() ([]byte, error) {
	all := make([]any, 0, len(g.Nested)+len(g.Items))
	for _, n := range g.Nested {
		all = append(all, n)
	}
	for _, it := range g.Items {
		all = append(all, it)
	}
	return json.Marshal(struct {
		Type   string `json:"@type"`
		Name   string `json:"name"`
		Nested []any  `json:"nested"`
	}{g.Type, g.Name, all})
}

// BuildDRH builds a DRH named name from entities' block_name column
// (entities with no block_name are skipped).
func BuildDRH(name string, entities []entity.Entity, blockName map[int]string) DRH {
	var root []*drhGroup
	for _, e := range entities {
		bn, ok := blockName[e.ID]
		if !ok {
			continue
		}
		addToRoot(&root, toIdxList(bn), e.Name)
	}
	return DRH{SchemaVersion: "1.0", Name: name, Structure: root}
}

// toIdxList parses a block_name of the form "W<digits>" followed by a
// run of 'A'/'B' letters into [weak_id, 0|1, 0|1, ...] in root-to-leaf
// order, matching dv8.py's to_idx_list.
func toIdxList(blockName string) []int {
	i := 1 // skip the leading 'W'
	start := i
	for i < len(blockName) && blockName[i] >= '0' && blockName[i] <= '9' {
		i++
	}
	weakID, _ := strconv.Atoi(blockName[start:i])

	idx := []int{weakID}
	for ; i < len(blockName); i++ {
		if blockName[i] == 'A' {
			idx = append(idx, 0)
		} else if blockName[i] == 'B' {
			idx = append(idx, 1)
		}
	}
	return idx
}

func toInnerName(idx int) string {
	if idx == 0 {
		return "A"
	}
	return "B"
}

func addToRoot(root *[]*drhGroup, idxList []int, itemName string) {
	for idxList[0] >= len(*root) {
		*root = append(*root, nil)
	}
	if (*root)[idxList[0]] == nil {
		(*root)[idxList[0]] = &drhGroup{Type: "group", Name: fmt.Sprintf("W%d", idxList[0])}
	}
	cur := (*root)[idxList[0]]
	for _, idx := range idxList[1:] {
		if len(cur.Nested) == 0 {
			cur.Nested = []*drhGroup{nil, nil}
		}
		if cur.Nested[idx] == nil {
			cur.Nested[idx] = &drhGroup{Type: "group", Name: toInnerName(idx)}
		}
		cur = cur.Nested[idx]
	}
	cur.Items = append(cur.Items, &drhItem{Type: "item", Name: itemName})
}

// WriteDRH renders drh as JSON to path.
func WriteDRH(path string, drh DRH) error {
	data, err := json.Marshal(drh)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
