// Package entity defines the data model shared by every stage of the
// clustering pipeline: the raw Entity/Dep rows loaded from a dataset, and
// the Table that accumulates the grouping columns (name_id, strong_id,
// weak_id, block_name, block_id) a clustering run derives over them.
//
// The Table is owned by exactly one clustering run (see package cluster)
// and is never mutated in place column-by-column the way a pandas
// DataFrame is; each grouping pass returns a new map of labels that
// Table stores under its own field, matching the
// re-architecture note in the source specification about favoring
// struct-of-arrays over in-place tabular mutation.
package entity

import "sort"

// Kind distinguishes structural "file" entities (which carry no clustering
// weight) from any other code element (method, field, class, ...).
const FileKind = "file"

// Entity is a single code element: a method, field, nested class, or the
// file itself. ID is a stable, dense integer assigned by the dataset
// loader. Name is the raw identifier string (used both for display and as
// input to the identifier tokenizer). Kind is FileKind for the god file
// itself, and an implementation-defined string (e.g. "method", "field",
// "class") for everything else.
type Entity struct {
	ID   int
	Name string
	Kind string
}

// IsFile reports whether e is the structural file entity.
func (e Entity) IsFile() bool { return e.Kind == FileKind }

// Weight returns this entity's clustering weight: 0 for file entities
// (structural role only), 1 for everything else.
func (e Entity) Weight() int {
	if e.IsFile() {
		return 0
	}
	return 1
}

// Dep is a directed dependency edge between two entity ids, carrying a
// Kind describing the nature of the reference (call, field-reference,
// inheritance, ...). Multiplicity is not preserved by the core pipeline:
// duplicate (Src, Tgt) pairs collapse to one edge wherever the pipeline
// builds a set of edges.
type Dep struct {
	Src  int
	Tgt  int
	Kind string
}

// Table holds one clustering run's entities plus every grouping column
// derived over them. Grouping columns are populated strictly in the order
// NameID -> StrongID -> WeakID -> BlockName -> BlockID; each column, once
// set, is never mutated again by a later pass.
type Table struct {
	Entities []Entity
	Deps     []Dep

	// byID indexes Entities by ID for O(1) lookup; built once in NewTable.
	byID map[int]int

	NameID    map[int]int    // entity id -> name_id
	StrongID  map[int]int    // entity id -> strong_id
	WeakID    map[int]int    // entity id -> weak_id
	BlockName map[int]string // entity id -> block_name
	BlockID   map[int]int    // entity id -> block_id
}

// NewTable builds a Table from raw entity and dependency rows. Entities
// need not be pre-sorted; NewTable indexes them by ID as given.
func NewTable(entities []Entity, deps []Dep) *Table {
	byID := make(map[int]int, len(entities))
	for i, e := range entities {
		byID[e.ID] = i
	}
	return &Table{
		Entities: entities,
		Deps:     deps,
		byID:     byID,
	}
}

// Get returns the entity with the given id and true, or the zero Entity
// and false if no such entity exists in the table.
func (t *Table) Get(id int) (Entity, bool) {
	i, ok := t.byID[id]
	if !ok {
		return Entity{}, false
	}
	return t.Entities[i], true
}

// IDs returns all entity ids in ascending order.
func (t *Table) IDs() []int {
	ids := make([]int, 0, len(t.Entities))
	for _, e := range t.Entities {
		ids = append(ids, e.ID)
	}
	sort.Ints(ids)
	return ids
}

// EntitiesWithStrongID returns, in ascending id order, every entity whose
// StrongID equals sid. StrongID must already be populated.
func (t *Table) EntitiesWithStrongID(sid int) []Entity {
	var out []Entity
	for _, e := range t.Entities {
		if t.StrongID[e.ID] == sid {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// StrongIDsInWeakID returns the distinct set of strong_id values whose
// member entities have the given weak_id, in ascending order. WeakID and
// StrongID must already be populated.
func (t *Table) StrongIDsInWeakID(wid int) []int {
	set := make(map[int]struct{})
	for _, e := range t.Entities {
		if t.WeakID[e.ID] == wid {
			set[t.StrongID[e.ID]] = struct{}{}
		}
	}
	out := make([]int, 0, len(set))
	for sid := range set {
		out = append(out, sid)
	}
	sort.Ints(out)
	return out
}

// MaxWeakID returns the largest weak_id assigned, or -1 if WeakID is empty.
func (t *Table) MaxWeakID() int {
	max := -1
	for _, w := range t.WeakID {
		if w > max {
			max = w
		}
	}
	return max
}
