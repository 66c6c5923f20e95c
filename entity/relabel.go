package entity

import "sort"

// DenseRelabelInts reindexes an arbitrary map of entity id -> raw label
// (e.g. a name_id seeded from a non-contiguous DBSCAN cluster id, or a
// strong_id used as an intermediate key) into a dense 0..N-1 range. Groups
// are numbered in ascending order of the smallest entity id they contain,
// with the raw label value as the tie-break, so the relabeling is a
// deterministic function of its input. It fills the role of pandas'
// groupby(...).ngroup() in the original clustering pipeline, but numbers
// groups by smallest member id, not by sorted label value.
func DenseRelabelInts(raw map[int]int) map[int]int {
	type group struct {
		label   int
		minID   int
		members []int
	}
	groups := make(map[int]*group)
	for id, label := range raw {
		g, ok := groups[label]
		if !ok {
			g = &group{label: label, minID: id}
			groups[label] = g
		}
		if id < g.minID {
			g.minID = id
		}
		g.members = append(g.members, id)
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].minID != ordered[j].minID {
			return ordered[i].minID < ordered[j].minID
		}
		return ordered[i].label < ordered[j].label
	})

	dense := make(map[int]int, len(raw))
	for newID, g := range ordered {
		for _, id := range g.members {
			dense[id] = newID
		}
	}
	return dense
}

// DenseRelabelStrings is the string-keyed analogue of DenseRelabelInts,
// used for deriving block_id from block_name. Groups are ordered by the
// smallest entity id sharing the label, then lexicographically by label,
// for determinism.
func DenseRelabelStrings(raw map[int]string) map[int]int {
	type group struct {
		label   string
		minID   int
		members []int
	}
	groups := make(map[string]*group)
	for id, label := range raw {
		g, ok := groups[label]
		if !ok {
			g = &group{label: label, minID: id}
			groups[label] = g
		}
		if id < g.minID {
			g.minID = id
		}
		g.members = append(g.members, id)
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].minID != ordered[j].minID {
			return ordered[i].minID < ordered[j].minID
		}
		return ordered[i].label < ordered[j].label
	})

	dense := make(map[int]int, len(raw))
	for newID, g := range ordered {
		for _, id := range g.members {
			dense[id] = newID
		}
	}
	return dense
}
