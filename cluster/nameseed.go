package cluster

import (
	"github.com/katalvlaran/splitcut/entity"
	"github.com/katalvlaran/splitcut/ident"
	"github.com/katalvlaran/splitcut/similarity"
)

// seedNameID assigns a raw name_id to every entity, per the driver's
// step 1: either exact-normalized-name grouping, or (when
// opts.UseInitTextClustering is set) a DBSCAN pass over the lexical
// similarity engine's distance matrix, seeding one cluster id per
// dense name neighborhood and a fresh singleton id for everything
// left over.
func (d *Driver) seedNameID(table *entity.Table) map[int]int {
	if !d.opts.UseInitTextClustering {
		return exactNameGrouping(table, d.tok)
	}
	return textClusterNameGrouping(table, d.tok, d.opts.TextEPS, d.opts.TextMinPts)
}

// exactNameGrouping assigns the same raw id to every entity sharing a
// normalized identifier.
func exactNameGrouping(table *entity.Table, tok *ident.Tokenizer) map[int]int {
	normIx := make(map[string]int)
	raw := make(map[int]int, len(table.Entities))
	for _, e := range table.Entities {
		norm := tok.Normalize(e.Name)
		ix, ok := normIx[norm]
		if !ok {
			ix = len(normIx)
			normIx[norm] = ix
		}
		raw[e.ID] = ix
	}
	return raw
}

// textClusterNameGrouping mirrors the source pipeline's
// to_name_cluster_labels: non-file entities whose name falls in a
// dense DBSCAN cluster share that cluster's id; every other distinct
// normalized name (file entities, and any name DBSCAN called noise)
// gets its own fresh id, appended after the highest DBSCAN cluster id.
func textClusterNameGrouping(table *entity.Table, tok *ident.Tokenizer, eps float64, minPts int) map[int]int {
	names := make([]string, 0, len(table.Entities))
	for _, e := range table.Entities {
		if !e.IsFile() {
			names = append(names, e.Name)
		}
	}

	idx := similarity.BuildNameIndex(tok, names, similarity.BuildOptions{AllowDupNames: true})

	var clusterOf map[string]int
	maxLabel := -1
	if idx.NumDocs() > 0 {
		dist := idx.DistMatrix()
		labels := similarity.DBSCAN(dist, eps, minPts)
		clusterOf = make(map[string]int, len(labels))
		for i, doc := range idx.Docs() {
			clusterOf[doc] = labels[i]
			if labels[i] > maxLabel {
				maxLabel = labels[i]
			}
		}
	}

	raw := make(map[int]int, len(table.Entities))
	byName := make(map[string]int)
	next := maxLabel + 1
	for _, e := range table.Entities {
		norm := tok.Normalize(e.Name)
		if assigned, ok := byName[norm]; ok {
			raw[e.ID] = assigned
			continue
		}

		label := -1
		if !e.IsFile() {
			if l, ok := clusterOf[norm]; ok && l >= 0 {
				label = l
			}
		}
		if label < 0 {
			label = next
			next++
		}
		byName[norm] = label
		raw[e.ID] = label
	}
	return raw
}
