package cluster

import (
	"github.com/katalvlaran/splitcut/dataset"
	"github.com/katalvlaran/splitcut/entity"
)

// TableFromDataset builds the entity.Table a Driver run operates on
// from a loaded dataset.Dataset: targets and clients become entities
// (targets first, preserving dataset.Load's dense-id assignment),
// target and client deps become dependency edges.
func TableFromDataset(ds *dataset.Dataset) *entity.Table {
	return entity.NewTable(ds.Entities(), ds.Deps())
}
