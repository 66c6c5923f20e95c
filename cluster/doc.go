// Package cluster drives the end-to-end decomposition of one god
// file's entity table into a hierarchical block structure: it seeds
// name_id/strong_id/weak_id grouping columns, derives lexical
// similarity edges between strong groups, recursively bisects every
// weakly connected component with package partition, and assigns
// hierarchical block_name/block_id labels to every entity.
//
// Independent weakly connected components are processed concurrently
// via golang.org/x/sync/errgroup, one goroutine per component. Solver
// calls inside any one component run sequentially; partition.Bisect
// keeps only call-local state, so calls from different components run
// in parallel without further serialization.
package cluster
