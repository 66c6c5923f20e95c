// Package component groups integer node ids by structural connectivity
// over a directed dependency graph built with package core: grouping by
// name first, then by strongly connected component of the name
// grouping, then by weakly connected component of the strong grouping.
//
// Quotient maps an edge set through an arbitrary node grouping, keeping
// the mapped pairs in input order; duplicates and self-loops produced by
// the mapping are preserved. SCC labels nodes by strongly connected
// component (Tarjan's algorithm over a core.Graph). WCC labels nodes by
// weakly connected component via union-find.
//
// All three operations are deterministic: Quotient keeps the input edge
// order, SCC visits vertices and neighbors in lexicographic order of
// their decimal id strings, and WCC visits nodes and edges in ascending
// numeric order, so two calls on equal inputs produce identical raw
// labels (though, per package entity, raw labels are not yet dense —
// see entity.DenseRelabelInts).
package component
