package component

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/splitcut/core"
)

// sccWalker carries Tarjan's algorithm state across the recursive walk:
// an index counter, a low-link table, an explicit stack of vertices
// currently being explored, and an on-stack membership set.
type sccWalker struct {
	graph   *core.Graph
	index   map[string]int
	lowlink map[string]int
	onStack map[string]bool
	stack   []string
	counter int
	labels  map[string]int
	next    int
}

// SCC labels every node of nodes by strongly connected component over
// the directed edge set edges, using Tarjan's algorithm. Isolated nodes
// (no incident edge) receive their own singleton component. Labels are
// raw (not yet densely reindexed) but deterministic: components are
// numbered in the order their root is first popped off the algorithm's
// stack, which is itself a function of the traversal order: vertices
// and neighbors are visited in lexicographic order of their decimal id
// strings (so "10" is visited before "2").
func SCC(nodes []int, edges []Pair) map[int]int {
	g := buildDirectedGraph(nodes, edges)

	w := &sccWalker{
		graph:   g,
		index:   make(map[string]int),
		lowlink: make(map[string]int),
		onStack: make(map[string]bool),
		labels:  make(map[string]int),
	}

	for _, v := range g.Vertices() {
		if _, visited := w.index[v]; !visited {
			w.strongConnect(v)
		}
	}

	out := make(map[int]int, len(nodes))
	for _, n := range nodes {
		out[n] = w.labels[strconv.Itoa(n)]
	}
	return out
}

func (w *sccWalker) strongConnect(v string) {
	w.index[v] = w.counter
	w.lowlink[v] = w.counter
	w.counter++
	w.stack = append(w.stack, v)
	w.onStack[v] = true

	neighborIDs, _ := w.graph.NeighborIDs(v)
	sort.Strings(neighborIDs)
	for _, t := range neighborIDs {
		if _, visited := w.index[t]; !visited {
			w.strongConnect(t)
			if w.lowlink[t] < w.lowlink[v] {
				w.lowlink[v] = w.lowlink[t]
			}
		} else if w.onStack[t] {
			if w.index[t] < w.lowlink[v] {
				w.lowlink[v] = w.index[t]
			}
		}
	}

	if w.lowlink[v] == w.index[v] {
		label := w.next
		w.next++
		for {
			n := len(w.stack) - 1
			top := w.stack[n]
			w.stack = w.stack[:n]
			w.onStack[top] = false
			w.labels[top] = label
			if top == v {
				break
			}
		}
	}
}

// buildDirectedGraph constructs a directed, multi-edge-tolerant core.Graph
// over the given node set and edge pairs, guaranteeing every node in
// nodes appears as a vertex even if it has no incident edge.
func buildDirectedGraph(nodes []int, edges []Pair) *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	for _, n := range nodes {
		_ = g.AddVertex(strconv.Itoa(n))
	}
	for _, e := range edges {
		src, tgt := strconv.Itoa(e.Src), strconv.Itoa(e.Tgt)
		_ = g.AddVertex(src)
		_ = g.AddVertex(tgt)
		if src == tgt {
			continue
		}
		_, _ = g.AddEdge(src, tgt)
	}
	return g
}
