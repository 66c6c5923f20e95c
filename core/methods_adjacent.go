package core

import "sort"

// NeighborIDs returns the unique, sorted vertex IDs adjacent to id:
// e.From==id contributes e.To; for undirected edges, e.To==id also
// contributes e.From. Returns ErrVertexNotFound if id isn't in the graph.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	seen := make(map[string]struct{})
	for to, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e.Directed && e.From != id {
				continue
			}
			seen[to] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)
	return ids, nil
}

// ensureAdjacency guarantees the presence of the nested maps for (from,to).
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}
