package core

import "testing"

func TestAddVertexIsIdempotent(t *testing.T) {
	g := NewGraph()
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex repeat: %v", err)
	}
	if got := g.Vertices(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("Vertices() = %v, want [a]", got)
	}
}

func TestAddVertexRejectsEmptyID(t *testing.T) {
	g := NewGraph()
	if err := g.AddVertex(""); err != ErrEmptyVertexID {
		t.Fatalf("AddVertex(\"\") = %v, want ErrEmptyVertexID", err)
	}
}

func TestAddEdgeCreatesEndpointsAndDirectedNeighbor(t *testing.T) {
	g := NewGraph(WithDirected(true))
	if _, err := g.AddEdge("a", "b"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	got, err := g.NeighborIDs("a")
	if err != nil {
		t.Fatalf("NeighborIDs(a): %v", err)
	}
	if len(got) != 1 || got[0] != "b" {
		t.Fatalf("NeighborIDs(a) = %v, want [b]", got)
	}

	got, err = g.NeighborIDs("b")
	if err != nil {
		t.Fatalf("NeighborIDs(b): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("NeighborIDs(b) = %v, want none (directed edge)", got)
	}
}

func TestAddEdgeMirrorsUndirectedNeighbors(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddEdge("a", "b"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	for _, id := range []string{"a", "b"} {
		got, err := g.NeighborIDs(id)
		if err != nil {
			t.Fatalf("NeighborIDs(%s): %v", id, err)
		}
		if len(got) != 1 {
			t.Fatalf("NeighborIDs(%s) = %v, want exactly one neighbor", id, got)
		}
	}
}

func TestAddEdgeRejectsLoopUnlessEnabled(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddEdge("a", "a"); err != ErrLoopNotAllowed {
		t.Fatalf("AddEdge(a,a) = %v, want ErrLoopNotAllowed", err)
	}

	g = NewGraph(WithLoops())
	if _, err := g.AddEdge("a", "a"); err != nil {
		t.Fatalf("AddEdge(a,a) with WithLoops: %v", err)
	}
}

func TestAddEdgeRejectsMultiEdgeUnlessEnabled(t *testing.T) {
	g := NewGraph(WithDirected(true))
	if _, err := g.AddEdge("a", "b"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := g.AddEdge("a", "b"); err != ErrMultiEdgeNotAllowed {
		t.Fatalf("second AddEdge(a,b) = %v, want ErrMultiEdgeNotAllowed", err)
	}

	g = NewGraph(WithDirected(true), WithMultiEdges())
	if _, err := g.AddEdge("a", "b"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := g.AddEdge("a", "b"); err != nil {
		t.Fatalf("second AddEdge(a,b) with WithMultiEdges: %v", err)
	}
}

func TestNeighborIDsUnknownVertex(t *testing.T) {
	g := NewGraph()
	if _, err := g.NeighborIDs("missing"); err != ErrVertexNotFound {
		t.Fatalf("NeighborIDs(missing) = %v, want ErrVertexNotFound", err)
	}
}

func TestVerticesSortedAscending(t *testing.T) {
	g := NewGraph()
	for _, id := range []string{"c", "a", "b"} {
		if err := g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex(%s): %v", id, err)
		}
	}
	want := []string{"a", "b", "c"}
	got := g.Vertices()
	if len(got) != len(want) {
		t.Fatalf("Vertices() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Vertices() = %v, want %v", got, want)
		}
	}
}
