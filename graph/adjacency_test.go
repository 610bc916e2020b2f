// Package graph_test contains unit tests for the adjacency representation:
// construction, edge insertion validation, cloning isolation, and totals.
package graph_test

import (
	"errors"
	"testing"

	"github.com/vtsynergy/DistributedSBP/graph"
)

func TestNewAdjacency_NegativeOrder(t *testing.T) {
	_, err := graph.NewAdjacency(-1)
	if !errors.Is(err, graph.ErrBadOrder) {
		t.Fatalf("expected ErrBadOrder, got %v", err)
	}
}

func TestNewAdjacency_EmptyIsLegal(t *testing.T) {
	adj, err := graph.NewAdjacency(0)
	if err != nil {
		t.Fatal(err)
	}
	if adj.Order() != 0 {
		t.Fatalf("Order() = %d; want 0", adj.Order())
	}
}

func TestAddEdge_Validation(t *testing.T) {
	adj, _ := graph.NewAdjacency(3)

	cases := []struct {
		name    string
		u, v    int
		w       int64
		wantErr error
	}{
		{"source negative", -1, 0, 1, graph.ErrVertexRange},
		{"source past end", 3, 0, 1, graph.ErrVertexRange},
		{"destination past end", 0, 3, 1, graph.ErrVertexRange},
		{"zero weight", 0, 1, 0, graph.ErrBadWeight},
		{"negative weight", 0, 1, -2, graph.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := adj.AddEdge(tc.u, tc.v, tc.w); !errors.Is(err, tc.wantErr) {
				t.Fatalf("AddEdge(%d,%d,%d) = %v; want %v", tc.u, tc.v, tc.w, err, tc.wantErr)
			}
		})
	}
}

func TestAddEdge_ParallelArcsAccumulate(t *testing.T) {
	adj, _ := graph.NewAdjacency(2)
	if err := adj.AddEdge(0, 1, 2); err != nil {
		t.Fatal(err)
	}
	if err := adj.AddEdge(0, 1, 3); err != nil {
		t.Fatal(err)
	}
	if got := len(adj[0]); got != 2 {
		t.Fatalf("len(adj[0]) = %d; want 2 (parallel arcs kept)", got)
	}
	if got, want := adj.EdgeWeightSum(), int64(5); got != want {
		t.Fatalf("EdgeWeightSum() = %d; want %d", got, want)
	}
}

func TestFromEdgeList_Deterministic(t *testing.T) {
	edges := []graph.Edge{
		{From: 0, To: 2, Weight: 3},
		{From: 1, To: 3, Weight: 2},
	}
	adj, err := graph.FromEdgeList(4, edges)
	if err != nil {
		t.Fatal(err)
	}
	if adj.Order() != 4 {
		t.Fatalf("Order() = %d; want 4", adj.Order())
	}
	if adj[0][0] != (graph.Neighbor{Vertex: 2, Weight: 3}) {
		t.Fatalf("adj[0][0] = %+v; want {2 3}", adj[0][0])
	}
	// Vertices 2 and 3 have no outgoing arcs; that is a normal case.
	if len(adj[2]) != 0 || len(adj[3]) != 0 {
		t.Fatalf("sink vertices must have empty arc lists")
	}
}

func TestFromEdgeList_BadEdgeSurfaces(t *testing.T) {
	_, err := graph.FromEdgeList(2, []graph.Edge{{From: 0, To: 5, Weight: 1}})
	if !errors.Is(err, graph.ErrVertexRange) {
		t.Fatalf("expected ErrVertexRange, got %v", err)
	}
}

func TestClone_Isolation(t *testing.T) {
	adj, _ := graph.FromEdgeList(3, []graph.Edge{{From: 0, To: 1, Weight: 4}})
	clone := adj.Clone()

	// Mutate the clone; the original must not observe it.
	if err := clone.AddEdge(0, 2, 7); err != nil {
		t.Fatal(err)
	}
	clone[0][0].Weight = 99

	if len(adj[0]) != 1 {
		t.Fatalf("original gained an arc after clone mutation")
	}
	if adj[0][0].Weight != 4 {
		t.Fatalf("original weight changed after clone mutation: %d", adj[0][0].Weight)
	}
}
