package graph

import "fmt"

// NewAdjacency returns an empty adjacency over n vertices.
// Every vertex starts with zero outgoing arcs.
//
// Time: O(n). Memory: O(n).
func NewAdjacency(n int) (Adjacency, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewAdjacency: n=%d: %w", n, ErrBadOrder)
	}

	return make(Adjacency, n), nil
}

// Order returns the number of vertices.
func (a Adjacency) Order() int { return len(a) }

// AddEdge appends a directed arc u→v with weight w.
// Parallel arcs are permitted; their weights add up in any aggregate built
// from this adjacency.
//
// Errors: ErrVertexRange if u or v is outside [0, Order());
// ErrBadWeight if w <= 0.
// Time: amortized O(1).
func (a Adjacency) AddEdge(u, v int, w int64) error {
	if u < 0 || u >= len(a) {
		return fmt.Errorf("AddEdge: source %d: %w", u, ErrVertexRange)
	}
	if v < 0 || v >= len(a) {
		return fmt.Errorf("AddEdge: destination %d: %w", v, ErrVertexRange)
	}
	if w <= 0 {
		return fmt.Errorf("AddEdge: weight %d: %w", w, ErrBadWeight)
	}
	a[u] = append(a[u], Neighbor{Vertex: v, Weight: w})

	return nil
}

// FromEdgeList builds an adjacency over n vertices from an explicit edge
// list. Edges are inserted in slice order, so the result is deterministic.
//
// Time: O(n + len(edges)).
func FromEdgeList(n int, edges []Edge) (Adjacency, error) {
	adj, err := NewAdjacency(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = adj.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return adj, nil
}

// Clone returns a deep copy: mutating the clone's arc slices never affects
// the original.
//
// Time: O(V + E).
func (a Adjacency) Clone() Adjacency {
	out := make(Adjacency, len(a))
	for v, arcs := range a {
		if len(arcs) == 0 {
			continue
		}
		out[v] = make([]Neighbor, len(arcs))
		copy(out[v], arcs)
	}

	return out
}

// EdgeWeightSum returns the total weight over all arcs.
//
// Time: O(V + E).
func (a Adjacency) EdgeWeightSum() int64 {
	var total int64
	for _, arcs := range a {
		for _, nb := range arcs {
			total += nb.Weight
		}
	}

	return total
}
