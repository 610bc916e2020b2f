// Package graph defines core types and sentinel errors for the weighted
// directed adjacency used across github.com/vtsynergy/DistributedSBP.
package graph

import "errors"

// Sentinel errors for adjacency construction and mutation.
var (
	// ErrBadOrder indicates a requested vertex count < 0.
	ErrBadOrder = errors.New("graph: vertex count must be non-negative")
	// ErrVertexRange indicates an edge endpoint outside [0, Order()).
	ErrVertexRange = errors.New("graph: vertex id out of range")
	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("graph: edge weight must be positive")
	// ErrBadBlockCount indicates a block count outside [1, numVertices].
	ErrBadBlockCount = errors.New("graph: block count out of range")
	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("graph: probability must lie in [0,1]")
	// ErrNeedRandSource indicates a nil RNG where sampling is required.
	ErrNeedRandSource = errors.New("graph: random source is required")
)

// Neighbor is a single outgoing arc: destination vertex and edge weight.
// Weights are strictly positive; aggregation code sums them as int64.
type Neighbor struct {
	Vertex int   // destination vertex id in [0, Order())
	Weight int64 // edge weight, > 0
}

// Edge is an explicit (From, To, Weight) triple used by FromEdgeList.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Adjacency maps each vertex to its outgoing arcs. The outer index is the
// source vertex id; a vertex with no outgoing edges has a nil or empty slice.
// Adjacency is directed: an arc (u→v) does not imply (v→u).
type Adjacency [][]Neighbor
