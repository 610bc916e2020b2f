package graph

import (
	"fmt"
	"math/rand"
)

// File-local constants (stable method tag and domains).
const (
	methodPlantedPartition = "PlantedPartition"
	probMin                = 0.0
	probMax                = 1.0
)

// PlantedPartition samples a directed graph over numVertices vertices whose
// ground-truth membership assigns vertex v to block v % numBlocks. Each
// ordered pair (u,v), u != v, becomes an arc of weight 1 independently with
// probability pIn when u and v share a block, pOut otherwise.
//
// Returns the adjacency and the ground-truth membership vector.
//
// Contract:
//   - numVertices >= 1 (else ErrBadOrder).
//   - 1 <= numBlocks <= numVertices (else ErrBadBlockCount).
//   - 0 <= pIn, pOut <= 1 (else ErrInvalidProbability).
//   - rng must be non-nil whenever 0 < pIn < 1 or 0 < pOut < 1
//     (else ErrNeedRandSource).
//
// Determinism: trial order is u asc, v asc; for a fixed seeded rng the
// output is reproducible.
//
// Time: O(numVertices^2). Memory: O(V + E).
func PlantedPartition(numVertices, numBlocks int, pIn, pOut float64, rng *rand.Rand) (Adjacency, []int, error) {
	if numVertices < 1 {
		return nil, nil, fmt.Errorf("%s: numVertices=%d: %w", methodPlantedPartition, numVertices, ErrBadOrder)
	}
	if numBlocks < 1 || numBlocks > numVertices {
		return nil, nil, fmt.Errorf("%s: numBlocks=%d with %d vertices: %w",
			methodPlantedPartition, numBlocks, numVertices, ErrBadBlockCount)
	}
	if pIn < probMin || pIn > probMax || pOut < probMin || pOut > probMax {
		return nil, nil, fmt.Errorf("%s: pIn=%g pOut=%g not in [%g,%g]: %w",
			methodPlantedPartition, pIn, pOut, probMin, probMax, ErrInvalidProbability)
	}
	stochastic := (pIn > probMin && pIn < probMax) || (pOut > probMin && pOut < probMax)
	if rng == nil && stochastic {
		return nil, nil, fmt.Errorf("%s: %w", methodPlantedPartition, ErrNeedRandSource)
	}

	membership := make([]int, numVertices)
	for v := 0; v < numVertices; v++ {
		membership[v] = v % numBlocks
	}

	adj := make(Adjacency, numVertices)
	for u := 0; u < numVertices; u++ {
		for v := 0; v < numVertices; v++ {
			if u == v {
				continue // no self-loops in the planted model
			}
			p := pOut
			if membership[u] == membership[v] {
				p = pIn
			}
			switch {
			case p == probMin:
				continue
			case p == probMax:
				// deterministic inclusion, no RNG draw
			default:
				if rng.Float64() >= p {
					continue
				}
			}
			adj[u] = append(adj[u], Neighbor{Vertex: v, Weight: 1})
		}
	}

	return adj, membership, nil
}
