// Package graph provides the weighted directed adjacency representation
// consumed by the partition core, plus a deterministic synthetic generator
// for planted-partition graphs.
//
// What:
//
//   - Adjacency is a per-vertex slice of outgoing (Neighbor, Weight) arcs,
//     indexed by integer vertex id in [0, Order()).
//   - Edges carry strictly positive int64 weights; parallel arcs are allowed
//     and accumulate naturally in downstream aggregates.
//   - PlantedPartition samples a directed graph with a known ground-truth
//     block membership, for tests, benchmarks, and evaluation fixtures.
//
// Why:
//
//   - The inference core (partition/) only needs fast indexed scans over
//     outgoing arcs; a flat slice-of-slices keeps those scans allocation-free.
//   - Synthetic planted graphs give a known answer to validate merges and
//     correctness metrics against.
//
// Errors:
//
//   - ErrBadOrder: a vertex count below the allowed minimum.
//   - ErrVertexRange: an endpoint lies outside [0, Order()).
//   - ErrBadWeight: an edge weight is not strictly positive.
//   - ErrBadBlockCount: block count outside [1, numVertices].
//   - ErrInvalidProbability: edge probability outside [0, 1].
//   - ErrNeedRandSource: nil RNG where stochastic sampling is required.
//
// Determinism: all iteration is index-ordered; PlantedPartition is fully
// reproducible for a fixed *rand.Rand seed.
package graph
