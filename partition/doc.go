// Package partition maintains a partition of a weighted directed graph's
// vertices into blocks and implements the agglomerative block-merge step
// of stochastic block model inference.
//
// What:
//
//   - Partition owns the vertex→block assignment, the block-by-block
//     aggregate matrix (blockmodel), and the out/in/total block degree
//     vectors, keeping all of them mutually consistent.
//   - Four construction paths: explicit assignment, ground-truth
//     membership, seeding from a coarser sample, and deep Copy.
//   - CarryOutBestMerges consumes externally estimated per-block merge
//     candidates, resolves merge chains, relabels vertices, and compacts
//     the surviving block ids into a dense [0, NumBlocks) range.
//
// Why:
//
//   - The entropy estimator and the Metropolis-Hastings sweep both read
//     the blockmodel and degree vectors; this package is the single owner
//     of that derived state and of the merge mechanics that shrink it.
//   - Copy() gives clone-compare-discard isolation: explore a candidate
//     partition on a snapshot, keep the original untouched for rollback.
//
// Complexity:
//
//	– InitializeEdgeCounts:  O(V + E),      Memory O(B²) dense / O(cells) sparse
//	– MergeBlocks:           O(V)
//	– CarryOutBestMerges:    O(B log B + M·B + V)   (M merges applied)
//	– Copy:                  O(V + B + cells)
//
// Options:
//
//   - Options.BlockReductionRate: fraction of blocks eliminated per
//     agglomerative round.
//   - Options.Sparse: back the blockmodel with hashed storage instead of
//     a dense buffer.
//
// Errors:
//
//   - ErrShapeMismatch: assignment/candidate length disagrees with the
//     adjacency or the current block count.
//   - ErrInvalidBlock: a block id outside [0, NumBlocks).
//   - ErrBadBlockCount: a requested block count < 1.
//   - ErrMergeUnderflow: candidates exhausted before the merge target
//     was reached.
//
// The package is single-threaded by design: no suspension points, no
// internal locking. All passes are bounded, deterministic scans.
package partition
