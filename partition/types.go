// Package partition defines the Partition aggregate, configuration options,
// and sentinel errors for the agglomerative block-merge core.
package partition

import (
	"errors"

	"github.com/vtsynergy/DistributedSBP/blockmatrix"
)

// Sentinel errors returned by the partition core.
var (
	// ErrShapeMismatch indicates an input vector whose length disagrees
	// with the adjacency order or the current block count.
	ErrShapeMismatch = errors.New("partition: input length mismatch")

	// ErrInvalidBlock indicates a block id outside [0, NumBlocks).
	ErrInvalidBlock = errors.New("partition: block id out of range")

	// ErrBadBlockCount indicates a requested block count < 1.
	ErrBadBlockCount = errors.New("partition: block count must be >= 1")

	// ErrBadReductionRate indicates a reduction rate outside (0, 1].
	ErrBadReductionRate = errors.New("partition: reduction rate must lie in (0,1]")

	// ErrMergeUnderflow indicates that merge candidates were exhausted
	// before NumBlocksToMerge merges could be applied. The assignment is
	// left relabeled but not compacted; recovery policy belongs to the
	// caller.
	ErrMergeUnderflow = errors.New("partition: not enough merge candidates")
)

// unassigned marks a vertex with no block during FromSample seeding.
// It is distinct from every valid block id and never survives construction.
const unassigned = -1

// DefaultBlockReductionRate is the fraction of blocks eliminated per
// agglomerative round when no explicit rate is configured.
const DefaultBlockReductionRate = 0.5

// Options configures Partition construction.
//
// BlockReductionRate – fraction in (0,1] of current blocks to eliminate per
// reduction round; PlanMerges derives NumBlocksToMerge from it.
// Sparse             – back the blockmodel with hashed storage; dense
// storage is the default and the right choice for small block counts.
type Options struct {
	BlockReductionRate float64
	Sparse             bool
}

// DefaultOptions returns the default configuration:
// BlockReductionRate=0.5, dense blockmodel storage.
func DefaultOptions() Options {
	return Options{BlockReductionRate: DefaultBlockReductionRate, Sparse: false}
}

// Partition is the mutable partition state: the assignment, the aggregate
// blockmodel, and the degree vectors derived from both.
//
// Invariants (after InitializeEdgeCounts, until the next merge):
//   - every BlockAssignment value lies in [0, NumBlocks)
//   - sum(Blockmodel row i)    == DegreesOut[i]
//   - sum(Blockmodel column i) == DegreesIn[i]
//   - Degrees[i] == DegreesOut[i] + DegreesIn[i]
//
// CarryOutBestMerges leaves Blockmodel and the degree vectors stale on
// purpose; callers re-run InitializeEdgeCounts before the next entropy
// evaluation.
type Partition struct {
	// NumBlocks is the current count of live blocks.
	NumBlocks int

	// BlockAssignment maps vertex id → block id, one entry per vertex.
	BlockAssignment []int

	// Blockmodel is the aggregate inter-block edge-weight matrix.
	Blockmodel blockmatrix.Matrix

	// DegreesOut, DegreesIn, Degrees hold per-block aggregate edge weight:
	// outgoing, incoming, and their element-wise sum.
	DegreesOut []int64
	DegreesIn  []int64
	Degrees    []int64

	// BlockReductionRate controls how many blocks each reduction round
	// eliminates; see PlanMerges.
	BlockReductionRate float64

	// NumBlocksToMerge is the number of blocks the next CarryOutBestMerges
	// call must eliminate.
	NumBlocksToMerge int

	// OverallEntropy is owned here but computed by the external entropy
	// collaborator.
	OverallEntropy float64

	sparse bool // blockmodel backing choice, carried through Copy and Reset
}
