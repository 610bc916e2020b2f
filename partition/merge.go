package partition

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// argsortDescending returns the block ids ordered by descending score.
// gonum's Argsort sorts ascending, so the index slice is reversed in
// place afterwards. The input slice is not modified.
func argsortDescending(scores []float64) []int {
	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	order := make([]int, len(scores))
	floats.Argsort(sorted, order)
	for l, r := 0, len(order)-1; l < r; l, r = l+1, r-1 {
		order[l], order[r] = order[r], order[l]
	}

	return order
}

// CarryOutBestMerges applies the agglomerative merge round: it walks merge
// candidates in descending deltaEntropy order, resolves merge chains
// through a block-to-representative map, relabels vertices, and finally
// compacts the surviving block ids into a dense [0, NumBlocks) range.
//
// deltaEntropy holds one score per current block; bestMerge holds the
// proposed target block per current block. Both come from the external
// entropy estimator. The convention here is highest-score-first: callers
// whose estimator reports entropy *decrease* as a negative value must
// negate before calling.
//
// Chain resolution: the proposed target is looked up through the current
// representative map, so a block whose target was already absorbed merges
// into the final representative, never into an intermediate. A candidate
// whose chain collapses onto itself is skipped without consuming a merge
// slot.
//
// On success NumBlocks drops by exactly NumBlocksToMerge, every surviving
// block id lies in the new [0, NumBlocks) range with no gaps, and
// NumBlocksToMerge resets to zero. The blockmodel and degree vectors are
// NOT updated; re-run InitializeEdgeCounts before the next entropy
// evaluation.
//
// Errors:
//   - ErrShapeMismatch when either input length != NumBlocks.
//   - ErrInvalidBlock when a bestMerge entry lies outside [0, NumBlocks).
//   - ErrMergeUnderflow when candidates run out before NumBlocksToMerge
//     merges were applied; the assignment is left relabeled but NOT
//     compacted, and NumBlocks is unchanged.
//
// Time: O(B log B) sort + O(M·(B+V)) merges + O(V) compaction.
func (p *Partition) CarryOutBestMerges(deltaEntropy []float64, bestMerge []int) error {
	if len(deltaEntropy) != p.NumBlocks || len(bestMerge) != p.NumBlocks {
		return fmt.Errorf("CarryOutBestMerges: %d scores, %d targets for %d blocks: %w",
			len(deltaEntropy), len(bestMerge), p.NumBlocks, ErrShapeMismatch)
	}
	for b, target := range bestMerge {
		if target < 0 || target >= p.NumBlocks {
			return fmt.Errorf("CarryOutBestMerges: block %d proposes target %d of %d: %w",
				b, target, p.NumBlocks, ErrInvalidBlock)
		}
	}

	candidates := argsortDescending(deltaEntropy)

	// blockMap[b] is the current representative of block b. Identity until
	// b is absorbed; redirected wholesale on every merge so later lookups
	// land on the final representative in one step.
	blockMap := make([]int, p.NumBlocks)
	for b := range blockMap {
		blockMap[b] = b
	}

	merged := 0
	for _, mergeFrom := range candidates {
		if merged == p.NumBlocksToMerge {
			break
		}
		mergeTo := blockMap[bestMerge[mergeFrom]]
		if mergeTo == mergeFrom {
			// Chain collapses onto itself (self-merge proposal, or the
			// target was already merged into this block): no slot consumed.
			continue
		}
		for b, rep := range blockMap {
			if rep == mergeFrom {
				blockMap[b] = mergeTo
			}
		}
		if err := p.MergeBlocks(mergeFrom, mergeTo); err != nil {
			return fmt.Errorf("CarryOutBestMerges: %w", err)
		}
		merged++
	}
	if merged < p.NumBlocksToMerge {
		return fmt.Errorf("CarryOutBestMerges: applied %d of %d merges: %w",
			merged, p.NumBlocksToMerge, ErrMergeUnderflow)
	}

	p.compactBlockIDs()
	p.NumBlocks -= p.NumBlocksToMerge
	p.NumBlocksToMerge = 0

	return nil
}

// compactBlockIDs renumbers the block ids still present in the assignment
// to a dense range, assigning new ids in first-encounter order over the
// vertex sequence. The rewrite indexes by vertex position, never by block
// value, so overlapping vertex/block id ranges cannot corrupt the
// assignment.
//
// Time: O(V + B).
func (p *Partition) compactBlockIDs() {
	remap := make([]int, p.NumBlocks)
	for b := range remap {
		remap[b] = unassigned
	}
	next := 0
	for v, b := range p.BlockAssignment {
		if remap[b] == unassigned {
			remap[b] = next
			next++
		}
		p.BlockAssignment[v] = remap[b]
	}
}
