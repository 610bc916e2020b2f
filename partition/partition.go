package partition

import (
	"fmt"

	"github.com/vtsynergy/DistributedSBP/blockmatrix"
	"github.com/vtsynergy/DistributedSBP/graph"
)

// newBlockmodel allocates a zeroed n×n aggregate matrix with the backing
// selected by sparse.
func newBlockmodel(n int, sparse bool) (blockmatrix.Matrix, error) {
	if sparse {
		return blockmatrix.NewHashed(n)
	}

	return blockmatrix.NewDense(n)
}

// normalizeRate applies the default reduction rate to a zero value and
// rejects anything outside (0, 1].
func normalizeRate(rate float64) (float64, error) {
	if rate == 0 {
		return DefaultBlockReductionRate, nil
	}
	if rate < 0 || rate > 1 {
		return 0, fmt.Errorf("rate=%g: %w", rate, ErrBadReductionRate)
	}

	return rate, nil
}

// New builds a Partition from an explicit assignment. The assignment is
// stored as-is; the caller must invoke InitializeEdgeCounts before the
// blockmodel or degree vectors are meaningful.
//
// Errors:
//   - ErrBadBlockCount when numBlocks < 1.
//   - ErrShapeMismatch when len(assignment) != adj.Order().
//   - ErrInvalidBlock when any assignment value lies outside [0, numBlocks).
//   - ErrBadReductionRate when opts.BlockReductionRate is outside (0, 1]
//     (zero selects the default).
//
// Time: O(V + B²) dense / O(V) sparse.
func New(numBlocks int, adj graph.Adjacency, assignment []int, opts Options) (*Partition, error) {
	if numBlocks < 1 {
		return nil, fmt.Errorf("New: numBlocks=%d: %w", numBlocks, ErrBadBlockCount)
	}
	if len(assignment) != adj.Order() {
		return nil, fmt.Errorf("New: %d assignments for %d vertices: %w",
			len(assignment), adj.Order(), ErrShapeMismatch)
	}
	for v, b := range assignment {
		if b < 0 || b >= numBlocks {
			return nil, fmt.Errorf("New: vertex %d has block %d of %d: %w", v, b, numBlocks, ErrInvalidBlock)
		}
	}
	rate, err := normalizeRate(opts.BlockReductionRate)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	bm, err := newBlockmodel(numBlocks, opts.Sparse)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	stored := make([]int, len(assignment))
	copy(stored, assignment)

	return &Partition{
		NumBlocks:          numBlocks,
		BlockAssignment:    stored,
		Blockmodel:         bm,
		DegreesOut:         make([]int64, numBlocks),
		DegreesIn:          make([]int64, numBlocks),
		Degrees:            make([]int64, numBlocks),
		BlockReductionRate: rate,
		sparse:             opts.Sparse,
	}, nil
}

// FromTrueMembership builds a fully initialized Partition from a
// ground-truth membership vector. The block count is the number of distinct
// membership values actually used — a presence check over the full id
// range, not max+1. Non-contiguous membership values are compacted to a
// dense [0, numBlocks) range, preserving ascending id order, so the
// resulting assignment always satisfies the range invariant.
//
// Errors: ErrInvalidBlock for negative values or values >= len(membership);
// everything New and InitializeEdgeCounts can return.
//
// Time: O(V + E).
func FromTrueMembership(adj graph.Adjacency, membership []int, opts Options) (*Partition, error) {
	if len(membership) != adj.Order() {
		return nil, fmt.Errorf("FromTrueMembership: %d memberships for %d vertices: %w",
			len(membership), adj.Order(), ErrShapeMismatch)
	}
	if len(membership) == 0 {
		return nil, fmt.Errorf("FromTrueMembership: empty membership: %w", ErrBadBlockCount)
	}

	// Presence scan over the full id range [0, V).
	used := make([]bool, len(membership))
	for v, b := range membership {
		if b < 0 || b >= len(membership) {
			return nil, fmt.Errorf("FromTrueMembership: vertex %d has membership %d: %w",
				v, b, ErrInvalidBlock)
		}
		used[b] = true
	}
	// Dense relabeling in ascending id order.
	numBlocks := 0
	dense := make([]int, len(used))
	for b, present := range used {
		if present {
			dense[b] = numBlocks
			numBlocks++
		}
	}

	assignment := make([]int, len(membership))
	for v, b := range membership {
		assignment[v] = dense[b]
	}

	p, err := New(numBlocks, adj, assignment, opts)
	if err != nil {
		return nil, err
	}
	if err = p.InitializeEdgeCounts(adj); err != nil {
		return nil, err
	}

	return p, nil
}

// FromSample builds a fully initialized Partition for the full graph from
// a partitioned sample of it. mapping takes full-graph vertex id → sample
// vertex id and covers only sampled vertices.
//
// Seeding proceeds in three passes:
//  1. every sampled vertex takes its block from the sample assignment;
//  2. every remaining vertex receives a fresh temporary block id starting
//     at numBlocks;
//  3. each temporary vertex is reassigned to the original block its
//     outgoing neighbors most often occupy (neighbors still in a temporary
//     block are ignored; ties break to the lowest block id).
//
// Errors: ErrBadBlockCount, ErrInvalidBlock (sample assignment or mapping
// out of range), ErrShapeMismatch via New, plus InitializeEdgeCounts
// failures.
//
// Time: O(V·B + E) due to the per-vertex tally in pass 3.
func FromSample(numBlocks int, adj graph.Adjacency, sampleAssignment []int, mapping map[int]int, opts Options) (*Partition, error) {
	if numBlocks < 1 {
		return nil, fmt.Errorf("FromSample: numBlocks=%d: %w", numBlocks, ErrBadBlockCount)
	}
	order := adj.Order()
	assignment := make([]int, order)
	for v := range assignment {
		assignment[v] = unassigned
	}

	// Pass 1: adopt sample blocks through the mapping.
	// Map iteration order is irrelevant: writes are independent per key.
	for fullVertex, sampleVertex := range mapping {
		if fullVertex < 0 || fullVertex >= order {
			return nil, fmt.Errorf("FromSample: mapped vertex %d of %d: %w",
				fullVertex, order, ErrShapeMismatch)
		}
		if sampleVertex < 0 || sampleVertex >= len(sampleAssignment) {
			return nil, fmt.Errorf("FromSample: sample vertex %d of %d: %w",
				sampleVertex, len(sampleAssignment), ErrShapeMismatch)
		}
		b := sampleAssignment[sampleVertex]
		if b < 0 || b >= numBlocks {
			return nil, fmt.Errorf("FromSample: sample vertex %d has block %d of %d: %w",
				sampleVertex, b, numBlocks, ErrInvalidBlock)
		}
		assignment[fullVertex] = b
	}

	// Pass 2: unique temporary ids for unsampled vertices, ascending order.
	// NumBlocks temporarily undercounts the id range in use.
	nextBlock := numBlocks
	for v := 0; v < order; v++ {
		if assignment[v] == unassigned {
			assignment[v] = nextBlock
			nextBlock++
		}
	}

	// Pass 3: reassign each temporary vertex to the original block holding
	// the most of its outgoing neighbors. Arcs count once each, regardless
	// of weight. First maximum wins, so ties break to the lowest block id;
	// a vertex with no classified neighbors lands in block 0.
	tally := make([]int, numBlocks)
	for v := 0; v < order; v++ {
		if assignment[v] < numBlocks {
			continue
		}
		for i := range tally {
			tally[i] = 0
		}
		for _, nb := range adj[v] {
			if b := assignment[nb.Vertex]; b < numBlocks {
				tally[b]++
			}
		}
		best := 0
		for b := 1; b < numBlocks; b++ {
			if tally[b] > tally[best] {
				best = b
			}
		}
		assignment[v] = best
	}

	p, err := New(numBlocks, adj, assignment, opts)
	if err != nil {
		return nil, err
	}
	if err = p.InitializeEdgeCounts(adj); err != nil {
		return nil, err
	}

	return p, nil
}

// Copy returns an independent deep copy: assignment, blockmodel, degree
// vectors, and scalar fields share no mutable state with the receiver.
// NumBlocksToMerge resets to zero on the copy.
//
// Time: O(V + B + cells).
func (p *Partition) Copy() *Partition {
	assignment := make([]int, len(p.BlockAssignment))
	copy(assignment, p.BlockAssignment)
	degOut := make([]int64, len(p.DegreesOut))
	copy(degOut, p.DegreesOut)
	degIn := make([]int64, len(p.DegreesIn))
	copy(degIn, p.DegreesIn)
	deg := make([]int64, len(p.Degrees))
	copy(deg, p.Degrees)

	return &Partition{
		NumBlocks:          p.NumBlocks,
		BlockAssignment:    assignment,
		Blockmodel:         p.Blockmodel.Clone(),
		DegreesOut:         degOut,
		DegreesIn:          degIn,
		Degrees:            deg,
		BlockReductionRate: p.BlockReductionRate,
		NumBlocksToMerge:   0,
		OverallEntropy:     p.OverallEntropy,
		sparse:             p.sparse,
	}
}

// InitializeEdgeCounts rebuilds the blockmodel and all three degree
// vectors from scratch in a single pass over the adjacency. The aggregate
// matrix and degree vectors are reallocated zeroed first, so repeated
// calls are idempotent.
//
// For every arc u→v with weight w:
//
//	Blockmodel(b(u), b(v)) += w
//	DegreesOut[b(u)]       += w
//	DegreesIn[b(v)]        += w
//
// where b(x) is x's current block. Afterwards Degrees = DegreesOut +
// DegreesIn element-wise. Vertices without outgoing arcs contribute
// nothing on their own; that is a normal case, not an error.
//
// Errors: ErrShapeMismatch when adj.Order() != len(BlockAssignment);
// ErrInvalidBlock when the assignment holds an id outside [0, NumBlocks)
// (possible after an external sweep mutated it incorrectly).
//
// Time: O(V + E + B²) dense / O(V + E) sparse.
func (p *Partition) InitializeEdgeCounts(adj graph.Adjacency) error {
	if adj.Order() != len(p.BlockAssignment) {
		return fmt.Errorf("InitializeEdgeCounts: %d vertices for %d assignments: %w",
			adj.Order(), len(p.BlockAssignment), ErrShapeMismatch)
	}
	for v, b := range p.BlockAssignment {
		if b < 0 || b >= p.NumBlocks {
			return fmt.Errorf("InitializeEdgeCounts: vertex %d has block %d of %d: %w",
				v, b, p.NumBlocks, ErrInvalidBlock)
		}
	}

	if err := p.Blockmodel.Reset(p.NumBlocks); err != nil {
		return fmt.Errorf("InitializeEdgeCounts: %w", err)
	}
	p.DegreesOut = make([]int64, p.NumBlocks)
	p.DegreesIn = make([]int64, p.NumBlocks)
	p.Degrees = make([]int64, p.NumBlocks)

	for vertex, arcs := range adj {
		block := p.BlockAssignment[vertex]
		for _, nb := range arcs {
			neighborBlock := p.BlockAssignment[nb.Vertex]
			if err := p.Blockmodel.Inc(block, neighborBlock, nb.Weight); err != nil {
				return fmt.Errorf("InitializeEdgeCounts: %w", err)
			}
			p.DegreesOut[block] += nb.Weight
			p.DegreesIn[neighborBlock] += nb.Weight
		}
	}
	for i := 0; i < p.NumBlocks; i++ {
		p.Degrees[i] = p.DegreesOut[i] + p.DegreesIn[i]
	}

	return nil
}

// MergeBlocks rewrites every assignment entry equal to from into to.
// Pure relabeling: the blockmodel and degree vectors are untouched and
// become stale until the next InitializeEdgeCounts.
//
// Errors: ErrInvalidBlock when from or to lies outside [0, NumBlocks).
// Time: O(V).
func (p *Partition) MergeBlocks(from, to int) error {
	if from < 0 || from >= p.NumBlocks {
		return fmt.Errorf("MergeBlocks: from=%d of %d: %w", from, p.NumBlocks, ErrInvalidBlock)
	}
	if to < 0 || to >= p.NumBlocks {
		return fmt.Errorf("MergeBlocks: to=%d of %d: %w", to, p.NumBlocks, ErrInvalidBlock)
	}
	for v, b := range p.BlockAssignment {
		if b == from {
			p.BlockAssignment[v] = to
		}
	}

	return nil
}

// PlanMerges derives NumBlocksToMerge from the configured reduction rate
// and the current block count, stores it, and returns it. A single block
// plans zero merges.
func (p *Partition) PlanMerges() int {
	p.NumBlocksToMerge = int(p.BlockReductionRate * float64(p.NumBlocks))
	if p.NumBlocksToMerge >= p.NumBlocks {
		p.NumBlocksToMerge = p.NumBlocks - 1
	}

	return p.NumBlocksToMerge
}
