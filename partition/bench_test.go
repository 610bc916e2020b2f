package partition_test

import (
	"math/rand"
	"testing"

	"github.com/vtsynergy/DistributedSBP/graph"
	"github.com/vtsynergy/DistributedSBP/partition"
)

// benchGraph samples a fixed planted-partition graph: 2000 vertices in 50
// blocks, dense within blocks and sparse across.
func benchGraph(b *testing.B) (graph.Adjacency, []int) {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	adj, membership, err := graph.PlantedPartition(2000, 50, 0.2, 0.005, rng)
	if err != nil {
		b.Fatalf("setup PlantedPartition failed: %v", err)
	}

	return adj, membership
}

// BenchmarkInitializeEdgeCounts measures the single-pass aggregate rebuild.
// Complexity: O(V + E + B²) on the dense backing.
func BenchmarkInitializeEdgeCounts(b *testing.B) {
	adj, membership := benchGraph(b)
	p, err := partition.FromTrueMembership(adj, membership, partition.DefaultOptions())
	if err != nil {
		b.Fatalf("setup FromTrueMembership failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = p.InitializeEdgeCounts(adj); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInitializeEdgeCounts_Sparse is the same rebuild on the hashed
// blockmodel backing.
func BenchmarkInitializeEdgeCounts_Sparse(b *testing.B) {
	adj, membership := benchGraph(b)
	p, err := partition.FromTrueMembership(adj, membership, partition.Options{Sparse: true})
	if err != nil {
		b.Fatalf("setup FromTrueMembership failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = p.InitializeEdgeCounts(adj); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCarryOutBestMerges measures a full merge round (half the blocks)
// including the compaction sweep. Each iteration works on a fresh copy so
// the merge always starts from the same state.
func BenchmarkCarryOutBestMerges(b *testing.B) {
	adj, membership := benchGraph(b)
	p, err := partition.FromTrueMembership(adj, membership, partition.DefaultOptions())
	if err != nil {
		b.Fatalf("setup FromTrueMembership failed: %v", err)
	}
	// Ring proposals guarantee enough non-self candidates.
	scores := make([]float64, p.NumBlocks)
	targets := make([]int, p.NumBlocks)
	for i := range targets {
		scores[i] = float64(i)
		targets[i] = (i + 1) % p.NumBlocks
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		work := p.Copy()
		work.PlanMerges()
		b.StartTimer()
		if err = work.CarryOutBestMerges(scores, targets); err != nil {
			b.Fatal(err)
		}
	}
}
