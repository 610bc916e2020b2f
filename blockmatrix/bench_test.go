package blockmatrix_test

import (
	"math/rand"
	"testing"

	"github.com/vtsynergy/DistributedSBP/blockmatrix"
)

const benchDim = 256

// randomCells precomputes a fixed stream of increments so both backings
// are measured against identical work.
func randomCells(n int) [][3]int64 {
	rng := rand.New(rand.NewSource(42))
	cells := make([][3]int64, 4096)
	for i := range cells {
		cells[i] = [3]int64{int64(rng.Intn(n)), int64(rng.Intn(n)), int64(rng.Intn(8) + 1)}
	}

	return cells
}

func BenchmarkDenseInc(b *testing.B) {
	m, err := blockmatrix.NewDense(benchDim)
	if err != nil {
		b.Fatal(err)
	}
	cells := randomCells(benchDim)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := cells[i%len(cells)]
		if err = m.Inc(int(c[0]), int(c[1]), c[2]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHashedInc(b *testing.B) {
	m, err := blockmatrix.NewHashed(benchDim)
	if err != nil {
		b.Fatal(err)
	}
	cells := randomCells(benchDim)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := cells[i%len(cells)]
		if err = m.Inc(int(c[0]), int(c[1]), c[2]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDenseClone(b *testing.B) {
	m, err := blockmatrix.NewDense(benchDim)
	if err != nil {
		b.Fatal(err)
	}
	for _, c := range randomCells(benchDim) {
		if err = m.Inc(int(c[0]), int(c[1]), c[2]); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Clone()
	}
}
