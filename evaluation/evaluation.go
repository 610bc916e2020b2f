package evaluation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// Sentinel errors for evaluation inputs.
var (
	// ErrLengthMismatch indicates truth and inferred assignments of
	// different lengths.
	ErrLengthMismatch = errors.New("evaluation: assignment length mismatch")
	// ErrNegativeLabel indicates a negative inferred block label.
	// Only the truth side may use -1, which means "unknown".
	ErrNegativeLabel = errors.New("evaluation: negative inferred label")
	// ErrNoOverlap indicates fewer than two vertices with known truth.
	ErrNoOverlap = errors.New("evaluation: not enough vertices with known truth")
)

// UnknownTruth is the truth-side label for vertices whose ground-truth
// block is not known; such vertices are excluded from every metric.
const UnknownTruth = -1

// Metrics holds the goodness-of-partition measures derived from a
// contingency table. All values are invariant under relabeling of either
// partition.
type Metrics struct {
	// Pair-counting metrics.
	RandIndex         float64 // fraction of vertex pairs both partitions agree on
	AdjustedRandIndex float64 // Rand index corrected for chance, <= 1
	PairwiseRecall    float64 // same-truth pairs also placed together by the inference
	PairwisePrecision float64 // same-inferred pairs that truly belong together

	// Information-theoretic metrics (natural log).
	EntropyTruth             float64
	EntropyAlg               float64
	ConditionalTruthGivenAlg float64
	ConditionalAlgGivenTruth float64
	MutualInformation        float64
	FractionMissedInfo       float64 // H(truth|alg) / H(truth)
	FractionErroneousInfo    float64 // H(alg|truth) / H(alg)
}

// ContingencyTable builds the truth × inferred confusion matrix: cell
// (i, j) counts the vertices with truth block i and inferred block j.
// Vertices whose truth label is UnknownTruth are skipped. Labels are
// assumed dense; the table dimensions are max label + 1 on each side.
//
// Errors: ErrLengthMismatch, ErrNegativeLabel, ErrNoOverlap (no vertex
// with a known truth label).
//
// Time: O(V + K₁·K₂).
func ContingencyTable(truth, alg []int) (*mat.Dense, error) {
	if len(truth) != len(alg) {
		return nil, fmt.Errorf("ContingencyTable: %d truth vs %d inferred: %w",
			len(truth), len(alg), ErrLengthMismatch)
	}

	maxTruth, maxAlg, known := -1, -1, 0
	for v := range truth {
		if alg[v] < 0 {
			return nil, fmt.Errorf("ContingencyTable: vertex %d has label %d: %w",
				v, alg[v], ErrNegativeLabel)
		}
		if truth[v] == UnknownTruth {
			continue
		}
		if truth[v] < UnknownTruth {
			return nil, fmt.Errorf("ContingencyTable: vertex %d has truth %d: %w",
				v, truth[v], ErrNegativeLabel)
		}
		known++
		if truth[v] > maxTruth {
			maxTruth = truth[v]
		}
		if alg[v] > maxAlg {
			maxAlg = alg[v]
		}
	}
	if known == 0 {
		return nil, fmt.Errorf("ContingencyTable: %w", ErrNoOverlap)
	}

	table := mat.NewDense(maxTruth+1, maxAlg+1, nil)
	for v := range truth {
		if truth[v] == UnknownTruth {
			continue
		}
		table.Set(truth[v], alg[v], table.At(truth[v], alg[v])+1)
	}

	return table, nil
}

// Evaluate scores the inferred assignment against the truth. See Metrics
// for the measures produced; all are computed from a single contingency
// table pass.
//
// Errors: everything ContingencyTable returns, plus ErrNoOverlap when
// fewer than two vertices carry a known truth label (no pair to count).
//
// Time: O(V + K₁·K₂).
func Evaluate(truth, alg []int) (Metrics, error) {
	table, err := ContingencyTable(truth, alg)
	if err != nil {
		return Metrics{}, err
	}

	total := mat.Sum(table)
	if total < 2 {
		return Metrics{}, fmt.Errorf("Evaluate: %.0f known vertices: %w", total, ErrNoOverlap)
	}

	m := Metrics{}
	pairCounting(table, total, &m)
	informationTheoretic(table, total, &m)

	return m, nil
}

// pairCounting fills the Rand-family metrics from the contingency table.
// Grounded in the standard pair-counting identities: with T the table,
// r the row sums and c the column sums over N classified vertices,
//
//	agreeSame = ½ ΣΣ t(t−1)
//	agreeDiff = ½ (N² + ΣΣ t² − Σc² − Σr²)
func pairCounting(table *mat.Dense, total float64, m *Metrics) {
	rows, cols := table.Dims()
	rowSums := make([]float64, rows)
	colSums := make([]float64, cols)
	for i := 0; i < rows; i++ {
		rowSums[i] = floats.Sum(table.RawRowView(i))
	}
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, table)
		colSums[j] = floats.Sum(col)
	}

	var agreeSame, sumTableSquared float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t := table.At(i, j)
			agreeSame += choose2(t)
			sumTableSquared += t * t
		}
	}
	var sumRowSquared, sumColSquared, sameTruth, sameAlg float64
	for _, r := range rowSums {
		sumRowSquared += r * r
		sameTruth += choose2(r)
	}
	for _, c := range colSums {
		sumColSquared += c * c
		sameAlg += choose2(c)
	}

	numPairs := float64(combin.Binomial(int(total), 2))
	agreeDiff := (total*total + sumTableSquared - sumColSquared - sumRowSquared) / 2
	m.RandIndex = (agreeSame + agreeDiff) / numPairs

	// Adjusted Rand index: observed vs expected-by-chance pair agreement.
	expected := sameTruth * sameAlg / numPairs
	denominator := (sameTruth+sameAlg)/2 - expected
	if denominator != 0 {
		m.AdjustedRandIndex = (agreeSame - expected) / denominator
	}

	if sameTruth > 0 {
		m.PairwiseRecall = agreeSame / sameTruth
	}
	if sameAlg > 0 {
		m.PairwisePrecision = agreeSame / sameAlg
	}
}

// informationTheoretic fills the entropy-based metrics. The joint
// distribution is the normalized contingency table; zero cells contribute
// nothing (lim p→0 of p·log p).
func informationTheoretic(table *mat.Dense, total float64, m *Metrics) {
	rows, cols := table.Dims()
	marginalTruth := make([]float64, rows)
	marginalAlg := make([]float64, cols)
	for i := 0; i < rows; i++ {
		marginalTruth[i] = floats.Sum(table.RawRowView(i)) / total
	}
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, table)
		marginalAlg[j] = floats.Sum(col) / total
	}

	for _, p := range marginalTruth {
		if p > 0 {
			m.EntropyTruth -= p * math.Log(p)
		}
	}
	for _, p := range marginalAlg {
		if p > 0 {
			m.EntropyAlg -= p * math.Log(p)
		}
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			joint := table.At(i, j) / total
			if joint == 0 {
				continue
			}
			m.ConditionalTruthGivenAlg -= joint * math.Log(joint/marginalAlg[j])
			m.ConditionalAlgGivenTruth -= joint * math.Log(joint/marginalTruth[i])
			m.MutualInformation += joint * math.Log(joint/(marginalTruth[i]*marginalAlg[j]))
		}
	}

	if m.EntropyTruth > 0 {
		m.FractionMissedInfo = m.ConditionalTruthGivenAlg / m.EntropyTruth
	}
	if m.EntropyAlg > 0 {
		m.FractionErroneousInfo = m.ConditionalAlgGivenTruth / m.EntropyAlg
	}
}

// choose2 is n-choose-2 over a non-negative integral count stored as a
// float64.
func choose2(n float64) float64 {
	if n < 2 {
		return 0
	}

	return float64(combin.Binomial(int(n), 2))
}
