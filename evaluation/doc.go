// Package evaluation scores an inferred block assignment against a
// ground-truth membership using permutation-invariant clustering metrics.
//
// What:
//
//   - ContingencyTable builds the truth × inferred confusion matrix;
//     truth label -1 marks "unknown" vertices and is excluded.
//   - Evaluate derives pair-counting metrics (Rand index, adjusted Rand
//     index, pairwise precision/recall) and information-theoretic metrics
//     (partition entropies, conditional entropies, mutual information,
//     missed/erroneous information fractions) from that table.
//
// Why:
//
//   - Block ids carry no meaning across partitions, so naive per-vertex
//     accuracy is useless; every metric here is invariant under relabeling
//     of either partition.
//
// Complexity: O(V) table construction + O(K₁·K₂) metric passes.
//
// Errors:
//
//   - ErrLengthMismatch: truth and inferred assignments differ in length.
//   - ErrNegativeLabel: a negative inferred label (only truth may use -1).
//   - ErrNoOverlap: fewer than two vertices carry a known truth label, so
//     no vertex pair exists to count.
//
// Degenerate denominators (a partition with every vertex in its own block,
// or all in one) yield 0 for the affected ratio rather than NaN.
package evaluation
