// SPDX-License-Identifier: MIT

// Package blockmatrix provides the block-by-block aggregate edge-weight
// matrix ("blockmodel") used by the partition core.
//
// Purpose:
//   - Cell (i, j) holds the summed weight of all edges whose source vertex
//     lies in block i and whose destination vertex lies in block j.
//   - The partition core needs exactly three operations: point increment,
//     point read, and deep copy. Everything else (row/column sums, reset)
//     exists to keep degree bookkeeping and invariant checks cheap.
//
// Backings:
//   - Dense  — flat row-major []int64 buffer; O(1) access, O(n²) memory.
//     The right choice while block counts are small.
//   - Hashed — map keyed by (row, col); memory proportional to the number
//     of non-zero cells. The right choice for large sparse blockmodels.
//
// Both satisfy the Matrix interface, so the partition core never commits
// to a storage scheme.
//
// Errors:
//   - ErrBadDimension: requested dimension < 1.
//   - ErrOutOfRange: a row or column index outside [0, Dim()).
//   - ErrNegativeWeight: a negative increment (aggregates only ever grow).
//
// Determinism:
//   - RowSum/ColSum on Hashed iterate indices, never map order.
//   - No global state; every matrix is an independent value.
package blockmatrix
