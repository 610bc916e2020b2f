// Package sbp is the bookkeeping core of a stochastic block model
// inference pipeline: partition state, aggregate block adjacency, and
// the agglomerative block-merge machinery.
//
// 🚀 What lives here?
//
//	A small, deterministic library that brings together:
//		• graph/       — weighted directed adjacency lists + synthetic generators
//		• blockmatrix/ — the block-by-block aggregate edge-weight matrix
//		• partition/   — vertex→block assignment, degree accounting, block merges
//		• evaluation/  — correctness metrics of a partition against ground truth
//
// ✨ Design principles
//
//   - Deterministic – fixed loop orders, no map-order dependence, seeded RNG
//   - Explicit errors – package sentinels matched with errors.Is, never panics
//     on user input
//   - Value-like state – no globals; every mutation is scoped to a received
//     Partition, and Copy() gives clone-compare-discard isolation
//
// The entropy estimator, the Metropolis-Hastings vertex sweep, and graph
// loading are external collaborators: this module owns only the partition
// data structure and the merge mechanics they all depend on.
//
//	go get github.com/vtsynergy/DistributedSBP
package sbp
