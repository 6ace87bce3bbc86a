// Package hilbert is an exact integer-programming building block: it
// enumerates Hilbert bases — the minimal generating sets of the
// non-negative integer solutions of linear inequality systems.
//
// 🚀 What is hilbert?
//
//	A pure-Go saturation engine that brings together:
//		• Exact arithmetic: arbitrary-precision scalars, no overflow, no rounding
//		• Pottier-style saturation with weight-ordered resolution
//		• A subsumption index that rejects dominated candidates fast
//		• Inhomogeneous and sign-unrestricted surfaces via variable encodings
//
// ✨ Why choose hilbert?
//
//   - Deterministic results – the surviving basis is unique as a set
//   - Cooperative cancellation – long runs stop promptly on request
//   - Pure Go – no cgo, one small dependency surface
//   - Inspectable – counters and textual dumps of every working set
//
// Everything is organized under three subpackages:
//
//	numeric/ — the exact integer scalar (arithmetic, predicates, hashing)
//	hilbert/ — the core engine: stores, queues, index, saturation driver
//	signed/  — bounded and sign-unrestricted reductions onto the core
//
// Quick example:
//
//	b := hilbert.New()
//	_ = b.AddGe(numeric.Vec(1, -1)) // x ≥ y
//	_ = b.AddGe(numeric.Vec(0, 1))  // y ≥ 0
//	b.Saturate()                    // basis: [1 0], [1 1]
//
// See each subpackage's documentation for the full API and the algorithm
// notes.
package hilbert
