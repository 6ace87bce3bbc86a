// Package numeric provides the exact integer scalar used throughout the
// Hilbert basis engine.
//
// The engine manipulates integer row vectors and inner products whose
// magnitudes are not bounded a priori: resolution repeatedly adds rows, and
// intermediate evaluations can outgrow any fixed-width machine integer.
// Int therefore wraps math/big.Int behind a small value-semantics API:
//
//   - All operations return fresh values; no method mutates its receiver.
//   - The zero value of Int is the number 0 and is ready to use, so freshly
//     allocated row storage needs no initialization pass.
//   - The predicate set (IsZero, IsPos, IsNeg, IsNonneg, IsOne, IsMinusOne)
//     mirrors what the saturation loop and the subsumption index test on
//     every visited row.
//   - Hash returns a fast 64-bit digest suitable for keying the engine's
//     scalar→dense-index maps. Equal values always hash equal; the maps
//     chain on true equality, so a collision costs time, never correctness.
//
// Complexity: every arithmetic operation is linear in the operand word
// length; predicates on sign are O(1).
package numeric
