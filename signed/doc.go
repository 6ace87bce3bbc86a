// Package signed reduces inhomogeneous and sign-unrestricted linear
// systems to the homogeneous non-negative form solved by package hilbert.
//
// Two encodings are provided, both classical:
//
//   - Basis prefixes a distinguished constant-one coordinate: the bounded
//     inequality a·x ≤ b over x ≥ 0 becomes the homogeneous row (−b, a)
//     over (1, x). Basis rows whose first coordinate is k represent
//     solutions of the relaxation scaled by k; rows with first coordinate
//     1 are genuine solutions of the original system.
//
//   - IntBasis additionally splits every variable into its positive and
//     negative parts, x_i = x_i⁺ − x_i⁻, so variables may take any sign.
//     Each coefficient a_i contributes the pair (a_i, −a_i) and the bound
//     contributes the trailing pair (−b, b).
//
// Both types forward saturation, basis access, cancellation and statistics
// to the embedded core engine.
package signed
