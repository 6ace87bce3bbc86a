// Package hilbert computes Hilbert bases of rational polyhedral cones:
// given a finite system of homogeneous linear inequalities A·x ≥ 0 over
// integer variables restricted to x ≥ 0, it enumerates the unique finite
// set of minimal non-zero integer vectors that generate every non-negative
// integer solution under non-negative integer combinations.
//
// Equalities are encoded as two opposing inequalities (AddEq), and
// upper-bounded inequalities over signed or integer-split variables reduce
// to this homogeneous form through package signed.
//
// # Algorithm
//
// The engine runs Pottier-style saturation, one inequality at a time:
//
//   - The basis starts as the n unit vectors e_i.
//   - Folding an inequality c evaluates c·r on every basis row r and
//     splits the rows into active, passive (ordered by row weight, the
//     coordinate sum) and zero sets.
//   - Passive rows drain smallest-weight first. Each popped row resolves
//     with every active row of opposite evaluation sign — the resolvent is
//     the component-wise sum, whose evaluation moves toward the
//     c·x = 0 hyperplane — and new candidates re-enter the queue.
//   - A candidate dominated by an already-known row (component-wise ≤ with
//     a guard on the evaluation scalar) is redundant and recycled.
//   - When the queue drains, the zero rows and the strictly positive
//     active rows survive as the next basis.
//
// Dominance checks go through a subsumption index: one weight map per
// coordinate plus one for the evaluation, each answering "all rows with
// key ≤ k" through a binary heap traversal. A query seeds candidates from
// the evaluation map and intersects per coordinate, so a dominated row is
// usually rejected after touching a small fraction of the index.
//
// # Usage
//
//	b := hilbert.New()
//	_ = b.AddGe(numeric.Vec(1, -2)) // x - 2y ≥ 0
//	_ = b.AddGe(numeric.Vec(-1, 2)) // 2y - x ≥ 0
//	if b.Saturate() == hilbert.Satisfiable {
//	    for i := 0; i < b.Size(); i++ {
//	        fmt.Println(b.Row(i)) // [2 1]
//	    }
//	}
//
// Saturate returns Infeasible when at some stage no basis row evaluates
// non-negatively (the system has no non-trivial non-negative solution) and
// Undefined when cancelled through SetCancel.
//
// # Complexity
//
// Worst-case output size is exponential in the input (the Hilbert basis
// itself can be), so no polynomial bound applies. In practice the weight
// ordering of the passive queue plus subsumption pruning keep intermediate
// sets close to the final basis size. All arithmetic is exact
// (numeric.Int); there is no overflow and no approximation.
//
// The engine is single-threaded; only SetCancel may be called
// concurrently.
package hilbert
