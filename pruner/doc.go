// Package pruner turns a classified tour grid into a puzzle with
// exactly one solution, by the same constraint propagation a careful
// player would apply — plus assumption-based search where propagation
// alone stalls.
//
// What:
//
//	The input is a kind grid: every cell labeled Unvisited, Endpoint,
//	OrthogonalTurn, or DiagonalTurn. The solver maintains, per cell, a
//	set of still-possible connections (candidates) and a set of decided
//	connections, and repeatedly applies local rules until nothing
//	changes:
//
//	  - a cell whose connections are complete sheds its remaining
//	    candidates;
//	  - a candidate that would close a loop, or lead into a completed
//	    cell, is eliminated;
//	  - each kind's degree demands (one connection for an endpoint, a
//	    same-parity pair for an orthogonal turn, a mixed pair for a
//	    diagonal turn) eliminate impossible candidates and force
//	    inevitable ones.
//
//	When the fixpoint is not a finished tour, Prune picks an open
//	candidate, assumes it on a cloned state, and recurses; refuted
//	assumptions are discarded along with their clone, never folded
//	back into the parent. Every assumption that survives into the
//	solution is reported as a hint: published pre-made connections
//	that restore single-solution status for the player.
//
// Why hints guarantee uniqueness:
//
//	Eliminations and forcings are entailed — true in every tour
//	consistent with the kind grid and the assumptions made so far. A
//	solution found this way is therefore the only one containing its
//	assumption trail, and replaying propagation from the published
//	hints (Propagate) reconstructs it completely without guessing.
//
// Partial paths are tracked in a knightgrid.PathEnds with two virtual
// slots pre-linked to the endpoint cells, so the final connection of a
// real tour never looks like an illegal loop closure.
//
// Entry points: Prune (find the tour and the hint set), Solve (finish
// a grid from published hints), Propagate (fixpoint only, no search).
//
// Determinism: no randomness anywhere; cells and directions are always
// scanned in ascending order, so identical inputs give identical tours
// and hints.
//
// Errors:
//
//   - ErrDegreeContradiction — no tour is consistent with the grid
//     (or with the supplied hints).
//   - ErrGridShape          — the kind grid does not fit the board or
//     lacks exactly two endpoints.
//   - ErrOptionViolation    — an invalid Option value was supplied.
package pruner
