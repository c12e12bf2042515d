// Package hamilton finds a randomized Hamilton cycle or path in a
// graph where such cycles are plentiful, using the neural-net
// heuristic of Takefuji & Lee ("Neural network computing for knight's
// tour problems", Neurocomputing 4(5), 1992).
//
// What:
//
//   - Build a graph with NewCycle or NewPath plus AddEdge.
//   - Run evolves a random edge subset with one hysteresis
//     McCulloch-Pitts neuron per edge until every vertex has degree
//     exactly 2, then verifies the subset is a single cycle covering
//     all vertices. Invalid or non-converging attempts restart from a
//     fresh random subset.
//   - Path mode augments the graph with a hub vertex adjacent to every
//     real vertex; a cycle through the hub, with the hub removed, is a
//     Hamilton path of the original graph.
//
// Why:
//
//	The subset evolves by a purely local rule, so no point of the
//	cycle is privileged the way a growing-walk heuristic privileges
//	its start. On graphs rich in Hamilton cycles (knight-move boards
//	in particular) the sampled cycles carry no qualitative bias, and
//	the final output is reversed with probability 1/2 to erase
//	directional bias from the edge input order.
//
// This is not an NP-complete-problem solver: on a graph with few or no
// Hamilton cycles it simply burns its attempt budget and reports
// ErrConvergenceFailure. Disconnected inputs are rejected up front.
//
// Determinism: all randomness flows from the seed passed via WithSeed;
// Run never consults the clock.
//
// Complexity: one neural sweep is O(Σ deg(a)+deg(b)) over the edges;
// attempts are bounded by WithMaxAttempts with an adaptive per-attempt
// sweep limit.
//
// Errors:
//
//   - ErrConvergenceFailure — attempt budget exhausted with no valid
//     single cycle.
//   - ErrDisconnected      — the edge set does not connect all
//     vertices.
//   - ErrVertexRange       — an AddEdge endpoint is out of range.
//   - ErrSealed            — AddEdge after Run.
//   - ErrOptionViolation   — an invalid Option value was supplied.
package hamilton
