// Package knighttour generates, prunes, plays, and archives knight-tour
// puzzles — place every knight move of a (possibly partial) tour so
// that exactly one solution survives.
//
// 🚀 What is knighttour?
//
//	A deterministic, pure-Go puzzle engine that brings together:
//		• Board geometry: cells, the eight knight directions, connection maps
//		• Tour builders: randomized Warnsdorff walks & a neural-network solver
//		• Uniqueness pruning: constraint propagation + depth-first refutation
//		• Interactive play: toggle connections, live cell statuses, loop flags
//		• Wire codecs: board params, kind-grid descriptions, move strings
//		• Archival: sqlite-backed storage for generated puzzles
//
// ✨ Why choose knighttour?
//
//   - Reproducible – every generator is seedable; same seed, same puzzle
//   - Unique by construction – each published puzzle has exactly one tour
//   - Honest errors – sentinel errors per package, wrapped with %w
//   - Pure Go – the sqlite driver included, no cgo anywhere
//
// Under the hood, everything is organized into focused subpackages:
//
//	knightgrid/ — Board, Direction, CellKind, DirSet, PathEnds primitives
//	tour/       — random tour generation (Warnsdorff) & kind classification
//	hamilton/   — Hamiltonian cycle/path solver on knight graphs
//	pruner/     — hint pruning until propagation + search prove uniqueness
//	play/       — interactive puzzle state: Toggle, Replay, Completed
//	codec/      — params, description and move-string encoding/parsing
//	puzzle/     — the facade: Generate, Open, Solve
//	archive/    — sqlite persistence for generated puzzles
//	cmd/        — the knighttour command-line tool
//
// The eight directions are numbered clockwise from "right one, up two":
//
//	. 7 . 0 .
//	6 . . . 1
//	. . ♞ . .
//	5 . . . 2
//	. 4 . 3 .
//
// Dive into the subpackage docs for the exact formats and guarantees.
//
//	go get github.com/katalvlaran/knighttour
package knighttour
