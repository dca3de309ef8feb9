// Package lvlsolve turns linear-programming problems written in a
// line-oriented algebraic text format into in-memory optimization models,
// and solves them with a simplex / branch-and-bound backend.
//
// 🚀 What is lvlsolve?
//
//	A small, focused library that brings together:
//		• Model primitives: variables with bounds & integrality, one linear
//		  objective, an ordered list of linear constraints
//		• A hand-written two-pass parser for the LP text format
//		  (LPSolve-style: "max: 3x1 + x2;", "x1 <= 30;", "int x1;")
//		• A solving backend: gonum simplex for the LP relaxation,
//		  depth-first branch-and-bound for integer variables
//
// ✨ Why choose lvlsolve?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Strict sentinel errors – every parse failure carries its line number
//     and matches a package-level sentinel via errors.Is
//   - Extensible – the parser writes through a narrow model.Builder
//     interface, so any solving engine can be plugged in
//
// Under the hood, everything is organized under three subpackages:
//
//	model/   — Variable, LinearExpr, Objective, Constraint, Model & Builder
//	lpfile/  — the LP text-format parser (two passes, sentinel errors)
//	simplex/ — standard-form conversion, simplex solve, branch-and-bound
//
// Quick example:
//
//	res, err := lpfile.ParseString("max: x1 - x2;\nx1 <= 30.6;\nx2 >= 24.9;")
//	if err != nil { ... }
//	sol, err := simplex.Solve(res.Model, simplex.DefaultOptions())
//
// Dive into README.md and the examples/ directory for full scenarios.
//
//	go get github.com/katalvlaran/lvlsolve
package lvlsolve
