// Package model defines the central optimization-model types — Variable,
// LinearExpr, Objective, Constraint and the aggregate Model — together
// with the narrow Builder interface through which producers (such as the
// lpfile parser) populate a model.
//
// 🚀 What is model?
//
//	The in-memory result of reading a linear/integer program:
//		• Variable   — name, [lower, upper] bounds (default ±Inf), integrality
//		• LinearExpr — constant offset + per-variable coefficients
//		• Objective  — Minimize/Maximize direction + expression
//		• Constraint — lower/upper bound pair + expression + optional label
//		• Model      — insertion-ordered variable registry, one objective,
//		  append-only constraint list
//
// ✨ Guarantees:
//
//   - Variables are unique by name; re-registering a name is an error,
//     looking one up is idempotent and never resets bounds
//   - A variable appears at most once per expression
//   - The Model preserves variable insertion order and constraint order
//
// Producers should accept the Builder interface rather than *Model, so
// that any concrete solving engine can stand in for the default registry.
//
// Errors:
//
//	ErrEmptyName      - variable name is the empty string.
//	ErrVariableExists - a variable with that name is already registered.
//	ErrDuplicateTerm  - the same variable appears twice in one expression.
package model
