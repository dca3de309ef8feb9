// SPDX-License-Identifier: MIT
// Package model: sentinel error set.
// All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package model

import "errors"

// Sentinel errors for model construction.
var (
	// ErrEmptyName indicates that a variable was created with an empty name.
	ErrEmptyName = errors.New("model: variable name is empty")

	// ErrVariableExists indicates that CreateVariable was called with a
	// name that is already registered. Use LookupVariable to re-reference.
	ErrVariableExists = errors.New("model: variable already exists")

	// ErrDuplicateTerm indicates that the same variable was added twice
	// to a single LinearExpr.
	ErrDuplicateTerm = errors.New("model: duplicate variable in expression")

	// ErrNilVariable indicates that a nil *Variable was passed to AddTerm.
	ErrNilVariable = errors.New("model: variable is nil")
)
