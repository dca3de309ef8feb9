// SPDX-License-Identifier: MIT
// Package lpfile: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors plus the typed
// ParseError that carries the source line number. All parse failures
// MUST return a *ParseError wrapping one of these sentinels, and tests
// MUST check them via errors.Is.

package lpfile

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTerminator indicates a non-empty line that does not end
	// with the ';' statement terminator.
	ErrMissingTerminator = errors.New("lpfile: statement does not end with a semicolon")

	// ErrEmptyStatement indicates a line that is only a terminator
	// (";" with no content), which is invalid even though blank lines
	// are permitted.
	ErrEmptyStatement = errors.New("lpfile: statement is empty")

	// ErrInvalidDirection indicates an objective line that does not
	// start with "max:" or "min:".
	ErrInvalidDirection = errors.New(`lpfile: objective must start with "max:" or "min:"`)

	// ErrInvalidIdentifier indicates a name that violates the
	// identifier grammar [A-Za-z][A-Za-z0-9_]*.
	ErrInvalidIdentifier = errors.New("lpfile: invalid variable name")

	// ErrDuplicateVariable indicates the same variable used more than
	// once within a single expression.
	ErrDuplicateVariable = errors.New("lpfile: variable used twice in one expression")

	// ErrDuplicateDeclaration indicates the same variable declared
	// integer more than once.
	ErrDuplicateDeclaration = errors.New("lpfile: variable declared twice")

	// ErrEmptyDeclarationList indicates an "int" statement with no
	// variable names.
	ErrEmptyDeclarationList = errors.New("lpfile: declaration has no variables")

	// ErrUnknownDeclarationKeyword indicates a declaration statement
	// whose keyword is not exactly "int".
	ErrUnknownDeclarationKeyword = errors.New(`lpfile: declaration must start with "int"`)

	// ErrMissingVariableTerm indicates an expression with no variable
	// term at all (pure constants are rejected).
	ErrMissingVariableTerm = errors.New("lpfile: no variable present in expression")

	// ErrMalformedTerm indicates leftover text that can form neither a
	// numeral nor an identifier (e.g. a dangling sign).
	ErrMalformedTerm = errors.New("lpfile: cannot parse expression remainder")

	// ErrBadNumericLiteral indicates a malformed numeric literal in a
	// slot that requires one (e.g. "2.68.5").
	ErrBadNumericLiteral = errors.New("lpfile: malformed numeric literal")

	// ErrMissingSeparator indicates two adjacent terms with neither
	// whitespace nor a combination sign between them (e.g. "x1|x2").
	ErrMissingSeparator = errors.New("lpfile: whitespace or combination sign missing between terms")

	// ErrNonConstantBound indicates a bound slot that must be a bare
	// numeric constant but contains a variable.
	ErrNonConstantBound = errors.New("lpfile: bound must be a numeric constant")

	// ErrRelationalSignCount indicates zero, mixed, or too many
	// relational operators in a constraint.
	ErrRelationalSignCount = errors.New("lpfile: wrong number of relational signs")

	// ErrMultipleEqualsSigns indicates an equality constraint with more
	// than one '='.
	ErrMultipleEqualsSigns = errors.New("lpfile: multiple equals signs")
)

// ParseError is the uniform failure type of the parser. It records the
// 1-based source line, a human-readable detail and the sentinel cause;
// Unwrap exposes the sentinel for errors.Is.
type ParseError struct {
	// Line is the 1-based source line the failure occurred on.
	Line int

	// Detail is the human-readable cause.
	Detail string

	// Err is the package sentinel classifying the failure.
	Err error
}

// Error renders "lpfile: line N: detail".
func (e *ParseError) Error() string {
	return fmt.Sprintf("lpfile: line %d: %s", e.Line, e.Detail)
}

// Unwrap returns the sentinel cause.
func (e *ParseError) Unwrap() error { return e.Err }

// errAt builds a *ParseError wrapping sentinel at the given line.
func errAt(line int, sentinel error, format string, args ...any) error {
	return &ParseError{Line: line, Detail: fmt.Sprintf(format, args...), Err: sentinel}
}
