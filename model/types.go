// Package model: central type declarations.
//
// This file declares Direction, Variable, Term, LinearExpr, Objective
// and Constraint. The aggregate Model and the Builder interface live in
// model.go.

package model

import "math"

// Direction selects the optimization sense of an Objective.
type Direction int

const (
	// Minimize seeks the smallest objective value.
	Minimize Direction = iota

	// Maximize seeks the largest objective value.
	Maximize
)

// String returns "min" or "max", matching the LP text-format keywords.
func (d Direction) String() string {
	if d == Maximize {
		return "max"
	}

	return "min"
}

// Variable is a decision variable of the model.
//
// Name uniquely identifies the variable within its Model. Bounds default
// to (-Inf, +Inf); Integer marks the variable as integer-valued. A
// Variable is created once and mutated only through bound tightening or
// an integrality declaration, never recreated.
type Variable struct {
	// Name is the unique identifier of this variable.
	Name string

	// Lower is the lower bound (default math.Inf(-1)).
	Lower float64

	// Upper is the upper bound (default math.Inf(+1)).
	Upper float64

	// Integer reports whether the variable is integer-valued.
	Integer bool
}

// SetLower tightens (overwrites) the lower bound.
func (v *Variable) SetLower(lo float64) { v.Lower = lo }

// SetUpper tightens (overwrites) the upper bound.
func (v *Variable) SetUpper(hi float64) { v.Upper = hi }

// Free reports whether the variable is unbounded on both sides.
func (v *Variable) Free() bool {
	return math.IsInf(v.Lower, -1) && math.IsInf(v.Upper, +1)
}

// Term is one (variable, coefficient) pair of a LinearExpr.
type Term struct {
	Var  *Variable
	Coef float64
}

// LinearExpr is a linear combination of variables plus a constant offset,
// built incrementally left-to-right. Each variable may appear at most
// once; AddTerm rejects duplicates with ErrDuplicateTerm.
//
// The zero value is an empty expression ready for use.
type LinearExpr struct {
	// Offset is the constant contribution of the expression.
	Offset float64

	terms []Term
	index map[string]int
}

// AddTerm appends coef·v to the expression.
// Returns ErrNilVariable for a nil variable and ErrDuplicateTerm when v
// was already added.
func (e *LinearExpr) AddTerm(v *Variable, coef float64) error {
	if v == nil {
		return ErrNilVariable
	}
	if _, ok := e.index[v.Name]; ok {
		return ErrDuplicateTerm
	}
	if e.index == nil {
		e.index = make(map[string]int)
	}
	e.index[v.Name] = len(e.terms)
	e.terms = append(e.terms, Term{Var: v, Coef: coef})

	return nil
}

// HasTerm reports whether a variable with the given name already
// contributes a term.
func (e *LinearExpr) HasTerm(name string) bool {
	_, ok := e.index[name]

	return ok
}

// Coefficient returns the coefficient recorded for name, or 0 when the
// variable does not appear.
func (e *LinearExpr) Coefficient(name string) float64 {
	i, ok := e.index[name]
	if !ok {
		return 0
	}

	return e.terms[i].Coef
}

// Terms returns the (variable, coefficient) pairs in insertion order.
// The returned slice is a copy; mutating it does not affect e.
func (e *LinearExpr) Terms() []Term {
	out := make([]Term, len(e.terms))
	copy(out, e.terms)

	return out
}

// NumTerms returns the number of variable terms.
func (e *LinearExpr) NumTerms() int { return len(e.terms) }

// Value evaluates the expression under the given assignment
// (variable name → value). Missing variables contribute 0.
func (e *LinearExpr) Value(assignment map[string]float64) float64 {
	sum := e.Offset
	for _, t := range e.terms {
		sum += t.Coef * assignment[t.Var.Name]
	}

	return sum
}

// Objective is the single optimization goal of a Model.
type Objective struct {
	// Direction is Minimize or Maximize.
	Direction Direction

	// Expr holds the per-variable coefficients; Expr.Offset is the
	// objective's constant term.
	Expr *LinearExpr
}

// Constraint is one linear constraint row: Lower ≤ Expr ≤ Upper.
//
// The expression's constant contribution is folded out before storage:
// both bounds already have the offset subtracted and Expr.Offset is 0.
// Label is informational only and not validated for uniqueness.
// Lower > Upper is representable; feasibility is the solver's concern.
type Constraint struct {
	// Label is the optional statement label ("name:" prefix), cosmetic.
	Label string

	// Lower is the row's lower bound (math.Inf(-1) when one-sided).
	Lower float64

	// Upper is the row's upper bound (math.Inf(+1) when one-sided).
	Upper float64

	// Expr holds the row's per-variable coefficients.
	Expr *LinearExpr
}
