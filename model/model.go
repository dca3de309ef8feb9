// SPDX-License-Identifier: MIT
//
// File: model.go
// Role: the aggregate Model (variable registry + objective + constraints)
//       and the narrow Builder capability interface used by producers.

package model

import "math"

// Builder is the narrow capability surface a model producer needs:
// create a variable with given bounds and integrality, look one up by
// name, set the single objective, and append constraint rows.
//
// *Model implements Builder; any concrete solving engine may as well.
// Bound tightening is performed directly on the *Variable returned by
// CreateVariable / LookupVariable.
type Builder interface {
	// CreateVariable registers a new variable. The name must be unique;
	// re-registering returns ErrVariableExists.
	CreateVariable(name string, lower, upper float64, integer bool) (*Variable, error)

	// LookupVariable returns the registered variable, or nil when absent.
	LookupVariable(name string) *Variable

	// SetObjective installs the optimization goal, replacing any
	// previous one.
	SetObjective(dir Direction, expr *LinearExpr)

	// AddConstraint appends one constraint row Lower ≤ expr ≤ Upper.
	AddConstraint(label string, lower, upper float64, expr *LinearExpr) *Constraint
}

// Model owns the variable registry (insertion order preserved), the
// objective and the ordered, append-only constraint list. It is built
// synchronously by a single producer and handed to a solver afterwards;
// it is not safe for concurrent mutation.
type Model struct {
	vars   map[string]*Variable
	order  []*Variable
	obj    Objective
	hasObj bool
	cons   []*Constraint
}

// Compile-time guarantee that *Model satisfies Builder.
var _ Builder = (*Model)(nil)

// New returns an empty Model.
func New() *Model {
	return &Model{vars: make(map[string]*Variable)}
}

// NewFreeVariable registers a continuous variable with (-Inf, +Inf)
// bounds, the default for first-reference creation.
func (m *Model) NewFreeVariable(name string) (*Variable, error) {
	return m.CreateVariable(name, math.Inf(-1), math.Inf(+1), false)
}

// CreateVariable registers a new variable with the given bounds and
// integrality. Returns ErrEmptyName or ErrVariableExists on misuse.
func (m *Model) CreateVariable(name string, lower, upper float64, integer bool) (*Variable, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, ok := m.vars[name]; ok {
		return nil, ErrVariableExists
	}

	v := &Variable{Name: name, Lower: lower, Upper: upper, Integer: integer}
	m.vars[name] = v
	m.order = append(m.order, v)

	return v, nil
}

// LookupVariable returns the variable registered under name, or nil.
// Looking up never creates, so repeated references stay idempotent.
func (m *Model) LookupVariable(name string) *Variable {
	return m.vars[name]
}

// Variables returns all variables in insertion order (copy).
func (m *Model) Variables() []*Variable {
	out := make([]*Variable, len(m.order))
	copy(out, m.order)

	return out
}

// NumVariables returns the number of registered variables.
func (m *Model) NumVariables() int { return len(m.order) }

// VarNames returns all variable names in insertion order.
func (m *Model) VarNames() []string {
	names := make([]string, len(m.order))
	for i, v := range m.order {
		names[i] = v.Name
	}

	return names
}

// SetObjective installs the optimization goal, replacing any previous one.
func (m *Model) SetObjective(dir Direction, expr *LinearExpr) {
	m.obj = Objective{Direction: dir, Expr: expr}
	m.hasObj = true
}

// Objective returns the installed objective and whether one was set.
func (m *Model) Objective() (Objective, bool) {
	return m.obj, m.hasObj
}

// AddConstraint appends one constraint row and returns it.
func (m *Model) AddConstraint(label string, lower, upper float64, expr *LinearExpr) *Constraint {
	c := &Constraint{Label: label, Lower: lower, Upper: upper, Expr: expr}
	m.cons = append(m.cons, c)

	return c
}

// Constraints returns the constraint rows in statement order (copy).
func (m *Model) Constraints() []*Constraint {
	out := make([]*Constraint, len(m.cons))
	copy(out, m.cons)

	return out
}

// NumConstraints returns the number of constraint rows.
func (m *Model) NumConstraints() int { return len(m.cons) }
