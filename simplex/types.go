// SPDX-License-Identifier: MIT

package simplex

// Status reports how a solve attempt concluded.
type Status int

const (
	// StatusOptimal - an optimal solution was found.
	StatusOptimal Status = iota
	// StatusInfeasible - the model admits no feasible point.
	StatusInfeasible
	// StatusUnbounded - the objective is unbounded over the feasible
	// region.
	StatusUnbounded
	// StatusAborted - the node budget ran out before branch-and-bound
	// could prove optimality.
	StatusAborted
)

// String returns a short lower-case name for the status.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Options tunes the solver. The zero value is usable; Solve replaces
// non-positive fields with the DefaultOptions values.
type Options struct {
	// Tol is the numerical tolerance passed to gonum's lp.Simplex.
	Tol float64
	// IntTol is the largest distance from the nearest integer at which
	// an integer variable's relaxation value still counts as integral.
	IntTol float64
	// MaxNodes caps the number of LP relaxations branch-and-bound may
	// solve before giving up with ErrNodeBudget.
	MaxNodes int
}

// DefaultOptions returns the tolerances and budgets used when the
// caller does not care.
func DefaultOptions() Options {
	return Options{
		Tol:      1e-10,
		IntTol:   1e-6,
		MaxNodes: 10000,
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Tol <= 0 {
		o.Tol = def.Tol
	}
	if o.IntTol <= 0 {
		o.IntTol = def.IntTol
	}
	if o.MaxNodes <= 0 {
		o.MaxNodes = def.MaxNodes
	}
	return o
}

// Result carries the outcome of a solve attempt.
type Result struct {
	// Status classifies the outcome; values below are meaningful only
	// for StatusOptimal.
	Status Status
	// Objective is the objective value at the optimum, including the
	// objective expression's constant term.
	Objective float64

	values map[string]float64
}

// Value returns the optimal value of the named variable, or 0 when the
// model has no such variable.
func (r Result) Value(name string) float64 {
	return r.values[name]
}

// Values returns a copy of the variable assignment at the optimum.
func (r Result) Values() map[string]float64 {
	out := make(map[string]float64, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}
