// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/lvlsolve/model"
)

// Solve optimizes the model. On success the returned Result carries
// StatusOptimal, the objective value and the variable assignment;
// otherwise the error wraps ErrInfeasible, ErrUnbounded or
// ErrNodeBudget and Result.Status mirrors it.
func Solve(m *model.Model, opts Options) (Result, error) {
	if m == nil {
		return Result{Status: StatusInfeasible}, ErrNilModel
	}
	if _, ok := m.Objective(); !ok {
		return Result{Status: StatusInfeasible}, ErrNoObjective
	}
	opts = opts.normalized()

	vars := m.Variables()
	lower := make([]float64, len(vars))
	upper := make([]float64, len(vars))
	integer := false
	for i, v := range vars {
		lower[i], upper[i] = v.Lower, v.Upper
		integer = integer || v.Integer
	}

	if !integer {
		rel, err := solveRelaxation(m, vars, lower, upper, opts)
		if err != nil {
			return Result{Status: statusFor(err)}, err
		}
		return rel.result(vars, nil), nil
	}
	return branchAndBound(m, vars, lower, upper, opts)
}

// relaxation is one solved LP node. fmin is the model objective mapped
// into minimization sense; unlike the raw lp.Simplex optimum it
// includes each node's folded bound offsets, so values from different
// branch-and-bound nodes are directly comparable.
type relaxation struct {
	fmin      float64 // minimized model objective, for incumbent comparisons
	objective float64 // model-sense objective, constant included
	values    []float64
}

func (r relaxation) result(vars []*model.Variable, round map[int]bool) Result {
	values := make(map[string]float64, len(vars))
	for i, v := range vars {
		x := r.values[i]
		if round[i] {
			x = math.Round(x)
		}
		values[v.Name] = x
	}
	return Result{Status: StatusOptimal, Objective: r.objective, values: values}
}

// solveRelaxation builds the standard form under the given bounds and
// runs gonum's simplex. Models without a single constraint row are
// resolved analytically: any improving column is unbounded, otherwise
// the origin is optimal.
func solveRelaxation(m *model.Model, vars []*model.Variable, lower, upper []float64, opts Options) (relaxation, error) {
	sf := buildStandardForm(m, vars, lower, upper)

	if len(sf.b) == 0 {
		for _, ci := range sf.c {
			if ci < 0 {
				return relaxation{}, ErrUnbounded
			}
		}
		cols := len(sf.c)
		obj := sf.objective(0)
		return relaxation{
			fmin:      minimized(obj, sf.maximize),
			objective: obj,
			values:    sf.recover(make([]float64, cols)),
		}, nil
	}

	optF, optY, err := lp.Simplex(sf.c, sf.a, sf.b, opts.Tol, nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return relaxation{}, ErrInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return relaxation{}, ErrUnbounded
	case err != nil:
		return relaxation{}, err
	}
	obj := sf.objective(optF)
	return relaxation{fmin: minimized(obj, sf.maximize), objective: obj, values: sf.recover(optY)}, nil
}

// minimized maps a model-sense objective value onto minimization sense.
func minimized(objective float64, maximize bool) float64 {
	if maximize {
		return -objective
	}
	return objective
}

// branchAndBound runs a depth-first search over bound tightenings,
// keeping the best all-integer incumbent and pruning nodes whose
// relaxation cannot beat it.
func branchAndBound(m *model.Model, vars []*model.Variable, lower, upper []float64, opts Options) (Result, error) {
	round := make(map[int]bool)
	for i, v := range vars {
		if v.Integer {
			round[i] = true
		}
	}

	type node struct {
		lower, upper []float64
	}
	stack := []node{{lower: lower, upper: upper}}
	var best *relaxation
	solved := 0

	for len(stack) > 0 {
		if solved >= opts.MaxNodes {
			res := Result{Status: StatusAborted}
			if best != nil {
				res = best.result(vars, round)
				res.Status = StatusAborted
			}
			return res, ErrNodeBudget
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		rel, err := solveRelaxation(m, vars, n.lower, n.upper, opts)
		solved++
		switch {
		case errors.Is(err, ErrInfeasible):
			continue
		case errors.Is(err, ErrUnbounded):
			// An unbounded relaxation means the integer problem is
			// unbounded as well: integer points track the ray.
			return Result{Status: StatusUnbounded}, ErrUnbounded
		case err != nil:
			return Result{Status: StatusInfeasible}, err
		}
		if best != nil && rel.fmin >= best.fmin {
			continue
		}

		branch := -1
		for i := range vars {
			if !round[i] {
				continue
			}
			if math.Abs(rel.values[i]-math.Round(rel.values[i])) > opts.IntTol {
				branch = i
				break
			}
		}
		if branch < 0 {
			r := rel
			best = &r
			continue
		}

		floor := math.Floor(rel.values[branch])
		down := node{lower: append([]float64(nil), n.lower...), upper: append([]float64(nil), n.upper...)}
		up := node{lower: append([]float64(nil), n.lower...), upper: append([]float64(nil), n.upper...)}
		down.upper[branch] = floor
		up.lower[branch] = floor + 1
		stack = append(stack, up, down) // explore the floor side first
	}

	if best == nil {
		return Result{Status: StatusInfeasible}, ErrInfeasible
	}
	return best.result(vars, round), nil
}

func statusFor(err error) Status {
	switch {
	case errors.Is(err, ErrUnbounded):
		return StatusUnbounded
	default:
		return StatusInfeasible
	}
}
