// SPDX-License-Identifier: MIT

package simplex

import "errors"

var (
	// ErrNilModel - Solve received a nil model.
	ErrNilModel = errors.New("simplex: model is nil")
	// ErrNoObjective - the model has no objective to optimize.
	ErrNoObjective = errors.New("simplex: model has no objective")
	// ErrInfeasible - the constraint system admits no feasible point.
	ErrInfeasible = errors.New("simplex: problem is infeasible")
	// ErrUnbounded - the objective improves without limit over the
	// feasible region.
	ErrUnbounded = errors.New("simplex: problem is unbounded")
	// ErrNodeBudget - branch-and-bound exhausted Options.MaxNodes
	// before proving optimality.
	ErrNodeBudget = errors.New("simplex: branch-and-bound node budget exhausted")
)
