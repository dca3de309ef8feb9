// Package simplex solves the optimization models produced by lpfile,
// combining gonum's simplex method with a small branch-and-bound layer
// for integer variables.
//
// 🚀 What does it do?
//
//	Solve converts a model.Model into LP standard form
//	(min cᵀx, Ax = b, x ≥ 0):
//	  • variables with a finite lower bound are shifted   (x = y + lb)
//	  • upper-bounded-only variables are mirrored          (x = ub − y)
//	  • free variables are split                           (x = y⁺ − y⁻)
//	  • range and inequality rows gain slack / surplus columns
//	and hands the result to gonum's lp.Simplex. When the model declares
//	integer variables, a depth-first branch-and-bound loop tightens
//	variable bounds around fractional relaxation values until an
//	all-integer incumbent is proven optimal.
//
// ✨ Results:
//
//	res, err := simplex.Solve(m, simplex.DefaultOptions())
//	switch {
//	case err == nil:                              // res.Status == StatusOptimal
//	case errors.Is(err, simplex.ErrInfeasible):   // no feasible point
//	case errors.Is(err, simplex.ErrUnbounded):    // objective unbounded
//	}
//	fmt.Println(res.Objective, res.Value("x1"))
//
// The objective value always includes the objective expression's
// constant term. Infeasible bound pairs that the parser deliberately
// lets through ("x1 >= 10; x1 <= 5;") surface here as ErrInfeasible.
//
// Performance:
//
//   - LP relaxation: gonum lp.Simplex on a dense standard form
//   - Branch-and-bound: O(MaxNodes) relaxations in the worst case;
//     DefaultOptions caps the node budget (exhaustion → ErrNodeBudget)
package simplex
