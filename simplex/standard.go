// SPDX-License-Identifier: MIT

package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsolve/model"
)

// varKind records how a model variable maps onto standard-form columns.
type varKind int

const (
	varShift  varKind = iota // x = y + lb        (finite lower bound)
	varMirror                // x = ub − y        (upper bound only)
	varSplit                 // x = y⁺ − y⁻       (free)
)

type varMap struct {
	kind varKind
	col  int     // primary column
	neg  int     // negative-part column, varSplit only
	off  float64 // lb for varShift, ub for varMirror
}

// rowSpec is a constraint row after variable substitution, before slack
// columns are attached: lo ≤ coefs·y ≤ hi over the structural columns.
type rowSpec struct {
	coefs []float64
	lo    float64
	hi    float64
}

// standardForm is min cᵀy, Ay = b, y ≥ 0 plus the bookkeeping needed to
// recover model-variable values and the model-sense objective.
type standardForm struct {
	c        []float64
	a        *mat.Dense
	b        []float64
	maps     []varMap
	ncols    int     // structural columns, slack columns follow
	constant float64 // model-sense objective constant
	maximize bool
}

// buildStandardForm converts the model using the supplied bound arrays,
// which branch-and-bound tightens between nodes. vars fixes the column
// order; lower and upper are indexed alongside it.
func buildStandardForm(m *model.Model, vars []*model.Variable, lower, upper []float64) *standardForm {
	sf := &standardForm{maps: make([]varMap, len(vars))}

	index := make(map[string]int, len(vars))
	for i, v := range vars {
		index[v.Name] = i
		lb, ub := lower[i], upper[i]
		switch {
		case !math.IsInf(lb, -1):
			sf.maps[i] = varMap{kind: varShift, col: sf.ncols, off: lb}
			sf.ncols++
		case !math.IsInf(ub, +1):
			sf.maps[i] = varMap{kind: varMirror, col: sf.ncols, off: ub}
			sf.ncols++
		default:
			sf.maps[i] = varMap{kind: varSplit, col: sf.ncols, neg: sf.ncols + 1}
			sf.ncols += 2
		}
	}

	var specs []rowSpec
	// Shifted variables keep their upper bound as an explicit row.
	for i := range vars {
		vm := sf.maps[i]
		if vm.kind != varShift || math.IsInf(upper[i], +1) {
			continue
		}
		coefs := make([]float64, sf.ncols)
		coefs[vm.col] = 1
		specs = append(specs, rowSpec{coefs: coefs, lo: math.Inf(-1), hi: upper[i] - vm.off})
	}
	for _, con := range m.Constraints() {
		spec := rowSpec{coefs: make([]float64, sf.ncols), lo: con.Lower, hi: con.Upper}
		for _, t := range con.Expr.Terms() {
			sf.substitute(spec.coefs, index[t.Var.Name], t.Coef, &spec.lo, &spec.hi)
		}
		if math.IsInf(spec.lo, -1) && math.IsInf(spec.hi, +1) {
			continue
		}
		specs = append(specs, spec)
	}

	// Each finite side of a spec becomes one equality row with its own
	// slack (≤) or surplus (≥) column.
	type outRow struct {
		coefs []float64
		slack int // column of the slack/surplus, -1 for equality rows
		sign  float64
		rhs   float64
	}
	var rows []outRow
	slackCol := sf.ncols
	for _, s := range specs {
		switch {
		case s.lo == s.hi:
			rows = append(rows, outRow{coefs: s.coefs, slack: -1, rhs: s.hi})
		default:
			if !math.IsInf(s.hi, +1) {
				rows = append(rows, outRow{coefs: s.coefs, slack: slackCol, sign: +1, rhs: s.hi})
				slackCol++
			}
			if !math.IsInf(s.lo, -1) {
				rows = append(rows, outRow{coefs: s.coefs, slack: slackCol, sign: -1, rhs: s.lo})
				slackCol++
			}
		}
	}

	total := slackCol
	sf.b = make([]float64, len(rows))
	if len(rows) > 0 {
		sf.a = mat.NewDense(len(rows), total, nil)
	}
	for ri, row := range rows {
		scale := 1.0
		if row.rhs < 0 {
			scale = -1 // lp.Simplex wants b ≥ 0
		}
		for ci, v := range row.coefs {
			sf.a.Set(ri, ci, scale*v)
		}
		if row.slack >= 0 {
			sf.a.Set(ri, row.slack, scale*row.sign)
		}
		sf.b[ri] = scale * row.rhs
	}

	obj, _ := m.Objective()
	sf.maximize = obj.Direction == model.Maximize
	sf.c = make([]float64, total)
	sf.constant = obj.Expr.Offset
	lo, hi := 0.0, 0.0
	for _, t := range obj.Expr.Terms() {
		sf.substitute(sf.c, index[t.Var.Name], t.Coef, &lo, &hi)
	}
	// substitute moves shift/mirror offsets onto the bounds; for the
	// objective they are the constant instead.
	sf.constant -= lo
	if sf.maximize {
		for i := range sf.c {
			sf.c[i] = -sf.c[i]
		}
	}
	return sf
}

// substitute adds coef·xᵢ to a coefficient row, rewriting the term over
// the standard-form columns and folding any shift or mirror offset into
// the row bounds.
func (sf *standardForm) substitute(coefs []float64, i int, coef float64, lo, hi *float64) {
	vm := sf.maps[i]
	switch vm.kind {
	case varShift:
		coefs[vm.col] += coef
		*lo -= coef * vm.off
		*hi -= coef * vm.off
	case varMirror:
		coefs[vm.col] -= coef
		*lo -= coef * vm.off
		*hi -= coef * vm.off
	case varSplit:
		coefs[vm.col] += coef
		coefs[vm.neg] -= coef
	}
}

// recover maps a standard-form point back onto the model variables, in
// vars order.
func (sf *standardForm) recover(y []float64) []float64 {
	out := make([]float64, len(sf.maps))
	for i, vm := range sf.maps {
		switch vm.kind {
		case varShift:
			out[i] = y[vm.col] + vm.off
		case varMirror:
			out[i] = vm.off - y[vm.col]
		case varSplit:
			out[i] = y[vm.col] - y[vm.neg]
		}
	}
	return out
}

// objective converts lp.Simplex's minimized value into the model-sense
// objective, constant term included.
func (sf *standardForm) objective(optF float64) float64 {
	if sf.maximize {
		return -optF + sf.constant
	}
	return optF + sf.constant
}
