// Package lpfile: the expression parser.
//
// parseExpression is the heart of the format: a single left-to-right
// scan over a statement fragment in which terms need no mandatory
// operator between them. Each loop iteration consumes at most one
// combination sign, one real sign, one numeral and one identifier, then
// enforces the adjacency rule before continuing.

package lpfile

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlsolve/model"
)

// parseExpression consumes frag into expr: variable terms are recorded
// against their coefficients and the summed standalone constants land in
// expr.Offset. Variables are created on first reference (continuous,
// unbounded) through the builder; every name touched is added to the
// parser's seen set.
//
// Grammar per term, all parts optional but not all absent:
//
//	[+|-]            combination sign, whitespace may follow
//	[+|-]            real sign, must directly abut what follows
//	[numeral]        multiplies the coefficient
//	[identifier]     the term's variable
//
// After each term the remainder must be empty, have been preceded by
// whitespace, or begin with the next combination sign.
//
// At least one variable term is required (ErrMissingVariableTerm).
func (p *Parser) parseExpression(frag string, line int, expr *model.LinearExpr) error {
	rem := strings.TrimSpace(frag)
	if rem == "" {
		return errAt(line, ErrMissingVariableTerm, "no variables present in equation")
	}

	constant := 0.0
	sawVariable := false

	for rem != "" {
		coef := 1.0

		// Combination sign separating this term from the previous one.
		if rem[0] == '+' || rem[0] == '-' {
			if rem[0] == '-' {
				coef = -1.0
			}
			rem = strings.TrimSpace(rem[1:])
		}

		// Real sign: must sit directly in front of the mantissa or
		// identifier, so no whitespace is skipped after it.
		if rem != "" && (rem[0] == '+' || rem[0] == '-') {
			if rem[0] == '-' {
				coef = -coef
			}
			rem = rem[1:]
		}

		// Numeral; remember whether whitespace followed it.
		whitespaceAfter := false
		hadNumeral := false
		if n := numberLen(rem); n > 0 {
			v, err := strconv.ParseFloat(rem[:n], 64)
			if err != nil {
				return errAt(line, ErrBadNumericLiteral, "malformed numeric literal %q", rem[:n])
			}
			coef *= v
			hadNumeral = true

			rem = rem[n:]
			stripped := strings.TrimSpace(rem)
			whitespaceAfter = len(stripped) != len(rem)
			rem = stripped
		}

		// Identifier.
		switch n := identifierLen(rem); {
		case n > 0:
			name := rem[:n]
			p.names[name] = struct{}{}

			if expr.HasTerm(name) {
				return errAt(line, ErrDuplicateVariable, "variable %q found more than once", name)
			}

			v := p.builder.LookupVariable(name)
			if v == nil {
				var err error
				v, err = p.builder.CreateVariable(name, math.Inf(-1), math.Inf(+1), false)
				if err != nil {
					return err
				}
			}
			if err := expr.AddTerm(v, coef); err != nil {
				return errAt(line, ErrDuplicateVariable, "variable %q found more than once", name)
			}
			sawVariable = true

			rem = rem[n:]
			stripped := strings.TrimSpace(rem)
			whitespaceAfter = len(stripped) != len(rem)
			rem = stripped

		case !hadNumeral:
			return errAt(line, ErrMalformedTerm, "cannot process remainder %q", rem)

		default:
			// A numeral with no variable attached is a standalone
			// constant contribution.
			constant += coef
		}

		// Adjacency rule: what follows must be nothing, or have been
		// separated by whitespace, or start the next combination sign.
		if rem != "" && !whitespaceAfter && rem[0] != '+' && rem[0] != '-' {
			return errAt(line, ErrMissingSeparator,
				"unexpected character %q (expected whitespace or combination sign)", rem[0])
		}
	}

	if !sawVariable {
		return errAt(line, ErrMissingVariableTerm, "not a single variable present in the coefficients")
	}

	expr.Offset = constant

	return nil
}
