// Package lpfile: the constraint classifier and bound tightening.
//
// A constraint statement is classified purely from its relational
// operators: one '=' (equality), two '<'/'>' after normalizing "<="→"<"
// and ">="→">" (two-sided range), exactly one (one-sided inequality).
// Bound slots must be bare numeric constants. The expression side's
// folded constant is subtracted from both bounds before the row is
// stored.

package lpfile

import (
	"math"
	"strings"

	"github.com/katalvlaran/lvlsolve/model"
)

// parseConstraint handles one constraint statement: strips the optional
// "<label>:" prefix, classifies the relational shape, emits the generic
// constraint row and layers the bound-tightening heuristic on top.
func (p *Parser) parseConstraint(core string, line int) error {
	body := core
	label := ""
	if before, after, found := strings.Cut(core, ":"); found {
		label = strings.TrimSpace(before)
		body = strings.TrimSpace(after)
	}

	// Equality: an '=' with no '<=' / '>=' anywhere.
	if strings.Contains(body, "=") &&
		!strings.Contains(body, "<=") && !strings.Contains(body, ">=") {
		return p.parseEquality(body, label, line)
	}

	// The relaxed and strict forms are equivalent here.
	norm := strings.ReplaceAll(body, "<=", "<")
	norm = strings.ReplaceAll(norm, ">=", ">")

	lt := strings.Count(norm, "<")
	gt := strings.Count(norm, ">")

	switch {
	case lt == 2 && gt == 0: // lo < expr < hi
		spl := strings.SplitN(norm, "<", 3)
		lo, err := parseConstant(spl[0], line)
		if err != nil {
			return err
		}
		hi, err := parseConstant(spl[2], line)
		if err != nil {
			return err
		}
		if err = p.addRow(spl[1], label, line, lo, hi); err != nil {
			return err
		}
		p.tightenBounds(spl[1], lo, hi)

	case gt == 2 && lt == 0: // hi > expr > lo (descending)
		spl := strings.SplitN(norm, ">", 3)
		hi, err := parseConstant(spl[0], line)
		if err != nil {
			return err
		}
		lo, err := parseConstant(spl[2], line)
		if err != nil {
			return err
		}
		if err = p.addRow(spl[1], label, line, lo, hi); err != nil {
			return err
		}
		p.tightenBounds(spl[1], lo, hi)

	case lt == 1 && gt == 0: // expr < hi
		spl := strings.SplitN(norm, "<", 2)
		hi, err := parseConstant(spl[1], line)
		if err != nil {
			return err
		}
		if err = p.addRow(spl[0], label, line, math.Inf(-1), hi); err != nil {
			return err
		}
		p.tightenUpper(spl[0], hi)

	case gt == 1 && lt == 0: // expr > lo
		spl := strings.SplitN(norm, ">", 2)
		lo, err := parseConstant(spl[1], line)
		if err != nil {
			return err
		}
		if err = p.addRow(spl[0], label, line, lo, math.Inf(+1)); err != nil {
			return err
		}
		p.tightenLower(spl[0], lo)

	case lt == 0 && gt == 0:
		return errAt(line, ErrRelationalSignCount, "no (in)equality sign present")

	default:
		return errAt(line, ErrRelationalSignCount, "too many (in)equality signs present")
	}

	return nil
}

// parseEquality handles "expr = const": the right side must be a bare
// constant, and both bound slots tighten to it.
func (p *Parser) parseEquality(body, label string, line int) error {
	spl := strings.Split(body, "=")
	if len(spl) > 2 {
		return errAt(line, ErrMultipleEqualsSigns, "equality constraint has multiple equal signs")
	}

	val, err := parseConstant(spl[1], line)
	if err != nil {
		return err
	}
	if err = p.addRow(spl[0], label, line, val, val); err != nil {
		return err
	}
	p.tightenBounds(spl[0], val, val)

	return nil
}

// addRow parses the expression side and appends the generic constraint
// row with the expression's folded constant subtracted from both bounds.
func (p *Parser) addRow(exprPart, label string, line int, lo, hi float64) error {
	expr := &model.LinearExpr{}
	if err := p.parseExpression(exprPart, line, expr); err != nil {
		return err
	}

	offset := expr.Offset
	expr.Offset = 0
	p.builder.AddConstraint(label, lo-offset, hi-offset, expr)

	return nil
}

// tightenBounds applies the bound-tightening heuristic for two-sided and
// equality forms: when the expression side is syntactically nothing but
// a single bare variable name, both of its bounds are set directly.
// For any more complex body this is a no-op.
func (p *Parser) tightenBounds(exprPart string, lo, hi float64) {
	if v := p.bareVariable(exprPart); v != nil {
		v.SetLower(lo)
		v.SetUpper(hi)
	}
}

// tightenUpper sets only the upper bound (one-sided "<=" / "<").
func (p *Parser) tightenUpper(exprPart string, hi float64) {
	if v := p.bareVariable(exprPart); v != nil {
		v.SetUpper(hi)
	}
}

// tightenLower sets only the lower bound (one-sided ">=" / ">").
func (p *Parser) tightenLower(exprPart string, lo float64) {
	if v := p.bareVariable(exprPart); v != nil {
		v.SetLower(lo)
	}
}

// bareVariable returns the variable when exprPart is exactly one
// identifier; the expression side has already been parsed, so the
// variable is guaranteed to exist then.
func (p *Parser) bareVariable(exprPart string) *model.Variable {
	name := strings.TrimSpace(exprPart)
	if !isIdentifier(name) {
		return nil
	}

	return p.builder.LookupVariable(name)
}
