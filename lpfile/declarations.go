// Package lpfile: pass 1 — the declaration scanner.
//
// Declarations close the file ("int x1, x2;") and may be referenced by
// expressions that precede them, so a full first pass registers every
// integer variable before any expression is parsed.

package lpfile

import (
	"bufio"
	"io"
	"math"
	"strings"
	"unicode"
)

// scanDeclarations is pass 1: it walks every normalized statement, skips
// the objective (always the first statement) and the constraint region,
// and parses everything from the first declaration statement on.
func (p *Parser) scanDeclarations(r io.Reader) error {
	sc := bufio.NewScanner(r)

	lineNr := 0
	inObjective := true
	inConstraints := false
	for sc.Scan() {
		lineNr++

		core, err := normalizeLine(sc.Text(), lineNr)
		if err != nil {
			return err
		}
		if core == "" {
			continue
		}

		switch {
		case inObjective:
			// Declarations never precede the objective.
			inObjective = false
			inConstraints = true

		case inConstraints:
			if isDeclarationStart(core) {
				inConstraints = false
				if err = p.parseDeclaration(core, lineNr); err != nil {
					return err
				}
			}

		default:
			// Every statement after the first declaration must be one.
			if err = p.parseDeclaration(core, lineNr); err != nil {
				return err
			}
		}
	}

	return sc.Err()
}

// parseDeclaration handles one "int <name>[, <name>]*" statement: each
// name must satisfy the identifier grammar and must not have been
// declared before. Declared variables are created integer with default
// unbounded bounds; constraints seen in pass 2 may tighten them later.
func (p *Parser) parseDeclaration(core string, line int) error {
	keyword, rest := splitOnWhitespace(core)

	if keyword != "int" {
		return errAt(line, ErrUnknownDeclarationKeyword, "declaration should start with %q", "int ")
	}
	if rest == "" {
		return errAt(line, ErrEmptyDeclarationList, "declaration has no variables")
	}

	for _, raw := range strings.Split(rest, ",") {
		name := strings.TrimSpace(raw)
		if !isIdentifier(name) {
			return errAt(line, ErrInvalidIdentifier, "non-permitted variable name %q", name)
		}
		if _, seen := p.names[name]; seen {
			return errAt(line, ErrDuplicateDeclaration, "variable %q declared again", name)
		}
		p.names[name] = struct{}{}

		if _, err := p.builder.CreateVariable(name, math.Inf(-1), math.Inf(+1), true); err != nil {
			return errAt(line, ErrDuplicateDeclaration, "variable %q declared again", name)
		}
	}

	return nil
}

// splitOnWhitespace cuts s at its first whitespace run, returning the
// head token and the trimmed tail ("" when there is none).
func splitOnWhitespace(s string) (head, tail string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}

	return s[:i], strings.TrimSpace(s[i:])
}
