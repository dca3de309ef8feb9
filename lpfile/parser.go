// SPDX-License-Identifier: MIT
//
// File: parser.go
// Role: public parsing surface and the two-pass driver.
// Policy:
//   - Pass 1 (scanDeclarations) completes before pass 2 starts, so that
//     integer variables declared at the bottom of the file exist by the
//     time constraint expressions reference them.
//   - The source is streamed twice; ParseFile re-opens the file per pass.
//   - The Model under construction and the names-seen set are owned
//     exclusively by the parse invocation; nothing escapes on failure.

package lpfile

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlsolve/model"
)

// Parser populates a model.Builder from LP-format text.
type Parser struct {
	builder model.Builder
	names   map[string]struct{}
}

// NewParser returns a Parser writing through b.
func NewParser(b model.Builder) *Parser {
	return &Parser{builder: b, names: make(map[string]struct{})}
}

// VarNames returns every variable name encountered so far, sorted.
func (p *Parser) VarNames() []string {
	names := make([]string, 0, len(p.names))
	for name := range p.names {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Result bundles the default-registry parse output: the populated Model
// and the sorted set of all variable names encountered.
type Result struct {
	Model    *model.Model
	VarNames []string
}

// ParseFile reads the LP program at path into a fresh Model.
// The file is opened and fully consumed twice, once per pass.
func ParseFile(path string) (*Result, error) {
	m := model.New()
	p := NewParser(m)

	if err := p.run(func() (io.ReadCloser, error) { return os.Open(path) }); err != nil {
		return nil, err
	}

	return &Result{Model: m, VarNames: p.VarNames()}, nil
}

// ParseString parses an in-memory LP program into a fresh Model.
func ParseString(src string) (*Result, error) {
	m := model.New()
	p := NewParser(m)

	if err := p.run(func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(src)), nil
	}); err != nil {
		return nil, err
	}

	return &Result{Model: m, VarNames: p.VarNames()}, nil
}

// ParseFileInto streams the file at path through p's builder; use this
// with a custom Builder implementation. Returns the sorted name set.
func (p *Parser) ParseFileInto(path string) ([]string, error) {
	if err := p.run(func() (io.ReadCloser, error) { return os.Open(path) }); err != nil {
		return nil, err
	}

	return p.VarNames(), nil
}

// run executes both passes, obtaining a fresh reader per pass.
func (p *Parser) run(open func() (io.ReadCloser, error)) error {
	r, err := open()
	if err != nil {
		return err
	}
	err = p.scanDeclarations(r)
	if cerr := r.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	r, err = open()
	if err != nil {
		return err
	}
	err = p.buildModel(r)
	if cerr := r.Close(); err == nil {
		err = cerr
	}

	return err
}

// buildModel is pass 2: the first statement is the objective, every
// later one a constraint, until the declarations region opens (those
// statements were fully handled by pass 1).
func (p *Parser) buildModel(r io.Reader) error {
	sc := bufio.NewScanner(r)

	lineNr := 0
	inObjective := true
	for sc.Scan() {
		lineNr++

		core, err := normalizeLine(sc.Text(), lineNr)
		if err != nil {
			return err
		}
		if core == "" {
			continue
		}

		if inObjective {
			if err = p.parseObjective(core, lineNr); err != nil {
				return err
			}
			inObjective = false

			continue
		}

		if isDeclarationStart(core) {
			break
		}

		if err = p.parseConstraint(core, lineNr); err != nil {
			return err
		}
	}

	return sc.Err()
}

// parseObjective handles the "<max|min>: <expr>" statement. The
// expression's folded constant becomes the objective's constant term.
func (p *Parser) parseObjective(core string, line int) error {
	direction, rest, found := strings.Cut(core, ":")
	if !found {
		return errAt(line, ErrInvalidDirection, "objective function must start with %q or %q", "max:", "min:")
	}

	var dir model.Direction
	switch direction {
	case "max":
		dir = model.Maximize
	case "min":
		dir = model.Minimize
	default:
		return errAt(line, ErrInvalidDirection, "objective function must start with %q or %q", "max:", "min:")
	}

	expr := &model.LinearExpr{}
	if err := p.parseExpression(strings.TrimSpace(rest), line, expr); err != nil {
		return err
	}
	p.builder.SetObjective(dir, expr)

	return nil
}
