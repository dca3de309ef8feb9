package lpfile_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlsolve/lpfile"
	"github.com/katalvlaran/lvlsolve/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// program joins statements with newlines, mimicking an .lp file body.
func program(lines ...string) string {
	return strings.Join(lines, "\n")
}

func mustParse(t *testing.T, lines ...string) *lpfile.Result {
	t.Helper()

	res, err := lpfile.ParseString(program(lines...))
	require.NoError(t, err)

	return res
}

func parseErr(t *testing.T, lines ...string) error {
	t.Helper()

	_, err := lpfile.ParseString(program(lines...))
	require.Error(t, err)

	return err
}

// TestParse_Readme is the canonical round trip: bounds land on the
// variables via the single-bare-variable shortcut while the generic
// constraint rows are still emitted.
func TestParse_Readme(t *testing.T) {
	res := mustParse(t,
		"max: x1 - x2;",
		"x1 >= 0.3;",
		"x1 <= 30.6;",
		"x2 >= 24.9;",
		"x2 <= 50.1;",
	)

	m := res.Model
	x1 := m.LookupVariable("x1")
	require.NotNil(t, x1)
	assert.Equal(t, 0.3, x1.Lower)
	assert.Equal(t, 30.6, x1.Upper)

	x2 := m.LookupVariable("x2")
	require.NotNil(t, x2)
	assert.Equal(t, 24.9, x2.Lower)
	assert.Equal(t, 50.1, x2.Upper)

	obj, ok := m.Objective()
	require.True(t, ok)
	assert.Equal(t, model.Maximize, obj.Direction)
	assert.Equal(t, 1.0, obj.Expr.Coefficient("x1"))
	assert.Equal(t, -1.0, obj.Expr.Coefficient("x2"))
	assert.Equal(t, 0.0, obj.Expr.Offset)

	// The heuristic is layered on top of the generic rows, not instead.
	assert.Equal(t, 4, m.NumConstraints())

	assert.Equal(t, []string{"x1", "x2"}, res.VarNames)
}

// TestParse_HeuristicMatchesGenericRow: the bound written onto the
// variable must equal the bound of the equivalent one-term row.
func TestParse_HeuristicMatchesGenericRow(t *testing.T) {
	res := mustParse(t,
		"max: x1;",
		"x1 <= 30.6;",
	)

	m := res.Model
	row := m.Constraints()[0]
	assert.Equal(t, 1.0, row.Expr.Coefficient("x1"))
	assert.True(t, math.IsInf(row.Lower, -1))
	assert.Equal(t, 30.6, row.Upper)
	assert.Equal(t, 30.6, m.LookupVariable("x1").Upper)
}

// TestParse_ExplicitCoefficient covers "+1.0x1".
func TestParse_ExplicitCoefficient(t *testing.T) {
	res := mustParse(t,
		"max: +1.0x1 + x2;",
		"x1 <= 30;",
	)

	obj, _ := res.Model.Objective()
	assert.Equal(t, 1.0, obj.Expr.Coefficient("x1"))
	assert.Equal(t, 1.0, obj.Expr.Coefficient("x2"))
}

// TestParse_SignCombinations covers combination sign vs real sign:
// "+-0.1x1" is -0.1·x1, "- -x2" is +x2, "+ -x3" is -x3. Each term
// carries at most one combination sign and one real sign.
func TestParse_SignCombinations(t *testing.T) {
	res := mustParse(t,
		"max: +-0.1x1 - -x2 + -x3;",
		"x1 <= 1;",
	)

	obj, _ := res.Model.Objective()
	assert.Equal(t, -0.1, obj.Expr.Coefficient("x1"))
	assert.Equal(t, 1.0, obj.Expr.Coefficient("x2"))
	assert.Equal(t, -1.0, obj.Expr.Coefficient("x3"))
}

// TestParse_ConstantFolding: "x1+1--1" sums the standalone constants
// into the objective offset.
func TestParse_ConstantFolding(t *testing.T) {
	res := mustParse(t,
		"max: --x1 + +x2+1--1;",
		"x1 <= 30;",
	)

	obj, _ := res.Model.Objective()
	assert.Equal(t, 1.0, obj.Expr.Coefficient("x1"))
	assert.Equal(t, 1.0, obj.Expr.Coefficient("x2"))
	assert.Equal(t, 2.0, obj.Expr.Offset)
}

// TestParse_StandaloneCoefficient: a numeral followed by whitespace is a
// constant, the next numeral binds to the variable.
func TestParse_StandaloneCoefficient(t *testing.T) {
	res := mustParse(t,
		"max: 33.25 3x1 + x2;",
		"x1 <= 30;",
	)

	obj, _ := res.Model.Objective()
	assert.Equal(t, 3.0, obj.Expr.Coefficient("x1"))
	assert.Equal(t, 33.25, obj.Expr.Offset)
}

// TestParse_ConstraintConstantFolded: "x1 + 5 >= 0" stores the row as
// x1 >= -5 and must NOT touch x1's bounds (body is not a bare name).
func TestParse_ConstraintConstantFolded(t *testing.T) {
	res := mustParse(t,
		"min: x1;",
		"x1 + 5 >= 0;",
	)

	m := res.Model
	row := m.Constraints()[0]
	assert.Equal(t, -5.0, row.Lower)
	assert.True(t, math.IsInf(row.Upper, +1))
	assert.Equal(t, 0.0, row.Expr.Offset, "offset must be folded out before storage")

	assert.True(t, m.LookupVariable("x1").Free(), "heuristic must not fire for x1 + 5")
}

// TestParse_Equality: both bound slots take the constant.
func TestParse_Equality(t *testing.T) {
	res := mustParse(t,
		"max: x1 + x2;",
		"x1 = 30;",
		"x2 <= 99.2;",
	)

	m := res.Model
	row := m.Constraints()[0]
	assert.Equal(t, 30.0, row.Lower)
	assert.Equal(t, 30.0, row.Upper)

	x1 := m.LookupVariable("x1")
	assert.Equal(t, 30.0, x1.Lower)
	assert.Equal(t, 30.0, x1.Upper)
}

// TestParse_TwoSidedRanges covers ascending "<=" and descending ">="
// range forms.
func TestParse_TwoSidedRanges(t *testing.T) {
	res := mustParse(t,
		"max: -x1 + x2;",
		"0 <= x1 <= 30.6;",
		"50.5 >= x2 >= 24;",
	)

	m := res.Model
	x1 := m.LookupVariable("x1")
	assert.Equal(t, 0.0, x1.Lower)
	assert.Equal(t, 30.6, x1.Upper)

	x2 := m.LookupVariable("x2")
	assert.Equal(t, 24.0, x2.Lower)
	assert.Equal(t, 50.5, x2.Upper)

	// Descending rows still store lower ≤ upper slots in order.
	row := m.Constraints()[1]
	assert.Equal(t, 24.0, row.Lower)
	assert.Equal(t, 50.5, row.Upper)
}

// TestParse_StrictInequalities: "<" and ">" behave exactly like "<=" and
// ">=".
func TestParse_StrictInequalities(t *testing.T) {
	res := mustParse(t,
		"max: x1 + x2;",
		"x1 < 30;",
		"x2 > 24;",
	)

	m := res.Model
	assert.Equal(t, 30.0, m.LookupVariable("x1").Upper)
	assert.Equal(t, 24.0, m.LookupVariable("x2").Lower)
}

// TestParse_Label: a "<name>:" prefix is cosmetic and recorded verbatim.
func TestParse_Label(t *testing.T) {
	res := mustParse(t,
		"max: x1 + x2;",
		"my_constraint: x1 >= 0;",
		"x1 <= 30;",
	)

	m := res.Model
	assert.Equal(t, "my_constraint", m.Constraints()[0].Label)
	assert.Equal(t, "", m.Constraints()[1].Label)
	assert.Equal(t, 0.0, m.LookupVariable("x1").Lower, "labelled bare-variable bounds still tighten")
}

// TestParse_Declarations: int statements mark variables integer; bounds
// tightened by earlier constraints survive because pass 1 pre-registers
// the variables.
func TestParse_Declarations(t *testing.T) {
	res := mustParse(t,
		"max: x1 + x2 + x3;",
		"0 <= x1 <= 30.9;",
		"50.4 >= x2 >= 24.8;",
		"x3 <= 99.2;",
		"int x1, x2;",
		"int x3;",
	)

	m := res.Model
	for _, name := range []string{"x1", "x2", "x3"} {
		v := m.LookupVariable(name)
		require.NotNil(t, v, name)
		assert.True(t, v.Integer, "%s must be integer", name)
	}
	assert.Equal(t, 30.9, m.LookupVariable("x1").Upper)
	assert.Equal(t, 24.8, m.LookupVariable("x2").Lower)
	assert.Equal(t, 99.2, m.LookupVariable("x3").Upper)

	assert.Equal(t, []string{"x1", "x2", "x3"}, res.VarNames)
	assert.Equal(t, 3, m.NumConstraints(), "declaration lines are not constraint rows")
}

// TestParse_Exponents: "3e8x1" is 3e8·x1 while "e8" alone is a variable.
func TestParse_Exponents(t *testing.T) {
	res := mustParse(t,
		"max: 3e8x1 + 2e8 x2;",
		"e8 x1 >= 0;",
		"x2 <= 5e1;",
	)

	m := res.Model
	obj, _ := m.Objective()
	assert.Equal(t, 3e8, obj.Expr.Coefficient("x1"))
	assert.Equal(t, 2e8, obj.Expr.Coefficient("x2"))

	require.NotNil(t, m.LookupVariable("e8"), "e8 must have been read as a variable")

	row := m.Constraints()[0]
	assert.Equal(t, 1.0, row.Expr.Coefficient("e8"))
	assert.Equal(t, 1.0, row.Expr.Coefficient("x1"))

	assert.Equal(t, 50.0, m.LookupVariable("x2").Upper)
}

// TestParse_AdjacentSignSplitsTerms: "x-1" is the variable x, then the
// constant -1 introduced by a combination sign.
func TestParse_AdjacentSignSplitsTerms(t *testing.T) {
	res := mustParse(t,
		"max: x-1 + x2 - x1;",
		"x + 80 <= 400;",
	)

	obj, _ := res.Model.Objective()
	assert.Equal(t, 1.0, obj.Expr.Coefficient("x"))
	assert.Equal(t, 1.0, obj.Expr.Coefficient("x2"))
	assert.Equal(t, -1.0, obj.Expr.Coefficient("x1"))
	assert.Equal(t, -1.0, obj.Expr.Offset)

	row := res.Model.Constraints()[0]
	assert.Equal(t, 320.0, row.Upper, "constraint constant folds into the bound")
}

// TestParse_CommentsAndBlankLines mirrors the comment-handling corpus.
func TestParse_CommentsAndBlankLines(t *testing.T) {
	res := mustParse(t,
		"max: x1 - x2;",
		"",
		"x1 >= 0;",
		"// Test",
		"     //    x1 >= 45;",
		"x1 <= 30;",
		"x2 >= 24;",
		"",
		"x2 <= 50;    // Some text",
	)

	m := res.Model
	assert.Equal(t, 30.0, m.LookupVariable("x1").Upper)
	assert.Equal(t, 0.0, m.LookupVariable("x1").Lower)
	assert.Equal(t, 4, m.NumConstraints())
}

// TestParse_CRLF accepts files written with Windows line endings.
func TestParse_CRLF(t *testing.T) {
	res, err := lpfile.ParseString("max: x1;\r\nx1 <= 30;\r\n")
	require.NoError(t, err)
	assert.Equal(t, 30.0, res.Model.LookupVariable("x1").Upper)
}

// TestParse_InfeasibleRangeAllowed: the parser never checks
// lower ≤ upper; infeasibility is the solver's concern.
func TestParse_InfeasibleRangeAllowed(t *testing.T) {
	res := mustParse(t,
		"max: x1;",
		"x1 >= 10;",
		"x1 <= 5;",
	)

	v := res.Model.LookupVariable("x1")
	assert.Equal(t, 10.0, v.Lower)
	assert.Equal(t, 5.0, v.Upper)
}

// TestParse_RereferenceIdempotent: later expression references must not
// reset bounds set by earlier statements.
func TestParse_RereferenceIdempotent(t *testing.T) {
	res := mustParse(t,
		"max: x1;",
		"x1 >= 2;",
		"x1 + x2 <= 30;",
		"x1 <= 10;",
	)

	v := res.Model.LookupVariable("x1")
	assert.Equal(t, 2.0, v.Lower)
	assert.Equal(t, 10.0, v.Upper)
	assert.Equal(t, []string{"x1", "x2"}, res.VarNames, "x2 discovered on first reference")
}

// TestParseFile reads from disk, consuming the file twice.
func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.lp")
	content := program(
		"max: x1 + x2;",
		"0 <= x1 <= 30.9;",
		"50.4 >= x2 >= 24.8;",
		"int x1, x2;",
	)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	res, err := lpfile.ParseFile(path)
	require.NoError(t, err)
	assert.True(t, res.Model.LookupVariable("x1").Integer)
	assert.True(t, res.Model.LookupVariable("x2").Integer)
	assert.Equal(t, []string{"x1", "x2"}, res.VarNames)
}

// TestParseFile_Missing propagates the open error of the first pass.
func TestParseFile_Missing(t *testing.T) {
	_, err := lpfile.ParseFile(filepath.Join(t.TempDir(), "nope.lp"))
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// Invalid programs
// ---------------------------------------------------------------------------

func TestParse_MissingTerminatorObjective(t *testing.T) {
	err := parseErr(t,
		"max: x1 + x2",
		"x1 >= 0;",
	)
	assert.ErrorIs(t, err, lpfile.ErrMissingTerminator)

	var perr *lpfile.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
}

func TestParse_MissingTerminatorConstraint(t *testing.T) {
	err := parseErr(t,
		"max: x1 + x2;",
		"x1 >= 0;",
		"x2 <= 50",
	)
	assert.ErrorIs(t, err, lpfile.ErrMissingTerminator)

	var perr *lpfile.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Line)
}

func TestParse_SemicolonOnly(t *testing.T) {
	err := parseErr(t,
		"max: x1;",
		"x1 <= 30;",
		";",
	)
	assert.ErrorIs(t, err, lpfile.ErrEmptyStatement)
}

func TestParse_InvalidDirection(t *testing.T) {
	err := parseErr(t, "abc: x1 + x2;", "x1 >= 3;")
	assert.ErrorIs(t, err, lpfile.ErrInvalidDirection)

	err = parseErr(t, "x1 + x2;", "x1 >= 3;")
	assert.ErrorIs(t, err, lpfile.ErrInvalidDirection, "a missing colon is no objective either")

	err = parseErr(t, "MAX: x1;", "x1 >= 3;")
	assert.ErrorIs(t, err, lpfile.ErrInvalidDirection, "the direction keyword is case-sensitive")
}

func TestParse_DuplicateVariableInObjective(t *testing.T) {
	err := parseErr(t,
		"max: x1 + x2 + x1;",
		"x1 >= 0;",
	)
	assert.ErrorIs(t, err, lpfile.ErrDuplicateVariable)
}

func TestParse_DuplicateVariableInConstraint(t *testing.T) {
	err := parseErr(t,
		"max: x1 + x2;",
		"x1 + 2x1 >= 0.0;",
	)
	assert.ErrorIs(t, err, lpfile.ErrDuplicateVariable)

	var perr *lpfile.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
}

func TestParse_NoVariableInConstraint(t *testing.T) {
	err := parseErr(t,
		"max: x1 + x2;",
		"30 <= 30;",
	)
	assert.ErrorIs(t, err, lpfile.ErrMissingVariableTerm)

	err = parseErr(t,
		"max: x1 + x2;",
		" <= 30.44;",
	)
	assert.ErrorIs(t, err, lpfile.ErrMissingVariableTerm)
}

func TestParse_NoRelationalSign(t *testing.T) {
	err := parseErr(t,
		"max: x1 + x2;",
		"x2;",
	)
	assert.ErrorIs(t, err, lpfile.ErrRelationalSignCount)
}

func TestParse_TooManyRelationalSigns(t *testing.T) {
	err := parseErr(t,
		"max: x1 + x2;",
		"9 >= x1 >= 0 >= x2;",
	)
	assert.ErrorIs(t, err, lpfile.ErrRelationalSignCount)
}

func TestParse_MixedRelationalSigns(t *testing.T) {
	err := parseErr(t,
		"max: x1 + x2;",
		"0 <= x1 >= 9;",
	)
	assert.ErrorIs(t, err, lpfile.ErrRelationalSignCount)
}

func TestParse_MultipleEquals(t *testing.T) {
	err := parseErr(t,
		"max: x1;",
		"x1 = 29.3 = 29.3;",
	)
	assert.ErrorIs(t, err, lpfile.ErrMultipleEqualsSigns)
}

func TestParse_MalformedBounds(t *testing.T) {
	cases := [][]string{
		{"max: x1 + x2;", "x1 <= 30.44.44;"},
		{"max: x1 + x2;", "x1 >= 30.44.44;"},
		{"max: x1 + x2;", "3 <= x1 <= 30.44.44;"},
		{"max: x1 + x2;", "2.7.7 <= x1 <= 30;"},
		{"max: x1 + x2;", "30 >= x1 >= 2.68.5;"},
		{"max: x1;", "x1 = 29.3agd;"},
	}
	for _, c := range cases {
		err := parseErr(t, c...)
		assert.ErrorIs(t, err, lpfile.ErrBadNumericLiteral, "program %q", c[1])
	}
}

func TestParse_VariableInBoundSlot(t *testing.T) {
	err := parseErr(t,
		"max: x1 + x2;",
		"x1 <= x2;",
	)
	assert.ErrorIs(t, err, lpfile.ErrNonConstantBound)
}

func TestParse_AdjacencyViolations(t *testing.T) {
	err := parseErr(t,
		"max: x1 + x2;",
		"x1|x2 <= 99.2;",
	)
	assert.ErrorIs(t, err, lpfile.ErrMissingSeparator)

	err = parseErr(t, "max: x|1 + x2;", "x1 >= 0;")
	assert.ErrorIs(t, err, lpfile.ErrMissingSeparator)

	err = parseErr(t, "max: x1^ + x2;", "x1 >= 0;")
	assert.ErrorIs(t, err, lpfile.ErrMissingSeparator)

	err = parseErr(t, "max: 33.33.33x1 + x2;", "x1 >= 3;")
	assert.ErrorIs(t, err, lpfile.ErrMissingSeparator, "a second dot cannot continue a numeral")

	err = parseErr(t, "max: 33.33|x1 + x2;", "x1 >= 3;")
	assert.ErrorIs(t, err, lpfile.ErrMissingSeparator)
}

func TestParse_DanglingSigns(t *testing.T) {
	err := parseErr(t, "max: x1 + + x2;", "x1 >= 0.0;")
	assert.ErrorIs(t, err, lpfile.ErrMalformedTerm, "a detached real sign has nothing to bind to")

	err = parseErr(t, "max: x1 +++x2;", "x1 >= 0.0;")
	assert.ErrorIs(t, err, lpfile.ErrMalformedTerm)

	err = parseErr(t, "max: 33.33x1 + x2   +  ;", "x1 >= 3;")
	assert.ErrorIs(t, err, lpfile.ErrMalformedTerm)

	err = parseErr(t, "max: x1;", "_x3 <= 200;")
	assert.ErrorIs(t, err, lpfile.ErrMalformedTerm, "identifiers cannot start with an underscore")

	// Three stacked signs: the combination sign plus real sign leave a
	// stray '-' that no term part can consume.
	err = parseErr(t, "max: x1 + +-0.1x2;", "x1 >= 0.0;")
	assert.ErrorIs(t, err, lpfile.ErrMalformedTerm)
}

func TestParse_BlockCommentsUnsupported(t *testing.T) {
	err := parseErr(t,
		"max: x1 + x2;",
		"/*x1 >= 0.0;*/;",
		"x1 <= 30.9;",
	)
	require.Error(t, err, "/* */ is ordinary text and must fail to parse")
}

func TestParse_DeclarationErrors(t *testing.T) {
	err := parseErr(t,
		"max: x1 + x2;",
		"0 <= x1 <= 30.9;",
		"sos x1, x2;",
	)
	assert.ErrorIs(t, err, lpfile.ErrRelationalSignCount,
		"an unknown keyword with no colon and no relational sign is a broken constraint")

	err = parseErr(t,
		"max: x1 + x2;",
		"int x1;",
		"sos x2;",
	)
	assert.ErrorIs(t, err, lpfile.ErrUnknownDeclarationKeyword,
		"after the declarations region opens, every statement must be a declaration")

	err = parseErr(t, "max: x1 + x2;", "x1 <= 30.9;", "int ;")
	assert.ErrorIs(t, err, lpfile.ErrEmptyDeclarationList)

	err = parseErr(t, "max: x1 + x2;", "x1 <= 30.9;", "int , ;")
	assert.ErrorIs(t, err, lpfile.ErrInvalidIdentifier)

	err = parseErr(t, "max: x1 + x2;", "x1 <= 30.9;", "int ajd|bqx1;")
	assert.ErrorIs(t, err, lpfile.ErrInvalidIdentifier)

	err = parseErr(t, "max: x1 + x2;", "x1 <= 30.9;", "int 4inv1;")
	assert.ErrorIs(t, err, lpfile.ErrInvalidIdentifier)
}

func TestParse_DuplicateDeclarations(t *testing.T) {
	err := parseErr(t,
		"max: x1 + x2;",
		"x1 <= 30.9;",
		"int x1;",
		"int x1;",
	)
	assert.ErrorIs(t, err, lpfile.ErrDuplicateDeclaration)

	err = parseErr(t,
		"max: x1 + x2;",
		"x1 <= 30.9;",
		"int x2;",
		"int x1, x1;",
	)
	assert.ErrorIs(t, err, lpfile.ErrDuplicateDeclaration)
}

// TestParse_ErrorMessageCarriesLine: rendered messages name the 1-based
// line for humans, while errors.Is serves programs.
func TestParse_ErrorMessageCarriesLine(t *testing.T) {
	err := parseErr(t,
		"max: x1 + x2;",
		"x1 = 30;",
		"x1|x2 <= 99.2;",
	)
	assert.ErrorIs(t, err, lpfile.ErrMissingSeparator)
	assert.Contains(t, err.Error(), "line 3")
}

// countingBuilder wraps the default registry and counts constraint rows,
// standing in for a foreign solving engine behind the Builder interface.
type countingBuilder struct {
	model.Builder
	rows int
}

func (b *countingBuilder) AddConstraint(label string, lower, upper float64, expr *model.LinearExpr) *model.Constraint {
	b.rows++

	return b.Builder.AddConstraint(label, lower, upper, expr)
}

// TestParser_CustomBuilder drives the parser through the Builder
// interface rather than the *Model convenience path.
func TestParser_CustomBuilder(t *testing.T) {
	m := model.New()
	rec := &countingBuilder{Builder: m}

	p := lpfile.NewParser(rec)
	path := filepath.Join(t.TempDir(), "program.lp")
	require.NoError(t, os.WriteFile(path,
		[]byte("min: x1;\nx1 >= 1;\n"), 0o644))

	names, err := p.ParseFileInto(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x1"}, names)
	assert.Equal(t, 1, rec.rows)
	assert.Equal(t, 1, m.NumConstraints())
}

// TestParse_EmptyInput: a file with no statements yields an empty model
// and no error (blank lines are permitted).
func TestParse_EmptyInput(t *testing.T) {
	res, err := lpfile.ParseString("\n// only a comment\n\n")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Model.NumVariables())
	_, ok := res.Model.Objective()
	assert.False(t, ok)
}
