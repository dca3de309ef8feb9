// Package lpfile: shared lexical matchers.
//
// The format needs exactly two token classes: identifiers
// ([A-Za-z][A-Za-z0-9_]*) and floating-point numerals
// (digits[.digits] | .digits, optional [eE][+-]digits). Both are matched
// with small hand-written cursor loops over the byte sequence; no
// pattern-matching engine is involved, so matching cost is linear and
// allocation-free.

package lpfile

import (
	"strconv"
	"strings"
)

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// identifierLen returns the length of the identifier prefix of s, or 0.
func identifierLen(s string) int {
	if len(s) == 0 || !isLetter(s[0]) {
		return 0
	}

	i := 1
	for i < len(s) && (isLetter(s[i]) || isDigit(s[i]) || s[i] == '_') {
		i++
	}

	return i
}

// isIdentifier reports whether s in its entirety is a single variable name.
func isIdentifier(s string) bool {
	return len(s) > 0 && identifierLen(s) == len(s)
}

// numberLen returns the length of the unsigned numeric-literal prefix of
// s: mantissa digits[.digits] or .digits, then an optional exponent
// [eE][+-]?digits. An exponent marker without digits is not consumed,
// so "3e8" matches fully while "3e" matches only "3".
func numberLen(s string) int {
	i := 0

	// Integer part.
	for i < len(s) && isDigit(s[i]) {
		i++
	}

	switch {
	case i > 0:
		// digits[.digits]
		if i < len(s) && s[i] == '.' {
			i++
			for i < len(s) && isDigit(s[i]) {
				i++
			}
		}
	case i < len(s) && s[i] == '.':
		// .digits — at least one digit required after the dot.
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j == i+1 {
			return 0
		}
		i = j
	default:
		return 0
	}

	// Optional exponent.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	return i
}

// isConstant reports whether s (after trimming) is exactly one signed
// numeric literal, the grammar required in constraint bound slots.
func isConstant(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	return len(s) > 0 && numberLen(s) == len(s)
}

// parseConstant validates and converts a bound slot to a float64.
// Text containing a variable yields ErrNonConstantBound; otherwise a
// malformed numeral yields ErrBadNumericLiteral.
func parseConstant(s string, line int) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if !isConstant(trimmed) {
		if len(trimmed) > 0 && isLetter(trimmed[0]) {
			return 0, errAt(line, ErrNonConstantBound,
				"bound %q is not a numeric constant (variables are not allowed there)", trimmed)
		}

		return 0, errAt(line, ErrBadNumericLiteral, "malformed numeric literal %q", trimmed)
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errAt(line, ErrBadNumericLiteral, "malformed numeric literal %q", trimmed)
	}

	return v, nil
}
