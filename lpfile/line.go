// Package lpfile: line normalization.

package lpfile

import "strings"

// normalizeLine reduces a raw source line to its statement core:
// surrounding whitespace is trimmed, a "//" comment is cut (a pure text
// cut, not context-aware), and the trailing ';' terminator is stripped.
//
// Returns "" for blank and comment-only lines (the caller skips those),
// ErrMissingTerminator when content lacks the ';', and ErrEmptyStatement
// for a terminator with nothing in front of it.
func normalizeLine(raw string, line int) (string, error) {
	core := strings.TrimSpace(raw)

	if i := strings.Index(core, "//"); i >= 0 {
		core = core[:i]
	}
	core = strings.TrimSpace(core)

	// Blank and comment-only lines are permitted.
	if core == "" {
		return "", nil
	}

	if core[len(core)-1] != ';' {
		return "", errAt(line, ErrMissingTerminator, "statement does not end with a semicolon")
	}
	core = strings.TrimSpace(core[:len(core)-1])

	if core == "" {
		return "", errAt(line, ErrEmptyStatement, "statement ends with a semicolon but is empty otherwise")
	}

	return core, nil
}

// firstToken returns the first whitespace-delimited token of core.
func firstToken(core string) string {
	fields := strings.Fields(core)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// isDeclarationStart reports whether core opens the declarations region:
// no label colon, and the first token is exactly the "int" keyword.
func isDeclarationStart(core string) bool {
	return !strings.Contains(core, ":") && firstToken(core) == "int"
}
