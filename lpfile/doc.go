// Package lpfile parses linear/integer programs written in a
// line-oriented algebraic text format (LPSolve-style) into a model.
//
// 🚀 The format:
//
//	max: 3x1 + 2 x2;        // objective first: "max:" or "min:"
//	capacity: x1 + x2 <= 30; // optional label, one constraint per line
//	0 <= x1 <= 20;           // two-sided ranges
//	x2 >= 4;                 // one-sided bounds
//	int x1, x2;              // integrality declarations close the file
//
//	• every statement ends with ';'
//	• "//" starts a comment to end-of-line; blank lines are ignored
//	• identifiers: [A-Za-z][A-Za-z0-9_]*
//	• numerals:    digits[.digits] | .digits, optional [eE][+-]digits
//	• terms are separated by whitespace or a combination sign: both
//	  "x1 + x2" and "x1+x2" parse, "x1x2" does not
//
// The file is scanned twice. Pass 1 pre-registers every `int`-declared
// variable, because an expression may reference a variable declared
// later. Pass 2 parses the objective (first statement) and the
// constraints, stopping where the declaration block begins.
//
// A constraint whose body is exactly one bare variable name ("x1 <= 30")
// additionally tightens that variable's bounds on top of the generic
// constraint row it still produces.
//
// ✨ Error handling:
//
//	Every failure is fatal, carries the 1-based line number via
//	*ParseError, and unwraps to one of the package sentinels, e.g.:
//
//	  _, err := lpfile.ParseString(src)
//	  if errors.Is(err, lpfile.ErrMissingTerminator) { ... }
//
// The parser performs no logging and builds no partial models.
package lpfile
