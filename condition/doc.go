// Package condition provides validation and encoding of single filter conditions.
//
// A condition is one typed predicate: a column, a comparator, a value and an
// inversion flag. This package turns untyped input into a validated Condition
// and encodes it to a backend-agnostic Fragment: an expression with positional
// "?" placeholders plus the ordered values to bind.
//
// # Parsing
//
// Each condition type has a parse function that validates its input against
// a TypeConfig and collects every problem before failing:
//
//	cond, err := condition.ParseText(
//	    condition.TypeConfig{Keys: []string{"title", "comments"}},
//	    condition.Input{Column: "title", Comparator: "is", Value: "Milk"},
//	)
//	if err != nil {
//	    list, _ := condition.AsErrorList(err) // one message per invalid field
//	    ...
//	}
//
// Most callers dispatch by declared type name through the root condfilter
// package instead of calling a parse function directly.
//
// # Encoding
//
//	frag := cond.Encode()
//	// frag.Expression == "(title = ?)", frag.Values == []string{"Milk"}
//
// Encoding is driven by a RuleSet per condition type. A Rule maps a
// comparator to an expression template containing the token "column" and to
// value templates containing the token "value". Every rule names its Reverse
// comparator; an inverted condition is encoded as its reverse comparator
// without inversion, so "is" with inversion encodes exactly like "is not".
//
// # Condition Types
//
//   - Text: is, is not, contains, does not contain, starts with,
//     does not start with, ends with, does not end with
//   - Number: is, is not, greater than, less than or equal, less than,
//     greater than or equal
//   - Date: is, is not, before, on or after, after, on or before
//   - Boolean: is, is not
//   - Geometry (WKT values, DuckDB spatial functions): intersects,
//     does not intersect, within, not within
//
// The set of types is closed. Conditions are immutable and all package
// state is read-only after initialization, so everything here is safe for
// concurrent use.
package condition
