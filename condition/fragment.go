package condition

import (
	"slices"
	"strings"
)

// Placeholder is the positional marker used in fragment expressions.
// Each occurrence binds exactly one entry of Fragment.Values, in order.
const Placeholder = "?"

// Fragment is an encoded condition: an expression template with positional
// placeholders and the ordered values to bind to them.
//
// Fragments are plain values. Encode returns a fresh Values slice each call,
// so the receiver owns it.
type Fragment struct {
	Expression string   `json:"expression"`
	Values     []string `json:"values"`
}

// Equal reports whether f and other have the same expression and the same
// values in the same order.
func (f Fragment) Equal(other Fragment) bool {
	return f.Expression == other.Expression && slices.Equal(f.Values, other.Values)
}

// Args returns the values as a slice suitable for database/sql query arguments.
//
// Example:
//
//	frag := cond.Encode()
//	rows, err := db.QueryContext(ctx, "SELECT * FROM items WHERE "+frag.Expression, frag.Args()...)
func (f Fragment) Args() []any {
	args := make([]any, len(f.Values))
	for i, v := range f.Values {
		args[i] = v
	}
	return args
}

// String returns the expression followed by its bound values, for logging.
func (f Fragment) String() string {
	return f.Expression + " [" + strings.Join(f.Values, ", ") + "]"
}

// placeholders counts the placeholder markers in an expression.
func placeholders(expression string) int {
	return strings.Count(expression, Placeholder)
}
