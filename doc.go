// Package condfilter validates filter conditions described as plain data and
// encodes them to backend-agnostic query fragments.
//
// The condfilter package provides:
//   - Dispatch from a declared type name ("text", "number", ...) to the
//     matching condition parser
//   - Validation against per-type configs, reporting every invalid field at once
//   - Encoding of parsed conditions to a SQL expression with "?" placeholders
//     plus the ordered values to bind
//   - A fluent config builder, including configs derived from Arrow schemas
//
// # Quick Start
//
//	configs := condition.TypeConfigs{
//	    "text": {Keys: []string{"title", "comments"}},
//	}
//
//	cond, err := condfilter.Parse(configs, condition.Options{
//	    Type:  "text",
//	    Input: condition.Input{Column: "title", Comparator: "is", Value: "Milk"},
//	})
//	if err != nil {
//	    list, _ := condition.AsErrorList(err)
//	    return list // show every problem to the user
//	}
//
//	frag := condfilter.Encode(cond)
//	rows, err := db.QueryContext(ctx,
//	    "SELECT * FROM items WHERE "+frag.Expression, frag.Args()...)
//
// # Inversion
//
// Every comparator is registered with its logical opposite. A condition with
// Inverse set encodes exactly like the opposite comparator without it:
// "is" inverted gives "(title != ?)", "greater than" inverted gives
// "(price <= ?)".
//
// # Errors
//
// Parse returns either a Condition or a condition.ErrorList, never both:
//   - Unknown type: "Unknown filter condition 'bogus'"
//   - Invalid column or comparator: "Invalid text column 'unknown_col'"
//   - Invalid value: "Invalid number value for price"
//
// Encode never fails for a parsed condition.
//
// # Configs
//
// Configs are plain maps and can be written by hand, loaded from YAML with
// the codec package, or built:
//
//	configs, err := condfilter.NewConfigBuilder().
//	    Schema(arrowSchema).
//	    Type(condition.TypeText).
//	        Comparators("is", "is not", "contains", "does not contain").
//	    Build()
//
// # Concurrency
//
// Parse and Encode are pure and perform no I/O. Registries are read-only after
// construction and safe for concurrent use.
package condfilter
