package condition

import (
	"errors"
	"fmt"
	"strings"
)

// Bounds for rendering non-text columns in error messages.
// Representations longer than maxReprLen keep reprHead leading and reprTail
// trailing runes.
const (
	maxReprLen = 15
	reprHead   = 13
	reprTail   = 3
)

// ErrorList is the ordered list of human-readable validation messages
// produced by a failed parse. A parse that returns an ErrorList never
// returns a Condition.
type ErrorList []string

// Error joins the messages with "; ".
func (l ErrorList) Error() string {
	return strings.Join(l, "; ")
}

// AsErrorList extracts the ErrorList from err, if there is one.
func AsErrorList(err error) (ErrorList, bool) {
	var list ErrorList
	if errors.As(err, &list) {
		return list, true
	}
	return nil, false
}

// DescribeInvalidEnumValue renders "Invalid <type> <fieldKind> '<value>'".
func DescribeInvalidEnumValue(value any, fieldKind string, t Type) string {
	return fmt.Sprintf("Invalid %s %s '%v'", t, fieldKind, value)
}

// DescribeInvalidValueType renders "Invalid <type> value for <column>".
//
// A column that is not text is replaced by its quoted Go-syntax
// representation, truncated to reprHead runes, "..." and reprTail runes when
// longer than maxReprLen runes.
func DescribeInvalidValueType(column any, t Type) string {
	name, ok := column.(string)
	if !ok {
		name = quoteRepr(fmt.Sprintf("%#v", column))
	}
	return fmt.Sprintf("Invalid %s value for %s", t, name)
}

func quoteRepr(repr string) string {
	r := []rune(repr)
	if len(r) > maxReprLen {
		repr = string(r[:reprHead]) + "..." + string(r[len(r)-reprTail:])
	}
	return `"` + repr + `"`
}

// validation accumulates field errors for one parse call.
type validation struct {
	kind Type
	errs ErrorList
}

func newValidation(kind Type) *validation {
	return &validation{kind: kind}
}

// invalidEnum records an enum-style failure for fieldKind.
func (v *validation) invalidEnum(value any, fieldKind string) {
	v.errs = append(v.errs, DescribeInvalidEnumValue(value, fieldKind, v.kind))
}

// invalidValue records a value shape failure for column.
func (v *validation) invalidValue(column any) {
	v.errs = append(v.errs, DescribeInvalidValueType(column, v.kind))
}

// err returns nil when no failure was recorded.
func (v *validation) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}
