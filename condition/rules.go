package condition

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Tokens substituted by RuleSet.Encode.
const (
	columnToken = "column"
	valueToken  = "value"
)

// Rule maps one comparator to its encoded form.
type Rule struct {
	// Comparator is matched exactly against the condition's comparator.
	Comparator string

	// Reverse is the comparator expressing the logical negation of Comparator.
	// It must itself be registered in the same RuleSet.
	Reverse string

	// Expression is the fragment expression. Every occurrence of "column" is
	// replaced by the column name, e.g. "(column = ?)".
	Expression string

	// Values are the bound value templates, one per placeholder, in order.
	// Every occurrence of "value" is replaced by the condition value's text.
	// Defaults to a single "value" template.
	Values []string
}

// RuleSet is the encoder rule table of one condition type.
// It is immutable after construction and safe for concurrent use.
type RuleSet struct {
	kind  Type
	rules map[string]Rule
	order []string
}

// NewRuleSet builds a rule table for kind.
//
// Error conditions:
//   - Empty or duplicate comparator
//   - Reverse missing, equal to its own comparator, or not registered
//   - Placeholder count in Expression differs from the number of value templates
func NewRuleSet(kind Type, rules ...Rule) (*RuleSet, error) {
	rs := &RuleSet{
		kind:  kind,
		rules: make(map[string]Rule, len(rules)),
		order: make([]string, 0, len(rules)),
	}

	for _, r := range rules {
		if r.Comparator == "" {
			return nil, fmt.Errorf("%s rules: empty comparator", kind)
		}
		if _, dup := rs.rules[r.Comparator]; dup {
			return nil, fmt.Errorf("%s rules: duplicate comparator %q", kind, r.Comparator)
		}
		if len(r.Values) == 0 {
			r.Values = []string{valueToken}
		} else {
			r.Values = slices.Clone(r.Values)
		}
		if n := placeholders(r.Expression); n != len(r.Values) {
			return nil, fmt.Errorf("%s rules: comparator %q has %d placeholders but %d value templates",
				kind, r.Comparator, n, len(r.Values))
		}
		rs.rules[r.Comparator] = r
		rs.order = append(rs.order, r.Comparator)
	}

	// Inversion must resolve in exactly one step.
	var errs []error
	for _, c := range rs.order {
		r := rs.rules[c]
		switch {
		case r.Reverse == "":
			errs = append(errs, fmt.Errorf("%s rules: comparator %q has no reverse", kind, c))
		case r.Reverse == c:
			errs = append(errs, fmt.Errorf("%s rules: comparator %q is its own reverse", kind, c))
		default:
			if _, ok := rs.rules[r.Reverse]; !ok {
				errs = append(errs, fmt.Errorf("%s rules: reverse %q of %q is not registered", kind, r.Reverse, c))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return rs, nil
}

// MustRuleSet is like NewRuleSet but panics on an invalid table.
// Intended for package-level rule tables.
func MustRuleSet(kind Type, rules ...Rule) *RuleSet {
	rs, err := NewRuleSet(kind, rules...)
	if err != nil {
		panic(err)
	}
	return rs
}

// Supports reports whether comparator has a rule.
func (rs *RuleSet) Supports(comparator string) bool {
	_, ok := rs.rules[comparator]
	return ok
}

// Reverse returns the reverse comparator registered for comparator.
func (rs *RuleSet) Reverse(comparator string) (string, bool) {
	r, ok := rs.rules[comparator]
	return r.Reverse, ok
}

// Comparators returns the registered comparators in registration order.
func (rs *RuleSet) Comparators() []string {
	return slices.Clone(rs.order)
}

// Encode produces the fragment for b, with value as the value's text.
//
// An inverted condition is re-encoded once as its rule's Reverse comparator
// with the inversion cleared. Encode panics when the comparator has no rule:
// parse only admits comparators the table supports.
func (rs *RuleSet) Encode(b Base, value string) Fragment {
	r, ok := rs.rules[b.CondComparator]
	if !ok {
		panic(fmt.Sprintf("condition: no %s encoder rule for comparator %q", rs.kind, b.CondComparator))
	}

	if b.CondInverse {
		b.CondComparator = r.Reverse
		b.CondInverse = false
		return rs.Encode(b, value)
	}

	values := make([]string, len(r.Values))
	for i, tmpl := range r.Values {
		values[i] = strings.ReplaceAll(tmpl, valueToken, value)
	}

	return Fragment{
		Expression: strings.ReplaceAll(r.Expression, columnToken, b.CondColumn),
		Values:     values,
	}
}
