package condition

import "time"

var dateRules = MustRuleSet(TypeDate,
	Rule{Comparator: "is", Reverse: "is not", Expression: "(column = ?)"},
	Rule{Comparator: "is not", Reverse: "is", Expression: "(column != ?)"},
	Rule{Comparator: "before", Reverse: "on or after", Expression: "(column < ?)"},
	Rule{Comparator: "on or after", Reverse: "before", Expression: "(column >= ?)"},
	Rule{Comparator: "after", Reverse: "on or before", Expression: "(column > ?)"},
	Rule{Comparator: "on or before", Reverse: "after", Expression: "(column <= ?)"},
)

// Date is a condition on a date or timestamp column.
type Date struct {
	Base

	// Time is the parsed value.
	Time time.Time `json:"-"`
}

// Type returns TypeDate.
func (Date) Type() Type { return TypeDate }

// Encode converts the condition to a Fragment.
// Text values are bound as given; time.Time values in RFC 3339 form.
func (c Date) Encode() Fragment {
	s, ok := c.CondValue.(string)
	if !ok {
		s = c.Time.Format(time.RFC3339Nano)
	}
	return dateRules.Encode(c.Base, s)
}

// ParseDate parses a date condition.
func ParseDate(cfg TypeConfig, in Input) (Condition, error) {
	v := newValidation(TypeDate)
	base := parseBase(v, cfg, dateRules, in)

	t, ok := ValidateDate(in.Value)
	if !ok {
		v.invalidValue(in.Column)
	}

	if err := v.err(); err != nil {
		return nil, err
	}
	return Date{Base: base, Time: t}, nil
}
