package condition

import "strconv"

var booleanRules = MustRuleSet(TypeBoolean,
	Rule{Comparator: "is", Reverse: "is not", Expression: "(column = ?)"},
	Rule{Comparator: "is not", Reverse: "is", Expression: "(column != ?)"},
)

// Boolean is a condition on a boolean column.
type Boolean struct {
	Base

	Bool bool `json:"-"`
}

// Type returns TypeBoolean.
func (Boolean) Type() Type { return TypeBoolean }

// Encode converts the condition to a Fragment. The value is bound as "true" or "false".
func (c Boolean) Encode() Fragment {
	return booleanRules.Encode(c.Base, strconv.FormatBool(c.Bool))
}

// ParseBoolean parses a boolean condition.
func ParseBoolean(cfg TypeConfig, in Input) (Condition, error) {
	v := newValidation(TypeBoolean)
	base := parseBase(v, cfg, booleanRules, in)

	b, ok := ValidateBool(in.Value)
	if !ok {
		v.invalidValue(in.Column)
	}

	if err := v.err(); err != nil {
		return nil, err
	}
	return Boolean{Base: base, Bool: b}, nil
}
