package condition

import "strconv"

var numberRules = MustRuleSet(TypeNumber,
	Rule{Comparator: "is", Reverse: "is not", Expression: "(column = ?)"},
	Rule{Comparator: "is not", Reverse: "is", Expression: "(column != ?)"},
	Rule{Comparator: "greater than", Reverse: "less than or equal", Expression: "(column > ?)"},
	Rule{Comparator: "less than or equal", Reverse: "greater than", Expression: "(column <= ?)"},
	Rule{Comparator: "less than", Reverse: "greater than or equal", Expression: "(column < ?)"},
	Rule{Comparator: "greater than or equal", Reverse: "less than", Expression: "(column >= ?)"},
)

// Number is a condition on a numeric column.
type Number struct {
	Base

	// Number is the value converted to float64. Large integers may be
	// rounded; Encode binds Text.
	Number float64 `json:"-"`

	// Text is the exact decimal form of the value.
	Text string `json:"-"`
}

// Type returns TypeNumber.
func (Number) Type() Type { return TypeNumber }

// Encode converts the condition to a Fragment.
// Integers are bound exactly, json.Number text as given and floats in
// their shortest decimal form, e.g. "5" or "2.5".
func (c Number) Encode() Fragment {
	return numberRules.Encode(c.Base, c.Text)
}

// ParseNumber parses a number condition.
func ParseNumber(cfg TypeConfig, in Input) (Condition, error) {
	v := newValidation(TypeNumber)
	base := parseBase(v, cfg, numberRules, in)

	text, ok := ValidateNumber(in.Value)
	if !ok {
		v.invalidValue(in.Column)
	}

	if err := v.err(); err != nil {
		return nil, err
	}
	n, _ := strconv.ParseFloat(text, 64)
	return Number{Base: base, Number: n, Text: text}, nil
}
