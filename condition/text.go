package condition

var textRules = MustRuleSet(TypeText,
	Rule{Comparator: "is", Reverse: "is not", Expression: "(column = ?)"},
	Rule{Comparator: "is not", Reverse: "is", Expression: "(column != ?)"},
	Rule{Comparator: "contains", Reverse: "does not contain", Expression: "(column LIKE ?)", Values: []string{"%value%"}},
	Rule{Comparator: "does not contain", Reverse: "contains", Expression: "(column NOT LIKE ?)", Values: []string{"%value%"}},
	Rule{Comparator: "starts with", Reverse: "does not start with", Expression: "(column LIKE ?)", Values: []string{"value%"}},
	Rule{Comparator: "does not start with", Reverse: "starts with", Expression: "(column NOT LIKE ?)", Values: []string{"value%"}},
	Rule{Comparator: "ends with", Reverse: "does not end with", Expression: "(column LIKE ?)", Values: []string{"%value"}},
	Rule{Comparator: "does not end with", Reverse: "ends with", Expression: "(column NOT LIKE ?)", Values: []string{"%value"}},
)

// Text is a condition on a text column.
// The value is bound verbatim; LIKE wildcards in it are not escaped.
type Text struct {
	Base
}

// Type returns TypeText.
func (Text) Type() Type { return TypeText }

// Encode converts the condition to a Fragment.
func (c Text) Encode() Fragment {
	return textRules.Encode(c.Base, c.CondValue.(string))
}

// ParseText parses a text condition.
func ParseText(cfg TypeConfig, in Input) (Condition, error) {
	v := newValidation(TypeText)
	base := parseBase(v, cfg, textRules, in)

	if _, ok := ValidateText(in.Value); !ok {
		v.invalidValue(in.Column)
	}

	if err := v.err(); err != nil {
		return nil, err
	}
	return Text{Base: base}, nil
}
