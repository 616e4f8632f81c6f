package condition

// Variant describes one condition type: its name, parse function and
// encoder rules.
type Variant struct {
	Type  Type
	Parse ParseFunc
	Rules *RuleSet
}

var variants = []Variant{
	{Type: TypeText, Parse: ParseText, Rules: textRules},
	{Type: TypeNumber, Parse: ParseNumber, Rules: numberRules},
	{Type: TypeDate, Parse: ParseDate, Rules: dateRules},
	{Type: TypeBoolean, Parse: ParseBoolean, Rules: booleanRules},
	{Type: TypeGeometry, Parse: ParseGeometry, Rules: geometryRules},
}

// Variants returns every supported condition type.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}
