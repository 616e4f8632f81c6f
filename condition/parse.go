package condition

import "slices"

// ParseFunc parses the untyped input of one condition type against that
// type's configuration. On failure the error is an ErrorList.
type ParseFunc func(cfg TypeConfig, in Input) (Condition, error)

// parseBase validates the fields shared by every variant: the column against
// cfg.Keys and the comparator against the type's rules and cfg.Comparators.
// Failures are recorded on v; the returned Base is only meaningful when v
// holds no errors.
func parseBase(v *validation, cfg TypeConfig, rules *RuleSet, in Input) Base {
	column, ok := ValidateIn(in.Column, cfg.Keys)
	if !ok {
		v.invalidEnum(in.Column, "column")
	}

	comparator, ok := validateComparator(in.Comparator, rules, cfg.Comparators)
	if !ok {
		v.invalidEnum(in.Comparator, "comparator")
	}

	return Base{
		CondColumn:     column,
		CondComparator: comparator,
		CondValue:      in.Value,
		CondInverse:    in.Inverse,
	}
}

func validateComparator(value any, rules *RuleSet, allowed []string) (string, bool) {
	c, ok := value.(string)
	if !ok || !rules.Supports(c) {
		return "", false
	}
	if len(allowed) > 0 && !slices.Contains(allowed, c) {
		return "", false
	}
	return c, true
}
