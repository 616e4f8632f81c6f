package condition

// Type identifies a condition variant by its declared type name.
// Names are matched exactly and case-sensitively.
type Type string

const (
	TypeText     Type = "text"
	TypeNumber   Type = "number"
	TypeDate     Type = "date"
	TypeBoolean  Type = "boolean"
	TypeGeometry Type = "geometry"
)

// Condition is the interface implemented by all condition variants.
// A Condition is only ever produced by a successful parse and is immutable.
// Use type switches to access variant-specific data.
type Condition interface {
	// Type returns the variant's declared type name.
	Type() Type

	// Column returns the validated column name.
	Column() string

	// Comparator returns the validated comparator (e.g. "is", "greater than").
	Comparator() string

	// Value returns the value exactly as it was supplied to parse.
	Value() any

	// Inverse reports whether the logical negation of the comparator applies.
	Inverse() bool

	// Encode converts the condition to a Fragment.
	// Never fails for a condition produced by parse.
	Encode() Fragment

	// conditionMarker is a marker method to prevent external implementation.
	conditionMarker()
}

// Base contains the fields common to all condition variants.
type Base struct {
	CondColumn     string `json:"column"`
	CondComparator string `json:"comparator"`
	CondValue      any    `json:"value"`
	CondInverse    bool   `json:"inverse"`
}

// Column returns the column name.
func (b Base) Column() string { return b.CondColumn }

// Comparator returns the comparator.
func (b Base) Comparator() string { return b.CondComparator }

// Value returns the raw value.
func (b Base) Value() any { return b.CondValue }

// Inverse returns the inversion flag.
func (b Base) Inverse() bool { return b.CondInverse }

func (Base) conditionMarker() {}

// Input is the untyped options record handed to a variant's parse function.
// It is Options with the dispatch key stripped.
//
// Column and Comparator are untyped because the record comes from untrusted
// input; validation reports non-text values instead of rejecting them early.
type Input struct {
	Column     any  `json:"column" msgpack:"column" mapstructure:"column" yaml:"column"`
	Comparator any  `json:"comparator" msgpack:"comparator" mapstructure:"comparator" yaml:"comparator"`
	Value      any  `json:"value" msgpack:"value" mapstructure:"value" yaml:"value"`
	Inverse    bool `json:"inverse" msgpack:"inverse" mapstructure:"inverse" yaml:"inverse"`
}

// Options is the generic input to parsing: the declared type plus the
// condition fields. It is consumed once and not retained.
type Options struct {
	Type  string `json:"type" msgpack:"type" mapstructure:"type" yaml:"type"`
	Input `msgpack:",inline" mapstructure:",squash" yaml:",inline"`
}

// TypeConfig holds the constraints for one condition type.
type TypeConfig struct {
	// Keys lists the columns a condition of this type may reference.
	// A condition can never be valid against an empty Keys.
	Keys []string `json:"keys" msgpack:"keys" mapstructure:"keys" yaml:"keys"`

	// Comparators optionally narrows the comparators the type supports.
	// Empty means every comparator the type has an encoder rule for.
	Comparators []string `json:"comparators,omitempty" msgpack:"comparators,omitempty" mapstructure:"comparators" yaml:"comparators,omitempty"`
}

// TypeConfigs maps type names to their configuration.
// A type without an entry is parsed against the zero TypeConfig.
type TypeConfigs map[string]TypeConfig
