package condfilter

import (
	"fmt"
	"slices"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/hugr-lab/condfilter/condition"
)

// ConfigBuilder builds per-type condition configs using fluent API.
// Not thread-safe - use only during initialization.
type ConfigBuilder struct {
	types []*typeBuilder
	built bool
}

// NewConfigBuilder creates a new fluent config builder.
// Returns builder in "empty" state (no types).
//
// Example:
//
//	configs, err := condfilter.NewConfigBuilder().
//	    Type(condition.TypeText).
//	        Keys("title", "comments").
//	    Type(condition.TypeNumber).
//	        Keys("price").
//	        Comparators("greater than", "less than or equal").
//	    Build()
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		types: make([]*typeBuilder, 0),
		built: false,
	}
}

// Type starts or resumes configuring a condition type.
// Returns TypeBuilder for adding columns and comparators.
func (cb *ConfigBuilder) Type(t condition.Type) *TypeBuilder {
	return &TypeBuilder{builder: cb.typeBuilder(t)}
}

func (cb *ConfigBuilder) typeBuilder(t condition.Type) *typeBuilder {
	for _, tb := range cb.types {
		if tb.name == t {
			return tb
		}
	}
	tb := &typeBuilder{
		name:          t,
		keys:          make([]string, 0),
		configBuilder: cb,
	}
	cb.types = append(cb.types, tb)
	return tb
}

// Schema adds every column of an Arrow schema to the type its data type maps
// to (see TypeForArrow). Columns of unmapped data types are skipped.
// Returns self for method chaining.
//
// Example:
//
//	schema := arrow.NewSchema([]arrow.Field{
//	    {Name: "title", Type: arrow.BinaryTypes.String},
//	    {Name: "price", Type: arrow.PrimitiveTypes.Float64},
//	}, nil)
//	configs, err := condfilter.NewConfigBuilder().Schema(schema).Build()
func (cb *ConfigBuilder) Schema(schema *arrow.Schema) *ConfigBuilder {
	for _, f := range schema.Fields() {
		t, ok := TypeForArrow(f.Type)
		if !ok {
			continue
		}
		tb := cb.typeBuilder(t)
		tb.keys = append(tb.keys, f.Name)
	}
	return cb
}

// Build finalizes the configs.
// Can only be called once. Further modifications return error.
// Returns error wrapping ErrInvalidConfig if a type is unsupported, a column
// is empty or repeated within a type, or a comparator is not supported by its type.
func (cb *ConfigBuilder) Build() (condition.TypeConfigs, error) {
	if cb.built {
		return nil, fmt.Errorf("%w: configs already built", ErrInvalidConfig)
	}

	configs := make(condition.TypeConfigs, len(cb.types))
	for _, tb := range cb.types {
		supported, ok := Comparators(string(tb.name))
		if !ok {
			return nil, fmt.Errorf("%w: unsupported condition type %q", ErrInvalidConfig, tb.name)
		}

		seenKeys := make(map[string]bool)
		for _, k := range tb.keys {
			if k == "" {
				return nil, fmt.Errorf("%w: empty column name in type %s", ErrInvalidConfig, tb.name)
			}
			if seenKeys[k] {
				return nil, fmt.Errorf("%w: duplicate column %s in type %s", ErrInvalidConfig, k, tb.name)
			}
			seenKeys[k] = true
		}

		for _, c := range tb.comparators {
			if !slices.Contains(supported, c) {
				return nil, fmt.Errorf("%w: comparator %q is not supported by type %s", ErrInvalidConfig, c, tb.name)
			}
		}

		configs[string(tb.name)] = condition.TypeConfig{
			Keys:        slices.Clone(tb.keys),
			Comparators: slices.Clone(tb.comparators),
		}
	}

	cb.built = true

	return configs, nil
}

// TypeBuilder configures one condition type within a ConfigBuilder.
// Not thread-safe - use only during initialization.
type TypeBuilder struct {
	builder *typeBuilder
}

// typeBuilder is the internal type builder implementation.
type typeBuilder struct {
	name          condition.Type
	keys          []string
	comparators   []string
	configBuilder *ConfigBuilder
}

// Keys adds allowed columns to this type.
// Returns self for method chaining.
func (tb *TypeBuilder) Keys(columns ...string) *TypeBuilder {
	tb.builder.keys = append(tb.builder.keys, columns...)
	return tb
}

// Comparators narrows the comparators allowed for this type.
// Returns self for method chaining.
func (tb *TypeBuilder) Comparators(comparators ...string) *TypeBuilder {
	tb.builder.comparators = append(tb.builder.comparators, comparators...)
	return tb
}

// Type starts configuring another type.
// Convenience method for chaining: typeBuilder.Type("number").
func (tb *TypeBuilder) Type(t condition.Type) *TypeBuilder {
	return tb.builder.configBuilder.Type(t)
}

// Schema adds the columns of an Arrow schema.
// Same as calling configBuilder.Schema(schema).
func (tb *TypeBuilder) Schema(schema *arrow.Schema) *ConfigBuilder {
	return tb.builder.configBuilder.Schema(schema)
}

// Build finalizes the configs.
// Same as calling configBuilder.Build().
func (tb *TypeBuilder) Build() (condition.TypeConfigs, error) {
	return tb.builder.configBuilder.Build()
}
