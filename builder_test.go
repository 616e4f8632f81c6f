package condfilter

import (
	"errors"
	"reflect"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugr-lab/condfilter/condition"
)

// geometryType is a minimal geoarrow.wkb extension type for tests.
type geometryType struct {
	arrow.ExtensionBase
}

func newGeometryType() *geometryType {
	return &geometryType{ExtensionBase: arrow.ExtensionBase{Storage: arrow.BinaryTypes.Binary}}
}

func (g *geometryType) ArrayType() reflect.Type { return reflect.TypeOf((*array.Binary)(nil)) }
func (g *geometryType) ExtensionName() string   { return GeometryExtensionName }
func (g *geometryType) Serialize() string       { return "" }
func (g *geometryType) Deserialize(storage arrow.DataType, _ string) (arrow.ExtensionType, error) {
	return &geometryType{ExtensionBase: arrow.ExtensionBase{Storage: storage}}, nil
}
func (g *geometryType) ExtensionEquals(other arrow.ExtensionType) bool {
	return other.ExtensionName() == g.ExtensionName()
}

// TestConfigBuilderBasic tests basic config building functionality.
func TestConfigBuilderBasic(t *testing.T) {
	configs, err := NewConfigBuilder().
		Type(condition.TypeText).
		Keys("title", "comments").
		Type(condition.TypeNumber).
		Keys("price").
		Comparators("greater than", "less than or equal").
		Build()
	require.NoError(t, err)

	assert.Equal(t, condition.TypeConfigs{
		"text":   {Keys: []string{"title", "comments"}, Comparators: nil},
		"number": {Keys: []string{"price"}, Comparators: []string{"greater than", "less than or equal"}},
	}, configs)
}

// TestConfigBuilderResumesType tests that configuring a type twice merges keys.
func TestConfigBuilderResumesType(t *testing.T) {
	cb := NewConfigBuilder()
	cb.Type(condition.TypeText).Keys("title")
	cb.Type(condition.TypeText).Keys("comments")

	configs, err := cb.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "comments"}, configs["text"].Keys)
}

// TestConfigBuilderValidation tests Build error conditions.
func TestConfigBuilderValidation(t *testing.T) {
	tests := []struct {
		name  string
		build func() (condition.TypeConfigs, error)
	}{
		{
			name: "unsupported type",
			build: func() (condition.TypeConfigs, error) {
				return NewConfigBuilder().Type("bogus").Keys("a").Build()
			},
		},
		{
			name: "empty column",
			build: func() (condition.TypeConfigs, error) {
				return NewConfigBuilder().Type(condition.TypeText).Keys("").Build()
			},
		},
		{
			name: "duplicate column",
			build: func() (condition.TypeConfigs, error) {
				return NewConfigBuilder().Type(condition.TypeText).Keys("title", "title").Build()
			},
		},
		{
			name: "comparator of another type",
			build: func() (condition.TypeConfigs, error) {
				return NewConfigBuilder().Type(condition.TypeBoolean).Keys("done").Comparators("contains").Build()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configs, err := tt.build()
			assert.Nil(t, configs)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

// TestConfigBuilderBuildOnce tests that Build can only be called once.
func TestConfigBuilderBuildOnce(t *testing.T) {
	cb := NewConfigBuilder()
	cb.Type(condition.TypeText).Keys("title")

	_, err := cb.Build()
	require.NoError(t, err)

	_, err = cb.Build()
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

// TestConfigBuilderSchema tests deriving configs from an Arrow schema.
func TestConfigBuilderSchema(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "title", Type: arrow.BinaryTypes.String},
		{Name: "comments", Type: arrow.BinaryTypes.LargeString},
		{Name: "price", Type: arrow.PrimitiveTypes.Float64},
		{Name: "created_at", Type: arrow.FixedWidthTypes.Timestamp_us},
		{Name: "due", Type: arrow.FixedWidthTypes.Date32},
		{Name: "done", Type: arrow.FixedWidthTypes.Boolean},
		{Name: "geom", Type: newGeometryType()},
		{Name: "payload", Type: arrow.BinaryTypes.Binary},
		{Name: "tags", Type: arrow.ListOf(arrow.BinaryTypes.String)},
	}, nil)

	configs, err := NewConfigBuilder().
		Schema(schema).
		Type(condition.TypeText).
		Comparators("is", "contains").
		Build()
	require.NoError(t, err)

	assert.Equal(t, condition.TypeConfigs{
		"number":   {Keys: []string{"id", "price"}},
		"text":     {Keys: []string{"title", "comments"}, Comparators: []string{"is", "contains"}},
		"date":     {Keys: []string{"created_at", "due"}},
		"boolean":  {Keys: []string{"done"}},
		"geometry": {Keys: []string{"geom"}},
	}, configs)

	// The derived configs drive parsing directly.
	cond, err := Parse(configs, condition.Options{
		Type:  "number",
		Input: condition.Input{Column: "price", Comparator: "less than", Value: 9.99},
	})
	require.NoError(t, err)
	assert.Equal(t, "(price < ?)", Encode(cond).Expression)

	_, err = Parse(configs, condition.Options{
		Type:  "text",
		Input: condition.Input{Column: "payload", Comparator: "ends with", Value: "x"},
	})
	list, ok := condition.AsErrorList(err)
	require.True(t, ok)
	assert.Equal(t, condition.ErrorList{
		"Invalid text column 'payload'",
		"Invalid text comparator 'ends with'",
	}, list)
}

func TestTypeForArrow(t *testing.T) {
	tests := []struct {
		dt   arrow.DataType
		want condition.Type
		ok   bool
	}{
		{arrow.BinaryTypes.String, condition.TypeText, true},
		{arrow.BinaryTypes.StringView, condition.TypeText, true},
		{arrow.PrimitiveTypes.Int8, condition.TypeNumber, true},
		{arrow.PrimitiveTypes.Uint64, condition.TypeNumber, true},
		{arrow.PrimitiveTypes.Float32, condition.TypeNumber, true},
		{&arrow.Decimal128Type{Precision: 10, Scale: 2}, condition.TypeNumber, true},
		{arrow.FixedWidthTypes.Date64, condition.TypeDate, true},
		{arrow.FixedWidthTypes.Timestamp_s, condition.TypeDate, true},
		{arrow.FixedWidthTypes.Boolean, condition.TypeBoolean, true},
		{newGeometryType(), condition.TypeGeometry, true},
		{arrow.BinaryTypes.Binary, "", false},
		{arrow.FixedWidthTypes.Time32ms, "", false},
		{arrow.StructOf(arrow.Field{Name: "a", Type: arrow.PrimitiveTypes.Int32}), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.dt.String(), func(t *testing.T) {
			got, ok := TypeForArrow(tt.dt)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
