package condition

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeInvalidEnumValue(t *testing.T) {
	assert.Equal(t, "Invalid text column 'unknown_col'",
		DescribeInvalidEnumValue("unknown_col", "column", TypeText))
	assert.Equal(t, "Invalid number comparator 'roughly'",
		DescribeInvalidEnumValue("roughly", "comparator", TypeNumber))
	assert.Equal(t, "Invalid date column '<nil>'",
		DescribeInvalidEnumValue(nil, "column", TypeDate))
}

func TestDescribeInvalidValueTypeTextColumn(t *testing.T) {
	assert.Equal(t, "Invalid text value for title", DescribeInvalidValueType("title", TypeText))
	assert.Equal(t, "Invalid boolean value for ", DescribeInvalidValueType("", TypeBoolean))
}

func TestDescribeInvalidValueTypeTruncation(t *testing.T) {
	tests := []struct {
		name   string
		column any
		want   string
	}{
		{
			name:   "short representation",
			column: 42,
			want:   `Invalid text value for "42"`,
		},
		{
			name:   "nil",
			column: nil,
			want:   `Invalid text value for "<nil>"`,
		},
		{
			name:   "15 characters kept",
			column: int64(123456789012345),
			want:   `Invalid text value for "123456789012345"`,
		},
		{
			name:   "16 characters truncated",
			column: int64(1234567890123456),
			want:   `Invalid text value for "1234567890123...456"`,
		},
		{
			name:   "15 character slice kept",
			column: []int{1, 2, 34},
			want:   `Invalid text value for "[]int{1, 2, 34}"`,
		},
		{
			name:   "16 character slice split 13 + 3",
			column: []int{1, 2, 345},
			want:   `Invalid text value for "[]int{1, 2, 3...45}"`,
		},
		{
			name:   "long map",
			column: map[string]int{"title": 1},
			want:   `Invalid text value for "map[string]in...:1}"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeInvalidValueType(tt.column, TypeText))
		})
	}
}

func TestQuoteReprCountsRunes(t *testing.T) {
	repr := strings.Repeat("ä", 16)
	want := `"` + strings.Repeat("ä", 13) + "..." + strings.Repeat("ä", 3) + `"`
	assert.Equal(t, want, quoteRepr(repr))

	repr = strings.Repeat("ä", 15)
	assert.Equal(t, `"`+repr+`"`, quoteRepr(repr))
}

func TestErrorList(t *testing.T) {
	list := ErrorList{"Invalid text column 'x'", "Invalid text value for x"}
	assert.Equal(t, "Invalid text column 'x'; Invalid text value for x", list.Error())

	var err error = list
	got, ok := AsErrorList(fmt.Errorf("parse: %w", err))
	require.True(t, ok)
	assert.Equal(t, list, got)

	_, ok = AsErrorList(errors.New("other"))
	assert.False(t, ok)
}

func TestValidationAccumulates(t *testing.T) {
	v := newValidation(TypeText)
	assert.NoError(t, v.err())

	v.invalidEnum("unknown_col", "column")
	v.invalidValue("unknown_col")

	err := v.err()
	require.Error(t, err)
	list, ok := AsErrorList(err)
	require.True(t, ok)
	assert.Equal(t, ErrorList{
		"Invalid text column 'unknown_col'",
		"Invalid text value for unknown_col",
	}, list)
}
