package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFragmentEqual(t *testing.T) {
	a := Fragment{Expression: "(title = ?)", Values: []string{"Milk"}}

	assert.True(t, a.Equal(Fragment{Expression: "(title = ?)", Values: []string{"Milk"}}))
	assert.False(t, a.Equal(Fragment{Expression: "(title != ?)", Values: []string{"Milk"}}))
	assert.False(t, a.Equal(Fragment{Expression: "(title = ?)", Values: []string{"Eggs"}}))
	assert.False(t, a.Equal(Fragment{Expression: "(title = ?)"}))

	ordered := Fragment{Expression: "(a = ? OR a = ?)", Values: []string{"x", "y"}}
	assert.False(t, ordered.Equal(Fragment{Expression: "(a = ? OR a = ?)", Values: []string{"y", "x"}}))
}

func TestFragmentArgs(t *testing.T) {
	f := Fragment{Expression: "(a = ? OR a = ?)", Values: []string{"x", "y"}}
	assert.Equal(t, []any{"x", "y"}, f.Args())
	assert.Empty(t, Fragment{}.Args())
}

func TestFragmentString(t *testing.T) {
	f := Fragment{Expression: "(title LIKE ?)", Values: []string{"%Milk%"}}
	assert.Equal(t, "(title LIKE ?) [%Milk%]", f.String())
}
