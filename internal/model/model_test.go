package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCourse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Course
		wantErr  bool
	}{
		{name: "Canonical starter", input: "Starter", expected: Starter},
		{name: "Lower case main", input: "main", expected: Main},
		{name: "Upper case with spaces", input: "  DESSERT ", expected: Dessert},
		{name: "Unknown course", input: "Snack", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCourse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
			assert.True(t, c.Valid())
		})
	}
}

func TestCourse_Valid(t *testing.T) {
	assert.False(t, Course("Snack").Valid())
	assert.False(t, Course("starter").Valid())
	assert.Equal(t, []Course{Starter, Main, Dessert}, Courses())
}

func TestParseSelector(t *testing.T) {
	sel, err := ParseSelector("all")
	require.NoError(t, err)
	assert.True(t, sel.IsAll())
	_, ok := sel.Course()
	assert.False(t, ok)

	sel, err = ParseSelector("main")
	require.NoError(t, err)
	c, ok := sel.Course()
	assert.True(t, ok)
	assert.Equal(t, Main, c)

	_, err = ParseSelector("brunch")
	assert.Error(t, err)

	assert.Equal(t, []Selector{All, "Starter", "Main", "Dessert"}, Selectors())
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("Christoffel")
	require.NoError(t, err)
	assert.Equal(t, RoleChef, r)
	assert.True(t, r.CanEdit())
	assert.Equal(t, "Christoffel (Chef)", r.Label())

	r, err = ParseRole("user")
	require.NoError(t, err)
	assert.False(t, r.CanEdit())
	assert.Equal(t, "User", r.Label())

	_, err = ParseRole("admin")
	assert.Error(t, err)
}
