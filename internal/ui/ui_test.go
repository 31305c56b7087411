package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "Whole number", value: 45, expected: "R 45.00"},
		{name: "Repeating decimal", value: 220.0 / 3.0, expected: "R 73.33"},
		{name: "Rounds half up", value: 10.005, expected: "R 10.01"},
		{name: "Zero", value: 0, expected: "R 0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Price(tt.value))
		})
	}
}

func TestSetCurrency(t *testing.T) {
	t.Cleanup(func() { SetCurrency("R") })

	SetCurrency("  ")
	assert.Equal(t, "R 1.00", Price(1))

	SetCurrency("$")
	assert.Equal(t, "$ 1.50", Price(1.5))
	assert.Equal(t, "1.50", Amount(1.5))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "Crème b...", Truncate("Crème brûlée deluxe", 10))
	assert.Equal(t, "abc", Truncate("abcdef", 3), "too short for an ellipsis")
	assert.Equal(t, "é", Truncate("éclair", 1))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "ab", Truncate("ab", 2))
}

func TestShareBar(t *testing.T) {
	SetTheme("classic")
	assert.Equal(t, "█████░░░░░  50%", ShareBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ShareBar(0, 0, 3), "width is clamped and total guarded")
}

func TestPanel(t *testing.T) {
	SetColorForcing(false, true)
	t.Cleanup(func() { SetColorForcing(false, false) })
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	var buf bytes.Buffer
	Panel(&buf, []string{"ab", "abcd"})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"+------+",
		"| ab   |",
		"| abcd |",
		"+------+",
	}, lines)
}

func TestOKFail(t *testing.T) {
	SetColorForcing(false, true)
	t.Cleanup(func() { SetColorForcing(false, false) })

	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "nope")
	Warn(&buf, "careful")
	assert.Equal(t, "✔ added\n✖ nope\n! careful\n", buf.String())
}
