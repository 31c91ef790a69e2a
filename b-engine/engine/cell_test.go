package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellCodecRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"blank", "__"},
		{"warp goal no fence", "W_"},
		{"goal color2 symbol1 no fence", "6_"}, // hex 6 = symbol 1 * 4 + color 2
		{"bumper yellow slant false", "y_"},
		{"bumper blue slant true", "U_"},
		{"fence mask", "_3"},
		{"bumper with all fences", "Gf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCellFromString(tc.text[0], tc.text[1])
			require.Equal(t, tc.text, c.String())
		})
	}
}

func TestCellExtractGoalZeroDigit(t *testing.T) {
	c := NewCellFromString('0', ' ')
	require.True(t, c.HasGoal())
	assert.Equal(t, Yellow, c.Goal.Color)
	assert.Equal(t, Star, c.Goal.Symbol)
}

func TestCellExtractGoalBlankIsNotZero(t *testing.T) {
	c := NewCellFromString(' ', ' ')
	assert.False(t, c.HasGoal())
	assert.False(t, c.HasBumper())
}

func TestCellBumperCaseSelectsSlant(t *testing.T) {
	lower := NewCellFromString('r', ' ')
	upper := NewCellFromString('R', ' ')
	require.True(t, lower.HasBumper())
	require.True(t, upper.HasBumper())
	assert.False(t, lower.Bumper.Slant)
	assert.True(t, upper.Bumper.Slant)
	assert.Equal(t, Red, lower.Bumper.Color)
	assert.Equal(t, Red, upper.Bumper.Color)
}

func TestCellBlueBumperLetterIsU(t *testing.T) {
	c := NewCellFromString('u', ' ')
	require.True(t, c.HasBumper())
	assert.Equal(t, Blue, c.Bumper.Color)
}

func TestCellFenceMask(t *testing.T) {
	c := NewCellFromString(' ', 'a') // 0xa = 1010: Up and Down set
	assert.True(t, c.Fence(Up))
	assert.False(t, c.Fence(Left))
	assert.True(t, c.Fence(Down))
	assert.False(t, c.Fence(Right))
}

func TestCellGoalEquals(t *testing.T) {
	c := NewCellFromString('W', ' ')
	assert.True(t, c.GoalEquals(Goal{Symbol: Warp}))
	assert.False(t, c.GoalEquals(Goal{Symbol: Star, Color: Yellow}))
}
