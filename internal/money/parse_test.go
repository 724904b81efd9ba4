package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullNotation(t *testing.T) {
	a, err := Parse(Sterling(), "£1 4s 6d")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4, 6}, a.Split())
}

func TestParsePartialNotation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"£2", "£2"},
		{"12s 6d", "12s 6d"},
		{"8d", "8d"},
		{"£1 6d", "£1 6d"},
		{"  19s   11d ", "19s 11d"},
	}
	for _, tt := range tests {
		a, err := Parse(Sterling(), tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, a.String(), "input %q", tt.in)
	}
}

func TestParseNormalizesOverflowingFields(t *testing.T) {
	a, err := Parse(Sterling(), "25s 14d")
	require.NoError(t, err)
	assert.Equal(t, "£1 6s 2d", a.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"untagged number", "12"},
		{"unknown symbol", "3f"},
		{"out of order", "6d 4s"},
		{"duplicate unit", "4s 5s"},
		{"negative count", "£1 -4s"},
		{"symbol without count", "£ 4s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(Sterling(), tt.in)
			require.Error(t, err)
			assert.True(t, IsParse(err), "got %v", err)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	amounts := []Amount{
		Zero(Sterling()),
		MustNew(Sterling(), 0, 0, 1),
		MustNew(Sterling(), 0, 19, 11),
		MustNew(Sterling(), 7, 13, 4),
		MustNew(Sterling(), 100, 0, 0),
	}
	for _, a := range amounts {
		back, err := Parse(Sterling(), a.String())
		require.NoError(t, err, "rendered %q", a.String())
		assert.True(t, a.Equal(back), "rendered %q", a.String())
	}
}
