package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oldpence/tally/internal/dispatch"
	"github.com/oldpence/tally/internal/money"
	"github.com/oldpence/tally/internal/value"
)

func evalSterling(t *testing.T, src string) (value.Value, error) {
	t.Helper()
	return EvalString(money.Sterling(), dispatch.Default(), src)
}

func TestEvalExpressions(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"£1 4s 6d + 19s 6d", "£2 4s"},
		{"£1 4s 6d + 2 * 10s", "£2 4s 6d"},
		{"(£1 + 2s 6d) * 4", "£4 10s"},
		{"£1 / 7", "2s 10d"},
		{"£10 / 2s 6d", "80"},
		{"25s 14d", "£1 6s 2d"},
		{"-3 + 10", "7"},
		{"2 * 3 + 4", "10"},
		{"2s + 6d == 2s 6d", "true"},
		{"19s 11d < £1", "true"},
		{"£1 != 240", "true"},
		{"20s == £1", "true"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := evalSterling(t, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestEvalUnderflowSurfaces(t *testing.T) {
	_, err := evalSterling(t, "2s 6d - 3s")
	require.Error(t, err)
	assert.True(t, money.IsUnderflow(err))
}

func TestEvalNoMethodSurfaces(t *testing.T) {
	_, err := evalSterling(t, "(1 < 2) + £1")
	require.Error(t, err)
	assert.True(t, dispatch.IsNoMethod(err))
}

func TestEvalNegatedMoneyIsKindMismatch(t *testing.T) {
	_, err := evalSterling(t, "-(2s)")
	require.Error(t, err)
	assert.True(t, value.IsKindMismatch(err))
}

func TestEvalNegativeScaleRejected(t *testing.T) {
	_, err := evalSterling(t, "-2 * 10s")
	require.Error(t, err)
	assert.Equal(t, money.ErrCodeNegativeScalar, money.CodeOf(err))
}

func TestEvalCustomSystem(t *testing.T) {
	groat := &money.System{
		Name: "groatland",
		Units: []money.Unit{
			{Name: "crown", Symbol: "c", Prefix: true, Count: 0},
			{Name: "groat", Symbol: "g", Count: 15},
		},
	}

	got, err := EvalString(groat, dispatch.Default(), "c1 + 20g")
	require.NoError(t, err)
	assert.Equal(t, "c2 5g", got.String())
}
