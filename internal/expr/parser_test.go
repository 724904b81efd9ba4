package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oldpence/tally/internal/dispatch"
	"github.com/oldpence/tally/internal/money"
)

func TestParseIntLiteral(t *testing.T) {
	n, err := Parse(money.Sterling(), "42")
	require.NoError(t, err)
	assert.Equal(t, IntLit{ColPos: 1, Value: 42}, n)
}

func TestParseMoneyLiteralMergesParts(t *testing.T) {
	n, err := Parse(money.Sterling(), "£1 4s 6d")
	require.NoError(t, err)

	lit, ok := n.(MoneyLit)
	require.True(t, ok)
	assert.Equal(t, int64(294), lit.Amount.Minor())
}

func TestParsePrecedence(t *testing.T) {
	// 1 + 2 * 3 parses as 1 + (2 * 3)
	n, err := Parse(money.Sterling(), "1 + 2 * 3")
	require.NoError(t, err)

	add, ok := n.(Binary)
	require.True(t, ok)
	assert.Equal(t, dispatch.OpAdd, add.Op)
	assert.Equal(t, IntLit{ColPos: 1, Value: 1}, add.Left)

	mul, ok := add.Right.(Binary)
	require.True(t, ok)
	assert.Equal(t, dispatch.OpMul, mul.Op)
}

func TestParseComparisonBindsLoosest(t *testing.T) {
	n, err := Parse(money.Sterling(), "2s + 6d == 2s 6d")
	require.NoError(t, err)

	eq, ok := n.(Binary)
	require.True(t, ok)
	assert.Equal(t, dispatch.OpEq, eq.Op)

	add, ok := eq.Left.(Binary)
	require.True(t, ok)
	assert.Equal(t, dispatch.OpAdd, add.Op)
	_, ok = eq.Right.(MoneyLit)
	assert.True(t, ok)
}

func TestParseParens(t *testing.T) {
	n, err := Parse(money.Sterling(), "(1 + 2) * 3")
	require.NoError(t, err)

	mul, ok := n.(Binary)
	require.True(t, ok)
	assert.Equal(t, dispatch.OpMul, mul.Op)

	add, ok := mul.Left.(Binary)
	require.True(t, ok)
	assert.Equal(t, dispatch.OpAdd, add.Op)
}

func TestParseUnaryMinus(t *testing.T) {
	n, err := Parse(money.Sterling(), "-3 + 10")
	require.NoError(t, err)

	add, ok := n.(Binary)
	require.True(t, ok)
	_, ok = add.Left.(Neg)
	assert.True(t, ok)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		col  int
	}{
		{"empty", "", 1},
		{"dangling operator", "1 +", 4},
		{"unclosed paren", "(1 + 2", 7},
		{"unexpected close", "1 )", 3},
		{"bare symbol", "£ + 1", 1},
		{"lone equals", "1 = 2", 3},
		{"adjacent literals", "1 2", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(money.Sterling(), tt.in)
			require.Error(t, err)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.col, pe.Col, "error: %v", err)
		})
	}
}

func TestParseBadMoneyLiteral(t *testing.T) {
	// Duplicate units cannot form one literal.
	_, err := Parse(money.Sterling(), "4s 5s")
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Message, "invalid money literal")
}
