package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oldpence/tally/internal/money"
)

func TestValueSealed(t *testing.T) {
	// Verify all types implement Value (compile-time check via assignment)
	var _ Value = Int(42)
	var _ Value = Bool(true)
	var _ Value = Text("guinea")
	var _ Value = NewMoney(money.Zero(money.Sterling()))
}

func TestKindHierarchy(t *testing.T) {
	assert.True(t, IntKind.IsA(Number))
	assert.True(t, IntKind.IsA(Any))
	assert.True(t, MoneyKind.IsA(Number))
	assert.True(t, BoolKind.IsA(Any))
	assert.False(t, BoolKind.IsA(Number))
	assert.False(t, Number.IsA(IntKind))
}

func TestKindAbstractness(t *testing.T) {
	for _, k := range Kinds() {
		switch k {
		case Any, Number:
			assert.True(t, k.Abstract(), "%s should be abstract", k)
		default:
			assert.False(t, k.Abstract(), "%s should be concrete", k)
		}
	}
}

func TestKindDistance(t *testing.T) {
	d, ok := IntKind.DistanceTo(IntKind)
	require.True(t, ok)
	assert.Equal(t, 0, d)

	d, ok = IntKind.DistanceTo(Number)
	require.True(t, ok)
	assert.Equal(t, 1, d)

	d, ok = IntKind.DistanceTo(Any)
	require.True(t, ok)
	assert.Equal(t, 2, d)

	_, ok = IntKind.DistanceTo(BoolKind)
	assert.False(t, ok)
}

func TestValueKinds(t *testing.T) {
	assert.Equal(t, IntKind, Int(1).Kind())
	assert.Equal(t, BoolKind, Bool(false).Kind())
	assert.Equal(t, TextKind, Text("").Kind())
	assert.Equal(t, MoneyKind, NewMoney(money.Zero(money.Sterling())).Kind())
}

func TestAssertions(t *testing.T) {
	a := money.MustNew(money.Sterling(), 1, 4, 6)

	n, err := AsInt(Int(7))
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	got, err := AsMoney(NewMoney(a))
	require.NoError(t, err)
	assert.True(t, a.Equal(got))
}

func TestAssertionMismatch(t *testing.T) {
	_, err := AsInt(NewMoney(money.Zero(money.Sterling())))
	require.Error(t, err)
	assert.True(t, IsKindMismatch(err))
	assert.Equal(t, "KIND_MISMATCH: value is Money, not Int", err.Error())
}

func TestString(t *testing.T) {
	a := money.MustNew(money.Sterling(), 0, 2, 6)

	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "2s 6d", NewMoney(a).String())
}

func TestJSON(t *testing.T) {
	a := money.MustNew(money.Sterling(), 1, 4, 6)

	doc, ok := JSON(NewMoney(a)).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Money", doc["kind"])
	assert.Equal(t, "£1 4s 6d", doc["value"])
	assert.Equal(t, "sterling", doc["system"])
	assert.Equal(t, int64(294), doc["minor"])
}
