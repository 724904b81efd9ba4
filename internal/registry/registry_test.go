package registry

import (
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oldpence/tally/internal/money"
)

func compileString(t *testing.T, src, path string) cue.Value {
	t.Helper()
	v := cuecontext.New().CompileString(src)
	require.NoError(t, v.Err())
	return v.LookupPath(cue.ParsePath(path))
}

func TestCompileSystem(t *testing.T) {
	v := compileString(t, `
system: merk: {
	units: [
		{name: "merk", symbol: "m", prefix: true},
		{name: "shilling", symbol: "s", count: 13},
		{name: "penny", symbol: "d", count: 12},
	]
}`, "system.merk")

	sys, errs := CompileSystem(v)
	require.Empty(t, errs)

	assert.Equal(t, "merk", sys.Name)
	require.Len(t, sys.Units, 3)
	assert.True(t, sys.Units[0].Prefix)
	assert.Equal(t, int64(13), sys.Units[1].Count)

	// The compiled system works for ordinary arithmetic.
	a, err := money.Parse(sys, "m1 12s 11d")
	require.NoError(t, err)
	b, err := money.Parse(sys, "1d")
	require.NoError(t, err)
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "m2", sum.String())
}

func TestValidateSystem(t *testing.T) {
	valid := func() *money.System {
		return &money.System{
			Name: "test",
			Units: []money.Unit{
				{Name: "crown", Symbol: "c", Prefix: true},
				{Name: "groat", Symbol: "g", Count: 15},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*money.System)
		code   string
	}{
		{"missing system name", func(s *money.System) { s.Name = "" }, CodeMissingName},
		{"single unit", func(s *money.System) { s.Units = s.Units[:1] }, CodeTooFewUnits},
		{"count on largest unit", func(s *money.System) { s.Units[0].Count = 20 }, CodeBadCount},
		{"carry base below 2", func(s *money.System) { s.Units[1].Count = 1 }, CodeBadCount},
		{"missing unit name", func(s *money.System) { s.Units[1].Name = "" }, CodeMissingName},
		{"missing symbol", func(s *money.System) { s.Units[0].Symbol = "" }, CodeMissingSymbol},
		{"duplicate symbol", func(s *money.System) { s.Units[1].Symbol = "c" }, CodeDuplicateSymbol},
		{"duplicate name", func(s *money.System) { s.Units[1].Name = "crown" }, CodeDuplicateName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := valid()
			tt.mutate(sys)

			errs := ValidateSystem(sys)
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.code, errs[0].Code)
		})
	}

	assert.Empty(t, ValidateSystem(valid()))
}

func TestRegistryBuiltin(t *testing.T) {
	r := New()

	sys, err := r.Get("sterling")
	require.NoError(t, err)
	assert.Equal(t, money.Sterling(), sys)
}

func TestRegistryUnknownSystem(t *testing.T) {
	r := New()

	_, err := r.Get("wuffles")
	require.Error(t, err)
	assert.True(t, IsUnknownSystem(err))
}

func TestRegistryRejectsDuplicate(t *testing.T) {
	r := New()

	err := r.Register(&money.System{
		Name: "sterling",
		Units: []money.Unit{
			{Name: "pound", Symbol: "£", Prefix: true},
			{Name: "penny", Symbol: "d", Count: 240},
		},
	})
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeDuplicate, le.Code)
}

func TestLoadDir(t *testing.T) {
	r := New()

	added, err := r.LoadDir("testdata/systems")
	require.NoError(t, err)
	assert.Equal(t, []string{"farthingland", "scots"}, added)

	sys, err := r.Get("farthingland")
	require.NoError(t, err)

	a, err := money.Parse(sys, "3f")
	require.NoError(t, err)
	b, err := money.Parse(sys, "2f")
	require.NoError(t, err)
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "1d 1f", sum.String())
}

func TestLoadDirInvalidSystem(t *testing.T) {
	r := New()

	_, err := r.LoadDir("testdata/invalid")
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeInvalidSystem, le.Code)
}

func TestLoadDirMissing(t *testing.T) {
	r := New()

	_, err := r.LoadDir("testdata/no-such-dir")
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeNotFound, le.Code)
}
