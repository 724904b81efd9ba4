package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemsListBuiltin(t *testing.T) {
	out, _, err := execute(t, "systems", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "sterling")
	assert.Contains(t, out, "pound = 20 shilling = 12 penny")
}

func TestSystemsListWithExtras(t *testing.T) {
	out, _, err := execute(t, "--systems", "testdata/systems", "systems", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "scots")
	assert.Contains(t, out, "farthingland")
	assert.Contains(t, out, "12 penny = 4 farthing")
}

func TestSystemsValidateOK(t *testing.T) {
	out, _, err := execute(t, "systems", "validate", "testdata/systems")
	require.NoError(t, err)
	assert.Contains(t, out, "2 system(s) valid")
	assert.Contains(t, out, "farthingland, scots")
}

func TestSystemsValidateFailures(t *testing.T) {
	out, _, err := execute(t, "systems", "validate", "testdata/invalid")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "validation error(s)")
	assert.Contains(t, out, "V002")
}

func TestSystemsValidateJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "systems", "validate", "testdata/invalid")
	require.Error(t, err)

	resp := decodeResponse(t, out)
	require.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, data["valid"])
	errs, ok := data["errors"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, errs)
}

func TestSystemsValidateMissingDir(t *testing.T) {
	_, _, err := execute(t, "systems", "validate", "testdata/no-such-dir")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
