package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "tally.db")
}

func TestLedgerAddAndBalance(t *testing.T) {
	db := tempDB(t)

	out, _, err := execute(t, "--db", db, "ledger", "add", "--desc", "wages", "£2 10s")
	require.NoError(t, err)
	assert.Equal(t, "recorded credit of £2 10s\n", out)

	out, _, err = execute(t, "--db", db, "ledger", "add", "--debit", "--desc", "rent", "£1 2s 6d")
	require.NoError(t, err)
	assert.Equal(t, "recorded debit of £1 2s 6d\n", out)

	out, _, err = execute(t, "--db", db, "ledger", "balance")
	require.NoError(t, err)
	assert.Equal(t, "£1 7s 6d\n", out)
}

func TestLedgerOverdraftRejected(t *testing.T) {
	db := tempDB(t)

	_, _, err := execute(t, "--db", db, "ledger", "add", "--desc", "float", "10s")
	require.NoError(t, err)

	out, _, err := execute(t, "--db", db, "ledger", "add", "--debit", "--desc", "splurge", "11s")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [INSUFFICIENT_BALANCE]")
}

func TestLedgerList(t *testing.T) {
	db := tempDB(t)

	for _, desc := range []string{"first", "second", "third"} {
		_, _, err := execute(t, "--db", db, "ledger", "add", "--desc", desc, "1s")
		require.NoError(t, err)
	}

	out, _, err := execute(t, "--db", db, "ledger", "list", "--limit", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "third")
	assert.Contains(t, lines[1], "second")
	assert.Contains(t, lines[0], "credit")
	assert.Contains(t, lines[0], "1s")
}

func TestLedgerListEmpty(t *testing.T) {
	out, _, err := execute(t, "--db", tempDB(t), "ledger", "list")
	require.NoError(t, err)
	assert.Equal(t, "no entries\n", out)
}

func TestLedgerJSONEntry(t *testing.T) {
	db := tempDB(t)

	out, _, err := execute(t, "--db", db, "--format", "json", "ledger", "add", "--desc", "wages", "£1")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	require.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "credit", data["direction"])
	assert.Equal(t, "wages", data["description"])
	assert.Equal(t, float64(240), data["minor"])
	assert.Equal(t, "sterling", data["system"])
	assert.NotEmpty(t, data["id"])
}
