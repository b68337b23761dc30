package remove

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/budget-csv/internal/ledger"
	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCommand_Metadata(t *testing.T) {
	assert.Equal(t, "delete", Cmd.Use)
	assert.Contains(t, Cmd.Aliases, "remove")
	assert.Contains(t, Cmd.Short, "Delete all entries")
	assert.NotNil(t, Cmd.Run)

	flag := Cmd.Flags().Lookup("date")
	require.NotNil(t, flag)
	assert.Equal(t, "d", flag.Shorthand)
}

func TestRunDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance_data.csv")
	store := ledger.NewStore(path)
	require.NoError(t, store.Initialize())
	for _, d := range []string{"01-01-2025", "06-01-2025", "01-01-2025"} {
		require.NoError(t, store.Append(models.NewRecord(models.MustParseDate(d), decimal.NewFromInt(5), models.CategoryExpense, "")))
	}
	var out bytes.Buffer

	deleted, err := runDelete(store, "01-01-2025", &out, logging.NewMockLogger())
	require.NoError(t, err)
	assert.True(t, deleted)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "date,amount,category,description\n06-01-2025,5,Expense,\n", string(content))

	deleted, err = runDelete(store, "01-01-2025", &out, logging.NewMockLogger())
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Contains(t, out.String(), "No entries for 01-01-2025 to delete.")
}

func TestRunDelete_InvalidDate(t *testing.T) {
	for _, input := range []string{"", "2025-01-01", "32-01-2025"} {
		_, err := runDelete(ledger.NewStore(filepath.Join(t.TempDir(), "x.csv")), input, &bytes.Buffer{}, logging.NewMockLogger())
		assert.True(t, parsererror.IsValidationError(err), input)
	}
}
