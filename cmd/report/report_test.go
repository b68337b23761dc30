package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/budget-csv/internal/ledger"
	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/models"
	reporting "fjacquet/budget-csv/internal/report"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "report", Cmd.Use)
	assert.Contains(t, Cmd.Short, "json, yaml or csv")
	assert.NotNil(t, Cmd.Run)

	format := Cmd.Flags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "F", format.Shorthand)

	outputDir := Cmd.Flags().Lookup("output-dir")
	require.NotNil(t, outputDir)
	assert.Equal(t, "o", outputDir.Shorthand)
}

func TestRunReport(t *testing.T) {
	dir := t.TempDir()
	store := ledger.NewStore(filepath.Join(dir, "finance_data.csv"))
	require.NoError(t, store.Initialize())
	require.NoError(t, store.Append(models.NewRecord(models.MustParseDate("01-01-2025"), decimal.NewFromInt(100), models.CategoryIncome, "salary")))
	require.NoError(t, store.Append(models.NewRecord(models.MustParseDate("03-02-2025"), decimal.NewFromInt(25), models.CategoryExpense, "bus")))

	logger := logging.NewMockLogger()
	var out bytes.Buffer
	outputDir := filepath.Join(dir, "reports")

	paths, err := runReport(context.Background(), store, reporting.NewGenerator(logger),
		Options{Format: "json", OutputDir: outputDir}, &out, logger)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Contains(t, out.String(), filepath.Join(outputDir, "monthly.json"))

	data, err := os.ReadFile(filepath.Join(outputDir, "proportion.json"))
	require.NoError(t, err)
	var rows []map[string]string
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "80", rows[0]["income_share"])
	assert.Equal(t, "20", rows[0]["expense_share"])

	assert.True(t, logger.HasEntry("INFO", "Report written"))
}

type brokenLedger struct{ ledger.Store }

func (brokenLedger) All() ([]models.Record, error) { return nil, errors.New("no such file") }

func TestRunReport_LedgerError(t *testing.T) {
	_, err := runReport(context.Background(), brokenLedger{}, reporting.NewGenerator(logging.NewMockLogger()),
		Options{Format: "json", OutputDir: t.TempDir()}, &bytes.Buffer{}, logging.NewMockLogger())
	assert.ErrorContains(t, err, "error reading ledger")
}

// countingLedger serves records from memory and counts reads
type countingLedger struct {
	ledger.Store
	records []models.Record
	reads   int
}

func (c *countingLedger) All() ([]models.Record, error) {
	c.reads++
	return c.records, nil
}

func (c *countingLedger) Summarize() (models.Summary, error) {
	c.reads++
	return models.Summary{}, errors.New("summary must come from the records already read")
}

func TestRunReport_ReadsLedgerOnce(t *testing.T) {
	l := &countingLedger{records: []models.Record{
		models.NewRecord(models.MustParseDate("01-01-2025"), decimal.NewFromInt(60), models.CategoryIncome, "salary"),
		models.NewRecord(models.MustParseDate("02-01-2025"), decimal.NewFromInt(40), models.CategoryExpense, "food"),
	}}
	outputDir := t.TempDir()

	_, err := runReport(context.Background(), l, reporting.NewGenerator(logging.NewMockLogger()),
		Options{Format: "json", OutputDir: outputDir}, &bytes.Buffer{}, logging.NewMockLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, l.reads)

	data, err := os.ReadFile(filepath.Join(outputDir, "monthly.json"))
	require.NoError(t, err)
	var rows []map[string]string
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "60", rows[0]["income"])
	assert.Equal(t, "40", rows[0]["expense"])
}
