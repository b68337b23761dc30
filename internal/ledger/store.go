// Package ledger persists income and expense records in a flat CSV file.
//
// The file starts with the header row date,amount,category,description and holds one
// record per line. Fields are quoted following RFC 4180 when they contain the comma,
// a double quote or a line break. Every operation re-reads the file; nothing is cached
// between calls and nothing is locked, so concurrent writers may lose updates.
package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/budget-csv/internal/fileutils"
	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/parsererror"
	"fjacquet/budget-csv/internal/summary"

	"github.com/gocarina/gocsv"
)

// recordRow maps one line of the ledger file
type recordRow struct {
	Date        string `csv:"date"`
	Amount      string `csv:"amount"`
	Category    string `csv:"category"`
	Description string `csv:"description"`
}

func rowFromRecord(r models.Record) recordRow {
	return recordRow{
		Date:        r.Date.String(),
		Amount:      models.FormatAmount(r.Amount),
		Category:    r.Category.String(),
		Description: r.Description,
	}
}

// Store is a handle on a ledger file. It holds nothing but the path.
type Store struct {
	path string
}

// NewStore returns a Store backed by the file at path
func NewStore(path string) Store {
	if path == "" {
		path = models.DefaultLedgerFile
	}
	return Store{path: path}
}

// Path returns the backing file path
func (s Store) Path() string {
	return s.path
}

// Initialize creates the ledger file with its header row if it does not exist yet.
// An existing file is left untouched and its content is not validated.
func (s Store) Initialize() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error checking ledger file: %w", err)
	}

	if err := fileutils.ReplaceFile(s.path, models.PermissionLedgerFile, func(f *os.File) error {
		return writeRows(f, nil, true)
	}); err != nil {
		return fmt.Errorf("error creating ledger file: %w", err)
	}
	return nil
}

// Append adds one record at the end of the file without rewriting existing lines.
// The record is stored as given; no business rule is checked here.
func (s Store) Append(record models.Record) error {
	file, err := os.OpenFile(s.path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return s.openError(err)
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("error appending to ledger file: %w", err)
	}
	// A 0-byte file holds no records yet; its header goes in with the first row
	withHeader := info.Size() == 0

	// A hand-edited file may lack the final newline; never glue two records together
	if !withHeader {
		if err := ensureTrailingNewline(file, info.Size()); err != nil {
			return fmt.Errorf("error appending to ledger file: %w", err)
		}
	}

	if err := writeRows(file, []recordRow{rowFromRecord(record)}, withHeader); err != nil {
		return fmt.Errorf("error appending to ledger file: %w", err)
	}
	return nil
}

// DeleteByDate removes every record dated exactly date and rewrites the file.
// It reports false, leaving the file untouched, when no record matched.
func (s Store) DeleteByDate(date models.Date) (bool, error) {
	records, err := s.load()
	if err != nil {
		return false, err
	}

	kept := make([]models.Record, 0, len(records))
	for _, r := range records {
		if !r.Date.Equal(date) {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return false, nil
	}

	if err := s.rewrite(kept); err != nil {
		return false, err
	}
	return true, nil
}

// QueryRange returns the records dated between start and end, both inclusive,
// in file order. An inverted range yields an empty slice.
func (s Store) QueryRange(start, end models.Date) ([]models.Record, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Record, 0)
	for _, r := range records {
		if r.Date.Within(start, end) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// Summarize loads the whole ledger and aggregates it
func (s Store) Summarize() (models.Summary, error) {
	records, err := s.load()
	if err != nil {
		return models.Summary{}, err
	}
	return summary.Summarize(records), nil
}

// All returns every record in file order
func (s Store) All() ([]models.Record, error) {
	return s.load()
}

// load reads and parses the whole file. One malformed row fails the whole load.
func (s Store) load() ([]models.Record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, s.openError(err)
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("error reading ledger file: %w", err)
	}
	if info.Size() == 0 {
		return []models.Record{}, nil
	}

	var rows []recordRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing ledger file %s: %w", s.path, err)
	}

	records := make([]models.Record, 0, len(rows))
	for i, row := range rows {
		// Line 1 is the header
		record, err := s.parseRow(row, i+2)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (s Store) parseRow(row recordRow, line int) (models.Record, error) {
	date, err := models.ParseDate(row.Date)
	if err != nil {
		return models.Record{}, &parsererror.ParseError{
			FilePath: s.path, Line: line, Field: models.ColumnDate, Value: row.Date, Err: err,
		}
	}

	amount, err := models.ParseAmount(row.Amount)
	if err != nil {
		return models.Record{}, &parsererror.ParseError{
			FilePath: s.path, Line: line, Field: models.ColumnAmount, Value: row.Amount, Err: err,
		}
	}

	return models.Record{
		Date:        date,
		Amount:      amount,
		Category:    models.Category(strings.TrimSpace(row.Category)),
		Description: row.Description,
	}, nil
}

// rewrite replaces the file content with the header followed by records
func (s Store) rewrite(records []models.Record) error {
	perm := os.FileMode(models.PermissionLedgerFile)
	if info, err := os.Stat(s.path); err == nil {
		perm = info.Mode().Perm()
	}

	rows := make([]recordRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, rowFromRecord(r))
	}

	if err := fileutils.ReplaceFile(s.path, perm, func(f *os.File) error {
		return writeRows(f, rows, true)
	}); err != nil {
		return fmt.Errorf("error rewriting ledger file: %w", err)
	}
	return nil
}

func (s Store) openError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", parsererror.ErrNotInitialized, filepath.Clean(s.path), err)
	}
	return fmt.Errorf("error opening ledger file: %w", err)
}

// writeRows writes rows as CSV, preceded by the canonical header when requested
func writeRows(w io.Writer, rows []recordRow, withHeader bool) error {
	csvWriter := csv.NewWriter(w)

	if withHeader {
		if err := csvWriter.Write(models.Columns); err != nil {
			return fmt.Errorf("error writing CSV header: %w", err)
		}
	}

	if len(rows) > 0 {
		if err := gocsv.MarshalCSVWithoutHeaders(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
			return fmt.Errorf("error writing CSV data: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func ensureTrailingNewline(file *os.File, size int64) error {
	if size == 0 {
		return nil
	}

	last := make([]byte, 1)
	if _, err := file.ReadAt(last, size-1); err != nil {
		return err
	}
	if last[0] == '\n' {
		return nil
	}
	_, err := file.Write([]byte("\n"))
	return err
}
