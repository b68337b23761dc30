// Package export copies the ledger into a SQLite database for ad-hoc querying.
package export

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"fjacquet/budget-csv/internal/dateutils"
	"fjacquet/budget-csv/internal/fileutils"
	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/models"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Result describes one completed export
type Result struct {
	ID          string
	ExportedAt  time.Time
	RecordCount int
}

// SQLiteExporter writes ledger records into the records table of a SQLite database.
// Each export replaces the previous content of the table and is logged in the exports table.
type SQLiteExporter struct {
	logger logging.Logger
	now    func() time.Time
}

// NewSQLiteExporter creates a new SQLiteExporter
func NewSQLiteExporter(logger logging.Logger) *SQLiteExporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &SQLiteExporter{logger: logger, now: time.Now}
}

// Export replaces the records table of the database at dbPath with records, in file order,
// inside one transaction. source names the ledger file the records came from.
func (e *SQLiteExporter) Export(ctx context.Context, dbPath, source string, records []models.Record) (Result, error) {
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(dbPath)); err != nil {
		return Result{}, fmt.Errorf("create db directory: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return Result{}, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return Result{}, fmt.Errorf("open sqlite database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return Result{}, fmt.Errorf("ping database: %w", err)
	}

	started := e.now()
	result := Result{
		ID:          uuid.NewString(),
		ExportedAt:  started.UTC(),
		RecordCount: len(records),
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertRecords(ctx, tx, records); err != nil {
		return Result{}, err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO exports (id, exported_at, source, record_count) VALUES (?, ?, ?, ?)`,
		result.ID, result.ExportedAt.Format(time.RFC3339), source, result.RecordCount,
	); err != nil {
		return Result{}, fmt.Errorf("record export: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit export: %w", err)
	}

	e.logger.Info("Ledger exported to SQLite",
		logging.F(logging.FieldOutputFile, dbPath),
		logging.F(logging.FieldCount, result.RecordCount),
		logging.F(logging.FieldExportID, result.ID),
		logging.F(logging.FieldDuration, time.Since(started).Milliseconds()))

	return result, nil
}

func insertRecords(ctx context.Context, tx *sql.Tx, records []models.Record) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (position, date, amount, category, description) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		// ISO dates so that SQL ordering and range filters work on the text column
		if _, err := stmt.ExecContext(ctx,
			i, dateutils.ToISODate(r.Date.Time()), models.FormatAmount(r.Amount), r.Category.String(), r.Description,
		); err != nil {
			return fmt.Errorf("insert record %d: %w", i+1, err)
		}
	}
	return nil
}
