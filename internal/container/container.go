// Package container provides dependency injection for the budget-csv application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"io"

	"fjacquet/budget-csv/internal/chart"
	"fjacquet/budget-csv/internal/config"
	"fjacquet/budget-csv/internal/export"
	"fjacquet/budget-csv/internal/ledger"
	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/report"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     ledger.Store
	generator *report.Generator
	exporter  *export.SQLiteExporter
}

// NewContainer creates and wires all application dependencies.
// The logger is built from the log section of cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger is like NewContainer but uses the given logger
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	store := ledger.NewStore(cfg.Ledger.File)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldFile, store.Path()),
		logging.F(logging.FieldFormat, cfg.Report.Format))

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     store,
		generator: report.NewGenerator(logger),
		exporter:  export.NewSQLiteExporter(logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the ledger store bound to the configured file.
func (c *Container) GetStore() ledger.Store {
	return c.store
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.generator
}

// GetExporter returns the SQLite exporter.
func (c *Container) GetExporter() *export.SQLiteExporter {
	return c.exporter
}

// NewRenderer returns a chart renderer writing to w with the configured bar width.
func (c *Container) NewRenderer(w io.Writer) *chart.Renderer {
	return chart.NewRenderer(w, c.config.Chart.Width)
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	// Every store call opens and closes the ledger file itself
	c.logger.Debug("Container closed")
	return nil
}
