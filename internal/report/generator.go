// Package report serialises the chart datasets of a ledger to json, yaml or csv files.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"fjacquet/budget-csv/internal/chart"
	"fjacquet/budget-csv/internal/fileutils"
	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/validation"

	"github.com/gocarina/gocsv"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Dataset names
const (
	DatasetMonthly    = "monthly"
	DatasetProportion = "proportion"
	DatasetDaily      = "daily"
)

// Dataset is a named table of rows. Rows must be a slice of structs for the csv format.
type Dataset struct {
	Name string
	Rows interface{}
}

// Datasets builds the three chart datasets from a summary and the records behind the daily series
func Datasets(s models.Summary, records []models.Record) []Dataset {
	return []Dataset{
		{Name: DatasetMonthly, Rows: chart.MonthlyBars(s)},
		{Name: DatasetProportion, Rows: []chart.Proportion{chart.NewProportion(s)}},
		{Name: DatasetDaily, Rows: chart.DailySeries(records)},
	}
}

// Generator provides functionality to generate reports in various formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new instance of Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger}
}

// Generate serialises rows in the specified format (json, yaml or csv).
func (g *Generator) Generate(rows interface{}, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(rows)
	case "yaml":
		return g.generateYAML(rows)
	case "csv":
		return g.generateCSV(rows)
	default:
		return nil, validation.IsValidOutputFormat(format)
	}
}

func (g *Generator) generateJSON(rows interface{}) ([]byte, error) {
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *Generator) generateYAML(rows interface{}) ([]byte, error) {
	out, err := yaml.Marshal(rows)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}

func (g *Generator) generateCSV(rows interface{}) ([]byte, error) {
	out, err := gocsv.MarshalBytes(rows)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return out, nil
}

// WriteFiles writes each dataset to <dir>/<name>.<format> and returns the written paths
// in dataset order. The directory is created if needed.
func (g *Generator) WriteFiles(ctx context.Context, dir, format string, datasets []Dataset) ([]string, error) {
	if err := validation.IsValidOutputFormat(format); err != nil {
		return nil, err
	}
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return nil, err
	}

	paths := make([]string, len(datasets))
	group, ctx := errgroup.WithContext(ctx)
	for i, ds := range datasets {
		i, ds := i, ds
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := g.Generate(ds.Rows, format)
			if err != nil {
				return fmt.Errorf("dataset %s: %w", ds.Name, err)
			}
			path := filepath.Join(dir, ds.Name+"."+format)
			if err := fileutils.WriteFile(path, data, models.PermissionReportFile); err != nil {
				return fmt.Errorf("dataset %s: %w", ds.Name, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	g.logger.Debug("Report files written",
		logging.F(logging.FieldFormat, format),
		logging.F(logging.FieldReportCount, len(paths)))
	return paths, nil
}
