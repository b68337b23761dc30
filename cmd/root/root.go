// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/budget-csv/internal/config"
	"fjacquet/budget-csv/internal/container"
	"fjacquet/budget-csv/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	File   string
	Config string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig is the configuration loaded before every command
	AppConfig *config.Config

	// AppContainer holds the dependencies wired from AppConfig
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "budget-csv",
		Short: "A CLI personal finance ledger stored in a CSV file.",
		Long: `budget-csv records dated income and expense entries in a CSV file.
It lists transactions over a date range, deletes entries by date and summarizes
income, expense and net saving per month, with text charts, report files and a SQLite export.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to budget-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := Setup(); err != nil {
				Log.Fatalf("Failed to initialize: %v", err)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.Warnf("Failed to close container: %v", err)
				}
			}
		},
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	initOnce sync.Once
)

// Init initializes the root command and all persistent flags
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVarP(&SharedFlags.File, "file", "f", "", "Ledger CSV file (default from ledger.file, finance_data.csv)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.Config, "config", "", "Config file (default searches $HOME/.budget-csv, .budget-csv and .)")
	})
}

// Setup loads the configuration, wires the container and makes sure the ledger file exists
func Setup() error {
	if _, err := config.LoadEnv(); err != nil {
		Log.Warnf("Error loading .env file: %v", err)
	}

	cfg, err := config.InitializeConfigFromFile(SharedFlags.Config)
	if err != nil {
		return err
	}
	if SharedFlags.File != "" {
		cfg.Ledger.File = SharedFlags.File
	}

	logging.Configure(Log, cfg.Log.Level, cfg.Log.Format)

	c, err := container.NewContainerWithLogger(cfg, logging.NewLogrusAdapterFromLogger(Log))
	if err != nil {
		return err
	}

	if err := c.GetStore().Initialize(); err != nil {
		return fmt.Errorf("failed to initialize ledger: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	return nil
}

// GetConfig returns the loaded configuration, or nil before Setup ran
func GetConfig() *config.Config {
	return AppConfig
}

// GetContainer returns the wired container, or nil before Setup ran
func GetContainer() *container.Container {
	return AppContainer
}

// GetLogger returns the structured logger of the container, falling back to Log
func GetLogger() logging.Logger {
	if AppContainer != nil {
		return AppContainer.GetLogger()
	}
	return logging.NewLogrusAdapterFromLogger(Log)
}
