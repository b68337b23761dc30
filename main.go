package main

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/budget-csv/cmd/add"
	"fjacquet/budget-csv/cmd/export"
	"fjacquet/budget-csv/cmd/initialize"
	"fjacquet/budget-csv/cmd/interactive"
	"fjacquet/budget-csv/cmd/list"
	"fjacquet/budget-csv/cmd/remove"
	"fjacquet/budget-csv/cmd/report"
	"fjacquet/budget-csv/cmd/root"
	"fjacquet/budget-csv/cmd/summary"
	"fjacquet/budget-csv/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	_, _ = config.LoadEnv()

	// 2. Apply LOG_LEVEL before the configuration is read so early messages respect it
	configureLogLevelDirectly()

	// 3. Initialize root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(initialize.Cmd)
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(interactive.Cmd)
}

// configureLogLevelDirectly sets the level of the shared command logger from LOG_LEVEL
func configureLogLevelDirectly() {
	logLevelStr := config.GetEnv("LOG_LEVEL", "info")

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	root.Log.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
