package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/iitax/internal/calculation"
	"github.com/rgehrsitz/iitax/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "iitax %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "iitax",
		Short: "Personal income tax calculator",
		Long: "Cumulative-withholding income tax calculator: per-period salary tax,\n" +
			"separately taxed year-end bonuses and yearly summaries.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "warn",
		"Log level ("+strings.Join(logging.Levels(), ", ")+")")

	root.AddCommand(monthlyCmd())
	root.AddCommand(bonusCmd())
	root.AddCommand(yearlyCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(exampleCmd())
	root.AddCommand(versionCmd())
	return root
}

// newEngine builds an engine logging to stderr at the --log-level level.
// --debug turns on per-period logging and, unless a level was given, the
// debug level itself.
func newEngine(cmd *cobra.Command, engine *calculation.CalculationEngine) (*calculation.CalculationEngine, error) {
	level, _ := cmd.Flags().GetString("log-level")
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode && !cmd.Flags().Changed("log-level") {
		level = "debug"
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level, "iitax")
	if err != nil {
		return nil, err
	}
	engine.SetLogger(logger)
	engine.Debug = debugMode
	return engine, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
