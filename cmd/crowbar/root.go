// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"crowbar-cli/internal/config"
	"crowbar-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, populated by initRootConfig before
	// any RunE handler executes.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "crowbar",
		Short: "A CLI framework with ejectable pluggable commands",
		Long: TitleStyle.Render("crowbar") + SubtitleStyle.Render(" - A CLI framework with ejectable pluggable commands") + `

crowbar hosts pluggable commands installed as plugins. Any plugin command
can be ejected: its backing source files are copied into your project,
its package requirements are merged into your package.json, and the
command is removed from the framework.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Install plugins under the crowbar plugins directory
  2. Inspect them with: crowbar list
  3. Take ownership of their code with: crowbar eject

` + SubtitleStyle.Render("Examples:") + `
  crowbar list                     List all registered commands
  crowbar eject                    Eject every ejectable command
  crowbar eject -g tools -c lint   Eject a single command`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/crowbar/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(ejectCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := loadConfig()
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		renderServiceError(os.Stderr, newServiceError(err, issue.ConfigLoadFailedId, ""))
	}
	if loaded != nil {
		cfg = loaded
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}

	initLogging()
}

// loadConfig loads configuration honoring the --config override.
func loadConfig() (*config.Config, error) {
	opts := config.LoadOptions{ConfigFilePath: config.ConfigFilePathOverride()}
	return config.NewProvider().Load(context.Background(), opts)
}

// initLogging routes slog through a charmbracelet logger on stderr so the
// internal packages' structured logs share the CLI's look and feel.
func initLogging() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: config.AppName,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	slog.SetDefault(slog.New(logger))
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
