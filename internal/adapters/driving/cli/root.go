// Package cli provides the command-line interface for polyglot.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/polyglot-labs/polyglot-cli/internal/adapters/driven/config/file"
	"github.com/polyglot-labs/polyglot-cli/internal/adapters/driven/registry/memory"
	"github.com/polyglot-labs/polyglot-cli/internal/adapters/driven/sink/localdir"
	"github.com/polyglot-labs/polyglot-cli/internal/adapters/driven/translator/httpapi"
	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driven"
	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driving"
	"github.com/polyglot-labs/polyglot-cli/internal/core/services"
	"github.com/polyglot-labs/polyglot-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services wired by configureServices. Tests inject mocks here.
var (
	intakeService     driving.IntakeService
	submissionService driving.SubmissionCoordinator
	downloadService   driving.DownloadService
	settingsStore     driven.SettingsStore
	outputDir         string
)

// Persistent flags.
var (
	flagVerbose bool
	flagServer  string
	flagOut     string
	flagTimeout int
)

var rootCmd = &cobra.Command{
	Use:   "polyglot",
	Short: "Translate documents through a remote translation service",
	Long: `Polyglot collects documents, submits them as a batch to a remote
translation service, and downloads the translated artifacts.

Files and directories are queued locally, uploaded in one request, and
each file receives a per-file verdict. Translated artifacts can be
downloaded individually or as a single archive.`,
	SilenceUsage:      true,
	PersistentPreRunE: configureServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "",
		"translation server base URL (overrides saved settings)")
	rootCmd.PersistentFlags().StringVarP(&flagOut, "out", "o", "",
		"output directory for downloaded artifacts (overrides saved settings)")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0,
		"request timeout in seconds (overrides saved settings)")
}

// configureServices wires the adapters and services. When the service
// variables are already set (tests inject mocks) wiring is skipped.
func configureServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	if settingsStore == nil {
		store, err := configfile.NewSettingsStore("")
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		settingsStore = store
	}

	if intakeService != nil && submissionService != nil && downloadService != nil {
		return nil
	}

	settings := effectiveSettings()
	logger.Debug("using server %s, output directory %s", settings.ServerURL, settings.OutputDir)

	client, err := httpapi.New(httpapi.Config{
		BaseURL:   settings.ServerURL,
		Timeout:   time.Duration(settings.TimeoutSeconds) * time.Second,
		TargetExt: settings.TargetExt,
	})
	if err != nil {
		return fmt.Errorf("failed to configure translation client: %w", err)
	}

	sink, err := localdir.New(settings.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to prepare output directory: %w", err)
	}
	outputDir = sink.Dir()

	registry := memory.NewFileRegistry()
	intakeService = services.NewIntake(registry)
	submissionService = services.NewSubmission(registry, client)
	downloadService = services.NewDownload(registry, client, sink)

	return nil
}

// effectiveSettings merges saved settings with flag overrides.
func effectiveSettings() driven.Settings {
	settings := settingsStore.Get()
	if flagServer != "" {
		settings.ServerURL = flagServer
	}
	if flagOut != "" {
		settings.OutputDir = flagOut
	}
	if flagTimeout > 0 {
		settings.TimeoutSeconds = flagTimeout
	}
	return settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
