package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage client settings",
	Long: `View and configure how polyglot reaches the translation server and
where downloaded artifacts are written.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update and persist settings",
	Long: `Persists the given values to the settings file. Only the flags you
pass are changed.`,
	RunE: runSettingsSet,
}

var (
	flagSetServer  string
	flagSetOut     string
	flagSetTimeout int
	flagSetExt     string
)

func init() {
	settingsSetCmd.Flags().StringVar(&flagSetServer, "server", "",
		"translation server base URL")
	settingsSetCmd.Flags().StringVar(&flagSetOut, "out", "",
		"output directory for downloaded artifacts")
	settingsSetCmd.Flags().IntVar(&flagSetTimeout, "timeout", 0,
		"request timeout in seconds")
	settingsSetCmd.Flags().StringVar(&flagSetExt, "ext", "",
		"artifact extension the server produces")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	settings := settingsStore.Get()
	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("  Server URL:       %s\n", settings.ServerURL)
	cmd.Printf("  Output directory: %s\n", settings.OutputDir)
	cmd.Printf("  Timeout:          %ds\n", settings.TimeoutSeconds)
	cmd.Printf("  Artifact ext:     %s\n", settings.TargetExt)

	return nil
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	settings := settingsStore.Get()
	if flagSetServer != "" {
		settings.ServerURL = flagSetServer
	}
	if flagSetOut != "" {
		settings.OutputDir = flagSetOut
	}
	if flagSetTimeout > 0 {
		settings.TimeoutSeconds = flagSetTimeout
	}
	if flagSetExt != "" {
		settings.TargetExt = flagSetExt
	}

	if err := settingsStore.Set(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Println("Settings saved.")

	return runSettingsShow(cmd, nil)
}
