package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/polyglot-labs/polyglot-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [path...]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal interface for the translation queue.
Any paths given are queued before the interface starts.

Controls:
  ↑/k, ↓/j - Navigate the queue
  s        - Submit pending files
  d        - Download the artifact archive
  o        - Download the selected artifact
  r        - Retry failed files
  x        - Remove the selected file
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if intakeService == nil || submissionService == nil || downloadService == nil {
		return errors.New("translation services not configured")
	}

	// Panic recovery keeps stack traces visible outside the alt screen.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(args) > 0 {
		if _, err := queuePaths(ctx, args); err != nil {
			return err
		}
	}

	app, err := tui.NewApp(tui.Ports{
		Intake:     intakeService,
		Submission: submissionService,
		Download:   downloadService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
