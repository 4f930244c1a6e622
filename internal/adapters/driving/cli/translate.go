package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/polyglot-labs/polyglot-cli/internal/adapters/driven/source/filesystem"
	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
)

var translateCmd = &cobra.Command{
	Use:   "translate <path>...",
	Short: "Translate files and directories",
	Long: `Queues the given files and directories, submits them as one batch to
the translation server, and downloads the translated artifacts.
Directories are walked recursively.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

var flagNoDownload bool

func init() {
	translateCmd.Flags().BoolVar(&flagNoDownload, "no-download", false,
		"submit only, skip downloading the artifact archive")
	rootCmd.AddCommand(translateCmd)
}

// Status colours for terminal output.
var statusStyles = map[domain.FileStatus]lipgloss.Style{
	domain.StatusPending:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	domain.StatusTranslating: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
	domain.StatusTranslated:  lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
	domain.StatusError:       lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
}

func renderStatus(status domain.FileStatus) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(string(status))
	}
	return string(status)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	if intakeService == nil || submissionService == nil || downloadService == nil {
		return errors.New("translation services not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	items, err := queuePaths(ctx, args)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		cmd.Println("No files found to translate.")
		return nil
	}

	cmd.Printf("Queued %d file(s):\n", len(items))
	for _, item := range items {
		cmd.Printf("  %-40s %s\n", item.DisplayPath(), domain.FormatSize(item.SizeBytes))
	}

	cmd.Println("\nSubmitting batch...")
	if err := submissionService.Submit(ctx); err != nil {
		return fmt.Errorf("submission failed: %w", err)
	}

	results, err := intakeService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to read results: %w", err)
	}
	for _, item := range results {
		line := fmt.Sprintf("  %-40s %s", item.DisplayPath(), renderStatus(item.Status))
		if item.ErrorDetail != "" {
			line += " (" + item.ErrorDetail + ")"
		}
		cmd.Println(line)
	}

	counts, err := submissionService.Counts(ctx)
	if err != nil {
		return fmt.Errorf("failed to summarise results: %w", err)
	}
	cmd.Printf("\n%d translated, %d failed.\n", counts.Translated, counts.Errored)

	if counts.Translated == 0 {
		if counts.Errored > 0 {
			return errors.New("no files were translated")
		}
		return nil
	}

	if flagNoDownload {
		return nil
	}

	name, err := downloadService.DownloadAll(ctx)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	cmd.Printf("Saved %s to %s\n", name, outputDir)

	return nil
}

// queuePaths registers the given paths as one drop event.
func queuePaths(ctx context.Context, paths []string) ([]domain.FileItem, error) {
	entries := make([]domain.DropEntry, 0, len(paths))
	for _, p := range paths {
		entry, err := filesystem.NewEntry(p)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", p, err)
		}
		entries = append(entries, entry)
	}
	return intakeService.AddDrop(ctx, entries)
}
