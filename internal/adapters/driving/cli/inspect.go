package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <path>...",
	Short: "List the files a translate run would submit",
	Long: `Walks the given files and directories and lists everything that would
be submitted, without contacting the server. Useful for checking what a
directory drop expands to.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if intakeService == nil {
		return errors.New("intake service not configured")
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
		cmd.Println("No files found.")
		return nil
	}

	var total int64
	for _, item := range items {
		cmd.Printf("  %-40s %-30s %s\n", item.DisplayPath(), item.MIMEType, domain.FormatSize(item.SizeBytes))
		total += item.SizeBytes
	}
	cmd.Printf("\n%d file(s), %s total.\n", len(items), domain.FormatSize(total))

	return nil
}
