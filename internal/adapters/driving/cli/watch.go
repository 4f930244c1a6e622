package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/polyglot-labs/polyglot-cli/internal/adapters/driving/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and translate files dropped into it",
	Long: `Watches a directory and queues every file or directory created in it.
After a quiet period the queued batch is submitted and the translated
archive is downloaded. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var flagDebounce time.Duration

func init() {
	watchCmd.Flags().DurationVar(&flagDebounce, "debounce", watch.DefaultDebounce,
		"quiet period before a batch is submitted")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if intakeService == nil || submissionService == nil || downloadService == nil {
		return errors.New("translation services not configured")
	}

	watcher, err := watch.New(watch.Config{
		Dir:      args[0],
		Debounce: flagDebounce,
	}, intakeService, submissionService, downloadService)
	if err != nil {
		return err
	}

	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	ctx, stop := signal.NotifyContext(base, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s, press Ctrl+C to stop.\n", args[0])
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
