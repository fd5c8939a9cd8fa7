package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docchat-labs/docchat-cli/internal/adapters/driven/watcher"
	"github.com/docchat-labs/docchat-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Auto-ingest files dropped into a directory",
	Long: `Watch a directory and add every supported file that is created or
modified in it to the library. Runs until interrupted. Files that fail
a pipeline gate (too large, unsupported type, unreadable, too long)
are reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if documentService == nil || ingestService == nil {
		return errors.New("ingest service not configured")
	}

	dir := args[0]

	w, err := watcher.New(watchExtensions)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close() //nolint:errcheck // Best-effort close on exit

	ctx := cmd.Context()

	events, err := w.Watch(ctx, dir)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", dir)

	for ev := range events {
		logger.Debug("File event: %s", ev.Path)

		draft, err := ingestFile(cmd, ev.Path)
		if err != nil {
			cmd.Printf("Skipped %s: %v\n", ev.Path, err)
			continue
		}

		doc, err := documentService.Add(ctx, draft.Title, draft.Content)
		if err != nil {
			cmd.Printf("Skipped %s: %v\n", ev.Path, err)
			continue
		}

		cmd.Printf("Added document %s: %s\n", doc.ID, doc.Title)
	}

	return nil
}
