package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about selected documents",
	Long: `Send one question about the selected documents to the QA service.

Select documents with repeated --doc flags or pass --all to question
the whole library. The question and the answer are appended to the
chat history.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

// Flags for the ask command.
var (
	askDocs []string
	askAll  bool
)

func init() {
	askCmd.Flags().StringArrayVarP(&askDocs, "doc", "d", nil, "Document ID to question (repeatable)")
	askCmd.Flags().BoolVarP(&askAll, "all", "a", false, "Question all documents")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if chatService == nil || selectionService == nil || documentService == nil {
		return errors.New("chat service not configured")
	}

	ctx := cmd.Context()

	switch {
	case askAll:
		selectionService.SelectAll(documentService.IDs(ctx))
	case len(askDocs) > 0:
		selectionService.SelectAll(askDocs)
		selectionService.Prune(documentService.IDs(ctx))
		if selectionService.Count() < len(askDocs) {
			return errors.New("unknown document ID in --doc")
		}
	}

	question := strings.Join(args, " ")

	answer, err := chatService.Send(ctx, question)
	if err != nil {
		return fmt.Errorf("failed to get an answer: %w", err)
	}

	cmd.Println(answer.Content)
	if len(answer.Sources) > 0 {
		cmd.Println()
		cmd.Printf("Sources: %s\n", strings.Join(answer.Sources, ", "))
	}
	return nil
}
