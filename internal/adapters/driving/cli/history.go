package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear the chat history",
	RunE:  runHistoryShow,
}

var historyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the chat history",
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the chat history",
	RunE:  runHistoryClear,
}

// historyClearYes is a flag for the history clear command.
var historyClearYes bool

func init() {
	historyClearCmd.Flags().BoolVarP(&historyClearYes, "yes", "y", false, "Skip the confirmation prompt")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryShow(cmd *cobra.Command, _ []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	messages := chatService.History(cmd.Context())
	if len(messages) == 0 {
		cmd.Println("No messages yet.")
		return nil
	}

	for i := range messages {
		msg := &messages[i]
		cmd.Printf("[%s] %s\n", msg.Timestamp.Format("2006-01-02 15:04:05"), msg.Role)
		cmd.Println(msg.Content)
		if len(msg.Sources) > 0 {
			cmd.Printf("(sources: %v)\n", msg.Sources)
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d messages\n", len(messages))
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	if !historyClearYes && !confirm(cmd, "Delete the chat history?") {
		cmd.Println("Aborted.")
		return nil
	}

	if err := chatService.ClearHistory(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	cmd.Println("Chat history cleared.")
	return nil
}
