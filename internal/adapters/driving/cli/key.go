package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the API key",
	Long:  `Store, inspect, or remove the API key used for QA requests.`,
}

var keySetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store the API key",
	Long: `Store the API key. With no argument, the key is read from the
terminal without echo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeySet,
}

var keyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored API key (masked)",
	RunE:  runKeyShow,
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	RunE:  runKeyClear,
}

func init() {
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyShowCmd)
	keyCmd.AddCommand(keyClearCmd)
	rootCmd.AddCommand(keyCmd)
}

func runKeySet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var key string
	if len(args) == 1 {
		key = args[0]
	} else {
		cmd.Print("Enter API key: ")
		key = readPassword()
		cmd.Println()
	}

	if key == "" {
		return errors.New("API key must not be empty")
	}

	if err := settingsService.SetAPIKey(cmd.Context(), key); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	cmd.Println("API key stored.")
	return nil
}

func runKeyShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, err := settingsService.APIKey(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}

	if key == "" {
		cmd.Println("API key: (not set)")
		return nil
	}

	cmd.Printf("API key: %s\n", maskAPIKey(key))
	return nil
}

func runKeyClear(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.ClearAPIKey(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear API key: %w", err)
	}

	cmd.Println("API key removed.")
	return nil
}
