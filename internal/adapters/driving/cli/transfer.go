package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
)

var importCmd = &cobra.Command{
	Use:   "import [file.json]",
	Short: "Import documents from a JSON file",
	Long: `Import documents from a JSON array exported by docchat (or shaped
like one). Malformed elements are skipped; imported documents get fresh
IDs so they never collide with existing ones.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all documents to a JSON file",
	RunE:  runExport,
}

// exportDir is a flag for the export command.
var exportDir string

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", ".", "Directory to write the export file to")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if transferService == nil {
		return errors.New("transfer service not configured")
	}

	if !strings.EqualFold(filepath.Ext(args[0]), ".json") {
		return fmt.Errorf("failed to import %s: %w", args[0], domain.ErrNotAJSONFile)
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	result, err := transferService.Import(cmd.Context(), raw)
	if err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}

	cmd.Printf("Imported %d documents", len(result.Accepted))
	if result.Skipped > 0 {
		cmd.Printf(" (%d skipped)", result.Skipped)
	}
	cmd.Println()
	return nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	if transferService == nil {
		return errors.New("transfer service not configured")
	}

	data, filename, err := transferService.Export(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	path := filepath.Join(exportDir, filename)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	cmd.Printf("Exported to %s\n", path)
	return nil
}
