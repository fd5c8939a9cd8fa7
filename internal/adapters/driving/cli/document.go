package cli

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docchat-labs/docchat-cli/internal/core/domain"
	"github.com/docchat-labs/docchat-cli/internal/logger"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage the document library",
	Long:  `Add, list, view, or delete the documents available for questioning.`,
}

var documentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a document",
	Long: `Add a document by hand or from a file.

With --file, the file is validated against the size and type limits,
its text extracted, and a title derived from the filename. With
--content, the document is stored as given. --title overrides the
derived title in both cases.`,
	RunE: runDocumentAdd,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all documents",
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Print a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

var documentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all documents",
	RunE:  runDocumentClear,
}

// Flags for the document commands.
var (
	addTitle   string
	addContent string
	addFile    string
	clearYes   bool
)

func init() {
	documentAddCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Document title")
	documentAddCmd.Flags().StringVarP(&addContent, "content", "c", "", "Document content")
	documentAddCmd.Flags().StringVarP(&addFile, "file", "f", "", "File to ingest")
	documentClearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip the confirmation prompt")

	documentCmd.AddCommand(documentAddCmd)
	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	documentCmd.AddCommand(documentClearCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentAdd(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := cmd.Context()

	title := addTitle
	content := addContent

	if addFile != "" {
		if ingestService == nil {
			return errors.New("ingest service not configured")
		}

		draft, err := ingestFile(cmd, addFile)
		if err != nil {
			return err
		}
		if title == "" {
			title = draft.Title
		}
		content = draft.Content
	}

	if content == "" {
		return errors.New("either --content or --file is required")
	}

	doc, err := documentService.Add(ctx, title, content)
	if err != nil {
		return fmt.Errorf("failed to add document: %w", err)
	}

	cmd.Printf("Added document %s: %s\n", doc.ID, doc.Title)
	return nil
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs := documentService.List(cmd.Context())
	if len(docs) == 0 {
		cmd.Println("No documents yet. Add one with 'docchat document add'.")
		return nil
	}

	cmd.Println("Documents:")
	cmd.Println()
	for i := range docs {
		marker := " "
		if selectionService != nil && selectionService.IsSelected(docs[i].ID) {
			marker = "*"
		}
		cmd.Printf("  %s %s\n", marker, docs[i].ID)
		cmd.Printf("      Title:   %s\n", docs[i].Title)
		cmd.Printf("      Created: %s\n", docs[i].CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  Title:   %s\n", doc.Title)
	cmd.Printf("  Created: %s\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Println()
	cmd.Println(doc.Content)
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := cmd.Context()
	id := args[0]

	if err := documentService.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if selectionService != nil {
		selectionService.Prune(documentService.IDs(ctx))
	}

	cmd.Printf("Document %s deleted.\n", id)
	return nil
}

func runDocumentClear(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if !clearYes && !confirm(cmd, "Delete ALL documents?") {
		cmd.Println("Aborted.")
		return nil
	}

	if err := documentService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear documents: %w", err)
	}
	if selectionService != nil {
		selectionService.DeselectAll()
	}

	cmd.Println("All documents deleted.")
	return nil
}

// ingestFile reads the file and runs it through the ingestion pipeline.
func ingestFile(cmd *cobra.Command, path string) (*domain.DraftDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrReadFailure, err)
	}

	file := domain.RawFile{
		Name:      filepath.Base(path),
		MediaType: mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
		Data:      data,
	}

	logger.Debug("Ingesting %s (%d bytes, %s)", file.Name, len(file.Data), file.MediaType)

	draft, err := ingestService.Ingest(cmd.Context(), file)
	if err != nil {
		return nil, fmt.Errorf("failed to ingest %s: %w", file.Name, err)
	}
	return draft, nil
}
