// Package cli wires the cobra command tree to the core services.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/docchat-labs/docchat-cli/internal/adapters/driven/config/file"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driven/identity"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driven/qa"
	"github.com/docchat-labs/docchat-cli/internal/adapters/driven/storage/sqlite"
	"github.com/docchat-labs/docchat-cli/internal/core/ports/driving"
	"github.com/docchat-labs/docchat-cli/internal/core/services"
	"github.com/docchat-labs/docchat-cli/internal/extractors/pdf"
	"github.com/docchat-labs/docchat-cli/internal/extractors/plaintext"
	"github.com/docchat-labs/docchat-cli/internal/logger"
)

var version = "0.1.0"

// Services used by the commands. Wired by initServices for real runs
// and replaced by test doubles in tests.
var (
	documentService  driving.DocumentService
	ingestService    driving.IngestService
	transferService  driving.TransferService
	selectionService driving.SelectionService
	chatService      driving.ChatService
	settingsService  driving.SettingsService
)

// watchExtensions is the extension allow-list for the watch command,
// collected from the registered extractors.
var watchExtensions []string

// store is the open database, closed after command execution.
var store *sqlite.Store

var verbose bool

// servicesPrewired is set once the dependency graph is built. Tests set
// it to keep PersistentPreRunE from touching the real config and data
// directories.
var servicesPrewired bool

var rootCmd = &cobra.Command{
	Use:   "docchat",
	Short: "Chat with your documents",
	Long: `DocChat keeps a local library of documents and lets you ask
questions about them against a question-answering service.

Add documents by hand or ingest text and PDF files, select the ones
relevant to your question, and ask away.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if servicesPrewired {
			return nil
		}
		return initServices(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// Execute runs the root command.
func Execute() {
	defer func() {
		if store != nil {
			_ = store.Close() //nolint:errcheck // Best-effort close on exit
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initServices builds the production dependency graph: config file,
// SQLite store, QA client, extractors, and the core services.
func initServices(ctx context.Context) error {
	cfgStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	cfg, err := cfgStore.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err = sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	logger.Debug("Database opened: %s", store.Path())

	clock := identity.NewSystemClock()
	idgen := identity.NewUUIDGenerator()

	documents, err := services.NewDocumentService(ctx, store, clock, idgen)
	if err != nil {
		return fmt.Errorf("loading documents: %w", err)
	}
	documentService = documents

	textExtractor := plaintext.New()
	pdfExtractor := pdf.New()
	ingest := services.NewIngestService(textExtractor, pdfExtractor)
	ingestService = ingest

	watchExtensions = nil
	watchExtensions = append(watchExtensions, textExtractor.SupportedExtensions()...)
	watchExtensions = append(watchExtensions, pdfExtractor.SupportedExtensions()...)

	selection := services.NewSelectionService()
	selectionService = selection

	settings := services.NewSettingsService(store)
	settingsService = settings

	transferService = services.NewTransferService(documents, clock, idgen)

	client := qa.NewClient(qa.Config{
		BaseURL: cfg.ServerURL,
		Timeout: cfg.RequestTimeout(),
	})

	chat, err := services.NewChatService(ctx, store, client, documents, selection, settings, clock, idgen)
	if err != nil {
		return fmt.Errorf("loading chat history: %w", err)
	}
	chatService = chat

	servicesPrewired = true
	return nil
}
