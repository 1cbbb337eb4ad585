package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/contactbook/internal/assistant"
	"github.com/leapstack-labs/contactbook/internal/cli/config"
	"github.com/leapstack-labs/contactbook/internal/cli/output"
	"github.com/leapstack-labs/contactbook/internal/storage"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg        *config.Config
	Logger     *slog.Logger
	Store      storage.Store
	Dispatcher *assistant.Dispatcher
	Renderer   *output.Renderer
}

// NewCommandContext opens the configured store, loads the address book and
// builds a dispatcher over it. The returned cleanup closes the store and
// must be called (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	store, err := storage.Open(storage.Options{
		Path:    cfg.DataFile,
		Backend: storage.Backend(cfg.Backend),
		Logger:  logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open address book: %w", err)
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close store", "error", err)
		}
	}

	book, err := store.Load(cmd.Context())
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to load address book: %w", err)
	}
	logger.Debug("address book loaded", "path", store.Path(), "contacts", book.Len())

	d, err := assistant.New(assistant.Options{
		Book:           book,
		Store:          store,
		Logger:         logger,
		UpcomingWindow: cfg.UpcomingWindow,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return &CommandContext{
		Cfg:        cfg,
		Logger:     logger,
		Store:      store,
		Dispatcher: d,
		Renderer:   newRenderer(cmd, cfg.OutputFormat),
	}, cleanup, nil
}

func newRenderer(cmd *cobra.Command, mode string) *output.Renderer {
	return output.NewRenderer(cmd.OutOrStdout(), output.Mode(mode))
}
