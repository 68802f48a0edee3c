package backend

import (
	"context"
	"fmt"
	"log/slog"

	"dasbor/internal/config"
	ports "dasbor/internal/tables"
	gsheet "dasbor/internal/tables/google"
	"dasbor/internal/tables/memory"
	"dasbor/internal/tables/sqlite"
)

// CleanupFunc releases a backend's resources.
type CleanupFunc func() error

// Result is the table source chosen by configuration, plus its cleanup.
type Result struct {
	Reader  ports.Reader
	Cleanup CleanupFunc
}

// New builds the table source named by cfg.DataBackend.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.DataBackend {
	case "sheets":
		cli, err := gsheet.New(ctx, cfg.GoogleSpreadsheetID)
		if err != nil {
			return nil, fmt.Errorf("initialize sheets backend: %w", err)
		}
		logger.Info("Initialized Google Sheets backend",
			"spreadsheet_id", cfg.GoogleSpreadsheetID)
		return &Result{Reader: cli}, nil

	case "sqlite":
		store, err := sqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Reader: store, Cleanup: store.Close}, nil

	case "memory":
		store := memory.NewFromFiles("data")
		logger.Info("Initialized memory backend", "data_directory", "data")
		return &Result{Reader: store}, nil

	default:
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}
}
