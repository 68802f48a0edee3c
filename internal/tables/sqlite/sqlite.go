package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"dasbor/internal/core"
	ports "dasbor/internal/tables"

	_ "modernc.org/sqlite"
)

// Store serves the spreadsheet tabs out of a local SQLite database. Each
// known table maps to one SQL query whose column order mirrors the sheet
// header, so downstream decoding is identical across backends.
type Store struct {
	db *sql.DB
}

var _ ports.Reader = (*Store)(nil)

type tableQuery struct {
	header []string
	query  string
}

var tableQueries = map[string]tableQuery{
	ports.Transactions: {
		header: []string{"Date", "Transaction Type", "Amount", "Wallet", "Wallet Owner",
			"Expense Purpose", "Category", "Subcategory", "Note", "Description", "Source"},
		query: `SELECT date, transaction_type, amount, wallet, wallet_owner,
			expense_purpose, category, subcategory, note, description, source
			FROM transactions ORDER BY id`,
	},
	ports.WalletSetup: {
		header: []string{"Wallet", "Wallet Type", "Wallet Owner"},
		query:  `SELECT wallet, wallet_type, wallet_owner FROM wallet_setup ORDER BY id`,
	},
	ports.CategorySetup: {
		header: []string{"Category", "Subcategory", "Budget Subcategory", "Ratios"},
		query:  `SELECT category, subcategory, budget_subcategory, ratios FROM category_setup ORDER BY id`,
	},
	ports.GoalsSetup: {
		header: []string{"Goals", "Goal Owner", "Nominal Needed", "Deadline"},
		query:  `SELECT goals, goal_owner, nominal_needed, deadline FROM goals_setup ORDER BY id`,
	},
	ports.Scheduled: {
		header: []string{"Status", "Next Due Date", "Description", "Category", "Amount", "Wallet", "Wallet Owner"},
		query: `SELECT status, next_due_date, description, category, amount, wallet, wallet_owner
			FROM scheduled ORDER BY id`,
	},
}

func headerRow(header []string) []any {
	row := make([]any, len(header))
	for i, h := range header {
		row[i] = h
	}
	return row
}

// New opens (or creates) the database at dbPath and applies pending
// migrations before returning the store.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetTable(ctx context.Context, name string) (core.RawTable, error) {
	tq, ok := tableQueries[name]
	if !ok {
		return core.RawTable{}, fmt.Errorf("sqlite store %q: %w", name, ports.ErrNotFound)
	}

	rows, err := s.db.QueryContext(ctx, tq.query)
	if err != nil {
		return core.RawTable{}, fmt.Errorf("query %s: %w", name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return core.RawTable{}, fmt.Errorf("columns %s: %w", name, err)
	}

	values := [][]any{headerRow(tq.header)}
	for rows.Next() {
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return core.RawTable{}, fmt.Errorf("scan %s: %w", name, err)
		}
		values = append(values, cells)
	}
	if err := rows.Err(); err != nil {
		return core.RawTable{}, fmt.Errorf("iterate %s: %w", name, err)
	}

	return core.NewRawTable(name, values), nil
}
