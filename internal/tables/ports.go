package tables

import (
	"context"
	"errors"

	"dasbor/internal/core"
)

// Table names as they appear in the backing spreadsheet.
const (
	Transactions  = "Transactions"
	WalletSetup   = "Wallet Setup"
	CategorySetup = "Category Setup"
	GoalsSetup    = "Goals Setup"
	Scheduled     = "Scheduled"
)

// ErrNotFound is returned when a backend has no table by the requested name.
var ErrNotFound = errors.New("table not found")

// Reader is the port every tabular backend implements. GetTable returns the
// table with its header row already split off.
type Reader interface {
	GetTable(ctx context.Context, name string) (core.RawTable, error)
}
