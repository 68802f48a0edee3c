package core

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Transaction type labels as they appear in the ledger.
const (
	TypeIncome   = "income"
	TypeExpense  = "expense"
	TypeTransfer = "transfer"

	SubTransferOut = "transfer-out"
	SubTransferIn  = "transfer-in"
)

// Transaction is a typed, sign-normalized view of one ledger row. Amounts are
// signed: positive means inflow to a wallet, negative means outflow.
// Transactions are rebuilt fresh per aggregation call and never persisted.
type Transaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Wallet      string    `json:"wallet"`
	Owner       string    `json:"owner"`
	Purpose     string    `json:"purpose"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Note        string    `json:"note"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
}

// Filters restricts projection. An empty field means "no constraint".
// Description matches as a case-insensitive substring; every other predicate
// is an exact match. Custom date bounds, when set, feed the custom period.
type Filters struct {
	Wallet      string
	WalletOwner string
	Purpose     string
	Category    string
	Subcategory string
	Note        string
	Description string

	StartDate *time.Time
	EndDate   *time.Time
}

// Empty reports whether no predicate is active.
func (f Filters) Empty() bool {
	return f.Wallet == "" && f.WalletOwner == "" && f.Purpose == "" &&
		f.Category == "" && f.Subcategory == "" && f.Note == "" &&
		f.Description == "" && f.StartDate == nil && f.EndDate == nil
}

func (f Filters) matches(t Transaction) bool {
	if f.Wallet != "" && t.Wallet != f.Wallet {
		return false
	}
	if f.WalletOwner != "" && t.Owner != f.WalletOwner {
		return false
	}
	if f.Purpose != "" && t.Purpose != f.Purpose {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Subcategory != "" && t.Subcategory != f.Subcategory {
		return false
	}
	if f.Note != "" && t.Note != f.Note {
		return false
	}
	if f.Description != "" &&
		!strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.Description)) {
		return false
	}
	return true
}

// NormalizeAmount applies the sign rule used everywhere amounts are read:
// income rows are positive, expense rows negative, transfers follow their
// subcategory, and an ambiguous transfer contributes nothing. Any other type
// keeps the raw normalized value and callers must not assume a sign.
func NormalizeAmount(txType, subcategory string, raw float64) float64 {
	switch strings.ToLower(strings.TrimSpace(txType)) {
	case TypeIncome:
		return math.Abs(raw)
	case TypeExpense:
		return -math.Abs(raw)
	case TypeTransfer:
		switch strings.ToLower(strings.TrimSpace(subcategory)) {
		case SubTransferOut:
			return -math.Abs(raw)
		case SubTransferIn:
			return math.Abs(raw)
		default:
			return 0
		}
	default:
		return raw
	}
}

// ProjectTransactions converts raw ledger rows into typed transactions,
// keeping source row order. Rows with no usable date, dates outside the
// window, or failing an active filter predicate are dropped. The generated ID
// is a per-call UI key with no semantic meaning.
func ProjectTransactions(table RawTable, f Filters, w PeriodWindow) []Transaction {
	d := NewRowDecoder(table.Header)
	var (
		colDate    = d.Column("Date")
		colType    = d.Column("Transaction Type")
		colAmount  = d.Column("Amount")
		colWallet  = d.Column("Wallet")
		colOwner   = d.Column("Wallet Owner")
		colPurpose = d.Column("Expense Purpose")
		colCat     = d.Column("Category")
		colSub     = d.Column("Subcategory")
		colNote    = d.Column("Note")
		colDesc    = d.Column("Description")
		colSource  = d.Column("Source")
	)

	out := make([]Transaction, 0, len(table.Rows))
	for _, row := range table.Rows {
		date, ok := d.Date(row, colDate)
		if !ok || !w.Contains(date) {
			continue
		}
		t := Transaction{
			ID:          uuid.NewString(),
			Date:        date,
			Type:        d.String(row, colType),
			Wallet:      d.String(row, colWallet),
			Owner:       d.String(row, colOwner),
			Purpose:     d.String(row, colPurpose),
			Category:    d.String(row, colCat),
			Subcategory: d.String(row, colSub),
			Note:        d.String(row, colNote),
			Description: d.String(row, colDesc),
			Source:      d.String(row, colSource),
		}
		t.Amount = NormalizeAmount(t.Type, t.Subcategory, d.Number(row, colAmount))
		if !f.matches(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// isExpenseType reports whether a transaction is expense-typed, case-insensitively.
func isExpenseType(t Transaction) bool {
	return strings.EqualFold(strings.TrimSpace(t.Type), TypeExpense)
}

// isPositiveContribution mirrors the goal start-date rule: income rows,
// transfer-in rows, or anything with a positive normalized amount.
func isPositiveContribution(t Transaction) bool {
	typ := strings.ToLower(strings.TrimSpace(t.Type))
	if typ == TypeIncome {
		return true
	}
	if typ == TypeTransfer && strings.EqualFold(strings.TrimSpace(t.Subcategory), SubTransferIn) {
		return true
	}
	return t.Amount > 0
}
