package core

import (
	"math"
	"strings"
	"time"
)

// Obligation kinds.
const (
	ObligationUpcoming  = "Upcoming"
	ObligationLiability = "Liabilities"
)

// ObligationEntry is one upcoming scheduled payment or one detected
// liability row, merged into a single list for display.
type ObligationEntry struct {
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Wallet      string    `json:"wallet"`
	Owner       string    `json:"owner"`
	Amount      float64   `json:"amount"`
	DueDate     time.Time `json:"dueDate"`
	IsOverdue   bool      `json:"isOverdue"`
}

// Obligations merges two independent scans: active scheduled payments whose
// next due date falls inside the window, and ledger rows whose source,
// category, or subcategory carries a liability keyword. A liability row with
// a usable date assumes the last day of its month as due date; without one
// it falls back to the window's end. IsOverdue compares against today.
func (e *Engine) Obligations(txs []Transaction, scheduled []ScheduledPayment, w PeriodWindow, today time.Time) []ObligationEntry {
	var out []ObligationEntry

	for _, p := range scheduled {
		if !strings.EqualFold(strings.TrimSpace(p.Status), "active") {
			continue
		}
		if p.NextDueDate.IsZero() || !w.Contains(p.NextDueDate) {
			continue
		}
		out = append(out, ObligationEntry{
			Kind:        ObligationUpcoming,
			Description: p.Description,
			Category:    p.Category,
			Wallet:      p.Wallet,
			Owner:       p.Owner,
			Amount:      math.Abs(p.Amount),
			DueDate:     p.NextDueDate,
			IsOverdue:   p.NextDueDate.Before(today),
		})
	}

	for _, t := range txs {
		if !e.isLiabilityRow(t) {
			continue
		}
		due := w.End
		if !t.Date.IsZero() {
			if !w.Contains(t.Date) {
				continue
			}
			due = lastDayOfMonth(t.Date)
		}
		out = append(out, ObligationEntry{
			Kind:        ObligationLiability,
			Description: t.Description,
			Category:    t.Category,
			Wallet:      t.Wallet,
			Owner:       t.Owner,
			Amount:      math.Abs(t.Amount),
			DueDate:     due,
			IsOverdue:   due.Before(today),
		})
	}
	return out
}

func (e *Engine) isLiabilityRow(t Transaction) bool {
	return containsFold(t.Source, e.kw.LiabilityTerms) ||
		containsFold(t.Category, e.kw.LiabilityTerms) ||
		containsFold(t.Subcategory, e.kw.LiabilityTerms)
}

func lastDayOfMonth(t time.Time) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return endOfDay(first.AddDate(0, 1, -1))
}
