package core

import "math"

// KPISummary is the headline income/expense/net triple for one window.
// Expense is a positive magnitude and excludes disguised savings.
type KPISummary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// SummarizeKPI reduces a window of transactions to its KPI triple. The same
// reduction runs for the current and previous windows so deltas compare
// like with like.
func (e *Engine) SummarizeKPI(txs []Transaction) KPISummary {
	var s KPISummary
	for _, t := range txs {
		switch {
		case t.Amount > 0:
			s.Income += t.Amount
		case t.Amount < 0:
			if e.isDisguisedSaving(t) {
				continue
			}
			s.Expense += -t.Amount
		}
	}
	s.Net = s.Income - s.Expense
	return s
}

// TotalSaving sums savings contributions under two rules that never double
// count: a positive row whose Source is a configured saving source, or, only
// when the first rule does not apply, an expense-typed row whose category
// marks it as a disguised saving, counted at absolute value.
func (e *Engine) TotalSaving(txs []Transaction) float64 {
	var total float64
	for _, t := range txs {
		switch {
		case t.Amount > 0 && equalsFoldAny(t.Source, e.kw.SavingSources):
			total += t.Amount
		case e.isDisguisedSaving(t):
			total += math.Abs(t.Amount)
		}
	}
	return total
}
