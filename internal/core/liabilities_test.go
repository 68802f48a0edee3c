package core

import (
	"testing"
	"time"
)

func TestObligationsScheduled(t *testing.T) {
	e := NewDefaultEngine()
	w := marchWindow()
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	scheduled := []ScheduledPayment{
		{Status: "Active", NextDueDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Description: "Rent", Amount: -500},
		{Status: "active", NextDueDate: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), Description: "Internet", Amount: 30},
		{Status: "paused", NextDueDate: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), Description: "Gym", Amount: 15},
		{Status: "active", NextDueDate: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), Description: "Next month", Amount: 10},
	}
	out := e.Obligations(nil, scheduled, w, today)
	if len(out) != 2 {
		t.Fatalf("entry count = %d: %+v", len(out), out)
	}
	if out[0].Description != "Rent" || out[0].Amount != 500 || !out[0].IsOverdue {
		t.Fatalf("rent = %+v", out[0])
	}
	if out[1].Description != "Internet" || out[1].IsOverdue {
		t.Fatalf("internet = %+v", out[1])
	}
}

func TestObligationsLiabilityRows(t *testing.T) {
	e := NewDefaultEngine()
	w := marchWindow()
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	txs := []Transaction{
		tx("2024-03-05", "expense", 400, withCategory("Cicilan Motor", ""), withWallet("BCA", "Andi")),
		tx("2024-03-07", "expense", 100, withCategory("Food", ""), withSource("Credit Card")),
		tx("2024-03-08", "expense", 60, withCategory("Food", "Groceries")),
	}
	out := e.Obligations(txs, nil, w, today)
	if len(out) != 2 {
		t.Fatalf("entry count = %d: %+v", len(out), out)
	}
	for _, entry := range out {
		if entry.Kind != ObligationLiability {
			t.Fatalf("kind = %q", entry.Kind)
		}
		// Assumed due date: last day of the row's month.
		if entry.DueDate.Month() != time.March || entry.DueDate.Day() != 31 {
			t.Fatalf("due date = %v, want end of March", entry.DueDate)
		}
		if entry.IsOverdue {
			t.Fatalf("end of March is not before Mar 15: %+v", entry)
		}
	}
}

func TestObligationsDueDateFallback(t *testing.T) {
	e := NewDefaultEngine()
	w := marchWindow()
	today := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	undated := Transaction{Type: "expense", Amount: -75, Source: "Hutang"}
	out := e.Obligations([]Transaction{undated}, nil, w, today)
	if len(out) != 1 {
		t.Fatalf("entry count = %d", len(out))
	}
	if !out[0].DueDate.Equal(w.End) {
		t.Fatalf("fallback due date = %v, want window end %v", out[0].DueDate, w.End)
	}
	if !out[0].IsOverdue {
		t.Fatalf("window end is before May 1, entry should be overdue")
	}
}
