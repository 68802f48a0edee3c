package core

import (
	"testing"
	"time"
)

func TestRowDecoderLookup(t *testing.T) {
	d := NewRowDecoder([]string{"Date", "Amount", "Wallet Owner"})
	if d.Column("Date") != 0 || d.Column("Wallet Owner") != 2 {
		t.Fatalf("exact lookup failed")
	}
	if d.Column("date") != NoColumn {
		t.Fatalf("exact lookup must be case-sensitive")
	}
	if d.ColumnFold("wallet owner") != 2 || d.ColumnFold("DATE") != 0 {
		t.Fatalf("folded lookup failed")
	}
	if d.ColumnFold("WalletOwner") != 2 {
		t.Fatalf("folded lookup must ignore interior spaces")
	}
	if d.Column("Missing") != NoColumn || d.ColumnFold("missing") != NoColumn {
		t.Fatalf("absent column must return NoColumn")
	}
}

func TestRowDecoderShortRows(t *testing.T) {
	d := NewRowDecoder([]string{"A", "B", "C"})
	row := []any{"x"}
	if d.String(row, 2) != "" || d.Value(row, 2) != nil || d.Number(row, 2) != 0 {
		t.Fatalf("short row access should be safe")
	}
	if d.String(row, NoColumn) != "" {
		t.Fatalf("NoColumn access should be safe")
	}
}

func TestParseDate(t *testing.T) {
	native := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		in any
		ok bool
	}{
		{native, true},
		{"2024-03-01", true},
		{"2024-03-01 10:30:00", true},
		{"01/03/2024", true},
		{"garbage", false},
		{"", false},
		{nil, false},
	}
	for _, tc := range cases {
		if _, ok := ParseDate(tc.in); ok != tc.ok {
			t.Fatalf("ParseDate(%v) ok = %v, want %v", tc.in, ok, tc.ok)
		}
	}
}

func TestNewRawTableSplitsHeader(t *testing.T) {
	table := NewRawTable("Transactions", [][]any{
		{"Date", " Amount "},
		{"2024-03-01", 100},
	})
	if len(table.Header) != 2 || table.Header[1] != "Amount" {
		t.Fatalf("header = %v", table.Header)
	}
	if len(table.Rows) != 1 || table.Empty() {
		t.Fatalf("rows = %v", table.Rows)
	}
	if !NewRawTable("x", nil).Empty() {
		t.Fatalf("nil table should be empty")
	}
}

func TestDecodeSetupTables(t *testing.T) {
	wallets := DecodeWalletSetup(NewRawTable("Wallet Setup", [][]any{
		{"Wallet", "Wallet Type", "Wallet Owner"},
		{"BCA", "Bank", "Andi"},
		{"", "Bank", "ghost"},
	}))
	if len(wallets) != 1 || wallets[0].Type != "Bank" {
		t.Fatalf("wallets = %+v", wallets)
	}

	goals := DecodeGoalSetup(NewRawTable("Goals Setup", [][]any{
		{"Goals", "Goal Owner", "Nominal Needed", "Deadline"},
		{"Emergency Fund", "Andi", "12.000.000", "2024-12-31"},
		{"No Deadline", "Budi", "1.000", "someday"},
	}))
	if len(goals) != 2 || goals[0].TotalNeeded != 12000000 {
		t.Fatalf("goals = %+v", goals)
	}
	if !goals[1].Deadline.IsZero() {
		t.Fatalf("unparseable deadline should stay zero")
	}

	scheduled := DecodeScheduled(NewRawTable("Scheduled", [][]any{
		{"status", "nextduedate", "DESCRIPTION", "Category", "Amount", "Wallet", "wallet owner"},
		{"active", "2024-04-01", "Rent", "Housing", "500", "BCA", "Andi"},
	}))
	if len(scheduled) != 1 || scheduled[0].Description != "Rent" || scheduled[0].NextDueDate.IsZero() {
		t.Fatalf("scheduled = %+v", scheduled)
	}
}

func TestDecodeScheduledSpacedHeader(t *testing.T) {
	// The hand-maintained sheet and the SQLite source both spell the due-date
	// column with spaces.
	scheduled := DecodeScheduled(NewRawTable("Scheduled", [][]any{
		{"Status", "Next Due Date", "Description", "Category", "Amount", "Wallet", "Wallet Owner"},
		{"Active", "2024-03-20", "Internet", "Bills", 350, "BCA", "Dewi"},
	}))
	if len(scheduled) != 1 {
		t.Fatalf("scheduled = %+v", scheduled)
	}
	want := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	if !scheduled[0].NextDueDate.Equal(want) {
		t.Fatalf("NextDueDate = %v, want %v", scheduled[0].NextDueDate, want)
	}
	if scheduled[0].Amount != 350 || scheduled[0].Owner != "Dewi" {
		t.Fatalf("scheduled row = %+v", scheduled[0])
	}
}
