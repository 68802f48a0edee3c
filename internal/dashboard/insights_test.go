package dashboard

import (
	"testing"

	"dasbor/internal/core"
)

func TestMajorSpend(t *testing.T) {
	tree := []core.ExpenseNode{
		{Name: "Food", Current: 1200, Previous: 900},
		{Name: "Transport", Current: 300, Previous: 250},
	}

	got := majorSpend(tree)
	if !got.OK {
		t.Fatalf("majorSpend not derived: %s", got.Reason)
	}
	if got.Value.Category != "Food" || got.Value.Amount != 1200 {
		t.Errorf("majorSpend = %+v, want Food/1200", got.Value)
	}
}

func TestMajorSpendNoExpenses(t *testing.T) {
	got := majorSpend(nil)
	if got.OK {
		t.Error("majorSpend derived from empty tree")
	}
	if got.Reason == "" {
		t.Error("missing reason for underivable insight")
	}
}

func TestBigShift(t *testing.T) {
	tests := []struct {
		name     string
		tree     []core.ExpenseNode
		wantOK   bool
		wantCat  string
		wantDir  string
	}{
		{
			// Mean previous = 650; Food sits 850 above it, Transport 340
			// below, both past the 30% band. The larger deviation wins.
			name: "increase above the mean",
			tree: []core.ExpenseNode{
				{Name: "Food", Current: 1500, Previous: 1000},
				{Name: "Transport", Current: 310, Previous: 300},
			},
			wantOK:  true,
			wantCat: "Food",
			wantDir: "up",
		},
		{
			name: "decrease below the mean",
			tree: []core.ExpenseNode{
				{Name: "Travel", Current: 100, Previous: 800},
			},
			wantOK:  true,
			wantCat: "Travel",
			wantDir: "down",
		},
		{
			// Mean previous = 550. Food deviates by 850; Hobby by only 50
			// even though its own previous quintupled.
			name: "deviation measured against the cross-category mean",
			tree: []core.ExpenseNode{
				{Name: "Food", Current: 1400, Previous: 1000},
				{Name: "Hobby", Current: 500, Previous: 100},
			},
			wantOK:  true,
			wantCat: "Food",
			wantDir: "up",
		},
		{
			// Mean previous = 525; an unchanged large category still sits
			// well above the mean of an uneven tree.
			name: "unchanged category can still deviate from the mean",
			tree: []core.ExpenseNode{
				{Name: "Food", Current: 1000, Previous: 1000},
				{Name: "Misc", Current: 100, Previous: 50},
			},
			wantOK:  true,
			wantCat: "Food",
			wantDir: "up",
		},
		{
			name: "all within the threshold band",
			tree: []core.ExpenseNode{
				{Name: "Food", Current: 1100, Previous: 1000},
			},
			wantOK: false,
		},
		{
			name: "no previous-period baseline",
			tree: []core.ExpenseNode{
				{Name: "Food", Current: 1000, Previous: 0},
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bigShift(tt.tree)
			if got.OK != tt.wantOK {
				t.Fatalf("OK = %v, want %v (%+v)", got.OK, tt.wantOK, got)
			}
			if !tt.wantOK {
				return
			}
			if got.Value.Category != tt.wantCat || got.Value.Direction != tt.wantDir {
				t.Errorf("bigShift = %+v, want %s/%s", got.Value, tt.wantCat, tt.wantDir)
			}
		})
	}
}

func TestExpenseTrend(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		wantOK   bool
		want     string
	}{
		{"rising", 1500, 1000, true, "rising"},
		{"falling", 500, 1000, true, "falling"},
		{"stable", 1020, 1000, true, "stable"},
		{"no baseline", 1000, 0, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expenseTrend(core.KPISummary{Expense: tt.current}, core.KPISummary{Expense: tt.previous})
			if got.OK != tt.wantOK {
				t.Fatalf("OK = %v, want %v", got.OK, tt.wantOK)
			}
			if tt.wantOK && got.Value != tt.want {
				t.Errorf("expenseTrend = %q, want %q", got.Value, tt.want)
			}
		})
	}
}
