package core

import (
	"math"
	"testing"
	"time"
)

func TestNetFlowBucketsAndOrder(t *testing.T) {
	e := NewDefaultEngine()
	points := e.NetFlow([]Transaction{
		tx("2024-01-10", "income", 1000),
		tx("2024-01-20", "expense", 400),
		tx("2024-02-05", "income", 200),
	})
	if len(points) != 2 {
		t.Fatalf("bucket count = %d", len(points))
	}
	if points[0].Period != "2024-02" || points[1].Period != "2024-01" {
		t.Fatalf("order = [%s, %s], want descending", points[0].Period, points[1].Period)
	}
	if points[1].Income != 1000 || points[1].Expense != 400 || points[1].Net != 600 {
		t.Fatalf("2024-01 = %+v", points[1])
	}
}

func TestNetFlowReportingZone(t *testing.T) {
	e := NewDefaultEngine()
	// 2024-01-31 18:00 UTC is already 2024-02-01 in UTC+7.
	late := Transaction{
		Date:   time.Date(2024, 1, 31, 18, 0, 0, 0, time.UTC),
		Type:   "income",
		Amount: 100,
	}
	points := e.NetFlow([]Transaction{late})
	if len(points) != 1 || points[0].Period != "2024-02" {
		t.Fatalf("month key = %+v, want 2024-02 bucket", points)
	}
}

func TestRatios(t *testing.T) {
	e := NewDefaultEngine()
	setup := []CategoryConfig{
		{Category: "Food", Subcategory: "Groceries", Ratio: "Needs"},
		{Category: "Food", Subcategory: "Dining", Ratio: "Wants"},
	}
	txs := []Transaction{
		tx("2024-03-01", "expense", 100, withCategory("Food", "Groceries"), withSource("Bank")),
		tx("2024-03-02", "expense", 50, withCategory("Food", "Dining")),
		tx("2024-03-03", "expense", 25, withCategory("Mystery", "")),
		tx("2024-03-04", "income", 999),
	}
	out := e.Ratios(txs, setup)
	if len(out) != 3 {
		t.Fatalf("ratio count = %d: %+v", len(out), out)
	}
	if out[0].Ratio != "Needs" || out[0].Total != 100 || out[0].BySource["Bank"] != 100 {
		t.Fatalf("Needs = %+v", out[0])
	}
	if out[1].Ratio != "Wants" || out[1].BySource["Unknown"] != 50 {
		t.Fatalf("Wants = %+v", out[1])
	}
	if out[2].Ratio != "Uncategorized" || out[2].Total != 25 {
		t.Fatalf("Uncategorized = %+v", out[2])
	}
}

func TestSankeyFlows(t *testing.T) {
	e := NewDefaultEngine()
	txs := []Transaction{
		tx("2024-03-01", "expense", 100, withWallet("BCA", "Andi"), withPurpose("Household")),
		tx("2024-03-02", "expense", 50, withWallet("BCA", "Andi"), withPurpose("Household")),
		tx("2024-03-03", "expense", 75, withWallet("OVO", ""), withPurpose("Personal")),
		tx("2024-03-04", "expense", 10, withWallet("X", "Same"), withPurpose("Same")), // self-loop
		tx("2024-03-05", "expense", 20, withWallet("", ""), withPurpose("Orphan")),    // no payer
		tx("2024-03-06", "expense", 30, withWallet("BCA", "Andi")),                    // no purpose
		tx("2024-03-07", "income", 500, withWallet("BCA", "Andi"), withPurpose("Household")),
	}
	edges := e.SankeyFlows(txs)
	if len(edges) != 2 {
		t.Fatalf("edge count = %d: %+v", len(edges), edges)
	}
	if edges[0].From != "Andi" || edges[0].To != "Household" || edges[0].Amount != 150 {
		t.Fatalf("edge 0 = %+v", edges[0])
	}
	if edges[1].From != "OVO" || edges[1].Amount != 75 {
		t.Fatalf("wallet fallback edge = %+v", edges[1])
	}
	for _, edge := range edges {
		if edge.From == edge.To {
			t.Fatalf("self-loop leaked: %+v", edge)
		}
		if edge.Amount <= 0 {
			t.Fatalf("non-positive edge: %+v", edge)
		}
	}
	// Edge sum equals total expense magnitude over rows with a distinct
	// payer and purpose.
	var sum float64
	for _, edge := range edges {
		sum += edge.Amount
	}
	if sum != 225 {
		t.Fatalf("edge sum = %v, want 225", sum)
	}
}

func TestExpenseTree(t *testing.T) {
	e := NewDefaultEngine()
	current := []Transaction{
		tx("2024-03-01", "expense", 300, withCategory("Food", "Groceries")),
		tx("2024-03-02", "expense", 100, withCategory("Food", "Dining")),
		tx("2024-03-03", "expense", 50, withCategory("Transport", "")),
	}
	previous := []Transaction{
		tx("2024-02-01", "expense", 200, withCategory("Food", "Groceries")),
		tx("2024-02-02", "expense", 80, withCategory("Hobby", "Games")),
	}
	nodes := e.ExpenseTree(current, previous)
	if len(nodes) != 3 {
		t.Fatalf("category count = %d: %+v", len(nodes), nodes)
	}
	food := nodes[0]
	if food.Name != "Food" || food.Current != 400 || food.Previous != 200 {
		t.Fatalf("Food = %+v", food)
	}
	if len(food.Children) != 2 || food.Children[0].Current != 300 || food.Children[0].Previous != 200 {
		t.Fatalf("Food children = %+v", food.Children)
	}
	hobby := nodes[2]
	if hobby.Name != "Hobby" || hobby.Current != 0 || hobby.Previous != 80 {
		t.Fatalf("previous-only category = %+v", hobby)
	}
	if math.Abs(nodes[1].Current-50) > 1e-9 {
		t.Fatalf("Transport = %+v", nodes[1])
	}
}
