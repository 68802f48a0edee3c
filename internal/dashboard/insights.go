package dashboard

import (
	"math"

	"dasbor/internal/core"
)

// Derived carries a computed insight together with whether it could be
// computed at all. When OK is false, Reason says what was missing instead of
// leaving the consumer to guess from a zero value.
type Derived[T any] struct {
	Value  T      `json:"value"`
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

func derived[T any](v T) Derived[T] {
	return Derived[T]{Value: v, OK: true}
}

func notDerived[T any](reason string) Derived[T] {
	return Derived[T]{Reason: reason}
}

// CategoryAmount names a category and its expense magnitude.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// CategoryShift names a category whose spending moved notably between the
// two windows. Direction is "up" or "down".
type CategoryShift struct {
	Category  string  `json:"category"`
	Current   float64 `json:"current"`
	Previous  float64 `json:"previous"`
	ChangePct float64 `json:"changePct"`
	Direction string  `json:"direction"`
}

// Insights are the headline observations shown above the charts.
type Insights struct {
	MajorSpend   Derived[CategoryAmount] `json:"majorSpend"`
	BigShift     Derived[CategoryShift]  `json:"bigShift"`
	ExpenseTrend Derived[string]         `json:"expenseTrend"`
}

// shiftThreshold is the minimum deviation from the previous-period mean, as
// a fraction of that mean, for a category to count as a notable shift.
const shiftThreshold = 0.30

func deriveInsights(tree []core.ExpenseNode, current, previous core.KPISummary) Insights {
	return Insights{
		MajorSpend:   majorSpend(tree),
		BigShift:     bigShift(tree),
		ExpenseTrend: expenseTrend(current, previous),
	}
}

// majorSpend picks the category with the largest current-window expense.
func majorSpend(tree []core.ExpenseNode) Derived[CategoryAmount] {
	var top CategoryAmount
	for _, node := range tree {
		if node.Current > top.Amount {
			top = CategoryAmount{Category: node.Name, Amount: node.Current}
		}
	}
	if top.Category == "" {
		return notDerived[CategoryAmount]("no expense activity in the period")
	}
	return derived(top)
}

// bigShift picks the category whose current spending deviates most from the
// mean previous-window spending across categories, when that deviation
// exceeds the shift threshold as a fraction of the mean. The sign of the
// deviation gives the direction.
func bigShift(tree []core.ExpenseNode) Derived[CategoryShift] {
	if len(tree) == 0 {
		return notDerived[CategoryShift]("no expense activity to compare")
	}
	var prevTotal float64
	for _, node := range tree {
		prevTotal += node.Previous
	}
	mean := prevTotal / float64(len(tree))
	if mean <= 0 {
		return notDerived[CategoryShift]("no previous-period spending to compare against")
	}

	var best CategoryShift
	var bestAbs float64
	found := false
	for _, node := range tree {
		dev := node.Current - mean
		abs := math.Abs(dev)
		if abs <= shiftThreshold*mean || abs <= bestAbs {
			continue
		}
		direction := "up"
		if dev < 0 {
			direction = "down"
		}
		best = CategoryShift{
			Category:  node.Name,
			Current:   node.Current,
			Previous:  node.Previous,
			ChangePct: dev / mean,
			Direction: direction,
		}
		bestAbs = abs
		found = true
	}
	if !found {
		return notDerived[CategoryShift]("no category moved more than 30% against the previous-period average")
	}
	return derived(best)
}

// expenseTrend compares the current window's expense against the two-window
// moving average. A band of 5% around the average reads as "stable".
func expenseTrend(current, previous core.KPISummary) Derived[string] {
	if previous.Expense == 0 {
		return notDerived[string]("no previous-period expenses to compare against")
	}
	avg := (current.Expense + previous.Expense) / 2
	if avg == 0 {
		return derived("stable")
	}
	switch delta := (current.Expense - avg) / avg; {
	case delta > 0.05:
		return derived("rising")
	case delta < -0.05:
		return derived("falling")
	default:
		return derived("stable")
	}
}
