package core

// Budget status labels, thresholds on usage percent.
const (
	BudgetOver    = "Over"
	BudgetWarning = "Warning"
	BudgetOnTrack = "On Track"
)

// BudgetRow is one line of the flattened budget report: a category summary
// row (Subcategory "All") followed by its subcategory rows, in setup order.
type BudgetRow struct {
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Budget      float64 `json:"budget"`
	Actual      float64 `json:"actual"`
	UsagePct    float64 `json:"usagePct"`
	Status      string  `json:"status"`
}

type budgetNode struct {
	budget   float64
	actual   float64
	subOrder []string
	subs     map[string]*budgetNode
}

// BudgetStatus builds the two-level Category -> Subcategory budget tree from
// setup entries with a positive budget, accumulates expense magnitudes into
// it, and flattens the result. A transaction whose subcategory matches no
// configured entry still attributes to its category, so a category's actual
// may legitimately exceed the sum of its subcategory actuals.
func (e *Engine) BudgetStatus(txs []Transaction, setup []CategoryConfig) []BudgetRow {
	var catOrder []string
	cats := make(map[string]*budgetNode)
	for _, c := range setup {
		if c.Budget <= 0 {
			continue
		}
		node, ok := cats[c.Category]
		if !ok {
			node = &budgetNode{subs: make(map[string]*budgetNode)}
			cats[c.Category] = node
			catOrder = append(catOrder, c.Category)
		}
		node.budget += c.Budget
		if c.Subcategory != "" {
			if _, ok := node.subs[c.Subcategory]; !ok {
				node.subs[c.Subcategory] = &budgetNode{}
				node.subOrder = append(node.subOrder, c.Subcategory)
			}
			node.subs[c.Subcategory].budget += c.Budget
		}
	}

	for _, t := range txs {
		if t.Amount >= 0 {
			continue
		}
		node, ok := cats[t.Category]
		if !ok {
			continue
		}
		node.actual += -t.Amount
		if sub, ok := node.subs[t.Subcategory]; ok {
			sub.actual += -t.Amount
		}
	}

	var out []BudgetRow
	for _, cat := range catOrder {
		node := cats[cat]
		out = append(out, budgetRow(cat, "All", node.budget, node.actual))
		for _, sub := range node.subOrder {
			sn := node.subs[sub]
			out = append(out, budgetRow(cat, sub, sn.budget, sn.actual))
		}
	}
	return out
}

func budgetRow(cat, sub string, budget, actual float64) BudgetRow {
	usage := 0.0
	if budget > 0 {
		usage = actual / budget * 100
	}
	return BudgetRow{
		Category:    cat,
		Subcategory: sub,
		Budget:      budget,
		Actual:      actual,
		UsagePct:    usage,
		Status:      budgetStatusFor(usage),
	}
}

// budgetStatusFor maps usage percent to a status label. Both thresholds are
// exclusive on the low side: exactly 80% is still On Track, exactly 100% is
// still Warning.
func budgetStatusFor(usage float64) string {
	switch {
	case usage > 100:
		return BudgetOver
	case usage > 80:
		return BudgetWarning
	default:
		return BudgetOnTrack
	}
}
