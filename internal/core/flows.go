package core

import "sort"

// NetFlowPoint is one calendar month of income/expense totals. Period is a
// "yyyy-MM" key computed in the fixed reporting timezone.
type NetFlowPoint struct {
	Period  string  `json:"period"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// NetFlow groups transactions by calendar month and sums inflows and
// outflows per bucket. Output is sorted by period label descending, which
// for "yyyy-MM" keys is also reverse chronological.
func (e *Engine) NetFlow(txs []Transaction) []NetFlowPoint {
	buckets := make(map[string]*NetFlowPoint)
	for _, t := range txs {
		key := t.Date.In(ReportingZone).Format("2006-01")
		p, ok := buckets[key]
		if !ok {
			p = &NetFlowPoint{Period: key}
			buckets[key] = p
		}
		if t.Amount > 0 {
			p.Income += t.Amount
		} else {
			p.Expense += -t.Amount
		}
	}
	out := make([]NetFlowPoint, 0, len(buckets))
	for _, p := range buckets {
		p.Net = p.Income - p.Expense
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period > out[j].Period })
	return out
}

// RatioBreakdown aggregates expense magnitude under one ratio tag, with a
// per-source breakdown keyed by the transaction's raw Source value.
type RatioBreakdown struct {
	Ratio    string             `json:"ratio"`
	Total    float64            `json:"total"`
	BySource map[string]float64 `json:"bySource"`
}

// Ratios resolves each expense transaction's ratio tag through the category
// setup (Category+Subcategory lookup, falling back to Category alone, then
// to "Uncategorized") and accumulates totals. Sources default to "Unknown".
func (e *Engine) Ratios(txs []Transaction, setup []CategoryConfig) []RatioBreakdown {
	type key struct{ cat, sub string }
	byPair := make(map[key]string, len(setup))
	byCat := make(map[string]string)
	for _, c := range setup {
		if c.Ratio == "" {
			continue
		}
		k := key{c.Category, c.Subcategory}
		if _, ok := byPair[k]; !ok {
			byPair[k] = c.Ratio
		}
		if _, ok := byCat[c.Category]; !ok {
			byCat[c.Category] = c.Ratio
		}
	}

	index := make(map[string]int)
	var out []RatioBreakdown
	for _, t := range txs {
		if t.Amount >= 0 {
			continue
		}
		ratio, ok := byPair[key{t.Category, t.Subcategory}]
		if !ok {
			ratio, ok = byCat[t.Category]
		}
		if !ok || ratio == "" {
			ratio = "Uncategorized"
		}
		source := t.Source
		if source == "" {
			source = "Unknown"
		}
		i, ok := index[ratio]
		if !ok {
			i = len(out)
			index[ratio] = i
			out = append(out, RatioBreakdown{Ratio: ratio, BySource: make(map[string]float64)})
		}
		out[i].Total += -t.Amount
		out[i].BySource[source] += -t.Amount
	}
	return out
}

// SankeyEdge is one aggregated cash-flow edge. Amount is always positive and
// From never equals To.
type SankeyEdge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// SankeyFlows aggregates expense magnitude by (payer, purpose), where the
// payer is the wallet owner or, when absent, the wallet itself. Edges with a
// missing endpoint and self-loops are dropped.
func (e *Engine) SankeyFlows(txs []Transaction) []SankeyEdge {
	type pair struct{ from, to string }
	index := make(map[pair]int)
	var out []SankeyEdge
	for _, t := range txs {
		if t.Amount >= 0 {
			continue
		}
		from := t.Owner
		if from == "" {
			from = t.Wallet
		}
		to := t.Purpose
		if from == "" || to == "" || from == to {
			continue
		}
		p := pair{from, to}
		i, ok := index[p]
		if !ok {
			i = len(out)
			index[p] = i
			out = append(out, SankeyEdge{From: from, To: to})
		}
		out[i].Amount += -t.Amount
	}
	// Zero-amount pairs cannot occur (every contribution is positive), but a
	// final filter keeps the invariant explicit.
	filtered := out[:0]
	for _, edge := range out {
		if edge.Amount > 0 {
			filtered = append(filtered, edge)
		}
	}
	return filtered
}

// ExpenseNode compares one category's (or subcategory's) expense magnitude
// between the current and previous windows.
type ExpenseNode struct {
	Name     string        `json:"name"`
	Current  float64       `json:"current"`
	Previous float64       `json:"previous"`
	Children []ExpenseNode `json:"children,omitempty"`
}

// ExpenseTree runs two accumulation passes, one per window, and merges them
// into a category -> subcategory hierarchy carrying both values per node.
// Categories appear in first-seen order, current window first.
func (e *Engine) ExpenseTree(current, previous []Transaction) []ExpenseNode {
	type acc struct {
		cur, prev float64
		subOrder  []string
		subs      map[string]*[2]float64
	}
	index := make(map[string]*acc)
	var order []string

	visit := func(txs []Transaction, prevPass bool) {
		for _, t := range txs {
			if t.Amount >= 0 {
				continue
			}
			cat := t.Category
			if cat == "" {
				cat = "Uncategorized"
			}
			a, ok := index[cat]
			if !ok {
				a = &acc{subs: make(map[string]*[2]float64)}
				index[cat] = a
				order = append(order, cat)
			}
			amt := -t.Amount
			if prevPass {
				a.prev += amt
			} else {
				a.cur += amt
			}
			if t.Subcategory == "" {
				continue
			}
			s, ok := a.subs[t.Subcategory]
			if !ok {
				s = &[2]float64{}
				a.subs[t.Subcategory] = s
				a.subOrder = append(a.subOrder, t.Subcategory)
			}
			if prevPass {
				s[1] += amt
			} else {
				s[0] += amt
			}
		}
	}
	visit(current, false)
	visit(previous, true)

	out := make([]ExpenseNode, 0, len(order))
	for _, cat := range order {
		a := index[cat]
		node := ExpenseNode{Name: cat, Current: a.cur, Previous: a.prev}
		for _, sub := range a.subOrder {
			s := a.subs[sub]
			node.Children = append(node.Children, ExpenseNode{Name: sub, Current: s[0], Previous: s[1]})
		}
		out = append(out, node)
	}
	return out
}
