package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"dasbor/internal/dashboard"
)

// WriteCSV renders a snapshot as a sectioned CSV report. Each section starts
// with a title row and its own header row, separated by a blank line, so the
// file opens cleanly in a spreadsheet.
func WriteCSV(w io.Writer, snap *dashboard.Snapshot) error {
	cw := csv.NewWriter(w)

	sections := []func(*csv.Writer, *dashboard.Snapshot) error{
		writeMeta,
		writeKPI,
		writeWallets,
		writeGoals,
		writeBudget,
		writeObligations,
		writeRatios,
		writeNetFlow,
		writeSankey,
		writeExpenseTree,
		writeTransactions,
	}
	for i, section := range sections {
		if i > 0 {
			if err := cw.Write([]string{}); err != nil {
				return err
			}
		}
		if err := section(cw, snap); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeMeta(cw *csv.Writer, snap *dashboard.Snapshot) error {
	rows := [][]string{
		{"Dashboard Export"},
		{"Period", snap.Period},
		{"Window Start", fmtDate(snap.Window.Start)},
		{"Window End", fmtDate(snap.Window.End)},
		{"Generated At", snap.GeneratedAt.Format(time.RFC3339)},
	}
	return writeAll(cw, rows)
}

func writeKPI(cw *csv.Writer, snap *dashboard.Snapshot) error {
	rows := [][]string{
		{"KPI Summary"},
		{"Metric", "Current", "Previous"},
		{"Income", fmtAmount(snap.KPI.Income), fmtAmount(snap.PreviousKPI.Income)},
		{"Expense", fmtAmount(snap.KPI.Expense), fmtAmount(snap.PreviousKPI.Expense)},
		{"Net", fmtAmount(snap.KPI.Net), fmtAmount(snap.PreviousKPI.Net)},
		{"Total Saving", fmtAmount(snap.TotalSaving), ""},
		{"Liquid Assets", fmtAmount(snap.LiquidAssets), ""},
		{"Net Worth", fmtAmount(snap.NetWorth.NetWorth), ""},
	}
	return writeAll(cw, rows)
}

func writeWallets(cw *csv.Writer, snap *dashboard.Snapshot) error {
	rows := [][]string{
		{"Wallet Status"},
		{"Wallet", "Type", "Owner", "Balance"},
	}
	for _, w := range snap.Wallets {
		rows = append(rows, []string{w.Wallet, w.Type, w.Owner, fmtAmount(w.Balance)})
	}
	return writeAll(cw, rows)
}

func writeGoals(cw *csv.Writer, snap *dashboard.Snapshot) error {
	rows := [][]string{
		{"Goals Status"},
		{"Goal", "Owner", "Needed", "Collected", "Remaining", "Days Left", "Risk", "Status"},
	}
	for _, g := range snap.Goals {
		rows = append(rows, []string{
			g.Name, g.Owner,
			fmtAmount(g.TotalNeeded), fmtAmount(g.Collected), fmtAmount(g.RemainingAmount),
			strconv.Itoa(g.DaysLeft), strconv.Itoa(g.RiskScore), g.Status,
		})
	}
	return writeAll(cw, rows)
}

func writeBudget(cw *csv.Writer, snap *dashboard.Snapshot) error {
	rows := [][]string{
		{"Budget Status"},
		{"Category", "Subcategory", "Budget", "Actual", "Usage %", "Status"},
	}
	for _, b := range snap.Budget {
		rows = append(rows, []string{
			b.Category, b.Subcategory,
			fmtAmount(b.Budget), fmtAmount(b.Actual), fmtAmount(b.UsagePct), b.Status,
		})
	}
	return writeAll(cw, rows)
}

func writeObligations(cw *csv.Writer, snap *dashboard.Snapshot) error {
	rows := [][]string{
		{"Liabilities and Upcoming"},
		{"Kind", "Description", "Category", "Wallet", "Amount", "Due Date", "Overdue"},
	}
	for _, o := range snap.Obligations {
		rows = append(rows, []string{
			o.Kind, o.Description, o.Category, o.Wallet,
			fmtAmount(o.Amount), fmtDate(o.DueDate), strconv.FormatBool(o.IsOverdue),
		})
	}
	return writeAll(cw, rows)
}

func writeRatios(cw *csv.Writer, snap *dashboard.Snapshot) error {
	rows := [][]string{
		{"Expense Ratios"},
		{"Ratio", "Source", "Amount"},
	}
	for _, r := range snap.Ratios {
		rows = append(rows, []string{r.Ratio, "", fmtAmount(r.Total)})
		sources := make([]string, 0, len(r.BySource))
		for src := range r.BySource {
			sources = append(sources, src)
		}
		sort.Strings(sources)
		for _, src := range sources {
			rows = append(rows, []string{"", src, fmtAmount(r.BySource[src])})
		}
	}
	return writeAll(cw, rows)
}

func writeNetFlow(cw *csv.Writer, snap *dashboard.Snapshot) error {
	rows := [][]string{
		{"Net Flow"},
		{"Month", "Income", "Expense", "Net"},
	}
	for _, p := range snap.NetFlow {
		rows = append(rows, []string{p.Period, fmtAmount(p.Income), fmtAmount(p.Expense), fmtAmount(p.Net)})
	}
	return writeAll(cw, rows)
}

func writeSankey(cw *csv.Writer, snap *dashboard.Snapshot) error {
	rows := [][]string{
		{"Spending Flows"},
		{"From", "To", "Amount"},
	}
	for _, e := range snap.Sankey {
		rows = append(rows, []string{e.From, e.To, fmtAmount(e.Amount)})
	}
	return writeAll(cw, rows)
}

func writeExpenseTree(cw *csv.Writer, snap *dashboard.Snapshot) error {
	rows := [][]string{
		{"Expenses by Category"},
		{"Category", "Subcategory", "Current", "Previous"},
	}
	for _, node := range snap.ExpenseTree {
		rows = append(rows, []string{node.Name, "", fmtAmount(node.Current), fmtAmount(node.Previous)})
		for _, child := range node.Children {
			rows = append(rows, []string{node.Name, child.Name, fmtAmount(child.Current), fmtAmount(child.Previous)})
		}
	}
	return writeAll(cw, rows)
}

func writeTransactions(cw *csv.Writer, snap *dashboard.Snapshot) error {
	rows := [][]string{
		{"Transactions"},
		{"Date", "Type", "Amount", "Wallet", "Owner", "Purpose", "Category", "Subcategory", "Description", "Source"},
	}
	for _, t := range snap.Transactions {
		rows = append(rows, []string{
			fmtDate(t.Date), t.Type, fmtAmount(t.Amount),
			t.Wallet, t.Owner, t.Purpose, t.Category, t.Subcategory, t.Description, t.Source,
		})
	}
	return writeAll(cw, rows)
}

func writeAll(cw *csv.Writer, rows [][]string) error {
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	return nil
}

func fmtAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
