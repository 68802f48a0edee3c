package ai

import (
	"fmt"
	"strings"

	"dasbor/internal/dashboard"
)

// maxPromptTransactions caps how many ledger rows the prompt carries so a
// large window cannot blow past the model's context budget.
const maxPromptTransactions = 50

// BuildPrompt renders a snapshot into the grounding context for one
// question. The model only ever sees the aggregates, never raw credentials
// or spreadsheet coordinates.
func BuildPrompt(snap *dashboard.Snapshot, question string) string {
	var b strings.Builder

	b.WriteString("You are a personal finance assistant. Answer the question using ONLY the dashboard data below.\n")
	b.WriteString("Amounts are in the household's home currency. Be concise and concrete.\n")
	b.WriteString("If the data cannot answer the question, say so instead of guessing.\n\n")

	fmt.Fprintf(&b, "Period: %s (%s to %s)\n\n",
		snap.Period,
		snap.Window.Start.Format("2006-01-02"),
		snap.Window.End.Format("2006-01-02"))

	b.WriteString("KPI summary:\n")
	fmt.Fprintf(&b, "- income: %.2f (previous period %.2f)\n", snap.KPI.Income, snap.PreviousKPI.Income)
	fmt.Fprintf(&b, "- expense: %.2f (previous period %.2f)\n", snap.KPI.Expense, snap.PreviousKPI.Expense)
	fmt.Fprintf(&b, "- net: %.2f\n", snap.KPI.Net)
	fmt.Fprintf(&b, "- total saving: %.2f\n", snap.TotalSaving)
	fmt.Fprintf(&b, "- liquid assets: %.2f\n", snap.LiquidAssets)
	fmt.Fprintf(&b, "- net worth: %.2f (assets %.2f, liabilities %.2f)\n\n",
		snap.NetWorth.NetWorth, snap.NetWorth.Assets, snap.NetWorth.Liabilities)

	if len(snap.Wallets) > 0 {
		b.WriteString("Wallet balances:\n")
		for _, w := range snap.Wallets {
			fmt.Fprintf(&b, "- %s (%s, %s): %.2f\n", w.Wallet, w.Type, w.Owner, w.Balance)
		}
		b.WriteString("\n")
	}

	if len(snap.Budget) > 0 {
		b.WriteString("Budget status:\n")
		for _, row := range snap.Budget {
			fmt.Fprintf(&b, "- %s / %s: spent %.2f of %.2f (%.0f%%, %s)\n",
				row.Category, row.Subcategory, row.Actual, row.Budget, row.UsagePct, row.Status)
		}
		b.WriteString("\n")
	}

	if len(snap.Goals) > 0 {
		b.WriteString("Savings goals:\n")
		for _, g := range snap.Goals {
			fmt.Fprintf(&b, "- %s (%s): collected %.2f of %.2f, %d days left, status %s, risk %d/100\n",
				g.Name, g.Owner, g.Collected, g.TotalNeeded, g.DaysLeft, g.Status, g.RiskScore)
		}
		b.WriteString("\n")
	}

	if len(snap.Obligations) > 0 {
		b.WriteString("Liabilities and upcoming payments:\n")
		for _, o := range snap.Obligations {
			fmt.Fprintf(&b, "- [%s] %s: %.2f due %s\n",
				o.Kind, o.Description, o.Amount, o.DueDate.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}

	if len(snap.ExpenseTree) > 0 {
		b.WriteString("Expenses by category (current vs previous period):\n")
		for _, node := range snap.ExpenseTree {
			fmt.Fprintf(&b, "- %s: %.2f (was %.2f)\n", node.Name, node.Current, node.Previous)
		}
		b.WriteString("\n")
	}

	if n := len(snap.Transactions); n > 0 {
		shown := n
		if shown > maxPromptTransactions {
			shown = maxPromptTransactions
		}
		fmt.Fprintf(&b, "Most recent transactions (%d of %d):\n", shown, n)
		for _, t := range snap.Transactions[n-shown:] {
			fmt.Fprintf(&b, "- %s | %s | %.2f | %s > %s | %s\n",
				t.Date.Format("2006-01-02"), t.Type, t.Amount, t.Category, t.Subcategory, t.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("Question: ")
	b.WriteString(strings.TrimSpace(question))
	b.WriteString("\n")
	return b.String()
}
