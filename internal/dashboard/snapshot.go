package dashboard

import (
	"fmt"
	"strings"
	"time"

	"dasbor/internal/core"
)

// Snapshot is one fully assembled dashboard payload: every aggregate for the
// requested window plus the previous-window comparison inputs.
type Snapshot struct {
	Period         string            `json:"period"`
	Window         core.PeriodWindow `json:"window"`
	PreviousWindow core.PeriodWindow `json:"previousWindow"`
	GeneratedAt    time.Time         `json:"generatedAt"`
	CacheKey       string            `json:"cacheKey"`

	KPI         core.KPISummary `json:"kpi"`
	PreviousKPI core.KPISummary `json:"previousKpi"`
	TotalSaving float64         `json:"totalSaving"`

	Wallets      []core.WalletBalance  `json:"wallets"`
	LiquidAssets float64               `json:"liquidAssets"`
	NetWorth     core.NetWorthSnapshot `json:"netWorth"`

	Budget      []core.BudgetRow       `json:"budget"`
	Goals       []core.GoalStatus      `json:"goals"`
	NetFlow     []core.NetFlowPoint    `json:"netFlow"`
	Ratios      []core.RatioBreakdown  `json:"ratios"`
	Obligations []core.ObligationEntry `json:"obligations"`
	Sankey      []core.SankeyEdge      `json:"sankey"`
	ExpenseTree []core.ExpenseNode     `json:"expenseTree"`

	Insights     Insights           `json:"insights"`
	Transactions []core.Transaction `json:"transactions"`
}

// Key builds the cache key for one (period, filters) combination. Every
// filter field participates so two requests share an entry only when their
// assembled snapshots would be identical.
func Key(period string, f core.Filters) string {
	parts := []string{
		core.CanonicalPeriod(period),
		f.Wallet,
		f.WalletOwner,
		f.Purpose,
		f.Category,
		f.Subcategory,
		f.Note,
		f.Description,
		keyDate(f.StartDate),
		keyDate(f.EndDate),
	}
	return fmt.Sprintf("dashboard|%s", strings.Join(parts, "|"))
}

func keyDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
