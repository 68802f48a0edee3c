package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dasbor/internal/cache"
	"dasbor/internal/core"
	ports "dasbor/internal/tables"

	"golang.org/x/sync/errgroup"
)

// MissingDataError reports a required table the backend could not serve.
type MissingDataError struct {
	Table string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("required table %q is missing or empty", e.Table)
}

// Assembler builds dashboard snapshots from the table source, caching the
// assembled payload per (period, filters) key.
type Assembler struct {
	store           ports.Reader
	cache           cache.Cache[*Snapshot]
	engine          *core.Engine
	maxPayloadBytes int

	now func() time.Time
}

// NewAssembler wires an assembler. cache may be nil to disable caching;
// maxPayloadBytes <= 0 disables the payload size guard.
func NewAssembler(store ports.Reader, c cache.Cache[*Snapshot], engine *core.Engine, maxPayloadBytes int) *Assembler {
	return &Assembler{
		store:           store,
		cache:           c,
		engine:          engine,
		maxPayloadBytes: maxPayloadBytes,
		now:             time.Now,
	}
}

type sourceTables struct {
	transactions core.RawTable
	wallets      []core.WalletConfig
	categories   []core.CategoryConfig
	goals        []core.GoalConfig
	scheduled    []core.ScheduledPayment
}

// Build assembles the snapshot for one period and filter set. A cached
// snapshot is returned as-is unless forceRefresh is set; a fresh build is
// written back to the cache when it fits the payload guard.
func (a *Assembler) Build(ctx context.Context, period string, f core.Filters, forceRefresh bool) (*Snapshot, error) {
	period = core.CanonicalPeriod(period)
	key := Key(period, f)

	if !forceRefresh && a.cache != nil {
		if snap, ok := a.cache.Get(key); ok {
			slog.DebugContext(ctx, "Dashboard served from cache", "cache_key", key)
			return snap, nil
		}
	}

	src, err := a.fetchTables(ctx)
	if err != nil {
		return nil, err
	}

	now := a.now()
	window := core.ResolvePeriod(period, f.StartDate, f.EndDate, now)
	prevWindow := core.ResolvePreviousPeriod(period, window.Start)

	// The previous window applies the same predicates as the current one,
	// minus the custom date bounds, so deltas compare like with like. The
	// full-history projection feeding balances, net worth, and goal pacing
	// keeps only the wallet-scope predicates: category and text filters
	// narrow the window views, never the cumulative ones.
	history := f
	history.StartDate, history.EndDate = nil, nil
	balanceScope := core.Filters{Wallet: f.Wallet, WalletOwner: f.WalletOwner}
	allWindow := core.ResolvePeriod(core.PeriodAll, nil, nil, now)

	current := core.ProjectTransactions(src.transactions, f, window)
	previous := core.ProjectTransactions(src.transactions, history, prevWindow)
	all := core.ProjectTransactions(src.transactions, balanceScope, allWindow)

	kpi := a.engine.SummarizeKPI(current)
	prevKPI := a.engine.SummarizeKPI(previous)
	wallets := a.engine.WalletStatus(all, src.wallets)
	tree := a.engine.ExpenseTree(current, previous)

	snap := &Snapshot{
		Period:         period,
		Window:         window,
		PreviousWindow: prevWindow,
		GeneratedAt:    now,
		CacheKey:       key,

		KPI:         kpi,
		PreviousKPI: prevKPI,
		TotalSaving: a.engine.TotalSaving(current),

		Wallets:      wallets,
		LiquidAssets: a.engine.LiquidAssets(wallets),
		NetWorth:     a.engine.NetWorth(all, window.End, f.WalletOwner),

		Budget:      a.engine.BudgetStatus(current, src.categories),
		Goals:       a.engine.GoalStatuses(current, all, src.goals, now),
		NetFlow:     a.engine.NetFlow(current),
		Ratios:      a.engine.Ratios(current, src.categories),
		Obligations: a.engine.Obligations(current, src.scheduled, window, now),
		Sankey:      a.engine.SankeyFlows(current),
		ExpenseTree: tree,

		Insights:     deriveInsights(tree, kpi, prevKPI),
		Transactions: current,
	}

	a.storeSnapshot(ctx, key, snap)

	slog.InfoContext(ctx, "Dashboard assembled",
		"period", period,
		"cache_key", key,
		"transactions", len(current),
		"wallets", len(wallets))
	return snap, nil
}

// Invalidate drops every cached snapshot. Called when the underlying ledger
// is known to have changed.
func (a *Assembler) Invalidate() {
	if a.cache != nil {
		a.cache.Flush()
	}
}

// fetchTables reads all five source tables concurrently. Transactions is
// required; the setup tables degrade to empty when absent.
func (a *Assembler) fetchTables(ctx context.Context) (*sourceTables, error) {
	var src sourceTables
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := a.store.GetTable(gctx, ports.Transactions)
		if err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				return &MissingDataError{Table: ports.Transactions}
			}
			return fmt.Errorf("fetch %s: %w", ports.Transactions, err)
		}
		src.transactions = t
		return nil
	})
	g.Go(func() error {
		t, err := a.optionalTable(gctx, ports.WalletSetup)
		if err != nil {
			return err
		}
		src.wallets = core.DecodeWalletSetup(t)
		return nil
	})
	g.Go(func() error {
		t, err := a.optionalTable(gctx, ports.CategorySetup)
		if err != nil {
			return err
		}
		src.categories = core.DecodeCategorySetup(t)
		return nil
	})
	g.Go(func() error {
		t, err := a.optionalTable(gctx, ports.GoalsSetup)
		if err != nil {
			return err
		}
		src.goals = core.DecodeGoalSetup(t)
		return nil
	})
	g.Go(func() error {
		t, err := a.optionalTable(gctx, ports.Scheduled)
		if err != nil {
			return err
		}
		src.scheduled = core.DecodeScheduled(t)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &src, nil
}

func (a *Assembler) optionalTable(ctx context.Context, name string) (core.RawTable, error) {
	t, err := a.store.GetTable(ctx, name)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			slog.WarnContext(ctx, "Setup table missing, continuing without it", "table", name)
			return core.RawTable{}, nil
		}
		return core.RawTable{}, fmt.Errorf("fetch %s: %w", name, err)
	}
	return t, nil
}

// storeSnapshot writes the snapshot back to the cache unless it exceeds the
// payload guard. Cache problems never fail a build.
func (a *Assembler) storeSnapshot(ctx context.Context, key string, snap *Snapshot) {
	if a.cache == nil {
		return
	}
	if a.maxPayloadBytes > 0 {
		payload, err := json.Marshal(snap)
		if err != nil {
			slog.WarnContext(ctx, "Snapshot not cacheable", "cache_key", key, "error", err)
			return
		}
		if len(payload) > a.maxPayloadBytes {
			slog.WarnContext(ctx, "Snapshot exceeds cache payload limit",
				"cache_key", key,
				"payload_bytes", len(payload),
				"limit_bytes", a.maxPayloadBytes)
			return
		}
	}
	a.cache.Set(key, snap)
}
