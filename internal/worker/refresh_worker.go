package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dasbor/internal/amqp"
	"dasbor/internal/core"
	"dasbor/internal/dashboard"
)

// defaultWarmPeriods are the periods rebuilt when a refresh message does not
// name one. They cover every view the dashboard opens with.
var defaultWarmPeriods = []string{
	core.PeriodCurrentMonth,
	core.PeriodLastMonth,
	core.PeriodCurrentYear,
}

// RefreshWorker rebuilds cached dashboard snapshots, either on demand from
// refresh messages or on a fixed schedule as a safety net for lost messages.
type RefreshWorker struct {
	assembler *dashboard.Assembler
	periods   []string
}

func NewRefreshWorker(assembler *dashboard.Assembler, periods []string) *RefreshWorker {
	if len(periods) == 0 {
		periods = defaultWarmPeriods
	}
	return &RefreshWorker{assembler: assembler, periods: periods}
}

// HandleRefreshMessage rebuilds the period named in the message, or every
// warm period when the message names none.
func (w *RefreshWorker) HandleRefreshMessage(ctx context.Context, msg *amqp.RefreshMessage) error {
	slog.InfoContext(ctx, "Processing refresh message",
		"period", msg.Period,
		"reason", msg.Reason)

	if msg.Period != "" {
		return w.refresh(ctx, core.CanonicalPeriod(msg.Period))
	}

	w.assembler.Invalidate()
	return w.WarmAll(ctx)
}

// WarmAll rebuilds every configured period. Individual failures are logged
// and the first one is returned after the rest have run, so one bad period
// does not starve the others.
func (w *RefreshWorker) WarmAll(ctx context.Context) error {
	var firstErr error
	for _, period := range w.periods {
		if err := w.refresh(ctx, period); err != nil {
			slog.ErrorContext(ctx, "Failed to warm period", "period", period, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Run warms all periods once at startup, then on every tick until the
// context ends.
func (w *RefreshWorker) Run(ctx context.Context, interval time.Duration) error {
	if err := w.WarmAll(ctx); err != nil {
		slog.WarnContext(ctx, "Startup warm-up incomplete", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Stopping periodic refresh", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			if err := w.WarmAll(ctx); err != nil {
				slog.ErrorContext(ctx, "Periodic warm-up incomplete", "error", err)
			}
		}
	}
}

func (w *RefreshWorker) refresh(ctx context.Context, period string) error {
	start := time.Now()
	snap, err := w.assembler.Build(ctx, period, core.Filters{}, true)
	if err != nil {
		return fmt.Errorf("rebuild %s: %w", period, err)
	}

	slog.InfoContext(ctx, "Snapshot rebuilt",
		"period", period,
		"transactions", len(snap.Transactions),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
