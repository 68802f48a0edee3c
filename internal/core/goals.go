package core

import (
	"math"
	"strings"
	"time"
)

// Goal status labels, ordered from worst to best pacing. Deadline-passed and
// no-activity branches take priority over the gap buckets.
const (
	GoalOffTrack       = "Off Track"
	GoalAtRisk         = "At Risk"
	GoalSlightlyBehind = "Slightly Behind"
	GoalOnTrack        = "On Track"
	GoalAhead          = "Ahead"
	GoalCompleted      = "Completed"
	GoalOverfunded     = "Overfunded"
	GoalOverdue        = "Overdue"
	GoalFailed         = "Failed"
	GoalNoActivity     = "No Activity"
)

// goalCategory is the ledger category that marks goal contributions.
const goalCategory = "Saving/Investment"

// GoalStatus is the derived pacing view of one goal.
type GoalStatus struct {
	Name             string     `json:"name"`
	Owner            string     `json:"owner"`
	TotalNeeded      float64    `json:"totalNeeded"`
	Collected        float64    `json:"collected"`
	TargetCumulative float64    `json:"targetCumulative"`
	GapAmount        float64    `json:"gapAmount"`
	GapPct           float64    `json:"gapPct"`
	RemainingAmount  float64    `json:"remainingAmount"`
	ElapsedRatio     float64    `json:"elapsedRatio"`
	DaysLeft         int        `json:"daysLeft"`
	PaceNeededPerDay float64    `json:"paceNeededPerDay"`
	ActualPacePerDay float64    `json:"actualPacePerDay"`
	ProjectedFinish  *time.Time `json:"projectedFinish,omitempty"`
	RiskScore        int        `json:"riskScore"`
	Status           string     `json:"status"`
}

// GoalStatuses evaluates every configured goal. Collected sums positive
// contributions inside the active window; the goal's start date is the
// earliest positive contribution across ALL history (defaulting to today),
// so pacing does not reset when the user narrows the period.
func (e *Engine) GoalStatuses(windowTxs, allTxs []Transaction, goals []GoalConfig, today time.Time) []GoalStatus {
	out := make([]GoalStatus, 0, len(goals))
	for _, g := range goals {
		out = append(out, e.goalStatus(windowTxs, allTxs, g, today))
	}
	return out
}

func matchesGoal(t Transaction, g GoalConfig) bool {
	return strings.EqualFold(strings.TrimSpace(t.Purpose), strings.TrimSpace(g.Owner)) &&
		strings.EqualFold(strings.TrimSpace(t.Category), goalCategory) &&
		strings.EqualFold(strings.TrimSpace(t.Subcategory), strings.TrimSpace(g.Name))
}

func (e *Engine) goalStatus(windowTxs, allTxs []Transaction, g GoalConfig, today time.Time) GoalStatus {
	st := GoalStatus{Name: g.Name, Owner: g.Owner, TotalNeeded: g.TotalNeeded}

	for _, t := range windowTxs {
		if matchesGoal(t, g) && t.Amount > 0 {
			st.Collected += t.Amount
		}
	}

	start := time.Time{}
	for _, t := range allTxs {
		if !matchesGoal(t, g) || !isPositiveContribution(t) {
			continue
		}
		if start.IsZero() || t.Date.Before(start) {
			start = t.Date
		}
	}
	if start.IsZero() {
		start = today
	}

	elapsedDays := today.Sub(start).Hours() / 24
	if !g.Deadline.IsZero() {
		span := g.Deadline.Sub(start).Hours() / 24
		if span > 0 {
			st.ElapsedRatio = clamp(elapsedDays/span, 0, 1)
		} else if elapsedDays > 0 {
			st.ElapsedRatio = 1
		}
		st.DaysLeft = int(math.Ceil(g.Deadline.Sub(today).Hours() / 24))
		if st.DaysLeft < 0 {
			st.DaysLeft = 0
		}
	}

	st.TargetCumulative = g.TotalNeeded * st.ElapsedRatio
	st.GapAmount = st.Collected - st.TargetCumulative
	if g.TotalNeeded > 0 {
		st.GapPct = st.GapAmount / g.TotalNeeded
	}
	st.RemainingAmount = math.Max(0, g.TotalNeeded-st.Collected)

	if st.DaysLeft > 0 {
		st.PaceNeededPerDay = st.RemainingAmount / float64(st.DaysLeft)
	} else {
		st.PaceNeededPerDay = st.RemainingAmount
	}
	st.ActualPacePerDay = st.Collected / math.Max(1, elapsedDays)

	switch {
	case st.RemainingAmount == 0 && g.TotalNeeded > 0:
		t := today
		st.ProjectedFinish = &t
	case st.ActualPacePerDay > 0 && st.RemainingAmount > 0:
		days := st.RemainingAmount / st.ActualPacePerDay
		t := today.Add(time.Duration(days * 24 * float64(time.Hour)))
		st.ProjectedFinish = &t
	}

	st.Status = e.goalStatusLabel(g, st, today)
	if g.TotalNeeded > 0 {
		st.RiskScore = goalRiskScore(st, g)
	}
	return st
}

// goalStatusLabel applies the status branches in priority order.
func (e *Engine) goalStatusLabel(g GoalConfig, st GoalStatus, today time.Time) string {
	if g.TotalNeeded == 0 {
		if st.Collected > 0 {
			return GoalCompleted
		}
		return GoalOnTrack
	}
	pct := st.Collected / g.TotalNeeded
	switch {
	case pct >= 1.10:
		return GoalOverfunded
	case pct >= 1.00:
		return GoalCompleted
	}
	if !g.Deadline.IsZero() && today.After(g.Deadline) {
		switch {
		case pct >= 0.95:
			return GoalCompleted
		case pct >= 0.80:
			return GoalOverdue
		default:
			return GoalFailed
		}
	}
	if st.Collected == 0 && st.ElapsedRatio > 0.25 {
		return GoalNoActivity
	}
	switch {
	case st.GapPct >= 0.05:
		return GoalAhead
	case st.GapPct > -0.05:
		return GoalOnTrack
	case st.GapPct > -0.15:
		return GoalSlightlyBehind
	case st.GapPct > -0.30:
		return GoalAtRisk
	default:
		return GoalOffTrack
	}
}

// goalRiskScore blends funding shortfall, time pressure, and the required
// versus actual pace into a 0-100 score.
func goalRiskScore(st GoalStatus, g GoalConfig) int {
	pct := st.Collected / g.TotalNeeded
	paceFactor := 0.0
	if st.ActualPacePerDay > 0 {
		paceFactor = math.Min(st.PaceNeededPerDay/st.ActualPacePerDay, 1)
	}
	score := 60*(1-pct) + 20*(1-st.ElapsedRatio) + 20*paceFactor
	return int(math.Round(clamp(score, 0, 100)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
