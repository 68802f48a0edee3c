package core

import "time"

// Period tokens accepted by ResolvePeriod. Anything unrecognized falls back
// to PeriodCurrentMonth.
const (
	PeriodCustom       = "custom"
	PeriodAll          = "all"
	PeriodToday        = "today"
	PeriodYesterday    = "yesterday"
	PeriodThisWeek     = "this_week"
	PeriodLast7Days    = "last_7_days"
	PeriodLastMonth    = "last_month"
	PeriodCurrentYear  = "current_year"
	PeriodLastYear     = "last_year"
	PeriodCurrentMonth = "current_month"
)

// CanonicalPeriod normalizes a period token, mapping empty or unrecognized
// tokens to the current-month default.
func CanonicalPeriod(token string) string {
	switch token {
	case PeriodCustom, PeriodAll, PeriodToday, PeriodYesterday, PeriodThisWeek,
		PeriodLast7Days, PeriodLastMonth, PeriodCurrentYear, PeriodLastYear,
		PeriodCurrentMonth:
		return token
	default:
		return PeriodCurrentMonth
	}
}

// ReportingZone is the fixed timezone used for calendar bucketing (month
// keys), regardless of the timezone a row's own date carries.
var ReportingZone = time.FixedZone("UTC+7", 7*60*60)

// PeriodWindow is an inclusive date range. End is always normalized to the
// last millisecond of its day, except for degenerate previous-period windows.
type PeriodWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w PeriodWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// IsDegenerate reports whether the window carries no meaningful span. A
// degenerate window signals "no comparison defined" rather than an error.
func (w PeriodWindow) IsDegenerate() bool { return !w.End.After(w.Start) }

// ResolvePeriod maps a period token (plus optional custom bounds) to an
// inclusive window anchored at now. Custom bounds are expanded to full-day
// boundaries; a missing custom bound falls back to now's day.
func ResolvePeriod(token string, customStart, customEnd *time.Time, now time.Time) PeriodWindow {
	today := startOfDay(now)
	switch token {
	case PeriodCustom:
		start, end := today, now
		if customStart != nil {
			start = *customStart
		}
		if customEnd != nil {
			end = *customEnd
		}
		return PeriodWindow{Start: startOfDay(start), End: endOfDay(end)}
	case PeriodAll:
		return PeriodWindow{
			Start: time.Date(1900, 1, 1, 0, 0, 0, 0, now.Location()),
			End:   endOfDay(time.Date(9999, 12, 31, 0, 0, 0, 0, now.Location())),
		}
	case PeriodToday:
		return PeriodWindow{Start: today, End: endOfDay(now)}
	case PeriodYesterday:
		y := today.AddDate(0, 0, -1)
		return PeriodWindow{Start: y, End: endOfDay(y)}
	case PeriodThisWeek:
		// Sunday-start week.
		start := today.AddDate(0, 0, -int(now.Weekday()))
		return PeriodWindow{Start: start, End: endOfDay(now)}
	case PeriodLast7Days:
		return PeriodWindow{Start: today.AddDate(0, 0, -6), End: endOfDay(now)}
	case PeriodLastMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
		last := first.AddDate(0, 1, -1)
		return PeriodWindow{Start: first, End: endOfDay(last)}
	case PeriodCurrentYear:
		return PeriodWindow{
			Start: time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()),
			End:   endOfDay(now),
		}
	case PeriodLastYear:
		return PeriodWindow{
			Start: time.Date(now.Year()-1, 1, 1, 0, 0, 0, 0, now.Location()),
			End:   endOfDay(time.Date(now.Year()-1, 12, 31, 0, 0, 0, 0, now.Location())),
		}
	default: // PeriodCurrentMonth and anything unrecognized
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return PeriodWindow{Start: first, End: endOfDay(first.AddDate(0, 1, -1))}
	}
}

// ResolvePreviousPeriod derives the symmetric window immediately preceding a
// current window's start. For "all" and "custom" no comparison is defined and
// a degenerate zero-length window is returned.
func ResolvePreviousPeriod(token string, currentStart time.Time) PeriodWindow {
	boundary := currentStart.Add(-time.Millisecond)
	switch token {
	case PeriodToday, PeriodYesterday:
		day := startOfDay(boundary)
		return PeriodWindow{Start: day, End: endOfDay(day)}
	case PeriodThisWeek, PeriodLast7Days:
		end := startOfDay(boundary)
		return PeriodWindow{Start: end.AddDate(0, 0, -6), End: endOfDay(end)}
	case PeriodCurrentMonth, PeriodLastMonth:
		first := time.Date(boundary.Year(), boundary.Month(), 1, 0, 0, 0, 0, boundary.Location())
		return PeriodWindow{Start: first, End: endOfDay(boundary)}
	case PeriodCurrentYear, PeriodLastYear:
		first := time.Date(boundary.Year(), 1, 1, 0, 0, 0, 0, boundary.Location())
		return PeriodWindow{Start: first, End: endOfDay(boundary)}
	default: // all, custom
		return PeriodWindow{Start: currentStart, End: currentStart}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
