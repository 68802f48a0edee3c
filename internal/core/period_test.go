package core

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestResolvePeriodCurrentMonth(t *testing.T) {
	w := ResolvePeriod(PeriodCurrentMonth, nil, nil, testNow)
	wantStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 3, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if !w.Start.Equal(wantStart) || !w.End.Equal(wantEnd) {
		t.Fatalf("current_month = [%v, %v]", w.Start, w.End)
	}
}

func TestResolvePeriodFallback(t *testing.T) {
	got := ResolvePeriod("bogus", nil, nil, testNow)
	want := ResolvePeriod(PeriodCurrentMonth, nil, nil, testNow)
	if !got.Start.Equal(want.Start) || !got.End.Equal(want.End) {
		t.Fatalf("unrecognized token should resolve as current_month")
	}
	if CanonicalPeriod("bogus") != PeriodCurrentMonth {
		t.Fatalf("CanonicalPeriod should default to current_month")
	}
}

func TestResolvePeriodTokens(t *testing.T) {
	cases := []struct {
		token     string
		wantStart time.Time
		wantEndD  time.Time // day of the end bound
	}{
		{PeriodToday,
			time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{PeriodYesterday,
			time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)},
		// 2024-03-15 is a Friday; Sunday start is 2024-03-10.
		{PeriodThisWeek,
			time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{PeriodLast7Days,
			time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{PeriodLastMonth,
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{PeriodCurrentYear,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{PeriodLastYear,
			time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		w := ResolvePeriod(tc.token, nil, nil, testNow)
		if !w.Start.Equal(tc.wantStart) {
			t.Fatalf("%s start = %v, want %v", tc.token, w.Start, tc.wantStart)
		}
		wantEnd := endOfDay(tc.wantEndD)
		if !w.End.Equal(wantEnd) {
			t.Fatalf("%s end = %v, want %v", tc.token, w.End, wantEnd)
		}
	}
}

func TestResolvePeriodCustom(t *testing.T) {
	start := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 20, 3, 0, 0, 0, time.UTC)
	w := ResolvePeriod(PeriodCustom, &start, &end, testNow)
	if !w.Start.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("custom start = %v", w.Start)
	}
	if !w.End.Equal(endOfDay(end)) {
		t.Fatalf("custom end = %v", w.End)
	}
}

func TestResolvePeriodAll(t *testing.T) {
	w := ResolvePeriod(PeriodAll, nil, nil, testNow)
	if w.Start.Year() != 1900 || w.End.Year() != 9999 {
		t.Fatalf("all = [%v, %v]", w.Start, w.End)
	}
}

func TestResolvePreviousPeriodMonthSymmetry(t *testing.T) {
	currentStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	w := ResolvePreviousPeriod(PeriodCurrentMonth, currentStart)
	if !w.Start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("previous start = %v", w.Start)
	}
	wantEnd := time.Date(2024, 2, 29, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if !w.End.Equal(wantEnd) {
		t.Fatalf("previous end = %v, want %v", w.End, wantEnd)
	}
}

func TestResolvePreviousPeriodDayAndWeek(t *testing.T) {
	currentStart := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	day := ResolvePreviousPeriod(PeriodToday, currentStart)
	if !day.Start.Equal(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)) || !day.End.Equal(endOfDay(day.Start)) {
		t.Fatalf("previous day = [%v, %v]", day.Start, day.End)
	}

	week := ResolvePreviousPeriod(PeriodLast7Days, currentStart)
	if !week.Start.Equal(time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("previous week start = %v", week.Start)
	}
	if !week.End.Equal(endOfDay(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC))) {
		t.Fatalf("previous week end = %v", week.End)
	}
}

func TestResolvePreviousPeriodYear(t *testing.T) {
	currentStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	w := ResolvePreviousPeriod(PeriodCurrentYear, currentStart)
	if !w.Start.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("previous year start = %v", w.Start)
	}
	if !w.End.Equal(endOfDay(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))) {
		t.Fatalf("previous year end = %v", w.End)
	}
}

func TestResolvePreviousPeriodDegenerate(t *testing.T) {
	currentStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, token := range []string{PeriodAll, PeriodCustom} {
		w := ResolvePreviousPeriod(token, currentStart)
		if !w.IsDegenerate() {
			t.Fatalf("%s previous window should be degenerate, got [%v, %v]", token, w.Start, w.End)
		}
	}
}
