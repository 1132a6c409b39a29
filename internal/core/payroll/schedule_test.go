package payroll

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestWeeklySchedule_IsPayDate(t *testing.T) {
	t.Parallel()

	s := WeeklySchedule{}

	if !s.IsPayDate(date(2025, time.January, 10)) {
		t.Fatalf("expected 2025-01-10 (Friday) to be a pay date")
	}
	if s.IsPayDate(date(2025, time.January, 11)) {
		t.Fatalf("expected 2025-01-11 (Saturday) not to be a pay date")
	}
}

func TestWeeklySchedule_PayPeriod(t *testing.T) {
	t.Parallel()

	period := WeeklySchedule{}.PayPeriod(date(2025, time.January, 10))

	if !period.Start.Equal(date(2025, time.January, 4)) {
		t.Fatalf("unexpected period start: %v", period.Start)
	}
	if !period.End.Equal(date(2025, time.January, 10)) {
		t.Fatalf("unexpected period end: %v", period.End)
	}
	if !period.Contains(date(2025, time.January, 4)) || !period.Contains(date(2025, time.January, 10)) {
		t.Fatalf("expected period to contain both boundaries")
	}
	if period.Contains(date(2025, time.January, 3)) {
		t.Fatalf("expected period not to contain the day before the start")
	}
}

func TestMonthlySchedule_IsPayDate(t *testing.T) {
	t.Parallel()

	s := MonthlySchedule{}

	if !s.IsPayDate(date(2028, time.February, 29)) {
		t.Fatalf("expected 2028-02-29 (leap-year month end) to be a pay date")
	}
	if s.IsPayDate(date(2028, time.February, 28)) {
		t.Fatalf("expected 2028-02-28 not to be a pay date in a leap year")
	}
	if !s.IsPayDate(date(2025, time.March, 31)) {
		t.Fatalf("expected 2025-03-31 to be a pay date")
	}
	if s.IsPayDate(date(2025, time.March, 15)) {
		t.Fatalf("expected 2025-03-15 not to be a pay date")
	}
}

func TestMonthlySchedule_PayPeriod(t *testing.T) {
	t.Parallel()

	period := MonthlySchedule{}.PayPeriod(date(2025, time.March, 31))

	if !period.Start.Equal(date(2025, time.March, 1)) {
		t.Fatalf("unexpected period start: %v", period.Start)
	}
	if !period.End.Equal(date(2025, time.March, 31)) {
		t.Fatalf("unexpected period end: %v", period.End)
	}
}

func TestBiweeklySchedule_IsPayDate(t *testing.T) {
	t.Parallel()

	s := BiweeklySchedule{}

	if !s.IsPayDate(date(2025, time.January, 10)) {
		t.Fatalf("expected 2025-01-10 (Friday, even ISO week) to be a pay date")
	}
	if s.IsPayDate(date(2025, time.January, 17)) {
		t.Fatalf("expected 2025-01-17 (Friday, odd ISO week) not to be a pay date")
	}
	if s.IsPayDate(date(2025, time.January, 9)) {
		t.Fatalf("expected a Thursday not to be a pay date")
	}
}

func TestBiweeklySchedule_PayPeriod(t *testing.T) {
	t.Parallel()

	period := BiweeklySchedule{}.PayPeriod(date(2025, time.January, 10))

	if !period.Start.Equal(date(2024, time.December, 28)) {
		t.Fatalf("unexpected period start: %v", period.Start)
	}
	if !period.End.Equal(date(2025, time.January, 10)) {
		t.Fatalf("unexpected period end: %v", period.End)
	}
}
