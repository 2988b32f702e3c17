package allowance

import (
	"testing"
	"time"

	"tripbook/internal/domain"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local)
	if err != nil {
		t.Fatalf("bad time literal %q: %v", s, err)
	}
	return ts
}

func TestSplitDaysSingleDay(t *testing.T) {
	days, err := SplitDays(mustTime(t, "2024-05-10 08:00:00"), mustTime(t, "2024-05-10 17:30:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if days[0].Hours != 9.5 {
		t.Fatalf("expected 9.5 hours, got %v", days[0].Hours)
	}
	if days[0].Date.Format("2006-01-02") != "2024-05-10" {
		t.Fatalf("wrong date %v", days[0].Date)
	}
}

func TestSplitDaysFullMiddleDay(t *testing.T) {
	days, err := SplitDays(mustTime(t, "2024-05-01 18:00:00"), mustTime(t, "2024-05-03 10:00:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if days[0].Hours != 6.0 {
		t.Fatalf("departure day: expected 6.0 hours, got %v", days[0].Hours)
	}
	if days[1].Hours != 24.0 {
		t.Fatalf("middle day: expected 24.0 hours, got %v", days[1].Hours)
	}
	if days[2].Hours != 10.0 {
		t.Fatalf("return day: expected 10.0 hours, got %v", days[2].Hours)
	}
}

func TestSplitDaysReturnBeforeDeparture(t *testing.T) {
	_, err := SplitDays(mustTime(t, "2024-05-02 08:00:00"), mustTime(t, "2024-05-01 08:00:00"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSplitDaysTenthHourRounding(t *testing.T) {
	// 08:00 -> 09:15 is 1.25h; rounds to 1.3 (one decimal).
	days, err := SplitDays(mustTime(t, "2024-05-10 08:00:00"), mustTime(t, "2024-05-10 09:15:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days[0].Hours != 1.3 {
		t.Fatalf("expected 1.3 hours, got %v", days[0].Hours)
	}
}
