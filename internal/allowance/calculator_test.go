package allowance

import (
	"testing"

	"tripbook/internal/domain/models"
)

func TestDailyAllowanceForeignHalfDay(t *testing.T) {
	rt := DefaultRates()
	row := rt.DailyAllowance(mustTime(t, "2024-05-01 00:00:00"), "AT", 8.0, models.MealFlags{})

	if row.RatePercentage != 50 {
		t.Fatalf("expected 50%%, got %d", row.RatePercentage)
	}
	if row.BaseRate != 45.00 {
		t.Fatalf("expected base rate 45.00, got %v", row.BaseRate)
	}
	if row.GrossAmount != 22.50 {
		t.Fatalf("expected gross 22.50, got %v", row.GrossAmount)
	}
	if row.NetAmount != 22.50 {
		t.Fatalf("expected net 22.50, got %v", row.NetAmount)
	}
	if row.Currency != "EUR" {
		t.Fatalf("expected EUR, got %s", row.Currency)
	}
}

func TestDailyAllowanceForeignPercentageTiers(t *testing.T) {
	rt := DefaultRates()
	cases := []struct {
		hours float64
		pct   int
	}{
		{0, 0},
		{0.1, 25},
		{6, 25},
		{6.1, 50},
		{12, 50},
		{12.1, 100},
		{24, 100},
	}
	for _, c := range cases {
		row := rt.DailyAllowance(mustTime(t, "2024-05-01 00:00:00"), "CZ", c.hours, models.MealFlags{})
		if row.RatePercentage != c.pct {
			t.Fatalf("hours %v: expected %d%%, got %d%%", c.hours, c.pct, row.RatePercentage)
		}
	}
}

func TestDailyAllowanceForeignUnknownCountryDefaultRate(t *testing.T) {
	rt := DefaultRates()
	row := rt.DailyAllowance(mustTime(t, "2024-05-01 00:00:00"), "XX", 24, models.MealFlags{})
	if row.BaseRate != 45.00 {
		t.Fatalf("unknown country should use default rate, got %v", row.BaseRate)
	}
}

func TestDailyAllowanceRoundsUpToCents(t *testing.T) {
	rt := DefaultRates()
	// GB 37.50 at 25% = 9.375, must round up to 9.38.
	row := rt.DailyAllowance(mustTime(t, "2024-05-01 00:00:00"), "GB", 3.0, models.MealFlags{})
	if row.GrossAmount != 9.38 {
		t.Fatalf("expected ceiling 9.38, got %v", row.GrossAmount)
	}
}

func TestDailyAllowanceDomesticBands(t *testing.T) {
	rt := DefaultRates()
	cases := []struct {
		hours float64
		gross float64
	}{
		{4.9, 0},
		{5, 7.80},
		{12, 7.80},
		{12.1, 11.60},
		{18, 11.60},
		{18.1, 17.40},
	}
	for _, c := range cases {
		row := rt.DailyAllowance(mustTime(t, "2024-05-01 00:00:00"), "SK", c.hours, models.MealFlags{})
		if row.GrossAmount != c.gross {
			t.Fatalf("hours %v: expected gross %v, got %v", c.hours, c.gross, row.GrossAmount)
		}
		if row.RatePercentage != 0 {
			t.Fatalf("domestic day must not carry a percentage, got %d", row.RatePercentage)
		}
	}
}

func TestMealDeductionsForeignPartialDay(t *testing.T) {
	rt := DefaultRates()
	// Half day in AT with lunch provided: deduction comes off the full
	// 100% base rate, not the scaled gross.
	row := rt.DailyAllowance(mustTime(t, "2024-05-01 00:00:00"), "AT", 8.0, models.MealFlags{Lunch: true})
	if row.LunchDeduction != 18.00 {
		t.Fatalf("expected lunch deduction 18.00 (40%% of 45), got %v", row.LunchDeduction)
	}
	if row.NetAmount != 4.50 {
		t.Fatalf("expected net 4.50, got %v", row.NetAmount)
	}
}

func TestMealDeductionsDomesticUseBandGross(t *testing.T) {
	rt := DefaultRates()
	row := rt.DailyAllowance(mustTime(t, "2024-05-01 00:00:00"), "SK", 10, models.MealFlags{Breakfast: true})
	if row.BreakfastDeduction != 1.95 {
		t.Fatalf("expected breakfast deduction 1.95 (25%% of 7.80), got %v", row.BreakfastDeduction)
	}
	if row.NetAmount != 5.85 {
		t.Fatalf("expected net 5.85, got %v", row.NetAmount)
	}
}

func TestNetAmountNeverNegative(t *testing.T) {
	rt := DefaultRates()
	// With a band rate whose per-meal ceilings sum above the gross, the
	// raw net is negative and must clamp to zero.
	rt.Domestic.Short = 7.77

	row := rt.DailyAllowance(mustTime(t, "2024-05-01 00:00:00"), "SK", 10, models.MealFlags{Breakfast: true, Lunch: true, Dinner: true})
	deductions := row.BreakfastDeduction + row.LunchDeduction + row.DinnerDeduction
	if deductions <= row.GrossAmount {
		t.Fatalf("test setup: deductions %v should exceed gross %v", deductions, row.GrossAmount)
	}
	if row.NetAmount != 0 {
		t.Fatalf("net must clamp at 0, got %v", row.NetAmount)
	}
}

func TestDailyAllowanceZeroHoursDomestic(t *testing.T) {
	rt := DefaultRates()
	row := rt.DailyAllowance(mustTime(t, "2024-05-01 00:00:00"), "SK", 4.9, models.MealFlags{Breakfast: true, Lunch: true, Dinner: true})
	if row.GrossAmount != 0 || row.NetAmount != 0 {
		t.Fatalf("sub-5h domestic day must pay nothing, got gross %v net %v", row.GrossAmount, row.NetAmount)
	}
}
