package allowance

import (
	"time"

	"tripbook/internal/domain/models"
)

const dateLayout = "2006-01-02"

// DailyAllowance computes the per-diem row for one calendar day. Pure
// function of its inputs and the rate table.
//
// Foreign days scale the country's daily rate by hours present (25/50/100%).
// Domestic days pay a flat band rate. Meal deductions come off the full-day
// rate on foreign days even when the day itself is scaled down; on domestic
// days the band gross is the full-day value.
func (rt RateTable) DailyAllowance(date time.Time, country string, hours float64, meals models.MealFlags) models.TripAllowance {
	row := models.TripAllowance{
		Date:     date.Format(dateLayout),
		Country:  country,
		Hours:    hours,
		Currency: rt.Currency,
	}

	var fullDayRate float64
	if country != rt.HomeCountry {
		row.BaseRate = rt.ForeignRate(country)
		row.RatePercentage = foreignPercentage(hours)
		row.GrossAmount = CeilCents(row.BaseRate * float64(row.RatePercentage) / 100)
		fullDayRate = row.BaseRate
	} else {
		row.BaseRate = rt.domesticBand(hours)
		row.GrossAmount = row.BaseRate
		fullDayRate = row.GrossAmount
	}

	if meals.Breakfast {
		row.BreakfastDeduction = CeilCents(fullDayRate * rt.Meals.Breakfast)
	}
	if meals.Lunch {
		row.LunchDeduction = CeilCents(fullDayRate * rt.Meals.Lunch)
	}
	if meals.Dinner {
		row.DinnerDeduction = CeilCents(fullDayRate * rt.Meals.Dinner)
	}

	net := CeilCents(row.GrossAmount - row.BreakfastDeduction - row.LunchDeduction - row.DinnerDeduction)
	if net < 0 {
		net = 0
	}
	row.NetAmount = net
	return row
}

func foreignPercentage(hours float64) int {
	switch {
	case hours <= 0:
		return 0
	case hours <= 6:
		return 25
	case hours <= 12:
		return 50
	default:
		return 100
	}
}

func (rt RateTable) domesticBand(hours float64) float64 {
	switch {
	case hours < 5:
		return 0
	case hours <= 12:
		return rt.Domestic.Short
	case hours <= 18:
		return rt.Domestic.Medium
	default:
		return rt.Domestic.Long
	}
}
