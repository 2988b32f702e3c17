package allowance

import "tripbook/internal/domain"

// DomesticBands holds the flat domestic per-diem rates by hours present.
// Below 5 hours no allowance is due.
type DomesticBands struct {
	Short  float64 // 5-12 hours
	Medium float64 // over 12 up to 18 hours
	Long   float64 // over 18 hours
}

// MealPercentages are the fractions of the full-day rate deducted when the
// employer provided the meal.
type MealPercentages struct {
	Breakfast float64
	Lunch     float64
	Dinner    float64
}

// RateTable is the immutable tariff configuration the engine computes from.
// Build one with DefaultRates or supply an alternate table (e.g. a yearly
// update) without touching the engine.
type RateTable struct {
	HomeCountry    string
	Currency       string
	Domestic       DomesticBands
	ForeignDaily   map[string]float64
	ForeignDefault float64
	Meals          MealPercentages
	AmortPerKm     map[domain.TransportType]float64
}

// DefaultRates returns the current tariff: Slovak domestic bands, per-country
// EUR daily rates with a 45.00 fallback, statutory meal percentages and
// per-km compensation for own car (AUV) and motorcycle (MOV).
func DefaultRates() RateTable {
	return RateTable{
		HomeCountry: "SK",
		Currency:    "EUR",
		Domestic: DomesticBands{
			Short:  7.80,
			Medium: 11.60,
			Long:   17.40,
		},
		ForeignDaily: map[string]float64{
			"AT": 45.00,
			"BE": 45.00,
			"CH": 80.00,
			"CZ": 35.00,
			"DE": 45.00,
			"DK": 60.00,
			"ES": 43.00,
			"FR": 45.00,
			"GB": 37.50,
			"HR": 40.00,
			"HU": 39.00,
			"IT": 45.00,
			"NL": 45.00,
			"PL": 37.00,
			"SI": 38.00,
			"UA": 37.00,
		},
		ForeignDefault: 45.00,
		Meals: MealPercentages{
			Breakfast: 0.25,
			Lunch:     0.40,
			Dinner:    0.35,
		},
		AmortPerKm: map[domain.TransportType]float64{
			domain.TransportOwnCar:        0.227,
			domain.TransportOwnMotorcycle: 0.063,
		},
	}
}

// ForeignRate looks up the daily rate for a country code, falling back to
// the default rate for unrecognized codes.
func (rt RateTable) ForeignRate(country string) float64 {
	if rate, ok := rt.ForeignDaily[country]; ok {
		return rate
	}
	return rt.ForeignDefault
}
