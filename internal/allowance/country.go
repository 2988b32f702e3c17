package allowance

import (
	"sort"
	"time"

	"tripbook/internal/domain"
	"tripbook/internal/domain/models"
)

// CountryForDay assigns a country to one calendar day of a trip.
//
// Domestic trips always resolve to the home country. Foreign trips without
// recorded crossings resolve to the destination country. With crossings, the
// day belongs to the country_to of the last crossing at or before noon of
// that day, so a crossing logged in the morning already counts for the day
// it happened on.
func (rt RateTable) CountryForDay(date time.Time, tripType domain.TripType, destination string, crossings []models.BorderCrossing) string {
	if tripType == domain.TripDomestic {
		return rt.HomeCountry
	}
	if len(crossings) == 0 {
		if destination != "" {
			return destination
		}
		return rt.HomeCountry
	}

	sorted := make([]models.BorderCrossing, len(crossings))
	copy(sorted, crossings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CrossingDate.Before(sorted[j].CrossingDate)
	})

	noon := civilDate(date).Add(12 * time.Hour)
	country := rt.HomeCountry
	for _, c := range sorted {
		if c.CrossingDate.After(noon) {
			break
		}
		country = c.CountryTo
	}
	return country
}
