package allowance

import (
	"tripbook/internal/domain"
	"tripbook/internal/domain/models"
)

// Amortization converts linked personal-vehicle trip distances into a
// reimbursable amount. Transport modes without a per-km rate (anything but
// own car/motorcycle) yield zero regardless of distance. A trip without a
// recorded distance falls back to the odometer difference when both readings
// exist.
func (rt RateTable) Amortization(trips []models.VehicleTrip, transport domain.TransportType) float64 {
	rate := rt.AmortPerKm[transport]
	if rate == 0 {
		return 0
	}

	var totalKm float64
	for _, t := range trips {
		km := t.DistanceKm
		if km <= 0 && t.OdometerEnd > t.OdometerStart && t.OdometerStart > 0 {
			km = t.OdometerEnd - t.OdometerStart
		}
		if km > 0 {
			totalKm += km
		}
	}
	return CeilCents(totalKm * rate)
}
