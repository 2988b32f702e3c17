package allowance

import (
	"testing"

	"tripbook/internal/domain"
	"tripbook/internal/domain/models"
)

func TestAmortizationOwnCar(t *testing.T) {
	rt := DefaultRates()
	trips := []models.VehicleTrip{
		{DistanceKm: 100},
		{DistanceKm: 23},
	}
	// 123 km * 0.227 = 27.921 -> 27.93 after ceiling.
	got := rt.Amortization(trips, domain.TransportOwnCar)
	if got != 27.93 {
		t.Fatalf("expected 27.93, got %v", got)
	}
}

func TestAmortizationOdometerFallback(t *testing.T) {
	rt := DefaultRates()
	trips := []models.VehicleTrip{
		{OdometerStart: 10000, OdometerEnd: 10150.5},
	}
	// 150.5 km * 0.063 = 9.4815 -> 9.49.
	got := rt.Amortization(trips, domain.TransportOwnMotorcycle)
	if got != 9.49 {
		t.Fatalf("expected 9.49, got %v", got)
	}
}

func TestAmortizationOtherTransportIsZero(t *testing.T) {
	rt := DefaultRates()
	trips := []models.VehicleTrip{{DistanceKm: 5000}}
	if got := rt.Amortization(trips, domain.TransportOther); got != 0 {
		t.Fatalf("non-own-vehicle transport must yield 0, got %v", got)
	}
}

func TestAmortizationIgnoresUnusableTrips(t *testing.T) {
	rt := DefaultRates()
	trips := []models.VehicleTrip{
		{DistanceKm: 0, OdometerStart: 0, OdometerEnd: 500}, // no start reading
		{DistanceKm: 10},
	}
	// Only the 10 km trip counts: 10 * 0.227 = 2.27.
	if got := rt.Amortization(trips, domain.TransportOwnCar); got != 2.27 {
		t.Fatalf("expected 2.27, got %v", got)
	}
}
