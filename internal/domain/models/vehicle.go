package models

import "time"

// Vehicle is a fleet or personal vehicle referenced by trips and fuel records.
type Vehicle struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	LicensePlate string `json:"license_plate"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	IsPersonal   bool   `json:"is_personal"`
}

// VehicleTrip is an ordinary trip-book entry. When linked to a business trip
// made with a personal vehicle, its distance feeds the amortization
// calculation; DistanceKm wins, otherwise the odometer difference is used.
type VehicleTrip struct {
	ID            int64     `json:"id"`
	DriverID      int64     `json:"driver_id"`
	VehicleID     int64     `json:"vehicle_id"`
	TripDate      time.Time `json:"trip_date"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DistanceKm    float64   `json:"distance_km"`
	OdometerStart float64   `json:"odometer_start"`
	OdometerEnd   float64   `json:"odometer_end"`
}

// FuelRecord is a single fuel purchase logged by a driver.
type FuelRecord struct {
	ID        int64     `json:"id"`
	DriverID  int64     `json:"driver_id"`
	VehicleID int64     `json:"vehicle_id"`
	FuelDate  time.Time `json:"fuel_date"`
	Litres    float64   `json:"litres"`
	TotalCost float64   `json:"total_cost"`
	Odometer  float64   `json:"odometer"`
}

// FuelMonthSummary aggregates fuel purchases per month for one vehicle.
type FuelMonthSummary struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Litres    float64 `json:"litres"`
	TotalCost float64 `json:"total_cost"`
}
