package models

import (
	"time"

	"tripbook/internal/domain"
)

// BusinessTrip is the header record of one business trip. Allowances and
// settlement totals are never stored; they are recomputed from this header
// and its child records on every calculation call.
type BusinessTrip struct {
	ID                 int64                `json:"id"`
	DriverID           int64                `json:"driver_id"`
	TripType           domain.TripType      `json:"trip_type"`
	DestinationCountry string               `json:"destination_country,omitempty"`
	Purpose            string               `json:"purpose,omitempty"`
	DepartureDate      time.Time            `json:"departure_date"`
	ReturnDate         time.Time            `json:"return_date"`
	TransportType      domain.TransportType `json:"transport_type"`
	AdvanceAmount      float64              `json:"advance_amount"`
	Status             domain.TripStatus    `json:"status"`
	RejectionReason    string               `json:"rejection_reason,omitempty"`
	SubmittedAt        *time.Time           `json:"submitted_at,omitempty"`
	ApprovedAt         *time.Time           `json:"approved_at,omitempty"`
	ApprovedBy         int64                `json:"approved_by,omitempty"`
	ApproverName       string               `json:"approver_name,omitempty"`
	PaidAt             *time.Time           `json:"paid_at,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
}

// BorderCrossing records the instant a foreign trip moved between countries.
type BorderCrossing struct {
	ID           int64     `json:"id"`
	TripID       int64     `json:"trip_id"`
	CrossingDate time.Time `json:"crossing_date"`
	CountryFrom  string    `json:"country_from"`
	CountryTo    string    `json:"country_to"`
}

// MealFlags marks which meals were provided to the driver on one calendar
// day. A day without a record counts as all-false.
type MealFlags struct {
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`
}

// TripExpense is a miscellaneous reimbursable cost (tolls, parking,
// accommodation) attached to a trip.
type TripExpense struct {
	ID          int64   `json:"id"`
	TripID      int64   `json:"trip_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}
