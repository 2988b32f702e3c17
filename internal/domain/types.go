package domain

import "fmt"

// ID is used across domain entities.
type ID int64

// TripStatus is the closed set of business-trip lifecycle states.
type TripStatus string

const (
	StatusDraft     TripStatus = "draft"
	StatusSubmitted TripStatus = "submitted"
	StatusApproved  TripStatus = "approved"
	StatusRejected  TripStatus = "rejected"
	StatusPaid      TripStatus = "paid"
)

// ParseTripStatus validates an externally supplied status string.
// Unknown values are rejected before they reach the workflow.
func ParseTripStatus(s string) (TripStatus, error) {
	switch TripStatus(s) {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected, StatusPaid:
		return TripStatus(s), nil
	default:
		return "", ValidationError{Field: "status", Msg: fmt.Sprintf("unknown status %q", s)}
	}
}

// TripType distinguishes domestic trips from foreign ones.
type TripType string

const (
	TripDomestic TripType = "domestic"
	TripForeign  TripType = "foreign"
)

func ParseTripType(s string) (TripType, error) {
	switch TripType(s) {
	case TripDomestic, TripForeign:
		return TripType(s), nil
	default:
		return "", ValidationError{Field: "trip_type", Msg: fmt.Sprintf("unknown trip type %q", s)}
	}
}

// TransportType marks how the driver travelled. AUV (own car) and MOV
// (own motorcycle) qualify for vehicle amortization.
type TransportType string

const (
	TransportOwnCar        TransportType = "AUV"
	TransportOwnMotorcycle TransportType = "MOV"
	TransportOther         TransportType = "other"
)

// ActorType tells admin principals apart from session-bound drivers.
type ActorType string

const (
	ActorAdmin  ActorType = "admin"
	ActorDriver ActorType = "driver"
)

// Principal is the authenticated caller as the workflow sees it.
type Principal struct {
	Type ActorType `json:"type"`
	ID   int64     `json:"id"`
	Name string    `json:"name"`
}

func (p Principal) IsAdmin() bool { return p.Type == ActorAdmin }
