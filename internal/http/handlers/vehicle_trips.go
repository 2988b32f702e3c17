package handlers

import (
	"net/http"

	"tripbook/internal/domain"
	"tripbook/internal/domain/models"
	"tripbook/internal/repositories"

	"github.com/gin-gonic/gin"
)

type vehicleTripRequest struct {
	VehicleID     int64   `json:"vehicle_id"`
	TripDate      string  `json:"trip_date"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DistanceKm    float64 `json:"distance_km"`
	OdometerStart float64 `json:"odometer_start"`
	OdometerEnd   float64 `json:"odometer_end"`
}

func (req vehicleTripRequest) parse(driverID int64) (models.VehicleTrip, error) {
	date, err := parseInstant("trip_date", req.TripDate)
	if err != nil {
		return models.VehicleTrip{}, err
	}
	if req.DistanceKm < 0 {
		return models.VehicleTrip{}, domain.ValidationError{Field: "distance_km", Msg: "must not be negative"}
	}
	if req.OdometerEnd != 0 && req.OdometerEnd < req.OdometerStart {
		return models.VehicleTrip{}, domain.ValidationError{Field: "odometer_end", Msg: "must not be below odometer_start"}
	}
	return models.VehicleTrip{
		DriverID:      driverID,
		VehicleID:     req.VehicleID,
		TripDate:      date,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DistanceKm:    req.DistanceKm,
		OdometerStart: req.OdometerStart,
		OdometerEnd:   req.OdometerEnd,
	}, nil
}

// GET /api/vehicle-trips
func GetVehicleTrips(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	driverID := p.ID
	if p.IsAdmin() {
		driverID = 0
	}

	trips, err := repositories.VehicleTripRepository{}.List(driverID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// POST /api/vehicle-trips
func CreateVehicleTrip(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	var req vehicleTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	trip, err := req.parse(p.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := (repositories.VehicleTripRepository{}).Create(&trip); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// PUT /api/vehicle-trips/:id
func UpdateVehicleTrip(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var req vehicleTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	trip, err := req.parse(p.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	trip.ID = id
	if err := (repositories.VehicleTripRepository{}).Update(trip); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DELETE /api/vehicle-trips/:id
func DeleteVehicleTrip(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	if err := (repositories.VehicleTripRepository{}).Delete(id, p.ID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle trip deleted"})
}
