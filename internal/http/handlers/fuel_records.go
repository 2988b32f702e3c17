package handlers

import (
	"net/http"
	"strconv"

	"tripbook/internal/domain"
	"tripbook/internal/domain/models"
	"tripbook/internal/repositories"

	"github.com/gin-gonic/gin"
)

type fuelRecordRequest struct {
	VehicleID int64   `json:"vehicle_id"`
	FuelDate  string  `json:"fuel_date"`
	Litres    float64 `json:"litres"`
	TotalCost float64 `json:"total_cost"`
	Odometer  float64 `json:"odometer"`
}

// GET /api/fuel-records
func GetFuelRecords(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	driverID := p.ID
	if p.IsAdmin() {
		driverID = 0
	}

	records, err := repositories.FuelRepository{}.List(driverID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// POST /api/fuel-records
func CreateFuelRecord(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	var req fuelRecordRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	date, err := parseInstant("fuel_date", req.FuelDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if req.Litres <= 0 || req.TotalCost < 0 {
		RespondDomainError(c, domain.ValidationError{Msg: "litres must be positive and total_cost non-negative"})
		return
	}

	record := models.FuelRecord{
		DriverID:  p.ID,
		VehicleID: req.VehicleID,
		FuelDate:  date,
		Litres:    req.Litres,
		TotalCost: req.TotalCost,
		Odometer:  req.Odometer,
	}
	if err := (repositories.FuelRepository{}).Create(&record); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// DELETE /api/fuel-records/:id
func DeleteFuelRecord(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	if err := (repositories.FuelRepository{}).Delete(id, p.ID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "fuel record deleted"})
}

// GET /api/fuel-records/summary?vehicleId=1&year=2024
// Drivers see only their own purchases in the aggregate; admins see all.
func GetFuelSummary(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	driverID := p.ID
	if p.IsAdmin() {
		driverID = 0
	}

	vehicleID, err := strconv.ParseInt(c.Query("vehicleId"), 10, 64)
	if err != nil || vehicleID <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "vehicleId required")
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 {
		respondError(c, http.StatusBadRequest, "validation_error", "year required")
		return
	}

	summary, err := repositories.FuelRepository{}.MonthlySummary(vehicleID, driverID, year)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
