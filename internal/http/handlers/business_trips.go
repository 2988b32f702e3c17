package handlers

import (
	"net/http"

	"tripbook/internal/domain"
	"tripbook/internal/domain/models"
	"tripbook/internal/repositories"

	"github.com/gin-gonic/gin"
)

type borderCrossingRequest struct {
	CrossingDate string `json:"crossing_date"`
	CountryFrom  string `json:"country_from"`
	CountryTo    string `json:"country_to"`
}

type tripExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type businessTripRequest struct {
	DriverID           int64                       `json:"driver_id"` // admins only; drivers own their trips
	TripType           string                      `json:"trip_type"`
	DestinationCountry string                      `json:"destination_country"`
	Purpose            string                      `json:"purpose"`
	DepartureDate      string                      `json:"departure_date"`
	ReturnDate         string                      `json:"return_date"`
	TransportType      string                      `json:"transport_type"`
	AdvanceAmount      float64                     `json:"advance_amount"`
	BorderCrossings    []borderCrossingRequest     `json:"border_crossings"`
	Meals              map[string]models.MealFlags `json:"meals"`
	LinkedTripIDs      []int64                     `json:"linked_trip_ids"`
	Expenses           []tripExpenseRequest        `json:"expenses"`
}

func (req businessTripRequest) parse(owner domain.Principal) (models.BusinessTrip, []models.BorderCrossing, []models.TripExpense, error) {
	var trip models.BusinessTrip

	tripType, err := domain.ParseTripType(req.TripType)
	if err != nil {
		return trip, nil, nil, err
	}
	departure, err := parseInstant("departure_date", req.DepartureDate)
	if err != nil {
		return trip, nil, nil, err
	}
	ret, err := parseInstant("return_date", req.ReturnDate)
	if err != nil {
		return trip, nil, nil, err
	}
	if ret.Before(departure) {
		return trip, nil, nil, domain.ValidationError{Field: "return_date", Msg: "return date is before departure date"}
	}
	if tripType == domain.TripDomestic && req.DestinationCountry != "" && req.DestinationCountry != "SK" {
		return trip, nil, nil, domain.ValidationError{Field: "destination_country", Msg: "domestic trips cannot have a foreign destination"}
	}

	trip.DriverID = owner.ID
	if owner.IsAdmin() {
		if req.DriverID <= 0 {
			return trip, nil, nil, domain.ValidationError{Field: "driver_id", Msg: "required when an admin creates a trip"}
		}
		trip.DriverID = req.DriverID
	}
	trip.TripType = tripType
	trip.DestinationCountry = req.DestinationCountry
	trip.Purpose = req.Purpose
	trip.DepartureDate = departure
	trip.ReturnDate = ret
	trip.TransportType = domain.TransportType(req.TransportType)
	if trip.TransportType == "" {
		trip.TransportType = domain.TransportOther
	}
	trip.AdvanceAmount = req.AdvanceAmount

	crossings := make([]models.BorderCrossing, 0, len(req.BorderCrossings))
	for _, bc := range req.BorderCrossings {
		at, err := parseInstant("border_crossings.crossing_date", bc.CrossingDate)
		if err != nil {
			return trip, nil, nil, err
		}
		crossings = append(crossings, models.BorderCrossing{
			CrossingDate: at,
			CountryFrom:  bc.CountryFrom,
			CountryTo:    bc.CountryTo,
		})
	}

	expenses := make([]models.TripExpense, 0, len(req.Expenses))
	for _, e := range req.Expenses {
		if e.Amount < 0 {
			return trip, nil, nil, domain.ValidationError{Field: "expenses.amount", Msg: "must not be negative"}
		}
		expenses = append(expenses, models.TripExpense{Description: e.Description, Amount: e.Amount})
	}

	return trip, crossings, expenses, nil
}

// GET /api/business-trips?status=
func GetBusinessTrips(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}

	var status domain.TripStatus
	if s := c.Query("status"); s != "" {
		parsed, err := domain.ParseTripStatus(s)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		status = parsed
	}

	driverID := p.ID
	if p.IsAdmin() {
		driverID = 0 // all drivers
	}

	repo := repositories.TripRepository{}
	trips, err := repo.List(driverID, status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

type businessTripDetail struct {
	models.BusinessTrip
	BorderCrossings []models.BorderCrossing     `json:"border_crossings"`
	Meals           map[string]models.MealFlags `json:"meals"`
	Expenses        []models.TripExpense        `json:"expenses"`
	LinkedTrips     []models.VehicleTrip        `json:"linked_trips"`
}

// GET /api/business-trips/:id
func GetBusinessTrip(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	repo := repositories.TripRepository{}
	trip, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !p.IsAdmin() && trip.DriverID != p.ID {
		RespondDomainError(c, domain.ForbiddenError{Msg: "not your trip"})
		return
	}

	detail := businessTripDetail{BusinessTrip: trip}
	if detail.BorderCrossings, err = repo.ListCrossings(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	if detail.Meals, err = repo.ListMeals(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	if detail.Expenses, err = repo.ListExpenses(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	if detail.LinkedTrips, err = repo.ListLinkedTrips(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// POST /api/business-trips
func CreateBusinessTrip(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	var req businessTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	trip, crossings, expenses, err := req.parse(p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.TripRepository{}
	if err := repo.Create(&trip); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := saveChildren(repo, trip.ID, crossings, expenses, req); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// PUT /api/business-trips/:id
// Only the owner may edit, and only in draft or rejected state.
func UpdateBusinessTrip(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var req businessTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.TripRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if p.IsAdmin() || existing.DriverID != p.ID {
		RespondDomainError(c, domain.ForbiddenError{Msg: "only the trip's driver can edit it"})
		return
	}

	trip, crossings, expenses, err := req.parse(p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	trip.ID = id
	trip.DriverID = existing.DriverID

	if err := repo.UpdateHeader(trip); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := saveChildren(repo, id, crossings, expenses, req); err != nil {
		RespondDomainError(c, err)
		return
	}

	updated, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func saveChildren(repo repositories.TripRepository, tripID int64, crossings []models.BorderCrossing, expenses []models.TripExpense, req businessTripRequest) error {
	if err := repo.ReplaceCrossings(tripID, crossings); err != nil {
		return err
	}
	if err := repo.ReplaceExpenses(tripID, expenses); err != nil {
		return err
	}
	meals := req.Meals
	if meals == nil {
		meals = map[string]models.MealFlags{}
	}
	if err := repo.ReplaceMeals(tripID, meals); err != nil {
		return err
	}
	return repo.ReplaceLinkedTrips(tripID, req.LinkedTripIDs)
}
