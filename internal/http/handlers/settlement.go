package handlers

import (
	"net/http"

	"tripbook/internal/allowance"
	"tripbook/internal/domain"
	"tripbook/internal/domain/models"
	"tripbook/internal/http/middleware"
	"tripbook/internal/repositories"
	"tripbook/internal/services"

	"github.com/gin-gonic/gin"
)

func settlementService(c *gin.Context) services.SettlementService {
	return services.SettlementService{
		TripRepo:  repositories.TripRepository{},
		Rates:     allowance.DefaultRates(),
		RequestID: middleware.GetRequestID(c),
	}
}

type linkedTripRequest struct {
	DistanceKm    float64 `json:"distance_km"`
	OdometerStart float64 `json:"odometer_start"`
	OdometerEnd   float64 `json:"odometer_end"`
}

type calculationRequest struct {
	DepartureDate      string                      `json:"departure_date"`
	ReturnDate         string                      `json:"return_date"`
	TripType           string                      `json:"trip_type"`
	DestinationCountry string                      `json:"destination_country"`
	BorderCrossings    []borderCrossingRequest     `json:"border_crossings"`
	Meals              map[string]models.MealFlags `json:"meals"`
	LinkedTrips        []linkedTripRequest         `json:"linked_trips"`
	TransportType      string                      `json:"transport_type"`
	Expenses           []tripExpenseRequest        `json:"expenses"`
	AdvanceAmount      float64                     `json:"advance_amount"`
}

func settlementResponse(st models.Settlement) gin.H {
	return gin.H{
		"allowances":        st.Allowances,
		"amortization":      st.Totals.TotalAmortization,
		"totalAllowance":    st.Totals.TotalAllowance,
		"totalExpenses":     st.Totals.TotalExpenses,
		"totalAmortization": st.Totals.TotalAmortization,
		"totalAmount":       st.Totals.TotalAmount,
		"balance":           st.Totals.Balance,
	}
}

// POST /api/business-trips/calculate
// Pure calculation over the posted trip shape; nothing is stored.
func CalculateSettlement(c *gin.Context) {
	if _, ok := PrincipalOrError(c); !ok {
		return
	}
	var req calculationRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	tripType, err := domain.ParseTripType(req.TripType)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	departure, err := parseInstant("departure_date", req.DepartureDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	ret, err := parseInstant("return_date", req.ReturnDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	crossings := make([]models.BorderCrossing, 0, len(req.BorderCrossings))
	for _, bc := range req.BorderCrossings {
		at, err := parseInstant("border_crossings.crossing_date", bc.CrossingDate)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		crossings = append(crossings, models.BorderCrossing{
			CrossingDate: at,
			CountryFrom:  bc.CountryFrom,
			CountryTo:    bc.CountryTo,
		})
	}

	linked := make([]models.VehicleTrip, 0, len(req.LinkedTrips))
	for _, lt := range req.LinkedTrips {
		linked = append(linked, models.VehicleTrip{
			DistanceKm:    lt.DistanceKm,
			OdometerStart: lt.OdometerStart,
			OdometerEnd:   lt.OdometerEnd,
		})
	}

	expenses := make([]models.TripExpense, 0, len(req.Expenses))
	for _, e := range req.Expenses {
		expenses = append(expenses, models.TripExpense{Description: e.Description, Amount: e.Amount})
	}

	st, err := settlementService(c).Calculate(services.CalculationInput{
		DepartureDate:      departure,
		ReturnDate:         ret,
		TripType:           tripType,
		DestinationCountry: req.DestinationCountry,
		TransportType:      domain.TransportType(req.TransportType),
		Crossings:          crossings,
		Meals:              req.Meals,
		LinkedTrips:        linked,
		Expenses:           expenses,
		AdvanceAmount:      req.AdvanceAmount,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, settlementResponse(st))
}

// GET /api/business-trips/:id/settlement
func GetTripSettlement(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	trip, st, err := settlementService(c).CalculateForTrip(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !p.IsAdmin() && trip.DriverID != p.ID {
		RespondDomainError(c, domain.ForbiddenError{Msg: "not your trip"})
		return
	}
	c.JSON(http.StatusOK, settlementResponse(st))
}

// GET /api/business-trips/:id/settlement.pdf (admin)
func GetTripSettlementPDF(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	svc := services.DocsService{
		Settlement: settlementService(c),
		RequestID:  middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateSettlementPDF(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
