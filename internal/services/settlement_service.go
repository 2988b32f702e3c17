package services

import (
	"fmt"
	"time"

	"tripbook/internal/allowance"
	"tripbook/internal/domain"
	"tripbook/internal/domain/models"
	"tripbook/internal/repositories"
	"tripbook/internal/utils"
)

// SettlementService runs the calculation pipeline: day partitioning, country
// resolution, per-day allowances, amortization and totals. Pure except for
// loading stored trips; the same input always yields the same settlement.
type SettlementService struct {
	TripRepo  repositories.TripRepository
	Rates     allowance.RateTable
	RequestID string
}

// CalculationInput is the boundary shape of the calculation endpoint.
type CalculationInput struct {
	DepartureDate      time.Time
	ReturnDate         time.Time
	TripType           domain.TripType
	DestinationCountry string
	TransportType      domain.TransportType
	Crossings          []models.BorderCrossing
	Meals              map[string]models.MealFlags
	LinkedTrips        []models.VehicleTrip
	Expenses           []models.TripExpense
	AdvanceAmount      float64
}

// Calculate computes the full settlement for one trip's worth of input.
func (s SettlementService) Calculate(in CalculationInput) (models.Settlement, error) {
	days, err := allowance.SplitDays(in.DepartureDate, in.ReturnDate)
	if err != nil {
		return models.Settlement{}, err
	}

	allowances := make([]models.TripAllowance, 0, len(days))
	for _, day := range days {
		country := s.Rates.CountryForDay(day.Date, in.TripType, in.DestinationCountry, in.Crossings)
		meals := in.Meals[day.Date.Format("2006-01-02")]
		allowances = append(allowances, s.Rates.DailyAllowance(day.Date, country, day.Hours, meals))
	}

	amortization := s.Rates.Amortization(in.LinkedTrips, in.TransportType)
	totals := allowance.Settle(allowances, in.Expenses, amortization, in.AdvanceAmount)

	return models.Settlement{Allowances: allowances, Totals: totals}, nil
}

// CalculateForTrip loads a stored trip with its child records and settles it.
func (s SettlementService) CalculateForTrip(tripID int64) (models.BusinessTrip, models.Settlement, error) {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return models.BusinessTrip{}, models.Settlement{}, err
	}

	crossings, err := s.TripRepo.ListCrossings(tripID)
	if err != nil {
		return trip, models.Settlement{}, domain.InternalError{Msg: "failed to load border crossings", Err: err}
	}
	meals, err := s.TripRepo.ListMeals(tripID)
	if err != nil {
		return trip, models.Settlement{}, domain.InternalError{Msg: "failed to load meals", Err: err}
	}
	expenses, err := s.TripRepo.ListExpenses(tripID)
	if err != nil {
		return trip, models.Settlement{}, domain.InternalError{Msg: "failed to load expenses", Err: err}
	}
	linked, err := s.TripRepo.ListLinkedTrips(tripID)
	if err != nil {
		return trip, models.Settlement{}, domain.InternalError{Msg: "failed to load linked trips", Err: err}
	}

	settlement, err := s.Calculate(CalculationInput{
		DepartureDate:      trip.DepartureDate,
		ReturnDate:         trip.ReturnDate,
		TripType:           trip.TripType,
		DestinationCountry: trip.DestinationCountry,
		TransportType:      trip.TransportType,
		Crossings:          crossings,
		Meals:              meals,
		LinkedTrips:        linked,
		Expenses:           expenses,
		AdvanceAmount:      trip.AdvanceAmount,
	})
	if err != nil {
		return trip, models.Settlement{}, err
	}

	utils.LogEvent(s.RequestID, "settlement", "calculate",
		fmt.Sprintf("trip_id=%d days=%d total=%s balance=%s",
			tripID, len(settlement.Allowances),
			utils.FormatMoney(settlement.Totals.TotalAmount),
			utils.FormatMoney(settlement.Totals.Balance)))
	return trip, settlement, nil
}
