package allowance

import "tripbook/internal/domain/models"

// Settle aggregates allowance rows, misc expenses and amortization, and nets
// the total against the cash advance. Stateless; callers recompute on demand
// rather than trusting stored totals.
func Settle(allowances []models.TripAllowance, expenses []models.TripExpense, amortization, advance float64) models.SettlementTotals {
	var allowanceSum float64
	for _, a := range allowances {
		allowanceSum += a.NetAmount
	}
	var expenseSum float64
	for _, e := range expenses {
		expenseSum += e.Amount
	}

	totals := models.SettlementTotals{
		TotalAllowance:    CeilCents(allowanceSum),
		TotalExpenses:     CeilCents(expenseSum),
		TotalAmortization: amortization,
	}
	totals.TotalAmount = CeilCents(totals.TotalAllowance + totals.TotalExpenses + totals.TotalAmortization)
	totals.Balance = CeilCents(advance - totals.TotalAmount)
	return totals
}
