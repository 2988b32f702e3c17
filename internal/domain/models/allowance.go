package models

// TripAllowance is one computed per-diem row for a single calendar day of a
// trip. Derived data: recomputed on every calculation call.
type TripAllowance struct {
	Date               string  `json:"date"` // YYYY-MM-DD
	Country            string  `json:"country"`
	Hours              float64 `json:"hours"`
	BaseRate           float64 `json:"base_rate"`
	RatePercentage     int     `json:"rate_percentage"` // foreign days only: 0/25/50/100
	GrossAmount        float64 `json:"gross_amount"`
	BreakfastDeduction float64 `json:"breakfast_deduction"`
	LunchDeduction     float64 `json:"lunch_deduction"`
	DinnerDeduction    float64 `json:"dinner_deduction"`
	NetAmount          float64 `json:"net_amount"`
	Currency           string  `json:"currency"`
}

// SettlementTotals nets the trip's reimbursable amounts against the cash
// advance. Balance = advance - totalAmount: a positive balance is unspent
// advance the driver returns to the company, a negative balance is what the
// company still owes the driver.
type SettlementTotals struct {
	TotalAllowance    float64 `json:"totalAllowance"`
	TotalExpenses     float64 `json:"totalExpenses"`
	TotalAmortization float64 `json:"totalAmortization"`
	TotalAmount       float64 `json:"totalAmount"`
	Balance           float64 `json:"balance"`
}

// Settlement is the full calculation result returned at the boundary.
type Settlement struct {
	Allowances []TripAllowance  `json:"allowances"`
	Totals     SettlementTotals `json:"totals"`
}
