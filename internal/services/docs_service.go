package services

import (
	"bytes"
	"fmt"
	"time"

	"tripbook/internal/domain/models"
	"tripbook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the settlement document for a business trip.
type DocsService struct {
	Settlement SettlementService
	RequestID  string
}

// GenerateSettlementPDF settles the trip and renders it as a PDF.
func (s DocsService) GenerateSettlementPDF(tripID int64) ([]byte, string, error) {
	trip, settlement, err := s.Settlement.CalculateForTrip(tripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_settlement", fmt.Sprintf("trip_id=%d", tripID))
	return buildSettlementPDF(trip, settlement)
}

func buildSettlementPDF(trip models.BusinessTrip, st models.Settlement) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Business Trip Settlement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUSINESS TRIP SETTLEMENT")
	pdf.Ln(12)

	currency := "EUR"
	if len(st.Allowances) > 0 {
		currency = st.Allowances[0].Currency
	}
	dest := trip.DestinationCountry
	if dest == "" {
		dest = "SK"
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Trip          : #%d (%s)", trip.ID, trip.TripType),
		fmt.Sprintf("Destination   : %s", dest),
		fmt.Sprintf("Departure     : %s", utils.FormatDateTime(trip.DepartureDate)),
		fmt.Sprintf("Return        : %s", utils.FormatDateTime(trip.ReturnDate)),
		fmt.Sprintf("Status        : %s", trip.Status),
		fmt.Sprintf("Generated     : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(26, 7, "Date", "1", 0, "", false, 0, "")
	pdf.CellFormat(20, 7, "Country", "1", 0, "", false, 0, "")
	pdf.CellFormat(18, 7, "Hours", "1", 0, "R", false, 0, "")
	pdf.CellFormat(24, 7, "Gross", "1", 0, "R", false, 0, "")
	pdf.CellFormat(28, 7, "Deductions", "1", 0, "R", false, 0, "")
	pdf.CellFormat(24, 7, "Net", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, a := range st.Allowances {
		deductions := a.BreakfastDeduction + a.LunchDeduction + a.DinnerDeduction
		pdf.CellFormat(26, 7, a.Date, "1", 0, "", false, 0, "")
		pdf.CellFormat(20, 7, a.Country, "1", 0, "", false, 0, "")
		pdf.CellFormat(18, 7, fmt.Sprintf("%.1f", a.Hours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(24, 7, utils.FormatMoney(a.GrossAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 7, utils.FormatMoney(deductions), "1", 0, "R", false, 0, "")
		pdf.CellFormat(24, 7, utils.FormatMoney(a.NetAmount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	totals := []string{
		fmt.Sprintf("Allowances    : %s", utils.FormatAmount(st.Totals.TotalAllowance, currency)),
		fmt.Sprintf("Expenses      : %s", utils.FormatAmount(st.Totals.TotalExpenses, currency)),
		fmt.Sprintf("Amortization  : %s", utils.FormatAmount(st.Totals.TotalAmortization, currency)),
		fmt.Sprintf("Total         : %s", utils.FormatAmount(st.Totals.TotalAmount, currency)),
		fmt.Sprintf("Advance       : %s", utils.FormatAmount(trip.AdvanceAmount, currency)),
		fmt.Sprintf("Balance       : %s", utils.FormatAmount(st.Totals.Balance, currency)),
	}
	for _, l := range totals {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	note := "A positive balance is returned by the driver; a negative balance is paid out to the driver."
	pdf.MultiCell(0, 6, note, "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("SETTLEMENT_%d.pdf", trip.ID)
	return buf.Bytes(), filename, nil
}
