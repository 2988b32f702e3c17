package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMonthlySummaryScopedToDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM fuel_records").
		WithArgs(int64(3), 2024, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"month", "litres", "total_cost"}).
			AddRow(4, 52.5, 88.20).
			AddRow(5, 40.0, 66.00))

	repo := FuelRepository{DB: db}
	summary, err := repo.MonthlySummary(3, 7, 2024)
	if err != nil {
		t.Fatalf("MonthlySummary error: %v", err)
	}
	if len(summary) != 2 {
		t.Fatalf("expected 2 months, got %d", len(summary))
	}
	if summary[0].Month != 4 || summary[0].Litres != 52.5 || summary[0].Year != 2024 {
		t.Fatalf("unexpected row: %+v", summary[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMonthlySummaryAdminSeesAllDrivers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// driverID 0: no driver_id predicate in the query.
	mock.ExpectQuery("FROM fuel_records").
		WithArgs(int64(3), 2024).
		WillReturnRows(sqlmock.NewRows([]string{"month", "litres", "total_cost"}).
			AddRow(4, 120.0, 201.60))

	repo := FuelRepository{DB: db}
	summary, err := repo.MonthlySummary(3, 0, 2024)
	if err != nil {
		t.Fatalf("MonthlySummary error: %v", err)
	}
	if len(summary) != 1 || summary[0].TotalCost != 201.60 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
