package repositories

import (
	"testing"
	"time"

	"tripbook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

var tripRowColumns = []string{
	"id", "driver_id", "trip_type", "destination_country", "purpose",
	"departure_date", "return_date", "transport_type", "advance_amount",
	"status", "rejection_reason", "submitted_at", "approved_at",
	"approved_by", "approver_name", "paid_at", "created_at",
}

func tripRow(id, driverID int64, status string) *sqlmock.Rows {
	dep := time.Date(2024, 5, 2, 8, 0, 0, 0, time.Local)
	ret := time.Date(2024, 5, 2, 20, 0, 0, 0, time.Local)
	return sqlmock.NewRows(tripRowColumns).AddRow(
		id, driverID, "foreign", "AT", "conference",
		dep, ret, "AUV", 200.0,
		status, "", nil, nil,
		0, "", nil, dep,
	)
}

func TestTripGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM business_trips").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(tripRowColumns))

	repo := TripRepository{DB: db}
	if _, err := repo.GetByID(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM business_trips").WithArgs(int64(7)).
		WillReturnRows(tripRow(7, 3, "submitted"))

	repo := TripRepository{DB: db}
	trip, err := repo.GetByID(7)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if trip.Status != domain.StatusSubmitted {
		t.Fatalf("status = %s, want submitted", trip.Status)
	}
	if trip.TripType != domain.TripForeign || trip.DestinationCountry != "AT" {
		t.Fatalf("unexpected trip: %+v", trip)
	}
}

func TestTripGetByIDRejectsUnknownStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM business_trips").WithArgs(int64(7)).
		WillReturnRows(tripRow(7, 3, "weird"))

	repo := TripRepository{DB: db}
	if _, err := repo.GetByID(7); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

func TestMarkApprovedConflictWhenNotSubmitted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// Conditional update matches nothing when the trip left submitted state.
	mock.ExpectExec("UPDATE business_trips").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := TripRepository{DB: db}
	err = repo.MarkApproved(7, 1, "Admin", time.Now())
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteDraftRemovesChildren(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM business_trips").WithArgs(int64(7), "draft").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM border_crossings").WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM trip_expenses").WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM trip_meals").WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM business_trip_vehicle_trips").WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := TripRepository{DB: db}
	if err := repo.DeleteDraft(7); err != nil {
		t.Fatalf("DeleteDraft error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteDraftConflictKeepsChildren(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// Trip already left draft state: nothing else may be deleted.
	mock.ExpectExec("DELETE FROM business_trips").WithArgs(int64(7), "draft").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := TripRepository{DB: db}
	if err := repo.DeleteDraft(7); !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMarkSubmittedClearsRejectionReason(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	at := time.Date(2024, 5, 10, 9, 0, 0, 0, time.Local)
	mock.ExpectExec("UPDATE business_trips").
		WithArgs("submitted", at, int64(7), "draft", "rejected").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := TripRepository{DB: db}
	if err := repo.MarkSubmitted(7, at); err != nil {
		t.Fatalf("MarkSubmitted error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
