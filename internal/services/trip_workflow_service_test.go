package services

import (
	"errors"
	"testing"
	"time"

	"tripbook/internal/domain"
	"tripbook/internal/repositories"

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

var errAuditDown = errors.New("audit table unavailable")

func TestSubmitByNonOwnerForbidden(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM business_trips").WithArgs(int64(7)).
		WillReturnRows(tripRow(7, 3, "draft"))

	svc := TripWorkflowService{
		TripRepo:  repositories.TripRepository{DB: db},
		AuditRepo: repositories.AuditRepository{DB: db},
	}
	_, err = svc.Submit(domain.Principal{Type: domain.ActorDriver, ID: 99, Name: "Other"}, 7)
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApproveRequiresSubmitted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM business_trips").WithArgs(int64(7)).
		WillReturnRows(tripRow(7, 3, "draft"))

	svc := TripWorkflowService{
		TripRepo:  repositories.TripRepository{DB: db},
		AuditRepo: repositories.AuditRepository{DB: db},
	}
	_, err = svc.Approve(domain.Principal{Type: domain.ActorAdmin, ID: 1, Name: "Admin"}, 7)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApproveTransitionsAndAudits(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	at := time.Date(2024, 5, 10, 9, 0, 0, 0, time.Local)

	mock.ExpectQuery("FROM business_trips").WithArgs(int64(7)).
		WillReturnRows(tripRow(7, 3, "submitted"))
	mock.ExpectExec("UPDATE business_trips").
		WithArgs("approved", int64(1), "Admin", at, int64(7), "submitted").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM business_trips").WithArgs(int64(7)).
		WillReturnRows(tripRow(7, 3, "approved"))
	mock.ExpectExec("INSERT INTO audit_logs").
		WillReturnResult(sqlmock.NewResult(1, 1))

	svc := TripWorkflowService{
		TripRepo:  repositories.TripRepository{DB: db},
		AuditRepo: repositories.AuditRepository{DB: db},
		Now:       func() time.Time { return at },
	}
	trip, err := svc.Approve(domain.Principal{Type: domain.ActorAdmin, ID: 1, Name: "Admin"}, 7)
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}
	if trip.Status != domain.StatusApproved {
		t.Fatalf("status = %s, want approved", trip.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRejectDefaultsReason(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM business_trips").WithArgs(int64(7)).
		WillReturnRows(tripRow(7, 3, "submitted"))
	mock.ExpectExec("UPDATE business_trips").
		WithArgs("rejected", "No reason given", int64(7), "submitted").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM business_trips").WithArgs(int64(7)).
		WillReturnRows(tripRow(7, 3, "rejected"))
	mock.ExpectExec("INSERT INTO audit_logs").
		WillReturnResult(sqlmock.NewResult(1, 1))

	svc := TripWorkflowService{
		TripRepo:  repositories.TripRepository{DB: db},
		AuditRepo: repositories.AuditRepository{DB: db},
	}
	trip, err := svc.Reject(domain.Principal{Type: domain.ActorAdmin, ID: 1, Name: "Admin"}, 7, "")
	if err != nil {
		t.Fatalf("Reject error: %v", err)
	}
	if trip.Status != domain.StatusRejected {
		t.Fatalf("status = %s, want rejected", trip.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAuditFailureDoesNotFailTransition(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	at := time.Date(2024, 5, 10, 9, 0, 0, 0, time.Local)

	mock.ExpectQuery("FROM business_trips").WithArgs(int64(7)).
		WillReturnRows(tripRow(7, 3, "approved"))
	mock.ExpectExec("UPDATE business_trips").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM business_trips").WithArgs(int64(7)).
		WillReturnRows(tripRow(7, 3, "paid"))
	mock.ExpectExec("INSERT INTO audit_logs").
		WillReturnError(errAuditDown)

	svc := TripWorkflowService{
		TripRepo:  repositories.TripRepository{DB: db},
		AuditRepo: repositories.AuditRepository{DB: db},
		Now:       func() time.Time { return at },
	}
	trip, err := svc.MarkPaid(domain.Principal{Type: domain.ActorAdmin, ID: 1, Name: "Admin"}, 7)
	if err != nil {
		t.Fatalf("MarkPaid error: %v", err)
	}
	if trip.Status != domain.StatusPaid {
		t.Fatalf("status = %s, want paid", trip.Status)
	}
}
