package services

import (
	"fmt"
	"time"

	"tripbook/internal/domain"
	"tripbook/internal/domain/models"
	"tripbook/internal/repositories"
	"tripbook/internal/utils"
)

// Clock supplies the current time so transitions can be timestamped
// deterministically in tests.
type Clock func() time.Time

const defaultRejectionReason = "No reason given"

// TripWorkflowService is the approval state machine over business trips:
// draft -> submitted -> approved|rejected, approved -> paid, rejected ->
// submitted. Every transition checks the actor, then performs one
// conditional update; the store's WHERE clause is what prevents two racing
// actors from both winning.
type TripWorkflowService struct {
	TripRepo  repositories.TripRepository
	AuditRepo repositories.AuditRepository
	Now       Clock
	RequestID string
}

func (s TripWorkflowService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Submit moves a draft or rejected trip to submitted. Owner only.
func (s TripWorkflowService) Submit(actor domain.Principal, tripID int64) (models.BusinessTrip, error) {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return models.BusinessTrip{}, err
	}
	if actor.Type != domain.ActorDriver || actor.ID != trip.DriverID {
		return models.BusinessTrip{}, domain.ForbiddenError{Msg: "only the trip's driver can submit it"}
	}
	if trip.Status != domain.StatusDraft && trip.Status != domain.StatusRejected {
		return models.BusinessTrip{}, domain.ConflictError{Resource: "business trip",
			Msg: fmt.Sprintf("submitting requires draft or rejected status, trip is %s", trip.Status)}
	}

	if err := s.TripRepo.MarkSubmitted(tripID, s.now()); err != nil {
		return models.BusinessTrip{}, err
	}
	return s.finish(actor, trip, "submit")
}

// Approve moves a submitted trip to approved. Admin only.
func (s TripWorkflowService) Approve(actor domain.Principal, tripID int64) (models.BusinessTrip, error) {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return models.BusinessTrip{}, err
	}
	if !actor.IsAdmin() {
		return models.BusinessTrip{}, domain.ForbiddenError{Msg: "only an admin can approve trips"}
	}
	if trip.Status != domain.StatusSubmitted {
		return models.BusinessTrip{}, domain.ConflictError{Resource: "business trip",
			Msg: fmt.Sprintf("approving requires submitted status, trip is %s", trip.Status)}
	}

	if err := s.TripRepo.MarkApproved(tripID, actor.ID, actor.Name, s.now()); err != nil {
		return models.BusinessTrip{}, err
	}
	return s.finish(actor, trip, "approve")
}

// Reject moves a submitted trip to rejected with a reason. Admin only.
func (s TripWorkflowService) Reject(actor domain.Principal, tripID int64, reason string) (models.BusinessTrip, error) {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return models.BusinessTrip{}, err
	}
	if !actor.IsAdmin() {
		return models.BusinessTrip{}, domain.ForbiddenError{Msg: "only an admin can reject trips"}
	}
	if trip.Status != domain.StatusSubmitted {
		return models.BusinessTrip{}, domain.ConflictError{Resource: "business trip",
			Msg: fmt.Sprintf("rejecting requires submitted status, trip is %s", trip.Status)}
	}

	if reason == "" {
		reason = defaultRejectionReason
	}
	if err := s.TripRepo.MarkRejected(tripID, reason); err != nil {
		return models.BusinessTrip{}, err
	}
	return s.finish(actor, trip, "reject")
}

// MarkPaid moves an approved trip to paid. Admin only.
func (s TripWorkflowService) MarkPaid(actor domain.Principal, tripID int64) (models.BusinessTrip, error) {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return models.BusinessTrip{}, err
	}
	if !actor.IsAdmin() {
		return models.BusinessTrip{}, domain.ForbiddenError{Msg: "only an admin can mark trips paid"}
	}
	if trip.Status != domain.StatusApproved {
		return models.BusinessTrip{}, domain.ConflictError{Resource: "business trip",
			Msg: fmt.Sprintf("marking paid requires approved status, trip is %s", trip.Status)}
	}

	if err := s.TripRepo.MarkPaid(tripID, s.now()); err != nil {
		return models.BusinessTrip{}, err
	}
	return s.finish(actor, trip, "mark_paid")
}

// Delete removes a draft trip. Owner only.
func (s TripWorkflowService) Delete(actor domain.Principal, tripID int64) error {
	trip, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return err
	}
	if actor.Type != domain.ActorDriver || actor.ID != trip.DriverID {
		return domain.ForbiddenError{Msg: "only the trip's driver can delete it"}
	}
	if trip.Status != domain.StatusDraft {
		return domain.ConflictError{Resource: "business trip",
			Msg: fmt.Sprintf("deleting requires draft status, trip is %s", trip.Status)}
	}

	if err := s.TripRepo.DeleteDraft(tripID); err != nil {
		return err
	}
	s.audit(actor, models.AuditEntry{
		TableName:   "business_trips",
		RecordID:    tripID,
		Operation:   models.AuditDelete,
		OldData:     trip,
		Description: "deleted " + repositories.Describe(trip),
	})
	return nil
}

// finish reloads the trip after a successful transition and writes the
// audit entry. The mutation already happened; audit failure is logged and
// never rolls it back.
func (s TripWorkflowService) finish(actor domain.Principal, before models.BusinessTrip, action string) (models.BusinessTrip, error) {
	after, err := s.TripRepo.GetByID(before.ID)
	if err != nil {
		return models.BusinessTrip{}, err
	}
	s.audit(actor, models.AuditEntry{
		TableName:   "business_trips",
		RecordID:    before.ID,
		Operation:   models.AuditUpdate,
		OldData:     before,
		NewData:     after,
		Description: fmt.Sprintf("%s %s: %s -> %s", action, repositories.Describe(before), before.Status, after.Status),
	})
	utils.LogEvent(s.RequestID, "workflow", action,
		fmt.Sprintf("trip_id=%d actor=%s:%d status=%s", before.ID, actor.Type, actor.ID, after.Status))
	return after, nil
}

func (s TripWorkflowService) audit(actor domain.Principal, e models.AuditEntry) {
	e.ActorType = actor.Type
	e.ActorID = actor.ID
	e.ActorName = actor.Name
	if err := s.AuditRepo.Write(e); err != nil {
		// Best-effort side channel: the state change stands, but the
		// failure has to be visible for reconciliation.
		utils.LogEvent(s.RequestID, "audit", "write_failed",
			fmt.Sprintf("table=%s record_id=%d op=%s err=%v", e.TableName, e.RecordID, e.Operation, err))
	}
}
