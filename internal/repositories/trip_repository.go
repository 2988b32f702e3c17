package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	intconfig "tripbook/internal/config"
	"tripbook/internal/domain"
	"tripbook/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `id, driver_id, trip_type,
	COALESCE(destination_country,''),
	COALESCE(purpose,''),
	departure_date, return_date,
	COALESCE(transport_type,'other'),
	COALESCE(advance_amount,0),
	status,
	COALESCE(rejection_reason,''),
	submitted_at, approved_at,
	COALESCE(approved_by,0),
	COALESCE(approver_name,''),
	paid_at, created_at`

func scanTrip(row interface{ Scan(...any) error }) (models.BusinessTrip, error) {
	var (
		t         models.BusinessTrip
		tripType  string
		transport string
		status    string
		submitted sql.NullTime
		approved  sql.NullTime
		paid      sql.NullTime
	)
	err := row.Scan(
		&t.ID,
		&t.DriverID,
		&tripType,
		&t.DestinationCountry,
		&t.Purpose,
		&t.DepartureDate,
		&t.ReturnDate,
		&transport,
		&t.AdvanceAmount,
		&status,
		&t.RejectionReason,
		&submitted,
		&approved,
		&t.ApprovedBy,
		&t.ApproverName,
		&paid,
		&t.CreatedAt,
	)
	if err != nil {
		return models.BusinessTrip{}, err
	}

	// Reject unknown stored values before they reach the workflow.
	t.TripType, err = domain.ParseTripType(tripType)
	if err != nil {
		return models.BusinessTrip{}, err
	}
	t.Status, err = domain.ParseTripStatus(status)
	if err != nil {
		return models.BusinessTrip{}, err
	}
	t.TransportType = domain.TransportType(transport)

	if submitted.Valid {
		t.SubmittedAt = &submitted.Time
	}
	if approved.Valid {
		t.ApprovedAt = &approved.Time
	}
	if paid.Valid {
		t.PaidAt = &paid.Time
	}
	return t, nil
}

// GetByID fetches a business trip by primary key.
func (r TripRepository) GetByID(id int64) (models.BusinessTrip, error) {
	if id <= 0 {
		return models.BusinessTrip{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	row := r.db().QueryRow(`SELECT `+tripColumns+` FROM business_trips WHERE id=? LIMIT 1`, id)
	t, err := scanTrip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BusinessTrip{}, domain.NotFoundError{Resource: "business trip"}
	}
	return t, err
}

// List returns trips newest first. driverID 0 means all drivers; status ""
// means any status.
func (r TripRepository) List(driverID int64, status domain.TripStatus) ([]models.BusinessTrip, error) {
	where := []string{"1=1"}
	args := []any{}
	if driverID > 0 {
		where = append(where, "driver_id=?")
		args = append(args, driverID)
	}
	if status != "" {
		where = append(where, "status=?")
		args = append(args, string(status))
	}

	rows, err := r.db().Query(`SELECT `+tripColumns+` FROM business_trips WHERE `+
		strings.Join(where, " AND ")+` ORDER BY departure_date DESC, id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.BusinessTrip, 0)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Create inserts a draft trip and fills in the generated id.
func (r TripRepository) Create(t *models.BusinessTrip) error {
	res, err := r.db().Exec(`
		INSERT INTO business_trips
			(driver_id, trip_type, destination_country, purpose, departure_date, return_date,
			 transport_type, advance_amount, status, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,NOW())`,
		t.DriverID, string(t.TripType), nullIfEmpty(t.DestinationCountry), t.Purpose,
		t.DepartureDate, t.ReturnDate, string(t.TransportType), t.AdvanceAmount,
		string(domain.StatusDraft),
	)
	if err != nil {
		return err
	}
	t.ID, err = res.LastInsertId()
	t.Status = domain.StatusDraft
	return err
}

// UpdateHeader rewrites the editable header fields. Only drafts and rejected
// trips are editable; the WHERE clause enforces that even under concurrent
// transitions.
func (r TripRepository) UpdateHeader(t models.BusinessTrip) error {
	res, err := r.db().Exec(`
		UPDATE business_trips
		SET trip_type=?, destination_country=?, purpose=?, departure_date=?, return_date=?,
		    transport_type=?, advance_amount=?
		WHERE id=? AND status IN (?,?)`,
		string(t.TripType), nullIfEmpty(t.DestinationCountry), t.Purpose,
		t.DepartureDate, t.ReturnDate, string(t.TransportType), t.AdvanceAmount,
		t.ID, string(domain.StatusDraft), string(domain.StatusRejected),
	)
	if err != nil {
		return err
	}
	return requireRow(res, "business trip", "editing requires draft or rejected status")
}

// DeleteDraft removes a trip only while it is still a draft. The schema has
// no FK cascade, so the child rows go with the header once the conditional
// delete has won.
func (r TripRepository) DeleteDraft(id int64) error {
	res, err := r.db().Exec(`DELETE FROM business_trips WHERE id=? AND status=?`,
		id, string(domain.StatusDraft))
	if err != nil {
		return err
	}
	if err := requireRow(res, "business trip", "deleting requires draft status"); err != nil {
		return err
	}

	for _, q := range []string{
		`DELETE FROM border_crossings WHERE trip_id=?`,
		`DELETE FROM trip_expenses WHERE trip_id=?`,
		`DELETE FROM trip_meals WHERE trip_id=?`,
		`DELETE FROM business_trip_vehicle_trips WHERE business_trip_id=?`,
	} {
		if _, err := r.db().Exec(q, id); err != nil {
			return err
		}
	}
	return nil
}

// The Mark* methods implement the status transitions as single conditional
// updates: the precondition on the current status sits in the WHERE clause,
// so two racing actors cannot both win.

func (r TripRepository) MarkSubmitted(id int64, at time.Time) error {
	res, err := r.db().Exec(`
		UPDATE business_trips
		SET status=?, rejection_reason=NULL, submitted_at=?
		WHERE id=? AND status IN (?,?)`,
		string(domain.StatusSubmitted), at, id,
		string(domain.StatusDraft), string(domain.StatusRejected),
	)
	if err != nil {
		return err
	}
	return requireRow(res, "business trip", "submitting requires draft or rejected status")
}

func (r TripRepository) MarkApproved(id, approverID int64, approverName string, at time.Time) error {
	res, err := r.db().Exec(`
		UPDATE business_trips
		SET status=?, approved_by=?, approver_name=?, approved_at=?
		WHERE id=? AND status=?`,
		string(domain.StatusApproved), approverID, approverName, at,
		id, string(domain.StatusSubmitted),
	)
	if err != nil {
		return err
	}
	return requireRow(res, "business trip", "approving requires submitted status")
}

func (r TripRepository) MarkRejected(id int64, reason string) error {
	res, err := r.db().Exec(`
		UPDATE business_trips
		SET status=?, rejection_reason=?
		WHERE id=? AND status=?`,
		string(domain.StatusRejected), reason, id, string(domain.StatusSubmitted),
	)
	if err != nil {
		return err
	}
	return requireRow(res, "business trip", "rejecting requires submitted status")
}

func (r TripRepository) MarkPaid(id int64, at time.Time) error {
	res, err := r.db().Exec(`
		UPDATE business_trips
		SET status=?, paid_at=?
		WHERE id=? AND status=?`,
		string(domain.StatusPaid), at, id, string(domain.StatusApproved),
	)
	if err != nil {
		return err
	}
	return requireRow(res, "business trip", "marking paid requires approved status")
}

// ListCrossings returns the trip's border crossings ordered by instant.
func (r TripRepository) ListCrossings(tripID int64) ([]models.BorderCrossing, error) {
	rows, err := r.db().Query(`
		SELECT id, trip_id, crossing_date, country_from, country_to
		FROM border_crossings WHERE trip_id=? ORDER BY crossing_date ASC, id ASC`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.BorderCrossing, 0)
	for rows.Next() {
		var c models.BorderCrossing
		if err := rows.Scan(&c.ID, &c.TripID, &c.CrossingDate, &c.CountryFrom, &c.CountryTo); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r TripRepository) ListExpenses(tripID int64) ([]models.TripExpense, error) {
	rows, err := r.db().Query(`
		SELECT id, trip_id, COALESCE(description,''), amount
		FROM trip_expenses WHERE trip_id=? ORDER BY id ASC`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.TripExpense, 0)
	for rows.Next() {
		var e models.TripExpense
		if err := rows.Scan(&e.ID, &e.TripID, &e.Description, &e.Amount); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListMeals returns per-day meal flags keyed by YYYY-MM-DD.
func (r TripRepository) ListMeals(tripID int64) (map[string]models.MealFlags, error) {
	rows, err := r.db().Query(`
		SELECT meal_date, breakfast, lunch, dinner
		FROM trip_meals WHERE trip_id=?`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]models.MealFlags)
	for rows.Next() {
		var (
			date  string
			flags models.MealFlags
		)
		if err := rows.Scan(&date, &flags.Breakfast, &flags.Lunch, &flags.Dinner); err != nil {
			return nil, err
		}
		if len(date) > 10 {
			date = date[:10]
		}
		out[date] = flags
	}
	return out, rows.Err()
}

// ListLinkedTrips returns the vehicle trips linked for amortization.
func (r TripRepository) ListLinkedTrips(tripID int64) ([]models.VehicleTrip, error) {
	rows, err := r.db().Query(`
		SELECT vt.id, vt.driver_id, vt.vehicle_id, vt.trip_date,
		       COALESCE(vt.origin,''), COALESCE(vt.destination,''),
		       COALESCE(vt.distance_km,0), COALESCE(vt.odometer_start,0), COALESCE(vt.odometer_end,0)
		FROM vehicle_trips vt
		JOIN business_trip_vehicle_trips l ON l.vehicle_trip_id = vt.id
		WHERE l.business_trip_id=?
		ORDER BY vt.trip_date ASC, vt.id ASC`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.VehicleTrip, 0)
	for rows.Next() {
		var v models.VehicleTrip
		if err := rows.Scan(&v.ID, &v.DriverID, &v.VehicleID, &v.TripDate,
			&v.Origin, &v.Destination, &v.DistanceKm, &v.OdometerStart, &v.OdometerEnd); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ReplaceCrossings rewrites the crossing set of a trip.
func (r TripRepository) ReplaceCrossings(tripID int64, crossings []models.BorderCrossing) error {
	if _, err := r.db().Exec(`DELETE FROM border_crossings WHERE trip_id=?`, tripID); err != nil {
		return err
	}
	for _, c := range crossings {
		if _, err := r.db().Exec(`
			INSERT INTO border_crossings (trip_id, crossing_date, country_from, country_to)
			VALUES (?,?,?,?)`, tripID, c.CrossingDate, c.CountryFrom, c.CountryTo); err != nil {
			return err
		}
	}
	return nil
}

func (r TripRepository) ReplaceExpenses(tripID int64, expenses []models.TripExpense) error {
	if _, err := r.db().Exec(`DELETE FROM trip_expenses WHERE trip_id=?`, tripID); err != nil {
		return err
	}
	for _, e := range expenses {
		if _, err := r.db().Exec(`
			INSERT INTO trip_expenses (trip_id, description, amount)
			VALUES (?,?,?)`, tripID, e.Description, e.Amount); err != nil {
			return err
		}
	}
	return nil
}

func (r TripRepository) ReplaceMeals(tripID int64, meals map[string]models.MealFlags) error {
	if _, err := r.db().Exec(`DELETE FROM trip_meals WHERE trip_id=?`, tripID); err != nil {
		return err
	}
	for date, flags := range meals {
		if _, err := r.db().Exec(`
			INSERT INTO trip_meals (trip_id, meal_date, breakfast, lunch, dinner)
			VALUES (?,?,?,?,?)`, tripID, date, flags.Breakfast, flags.Lunch, flags.Dinner); err != nil {
			return err
		}
	}
	return nil
}

func (r TripRepository) ReplaceLinkedTrips(tripID int64, vehicleTripIDs []int64) error {
	if _, err := r.db().Exec(`DELETE FROM business_trip_vehicle_trips WHERE business_trip_id=?`, tripID); err != nil {
		return err
	}
	for _, vtID := range vehicleTripIDs {
		if _, err := r.db().Exec(`
			INSERT INTO business_trip_vehicle_trips (business_trip_id, vehicle_trip_id)
			VALUES (?,?)`, tripID, vtID); err != nil {
			return err
		}
	}
	return nil
}

func requireRow(res sql.Result, resource, msg string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ConflictError{Resource: resource, Msg: msg}
	}
	return nil
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// Describe renders a short trip summary for audit descriptions.
func Describe(t models.BusinessTrip) string {
	dest := t.DestinationCountry
	if dest == "" {
		dest = "SK"
	}
	return fmt.Sprintf("trip #%d (%s, %s)", t.ID, t.TripType, dest)
}
