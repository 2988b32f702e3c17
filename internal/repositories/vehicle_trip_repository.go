package repositories

import (
	"database/sql"
	"errors"

	intconfig "tripbook/internal/config"
	"tripbook/internal/domain"
	"tripbook/internal/domain/models"
)

type VehicleTripRepository struct {
	DB *sql.DB
}

func (r VehicleTripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const vehicleTripColumns = `id, driver_id, vehicle_id, trip_date,
	COALESCE(origin,''), COALESCE(destination,''),
	COALESCE(distance_km,0), COALESCE(odometer_start,0), COALESCE(odometer_end,0)`

func scanVehicleTrip(row interface{ Scan(...any) error }) (models.VehicleTrip, error) {
	var v models.VehicleTrip
	err := row.Scan(&v.ID, &v.DriverID, &v.VehicleID, &v.TripDate,
		&v.Origin, &v.Destination, &v.DistanceKm, &v.OdometerStart, &v.OdometerEnd)
	return v, err
}

func (r VehicleTripRepository) GetByID(id int64) (models.VehicleTrip, error) {
	row := r.db().QueryRow(`SELECT `+vehicleTripColumns+` FROM vehicle_trips WHERE id=? LIMIT 1`, id)
	v, err := scanVehicleTrip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VehicleTrip{}, domain.NotFoundError{Resource: "vehicle trip"}
	}
	return v, err
}

// List returns a driver's trip-book entries newest first. driverID 0 lists all.
func (r VehicleTripRepository) List(driverID int64) ([]models.VehicleTrip, error) {
	query := `SELECT ` + vehicleTripColumns + ` FROM vehicle_trips`
	args := []any{}
	if driverID > 0 {
		query += ` WHERE driver_id=?`
		args = append(args, driverID)
	}
	query += ` ORDER BY trip_date DESC, id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.VehicleTrip, 0)
	for rows.Next() {
		v, err := scanVehicleTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r VehicleTripRepository) Create(v *models.VehicleTrip) error {
	res, err := r.db().Exec(`
		INSERT INTO vehicle_trips
			(driver_id, vehicle_id, trip_date, origin, destination, distance_km, odometer_start, odometer_end)
		VALUES (?,?,?,?,?,?,?,?)`,
		v.DriverID, v.VehicleID, v.TripDate, v.Origin, v.Destination,
		v.DistanceKm, v.OdometerStart, v.OdometerEnd)
	if err != nil {
		return err
	}
	v.ID, err = res.LastInsertId()
	return err
}

func (r VehicleTripRepository) Update(v models.VehicleTrip) error {
	res, err := r.db().Exec(`
		UPDATE vehicle_trips
		SET vehicle_id=?, trip_date=?, origin=?, destination=?, distance_km=?, odometer_start=?, odometer_end=?
		WHERE id=? AND driver_id=?`,
		v.VehicleID, v.TripDate, v.Origin, v.Destination,
		v.DistanceKm, v.OdometerStart, v.OdometerEnd, v.ID, v.DriverID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "vehicle trip"}
	}
	return nil
}

func (r VehicleTripRepository) Delete(id, driverID int64) error {
	res, err := r.db().Exec(`DELETE FROM vehicle_trips WHERE id=? AND driver_id=?`, id, driverID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "vehicle trip"}
	}
	return nil
}
