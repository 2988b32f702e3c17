package repositories

import (
	"database/sql"

	intconfig "tripbook/internal/config"
	"tripbook/internal/domain"
	"tripbook/internal/domain/models"
)

type FuelRepository struct {
	DB *sql.DB
}

func (r FuelRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r FuelRepository) List(driverID int64) ([]models.FuelRecord, error) {
	query := `
		SELECT id, driver_id, vehicle_id, fuel_date, litres, total_cost, COALESCE(odometer,0)
		FROM fuel_records`
	args := []any{}
	if driverID > 0 {
		query += ` WHERE driver_id=?`
		args = append(args, driverID)
	}
	query += ` ORDER BY fuel_date DESC, id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.FuelRecord, 0)
	for rows.Next() {
		var f models.FuelRecord
		if err := rows.Scan(&f.ID, &f.DriverID, &f.VehicleID, &f.FuelDate,
			&f.Litres, &f.TotalCost, &f.Odometer); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r FuelRepository) Create(f *models.FuelRecord) error {
	res, err := r.db().Exec(`
		INSERT INTO fuel_records (driver_id, vehicle_id, fuel_date, litres, total_cost, odometer)
		VALUES (?,?,?,?,?,?)`,
		f.DriverID, f.VehicleID, f.FuelDate, f.Litres, f.TotalCost, f.Odometer)
	if err != nil {
		return err
	}
	f.ID, err = res.LastInsertId()
	return err
}

func (r FuelRepository) Delete(id, driverID int64) error {
	res, err := r.db().Exec(`DELETE FROM fuel_records WHERE id=? AND driver_id=?`, id, driverID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "fuel record"}
	}
	return nil
}

// MonthlySummary aggregates a vehicle's fuel purchases per month of a year.
// driverID 0 covers all drivers; otherwise only that driver's records count.
func (r FuelRepository) MonthlySummary(vehicleID, driverID int64, year int) ([]models.FuelMonthSummary, error) {
	query := `
		SELECT MONTH(fuel_date), SUM(litres), SUM(total_cost)
		FROM fuel_records
		WHERE vehicle_id=? AND YEAR(fuel_date)=?`
	args := []any{vehicleID, year}
	if driverID > 0 {
		query += ` AND driver_id=?`
		args = append(args, driverID)
	}
	query += `
		GROUP BY MONTH(fuel_date)
		ORDER BY MONTH(fuel_date) ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.FuelMonthSummary, 0, 12)
	for rows.Next() {
		s := models.FuelMonthSummary{Year: year}
		if err := rows.Scan(&s.Month, &s.Litres, &s.TotalCost); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
