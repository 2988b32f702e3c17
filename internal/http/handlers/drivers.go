package handlers

import (
	"net/http"

	intconfig "tripbook/internal/config"
	"tripbook/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/drivers (admin)
func GetDrivers(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT
			id,
			COALESCE(user_id, 0),
			COALESCE(name, ''),
			COALESCE(phone, ''),
			COALESCE(license_number, ''),
			COALESCE(personal_vehicle, '')
		FROM drivers
		ORDER BY id DESC`)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	defer rows.Close()

	drivers := []models.Driver{}
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Phone, &d.LicenseNumber, &d.PersonalVehicle); err != nil {
			RespondDomainError(c, err)
			return
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// POST /api/drivers (admin)
func CreateDriver(c *gin.Context) {
	var input models.Driver
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.Name == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "name required")
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO drivers (user_id, name, phone, license_number, personal_vehicle)
		VALUES (?,?,?,?,?)`,
		input.UserID, input.Name, input.Phone, input.LicenseNumber, input.PersonalVehicle)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/drivers/:id (admin)
func UpdateDriver(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var input models.Driver
	if !BindJSONOrError(c, &input) {
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE drivers
		SET name=?, phone=?, license_number=?, personal_vehicle=?
		WHERE id=?`,
		input.Name, input.Phone, input.LicenseNumber, input.PersonalVehicle, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		respondError(c, http.StatusNotFound, "not_found", "driver not found")
		return
	}
	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/drivers/:id (admin)
func DeleteDriver(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM drivers WHERE id=?`, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		respondError(c, http.StatusNotFound, "not_found", "driver not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "driver deleted"})
}
