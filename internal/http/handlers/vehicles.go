package handlers

import (
	"net/http"

	intconfig "tripbook/internal/config"
	"tripbook/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/vehicles
func GetVehicles(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT
			id,
			COALESCE(code, ''),
			COALESCE(license_plate, ''),
			COALESCE(brand, ''),
			COALESCE(model, ''),
			COALESCE(is_personal, 0)
		FROM vehicles
		ORDER BY code`)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.Code, &v.LicensePlate, &v.Brand, &v.Model, &v.IsPersonal); err != nil {
			RespondDomainError(c, err)
			return
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// POST /api/vehicles (admin)
func CreateVehicle(c *gin.Context) {
	var input models.Vehicle
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.LicensePlate == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "license_plate required")
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO vehicles (code, license_plate, brand, model, is_personal)
		VALUES (?,?,?,?,?)`,
		input.Code, input.LicensePlate, input.Brand, input.Model, input.IsPersonal)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/vehicles/:id (admin)
func UpdateVehicle(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var input models.Vehicle
	if !BindJSONOrError(c, &input) {
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE vehicles
		SET code=?, license_plate=?, brand=?, model=?, is_personal=?
		WHERE id=?`,
		input.Code, input.LicensePlate, input.Brand, input.Model, input.IsPersonal, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		respondError(c, http.StatusNotFound, "not_found", "vehicle not found")
		return
	}
	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/vehicles/:id (admin)
func DeleteVehicle(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM vehicles WHERE id=?`, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		respondError(c, http.StatusNotFound, "not_found", "vehicle not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}
