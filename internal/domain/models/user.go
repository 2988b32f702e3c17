package models

// User is an account that can sign in: an admin or a driver.
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role"` // admin / driver
	Status string `json:"status"`
}

// Driver holds the fleet-side profile for a driver account.
type Driver struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"user_id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	LicenseNumber   string `json:"license_number"`
	PersonalVehicle string `json:"personal_vehicle,omitempty"`
}
