package repositories

import (
	"database/sql"
	"errors"

	intconfig "tripbook/internal/config"
	"tripbook/internal/domain"
	"tripbook/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByEmail returns the user and its password hash for login.
func (r UserRepository) GetByEmail(email string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, name, email, COALESCE(phone,''), role, COALESCE(status,'active'), password_hash
		FROM users WHERE email=? LIMIT 1`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Status, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, "", domain.NotFoundError{Resource: "user"}
	}
	return u, hash, err
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, name, email, COALESCE(phone,''), role, COALESCE(status,'active')
		FROM users WHERE id=? LIMIT 1`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}

func (r UserRepository) EmailTaken(email string) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email=?`, email).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts a user with the given bcrypt hash and fills in the id.
func (r UserRepository) Create(u *models.User, passwordHash string) error {
	res, err := r.db().Exec(`
		INSERT INTO users (name, email, phone, password_hash, role, status, created_at)
		VALUES (?,?,?,?,?,'active',NOW())`,
		u.Name, u.Email, u.Phone, passwordHash, u.Role)
	if err != nil {
		return err
	}
	u.ID, err = res.LastInsertId()
	u.Status = "active"
	return err
}
