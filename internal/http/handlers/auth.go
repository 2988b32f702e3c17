package handlers

import (
	"net/http"

	"tripbook/internal/domain"
	"tripbook/internal/domain/models"
	"tripbook/internal/http/middleware"
	"tripbook/internal/repositories"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}
	user, hash, err := repo.GetByEmail(req.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			respondError(c, http.StatusUnauthorized, "unauthorized", "wrong email or password")
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "unauthorized", "wrong email or password")
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to sign token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /api/auth/register
// Self-registration always creates a driver account; admins are provisioned
// directly in the database.
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "name, email and password are required")
		return
	}

	repo := repositories.UserRepository{}
	taken, err := repo.EmailTaken(req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if taken {
		respondError(c, http.StatusBadRequest, "validation_error", "email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to hash password")
		return
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  string(domain.ActorDriver),
	}
	if err := repo.Create(&user, string(hash)); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}
