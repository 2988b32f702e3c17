package middleware

import (
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"tripbook/internal/domain"
	"tripbook/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

var (
	secretMu sync.RWMutex
	secret   []byte
)

// SetSecret installs the signing secret from configuration. Must run before
// the first token is issued or verified; an empty value clears back to the
// environment lookup.
func SetSecret(s string) {
	secretMu.Lock()
	defer secretMu.Unlock()
	if s == "" {
		secret = nil
		return
	}
	secret = []byte(s)
}

// signingSecret resolves lazily so a secret loaded from .env at startup is
// picked up instead of whatever the process environment held at init.
func signingSecret() []byte {
	secretMu.RLock()
	defer secretMu.RUnlock()
	if secret != nil {
		return secret
	}
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return []byte(val)
	}
	return []byte("change-me-in-production")
}

// GenerateToken signs a JWT for a logged-in user.
func GenerateToken(u models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"role":    u.Role,
		"name":    u.Name,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingSecret())
}

// RequireAuth validates the bearer token and stores the principal.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			return signingSecret(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		p := domain.Principal{Type: domain.ActorDriver}
		if role, _ := claims["role"].(string); role == string(domain.ActorAdmin) {
			p.Type = domain.ActorAdmin
		}
		if id, ok := claims["user_id"].(float64); ok {
			p.ID = int64(id)
		}
		p.Name, _ = claims["name"].(string)
		if p.ID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// RequireAdmin gates a route group to admin principals. Must run after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok || !p.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the authenticated caller stored by RequireAuth.
func GetPrincipal(c *gin.Context) (domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}
