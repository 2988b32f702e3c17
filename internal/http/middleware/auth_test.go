package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tripbook/internal/domain"
	"tripbook/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestTokenSignedWithConfiguredSecret(t *testing.T) {
	SetSecret("secret-from-dotenv")
	defer SetSecret("")

	token, err := GenerateToken(models.User{ID: 5, Role: "driver", Name: "Dana"})
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// Verifying against the configured value must succeed; a token signed
	// with the init-time fallback would fail this check.
	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte("secret-from-dotenv"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify with the configured secret: %v", err)
	}

	if _, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte("change-me-in-production"), nil
	}); err == nil {
		t.Fatalf("token unexpectedly verifies with the fallback secret")
	}
}

func TestRequireAuthRoundTrip(t *testing.T) {
	SetSecret("secret-from-dotenv")
	defer SetSecret("")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequireAuth())
	r.GET("/whoami", func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, p)
	})

	token, err := GenerateToken(models.User{ID: 5, Role: string(domain.ActorAdmin), Name: "Ada"})
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status = %d, want 401", w.Code)
	}
}
