package handlers

import (
	"net/http"
	"strconv"
	"time"

	"tripbook/internal/domain"
	"tripbook/internal/http/middleware"
	"tripbook/internal/utils"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "validation_error", "empty body")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid payload: "+err.Error())
		return false
	}
	return true
}

// IDParamOrError parses the :id path parameter.
func IDParamOrError(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid id")
		return 0, false
	}
	return id, true
}

// PrincipalOrError returns the authenticated caller or writes a 401.
func PrincipalOrError(c *gin.Context) (domain.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "authentication required")
		return domain.Principal{}, false
	}
	return p, true
}

// parseInstant accepts "YYYY-MM-DD HH:MM:SS" or a bare date.
func parseInstant(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, domain.ValidationError{Field: field, Msg: "required"}
	}
	if t, err := utils.ParseDateTime(s); err == nil {
		return t, nil
	}
	t, err := utils.ParseDate(s)
	if err != nil {
		return time.Time{}, domain.ValidationError{Field: field, Msg: "expected YYYY-MM-DD or YYYY-MM-DD HH:MM:SS", Err: err}
	}
	return t, nil
}
