package handlers

import (
	"net/http"

	"tripbook/internal/http/middleware"
	"tripbook/internal/services"

	"github.com/gin-gonic/gin"
)

func workflowService(c *gin.Context) services.TripWorkflowService {
	return services.TripWorkflowService{RequestID: middleware.GetRequestID(c)}
}

// POST /api/business-trips/:id/submit
func SubmitBusinessTrip(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	trip, err := workflowService(c).Submit(p, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// POST /api/business-trips/:id/approve
func ApproveBusinessTrip(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	trip, err := workflowService(c).Approve(p, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// POST /api/business-trips/:id/reject
func RejectBusinessTrip(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	var req rejectRequest
	if c.Request.Body != nil {
		_ = c.ShouldBindJSON(&req) // reason is optional
	}

	trip, err := workflowService(c).Reject(p, id, req.Reason)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// POST /api/business-trips/:id/mark-paid
func MarkBusinessTripPaid(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	trip, err := workflowService(c).MarkPaid(p, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DELETE /api/business-trips/:id
func DeleteBusinessTrip(c *gin.Context) {
	p, ok := PrincipalOrError(c)
	if !ok {
		return
	}
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	if err := workflowService(c).Delete(p, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip deleted"})
}
