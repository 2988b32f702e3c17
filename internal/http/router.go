package api

import (
	"log"
	stdhttp "net/http"

	intconfig "tripbook/internal/config"
	h "tripbook/internal/http/handlers"
	"tripbook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	middleware.SetSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Everything below requires a signed-in user.
		authed := api.Group("")
		authed.Use(middleware.RequireAuth())

		trips := authed.Group("/business-trips")
		trips.GET("", h.GetBusinessTrips)
		trips.POST("", h.CreateBusinessTrip)
		trips.POST("/calculate", h.CalculateSettlement)
		trips.GET("/:id", h.GetBusinessTrip)
		trips.PUT("/:id", h.UpdateBusinessTrip)
		trips.DELETE("/:id", h.DeleteBusinessTrip)
		trips.POST("/:id/submit", h.SubmitBusinessTrip)
		trips.GET("/:id/settlement", h.GetTripSettlement)

		vehicleTrips := authed.Group("/vehicle-trips")
		vehicleTrips.GET("", h.GetVehicleTrips)
		vehicleTrips.POST("", h.CreateVehicleTrip)
		vehicleTrips.PUT("/:id", h.UpdateVehicleTrip)
		vehicleTrips.DELETE("/:id", h.DeleteVehicleTrip)

		fuel := authed.Group("/fuel-records")
		fuel.GET("", h.GetFuelRecords)
		fuel.GET("/summary", h.GetFuelSummary)
		fuel.POST("", h.CreateFuelRecord)
		fuel.DELETE("/:id", h.DeleteFuelRecord)

		authed.GET("/vehicles", h.GetVehicles)

		// Admin-only surface: approvals, payouts, fleet management.
		admin := authed.Group("")
		admin.Use(middleware.RequireAdmin())

		admin.POST("/business-trips/:id/approve", h.ApproveBusinessTrip)
		admin.POST("/business-trips/:id/reject", h.RejectBusinessTrip)
		admin.POST("/business-trips/:id/mark-paid", h.MarkBusinessTripPaid)
		admin.GET("/business-trips/:id/settlement.pdf", h.GetTripSettlementPDF)

		drivers := admin.Group("/drivers")
		drivers.GET("", h.GetDrivers)
		drivers.POST("", h.CreateDriver)
		drivers.PUT("/:id", h.UpdateDriver)
		drivers.DELETE("/:id", h.DeleteDriver)

		vehicles := admin.Group("/vehicles")
		vehicles.POST("", h.CreateVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)
	}

	return r
}
