package routes

import (
	"time"

	"shujia/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFlowRoutes registers the checkout flow endpoints.
func RegisterFlowRoutes(r *gin.Engine, fh *handlers.FlowHandler) {
	api := r.Group("/api/flow")
	{
		api.POST("/session", fh.StartSessionHandler)

		session := api.Group("/session/:sessionID")
		session.GET("/cart", fh.GetCartHandler)
		session.PUT("/cart", fh.UpdateCartHandler)
		session.GET("/booking", fh.EnterBookingHandler)
		session.POST("/booking", fh.SubmitBookingHandler)
		session.GET("/payment", fh.EnterPaymentHandler)
		session.POST("/payment", fh.SubmitPaymentHandler)
	}
}

// RegisterHealthRoutes registers the liveness endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// SetupRoutes applies CORS and wires every route group.
func SetupRoutes(r *gin.Engine, fh *handlers.FlowHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r)
	RegisterFlowRoutes(r, fh)
}
