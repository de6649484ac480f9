package api

import (
	"alcyxob/health-tracker/internal/ai"
	"alcyxob/health-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	gate *service.SessionGate,
	authService service.AuthService,
	trackerService service.TrackerService,
	assistant ai.Assistant,
) {

	authHandler := NewAuthHandler(authService)
	trackerHandler := NewTrackerHandler(trackerService)
	profileHandler := NewProfileHandler(trackerService)
	aiHandler := NewAIHandler(assistant)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		// --- Public entry (login area) ---
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/otp/send", authHandler.SendOTP)
			authGroup.POST("/otp/verify", authHandler.VerifyOTP)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// Reachable in any authenticated state: the client asks here
		// which area it may enter.
		protected.GET("/me", DeriveGateState(gate), authHandler.Me)
		protected.POST("/auth/logout", authHandler.Logout)

		// --- Onboarding area ---
		// Profile save is allowed with or without an existing profile.
		onboarding := protected.Group("")
		onboarding.Use(GateMiddleware(gate, service.AreaOnboarding))
		{
			onboarding.PUT("/profile", profileHandler.SaveProfile)
		}

		// --- Main area ---
		// Everything here requires a completed profile.
		main := protected.Group("")
		main.Use(GateMiddleware(gate, service.AreaMain))
		{
			main.GET("/profile", profileHandler.GetProfile)
			main.GET("/dashboard", profileHandler.Dashboard)

			main.GET("/tracker/today", trackerHandler.Today)
			main.POST("/tracker/adjust", trackerHandler.Adjust)
			main.GET("/tracker/history", trackerHandler.History)
			main.GET("/tracker/analytics", trackerHandler.Analytics)

			main.POST("/tools/one-rep-max", trackerHandler.OneRepMax)

			main.POST("/ai/ask", aiHandler.Ask)
		}
	}
}
