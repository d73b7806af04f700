// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"drivecalc-api/config"
	"drivecalc-api/controllers"
	"drivecalc-api/middleware"
	"drivecalc-api/repositories"
	"drivecalc-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	calcRepo := repositories.NewCalculationRepository(db)
	reportService := services.NewReportService(calcRepo)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	userController := controllers.NewUserController(db, calcRepo)
	calculatorController := controllers.NewCalculatorController(db, calcRepo)
	reportController := controllers.NewReportController(reportService)
	exportController := controllers.NewExportController(db, calcRepo)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public, rate limited)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(20, 5))
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
		auth.POST("/logout", authController.Logout)
		auth.POST("/send-verification", authController.SendVerificationCode)
		auth.POST("/verify-code", authController.VerifyCode)

		if gin.Mode() == gin.DebugMode {
			auth.GET("/debug/verification-code", authController.GetVerificationCode)
		}
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
			users.GET("/settings", userController.GetSettings)
			users.PUT("/settings", userController.UpdateSettings)
			users.DELETE("/data", userController.ResetData)
		}

		// Calculator routes
		calc := protected.Group("/calculator")
		{
			calc.POST("/calculate", calculatorController.Calculate)
			calc.POST("/save", calculatorController.Save)
			calc.GET("/history", calculatorController.GetHistory)
			calc.DELETE("/history", calculatorController.ClearHistory)
			calc.GET("/vehicles", calculatorController.GetVehicles)
		}

		// Report routes
		reports := protected.Group("/reports")
		{
			reports.GET("/dashboard", reportController.GetDashboard)
			reports.GET("/daily", reportController.GetDailyTotals)
			reports.GET("/weekly", reportController.GetWeeklySummary)
			reports.GET("/monthly", reportController.GetMonthlyReport)
			reports.GET("/earnings-series", reportController.GetEarningsSeries)
			reports.GET("/expense-distribution", reportController.GetExpenseDistribution)
		}

		// Full-state export
		protected.GET("/export", exportController.Export)
	}
}
