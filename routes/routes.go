package routes

import (
	"github.com/RohitMacherla3/Viveo/controllers"
	"github.com/RohitMacherla3/Viveo/middlewares"
	"github.com/RohitMacherla3/Viveo/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers onto a gin engine.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	goalSvc := services.NewGoalService(db)
	foodSvc := services.NewFoodLogService(db, services.NewNutritionService(), goalSvc, services.NewUndoRegistry(), hub)

	authCtl := controllers.NewAuthController(services.NewAuthService(db))
	userCtl := controllers.NewUserController(services.NewUserService(db))
	goalCtl := controllers.NewGoalController(goalSvc, foodSvc)
	foodCtl := controllers.NewFoodLogController(foodSvc)
	aiCtl := controllers.NewAIController(services.NewAIService(db))
	rtCtl := controllers.NewRealtimeController(hub)

	r.GET("/health", controllers.Health)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Everything below requires a bearer token
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware(db))
	{
		user := authed.Group("/user")
		{
			user.GET("/profile", userCtl.GetProfile)
			user.PUT("/profile", userCtl.UpdateProfile)
		}

		goals := authed.Group("/goals")
		{
			goals.GET("", goalCtl.GetGoals)
			goals.PUT("", goalCtl.UpdateGoals)
			goals.GET("/recommendations", goalCtl.GetRecommendations)
		}

		food := authed.Group("/food")
		{
			food.POST("/log", foodCtl.LogFood)
			food.GET("/entries", foodCtl.ListEntries)
			food.DELETE("/entries/:id", foodCtl.DeleteEntry)
			food.POST("/undo", foodCtl.UndoDelete)
			food.GET("/summary", foodCtl.GetSummary)
			food.GET("/history", foodCtl.GetHistory)
		}

		ai := authed.Group("/ai")
		{
			ai.POST("/ask", aiCtl.Ask)
			ai.DELETE("/history", aiCtl.ClearHistory)
		}

		authed.GET("/ws/progress", rtCtl.ProgressWS)
	}

	return r
}
