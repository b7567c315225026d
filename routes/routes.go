package routes

import (
	"github.com/MyLifeUa/rest-api/controllers"
	"github.com/MyLifeUa/rest-api/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middlewares.RequestID())

	// Public: login and client self-registration.
	r.POST("/login", controllers.Login)
	r.POST("/clients", controllers.NewClient)
	r.GET("/check-email/:email", controllers.CheckEmail)

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/logout", controllers.Logout)

		// Admins
		api.POST("/admins", controllers.NewAdmin)
		api.GET("/admins/:email", controllers.GetAdmin)
		api.PUT("/admins/:email", controllers.UpdateAdmin)
		api.DELETE("/admins/:email", controllers.DeleteAdmin)

		// Clients
		api.GET("/clients/:email", controllers.GetClient)
		api.PUT("/clients/:email", controllers.UpdateClient)
		api.DELETE("/clients/:email", controllers.DeleteClient)
		api.GET("/doctor-clients", controllers.ListPatients)

		// Doctors
		api.POST("/doctors", controllers.NewDoctor)
		api.GET("/doctors/:email", controllers.GetDoctor)
		api.PUT("/doctors/:email", controllers.UpdateDoctor)
		api.DELETE("/doctors/:email", controllers.DeleteDoctor)
		api.GET("/hospital-doctors", controllers.ListHospitalDoctors)

		// Doctor patient association
		api.POST("/doctor-patient-association", controllers.NewAssociation)
		api.DELETE("/doctor-patient-association", controllers.DeleteAssociation)

		// Ingredients
		api.POST("/ingredients", controllers.NewIngredient)
		api.GET("/ingredients/:id", controllers.GetIngredient)
		api.PUT("/ingredients/:id", controllers.UpdateIngredient)
		api.DELETE("/ingredients/:id", controllers.DeleteIngredient)

		// Meals
		api.POST("/meals", controllers.NewMeal)
		api.GET("/meals", controllers.ListMeals)

		// Meal history
		api.POST("/food-logs", controllers.NewFoodLog)
		api.GET("/food-logs/:day", controllers.GetFoodLogs)
		api.PUT("/food-logs/:id", controllers.UpdateFoodLog)
		api.DELETE("/food-logs/:id", controllers.DeleteFoodLog)

		// Nutrition reports
		api.GET("/nutrition/daily", controllers.GetDailyReport)
		api.GET("/nutrition/history", controllers.GetNutrientHistory)
	}

	return r
}
