package routes

import (
	"fleet_docs/internal/controllers"
	"fleet_docs/internal/middleware"

	"github.com/gin-gonic/gin"
)

func VehicleRoutes(r *gin.Engine) {
	vehicle := r.Group("/vehicles")
	vehicle.Use(middleware.RequireAuth())
	{
		vehicle.GET("/:id", controllers.GetVehicle)
		vehicle.GET("/:id/documents", controllers.GetVehicleDocuments)
		vehicle.GET("/:id/feed", controllers.GetVehicleFeed)
	}

	managed := r.Group("/vehicles")
	managed.Use(middleware.RequireAuthWithRole("manager"))
	{
		managed.POST("/", controllers.CreateVehicle)
		managed.GET("/", controllers.GetMyVehicles)
		managed.PUT("/:id", controllers.UpdateVehicle)
		managed.DELETE("/:id", controllers.DeleteVehicle)
	}
}
