package routes

import (
	"fleet_docs/internal/controllers"
	"fleet_docs/internal/middleware"

	"github.com/gin-gonic/gin"
)

func DriverRoutes(r *gin.Engine) {
	driver := r.Group("/driver")
	driver.Use(middleware.RequireAuthWithRole("driver"))
	{
		driver.GET("/vehicle", controllers.GetAuthenticatedDriverVehicle)
		driver.PUT("/vehicle/:id/service", controllers.SetServiceStatus)
	}
}
