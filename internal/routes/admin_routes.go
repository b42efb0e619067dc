package routes

import (
	"fleet_docs/internal/controllers"
	"fleet_docs/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("admin")
	admin.Use(middleware.RequireAuthWithRole("admin"))
	{
		admin.GET("/users", controllers.ListUsers)
		admin.GET("/vehicles", controllers.ListVehicles)
		admin.GET("/drivers", controllers.ListDrivers)
		admin.GET("/activities", controllers.ListActivities)
		admin.POST("/expiration-check", controllers.RunExpirationCheck)
	}
}
