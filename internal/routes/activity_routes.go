package routes

import (
	"fleet_docs/internal/controllers"
	"fleet_docs/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ActivityRoutes(r *gin.Engine) {
	activity := r.Group("/activities")
	activity.Use(middleware.RequireAuth())
	{
		activity.GET("/", controllers.GetMyActivities)
		activity.PUT("/:id/done", controllers.CompleteActivity)
	}
}
