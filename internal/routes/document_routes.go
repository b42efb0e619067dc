package routes

import (
	"fleet_docs/internal/controllers"
	"fleet_docs/internal/middleware"

	"github.com/gin-gonic/gin"
)

func DocumentRoutes(r *gin.Engine) {
	document := r.Group("/documents")
	document.Use(middleware.RequireAuth())
	{
		document.POST("/", controllers.CreateDocument)
		document.GET("/", controllers.ListDocuments)
		document.GET("/:id", controllers.GetDocument)
		document.PUT("/:id", controllers.UpdateDocument)
		document.DELETE("/:id", controllers.DeleteDocument)
		document.POST("/:id/attachment", controllers.UploadAttachment)
		document.GET("/:id/attachment", controllers.DownloadAttachment)
		document.POST("/:id/reminder", controllers.CreateDocumentReminder)
	}
}
