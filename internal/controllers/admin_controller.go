package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleet_docs/internal/config"
	"fleet_docs/internal/models"
	pgstore "fleet_docs/internal/repository/postgres"
	"fleet_docs/internal/service"
)

func sweepService() *service.SweepService {
	return service.NewSweepService(
		pgstore.NewDocumentStore(config.DB),
		pgstore.NewFeedStore(config.DB),
		pgstore.NewActivityStore(config.DB),
	)
}

// RunExpirationCheck triggers the notification sweep on demand, outside the
// scheduler's cadence. Same behavior as the scheduled run.
func RunExpirationCheck(c *gin.Context) {
	today := time.Now().In(config.SweepLocation())
	if err := sweepService().Run(c.Request.Context(), today); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Expiration check failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expiration check completed"})
}

// ListActivities returns scheduled follow-up to-dos, most urgent first.
func ListActivities(c *gin.Context) {
	var activities []models.Activity
	if err := config.DB.Order("due_date ASC").Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing activities: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": activities})
}
