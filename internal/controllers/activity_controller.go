package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleet_docs/internal/config"
	"fleet_docs/internal/models"
)

// GetMyActivities lists the authenticated user's open to-dos, most urgent first.
func GetMyActivities(c *gin.Context) {
	userID := uint(c.MustGet("user_id").(float64))

	var activities []models.Activity
	if err := config.DB.
		Where("user_id = ? AND done = ?", userID, false).
		Order("due_date ASC").
		Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching activities: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// CompleteActivity marks one of the authenticated user's to-dos as done.
func CompleteActivity(c *gin.Context) {
	userID := uint(c.MustGet("user_id").(float64))
	id := c.Param("id")

	var activity models.Activity
	if err := config.DB.Where("id = ? AND user_id = ?", id, userID).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while fetching activity: " + err.Error()})
		return
	}

	activity.Done = true
	if err := config.DB.Save(&activity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": activity})
}
