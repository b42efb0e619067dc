package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleet_docs/internal/config"
	"fleet_docs/internal/models"
)

// serviceStatusPayload defines the expected JSON for updating vehicle service status.
type serviceStatusPayload struct {
	InService *bool `json:"in_service" binding:"required"`
}

// SetServiceStatus allows a driver to change their vehicle's in_service flag.
// Requires the driver's user_id from JWT claims and vehicle ID from URL parameter.
func SetServiceStatus(c *gin.Context) {
	// 1) Get the authenticated user's ID from JWT claims.
	userID := uint(c.MustGet("user_id").(float64))

	// 2) Parse vehicle ID from URL parameter.
	vehIDStr := c.Param("id")
	vehID, err := strconv.ParseUint(vehIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Vehicle ID format."})
		return
	}

	// 3) Find the vehicle and verify it is assigned to this user's driver record.
	var vehicle models.Vehicle
	if err := config.DB.
		Joins("Driver").
		Where("vehicles.id = ?", vehID).
		Where("Driver.user_id = ?", userID).
		First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found or not assigned to you."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while fetching vehicle: " + err.Error()})
		}
		return
	}

	// 4) Bind JSON payload for the service status.
	var payload serviceStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	// 5) Update the in_service flag and save the vehicle.
	vehicle.InService = *payload.InService
	if err := config.DB.Save(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service status: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service status updated successfully.",
		"vehicle": vehicle,
	})
}

// GetAuthenticatedDriverVehicle fetches the vehicle assigned to the authenticated driver.
func GetAuthenticatedDriverVehicle(c *gin.Context) {
	userID := uint(c.MustGet("user_id").(float64))

	var driver models.Driver
	if err := config.DB.Where("user_id = ?", userID).First(&driver).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No driver profile for this user."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while fetching driver: " + err.Error()})
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.Preload("Documents").Where("driver_id = ?", driver.ID).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No vehicle assigned to this driver."})
			return
		}
		logrus.WithError(err).Error("Error fetching vehicle for driver")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vehicle data."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// This method is typically for administrative use.
func ListDrivers(c *gin.Context) {
	var drivers []models.Driver
	if err := config.DB.Preload("User").Find(&drivers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing drivers: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": drivers})
}
