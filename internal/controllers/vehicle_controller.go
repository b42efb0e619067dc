package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleet_docs/internal/config"
	"fleet_docs/internal/models"
)

// CreateVehicle lets a fleet manager register a vehicle; defaults InService to true
func CreateVehicle(c *gin.Context) {
	var input struct {
		Name         string `json:"name" binding:"required"`
		LicensePlate string `json:"license_plate" binding:"required"`
		DriverID     uint   `json:"driver_id"`
	}

	// Parse JSON
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle input: " + err.Error()})
		return
	}

	// Get manager ID from token claims
	managerID := uint(c.MustGet("user_id").(float64))

	vehicle := models.Vehicle{
		Name:         input.Name,
		LicensePlate: input.LicensePlate,
		ManagerID:    managerID,
		DriverID:     input.DriverID,
		InService:    true,
	}

	// Save to DB
	if err := config.DB.Create(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
}

func GetMyVehicles(c *gin.Context) {
	userID := c.MustGet("user_id").(float64)

	var vehicles []models.Vehicle
	if err := config.DB.Where("manager_id = ?", uint(userID)).Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching vehicles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// This method is typically for administrative use.
func ListVehicles(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := config.DB.Preload("Driver").Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}

func GetVehicle(c *gin.Context) {
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := config.DB.Preload("Driver").Preload("Documents").First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while fetching vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

func UpdateVehicle(c *gin.Context) {
	userID := c.MustGet("user_id").(float64)
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := config.DB.Where("id = ? AND manager_id = ?", id, uint(userID)).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	if err := c.ShouldBindJSON(&vehicle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}

	if err := config.DB.Save(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle: " + err.Error()})
		return
	}

	// Keep the denormalized plate on the vehicle's documents in sync.
	if err := config.DB.Model(&models.Document{}).
		Where("vehicle_id = ?", vehicle.ID).
		Update("license_plate", vehicle.LicensePlate).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync document plates: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

func DeleteVehicle(c *gin.Context) {
	userID := c.MustGet("user_id").(float64)
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := config.DB.Where("id = ? AND manager_id = ?", id, uint(userID)).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	// Documents cascade with their vehicle; linked calendar events do not.
	if err := config.DB.Where("vehicle_id = ?", vehicle.ID).Delete(&models.Document{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle documents: " + err.Error()})
		return
	}

	config.DB.Delete(&vehicle)
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted"})
}

// GetVehicleDocuments lists the compliance documents attached to one vehicle.
func GetVehicleDocuments(c *gin.Context) {
	vehIDStr := c.Param("id")
	vehID, err := strconv.ParseUint(vehIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Vehicle ID format."})
		return
	}

	var documents []models.Document
	if err := config.DB.Where("vehicle_id = ?", uint(vehID)).Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching documents: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": documents})
}

// GetVehicleFeed returns the vehicle's activity feed, newest first. The
// expiration sweep posts its notifications here.
func GetVehicleFeed(c *gin.Context) {
	vehIDStr := c.Param("id")
	vehID, err := strconv.ParseUint(vehIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Vehicle ID format."})
		return
	}

	var posts []models.FeedPost
	if err := config.DB.Where("vehicle_id = ?", uint(vehID)).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching feed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"feed": posts})
}
