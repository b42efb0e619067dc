package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"fleet_docs/internal/config"
	"fleet_docs/internal/models"
	"fleet_docs/internal/policy"
	pgstore "fleet_docs/internal/repository/postgres"
	"fleet_docs/internal/service"
	"fleet_docs/internal/storage"
)

// --- Helper Structs for Request Bodies ---

// createDocumentInput defines the expected JSON for filing a new document.
type createDocumentInput struct {
	Name           string `json:"name" binding:"required"`
	DocumentType   string `json:"document_type" binding:"required"`
	ExpirationDate string `json:"expiration_date"` // "2006-01-02", optional
	VehicleID      uint   `json:"vehicle_id" binding:"required"`
}

// updateDocumentInput defines the fields a client can change on a document.
// The vehicle link, event link and derived fields are not client-writable.
type updateDocumentInput struct {
	Name           *string `json:"name"`
	DocumentType   *string `json:"document_type"`
	ExpirationDate *string `json:"expiration_date"` // "" clears the date
}

func reminderService() *service.ReminderService {
	return service.NewReminderService(
		pgstore.NewDocumentStore(config.DB),
		pgstore.NewEventStore(config.DB),
	)
}

func parseExpirationDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("expiration_date must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}

// --- Document Controller Functions ---

func CreateDocument(c *gin.Context) {
	var input createDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document input: " + err.Error()})
		return
	}

	if !models.ValidDocumentType(input.DocumentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown document type: " + input.DocumentType})
		return
	}

	expiration, err := parseExpirationDate(input.ExpirationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The document must hang off an existing vehicle.
	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, input.VehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while fetching vehicle: " + err.Error()})
		return
	}

	document := models.Document{
		Name:           input.Name,
		DocumentType:   input.DocumentType,
		ExpirationDate: expiration,
		VehicleID:      vehicle.ID,
	}
	if err := config.DB.Create(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create document: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"document": document})
}

// ListDocuments returns documents, optionally narrowed by vehicle and by the
// expired filter (?expired=true|false). Note the filter's stored-date
// semantics: expired=false only matches documents that have an expiration
// date today or later.
func ListDocuments(c *gin.Context) {
	query := config.DB.Model(&models.Document{}).Preload("Vehicle")

	if vehIDStr := c.Query("vehicle_id"); vehIDStr != "" {
		vehID, err := strconv.ParseUint(vehIDStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle_id format."})
			return
		}
		query = query.Where("vehicle_id = ?", uint(vehID))
	}

	if expiredStr := c.Query("expired"); expiredStr != "" {
		expired, err := strconv.ParseBool(expiredStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expired must be true or false"})
			return
		}
		cond, arg, ok := policy.ExpiredCondition("=", expired, time.Now())
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported expired filter"})
			return
		}
		query = query.Where(cond, arg)
	}

	var documents []models.Document
	if err := query.Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing documents: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": documents})
}

func GetDocument(c *gin.Context) {
	id := c.Param("id")

	var document models.Document
	if err := config.DB.Preload("Vehicle").Preload("Vehicle.Driver").First(&document, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while fetching document: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"document": document})
}

func UpdateDocument(c *gin.Context) {
	id := c.Param("id")

	var document models.Document
	if err := config.DB.First(&document, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while fetching document: " + err.Error()})
		return
	}

	var input updateDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	if input.Name != nil {
		document.Name = *input.Name
	}
	if input.DocumentType != nil {
		if !models.ValidDocumentType(*input.DocumentType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown document type: " + *input.DocumentType})
			return
		}
		document.DocumentType = *input.DocumentType
	}
	if input.ExpirationDate != nil {
		expiration, err := parseExpirationDate(*input.ExpirationDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		document.ExpirationDate = expiration
	}

	// Save runs the BeforeSave hook, refreshing the derived expiration
	// fields and the denormalized plate.
	if err := config.DB.Save(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"document": document})
}

func DeleteDocument(c *gin.Context) {
	id := c.Param("id")

	var document models.Document
	if err := config.DB.First(&document, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	// The linked calendar event stays; only the document goes.
	if err := config.DB.Delete(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document: " + err.Error()})
		return
	}

	if document.AttachmentKey != "" {
		if err := config.Store.Delete(c.Request.Context(), document.AttachmentKey); err != nil {
			logrus.WithError(err).WithField("key", document.AttachmentKey).
				Warn("failed to remove attachment from storage")
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// UploadAttachment stores a document's file (multipart field "file") in
// object storage and records its key and original filename.
func UploadAttachment(c *gin.Context) {
	id := c.Param("id")

	var document models.Document
	if err := config.DB.First(&document, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file: " + err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not read upload: " + err.Error()})
		return
	}
	defer file.Close()

	key := "documents/" + uuid.NewString() + filepath.Ext(fileHeader.Filename)
	_, err = config.Store.Put(c.Request.Context(), key, file, storage.PutOptions{
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Metadata:    map[string]string{"original-filename": fileHeader.Filename},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store attachment: " + err.Error()})
		return
	}

	previousKey := document.AttachmentKey
	document.AttachmentKey = key
	document.AttachmentName = fileHeader.Filename
	if err := config.DB.Save(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document: " + err.Error()})
		return
	}

	// Replaced attachments are removed best-effort.
	if previousKey != "" {
		if err := config.Store.Delete(c.Request.Context(), previousKey); err != nil {
			logrus.WithError(err).WithField("key", previousKey).
				Warn("failed to remove replaced attachment")
		}
	}

	c.JSON(http.StatusOK, gin.H{"document": document})
}

// DownloadAttachment streams a document's attachment back to the client.
func DownloadAttachment(c *gin.Context) {
	id := c.Param("id")

	var document models.Document
	if err := config.DB.First(&document, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	if document.AttachmentKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document has no attachment"})
		return
	}

	rc, info, err := config.Store.Get(c.Request.Context(), document.AttachmentKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attachment: " + err.Error()})
		return
	}
	defer rc.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", document.AttachmentName),
	}
	c.DataFromReader(http.StatusOK, info.Size, info.ContentType, rc, extraHeaders)
}

// CreateDocumentReminder creates (or re-opens) the calendar reminder for a
// document's expiration and returns an action directive for the client to
// open the event form. The acting user's timezone comes from the Time-Zone
// header, defaulting to UTC.
func CreateDocumentReminder(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Document ID format."})
		return
	}

	loc := time.UTC
	if tz := c.GetHeader("Time-Zone"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown timezone: " + tz})
			return
		}
		loc = parsed
	}

	action, err := reminderService().CreateReminder(c.Request.Context(), uint(id), loc)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoExpirationDate):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"action": action})
}
