package controllers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"ecobin_backend/internal/config"
	"ecobin_backend/internal/models"
	"ecobin_backend/internal/store"
)

func scheduleStore() *store.Store[models.CollectionSchedule] {
	return store.New[models.CollectionSchedule](config.DB)
}

// AddSchedule creates a collection schedule from multipart form fields.
// The truck image is required here; updates may omit it.
func AddSchedule(c *gin.Context) {
	fileHeader, err := c.FormFile("truckImage")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "truckImage is required: " + err.Error()})
		return
	}
	image, err := readUpload(fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read truckImage: " + err.Error()})
		return
	}

	schedule := models.CollectionSchedule{
		DriverName:     c.PostForm("driverName"),
		WasteType:      c.PostForm("wasteType"),
		CollectionDate: c.PostForm("collectionDate"),
		Location:       c.PostForm("location"),
		TruckImage:     image,
	}

	if err := scheduleStore().Create(&schedule); err != nil {
		logrus.WithError(err).Error("failed to create schedule")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule: " + err.Error()})
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Schedule created successfully with Id: %d", schedule.ID))
}

// GetAllSchedules lists every schedule, unfiltered.
func GetAllSchedules(c *gin.Context) {
	schedules, err := scheduleStore().List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedules"})
		return
	}
	c.JSON(http.StatusOK, schedules)
}

func GetScheduleByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID format"})
		return
	}

	schedule, err := scheduleStore().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Schedule not found with Id: %d", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedule"})
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// UpdateSchedule replaces every scalar field. The image is replaced only
// when a new non-empty upload is attached; otherwise the stored bytes
// are kept as-is.
func UpdateSchedule(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID format"})
		return
	}

	schedules := scheduleStore()
	schedule, err := schedules.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Schedule not found with Id: %d", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedule"})
		return
	}

	schedule.DriverName = c.PostForm("driverName")
	schedule.WasteType = c.PostForm("wasteType")
	schedule.CollectionDate = c.PostForm("collectionDate")
	schedule.Location = c.PostForm("location")

	if fileHeader, err := c.FormFile("truckImage"); err == nil && fileHeader.Size > 0 {
		image, err := readUpload(fileHeader)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read truckImage: " + err.Error()})
			return
		}
		schedule.TruckImage = image
	}

	if err := schedules.Save(schedule); err != nil {
		logrus.WithError(err).Error("failed to update schedule")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule: " + err.Error()})
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Schedule updated with Id: %d", schedule.ID))
}

func DeleteSchedule(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID format"})
		return
	}

	if err := scheduleStore().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Schedule not found with Id: %d", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule"})
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Collection schedule deleted successfully with Id: %d", id))
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
