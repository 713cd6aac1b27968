package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"ecobin_backend/internal/config"
	"ecobin_backend/internal/models"
	"ecobin_backend/internal/store"
)

func reportStore() *store.Store[models.WasteReport] {
	return store.New[models.WasteReport](config.DB)
}

// bindReportForm reads the scalar report fields shared by create and
// update. Weight and reward are numeric form values.
func bindReportForm(c *gin.Context, report *models.WasteReport) error {
	weight, err := strconv.Atoi(c.PostForm("wasteWeight"))
	if err != nil {
		return fmt.Errorf("wasteWeight must be a number: %w", err)
	}
	reword, err := strconv.Atoi(c.PostForm("reword"))
	if err != nil {
		return fmt.Errorf("reword must be a number: %w", err)
	}

	report.WasteTitle = c.PostForm("wasteTitle")
	report.Date = c.PostForm("date")
	report.WasteType = c.PostForm("wasteType")
	report.WasteWeight = weight
	report.WasteLocation = c.PostForm("wasteLocation")
	report.Description = c.PostForm("description")
	report.Reword = reword
	report.CustomerName = c.PostForm("customerName")
	return nil
}

func AddReport(c *gin.Context) {
	fileHeader, err := c.FormFile("wasteImage")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "wasteImage is required: " + err.Error()})
		return
	}
	image, err := readUpload(fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read wasteImage: " + err.Error()})
		return
	}

	var report models.WasteReport
	if err := bindReportForm(c, &report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report.WasteImage = image

	if err := reportStore().Create(&report); err != nil {
		logrus.WithError(err).Error("failed to create waste report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save waste report: " + err.Error()})
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Waste report saved successfully with Id: %d", report.ID))
}

func GetAllReports(c *gin.Context) {
	reports, err := reportStore().List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch waste reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

func GetReportByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID format"})
		return
	}

	report, err := reportStore().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Waste report not found with Id: %d", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch waste report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// UpdateReport replaces all scalar fields; the image only when a new
// non-empty upload is attached.
func UpdateReport(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID format"})
		return
	}

	reports := reportStore()
	report, err := reports.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Waste report not found with Id: %d", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch waste report"})
		return
	}

	if err := bindReportForm(c, report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if fileHeader, err := c.FormFile("wasteImage"); err == nil && fileHeader.Size > 0 {
		image, err := readUpload(fileHeader)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read wasteImage: " + err.Error()})
			return
		}
		report.WasteImage = image
	}

	if err := reports.Save(report); err != nil {
		logrus.WithError(err).Error("failed to update waste report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update waste report: " + err.Error()})
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Waste report updated successfully with Id: %d", report.ID))
}

func DeleteReport(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID format"})
		return
	}

	if err := reportStore().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Waste report not found with Id: %d", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete waste report"})
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Waste report deleted successfully with Id: %d", id))
}
