package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"ecobin_backend/internal/models"
)

// SaveDetection logs a detection event from the frontend object
// detector. Detections are never persisted.
func SaveDetection(c *gin.Context) {
	var detection models.Detection
	if err := c.ShouldBindJSON(&detection); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{
		"objectType": detection.ObjectType,
		"confidence": detection.Confidence,
		"timestamp":  detection.Timestamp,
	}).Info("Detection received")

	c.String(http.StatusOK, "Detection received")
}
