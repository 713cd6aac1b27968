package controllers

import (
	"encoding/base64"
	"math/rand"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// wasteLabels is the fixed label set the stub picks from. Placeholder
// until a real model is wired in.
var wasteLabels = []string{"Plastic", "Metal", "Organic", "Glass", "Paper", "Human"}

type classifyRequest struct {
	Image string `json:"image" binding:"required"`
}

type boundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ClassifyWaste decodes the submitted image and returns a simulated
// classification. The pixel content never influences the label; the
// bounding box is a fixed placeholder the frontend overlays.
func ClassifyWaste(c *gin.Context) {
	var input classifyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Expect a data URL: "data:image/...;base64,<payload>"
	_, payload, found := strings.Cut(input.Image, ",")
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image must be a base64 data URL"})
		return
	}
	imageBytes, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed base64 image data"})
		return
	}

	result := runModelClassification(imageBytes)

	c.JSON(http.StatusOK, gin.H{
		"result":      result,
		"boundingBox": boundingBox{X: 100, Y: 150, Width: 200, Height: 100},
	})
}

// runModelClassification simulates model inference with a uniformly
// random label.
func runModelClassification(imageBytes []byte) string {
	return wasteLabels[rand.Intn(len(wasteLabels))]
}
