package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecobin_backend/internal/config"
	"ecobin_backend/internal/models"
	"ecobin_backend/internal/store"
)

func pickupStore() *store.Store[models.PickupRequest] {
	return store.New[models.PickupRequest](config.DB)
}

// AddPickupRequest stores a waste pickup request posted by a customer.
func AddPickupRequest(c *gin.Context) {
	var input models.PickupRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pickupStore().Create(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save pickup request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, input)
}

func GetAllPickupRequests(c *gin.Context) {
	requests, err := pickupStore().List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch pickup requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

func GetPickupRequestByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID format"})
		return
	}

	request, err := pickupStore().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Pickup request not found with Id: %d", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch pickup request"})
		return
	}
	c.JSON(http.StatusOK, request)
}

// UpdatePickupRequest replaces every field of the stored request.
func UpdatePickupRequest(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID format"})
		return
	}

	var input models.PickupRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requests := pickupStore()
	request, err := requests.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Pickup request not found with Id: %d", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch pickup request"})
		return
	}

	request.Name = input.Name
	request.Address = input.Address
	request.Mobile = input.Mobile
	request.WasteType = input.WasteType
	request.Quantity = input.Quantity
	request.FrequencyPickup = input.FrequencyPickup

	if err := requests.Save(request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update pickup request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, request)
}

func DeletePickupRequest(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID format"})
		return
	}

	if err := pickupStore().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Pickup request not found with Id: %d", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pickup request"})
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Pickup request with Id: %d has been deleted successfully", id))
}
