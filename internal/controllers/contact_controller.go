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

func contactStore() *store.Store[models.Contact] {
	return store.New[models.Contact](config.DB)
}

// AddContact stores a contact-us message.
func AddContact(c *gin.Context) {
	var input models.Contact
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := contactStore().Create(&input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save contact: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, input)
}

func GetAllContacts(c *gin.Context) {
	contacts, err := contactStore().List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch contacts"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func GetContactByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID format"})
		return
	}

	contact, err := contactStore().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Contact not found with Id: %d", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch contact"})
		return
	}
	c.JSON(http.StatusOK, contact)
}

// UpdateContact replaces every field of the stored message.
func UpdateContact(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID format"})
		return
	}

	var input models.Contact
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contacts := contactStore()
	contact, err := contacts.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Contact not found with Id: %d", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch contact"})
		return
	}

	contact.Name = input.Name
	contact.Email = input.Email
	contact.Message = input.Message

	if err := contacts.Save(contact); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update contact: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, contact)
}

func DeleteContact(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID format"})
		return
	}

	if err := contactStore().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Contact not found with Id: %d", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Contact with Id: %d has been deleted successfully", id))
}
