package handlers

import (
	"net/http"
	"time"

	"quickmart-api/models"

	"github.com/gin-gonic/gin"
)

type SaveAddressDetailsRequest struct {
	Type         string             `json:"type" binding:"required,oneof=Home Work Other"`
	Address      string             `json:"address" binding:"required"`
	FlatNumber   string             `json:"flat_number" binding:"required"`
	Landmark     string             `json:"landmark"`
	Instruction  string             `json:"instruction"`
	ContactName  string             `json:"contact_name" binding:"required"`
	ContactPhone string             `json:"contact_phone" binding:"required"`
	Coordinates  models.Coordinates `json:"coordinates"`
}

// GetSavedLocations returns the cached address display strings, newest
// first.
func (h *Handler) GetSavedLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"saved_locations": h.Cache.SavedLocations()})
}

// SaveAddressDetails stores a full delivery-address record and pushes its
// display string onto the saved-locations list. The display string follows
// the app's format: "<Type> - <flat>, <address>".
func (h *Handler) SaveAddressDetails(c *gin.Context) {
	var req SaveAddressDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	display := req.Type + " - " + req.FlatNumber + ", " + req.Address
	details := models.AddressDetails{
		Type:         req.Type,
		Address:      req.Address,
		FlatNumber:   req.FlatNumber,
		Landmark:     req.Landmark,
		Instruction:  req.Instruction,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		Coordinates:  req.Coordinates,
		Timestamp:    time.Now().UnixMilli(),
	}

	h.Cache.SaveAddressDetails(display, details)
	saved := h.Cache.AddSavedLocation(display)

	c.JSON(http.StatusCreated, gin.H{
		"message":         "Address saved",
		"display_string":  display,
		"saved_locations": saved,
	})
}

// GetAddressDetails resolves a display string back to its full record.
func (h *Handler) GetAddressDetails(c *gin.Context) {
	display := c.Query("display")
	if display == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'display' is required"})
		return
	}
	details, ok := h.Cache.AddressDetails(display)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No saved details for this address"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": details})
}
