package handlers

import (
	"net/http"

	"quickmart-api/models"
	"quickmart-api/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newAddressID() string {
	return uuid.NewString()[:8]
}

type AddAddressRequest struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zip_code" binding:"required"`
}

// GetProfile returns the session's user state.
func (h *Handler) GetProfile(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.User.State())
}

// UpdateProfile shallow-merges the provided fields into the profile.
func (h *Handler) UpdateProfile(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	var patch models.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.User.Dispatch(store.UpdateProfile{Patch: patch})
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": s.User.State().User})
}

// ListAddresses returns the address book.
func (h *Handler) ListAddresses(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	state := s.User.State()
	if state.User == nil {
		c.JSON(http.StatusOK, gin.H{"addresses": []models.UserAddress{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"addresses":          state.User.Addresses,
		"default_address_id": state.User.DefaultAddressID,
	})
}

// AddAddress appends a new address. It is not made default automatically;
// use the default route for that.
func (h *Handler) AddAddress(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	var req AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	addr := models.UserAddress{
		ID:      "addr-" + newAddressID(),
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
	}
	s.User.Dispatch(store.AddAddress{Address: addr})
	c.JSON(http.StatusCreated, gin.H{"message": "Address added", "address": addr})
}

// UpdateAddress replaces an address in place. An unknown id changes
// nothing.
func (h *Handler) UpdateAddress(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	var req AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	state := s.User.State()
	isDefault := state.User != nil && state.User.DefaultAddressID == id

	s.User.Dispatch(store.UpdateAddress{Address: models.UserAddress{
		ID:        id,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		IsDefault: isDefault,
	}})
	c.JSON(http.StatusOK, gin.H{"message": "Address updated", "user": s.User.State().User})
}

// RemoveAddress drops an address from the book.
func (h *Handler) RemoveAddress(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	s.User.Dispatch(store.RemoveAddress{ID: c.Param("id")})
	c.JSON(http.StatusOK, gin.H{"message": "Address removed", "user": s.User.State().User})
}

// SetDefaultAddress makes one address the default and clears the flag on
// every other entry.
func (h *Handler) SetDefaultAddress(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	s.User.Dispatch(store.SetDefaultAddress{ID: c.Param("id")})
	c.JSON(http.StatusOK, gin.H{"message": "Default address set", "user": s.User.State().User})
}
