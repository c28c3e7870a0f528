package handlers

import (
	"net/http"

	"quickmart-api/models"
	"quickmart-api/store"

	"github.com/gin-gonic/gin"
)

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityRequest carries the new quantity. No lower bound here on
// purpose: values below 1 flow through to the store, which ignores them.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the caller's cart snapshot.
func (h *Handler) GetCart(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": s.Cart.State()})
}

// AddToCart snapshots a catalog product into the cart. Adding a product
// already in the cart bumps its quantity in place.
func (h *Handler) AddToCart(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.FindProduct(req.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if !product.InStock {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product '" + product.Name + "' is out of stock"})
		return
	}

	s.Cart.Dispatch(store.AddItem{Item: models.CartItem{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: req.Quantity,
		Image:    product.Image,
	}})

	c.JSON(http.StatusOK, gin.H{
		"message": product.Name + " added to cart",
		"cart":    s.Cart.State(),
	})
}

// UpdateCartItem sets the quantity of one cart line. Quantities below 1
// are ignored — the line stays as it was, and removal has its own route.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.Cart.Dispatch(store.UpdateQuantity{ID: c.Param("id"), Quantity: req.Quantity})
	c.JSON(http.StatusOK, gin.H{"cart": s.Cart.State()})
}

// RemoveCartItem drops one cart line. Removing an absent line is fine.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	s.Cart.Dispatch(store.RemoveItem{ID: c.Param("id")})
	c.JSON(http.StatusOK, gin.H{"cart": s.Cart.State()})
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	s.Cart.Dispatch(store.ClearCart{})
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared", "cart": s.Cart.State()})
}
