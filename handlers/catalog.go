package handlers

import (
	"net/http"

	"quickmart-api/models"

	"github.com/gin-gonic/gin"
)

// ListProducts returns the catalog, optionally filtered by category or a
// free-text search (public).
func (h *Handler) ListProducts(c *gin.Context) {
	products := models.Catalog

	if category := c.Query("category"); category != "" {
		products = models.ProductsByCategory(category)
	}
	if search := c.Query("search"); search != "" {
		products = models.SearchProducts(search)
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(products),
		"products": products,
	})
}

// GetProduct returns a single catalog entry (public).
func (h *Handler) GetProduct(c *gin.Context) {
	product := models.FindProduct(c.Param("id"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// ListCategories returns the category names shown on the home screen.
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories})
}

// SearchProducts runs a catalog search and records the query in the
// recent-searches cache, newest first.
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	results := models.SearchProducts(query)
	recent := h.Cache.AddRecentSearch(query)

	c.JSON(http.StatusOK, gin.H{
		"count":           len(results),
		"products":        results,
		"recent_searches": recent,
	})
}

// RecentSearches returns the cached search history.
func (h *Handler) RecentSearches(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recent_searches": h.Cache.RecentSearches()})
}
