package routes

import (
	"quickmart-api/handlers"
	"quickmart-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/otp", h.RequestOTP)
		public.POST("/auth/verify", h.VerifyOTP)

		// Catalog (no auth needed)
		public.GET("/products", h.ListProducts)
		public.GET("/products/:id", h.GetProduct)
		public.GET("/categories", h.ListCategories)
		public.GET("/search", h.SearchProducts)
		public.GET("/search/recent", h.RecentSearches)

		// Saved locations & address records (device-local cache surface)
		public.GET("/locations/saved", h.GetSavedLocations)
		public.POST("/locations", h.SaveAddressDetails)
		public.GET("/locations/details", h.GetAddressDetails)

		// Status progression info (great for docs/Postman)
		public.GET("/order-status-flow", h.GetOrderStatusFlow)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.POST("/auth/logout", h.Logout)

		// Profile & address book
		auth.GET("/profile", h.GetProfile)
		auth.PUT("/profile", h.UpdateProfile)
		auth.GET("/addresses", h.ListAddresses)
		auth.POST("/addresses", h.AddAddress)
		auth.PUT("/addresses/:id", h.UpdateAddress)
		auth.DELETE("/addresses/:id", h.RemoveAddress)
		auth.PUT("/addresses/:id/default", h.SetDefaultAddress)

		// Cart
		auth.GET("/cart", h.GetCart)
		auth.POST("/cart/items", h.AddToCart)
		auth.PUT("/cart/items/:id", h.UpdateCartItem)
		auth.DELETE("/cart/items/:id", h.RemoveCartItem)
		auth.DELETE("/cart", h.ClearCart)

		// Checkout & orders
		auth.POST("/checkout", h.Checkout)
		auth.GET("/orders", h.GetMyOrders)
		auth.GET("/orders/:id", h.GetOrderDetail)
		auth.POST("/orders/:id/track", h.TrackOrder)
		auth.DELETE("/orders/:id/track", h.StopTracking)
		auth.PUT("/orders/:id/status", h.UpdateOrderStatus)
		auth.DELETE("/orders", h.ClearOrders)
	}
}
