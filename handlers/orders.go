package handlers

import (
	"net/http"

	"quickmart-api/models"
	"quickmart-api/statemachine"
	"quickmart-api/store"

	"github.com/gin-gonic/gin"
)

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// GetMyOrders returns the session's order history and current order.
func (h *Handler) GetMyOrders(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	state := s.Orders.State()
	c.JSON(http.StatusOK, gin.H{
		"count":         len(state.Orders),
		"orders":        state.Orders,
		"current_order": state.CurrentOrder,
	})
}

// GetOrderDetail returns a single order.
func (h *Handler) GetOrderDetail(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	order, found := s.Orders.Find(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// TrackOrder makes an order current and starts the simulated delivery
// pipeline for it: confirmed, preparing, out_for_delivery and delivered on
// the fixed schedule. Tracking the same order again restarts its schedule.
func (h *Handler) TrackOrder(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	order, found := s.Orders.Find(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	s.Orders.Dispatch(store.SetCurrentOrder{Order: &order})
	s.Track(order.ID, statemachine.DeliverySteps())

	c.JSON(http.StatusOK, gin.H{
		"message":  "Tracking started",
		"order":    order,
		"schedule": statemachine.DeliverySteps(),
	})
}

// StopTracking cancels the order's delivery schedule as a group; pending
// transitions never fire after this returns.
func (h *Handler) StopTracking(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	s.StopTracking(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Tracking stopped"})
}

// UpdateOrderStatus applies an external status update. The store ignores
// unknown order ids, so the response reports the order as missing without
// treating the dispatch as an error. No ordering check is applied — an
// external caller may move a status backward.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !statemachine.IsValid(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status. Valid statuses: pending, confirmed, preparing, out_for_delivery, delivered"})
		return
	}

	orderID := c.Param("id")
	s.Orders.Dispatch(store.UpdateOrderStatus{OrderID: orderID, Status: req.Status})

	order, found := s.Orders.Find(orderID)
	if !found {
		c.JSON(http.StatusOK, gin.H{"message": "No matching order; update ignored"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated", "order": order})
}

// ClearOrders wipes the session's order history.
func (h *Handler) ClearOrders(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	s.Orders.Dispatch(store.ClearOrders{})
	c.JSON(http.StatusOK, gin.H{"message": "Order history cleared"})
}

// GetOrderStatusFlow documents the status progression and the simulation
// schedule (public).
func (h *Handler) GetOrderStatusFlow(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"progression": statemachine.Progression(),
		"schedule":    statemachine.DeliverySteps(),
		"note":        "Delays are measured from the moment tracking starts",
	})
}
