package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"quickmart-api/models"
	"quickmart-api/store"

	"github.com/gin-gonic/gin"
)

type CheckoutRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required,oneof=card cash"`
	CardNumber    string               `json:"card_number"`
	CardExpiry    string               `json:"card_expiry"`
	CardCVV       string               `json:"card_cvv"`
	CardName      string               `json:"card_name"`
}

// Checkout places an order from the current cart. Gating mirrors the app
// flow: an unauthenticated caller is sent back to login, a caller without
// a default address is sent to address entry. Payment is simulated; a
// rejection is returned for the client to retry, never retried here.
//
// Order creation and cart clearing are two separate dispatches with no
// transaction spanning them — an early failure in between leaves the order
// recorded and the cart intact, which callers accept.
func (h *Handler) Checkout(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	userState := s.User.State()
	if !userState.IsAuthenticated || userState.User == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "Login required before checkout",
			"redirect": "login",
		})
		return
	}
	defaultAddr := userState.User.DefaultAddress()
	if defaultAddr == nil {
		c.JSON(http.StatusPreconditionFailed, gin.H{
			"error":    "A default delivery address is required before checkout",
			"redirect": "address-entry",
		})
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart := s.Cart.State()
	if len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	if req.PaymentMethod == models.PaymentCard {
		if err := chargeCard(req); err != nil {
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error":  "Payment failed",
				"reason": err.Error(),
				"retry":  "Please try again or use a different payment method",
			})
			return
		}
	}

	order := models.Order{
		ID:              fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
		Items:           cart.Items,
		Total:           cart.Total,
		Status:          models.StatusPending,
		DeliveryAddress: defaultAddr.Street,
		PaymentMethod:   req.PaymentMethod,
		EstimatedTime:   "30-45 minutes",
		CreatedAt:       time.Now(),
	}

	s.Orders.Dispatch(store.CreateOrder{Order: order})
	s.Cart.Dispatch(store.ClearCart{})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
		"track":   "/api/orders/" + order.ID + "/track",
	})
}

// chargeCard is the stand-in payment gateway. It validates shape only and
// declines numbers ending in 0000 so clients can exercise the failure
// path.
func chargeCard(req CheckoutRequest) error {
	number := strings.ReplaceAll(req.CardNumber, " ", "")
	if len(number) < 12 || req.CardExpiry == "" || req.CardCVV == "" || req.CardName == "" {
		return fmt.Errorf("incomplete card details")
	}
	if strings.HasSuffix(number, "0000") {
		return fmt.Errorf("card declined by issuer")
	}
	return nil
}
