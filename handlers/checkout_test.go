package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"quickmart-api/models"
	"quickmart-api/session"
	"quickmart-api/storage"
	"quickmart-api/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) (*gin.Engine, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cache, err := storage.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)

	h := New(session.NewManager(), cache)

	r := gin.New()
	// Stand-in for the JWT middleware: every request is user u-1
	r.Use(func(c *gin.Context) {
		c.Set("userID", "u-1")
		c.Set("phone", "+919876543210")
	})
	r.POST("/api/checkout", h.Checkout)
	r.GET("/api/cart", h.GetCart)
	r.POST("/api/cart/items", h.AddToCart)
	r.PUT("/api/cart/items/:id", h.UpdateCartItem)
	r.GET("/api/orders", h.GetMyOrders)
	return r, h
}

func loginTestUser(h *Handler, withDefaultAddress bool) *session.Session {
	s := h.Sessions.Start("u-1")
	user := models.User{ID: "u-1", Name: "Asha", Phone: "+919876543210"}
	if withDefaultAddress {
		user.Addresses = []models.UserAddress{
			{ID: "addr-1", Street: "12 MG Road", City: "Bengaluru", State: "KA", ZipCode: "560001", IsDefault: true},
		}
		user.DefaultAddressID = "addr-1"
	}
	s.User.Dispatch(store.Login{User: user})
	return s
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutWithoutSessionIs401(t *testing.T) {
	r, _ := testRouter(t)
	w := doJSON(r, http.MethodPost, "/api/checkout", gin.H{"payment_method": "cash"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutWithoutDefaultAddressIs412(t *testing.T) {
	r, h := testRouter(t)
	s := loginTestUser(h, false)
	s.Cart.Dispatch(store.AddItem{Item: models.CartItem{ID: "milk-1", Price: 28, Quantity: 1}})

	w := doJSON(r, http.MethodPost, "/api/checkout", gin.H{"payment_method": "cash"})
	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
	assert.Contains(t, w.Body.String(), "address-entry")
	assert.Len(t, s.Cart.State().Items, 1, "cart must survive a failed checkout")
}

func TestCheckoutEmptyCartIs400(t *testing.T) {
	r, h := testRouter(t)
	loginTestUser(h, true)

	w := doJSON(r, http.MethodPost, "/api/checkout", gin.H{"payment_method": "cash"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutDeclinedCardIs402(t *testing.T) {
	r, h := testRouter(t)
	s := loginTestUser(h, true)
	s.Cart.Dispatch(store.AddItem{Item: models.CartItem{ID: "milk-1", Price: 28, Quantity: 1}})

	w := doJSON(r, http.MethodPost, "/api/checkout", gin.H{
		"payment_method": "card",
		"card_number":    "4111111111110000",
		"card_expiry":    "12/27",
		"card_cvv":       "123",
		"card_name":      "ASHA K",
	})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Empty(t, s.Orders.State().Orders, "no order on a declined payment")
	assert.Len(t, s.Cart.State().Items, 1)
}

func TestCheckoutSuccessCreatesOrderAndClearsCart(t *testing.T) {
	r, h := testRouter(t)
	s := loginTestUser(h, true)
	s.Cart.Dispatch(store.AddItem{Item: models.CartItem{ID: "milk-1", Name: "Amul Taaza Toned Fresh Milk", Price: 28, Quantity: 3}})

	w := doJSON(r, http.MethodPost, "/api/checkout", gin.H{"payment_method": "cash"})
	require.Equal(t, http.StatusCreated, w.Code)

	state := s.Orders.State()
	require.Len(t, state.Orders, 1)
	order := state.Orders[0]
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 84.0, order.Total)
	assert.Equal(t, "12 MG Road", order.DeliveryAddress)
	require.NotNil(t, state.CurrentOrder)
	assert.Equal(t, order.ID, state.CurrentOrder.ID)

	assert.Empty(t, s.Cart.State().Items, "cart is cleared after the order is recorded")
}

func TestCartRoutesEnforceClampPolicy(t *testing.T) {
	r, h := testRouter(t)
	loginTestUser(h, true)

	w := doJSON(r, http.MethodPost, "/api/cart/items", gin.H{"product_id": "milk-1", "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPut, "/api/cart/items/milk-1", gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)

	// Quantity below 1 leaves the line untouched
	w = doJSON(r, http.MethodPut, "/api/cart/items/milk-1", gin.H{"quantity": -1})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cart store.CartState `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Cart.Items, 1)
	assert.Equal(t, 3, resp.Cart.Items[0].Quantity)
	assert.Equal(t, 84.0, resp.Cart.Total)
}

func TestAddUnknownProductIs404(t *testing.T) {
	r, h := testRouter(t)
	loginTestUser(h, true)

	w := doJSON(r, http.MethodPost, "/api/cart/items", gin.H{"product_id": "ghost-1", "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
