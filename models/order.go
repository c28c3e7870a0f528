package models

import "time"

// OrderStatus represents all possible states of a storefront order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
)

// PaymentMethod is how the customer pays at checkout
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// CartItem is one line in a cart. Name and price are snapshots of the
// product at the time it was added, not references into the catalog.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// LineTotal is this item's contribution to the cart total.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

type Order struct {
	ID              string        `json:"id"`
	Items           []CartItem    `json:"items"`
	Total           float64       `json:"total"`
	Status          OrderStatus   `json:"status"`
	DeliveryAddress string        `json:"delivery_address"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	EstimatedTime   string        `json:"estimated_delivery_time,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}
