package statemachine

import (
	"time"

	"quickmart-api/models"
)

// progression is the authoritative forward order of delivery states.
var progression = []models.OrderStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

// rank is used for O(1) ordering lookups
var rank = func() map[models.OrderStatus]int {
	m := make(map[models.OrderStatus]int)
	for i, s := range progression {
		m[s] = i
	}
	return m
}()

// TimelineStep is one scheduled transition of the simulated delivery
// pipeline. Delay is measured from the reference start time, not from the
// previous step.
type TimelineStep struct {
	Status models.OrderStatus `json:"status"`
	Delay  time.Duration      `json:"delay"`
}

// DeliverySteps returns the fixed simulation schedule: confirmed at +5s,
// preparing at +10s, out_for_delivery at +15s, delivered at +20s.
func DeliverySteps() []TimelineStep {
	return []TimelineStep{
		{Status: models.StatusConfirmed, Delay: 5 * time.Second},
		{Status: models.StatusPreparing, Delay: 10 * time.Second},
		{Status: models.StatusOutForDelivery, Delay: 15 * time.Second},
		{Status: models.StatusDelivered, Delay: 20 * time.Second},
	}
}

// Progression returns the full ordered status list for documentation.
func Progression() []models.OrderStatus {
	return progression
}

// IsValid reports whether s is a known order status.
func IsValid(s models.OrderStatus) bool {
	_, ok := rank[s]
	return ok
}

// Next returns the status following s in the progression, and false when s
// is terminal or unknown.
func Next(s models.OrderStatus) (models.OrderStatus, bool) {
	i, ok := rank[s]
	if !ok || i+1 >= len(progression) {
		return "", false
	}
	return progression[i+1], true
}

// IsTerminal reports whether s is the final state of the progression.
func IsTerminal(s models.OrderStatus) bool {
	return s == progression[len(progression)-1]
}

// Compare orders two statuses by progression rank. Unknown statuses sort
// before pending. Note this is informational only: explicit status updates
// are not required to move forward, only the simulated timeline is.
func Compare(a, b models.OrderStatus) int {
	ra, rb := -1, -1
	if i, ok := rank[a]; ok {
		ra = i
	}
	if i, ok := rank[b]; ok {
		rb = i
	}
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}
