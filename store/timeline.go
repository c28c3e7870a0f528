package store

import (
	"context"
	"time"

	"quickmart-api/statemachine"
)

// Timeline stands in for a real fulfillment backend: it advances one order
// through the delivery pipeline on a fixed schedule. All scheduled
// transitions share a single cancellation — tearing a timeline down stops
// every step that has not fired yet; there is no partial cancellation.
//
// The schedule runs forward unconditionally. It never re-reads the order's
// status, so an out-of-band update is simply overwritten when the next
// step fires.
type Timeline struct {
	OrderID string
	cancel  context.CancelFunc
	done    chan struct{}
}

// StartTimeline schedules the given steps against the order store,
// measuring each delay from the moment of this call. Steps must be sorted
// by ascending delay.
func StartTimeline(ctx context.Context, orders *OrderStore, orderID string, steps []statemachine.TimelineStep) *Timeline {
	ctx, cancel := context.WithCancel(ctx)
	t := &Timeline{
		OrderID: orderID,
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	start := time.Now()
	go func() {
		defer close(t.done)
		timer := time.NewTimer(0)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		for _, step := range steps {
			wait := step.Delay - time.Since(start)
			if wait < 0 {
				wait = 0
			}
			timer.Reset(wait)
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
				orders.Dispatch(UpdateOrderStatus{OrderID: orderID, Status: step.Status})
			}
		}
	}()
	return t
}

// StartDelivery runs the standard delivery schedule for an order.
func StartDelivery(ctx context.Context, orders *OrderStore, orderID string) *Timeline {
	return StartTimeline(ctx, orders, orderID, statemachine.DeliverySteps())
}

// Stop cancels every pending transition and waits for the runner to exit.
// Safe to call more than once.
func (t *Timeline) Stop() {
	t.cancel()
	<-t.done
}

// Done is closed once the timeline has finished or been stopped.
func (t *Timeline) Done() <-chan struct{} {
	return t.done
}
