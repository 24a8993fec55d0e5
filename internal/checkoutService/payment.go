package checkout

import (
	"context"
	"time"
)

// Payment is a simulated payment that settles after a fixed delay
type Payment struct {
	OrderID string
	done    chan struct{}
}

func startPayment(orderID string, delay time.Duration, settle func()) *Payment {
	p := &Payment{OrderID: orderID, done: make(chan struct{})}
	time.AfterFunc(delay, func() {
		settle()
		close(p.done)
	})
	return p
}

// Done is closed once the payment has settled and the order is confirmed
func (p *Payment) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the payment settles or ctx ends
func (p *Payment) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
