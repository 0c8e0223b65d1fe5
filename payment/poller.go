// File: payment/poller.go
package payment

import (
	"context"
	"fmt"
	"time"

	"cocoliving/models"
	"cocoliving/utils"

	"go.uber.org/zap"
)

// StatusChecker is the slice of the API client the poller needs.
type StatusChecker interface {
	PaymentStatus(ctx context.Context, orderID string) (string, error)
}

// Poller resolves a payment after the redirect landed: it polls the status
// endpoint at a fixed interval until the backend reports something other
// than pending, the attempt budget runs out, or ctx is cancelled. There is
// no backoff; each attempt is independent.
type Poller struct {
	Checker     StatusChecker
	Interval    time.Duration
	MaxAttempts int
}

func NewPoller(checker StatusChecker) *Poller {
	return &Poller{
		Checker:     checker,
		Interval:    2 * time.Second,
		MaxAttempts: 10,
	}
}

// Await returns the terminal payment status for the order. A SUCCESS
// status routes to the success path; any other terminal status is a
// failure the caller reports with the backend's wording.
func (p *Poller) Await(ctx context.Context, orderID string) (string, error) {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	var last string
	for i := 0; i < attempts; i++ {
		status, err := p.Checker.PaymentStatus(ctx, orderID)
		if err != nil {
			return "", fmt.Errorf("failed to verify payment status: %w", err)
		}
		if status != models.PaymentStatusPending {
			return status, nil
		}
		last = status
		utils.GetLogger().Debug("payment still pending",
			zap.String("orderId", orderID), zap.Int("attempt", i+1))

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(p.Interval):
		}
	}
	return last, nil
}
