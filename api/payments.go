// File: api/payments.go
package api

import (
	"context"
	"fmt"

	"cocoliving/models"
)

// PaymentStatus fetches the settlement status for an order. SUCCESS is the
// only status that routes to the success screen; everything else observed
// after the redirect is a failure.
func (c *Client) PaymentStatus(ctx context.Context, orderID string) (string, error) {
	path := fmt.Sprintf("/api/payments/status/%s", orderID)
	var res models.PaymentStatusResponse
	if err := c.getJSON(ctx, path, &res, authRequired); err != nil {
		return "", err
	}
	if res.PaymentStatus == "" {
		return "", fmt.Errorf("payment status response missing status")
	}
	return res.PaymentStatus, nil
}
