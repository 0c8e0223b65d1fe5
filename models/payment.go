// models/payment.go
package models

// Payment status values returned by the status endpoint. Anything other
// than SUCCESS after the redirect is treated as a failure.
const (
	PaymentStatusSuccess = "SUCCESS"
	PaymentStatusPending = "PENDING"
	PaymentStatusFailed  = "FAILED"
)

// PaymentStatusResponse is the body of the payment status endpoint.
type PaymentStatusResponse struct {
	PaymentStatus string `json:"paymentStatus"`
}

// PaymentHandoff carries what the payment screen needs: the hosted page to
// open and the order to poll afterwards.
type PaymentHandoff struct {
	RedirectURL string `json:"redirectUrl"`
	OrderID     string `json:"orderId"`
}
