// File: api/bookings.go
package api

import (
	"context"
	"fmt"
	"net/http"

	"cocoliving/models"
)

// CreateBookingResponse is the body of the booking creation endpoint. When
// the booking requires payment, the embedded handoff carries the hosted
// page URL and the order to poll.
type CreateBookingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	models.PaymentHandoff
}

// BookingsPage is one page of the user's bookings.
type BookingsPage struct {
	Bookings   []models.Booking `json:"bookings"`
	TotalPages int              `json:"totalPages"`
}

// CreateBooking submits a booking request. The amount due is computed
// server-side from the rate card; the client-side quote is display only.
func (c *Client) CreateBooking(ctx context.Context, input models.BookingInput) (*CreateBookingResponse, error) {
	var res CreateBookingResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/api/book-room/add", input, &res, authRequired); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListUserBookings returns one page of the caller's bookings.
func (c *Client) ListUserBookings(ctx context.Context, page, limit int) (*BookingsPage, error) {
	path := fmt.Sprintf("/api/book-room/getUserBookings?page=%d&limit=%d", page, limit)
	var res BookingsPage
	if err := c.getJSON(ctx, path, &res, authRequired); err != nil {
		return nil, err
	}
	return &res, nil
}

// CancelBooking cancels an upcoming booking.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	path := fmt.Sprintf("/api/book-room/bookings/%s/cancel", bookingID)
	var res StatusResponse
	return c.sendJSON(ctx, http.MethodPost, path, nil, &res, authRequired)
}
