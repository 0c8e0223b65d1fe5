// models/ticket.go
package models

import "encoding/json"

// TicketInput is the payload for raising a support ticket. The attachment,
// if any, is sent as a multipart file part alongside the form fields.
type TicketInput struct {
	RoomNumber  string
	Date        string // ISO date
	Issue       string
	Description string
	Priority    string // LOW, MEDIUM or HIGH
	ImagePath   string // optional local path to an image attachment
}

// Ticket is a support ticket as returned by the listing endpoint.
type Ticket struct {
	ID          json.Number `json:"id"`
	SupportCode string      `json:"supportCode"`
	Status      string      `json:"status"` // "open" or "closed"
	RoomNumber  json.Number `json:"roomNumber"`
	Issue       string      `json:"issue"`
	Description string      `json:"description"`
	Priority    string      `json:"priority"`
	Date        string      `json:"date"`
	UpdatedAt   string      `json:"updatedAt"`
}
