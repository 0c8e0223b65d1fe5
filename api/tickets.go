// File: api/tickets.go
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"cocoliving/models"
)

// CreateTicket raises a support ticket. Fields go as multipart form values
// with the optional image as a file part; the upload client's generous
// timeout applies because attachments can be large on slow links.
func (c *Client) CreateTicket(ctx context.Context, input models.TicketInput) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"roomNumber":  strings.TrimPrefix(input.RoomNumber, "#"),
		"date":        input.Date,
		"issue":       strings.TrimSpace(input.Issue),
		"description": strings.TrimSpace(input.Description),
		"priority":    strings.ToUpper(input.Priority),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	if input.ImagePath != "" {
		file, err := os.Open(input.ImagePath)
		if err != nil {
			return fmt.Errorf("failed to open attachment: %w", err)
		}
		defer file.Close()
		part, err := writer.CreateFormFile("ticketImage", filepath.Base(input.ImagePath))
		if err != nil {
			return fmt.Errorf("failed to create attachment part: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("failed to read attachment: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/tickets/create", &buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var res StatusResponse
	return c.do(req, &res, authRequired, c.uploadClient)
}

// ListUserTickets returns the caller's support tickets.
func (c *Client) ListUserTickets(ctx context.Context) ([]models.Ticket, error) {
	var res struct {
		Tickets []models.Ticket `json:"tickets"`
	}
	if err := c.getJSON(ctx, "/api/tickets/get-user-tickets", &res, authRequired); err != nil {
		return nil, err
	}
	return res.Tickets, nil
}
