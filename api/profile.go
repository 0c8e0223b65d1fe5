// File: api/profile.go
package api

import (
	"context"
	"fmt"
	"net/http"

	"cocoliving/models"
)

// GetUser fetches the full profile record for a user ID.
func (c *Client) GetUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	path := fmt.Sprintf("/api/user/getUser/%s", userID)
	var res struct {
		User models.UserProfile `json:"user"`
	}
	if err := c.getJSON(ctx, path, &res, authRequired); err != nil {
		return nil, err
	}
	return &res.User, nil
}

// UpdateProfile updates the editable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, userID string, input models.ProfileUpdateInput) error {
	path := fmt.Sprintf("/api/user/update-profile/%s", userID)
	return c.sendJSON(ctx, http.MethodPut, path, input, nil, authRequired)
}
