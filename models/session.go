// models/session.go
package models

import "encoding/json"

// Session represents the currently authenticated identity. Exactly one
// session is live per process; it is owned by the session manager and
// exposed read-only to the rest of the application.
type Session struct {
	ID           string `json:"id"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
	Role         string `json:"role"`
	FullName     string `json:"fullName"`
	UserType     string `json:"userType"`
}

// Profile returns the non-secret fields persisted to general storage. The
// token and refresh token are stored separately in the secure tier.
func (s *Session) Profile() Session {
	p := *s
	p.Token = ""
	p.RefreshToken = ""
	return p
}

// Account is the user profile object returned by the auth endpoints. The
// backend is inconsistent about whether IDs arrive as strings or numbers,
// so the ID is decoded as json.Number and normalized to a string.
type Account struct {
	ID       json.Number `json:"id"`
	FullName string      `json:"fullName"`
	Email    string      `json:"email"`
	Role     string      `json:"role"`
	UserType string      `json:"userType"`
}
