// File: api/auth.go
package api

import (
	"context"
	"fmt"
	"net/http"

	"cocoliving/models"
)

// AuthResponse is the body of the OTP verification endpoints.
type AuthResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Token   string         `json:"token"`
	Account models.Account `json:"account"`
}

// StatusResponse is the generic {success, message} envelope used by the
// write endpoints.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RegisterInput is the signup payload. The OTP must have been requested
// for the same email via SendSignupOTP.
type RegisterInput struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Gender      string `json:"gender"`
	UserType    string `json:"userType"`
	DateOfBirth string `json:"dateOfBirth"`
	OTP         string `json:"otp"`
}

// RequestLoginOTP asks the backend to email a login code. A backend
// message of "Email not found" means the address has no account yet;
// callers route that to signup.
func (c *Client) RequestLoginOTP(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	return c.sendJSON(ctx, http.MethodPost, "/api/common/login/request-otp", payload, nil, authNone)
}

// VerifyLoginOTP exchanges the emailed code for a bearer token and profile
// and returns the resulting session. The session is not stored; that is
// the session manager's job.
func (c *Client) VerifyLoginOTP(ctx context.Context, email, otp string) (*models.Session, error) {
	payload := map[string]string{"email": email, "otp": otp}
	var res AuthResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/api/common/login/verify-otp", payload, &res, authNone); err != nil {
		return nil, err
	}
	if !res.Success || res.Token == "" {
		msg := res.Message
		if msg == "" {
			msg = "Invalid OTP"
		}
		return nil, fmt.Errorf("%s", msg)
	}
	role := res.Account.Role
	if role == "" {
		role = "user"
	}
	return &models.Session{
		ID:       res.Account.ID.String(),
		Token:    res.Token,
		Role:     role,
		FullName: res.Account.FullName,
		UserType: res.Account.UserType,
	}, nil
}

// SendSignupOTP starts the signup verification flow.
func (c *Client) SendSignupOTP(ctx context.Context, email, fullName string) error {
	payload := map[string]string{"email": email, "fullName": fullName}
	return c.sendJSON(ctx, http.MethodPost, "/api/user/send-otp", payload, nil, authNone)
}

// VerifySignupOTP checks a signup code ahead of registration. Register
// also accepts the code inline; this pre-check exists so the signup flow
// can fail fast on a bad code.
func (c *Client) VerifySignupOTP(ctx context.Context, email, otp string) error {
	payload := map[string]string{"email": email, "otp": otp}
	return c.sendJSON(ctx, http.MethodPost, "/api/user/verifyOTP", payload, nil, authNone)
}

// Register creates the account once the signup OTP has been received.
func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	var res StatusResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/api/user/register", input, &res, authNone); err != nil {
		return err
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "Registration failed"
		}
		return fmt.Errorf("%s", msg)
	}
	return nil
}

// ForgotPassword asks for a password reset code.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	return c.sendJSON(ctx, http.MethodPost, "/api/common/forgot-password", payload, nil, authNone)
}

// ResetPassword completes the reset flow with the emailed code.
func (c *Client) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	payload := map[string]string{"email": email, "otp": otp, "newPassword": newPassword}
	return c.sendJSON(ctx, http.MethodPost, "/api/common/reset-password", payload, nil, authNone)
}

// ChangePassword changes the password of the logged-in account.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	payload := map[string]string{
		"oldPassword":     oldPassword,
		"newPassword":     newPassword,
		"confirmPassword": newPassword,
	}
	return c.sendJSON(ctx, http.MethodPost, "/api/common/change-password", payload, nil, authRequired)
}
