// File: api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"cocoliving/config"
	"cocoliving/session"
	"cocoliving/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrNoSession is returned when an authenticated call is made while logged
// out.
var ErrNoSession = errors.New("not logged in")

// authMode controls whether a request carries the bearer token.
type authMode int

const (
	authNone authMode = iota
	// authOptional sends the token when a session exists. Listing
	// endpoints accept both anonymous and authenticated requests.
	authOptional
	authRequired
)

// Client talks to the Coco Living backend. Every operation takes a
// context.Context so a request whose initiating flow goes away is
// cancelled rather than left to complete against stale state. Outgoing
// requests are rate limited client-side and carry a persisted device ID.
type Client struct {
	BaseURL string

	httpClient *http.Client
	// uploadClient has a deliberately generous timeout; it is used only
	// for multipart ticket attachments.
	uploadClient *http.Client
	limiter      *rate.Limiter
	sessions     *session.Manager
	deviceID     string
}

// NewClient builds a client from the loaded configuration.
func NewClient(sessions *session.Manager, deviceID string) *Client {
	cfg := config.AppConfig
	perMin := cfg.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = 100
	}
	return &Client{
		BaseURL: cfg.APIBaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		},
		uploadClient: &http.Client{
			Timeout: time.Duration(cfg.UploadTimeoutSeconds) * time.Second,
		},
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin),
		sessions: sessions,
		deviceID: deviceID,
	}
}

// sendJSON issues a JSON request and decodes the response into out.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload any, out any, mode authMode) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out, mode, c.httpClient)
}

func (c *Client) getJSON(ctx context.Context, path string, out any, mode authMode) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req, out, mode, c.httpClient)
}

// do finishes headers, applies the rate limit and runs the request.
func (c *Client) do(req *http.Request, out any, mode authMode, client *http.Client) error {
	if err := c.authorize(req, mode); err != nil {
		return err
	}
	if c.deviceID != "" {
		req.Header.Set("X-Device-ID", c.deviceID)
	}
	if err := c.limiter.Wait(req.Context()); err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func (c *Client) authorize(req *http.Request, mode authMode) error {
	if mode == authNone {
		return nil
	}
	sess := c.sessions.Current()
	if sess == nil {
		if mode == authRequired {
			return ErrNoSession
		}
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	return nil
}

// decodeResponse decodes a success body into out and converts error
// responses into *utils.APIError. Decoding fails closed: a 2xx body that
// does not match the expected schema is an error, not a silently partial
// value.
func decodeResponse(resp *http.Response, out any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &utils.APIError{StatusCode: resp.StatusCode}
		var body utils.ErrorResponse
		if err := json.Unmarshal(raw, &body); err == nil {
			apiErr.Message = body.Message
			apiErr.Errors = body.Errors
		}
		utils.GetLogger().Debug("backend returned error",
			zap.Int("status", resp.StatusCode), zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
