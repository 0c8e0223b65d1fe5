// File: payment/watcher.go
package payment

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cocoliving/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Redirect is the hosted payment page's final navigation, captured by the
// local listener.
type Redirect struct {
	Path   string
	Params url.Values
}

// Watcher stands in for the app's embedded web view: the hosted payment
// page ends by navigating to the configured redirect base, which resolves
// to this loopback listener. The first matching hit is emitted and the
// flow moves on to status polling.
type Watcher struct {
	Addr         string
	redirectPath string

	events chan Redirect
	srv    *http.Server
	ln     net.Listener
}

// NewWatcher builds a watcher for the given listen address and redirect
// base URL. Only the URL's path is used for matching; query parameters and
// a trailing slash on the incoming navigation are ignored, the same way
// the app matched the web view's URL.
func NewWatcher(addr, redirectBase string) (*Watcher, error) {
	parsed, err := url.Parse(redirectBase)
	if err != nil {
		return nil, fmt.Errorf("invalid redirect base %q: %w", redirectBase, err)
	}
	path := strings.TrimSuffix(parsed.Path, "/")
	if path == "" {
		return nil, fmt.Errorf("redirect base %q has no path to match on", redirectBase)
	}
	return &Watcher{
		Addr:         addr,
		redirectPath: path,
		events:       make(chan Redirect, 1),
	}, nil
}

// Start begins listening. It returns once the listener is set up; the
// server itself runs until Stop or a matched redirect.
func (w *Watcher) Start() error {
	router := gin.New()
	router.Use(gin.Recovery())
	router.NoRoute(func(c *gin.Context) {
		clean := strings.TrimSuffix(c.Request.URL.Path, "/")
		if !strings.HasPrefix(clean, w.redirectPath) {
			c.Status(http.StatusNotFound)
			return
		}
		select {
		case w.events <- Redirect{Path: clean, Params: c.Request.URL.Query()}:
		default:
			// A redirect was already captured; duplicates are dropped.
		}
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, "<html><body><h3>Payment complete.</h3><p>You can return to the app.</p></body></html>")
	})

	ln, err := net.Listen("tcp", w.Addr)
	if err != nil {
		return fmt.Errorf("payment watcher failed to listen on %s: %w", w.Addr, err)
	}
	w.ln = ln
	w.srv = &http.Server{Handler: router}
	go func() {
		if err := w.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			utils.GetLogger().Error("payment watcher server failed", zap.Error(err))
		}
	}()
	utils.GetLogger().Sugar().Infof("payment watcher listening on %s for %s", ln.Addr(), w.redirectPath)
	return nil
}

// ListenAddr returns the bound address once Start has succeeded.
func (w *Watcher) ListenAddr() string {
	if w.ln == nil {
		return ""
	}
	return w.ln.Addr().String()
}

// Wait blocks until the redirect lands or ctx is cancelled.
func (w *Watcher) Wait(ctx context.Context) (*Redirect, error) {
	select {
	case r := <-w.events:
		return &r, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Stop shuts the listener down.
func (w *Watcher) Stop() error {
	if w.srv == nil {
		return errors.New("payment watcher not started")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return w.srv.Shutdown(ctx)
}
