package payment

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func startWatcher(t *testing.T, redirectBase string) *Watcher {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w, err := NewWatcher("127.0.0.1:0", redirectBase)
	if err != nil {
		t.Fatalf("NewWatcher returned error: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	t.Cleanup(func() { w.Stop() })
	return w
}

func TestWatcherCapturesRedirect(t *testing.T) {
	w := startWatcher(t, "https://staging.cocoliving.in/payment/redirect")

	resp, err := http.Get("http://" + w.ListenAddr() + "/payment/redirect?order_id=ORD-9&status=captured")
	if err != nil {
		t.Fatalf("GET redirect: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("redirect hit returned %d, want 200", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	r, err := w.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if r.Path != "/payment/redirect" {
		t.Errorf("Path = %q, want %q", r.Path, "/payment/redirect")
	}
	if r.Params.Get("order_id") != "ORD-9" {
		t.Errorf("order_id = %q, want %q", r.Params.Get("order_id"), "ORD-9")
	}
}

func TestWatcherIgnoresTrailingSlashAndQuery(t *testing.T) {
	w := startWatcher(t, "https://staging.cocoliving.in/payment/redirect")

	resp, err := http.Get("http://" + w.ListenAddr() + "/payment/redirect/?foo=bar")
	if err != nil {
		t.Fatalf("GET redirect: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("redirect with trailing slash returned %d, want 200", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := w.Wait(ctx); err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
}

func TestWatcherRejectsOtherPaths(t *testing.T) {
	w := startWatcher(t, "https://staging.cocoliving.in/payment/redirect")

	resp, err := http.Get("http://" + w.ListenAddr() + "/somewhere/else")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unrelated path returned %d, want 404", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := w.Wait(ctx); err == nil {
		t.Error("Wait resolved on an unrelated path, want timeout")
	}
}

func TestWatcherDropsDuplicateRedirects(t *testing.T) {
	w := startWatcher(t, "https://staging.cocoliving.in/payment/redirect")

	for i := 0; i < 3; i++ {
		resp, err := http.Get("http://" + w.ListenAddr() + "/payment/redirect?n=" + string(rune('0'+i)))
		if err != nil {
			t.Fatalf("GET redirect: %v", err)
		}
		resp.Body.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	r, err := w.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if r.Params.Get("n") != "0" {
		t.Errorf("first captured redirect n = %q, want %q", r.Params.Get("n"), "0")
	}

	short, cancelShort := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancelShort()
	if _, err := w.Wait(short); err == nil {
		t.Error("duplicate redirect was buffered, want it dropped")
	}
}

func TestNewWatcherRejectsPathlessBase(t *testing.T) {
	if _, err := NewWatcher("127.0.0.1:0", "https://staging.cocoliving.in"); err == nil {
		t.Error("NewWatcher accepted a base URL without a path, want error")
	}
}
