package storage

import (
	"errors"
	"testing"
)

type fakeBackend struct {
	name   string
	data   map[string]string
	getErr error
	setErr error
	delErr error
}

func newFakeBackend(name string) *fakeBackend {
	return &fakeBackend{name: name, data: make(map[string]string)}
}

func (f *fakeBackend) Get(key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	val, ok := f.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

func (f *fakeBackend) Set(key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeBackend) Delete(key string) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.data, key)
	return nil
}

func (f *fakeBackend) Name() string { return f.name }

func TestTieredSetPrefersFirstWorkingTier(t *testing.T) {
	first := newFakeBackend("first")
	second := newFakeBackend("second")
	tiered := NewTiered(first, second)

	if err := tiered.Set("k", "v"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if first.data["k"] != "v" {
		t.Error("value did not land in the preferred tier")
	}
	if _, ok := second.data["k"]; ok {
		t.Error("value duplicated into the lower tier")
	}
}

func TestTieredSetFallsBackOnFailure(t *testing.T) {
	broken := newFakeBackend("broken")
	broken.setErr = errors.New("unavailable")
	working := newFakeBackend("working")
	tiered := NewTiered(broken, working)

	if err := tiered.Set("k", "v"); err != nil {
		t.Fatalf("Set returned error despite a working fallback: %v", err)
	}
	if working.data["k"] != "v" {
		t.Error("value did not fall back to the next tier")
	}
}

func TestTieredSetFailsWhenAllTiersFail(t *testing.T) {
	a := newFakeBackend("a")
	a.setErr = errors.New("down")
	b := newFakeBackend("b")
	b.setErr = errors.New("also down")

	if err := NewTiered(a, b).Set("k", "v"); err == nil {
		t.Error("Set succeeded with every tier failing, want error")
	}
}

func TestTieredGetWalksTiersInOrder(t *testing.T) {
	broken := newFakeBackend("broken")
	broken.getErr = errors.New("unavailable")
	lower := newFakeBackend("lower")
	lower.data["k"] = "from-lower"

	val, err := NewTiered(broken, lower).Get("k")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if val != "from-lower" {
		t.Errorf("Get = %q, want %q", val, "from-lower")
	}
}

func TestTieredGetNotFound(t *testing.T) {
	if _, err := NewTiered(newFakeBackend("a"), newFakeBackend("b")).Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get for a missing key = %v, want ErrNotFound", err)
	}
}

func TestTieredDeleteRemovesFromEveryTier(t *testing.T) {
	upper := newFakeBackend("upper")
	upper.data["k"] = "v"
	lower := newFakeBackend("lower")
	lower.data["k"] = "stale"

	if err := NewTiered(upper, lower).Delete("k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := upper.data["k"]; ok {
		t.Error("upper tier still holds the key")
	}
	if _, ok := lower.data["k"]; ok {
		t.Error("stale lower-tier copy survived delete")
	}
}

func TestFileBackendRoundTrip(t *testing.T) {
	b := NewFileBackend(t.TempDir())

	if _, err := b.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on empty backend = %v, want ErrNotFound", err)
	}
	if err := b.Set("userData", `{"id":"42"}`); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	val, err := b.Get("userData")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if val != `{"id":"42"}` {
		t.Errorf("Get = %q, want stored value", val)
	}
	if err := b.Delete("userData"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := b.Get("userData"); !errors.Is(err, ErrNotFound) {
		t.Error("value survived delete")
	}
	// Deleting an absent key is not an error.
	if err := b.Delete("userData"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestSecureFileBackendRoundTrip(t *testing.T) {
	dir := t.TempDir()
	b := NewSecureFileBackend(dir)

	if err := b.Set("userToken", "secret-token"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	val, err := b.Get("userToken")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if val != "secret-token" {
		t.Errorf("Get = %q, want decrypted value", val)
	}

	// A second backend over the same dir shares the key file.
	val, err = NewSecureFileBackend(dir).Get("userToken")
	if err != nil {
		t.Fatalf("Get via fresh backend returned error: %v", err)
	}
	if val != "secret-token" {
		t.Errorf("Get via fresh backend = %q, want decrypted value", val)
	}

	if err := b.Delete("userToken"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := b.Get("userToken"); !errors.Is(err, ErrNotFound) {
		t.Error("value survived delete")
	}
}

func TestSecureFileBackendValuesAreEncryptedAtRest(t *testing.T) {
	dir := t.TempDir()
	b := NewSecureFileBackend(dir)
	if err := b.Set("userToken", "super-secret"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	raw, err := NewFileBackend(dir).Get("userToken.enc")
	if err != nil {
		t.Fatalf("reading raw file: %v", err)
	}
	if raw == "super-secret" {
		t.Error("token stored in plaintext")
	}
}
