package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cocoliving/models"
	"cocoliving/storage"
	"cocoliving/utils"
)

type memBackend struct {
	data   map[string]string
	getErr error
	setErr error
	delErr error
}

func newMemBackend() *memBackend {
	return &memBackend{data: make(map[string]string)}
}

func (m *memBackend) Get(key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	val, ok := m.data[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return val, nil
}

func (m *memBackend) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memBackend) Delete(key string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, key)
	return nil
}

func (m *memBackend) Name() string { return "mem" }

func makeToken(t *testing.T, exp time.Time) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	if err != nil {
		t.Fatal(err)
	}
	payload, err := json.Marshal(map[string]any{"sub": "42", "exp": exp.Unix()})
	if err != nil {
		t.Fatal(err)
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("sig"))
}

func testSession(t *testing.T, token string) *models.Session {
	t.Helper()
	return &models.Session{
		ID:       "42",
		Token:    token,
		Role:     "user",
		FullName: "Asha Rao",
		UserType: "student",
	}
}

func TestSessionRoundTrip(t *testing.T) {
	secure := newMemBackend()
	general := newMemBackend()

	token := makeToken(t, time.Now().Add(time.Hour))
	want := testSession(t, token)

	NewManager(secure, general).Set(want)

	// A fresh manager over the same backends simulates a process restart.
	got := NewManager(secure, general).Load()
	if got == nil {
		t.Fatal("Load returned nil, want restored session")
	}
	if got.ID != want.ID || got.Token != want.Token || got.Role != want.Role ||
		got.FullName != want.FullName || got.UserType != want.UserType {
		t.Errorf("restored session = %+v, want %+v", got, want)
	}
}

func TestLoadClearsExpiredSession(t *testing.T) {
	secure := newMemBackend()
	general := newMemBackend()

	expired := testSession(t, makeToken(t, time.Now().Add(-time.Minute)))
	NewManager(secure, general).Set(expired)

	mgr := NewManager(secure, general)
	if got := mgr.Load(); got != nil {
		t.Fatalf("Load returned %+v for an expired token, want nil", got)
	}
	if _, err := general.Get(utils.UserDataKey); !errors.Is(err, storage.ErrNotFound) {
		t.Error("profile blob survived expiry, want it removed")
	}
	if _, err := secure.Get(utils.UserTokenKey); !errors.Is(err, storage.ErrNotFound) {
		t.Error("token survived expiry, want it removed")
	}
	if mgr.Current() != nil {
		t.Error("Current() is non-nil after expired load")
	}
}

func TestLoadWithMissingTokenClearsProfile(t *testing.T) {
	secure := newMemBackend()
	general := newMemBackend()
	general.data[utils.UserDataKey] = `{"id":"42","fullName":"Asha Rao"}`

	if got := NewManager(secure, general).Load(); got != nil {
		t.Fatalf("Load returned %+v without a stored token, want nil", got)
	}
	if _, ok := general.data[utils.UserDataKey]; ok {
		t.Error("orphaned profile blob survived, want it removed")
	}
}

func TestLoadWithCorruptProfileDegradesToNil(t *testing.T) {
	secure := newMemBackend()
	general := newMemBackend()
	general.data[utils.UserDataKey] = "{not json"
	secure.data[utils.UserTokenKey] = makeToken(t, time.Now().Add(time.Hour))

	if got := NewManager(secure, general).Load(); got != nil {
		t.Fatalf("Load returned %+v for a corrupt profile, want nil", got)
	}
}

func TestLogoutRemovesAllArtifacts(t *testing.T) {
	secure := newMemBackend()
	general := newMemBackend()

	mgr := NewManager(secure, general)
	mgr.Set(testSession(t, makeToken(t, time.Now().Add(time.Hour))))
	mgr.Logout()

	if mgr.Current() != nil {
		t.Error("Current() is non-nil after logout")
	}
	if got := NewManager(secure, general).Load(); got != nil {
		t.Errorf("Load after logout returned %+v, want nil", got)
	}
	if len(secure.data) != 0 || len(general.data) != 0 {
		t.Errorf("persisted artifacts remain after logout: secure=%v general=%v", secure.data, general.data)
	}
}

func TestLogoutWithoutSessionIsHarmless(t *testing.T) {
	mgr := NewManager(newMemBackend(), newMemBackend())
	mgr.Logout()
	if mgr.Current() != nil {
		t.Error("Current() is non-nil after logout on empty state")
	}
}

func TestSetPersistsThroughFallbackTier(t *testing.T) {
	broken := newMemBackend()
	broken.getErr = errors.New("keyring unavailable")
	broken.setErr = errors.New("keyring unavailable")
	fallback := newMemBackend()
	secure := storage.NewTiered(broken, fallback)
	general := newMemBackend()

	token := makeToken(t, time.Now().Add(time.Hour))
	NewManager(secure, general).Set(testSession(t, token))

	if fallback.data[utils.UserTokenKey] != token {
		t.Error("token did not land in the fallback tier")
	}
	got := NewManager(secure, general).Load()
	if got == nil || got.Token != token {
		t.Fatalf("Load through fallback tier = %+v, want session with stored token", got)
	}
}

func TestSetSurvivesPersistenceFailure(t *testing.T) {
	secure := newMemBackend()
	secure.setErr = errors.New("disk full")
	general := newMemBackend()
	general.setErr = errors.New("disk full")

	mgr := NewManager(secure, general)
	sess := testSession(t, makeToken(t, time.Now().Add(time.Hour)))
	mgr.Set(sess)

	// Persistence degraded, but the in-memory slot still updated.
	got := mgr.Current()
	if got == nil || got.ID != sess.ID {
		t.Fatalf("Current() = %+v after storage failure, want in-memory session", got)
	}
}

func TestSubscribeObservesChanges(t *testing.T) {
	mgr := NewManager(newMemBackend(), newMemBackend())

	var seen []*models.Session
	unsubscribe := mgr.Subscribe(func(s *models.Session) {
		seen = append(seen, s)
	})

	sess := testSession(t, makeToken(t, time.Now().Add(time.Hour)))
	mgr.Set(sess)
	mgr.Set(nil)

	if len(seen) != 2 {
		t.Fatalf("subscriber saw %d updates, want 2", len(seen))
	}
	if seen[0] == nil || seen[0].ID != sess.ID {
		t.Errorf("first update = %+v, want the new session", seen[0])
	}
	if seen[1] != nil {
		t.Errorf("second update = %+v, want nil", seen[1])
	}

	unsubscribe()
	mgr.Set(sess)
	if len(seen) != 2 {
		t.Error("subscriber notified after unsubscribe")
	}
}

func TestCurrentReturnsSnapshot(t *testing.T) {
	mgr := NewManager(newMemBackend(), newMemBackend())
	mgr.Set(testSession(t, makeToken(t, time.Now().Add(time.Hour))))

	snap := mgr.Current()
	snap.FullName = "mutated"

	if got := mgr.Current(); got.FullName != "Asha Rao" {
		t.Errorf("mutating a snapshot leaked into the manager: %q", got.FullName)
	}
}
