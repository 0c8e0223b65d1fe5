// File: session/manager.go
package session

import (
	"encoding/json"
	"sync"

	"cocoliving/models"
	"cocoliving/storage"
	"cocoliving/utils"

	"go.uber.org/zap"
)

// Manager owns the single live session for the process. The profile blob
// (non-secret fields) is persisted to the general store; tokens go through
// the secure tier chain. All mutation is serialized under one mutex, so
// overlapping Set calls cannot interleave their persistence writes: the
// in-memory slot and the stored artifacts always reflect the last completed
// call.
type Manager struct {
	mu      sync.Mutex
	current *models.Session
	secure  storage.Backend
	general storage.Backend
	subs    map[int]func(*models.Session)
	nextSub int
}

func NewManager(secure, general storage.Backend) *Manager {
	return &Manager{
		secure:  secure,
		general: general,
		subs:    make(map[int]func(*models.Session)),
	}
}

// Load rehydrates a persisted session at startup. Any read or decode
// failure, and any expired token, degrades to "no session" with all
// persisted artifacts removed. Load never fails loudly; callers only ever
// see a session or nil.
func (m *Manager) Load() *models.Session {
	m.mu.Lock()

	blob, err := m.general.Get(utils.UserDataKey)
	if err != nil {
		m.clearLocked()
		m.mu.Unlock()
		return nil
	}
	token, err := m.secure.Get(utils.UserTokenKey)
	if err != nil || token == "" {
		utils.GetLogger().Debug("no stored token, clearing session artifacts")
		m.clearLocked()
		m.mu.Unlock()
		return nil
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(blob), &sess); err != nil {
		utils.GetLogger().Warn("failed to decode stored profile, clearing session", zap.Error(err))
		m.clearLocked()
		m.mu.Unlock()
		return nil
	}

	if utils.TokenExpired(token) {
		utils.GetLogger().Info("stored token expired, logging out")
		m.clearLocked()
		m.mu.Unlock()
		m.notify(nil)
		return nil
	}

	sess.Token = token
	if refresh, err := m.secure.Get(utils.RefreshTokenKey); err == nil {
		sess.RefreshToken = refresh
	}

	m.current = &sess
	snapshot := sess
	m.mu.Unlock()

	m.notify(&snapshot)
	return &snapshot
}

// Set replaces the current session. A nil session removes every persisted
// artifact. Persistence failures are logged, never propagated: the
// in-memory slot is updated regardless, so consumers observe the new state
// synchronously.
func (m *Manager) Set(s *models.Session) {
	m.mu.Lock()

	if s == nil {
		m.clearLocked()
		m.mu.Unlock()
		m.notify(nil)
		return
	}

	sess := *s
	m.current = &sess

	profile, err := json.Marshal(sess.Profile())
	if err != nil {
		utils.GetLogger().Error("failed to encode profile for persistence", zap.Error(err))
	} else if err := m.general.Set(utils.UserDataKey, string(profile)); err != nil {
		utils.GetLogger().Error("failed to persist profile", zap.Error(err))
	}
	if sess.Token == "" {
		utils.GetLogger().Warn("session has no token, skipping token persistence")
	} else if err := m.secure.Set(utils.UserTokenKey, sess.Token); err != nil {
		utils.GetLogger().Error("failed to persist token", zap.Error(err))
	}
	if sess.RefreshToken != "" {
		if err := m.secure.Set(utils.RefreshTokenKey, sess.RefreshToken); err != nil {
			utils.GetLogger().Error("failed to persist refresh token", zap.Error(err))
		}
	}

	snapshot := sess
	m.mu.Unlock()

	m.notify(&snapshot)
}

// Logout clears the session and emits a user-visible notice. Navigation
// (or the CLI equivalent) is the caller's responsibility.
func (m *Manager) Logout() {
	m.Set(nil)
	utils.GetLogger().Info("Logged out!")
}

// Current returns a read-only snapshot of the live session, or nil.
func (m *Manager) Current() *models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	snapshot := *m.current
	return &snapshot
}

// Subscribe registers fn to be called with a snapshot on every session
// change. The returned func unsubscribes.
func (m *Manager) Subscribe(fn func(*models.Session)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// clearLocked removes the in-memory slot and every persisted artifact.
// Callers hold m.mu.
func (m *Manager) clearLocked() {
	m.current = nil
	if err := m.general.Delete(utils.UserDataKey); err != nil {
		utils.GetLogger().Warn("failed to remove stored profile", zap.Error(err))
	}
	if err := m.secure.Delete(utils.UserTokenKey); err != nil {
		utils.GetLogger().Warn("failed to remove stored token", zap.Error(err))
	}
	if err := m.secure.Delete(utils.RefreshTokenKey); err != nil {
		utils.GetLogger().Warn("failed to remove stored refresh token", zap.Error(err))
	}
}

func (m *Manager) notify(s *models.Session) {
	m.mu.Lock()
	fns := make([]func(*models.Session), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()
	for _, fn := range fns {
		fn(s)
	}
}
