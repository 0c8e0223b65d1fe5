// File: storage/tiered.go
package storage

import (
	"errors"

	"cocoliving/utils"

	"go.uber.org/zap"
)

// Tiered tries a ranked list of backends in order. A tier failing is a
// recoverable, logged condition, never a hard error for the caller: reads
// fall through to the next tier, writes land on the first tier that
// accepts them, deletes are best-effort across all tiers.
type Tiered struct {
	Backends []Backend
}

func NewTiered(backends ...Backend) *Tiered {
	return &Tiered{Backends: backends}
}

// Get returns the first value found walking the tiers in order.
func (t *Tiered) Get(key string) (string, error) {
	for _, b := range t.Backends {
		val, err := b.Get(key)
		if err == nil {
			return val, nil
		}
		if !errors.Is(err, ErrNotFound) {
			utils.GetLogger().Warn("storage tier read failed, trying next",
				zap.String("tier", b.Name()), zap.String("key", key), zap.Error(err))
		}
	}
	return "", ErrNotFound
}

// Set writes to the most-preferred tier that accepts the value.
func (t *Tiered) Set(key, value string) error {
	var lastErr error
	for _, b := range t.Backends {
		if err := b.Set(key, value); err != nil {
			utils.GetLogger().Warn("storage tier write failed, falling back",
				zap.String("tier", b.Name()), zap.String("key", key), zap.Error(err))
			lastErr = err
			continue
		}
		return nil
	}
	if lastErr == nil {
		lastErr = errors.New("storage: no backends configured")
	}
	return lastErr
}

// Delete removes the key from every tier so a stale copy in a lower tier
// cannot resurface after a write landed higher up.
func (t *Tiered) Delete(key string) error {
	for _, b := range t.Backends {
		if err := b.Delete(key); err != nil {
			utils.GetLogger().Warn("storage tier delete failed",
				zap.String("tier", b.Name()), zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}

func (t *Tiered) Name() string { return "tiered" }
