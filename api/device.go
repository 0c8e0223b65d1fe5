// File: api/device.go
package api

import (
	"cocoliving/storage"
	"cocoliving/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EnsureDeviceID returns this installation's stable device identifier,
// generating and persisting one on first run. The backend uses it to tell
// sessions on different devices apart.
func EnsureDeviceID(store storage.Backend) string {
	id, err := store.Get(utils.DeviceIDKey)
	if err == nil && id != "" {
		return id
	}
	id = uuid.NewString()
	if err := store.Set(utils.DeviceIDKey, id); err != nil {
		utils.GetLogger().Warn("failed to persist device ID, using ephemeral one", zap.Error(err))
	}
	return id
}
