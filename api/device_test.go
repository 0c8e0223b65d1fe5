package api

import (
	"testing"

	"cocoliving/storage"

	"github.com/google/uuid"
)

func TestEnsureDeviceIDIsStable(t *testing.T) {
	store := storage.NewFileBackend(t.TempDir())

	first := EnsureDeviceID(store)
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("generated device ID %q is not a UUID: %v", first, err)
	}
	if second := EnsureDeviceID(store); second != first {
		t.Errorf("second call returned %q, want the persisted %q", second, first)
	}
}
