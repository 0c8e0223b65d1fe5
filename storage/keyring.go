// File: storage/keyring.go
package storage

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// KeyringBackend stores values in the operating system keyring. This is the
// preferred tier for credentials; on headless machines it is commonly
// unavailable, in which case every call fails and the chain falls through
// to the encrypted file tier.
type KeyringBackend struct {
	Service string
}

func NewKeyringBackend(service string) *KeyringBackend {
	return &KeyringBackend{Service: service}
}

func (b *KeyringBackend) Get(key string) (string, error) {
	val, err := keyring.Get(b.Service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return val, nil
}

func (b *KeyringBackend) Set(key, value string) error {
	return keyring.Set(b.Service, key, value)
}

func (b *KeyringBackend) Delete(key string) error {
	if err := keyring.Delete(b.Service, key); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

func (b *KeyringBackend) Name() string { return "keyring" }
