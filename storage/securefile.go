// File: storage/securefile.go
package storage

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/nacl/secretbox"
)

const secretKeyFile = ".secret"

// SecureFileBackend stores values as secretbox-encrypted files under dir.
// The 32-byte key is generated on first use and kept next to the values
// with 0600 permissions. This tier protects tokens at rest on machines
// without a usable OS keyring.
type SecureFileBackend struct {
	Dir string
}

func NewSecureFileBackend(dir string) *SecureFileBackend {
	return &SecureFileBackend{Dir: dir}
}

func (b *SecureFileBackend) loadKey() (*[32]byte, error) {
	if err := os.MkdirAll(b.Dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	path := filepath.Join(b.Dir, secretKeyFile)
	var key [32]byte
	raw, err := os.ReadFile(path)
	if err == nil {
		if len(raw) != len(key) {
			return nil, fmt.Errorf("corrupt secret key file %s", path)
		}
		copy(key[:], raw)
		return &key, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	if _, err := rand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("failed to generate secret key: %w", err)
	}
	if err := os.WriteFile(path, key[:], 0o600); err != nil {
		return nil, fmt.Errorf("failed to write secret key: %w", err)
	}
	return &key, nil
}

func (b *SecureFileBackend) path(key string) string {
	return filepath.Join(b.Dir, key+".enc")
}

func (b *SecureFileBackend) Get(key string) (string, error) {
	secret, err := b.loadKey()
	if err != nil {
		return "", err
	}
	raw, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	sealed, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return "", fmt.Errorf("corrupt value for %s: %w", key, err)
	}
	if len(sealed) < 24 {
		return "", fmt.Errorf("corrupt value for %s", key)
	}
	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	plain, ok := secretbox.Open(nil, sealed[24:], &nonce, secret)
	if !ok {
		return "", fmt.Errorf("failed to decrypt value for %s", key)
	}
	return string(plain), nil
}

func (b *SecureFileBackend) Set(key, value string) error {
	secret, err := b.loadKey()
	if err != nil {
		return err
	}
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], []byte(value), &nonce, secret)
	encoded := base64.StdEncoding.EncodeToString(sealed)
	return os.WriteFile(b.path(key), []byte(encoded), 0o600)
}

func (b *SecureFileBackend) Delete(key string) error {
	if err := os.Remove(b.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (b *SecureFileBackend) Name() string { return "securefile" }
