package quizapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/zalando/go-keyring"
)

const secretAPIKey = "apikey"

// KeyStore wraps the OS keychain with an optional file fallback for the
// upstream API key. Fallback is intended for environments where no system
// keyring is available (headless servers, CI).
type KeyStore struct {
	service      string
	fallbackPath string
	mu           sync.Mutex
}

// NewKeyStore creates a keyring wrapper.
func NewKeyStore(serviceName, fallbackPath string) *KeyStore {
	if strings.TrimSpace(serviceName) == "" {
		serviceName = "vidyasetu-arcade"
	}
	return &KeyStore{
		service:      serviceName,
		fallbackPath: fallbackPath,
	}
}

// SetAPIKey stores the upstream API key.
func (k *KeyStore) SetAPIKey(value string) error {
	if err := keyring.Set(k.service, secretAPIKey, value); err == nil {
		return nil
	} else if !isKeyringUnavailable(err) {
		return fmt.Errorf("quizapi: keyring set: %w", err)
	}
	return k.setFallback(secretAPIKey, value)
}

// APIKey retrieves the upstream API key. Returns keyring.ErrNotFound when
// no key has been stored.
func (k *KeyStore) APIKey() (string, error) {
	val, err := keyring.Get(k.service, secretAPIKey)
	if err == nil {
		return val, nil
	}
	if !isKeyringUnavailable(err) && !errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("quizapi: keyring get: %w", err)
	}

	fallback, ferr := k.getFallback(secretAPIKey)
	if ferr == nil {
		return fallback, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", keyring.ErrNotFound
	}
	return "", ferr
}

// DeleteAPIKey removes the stored key from keyring and fallback.
func (k *KeyStore) DeleteAPIKey() error {
	if err := keyring.Delete(k.service, secretAPIKey); err != nil &&
		!errors.Is(err, keyring.ErrNotFound) && !isKeyringUnavailable(err) {
		_ = k.deleteFallback(secretAPIKey)
		return fmt.Errorf("quizapi: keyring delete: %w", err)
	}
	return k.deleteFallback(secretAPIKey)
}

// isKeyringUnavailable recognizes the errors the platform backends
// return when no keyring daemon is reachable, such as the D-Bus reply
// "The name org.freedesktop.secrets was not provided by any .service
// files" on headless Linux hosts.
func isKeyringUnavailable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "secret service") ||
		strings.Contains(msg, "org.freedesktop.secrets") ||
		strings.Contains(msg, "dbus") ||
		strings.Contains(msg, "d-bus") ||
		strings.Contains(msg, "no keychain") ||
		strings.Contains(msg, "keyring backend not available")
}

func (k *KeyStore) setFallback(name, value string) error {
	if strings.TrimSpace(k.fallbackPath) == "" {
		return fmt.Errorf("quizapi: keyring unavailable and no fallback path configured")
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	data, err := k.readFallbackUnlocked()
	if err != nil {
		return err
	}
	data[name] = value
	return k.writeFallbackUnlocked(data)
}

func (k *KeyStore) getFallback(name string) (string, error) {
	if strings.TrimSpace(k.fallbackPath) == "" {
		return "", fmt.Errorf("quizapi: fallback path not configured")
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	data, err := k.readFallbackUnlocked()
	if err != nil {
		return "", err
	}
	val, ok := data[name]
	if !ok {
		return "", keyring.ErrNotFound
	}
	return val, nil
}

func (k *KeyStore) deleteFallback(name string) error {
	if strings.TrimSpace(k.fallbackPath) == "" {
		return nil
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	data, err := k.readFallbackUnlocked()
	if err != nil {
		return err
	}
	delete(data, name)
	return k.writeFallbackUnlocked(data)
}

func (k *KeyStore) readFallbackUnlocked() (map[string]string, error) {
	out := map[string]string{}
	raw, err := os.ReadFile(k.fallbackPath)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, fmt.Errorf("quizapi: read fallback secrets: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("quizapi: decode fallback secrets: %w", err)
	}
	return out, nil
}

func (k *KeyStore) writeFallbackUnlocked(data map[string]string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("quizapi: encode fallback secrets: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(k.fallbackPath), 0o700); err != nil {
		return fmt.Errorf("quizapi: create fallback dir: %w", err)
	}
	if err := os.WriteFile(k.fallbackPath, raw, 0o600); err != nil {
		return fmt.Errorf("quizapi: write fallback secrets: %w", err)
	}
	return nil
}
