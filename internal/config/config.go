// Package config provides the durable key-value store for brokerage
// credentials and trading mode, persisted as YAML and overridable through
// the canonical Alpaca environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Recognized configuration keys. Keys are independent; there is no
// cross-key consistency requirement.
const (
	KeyID      = "keyId"
	KeySecret  = "secretKey"
	KeyMode    = "mode"
	KeyBaseURL = "baseUrl"
)

// Store is a flat string-to-string configuration store with last-write-wins
// semantics. Set flushes to disk immediately so values survive across
// invocations. Environment overrides are held separately and never
// persisted.
type Store struct {
	path   string
	values map[string]string
	env    map[string]string
}

// DefaultPath returns the config file location: $ALPACA_CLI_CONFIG if set,
// otherwise ~/.config/alpaca/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("ALPACA_CLI_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "alpaca", "config.yaml"), nil
}

// Open loads the store at path. A missing file yields an empty store; the
// file is created on first Set.
func Open(path string) (*Store, error) {
	s := &Store{
		path:   path,
		values: make(map[string]string),
		env:    make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &s.values); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
		if s.values == nil {
			s.values = make(map[string]string)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	s.applyEnvOverrides()
	return s, nil
}

// applyEnvOverrides maps the standard Alpaca environment variables onto
// store keys. Overrides win over persisted values for reads but are never
// written back.
func (s *Store) applyEnvOverrides() {
	if v := os.Getenv("APCA_API_KEY_ID"); v != "" {
		s.env[KeyID] = v
	}
	if v := os.Getenv("APCA_API_SECRET_KEY"); v != "" {
		s.env[KeySecret] = v
	}
	if v := os.Getenv("ALPACA_BASE_URL"); v != "" {
		s.env[KeyBaseURL] = v
	}
}

// Get returns the value for key, or "" when unset.
func (s *Store) Get(key string) string {
	if v, ok := s.env[key]; ok {
		return v
	}
	return s.values[key]
}

// Set stores value under key and flushes the store to disk.
func (s *Store) Set(key, value string) error {
	s.values[key] = value
	return s.flush()
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) flush() error {
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", s.path, err)
	}
	return nil
}
