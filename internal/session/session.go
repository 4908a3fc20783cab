// Package session holds the operator's vendor session: the bearer
// token and role used by guards and the API client. The session lives
// in a small YAML file maintained by an external SSO helper; a watcher
// picks up rewrites so a refreshed token is used without restarting
// the console.
package session

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// fileData is the on-disk shape of the session file.
type fileData struct {
	Token    string `yaml:"token"`
	Role     string `yaml:"role"`
	VendorID string `yaml:"vendor_id"`
}

// Snapshot is an immutable view of the session at one point in time.
type Snapshot struct {
	Token    string
	Role     string
	VendorID string
}

// Session is the live, reloadable operator session. It satisfies the
// router's Session interface and the API client's token source.
type Session struct {
	mu     sync.RWMutex
	data   fileData
	path   string
	logger *slog.Logger
}

// Load reads the session file at path.
func Load(path string, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{path: path, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Static builds a session that is not backed by a file (tests, one-off
// scripts with the token passed directly).
func Static(token, role, vendorID string) *Session {
	return &Session{
		data:   fileData{Token: token, Role: role, VendorID: vendorID},
		logger: slog.Default(),
	}
}

// Reload re-reads the session file and swaps the live data. The next
// API request and the next guard check see the new values.
func (s *Session) Reload() error {
	if s.path == "" {
		return fmt.Errorf("session has no backing file")
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var data fileData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse session file: %w", err)
	}
	if data.Token == "" {
		return fmt.Errorf("session file %s has no token", s.path)
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	s.logger.Debug("session reloaded", "path", s.path, "role", data.Role)
	return nil
}

// Token returns the current bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Token
}

// Role returns the current operator role.
func (s *Session) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Role
}

// Current returns a consistent snapshot.
func (s *Session) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Token: s.data.Token, Role: s.data.Role, VendorID: s.data.VendorID}
}
