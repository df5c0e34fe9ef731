package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Settings holds the credentials attached to every API request.
type Settings struct {
	TenantID    string `json:"tenantId"`
	BearerToken string `json:"bearerToken"`
}

// IsConfigured reports whether both fields are present.
func (s Settings) IsConfigured() bool {
	return s.TenantID != "" && s.BearerToken != ""
}

// Parse decodes a persisted settings payload. Any decode failure yields the
// defaults; bad local data must never fail startup.
func Parse(raw []byte, defaults Settings) Settings {
	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return defaults
	}
	if s.TenantID == "" {
		s.TenantID = defaults.TenantID
	}
	return s
}

// Load reads settings from path. A missing file yields the defaults; a
// corrupt file yields the defaults and a warning.
func Load(path string, defaults Settings, log zerolog.Logger) Settings {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults
	}
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("reading saved settings failed, using defaults")
		return defaults
	}

	s := Parse(raw, defaults)
	if s == defaults && len(raw) > 0 {
		var probe Settings
		if json.Unmarshal(raw, &probe) != nil {
			log.Warn().Str("path", path).Msg("saved settings are corrupt, using defaults")
		}
	}
	return s
}

// Store holds the current settings and persists updates synchronously.
// Reads vastly outnumber writes; writes happen only from the settings command.
type Store struct {
	mu       sync.RWMutex
	path     string
	settings Settings
}

// NewStore creates a Store seeded from the file at path (if any).
func NewStore(path string, defaults Settings, log zerolog.Logger) *Store {
	return &Store{
		path:     path,
		settings: Load(path, defaults, log),
	}
}

// Get returns the current settings.
func (st *Store) Get() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.settings
}

// Update replaces the settings and persists them. No partial updates.
func (st *Store) Update(s Settings) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o600); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	st.settings = s
	return nil
}

// Headers derives the request headers for the current settings. The bearer
// token entry is present only when a token is set.
func (st *Store) Headers() map[string]string {
	s := st.Get()
	headers := map[string]string{
		"Content-Type": "application/json",
		"X-Tenant-Id":  s.TenantID,
	}
	if s.BearerToken != "" {
		headers["Authorization"] = "Bearer " + s.BearerToken
	}
	return headers
}

// IsConfigured reports whether requests can be made.
func (st *Store) IsConfigured() bool {
	return st.Get().IsConfigured()
}
