package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.APIBaseURL = "https://ledger.example.com"
	cfg.PageSize = 25

	path := filepath.Join(t.TempDir(), "ledgerscope.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://ledger.example.com", got.APIBaseURL)
	assert.Equal(t, cfg.DefaultTenantID, got.DefaultTenantID)
	assert.Equal(t, cfg.CurrencyCode, got.CurrencyCode)
	assert.Equal(t, 25, got.PageSize)
	assert.Equal(t, cfg.RequestTimeout, got.RequestTimeout)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "LKR", cfg.CurrencyCode)
	assert.Equal(t, "Jan 02, 2006", cfg.DateFormat)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "1m0s", cfg.RequestTimeout)
	assert.Equal(t, 60*time.Second, cfg.Timeout())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.APIBaseURL)
	assert.NotEmpty(t, cfg.SettingsPath)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Resolve(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().CurrencyCode, cfg.CurrencyCode)
}

func TestResolveCorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgerscope.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o644))

	_, err := Resolve(path)
	require.Error(t, err)
}

func TestResolveMergesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgerscope.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency_code: USD\n"), 0o644))

	cfg, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.CurrencyCode)
	assert.Equal(t, Default().PageSize, cfg.PageSize)
	assert.Equal(t, Default().APIBaseURL, cfg.APIBaseURL)
}

func TestFromEnvOverride(t *testing.T) {
	t.Setenv("LEDGERSCOPE_CURRENCY_CODE", "EUR")
	t.Setenv("LEDGERSCOPE_PAGE_SIZE", "50")
	t.Setenv("LEDGERSCOPE_REQUEST_TIMEOUT", "5s")

	cfg := FromEnv(Default())
	assert.Equal(t, "EUR", cfg.CurrencyCode)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestHandWrittenTimeoutLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgerscope.yaml")
	require.NoError(t, os.WriteFile(path, []byte("request_timeout: 90s\n"), 0o644))

	cfg, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Timeout())
}

func TestTimeoutFallsBackWhenUnparseable(t *testing.T) {
	cfg := Default()
	cfg.RequestTimeout = "soon"
	assert.Equal(t, 60*time.Second, cfg.Timeout())

	cfg.RequestTimeout = "-5s"
	assert.Equal(t, 60*time.Second, cfg.Timeout())
}
