package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nJWT_SECRET=topsecret\nDB_DRIVER=sqlite\nSESSION_TTL=2h\nAUTH_ALLOW_DEV_REGISTER=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Auth.AllowDevRegister)
	assert.Equal(t, "foodstall_session", cfg.Session.CookieName)
	assert.Equal(t, "staff", cfg.Auth.DefaultRole)
	assert.EqualValues(t, 5<<20, cfg.Upload.MaxBytes)
}

func TestLoadConfigMissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestSplitCORSOrigins(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.CORSAllowedOrigins)
}
