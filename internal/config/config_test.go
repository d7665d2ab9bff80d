package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "spendtrack", cfg.App.Name)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "expenses.db", cfg.Database.Path)
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Empty(t, cfg.Redis.Addr, "cache disabled by default")
	assert.Empty(t, cfg.RabbitMQ.URL, "event pipeline disabled by default")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[app]
port = 9090

[session]
secret = "file-secret"

[database]
driver = "mysql"
db = "expenses"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "file-secret", cfg.Session.Secret)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "expenses", cfg.Database.DB)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[session]\nsecret = \"file-secret\"\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SESSION_SECRET", "env-secret")
	t.Setenv("APP_PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.Session.Secret)
	assert.Equal(t, 7070, cfg.App.Port)
}

func TestHTTPAddrAndDSN(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Host: "127.0.0.1", Port: 8080},
		Database: DatabaseConfig{
			User: "root", Password: "pw", Host: "db", Port: 3306,
			DB: "spendtrack", Params: "parseTime=true",
		},
	}
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTPAddr())
	assert.Equal(t, "root:pw@tcp(db:3306)/spendtrack?parseTime=true", cfg.MySQLDSN())
}
