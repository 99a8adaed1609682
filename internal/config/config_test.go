package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTOML = `
[database]
connection_string = "file:/tmp/ironlog-test.db"

[rest]
compound_sec = 180
accessory_sec = 60
auto_adjust = false

[logging]
level = "debug"
file = "/tmp/ironlog"

[reference]
files = ["extra.toml", "foods.yaml"]

[profile]
default = "me"
timezone = "Europe/Lisbon"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// isolate points the config dir at a temp dir and clears the env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := utils.ConfigDir
	utils.ConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { utils.ConfigDir = prev })

	for _, k := range []string{"TURSO_DATABASE_URL", "TURSO_AUTH_TOKEN", "IRONLOG_PROFILE", "IRONLOG_LOG_LEVEL", "DEV_MODE"} {
		t.Setenv(k, "")
	}
	return dir
}

func TestLoadValid(t *testing.T) {
	isolate(t)

	cfg, err := Load(writeTemp(t, validTOML))
	require.NoError(t, err)

	assert.Equal(t, "file:/tmp/ironlog-test.db", cfg.DB.ConnectionString)
	assert.Equal(t, models.RestDefaults{CompoundSec: 180, AccessorySec: 60, AutoAdjust: false}, cfg.RestDefaults())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"extra.toml", "foods.yaml"}, cfg.Reference.Files)
	assert.Equal(t, "me", cfg.Profile.Default)
	assert.Equal(t, "Europe/Lisbon", cfg.Profile.Timezone)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 150, cfg.Rest.CompoundSec)
	assert.Equal(t, 90, cfg.Rest.AccessorySec)
	assert.True(t, cfg.Rest.AutoAdjust)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "file:"+filepath.Join(dir, "ironlog.db"), cfg.DB.ConnectionString)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load("/nonexistent/config.toml")
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("TURSO_DATABASE_URL", "libsql://ironlog-me.turso.io")
	t.Setenv("TURSO_AUTH_TOKEN", "secret")
	t.Setenv("IRONLOG_PROFILE", "env-profile")
	t.Setenv("IRONLOG_LOG_LEVEL", "trace")

	cfg, err := Load(writeTemp(t, validTOML))
	require.NoError(t, err)

	assert.Equal(t, "libsql://ironlog-me.turso.io", cfg.DB.ConnectionString)
	assert.Equal(t, "libsql://ironlog-me.turso.io?authToken=secret", cfg.DB.DSN())
	assert.Equal(t, "env-profile", cfg.Profile.Default)
	assert.Equal(t, "trace", cfg.Logging.Level)
	// Unchanged fields keep the file values.
	assert.Equal(t, 180, cfg.Rest.CompoundSec)
}

func TestDevMode(t *testing.T) {
	isolate(t)
	t.Setenv("TURSO_DATABASE_URL", "libsql://ironlog-me.turso.io")
	t.Setenv("DEV_MODE", "true")

	cfg, err := Load(writeTemp(t, validTOML))
	require.NoError(t, err)
	assert.Equal(t, "file:./local.db", cfg.DB.ConnectionString)
}

func TestValidation(t *testing.T) {
	isolate(t)

	_, err := Load(writeTemp(t, "[rest]\ncompound_sec = 5\n"))
	assert.ErrorContains(t, err, "compound_sec")

	_, err = Load(writeTemp(t, "[rest]\naccessory_sec = 900\n"))
	assert.ErrorContains(t, err, "accessory_sec")

	_, err = Load(writeTemp(t, "[rest\n"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	local := DBConfig{ConnectionString: "file:./local.db", AuthToken: "ignored"}
	assert.Equal(t, "file:./local.db", local.DSN())

	remote := DBConfig{ConnectionString: "https://db.example.com?authToken=kept", AuthToken: "other"}
	assert.Equal(t, "https://db.example.com?authToken=kept", remote.DSN())

	assert.True(t, IsRemote("wss://db.example.com"))
	assert.False(t, IsRemote("/home/me/ironlog.db"))
}
