package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/utils"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DB        DBConfig        `toml:"database"`
	Rest      RestConfig      `toml:"rest"`
	Logging   LoggingConfig   `toml:"logging"`
	Reference ReferenceConfig `toml:"reference"`
	Profile   ProfileConfig   `toml:"profile"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
	AuthToken        string `toml:"auth_token"`        // Only used for remote libsql databases.
}

// RestConfig seeds the rest defaults of newly created profiles.
type RestConfig struct {
	CompoundSec  int  `toml:"compound_sec"`
	AccessorySec int  `toml:"accessory_sec"`
	AutoAdjust   bool `toml:"auto_adjust"`
}

type LoggingConfig struct {
	Level     string `toml:"level"`
	File      string `toml:"file"`
	ToConsole bool   `toml:"to_console"`
	JSON      bool   `toml:"json"`
}

// ReferenceConfig lists extra exercise/food files, TOML or YAML.
type ReferenceConfig struct {
	Files []string `toml:"files"`
}

type ProfileConfig struct {
	Default  string `toml:"default"`
	Timezone string `toml:"timezone"`
}

func Default() *Config {
	return &Config{
		Rest: RestConfig{
			CompoundSec:  150,
			AccessorySec: 90,
			AutoAdjust:   true,
		},
		Logging: LoggingConfig{Level: "warn"},
	}
}

// RestDefaults converts the [rest] section into profile settings.
func (c *Config) RestDefaults() models.RestDefaults {
	return models.RestDefaults{
		CompoundSec:  utils.Clamp(c.Rest.CompoundSec, 30, 600),
		AccessorySec: utils.Clamp(c.Rest.AccessorySec, 30, 600),
		AutoAdjust:   c.Rest.AutoAdjust,
	}
}

// DSN returns the connection string with the auth token attached for remote
// libsql URLs.
func (d DBConfig) DSN() string {
	if d.AuthToken == "" || !IsRemote(d.ConnectionString) {
		return d.ConnectionString
	}
	u, err := url.Parse(d.ConnectionString)
	if err != nil {
		return d.ConnectionString
	}
	q := u.Query()
	if q.Get("authToken") == "" {
		q.Set("authToken", d.AuthToken)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// IsRemote reports whether the connection string points at a libsql server.
func IsRemote(dsn string) bool {
	for _, scheme := range []string{"libsql://", "http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(dsn, scheme) {
			return true
		}
	}
	return false
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := utils.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration from path, or from the default location when
// path is empty. A missing file yields the defaults. Values from .env and the
// environment override the file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("failed to read .env: %s", err)
	}

	explicit := path != ""
	if !explicit {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || explicit {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.DB.ConnectionString == "" {
		dir, err := utils.ConfigDir()
		if err != nil {
			return nil, err
		}
		cfg.DB.ConnectionString = "file:" + filepath.Join(dir, "ironlog.db")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TURSO_DATABASE_URL"); v != "" {
		cfg.DB.ConnectionString = v
	}
	if v := os.Getenv("TURSO_AUTH_TOKEN"); v != "" {
		cfg.DB.AuthToken = v
	}
	if v := os.Getenv("IRONLOG_PROFILE"); v != "" {
		cfg.Profile.Default = v
	}
	if v := os.Getenv("IRONLOG_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db"
	}
}

func (c *Config) validate() error {
	if c.Rest.CompoundSec < 30 || c.Rest.CompoundSec > 600 {
		return fmt.Errorf("rest.compound_sec must be between 30 and 600, got %d", c.Rest.CompoundSec)
	}
	if c.Rest.AccessorySec < 30 || c.Rest.AccessorySec > 600 {
		return fmt.Errorf("rest.accessory_sec must be between 30 and 600, got %d", c.Rest.AccessorySec)
	}
	return nil
}
