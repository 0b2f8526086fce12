package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Session store backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	Session   SessionConfig
	Log       LogConfig
	Workbench WorkbenchConfig
	UI        UIConfig
}

// SessionConfig selects where the login state survives restarts.
type SessionConfig struct {
	Backend      string
	DatabasePath string `mapstructure:"database_path"`
	FilePath     string `mapstructure:"file_path"`
}

// LogConfig holds zap settings.
type LogConfig struct {
	Level       string
	Path        string
	Development bool
}

// WorkbenchConfig points at an optional YAML record seed.
type WorkbenchConfig struct {
	SeedPath string `mapstructure:"seed_path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title      string
	DateFormat string `mapstructure:"date_format"`
	Greeting   string
}

// Load reads configuration from file and env. Env var overrides use prefix SPECIALDESK_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SPECIALDESK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(homeDir(), ".config", "specialdesk"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SPECIALDESK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path that does not exist is an error, a missing default is not
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	home := homeDir()
	v.SetDefault("session.backend", BackendSQLite)
	v.SetDefault("session.database_path", filepath.Join(home, ".local", "share", "specialdesk", "specialdesk.db"))
	v.SetDefault("session.file_path", filepath.Join(home, ".config", "specialdesk", "session.toml"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "specialdesk", "specialdesk.log"))
	v.SetDefault("log.development", false)
	v.SetDefault("workbench.seed_path", "")
	v.SetDefault("ui.title", "Special Desktop")
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("ui.greeting", "Hello! I'm your AI assistant. How can I help you today?")
}

// Validate checks the fields the entry point depends on.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Session.Backend)) {
	case BackendSQLite:
		if strings.TrimSpace(c.Session.DatabasePath) == "" {
			return fmt.Errorf("session.database_path required for %s backend", BackendSQLite)
		}
	case BackendFile:
		if strings.TrimSpace(c.Session.FilePath) == "" {
			return fmt.Errorf("session.file_path required for %s backend", BackendFile)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown session.backend %q", c.Session.Backend)
	}
	if strings.TrimSpace(c.Log.Path) == "" {
		return fmt.Errorf("log.path required")
	}
	return nil
}

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}
