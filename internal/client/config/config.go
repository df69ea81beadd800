// Package config loads the timeline client settings.
//
// Precedence, highest first: command line flags, TIMELINE_* environment
// variables, ~/.config/timeline/config.yaml, defaults.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	KeyAPIURL    = "api_url"
	KeyCachePath = "cache_path"
	KeyTimeout   = "timeout"
	KeyNoColor   = "no_color"

	EnvPrefix = "TIMELINE"
)

type Config struct {
	APIURL    string        `mapstructure:"api_url"`
	CachePath string        `mapstructure:"cache_path"`
	Timeout   time.Duration `mapstructure:"timeout"`
	NoColor   bool          `mapstructure:"no_color"`
}

func Default() Config {
	dir, err := Dir()
	if err != nil {
		dir = "."
	}
	return Config{
		APIURL:    "http://localhost:8080",
		CachePath: filepath.Join(dir, "cache.db"),
		Timeout:   10 * time.Second,
		NoColor:   false,
	}
}

// Dir is ~/.config/timeline.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "timeline"), nil
}

// New returns a viper instance with defaults, env binding and the config file set.
// An empty file means the default location.
func New(file string) *viper.Viper {
	def := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	} else if dir, err := Dir(); err == nil {
		v.SetConfigFile(filepath.Join(dir, "config.yaml"))
	}

	v.SetDefault(KeyAPIURL, def.APIURL)
	v.SetDefault(KeyCachePath, def.CachePath)
	v.SetDefault(KeyTimeout, def.Timeout)
	v.SetDefault(KeyNoColor, def.NoColor)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (a missing one is fine) and validates the result.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	cfg.APIURL = strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_url %q must be an absolute URL", c.APIURL)
	}
	if c.CachePath == "" {
		return errors.New("cache_path is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
