// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type APIKey struct {
	OrgID string `mapstructure:"org_id"`
	Hash  string `mapstructure:"hash"`
}

type Config struct {
	ListenAddr string `mapstructure:"listen_addr"`
	Database   struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Source struct {
		Kind string `mapstructure:"kind"` // postgres | file
		File string `mapstructure:"file"`
	} `mapstructure:"source"`
	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"logging"`
	Security struct {
		RequestID struct {
			TrustHeader bool `mapstructure:"trust_header"`
		} `mapstructure:"request_id"`
		RateLimit struct {
			Enabled           bool          `mapstructure:"enabled"`
			RequestsPerMinute int           `mapstructure:"rpm"`
			Burst             int           `mapstructure:"burst"`
			TTL               time.Duration `mapstructure:"ttl"`
		} `mapstructure:"rate_limit"`
		APIKeys struct {
			Enabled bool     `mapstructure:"enabled"`
			Keys    []APIKey `mapstructure:"keys"`
		} `mapstructure:"api_keys"`
		Denylist struct {
			Enabled bool     `mapstructure:"enabled"`
			Orgs    []string `mapstructure:"orgs"`
		} `mapstructure:"denylist"`
	} `mapstructure:"security"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
	Timeline struct {
		Timezone      string `mapstructure:"timezone"`
		OnSiteLimit   int    `mapstructure:"on_site_limit"`
		MaxWeekOffset int    `mapstructure:"max_week_offset"`
	} `mapstructure:"timeline"`
}

const (
	SourcePostgres = "postgres"
	SourceFile     = "file"
)

// Location resolves the timeline timezone used to decide what "today" is.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timeline.Timezone)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen_addr", "127.0.0.1:8080")
	v.SetDefault("source.kind", SourcePostgres)
	v.SetDefault("source.file", "seed/demo.toml")
	// Sensible logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	// Security defaults
	v.SetDefault("security.request_id.trust_header", false)
	v.SetDefault("security.rate_limit.enabled", true)
	v.SetDefault("security.rate_limit.rpm", 120)
	v.SetDefault("security.rate_limit.burst", 60)
	v.SetDefault("security.rate_limit.ttl", "30m")
	v.SetDefault("security.api_keys.enabled", false)
	v.SetDefault("security.denylist.enabled", false)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173"})
	v.SetDefault("timeline.timezone", "Europe/London")
	v.SetDefault("timeline.on_site_limit", 3)
	v.SetDefault("timeline.max_week_offset", 104)
}

// Load reads config.yaml (from . or ..), then .env, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return load(v)
}

func load(v *viper.Viper) (Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// explicit bindings
	_ = v.BindEnv("listen_addr", "LISTEN_ADDR")
	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("source.kind", "SOURCE_KIND")
	_ = v.BindEnv("source.file", "SOURCE_FILE")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("logging.format", "LOG_FORMAT")
	_ = v.BindEnv("security.request_id.trust_header", "REQUEST_ID_TRUST_HEADER")
	_ = v.BindEnv("security.rate_limit.enabled", "RATE_LIMIT_ENABLED")
	_ = v.BindEnv("security.rate_limit.rpm", "RATE_LIMIT_RPM")
	_ = v.BindEnv("security.rate_limit.burst", "RATE_LIMIT_BURST")
	_ = v.BindEnv("security.rate_limit.ttl", "RATE_LIMIT_TTL")
	_ = v.BindEnv("security.api_keys.enabled", "API_KEYS_ENABLED")
	_ = v.BindEnv("security.denylist.enabled", "DENYLIST_ENABLED")
	_ = v.BindEnv("timeline.timezone", "TIMELINE_TIMEZONE")
	_ = v.BindEnv("timeline.on_site_limit", "TIMELINE_ON_SITE_LIMIT")
	_ = v.BindEnv("timeline.max_week_offset", "TIMELINE_MAX_WEEK_OFFSET")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return c, c.validate()
}

func (c Config) validate() error {
	switch c.Source.Kind {
	case SourcePostgres:
		if c.Database.URL == "" {
			return errors.New("config error: database.url/DATABASE_URL required for postgres source")
		}
	case SourceFile:
		if c.Source.File == "" {
			return errors.New("config error: source.file/SOURCE_FILE required for file source")
		}
	default:
		return fmt.Errorf("config error: unknown source.kind %q", c.Source.Kind)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("config error: timeline.timezone: %w", err)
	}
	if c.Security.APIKeys.Enabled && len(c.Security.APIKeys.Keys) == 0 {
		return errors.New("config error: security.api_keys.enabled but no keys configured")
	}
	return nil
}
