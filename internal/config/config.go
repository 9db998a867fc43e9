package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	AuthSecret     string   `mapstructure:"AUTH_SECRET"`
	TokenTTLHours  int      `mapstructure:"TOKEN_TTL_HOURS"`
	SessionFile    string   `mapstructure:"SESSION_FILE"`
	LoginDelayMS   int      `mapstructure:"LOGIN_DELAY_MS"`
	ReportDelayMS  int      `mapstructure:"REPORT_DELAY_MS"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("AUTH_SECRET", "")
	v.SetDefault("TOKEN_TTL_HOURS", 8)
	v.SetDefault("SESSION_FILE", ".mysage_session.json")
	v.SetDefault("LOGIN_DELAY_MS", 1000)
	v.SetDefault("REPORT_DELAY_MS", 3000)
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("AUTH_SECRET")
	v.BindEnv("TOKEN_TTL_HOURS")
	v.BindEnv("SESSION_FILE")
	v.BindEnv("LOGIN_DELAY_MS")
	v.BindEnv("REPORT_DELAY_MS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LoginDelay is the artificial latency added to every login attempt so
// the mock endpoint behaves like a remote call.
func (c *Config) LoginDelay() time.Duration {
	return time.Duration(c.LoginDelayMS) * time.Millisecond
}

// ReportDelay is how long a simulated report generation runs before the
// report transitions to Ready.
func (c *Config) ReportDelay() time.Duration {
	return time.Duration(c.ReportDelayMS) * time.Millisecond
}

// TokenTTL is the lifetime of issued session tokens.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// Validate checks that the configuration is safe to run. In development
// a missing AUTH_SECRET falls back to a fixed dev key; in any other mode
// it must be set and reasonably long.
func (c *Config) Validate() error {
	if !c.IsDev() {
		if c.AuthSecret == "" {
			return fmt.Errorf("AUTH_SECRET is required when ENV=%q", c.Env)
		}
		if len(c.AuthSecret) < 32 {
			return fmt.Errorf("AUTH_SECRET must be at least 32 characters, got %d", len(c.AuthSecret))
		}
	}
	if c.LoginDelayMS < 0 {
		return fmt.Errorf("LOGIN_DELAY_MS must not be negative, got %d", c.LoginDelayMS)
	}
	if c.ReportDelayMS < 0 {
		return fmt.Errorf("REPORT_DELAY_MS must not be negative, got %d", c.ReportDelayMS)
	}
	if c.TokenTTLHours <= 0 {
		return fmt.Errorf("TOKEN_TTL_HOURS must be positive, got %d", c.TokenTTLHours)
	}
	return nil
}
