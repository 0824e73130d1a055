package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	// AppPassword is the shared secret checked by the auth gate. Empty means
	// the gate is not configured and every login is a configuration error.
	AppPassword string
	LLM         struct {
		Provider string
		APIKey   string
		Model    string
		BaseURL  string
	}
	Session struct {
		// Store is "memory", "sqlite3", "mysql" or "postgres".
		Store    string
		DSN      string
		Lifetime time.Duration
	}
	InsecureCookies bool
	PersonaFile     string
}

// Load reads config from environment (PROMPTSMITH_ prefix) and optional promptsmith.yaml.
// The unprefixed APP_PASSWORD, API_KEY and GEMINI_API_KEY variables are honoured too.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PROMPTSMITH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("promptsmith")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	_ = v.BindEnv("app_password", "PROMPTSMITH_APP_PASSWORD", "APP_PASSWORD")
	_ = v.BindEnv("llm.api_key", "PROMPTSMITH_LLM_API_KEY", "API_KEY", "GEMINI_API_KEY")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("session.store", "memory")
	v.SetDefault("session.lifetime", "12h")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.AppPassword = v.GetString("app_password")
	cfg.LLM.Provider = v.GetString("llm.provider")
	cfg.LLM.APIKey = v.GetString("llm.api_key")
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.BaseURL = v.GetString("llm.base_url")
	cfg.Session.Store = v.GetString("session.store")
	cfg.Session.DSN = v.GetString("session.dsn")
	cfg.InsecureCookies = v.GetBool("insecure_cookies")
	cfg.PersonaFile = v.GetString("persona.file")

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROMPTSMITH_SESSION_LIFETIME: %w", err)
	}
	cfg.Session.Lifetime = lifetime

	switch cfg.Session.Store {
	case "memory":
	case "sqlite3", "mysql", "postgres":
		if cfg.Session.DSN == "" {
			return nil, fmt.Errorf("PROMPTSMITH_SESSION_DSN is required for session store %q", cfg.Session.Store)
		}
	default:
		return nil, fmt.Errorf("PROMPTSMITH_SESSION_STORE must be memory, sqlite3, mysql, or postgres; got %q", cfg.Session.Store)
	}

	return cfg, nil
}

// SharedSessions reports whether sessions live in a database rather than in process memory.
func (c *Config) SharedSessions() bool {
	return c.Session.Store != "memory"
}
