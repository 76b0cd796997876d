// Package config loads service settings from configs/config.yml and
// HEATING_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "HEATING"

// Config is the resolved service configuration.
type Config struct {
	Port      string
	Log       LogConfig
	DB        DBConfig
	Auth      AuthConfig
	Scheduler SchedulerConfig
	HTTP      HTTPConfig
}

type LogConfig struct {
	Level    string
	Encoding string
}

type DBConfig struct {
	// Path is a sqlite file path or ":memory:".
	Path string
}

type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type SchedulerConfig struct {
	Enabled bool
	Tick    time.Duration
}

type HTTPConfig struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

var errEmptySigningKey = errors.New("auth.signing_key must not be empty")

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("db.path", ":memory:")
	v.SetDefault("auth.signing_key", "change-me")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("scheduler.enabled", false)
	v.SetDefault("scheduler.tick", 30*time.Second)
	v.SetDefault("http.read_header_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
}

// Load reads config.yml from the given directories. A missing file is not an
// error: defaults and environment variables still apply.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port: v.GetString("port"),
		Log: LogConfig{
			Level:    v.GetString("log.level"),
			Encoding: v.GetString("log.encoding"),
		},
		DB: DBConfig{Path: v.GetString("db.path")},
		Auth: AuthConfig{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
		Scheduler: SchedulerConfig{
			Enabled: v.GetBool("scheduler.enabled"),
			Tick:    v.GetDuration("scheduler.tick"),
		},
		HTTP: HTTPConfig{
			ReadHeaderTimeout: v.GetDuration("http.read_header_timeout"),
			WriteTimeout:      v.GetDuration("http.write_timeout"),
			IdleTimeout:       v.GetDuration("http.idle_timeout"),
		},
	}
	if strings.TrimSpace(cfg.Auth.SigningKey) == "" {
		return nil, errEmptySigningKey
	}
	return cfg, nil
}
