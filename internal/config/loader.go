package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Optionally read from config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/stellarinsights")

	// Ignore error if config file not found
	_ = v.ReadInConfig()

	var cfg Config

	// Server
	cfg.Server.Host = v.GetString("server_host")
	cfg.Server.Port = v.GetInt("server_port")
	cfg.Server.Env = v.GetString("server_env")

	// PostgreSQL
	cfg.Postgres.Host = v.GetString("postgres_host")
	cfg.Postgres.Port = v.GetInt("postgres_port")
	cfg.Postgres.User = v.GetString("postgres_user")
	cfg.Postgres.Password = v.GetString("postgres_password")
	cfg.Postgres.Database = v.GetString("postgres_db")
	cfg.Postgres.SSLMode = v.GetString("postgres_ssl_mode")
	cfg.Postgres.MaxConns = int32(v.GetInt("postgres_max_conns"))
	cfg.Postgres.MinConns = int32(v.GetInt("postgres_min_conns"))

	// CORS
	if origins := v.GetString("cors_allowed_origins"); origins != "" {
		cfg.CORS.AllowedOrigins = strings.Split(origins, ",")
	}

	// Sentry
	cfg.Sentry.Enabled = v.GetBool("sentry_enabled")
	cfg.Sentry.DSN = v.GetString("sentry_dsn")
	cfg.Sentry.Environment = v.GetString("sentry_environment")
	cfg.Sentry.Release = v.GetString("sentry_release")
	cfg.Sentry.Debug = v.GetBool("sentry_debug")
	cfg.Sentry.SampleRate = v.GetFloat64("sentry_sample_rate")
	cfg.Sentry.TracesSampleRate = v.GetFloat64("sentry_traces_sample_rate")

	// Logging
	cfg.Log.Level = v.GetString("log_level")
	cfg.Log.Format = v.GetString("log_format")

	// Validate required fields
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server_host", "127.0.0.1")
	v.SetDefault("server_port", 8080)
	v.SetDefault("server_env", "development")

	// PostgreSQL defaults
	v.SetDefault("postgres_host", "localhost")
	v.SetDefault("postgres_port", 5432)
	v.SetDefault("postgres_user", "stellarinsights")
	v.SetDefault("postgres_password", "stellarinsights")
	v.SetDefault("postgres_db", "stellar_insights")
	v.SetDefault("postgres_ssl_mode", "disable")
	v.SetDefault("postgres_max_conns", 25)
	v.SetDefault("postgres_min_conns", 5)

	// CORS defaults: allow any origin, the API is a public read surface
	v.SetDefault("cors_allowed_origins", "*")

	// Sentry defaults
	v.SetDefault("sentry_enabled", false)
	v.SetDefault("sentry_sample_rate", 1.0)
	v.SetDefault("sentry_traces_sample_rate", 0.1)

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

func validate(cfg *Config) error {
	if cfg.Postgres.Database == "" {
		return fmt.Errorf("postgres database name must not be empty")
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	return nil
}
