package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RestConfig aggregates every setting the application server needs.
type RestConfig struct {
	Port         string            `mapstructure:"port"`
	AllowedHosts string            `mapstructure:"allowed_hosts"`
	Database     DatabaseSettings  `mapstructure:"database"`
	Logger       LoggerSettings    `mapstructure:"logger"`
	Auth         AuthSettings      `mapstructure:"auth"`
	Storage      StorageSettings   `mapstructure:"storage"`
	RateLimit    RateLimitSettings `mapstructure:"rate_limit"`
}

// InitializeRestConfig loads the application server configuration from an
// optional YAML file plus environment overrides. An empty configPath means
// environment variables and defaults only.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)
	bindRestEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the aggregate and every section.
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.RateLimit.Validate(); err != nil {
		return err
	}
	return nil
}

// AllowedHostList splits the comma-separated allow-list into host names.
// An empty list means every Host header is rejected except health checks.
func (c *RestConfig) AllowedHostList() []string {
	parts := strings.Split(c.AllowedHosts, ",")
	hosts := make([]string, 0, len(parts))
	for _, p := range parts {
		if h := strings.TrimSpace(p); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultAppPort)
	v.SetDefault("allowed_hosts", "")
	v.SetDefault("database.type", PostgresDbType)
	v.SetDefault("database.host", DefaultDBHost)
	v.SetDefault("database.port", DefaultDBPort)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.dsn", "")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("auth.secret_key", "")
	v.SetDefault("auth.token_ttl_hours", DefaultTokenTTLHours)
	v.SetDefault("storage.media_root", DefaultMediaRoot)
	v.SetDefault("storage.static_root", DefaultStaticRoot)
	v.SetDefault("storage.static_source", DefaultStaticSource)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.redis_addr", "")
	v.SetDefault("rate_limit.requests", DefaultRateLimitRequests)
	v.SetDefault("rate_limit.window_seconds", DefaultRateLimitWindow)
}

// bindRestEnv wires the deployment environment variables onto config keys.
func bindRestEnv(v *viper.Viper) {
	bindings := map[string]string{
		"port":                  "APP_PORT",
		"allowed_hosts":         "ALLOWED_HOSTS",
		"database.host":         "DB_HOST",
		"database.port":         "DB_PORT",
		"database.user":         "DB_USER",
		"database.password":     "DB_PASS",
		"database.name":         "DB_NAME",
		"auth.secret_key":       "SECRET_KEY",
		"storage.media_root":    "MEDIA_ROOT",
		"storage.static_root":   "STATIC_ROOT",
		"rate_limit.redis_addr": "REDIS_ADDR",
		"logger.log_level":      "LOG_LEVEL",
		"logger.log_type":       "LOG_TYPE",
	}
	for key, env := range bindings {
		_ = v.BindEnv(key, env)
	}
}
