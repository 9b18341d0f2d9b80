package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ProxyConfig aggregates every setting the edge server needs.
type ProxyConfig struct {
	ListenPort string         `mapstructure:"listen_port"`
	AppHost    string         `mapstructure:"app_host"`
	AppPort    string         `mapstructure:"app_port"`
	StaticDir  string         `mapstructure:"static_dir"`
	MaxBodyMB  int            `mapstructure:"max_body_mb"`
	Logger     LoggerSettings `mapstructure:"logger"`
}

// InitializeProxyConfig loads the edge server configuration from an optional
// YAML file plus environment overrides.
func InitializeProxyConfig(configPath string) (*ProxyConfig, error) {
	v := viper.New()
	setProxyDefaults(v)
	bindProxyEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var cfg ProxyConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the aggregate and the logger section.
func (c *ProxyConfig) Validate() error {
	if c.ListenPort == "" {
		return fmt.Errorf("listen port must not be empty")
	}
	if c.AppHost == "" {
		return fmt.Errorf("app host must not be empty")
	}
	if c.AppPort == "" {
		return fmt.Errorf("app port must not be empty")
	}
	if c.StaticDir == "" {
		return fmt.Errorf("static dir must not be empty")
	}
	if c.MaxBodyMB < 1 {
		return fmt.Errorf("max body size must be at least 1 MB")
	}
	return c.Logger.Validate()
}

// Upstream returns the base URL of the application server.
func (c *ProxyConfig) Upstream() string {
	return fmt.Sprintf("http://%s:%s", c.AppHost, c.AppPort)
}

func setProxyDefaults(v *viper.Viper) {
	v.SetDefault("listen_port", DefaultListenPort)
	v.SetDefault("app_host", DefaultAppHost)
	v.SetDefault("app_port", DefaultAppPort)
	v.SetDefault("static_dir", DefaultStaticDir)
	v.SetDefault("max_body_mb", DefaultMaxBodyMB)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
}

func bindProxyEnv(v *viper.Viper) {
	bindings := map[string]string{
		"listen_port":      "LISTEN_PORT",
		"app_host":         "APP_HOST",
		"app_port":         "APP_PORT",
		"static_dir":       "STATIC_DIR",
		"logger.log_level": "LOG_LEVEL",
		"logger.log_type":  "LOG_TYPE",
	}
	for key, env := range bindings {
		_ = v.BindEnv(key, env)
	}
}
