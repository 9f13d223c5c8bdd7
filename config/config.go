package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StorageDriverFile   = "file"
	StorageDriverMemory = "memory"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Timetable tracker specifics
	Storage StorageConfig
	Tracker TrackerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type StorageConfig struct {
	Driver string // "file" or "memory"
	Path   string // document path for the file driver
}

type TrackerConfig struct {
	Timezone string // IANA name; decides which calendar day is "today"
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/timetable/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/timetable/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Timetable tracker specifics
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(viper.GetString("storage.driver")))
	cfg.Storage.Path = strings.TrimSpace(viper.GetString("storage.path"))
	cfg.Tracker.Timezone = viper.GetString("tracker.timezone")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 600)

	viper.SetDefault("storage.driver", StorageDriverFile)
	viper.SetDefault("storage.path", "data/timetable.json")
	viper.SetDefault("tracker.timezone", "Local")
}

func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case StorageDriverFile:
		if cfg.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the %q driver", StorageDriverFile)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}

	if _, err := time.LoadLocation(cfg.Tracker.Timezone); err != nil {
		return fmt.Errorf("invalid tracker.timezone %q: %w", cfg.Tracker.Timezone, err)
	}

	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}

	return nil
}
