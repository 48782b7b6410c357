package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"trade-query-go/infrastructure/logger"
)

// EnvPrefix prefixes every environment override, e.g. TQ_HTTP_ADDR.
const EnvPrefix = "TQ_"

// AppConfig holds the main runtime configuration.
type AppConfig struct {
	Env     string        `yaml:"env" env:"ENV"`
	HTTP    HTTPConfig    `yaml:"http" envPrefix:"HTTP_"`
	Metrics MetricsConfig `yaml:"metrics" envPrefix:"METRICS_"`
	Log     logger.Config `yaml:"log" envPrefix:"LOG_"`
	Reload  ReloadConfig  `yaml:"reload" envPrefix:"RELOAD_"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr" env:"ADDR"`
	ReadTimeout     time.Duration `yaml:"readTimeout" env:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"writeTimeout" env:"WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" env:"SHUTDOWN_TIMEOUT"`
}

// MetricsConfig configures the Prometheus listener. An empty Addr disables it.
type MetricsConfig struct {
	Addr      string `yaml:"addr" env:"ADDR"`
	Namespace string `yaml:"namespace" env:"NAMESPACE"`
}

// ReloadConfig controls config-file watching. Only the log level is applied live.
type ReloadConfig struct {
	Enabled  bool          `yaml:"enabled" env:"ENABLED"`
	Debounce time.Duration `yaml:"debounce" env:"DEBOUNCE"`
}

// Default returns the configuration used when no file is given.
func Default() AppConfig {
	return AppConfig{
		Env: "dev",
		HTTP: HTTPConfig{
			Addr:            ":8000",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Metrics: MetricsConfig{
			Addr:      ":9100",
			Namespace: "tradequery",
		},
		Log: logger.DefaultConfig(),
		Reload: ReloadConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}

// Load reads YAML config from path over the defaults and applies basic validation.
// An empty path yields the defaults.
func Load(path string) (AppConfig, error) {
	cfg, err := read(path)
	if err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadWithEnvOverrides loads config, then .env, then TQ_* environment variables.
// Variables already set in the process environment win over .env entries.
func LoadWithEnvOverrides(path string) (AppConfig, error) {
	cfg, err := read(path)
	if err != nil {
		return cfg, err
	}
	if err := loadDotEnv(dotEnvFiles...); err != nil {
		return cfg, err
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, Validate(cfg)
}

var dotEnvFiles = []string{".env"}

func loadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func read(path string) (AppConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Validate ensures required fields are present.
func Validate(cfg AppConfig) error {
	if cfg.Env == "" {
		return errors.New("env is required")
	}
	if cfg.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	if cfg.HTTP.ReadTimeout < 0 || cfg.HTTP.WriteTimeout < 0 || cfg.HTTP.ShutdownTimeout < 0 {
		return errors.New("http timeouts must be >= 0")
	}
	if cfg.Metrics.Addr != "" && cfg.Metrics.Addr == cfg.HTTP.Addr {
		return fmt.Errorf("metrics.addr %s collides with http.addr", cfg.Metrics.Addr)
	}
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch cfg.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", cfg.Log.Format)
	}
	for _, out := range cfg.Log.Outputs {
		switch out {
		case "stdout":
		case "file":
			if cfg.Log.OutputFile == "" {
				return errors.New("log.output_file is required when outputs contains file")
			}
		default:
			return fmt.Errorf("log.outputs: unknown output %q", out)
		}
	}
	if cfg.Reload.Debounce < 0 {
		return errors.New("reload.debounce must be >= 0")
	}
	return nil
}
