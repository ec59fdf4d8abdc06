package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PLANEBOOKING_ENGINE_PATH.
const EnvPrefix = "PLANEBOOKING"

// Isolation modes for the engine's result file.
const (
	IsolationPerRequest = "per-request"
	IsolationShared     = "shared"
)

type ServerConfig struct {
	Addr              string        `mapstructure:"addr" json:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" json:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" json:"shutdown_timeout"`
}

type EngineConfig struct {
	Path       string        `mapstructure:"path" json:"path"`
	InputFile  string        `mapstructure:"input_file" json:"input_file"`
	OutputFile string        `mapstructure:"output_file" json:"output_file"`
	Timeout    time.Duration `mapstructure:"timeout" json:"timeout"`
	Isolation  string        `mapstructure:"isolation" json:"isolation"`
	ScratchDir string        `mapstructure:"scratch_dir" json:"scratch_dir"`
}

type CORSConfig struct {
	AllowedOrigin    string   `mapstructure:"allowed_origin" json:"allowed_origin"`
	AllowedMethods   []string `mapstructure:"allowed_methods" json:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers" json:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials" json:"allow_credentials"`
}

type LoggingConfig struct {
	Level       string `mapstructure:"level" json:"level"`
	Development bool   `mapstructure:"development" json:"development"`
}

// Config is fixed at process start.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" json:"server"`
	Engine  EngineConfig  `mapstructure:"engine" json:"engine"`
	CORS    CORSConfig    `mapstructure:"cors" json:"cors"`
	Logging LoggingConfig `mapstructure:"logging" json:"logging"`
}

// Load layers defaults, an optional config file, a .env file and
// PLANEBOOKING_* environment variables, in increasing precedence.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in configuration without consulting files or env.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	return cfg
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Engine.Path) == "" {
		errs = append(errs, errors.New("engine.path is required"))
	}
	if strings.TrimSpace(c.Engine.InputFile) == "" {
		errs = append(errs, errors.New("engine.input_file is required"))
	}
	if strings.TrimSpace(c.Engine.OutputFile) == "" {
		errs = append(errs, errors.New("engine.output_file is required"))
	}
	if c.Engine.Timeout < 0 {
		errs = append(errs, errors.New("engine.timeout must not be negative"))
	}
	switch c.Engine.Isolation {
	case IsolationPerRequest, IsolationShared:
	default:
		errs = append(errs, fmt.Errorf("engine.isolation must be %q or %q, got %q", IsolationPerRequest, IsolationShared, c.Engine.Isolation))
	}
	if strings.TrimSpace(c.CORS.AllowedOrigin) == "" {
		errs = append(errs, errors.New("cors.allowed_origin is required"))
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	return errors.Join(errs...)
}
