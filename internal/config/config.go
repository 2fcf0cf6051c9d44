// Package config loads the codequest server configuration.
package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/codequest/internal/engine/patterns"
	"github.com/KirkDiggler/codequest/internal/errors"
	"github.com/KirkDiggler/codequest/internal/sandbox"
)

// StoreKind selects the save store backend
type StoreKind string

const (
	StoreRedis  StoreKind = "redis"
	StoreSQLite StoreKind = "sqlite"
)

// Config holds all codequest configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Store   StoreConfig   `yaml:"store"`
	Sandbox SandboxConfig `yaml:"sandbox"`
	Game    GameConfig    `yaml:"game"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the listeners.
type ServerConfig struct {
	GRPCPort        int           `yaml:"grpc_port"`
	HTTPPort        int           `yaml:"http_port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// StoreConfig configures where the player save lives.
type StoreConfig struct {
	Kind       StoreKind `yaml:"kind"` // redis, sqlite
	RedisAddr  string    `yaml:"redis_addr"`
	SQLitePath string    `yaml:"sqlite_path"`
	Slot       string    `yaml:"slot"`
}

// SandboxConfig configures code execution.
type SandboxConfig struct {
	Language     sandbox.Language `yaml:"language"` // python, go
	PythonBinary string           `yaml:"python_binary"`
	ExecTimeout  time.Duration    `yaml:"exec_timeout"`
}

// GameConfig tunes combat and the dungeon.
type GameConfig struct {
	Classifier       patterns.Kind `yaml:"classifier"` // lexical, syntax
	RetaliationDelay time.Duration `yaml:"retaliation_delay"`
	FailThreshold    int           `yaml:"fail_threshold"`
	FailDamage       int           `yaml:"fail_damage"`
	// CatalogPath replaces the embedded catalog when set
	CatalogPath string `yaml:"catalog_path"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCPort:        50051,
			HTTPPort:        8080,
			ShutdownTimeout: 30 * time.Second,
		},
		Store: StoreConfig{
			Kind:       StoreSQLite,
			RedisAddr:  "localhost:6379",
			SQLitePath: "codequest.db",
			Slot:       "default",
		},
		Sandbox: SandboxConfig{
			Language:     sandbox.LanguagePython,
			PythonBinary: "python3",
			ExecTimeout:  5 * time.Second,
		},
		Game: GameConfig{
			Classifier:       patterns.KindLexical,
			RetaliationDelay: time.Second,
			FailThreshold:    10,
			FailDamage:       10,
		},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config")
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("CODEQUEST_STORE"); v != "" {
		c.Store.Kind = StoreKind(v)
	}
	if v := os.Getenv("CODEQUEST_REDIS_ADDR"); v != "" {
		c.Store.RedisAddr = v
	}
	if v := os.Getenv("CODEQUEST_SQLITE_PATH"); v != "" {
		c.Store.SQLitePath = v
	}
	if v := os.Getenv("CODEQUEST_LANGUAGE"); v != "" {
		c.Sandbox.Language = sandbox.Language(v)
	}
	if v := os.Getenv("CODEQUEST_GRPC_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.InvalidArgumentf("CODEQUEST_GRPC_PORT: %q is not a port", v)
		}
		c.Server.GRPCPort = port
	}
	if v := os.Getenv("CODEQUEST_HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.InvalidArgumentf("CODEQUEST_HTTP_PORT: %q is not a port", v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if !validPort(c.Server.GRPCPort) {
		vb.Field("server.grpc_port", "must be within 1-65535")
	}
	if !validPort(c.Server.HTTPPort) {
		vb.Field("server.http_port", "must be within 1-65535")
	}
	if c.Server.GRPCPort == c.Server.HTTPPort {
		vb.Field("server.http_port", "must differ from grpc_port")
	}

	switch c.Store.Kind {
	case StoreRedis:
		errors.ValidateRequired("store.redis_addr", c.Store.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired("store.sqlite_path", c.Store.SQLitePath, vb)
	default:
		vb.Fieldf("store.kind", "unknown store %q", c.Store.Kind)
	}
	errors.ValidateRequired("store.slot", c.Store.Slot, vb)

	switch c.Sandbox.Language {
	case sandbox.LanguagePython:
		errors.ValidateRequired("sandbox.python_binary", c.Sandbox.PythonBinary, vb)
	case sandbox.LanguageGo:
	default:
		vb.Fieldf("sandbox.language", "unknown language %q", c.Sandbox.Language)
	}
	if c.Sandbox.ExecTimeout <= 0 {
		vb.Field("sandbox.exec_timeout", "must be positive")
	}

	if c.Game.Classifier != patterns.KindLexical && c.Game.Classifier != patterns.KindSyntax {
		vb.Fieldf("game.classifier", "unknown classifier %q", c.Game.Classifier)
	}
	if c.Game.RetaliationDelay < 0 {
		vb.Field("game.retaliation_delay", "must not be negative")
	}
	if c.Game.FailThreshold < 0 {
		vb.Field("game.fail_threshold", "must not be negative")
	}
	if c.Game.FailDamage <= 0 {
		vb.Field("game.fail_damage", "must be positive")
	}

	return vb.Build()
}

func validPort(p int) bool {
	return p > 0 && p <= 65535
}
