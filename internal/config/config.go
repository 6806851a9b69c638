// Package config loads the service configuration from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	SequenceBackendDatabase = "database"
	SequenceBackendRedis    = "redis"
)

// Environment variables that override the file.
const (
	EnvDSN  = "DB"
	EnvPort = "PORT"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env        string `yaml:"env"`
	Log        `yaml:"log"`
	HTTPServer `yaml:"http_server"`
	Storage    `yaml:"storage"`
	Postgres   `yaml:"postgres"`
	SQLite     `yaml:"sqlite"`
	Redis      `yaml:"redis"`
	Sequence   `yaml:"sequence"`
	Validator  `yaml:"validator"`
}

type Log struct {
	Level string `yaml:"level"`
}

// SlogLevel parses Level; unknown values fall back to info.
func (l *Log) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

type HTTPServer struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MaxHeaderBytes int           `yaml:"max_header_bytes"`
	CertFile       string        `yaml:"cert_file"`
	KeyFile        string        `yaml:"key_file"`
}

var defaultHTTPServer = HTTPServer{
	Port:           8080,
	ReadTimeout:    5 * time.Second,
	WriteTimeout:   15 * time.Second,
	IdleTimeout:    time.Minute,
	RequestTimeout: 10 * time.Second,
	MaxHeaderBytes: 1 << 20,
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Storage selects the mapping store. DSN takes precedence over the
// driver-specific section; for sqlite it is the database file path.
type Storage struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type Postgres struct {
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	DB              string        `yaml:"db"`
	SSLMode         string        `yaml:"sslmode"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
}

var defaultPostgres = Postgres{
	Host:            "localhost",
	Port:            5432,
	SSLMode:         "disable",
	ConnMaxIdleTime: 5 * time.Minute,
	ConnMaxLifetime: 30 * time.Minute,
	MaxIdleConns:    5,
	MaxOpenConns:    25,
}

func (p *Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DB, p.SSLMode)
}

type SQLite struct {
	Path        string        `yaml:"path"`
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

var defaultSQLite = SQLite{
	BusyTimeout: 5 * time.Second,
}

type Redis struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

var defaultRedis = Redis{
	Addr:     "localhost:6379",
	CacheTTL: 24 * time.Hour,
}

type Sequence struct {
	Backend string `yaml:"backend"`
	Name    string `yaml:"name"`
}

var defaultSequence = Sequence{
	Backend: SequenceBackendDatabase,
	Name:    "url_sequence",
}

type Validator struct {
	LookupTimeout time.Duration `yaml:"lookup_timeout"`
}

var defaultValidator = Validator{
	LookupTimeout: 5 * time.Second,
}

// StorageDSN returns the connection string of the configured store, or an
// empty string when none is set.
func (c *Config) StorageDSN() string {
	if c.Storage.DSN != "" {
		return c.Storage.DSN
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Postgres.DB != "" {
			return c.Postgres.DSN()
		}
	case DriverSQLite:
		return c.SQLite.Path
	}

	return ""
}

// UsesRedis reports whether any component needs a Redis client.
func (c *Config) UsesRedis() bool {
	return c.Redis.Enabled || c.Sequence.Backend == SequenceBackendRedis
}

// Load reads the YAML file at path, if any, and applies environment overrides.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	setDefaults(&cfg)

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to open config file: %w", op, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("%s: failed to decode config file: %w", op, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.Log = Log{Level: "info"}
	cfg.HTTPServer = defaultHTTPServer
	cfg.Storage = Storage{Driver: DriverPostgres}
	cfg.Postgres = defaultPostgres
	cfg.SQLite = defaultSQLite
	cfg.Redis = defaultRedis
	cfg.Sequence = defaultSequence
	cfg.Validator = defaultValidator
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if dsn, ok := lookup(EnvDSN); ok && dsn != "" {
		cfg.Storage.DSN = dsn
	}

	if port, ok := lookup(EnvPort); ok && port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvPort, port)
		}
		cfg.HTTPServer.Port = p
	}

	return nil
}

// Validate reports the first setting the service cannot start with.
func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvStage, EnvProd:
	default:
		return fmt.Errorf("%w: unknown env %q", ErrInvalidConfig, c.Env)
	}

	switch c.Storage.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.StorageDSN() == "" {
		return fmt.Errorf("%w: no connection string for %s storage", ErrInvalidConfig, c.Storage.Driver)
	}

	switch c.Sequence.Backend {
	case SequenceBackendDatabase, SequenceBackendRedis:
	default:
		return fmt.Errorf("%w: unknown sequence backend %q", ErrInvalidConfig, c.Sequence.Backend)
	}

	if c.Sequence.Name == "" {
		return fmt.Errorf("%w: sequence name is empty", ErrInvalidConfig)
	}

	if c.UsesRedis() && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis address is empty", ErrInvalidConfig)
	}

	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("%w: invalid http port %d", ErrInvalidConfig, c.HTTPServer.Port)
	}

	if c.HTTPServer.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidConfig)
	}

	if c.Validator.LookupTimeout <= 0 {
		return fmt.Errorf("%w: lookup timeout must be positive", ErrInvalidConfig)
	}

	if c.Env == EnvProd && (c.HTTPServer.CertFile == "" || c.HTTPServer.KeyFile == "") {
		return fmt.Errorf("%w: prod requires cert_file and key_file", ErrInvalidConfig)
	}

	return nil
}
