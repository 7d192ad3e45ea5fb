// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes server timeouts,
// logging, database selection, rate limiting, caching and observability.
//
// Precedence: defaults < optional config file (CONFIG_FILE, any format viper
// reads) < environment variables. Keys are the environment variable names;
// a YAML file uses the same names in any case (e.g. "rate_rps: 2").
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tbourn/newsroom-api/internal/sysutil"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// DBConfig selects and tunes the store.
type DBConfig struct {
	Driver       string // DB_DRIVER: sqlite|postgres
	Path         string // DB_PATH (sqlite)
	URL          string // DATABASE_URL (postgres)
	MaxOpenConns int    // DB_MAX_OPEN_CONNS; 0 keeps the driver default
	SeedOnStart  bool   // SEED_ON_START: reload fixtures at boot
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	GinMode           string // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool
	SwaggerEnabled bool
	APIBasePath    string

	DB DBConfig

	// TopicCacheTTL bounds how long a topic existence check is remembered.
	TopicCacheTTL time.Duration

	// Rate limiting
	RateRPS   float64 // tokens per second; 0 disables limiting
	RateBurst int

	CORS     CORSConfig
	Security SecurityConfig
	OTEL     OTELConfig
}

var defaults = map[string]string{
	"PORT":                "9090",
	"READ_TIMEOUT":        "15s",
	"READ_HEADER_TIMEOUT": "10s",
	"WRITE_TIMEOUT":       "20s",
	"IDLE_TIMEOUT":        "60s",
	"MAX_HEADER_BYTES":    "1048576",
	"GIN_MODE":            "release",

	"LOG_LEVEL":       "info",
	"LOG_PRETTY":      "false",
	"SWAGGER_ENABLED": "false",
	"API_BASE_PATH":   "/api",

	"DB_DRIVER":         "sqlite",
	"DB_PATH":           "newsroom.db",
	"DATABASE_URL":      "",
	"DB_MAX_OPEN_CONNS": "10",
	"SEED_ON_START":     "false",

	"TOPIC_CACHE_TTL": "1m",

	"RATE_RPS":   "20",
	"RATE_BURST": "40",

	"CORS_ALLOWED_ORIGINS": "",
	"ENABLE_HSTS":          "false",
	"HSTS_MAX_AGE":         "4320h",

	"OTEL_ENABLED":                "false",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "localhost:4317",
	"OTEL_EXPORTER_OTLP_INSECURE": "true",
	"OTEL_SERVICE_NAME":           "newsroom-api",
	"OTEL_TRACES_SAMPLER_ARG":     "1.0",
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration, applies defaults, normalizes values, and
// validates the result. Values that fail to parse are errors.
func Load() (Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	if f := strings.TrimSpace(os.Getenv("CONFIG_FILE")); f != "" {
		v.SetConfigFile(f)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", f, err)
		}
	}

	r := &reader{v: v}
	cfg := Config{
		Port:              r.str("PORT"),
		ReadTimeout:       r.duration("READ_TIMEOUT"),
		ReadHeaderTimeout: r.duration("READ_HEADER_TIMEOUT"),
		WriteTimeout:      r.duration("WRITE_TIMEOUT"),
		IdleTimeout:       r.duration("IDLE_TIMEOUT"),
		MaxHeaderBytes:    r.integer("MAX_HEADER_BYTES"),
		GinMode:           strings.ToLower(r.str("GIN_MODE")),

		LogLevel:       strings.ToLower(r.str("LOG_LEVEL")),
		LogPretty:      r.boolean("LOG_PRETTY"),
		SwaggerEnabled: r.boolean("SWAGGER_ENABLED"),
		APIBasePath:    normalizeBasePath(r.str("API_BASE_PATH")),

		DB: DBConfig{
			Driver:       strings.ToLower(r.str("DB_DRIVER")),
			Path:         r.str("DB_PATH"),
			URL:          r.str("DATABASE_URL"),
			MaxOpenConns: r.integer("DB_MAX_OPEN_CONNS"),
			SeedOnStart:  r.boolean("SEED_ON_START"),
		},

		TopicCacheTTL: r.duration("TOPIC_CACHE_TTL"),

		RateRPS:   r.number("RATE_RPS"),
		RateBurst: r.integer("RATE_BURST"),

		CORS: CORSConfig{
			AllowedOrigins: splitCSV(r.str("CORS_ALLOWED_ORIGINS")),
		},
		Security: SecurityConfig{
			EnableHSTS: r.boolean("ENABLE_HSTS"),
			HSTSMaxAge: r.duration("HSTS_MAX_AGE"),
		},
		OTEL: OTELConfig{
			Enabled:     r.boolean("OTEL_ENABLED"),
			Endpoint:    r.str("OTEL_EXPORTER_OTLP_ENDPOINT"),
			Insecure:    r.boolean("OTEL_EXPORTER_OTLP_INSECURE"),
			ServiceName: r.str("OTEL_SERVICE_NAME"),
			SampleRatio: r.number("OTEL_TRACES_SAMPLER_ARG"),
		},
	}
	if r.err != nil {
		return cfg, r.err
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if cfg.Port == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	switch cfg.DB.Driver {
	case "sqlite":
		if cfg.DB.Path == "" {
			return cfg, errors.New("DB_PATH must not be empty")
		}
	case "postgres":
		if cfg.DB.URL == "" {
			return cfg, errors.New("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return cfg, errors.New("DB_DRIVER must be one of: sqlite, postgres")
	}
	if cfg.DB.MaxOpenConns < 0 {
		return cfg, errors.New("DB_MAX_OPEN_CONNS must be >= 0")
	}
	if cfg.TopicCacheTTL <= 0 {
		return cfg, errors.New("TOPIC_CACHE_TTL must be > 0")
	}
	if cfg.RateRPS < 0 {
		return cfg, errors.New("RATE_RPS must be >= 0")
	}
	if cfg.RateBurst < 1 {
		return cfg, errors.New("RATE_BURST must be >= 1")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}

	return cfg, nil
}

// reader parses viper values and keeps the first error.
type reader struct {
	v   *viper.Viper
	err error
}

func (r *reader) fail(k, kind, raw string) {
	if r.err == nil {
		r.err = fmt.Errorf("%s: invalid %s %q", k, kind, raw)
	}
}

func (r *reader) str(k string) string { return strings.TrimSpace(r.v.GetString(k)) }

func (r *reader) integer(k string) int {
	raw := r.str(k)
	i, err := strconv.Atoi(raw)
	if err != nil {
		r.fail(k, "integer", raw)
	}
	return i
}

func (r *reader) number(k string) float64 {
	raw := r.str(k)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.fail(k, "number", raw)
	}
	return f
}

func (r *reader) duration(k string) time.Duration {
	raw := r.str(k)
	d, err := time.ParseDuration(raw)
	if err != nil {
		r.fail(k, "duration", raw)
	}
	return d
}

func (r *reader) boolean(k string) bool {
	raw := r.str(k)
	b, ok := sysutil.ParseBool(raw)
	if !ok {
		r.fail(k, "boolean", raw)
	}
	return b
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures leading '/' and strips trailing '/' (except root).
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	return p
}
