package config

import (
	"strings"
	"time"
)

// Config is the root server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Board     BoardConfig     `yaml:"board"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins returns the configured origins as a trimmed list.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods returns the configured methods as a trimmed list.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers returns the configured headers as a trimmed list.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	WritesPerMinute int           `yaml:"writes_per_minute" env:"SERVER_WRITES_PER_MINUTE" env-default:"600"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds bearer token settings. Tokens only identify the acting operator.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"asymlab"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"12h"`
}

// BoardConfig holds lifecycle and badge settings.
type BoardConfig struct {
	BadgeInlineCap int `yaml:"badge_inline_cap" env:"BOARD_BADGE_INLINE_CAP" env-default:"3"`
	HistoryLimit   int `yaml:"history_limit"    env:"BOARD_HISTORY_LIMIT"    env-default:"50"`
	MaxListLimit   int `yaml:"max_list_limit"   env:"BOARD_MAX_LIST_LIMIT"   env-default:"1000"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TelemetryConfig controls OpenTelemetry metrics.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled"         env:"TELEMETRY_ENABLED"         env-default:"false"`
	ServiceName    string        `yaml:"service_name"    env:"TELEMETRY_SERVICE_NAME"    env-default:"asymlab-board"`
	ExportInterval time.Duration `yaml:"export_interval" env:"TELEMETRY_EXPORT_INTERVAL" env-default:"30s"`
}

// ClientConfig is the root configuration of the operator CLI.
type ClientConfig struct {
	Client ClientSettings `yaml:"client"`
	Log    LogConfig      `yaml:"log"`
}

// ClientSettings holds connection and local-state settings for boardctl.
type ClientSettings struct {
	BaseURL            string        `yaml:"base_url"             env:"BOARD_BASE_URL"             env-default:"http://localhost:8080"`
	Token              string        `yaml:"token"                env:"BOARD_TOKEN"`
	UserID             string        `yaml:"user_id"              env:"BOARD_USER_ID"              env-default:"local"`
	PreferencesPath    string        `yaml:"preferences_path"     env:"BOARD_PREFERENCES_PATH"     env-default:"./boardctl.db"`
	CountsPollInterval time.Duration `yaml:"counts_poll_interval" env:"BOARD_COUNTS_POLL_INTERVAL" env-default:"15s"`
	RequestTimeout     time.Duration `yaml:"request_timeout"      env:"BOARD_REQUEST_TIMEOUT"      env-default:"10s"`
	MaxRetries         uint64        `yaml:"max_retries"          env:"BOARD_MAX_RETRIES"          env-default:"3"`
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
