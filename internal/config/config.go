package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Session   SessionConfig   `yaml:"session"`
	Redis     RedisConfig     `yaml:"redis"`
	Payment   PaymentConfig   `yaml:"payment"`
	Export    ExportConfig    `yaml:"export"`
	Storage   StorageConfig   `yaml:"storage"`
	Seed      SeedConfig      `yaml:"seed"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"X-Request-Id,Content-Disposition,Content-Length"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_URL"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"third-way"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds password hashing and cookie signing settings.
type AuthConfig struct {
	SessionSecret string `yaml:"session_secret" env:"SESSION_SECRET"   env-required:"true"`
	Issuer        string `yaml:"issuer"         env:"AUTH_ISSUER"      env-default:"third-way"`
	BcryptCost    int    `yaml:"bcrypt_cost"    env:"AUTH_BCRYPT_COST" env-default:"12"`
}

// SessionConfig holds cookie session settings.
type SessionConfig struct {
	Backend         string        `yaml:"backend"          env:"SESSION_BACKEND"          env-default:"postgres"`
	TTL             time.Duration `yaml:"ttl"              env:"SESSION_TTL"              env-default:"720h"`
	CookieName      string        `yaml:"cookie_name"      env:"SESSION_COOKIE_NAME"      env-default:"third_way.sid"`
	CookieSecure    bool          `yaml:"cookie_secure"    env:"SESSION_COOKIE_SECURE"    env-default:"false"`
	CleanupSchedule string        `yaml:"cleanup_schedule" env:"SESSION_CLEANUP_SCHEDULE" env-default:"@every 15m"`
}

// RedisConfig is used when Session.Backend is "redis".
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// PaymentConfig holds payment provider settings. An empty SecretKey
// disables the payment routes.
type PaymentConfig struct {
	SecretKey   string `yaml:"secret_key"   env:"STRIPE_SECRET_KEY"`
	AmountCents int64  `yaml:"amount_cents" env:"PAYMENT_AMOUNT_CENTS" env-default:"2000"`
	Currency    string `yaml:"currency"     env:"PAYMENT_CURRENCY"     env-default:"brl"`
}

// Enabled reports whether a provider key is configured.
func (c PaymentConfig) Enabled() bool { return c.SecretKey != "" }

// ExportConfig holds archive export settings.
type ExportConfig struct {
	TempDir        string `yaml:"temp_dir"        env:"EXPORT_TEMP_DIR"`
	ProjectRoot    string `yaml:"project_root"    env:"EXPORT_PROJECT_ROOT"    env-default:"."`
	ProjectExclude string `yaml:"project_exclude" env:"EXPORT_PROJECT_EXCLUDE" env-default:"node_modules,dist,.git,tmp,bin,*.zip"`
}

// ExcludePatterns returns the trimmed, non-empty exclusion patterns.
func (c ExportConfig) ExcludePatterns() []string {
	parts := strings.Split(c.ProjectExclude, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// StorageConfig holds the optional S3-compatible mirror for export archives.
// An empty Endpoint disables mirroring.
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"   env:"STORAGE_ENDPOINT"`
	AccessKey string `yaml:"access_key" env:"STORAGE_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"STORAGE_SECRET_KEY"`
	Bucket    string `yaml:"bucket"     env:"STORAGE_BUCKET"     env-default:"third-way-exports"`
	UseSSL    bool   `yaml:"use_ssl"    env:"STORAGE_USE_SSL"    env-default:"false"`
}

// Enabled reports whether an object store endpoint is configured.
func (c StorageConfig) Enabled() bool { return c.Endpoint != "" }

// SeedConfig controls the startup welcome content.
type SeedConfig struct {
	Enabled        bool   `yaml:"enabled"         env:"SEED_ENABLED"         env-default:"true"`
	AuthorUsername string `yaml:"author_username" env:"SEED_AUTHOR_USERNAME" env-default:"thirdway"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level     string `yaml:"level"      env:"LOG_LEVEL"      env-default:"info"`
	Format    string `yaml:"format"     env:"LOG_FORMAT"     env-default:"json"`
	AddSource bool   `yaml:"add_source" env:"LOG_ADD_SOURCE" env-default:"false"`
}

// RateLimitConfig holds per-IP limits for credential endpoints.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP"         env-default:"5m"`
}
