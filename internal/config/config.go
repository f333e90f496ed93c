package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Portfolio PortfolioConfig `yaml:"portfolio"`
	Safety    SafetyConfig    `yaml:"safety"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Session-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	HealthCheck     time.Duration `yaml:"health_check"       env:"DATABASE_HEALTH_CHECK"       env-default:"1m"`
	AppName         string        `yaml:"app_name"           env:"DATABASE_APP_NAME"           env-default:"apprentice-backend"`
}

// AuthConfig holds access token validation settings. Tokens are issued by the
// hosted auth provider and signed with the shared project secret.
type AuthConfig struct {
	JWTSecret   string        `yaml:"jwt_secret"   env:"AUTH_JWT_SECRET"   env-required:"true"`
	JWTIssuer   string        `yaml:"jwt_issuer"   env:"AUTH_JWT_ISSUER"   env-default:"elec-mate"`
	JWTAudience string        `yaml:"jwt_audience" env:"AUTH_JWT_AUDIENCE" env-default:"authenticated"`
	ClockSkew   time.Duration `yaml:"clock_skew"   env:"AUTH_CLOCK_SKEW"   env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// PortfolioConfig holds the evidence-linking workflow parameters.
type PortfolioConfig struct {
	MaxKeywords     int `yaml:"max_keywords"      env:"PORTFOLIO_MAX_KEYWORDS"      env-default:"15"`
	MinKeywordLen   int `yaml:"min_keyword_len"   env:"PORTFOLIO_MIN_KEYWORD_LEN"   env-default:"3"`
	SearchLimit     int `yaml:"search_limit"      env:"PORTFOLIO_SEARCH_LIMIT"      env-default:"25"`
	MinConfidence   int `yaml:"min_confidence"    env:"PORTFOLIO_MIN_CONFIDENCE"    env-default:"60"`
	FallbackSelects int `yaml:"fallback_selects"  env:"PORTFOLIO_FALLBACK_SELECTS"  env-default:"3"`
}

// SafetyConfig holds safety alert listing and view tracking settings.
type SafetyConfig struct {
	ListLimit         int           `yaml:"list_limit"          env:"SAFETY_LIST_LIMIT"          env-default:"10"`
	TrackerQueueSize  int           `yaml:"tracker_queue_size"  env:"SAFETY_TRACKER_QUEUE_SIZE"  env-default:"1024"`
	TrackerWorkers    int           `yaml:"tracker_workers"     env:"SAFETY_TRACKER_WORKERS"     env-default:"2"`
	TrackerWriteLimit time.Duration `yaml:"tracker_write_limit" env:"SAFETY_TRACKER_WRITE_LIMIT" env-default:"5s"`
}

// AnalysisConfig holds the LLM settings for diary entry analysis.
// Analysis is disabled when APIKey is empty.
type AnalysisConfig struct {
	APIKey    string        `yaml:"api_key"    env:"ANALYSIS_API_KEY"`
	Model     string        `yaml:"model"      env:"ANALYSIS_MODEL"      env-default:"claude-sonnet-4-5"`
	MaxTokens int64         `yaml:"max_tokens" env:"ANALYSIS_MAX_TOKENS" env-default:"2048"`
	Timeout   time.Duration `yaml:"timeout"    env:"ANALYSIS_TIMEOUT"    env-default:"45s"`
}

// Enabled reports whether an LLM client should be constructed.
func (c AnalysisConfig) Enabled() bool {
	return c.APIKey != ""
}
