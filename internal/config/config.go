package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	CORS     CORSConfig     `yaml:"cors"`
	LLM      LLMConfig      `yaml:"llm"`
	Importer ImporterConfig `yaml:"importer"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"300"`
}

// CORSConfig holds Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"300"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds credential-service settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"cerego"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
}

// LLMConfig holds external language-model provider settings.
type LLMConfig struct {
	APIKey         string        `yaml:"api_key"         env:"LLM_API_KEY"         env-required:"true"`
	Model          string        `yaml:"model"           env:"LLM_MODEL"           env-default:"claude-sonnet-4-20250514"`
	MaxTokens      int           `yaml:"max_tokens"      env:"LLM_MAX_TOKENS"      env-default:"2048"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"LLM_REQUEST_TIMEOUT" env-default:"60s"`
}

// AggregationPolicy controls how the batch dispatcher treats a batch whose
// retries are exhausted.
type AggregationPolicy string

const (
	// AggregationFailClosed fails the whole aggregate on any batch error.
	AggregationFailClosed AggregationPolicy = "fail_closed"
	// AggregationFailOpen drops failed batches from the aggregate.
	AggregationFailOpen AggregationPolicy = "fail_open"
)

// ImporterConfig holds batch-dispatch, retry, and quiz-generation settings.
type ImporterConfig struct {
	BatchSize         int               `yaml:"batch_size"         env:"IMPORT_BATCH_SIZE"         env-default:"10"`
	MaxConcurrent     int               `yaml:"max_concurrent"     env:"IMPORT_MAX_CONCURRENT"     env-default:"5"`
	AggregationPolicy AggregationPolicy `yaml:"aggregation_policy" env:"IMPORT_AGGREGATION_POLICY" env-default:"fail_closed"`
	RetryMaxAttempts  int               `yaml:"retry_max_attempts" env:"IMPORT_RETRY_MAX_ATTEMPTS" env-default:"5"`
	RetryBaseDelay    time.Duration     `yaml:"retry_base_delay"   env:"IMPORT_RETRY_BASE_DELAY"   env-default:"4s"`
	RetryMaxDelay     time.Duration     `yaml:"retry_max_delay"    env:"IMPORT_RETRY_MAX_DELAY"    env-default:"30s"`
	UnitMaxAttempts   int               `yaml:"unit_max_attempts"  env:"IMPORT_UNIT_MAX_ATTEMPTS"  env-default:"3"`
	QuizWorkers       int               `yaml:"quiz_workers"       env:"IMPORT_QUIZ_WORKERS"       env-default:"4"`
	QuizQueueSize     int               `yaml:"quiz_queue_size"    env:"IMPORT_QUIZ_QUEUE_SIZE"    env-default:"256"`
	TaskRetentionDays int               `yaml:"task_retention_days" env:"IMPORT_TASK_RETENTION_DAYS" env-default:"7"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
