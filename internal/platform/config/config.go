package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the complete runtime configuration of the API.
type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	JWT        JWTConfig        `json:"jwt"`
	Security   SecurityConfig   `json:"security"`
	Cache      CacheConfig      `json:"cache"`
	RateLimits RateLimitsConfig `json:"rateLimits"`
	Tracing    TracingConfig    `json:"tracing"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	WebDomain       string        `json:"webDomain"`
	Debug           bool          `json:"debug"`
	ReadTimeout     time.Duration `json:"readTimeout"`
	ShutdownTimeout time.Duration `json:"shutdownTimeout"`
}

// Addr returns host:port for the listener.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Type     string           `json:"type"`
	Postgres PostgreSQLConfig `json:"postgres"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration
type PostgreSQLConfig struct {
	Host              string        `json:"host"`
	Port              int           `json:"port"`
	Username          string        `json:"username"`
	Password          string        `json:"password"`
	Database          string        `json:"database"`
	DSN               string        `json:"dsn"`
	SSLMode           string        `json:"sslMode"`
	MaxOpenConns      int           `json:"maxOpenConns"`
	MaxIdleConns      int           `json:"maxIdleConns"`
	ConnMaxLifetime   time.Duration `json:"connMaxLifetime"`
	ConnectionTimeout int           `json:"connectionTimeout"`
}

// JWTConfig holds the ES256 key pair used to sign and verify tokens.
type JWTConfig struct {
	PublicKey  string        `json:"publicKey"`
	PrivateKey string        `json:"privateKey"`
	TokenTTL   time.Duration `json:"tokenTTL"`
}

// SecurityConfig holds password policy settings.
type SecurityConfig struct {
	BcryptCost       int `json:"bcryptCost"`
	MinPasswordScore int `json:"minPasswordScore"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Enabled bool        `json:"enabled"`
	Prefix  string      `json:"prefix"`
	Redis   RedisConfig `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address      string        `json:"address"`
	Password     string        `json:"password"`
	Database     int           `json:"database"`
	PoolSize     int           `json:"poolSize"`
	MinIdleConns int           `json:"minIdleConns"`
	MaxConnAge   time.Duration `json:"maxConnAge"`
}

// RateLimitConfig holds rate limiting configuration for a specific endpoint
type RateLimitConfig struct {
	Enabled  bool          `json:"enabled"`
	Max      int           `json:"max"`
	Duration time.Duration `json:"duration"`
}

// RateLimitsConfig holds rate limiting configuration for all endpoints
type RateLimitsConfig struct {
	Login    RateLimitConfig `json:"login"`
	Register RateLimitConfig `json:"register"`
}

// TracingConfig enables database tracing when ServiceName is set.
type TracingConfig struct {
	ServiceName string `json:"serviceName"`
}

// Enabled reports whether tracing is configured.
func (t TracingConfig) Enabled() bool {
	return t.ServiceName != ""
}

// LoadFromEnv loads configuration from the environment.
// Explicit environment variables win over values from a .env file, which in
// turn win over the defaults below.
func LoadFromEnv() (*Config, error) {
	envPaths := []string{".env", "../.env", "../../.env"}

	var loadErr error
	for _, envPath := range envPaths {
		if loadErr = godotenv.Load(envPath); loadErr == nil {
			break
		}
	}
	if loadErr != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	return build(os.LookupEnv)
}

// LoadFromMap loads configuration from an in-memory map.
// Tests use it to exercise configuration logic without touching the process
// environment.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	return build(func(key string) (string, bool) {
		v, ok := envMap[key]
		return v, ok
	})
}

type lookupFunc func(key string) (string, bool)

func build(lookup lookupFunc) (*Config, error) {
	env := reader{lookup: lookup}

	config := &Config{
		Server: ServerConfig{
			Host:            env.str("HOST", "localhost"),
			Port:            env.int("SERVER_PORT", 3001),
			WebDomain:       env.str("WEB_DOMAIN", "http://localhost:3000"),
			Debug:           env.bool("DEBUG", false),
			ReadTimeout:     env.duration("SERVER_READ_TIMEOUT", 10*time.Second),
			ShutdownTimeout: env.duration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Type: env.str("DB_TYPE", "postgresql"),
			Postgres: PostgreSQLConfig{
				Host:              env.str("POSTGRES_HOST", "localhost"),
				Port:              env.int("POSTGRES_PORT", 5432),
				Username:          env.str("POSTGRES_USERNAME", ""),
				Password:          env.str("POSTGRES_PASSWORD", ""),
				Database:          env.str("POSTGRES_DATABASE", "jobly"),
				DSN:               env.str("POSTGRES_DSN", ""),
				SSLMode:           env.str("POSTGRES_SSL_MODE", "disable"),
				MaxOpenConns:      env.int("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:      env.int("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime:   time.Duration(env.int("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
				ConnectionTimeout: env.int("POSTGRES_CONNECT_TIMEOUT", 10),
			},
		},
		JWT: JWTConfig{
			PublicKey:  env.str("JWT_PUBLIC_KEY", ""),
			PrivateKey: env.str("JWT_PRIVATE_KEY", ""),
			TokenTTL:   env.duration("JWT_TOKEN_TTL", 24*time.Hour),
		},
		Security: SecurityConfig{
			BcryptCost:       env.int("BCRYPT_WORK_FACTOR", 12),
			MinPasswordScore: env.int("MIN_PASSWORD_SCORE", 2),
		},
		Cache: CacheConfig{
			Enabled: env.bool("CACHE_ENABLED", false),
			Prefix:  env.str("CACHE_PREFIX", "jobly:"),
			Redis: RedisConfig{
				Address:      env.str("REDIS_ADDRESS", "localhost:6379"),
				Password:     env.str("REDIS_PASSWORD", ""),
				Database:     env.int("REDIS_DATABASE", 0),
				PoolSize:     env.int("REDIS_POOL_SIZE", 10),
				MinIdleConns: env.int("REDIS_MIN_IDLE_CONNS", 2),
				MaxConnAge:   time.Duration(env.int("REDIS_MAX_CONN_AGE", 300)) * time.Second,
			},
		},
		RateLimits: RateLimitsConfig{
			Login: RateLimitConfig{
				Enabled:  env.bool("RATE_LIMIT_LOGIN_ENABLED", true),
				Max:      env.int("RATE_LIMIT_LOGIN_MAX", 5),
				Duration: env.duration("RATE_LIMIT_LOGIN_DURATION", 15*time.Minute),
			},
			Register: RateLimitConfig{
				Enabled:  env.bool("RATE_LIMIT_REGISTER_ENABLED", true),
				Max:      env.int("RATE_LIMIT_REGISTER_MAX", 10),
				Duration: env.duration("RATE_LIMIT_REGISTER_DURATION", 1*time.Hour),
			},
		},
		Tracing: TracingConfig{
			ServiceName: env.str("DD_SERVICE_NAME", ""),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.JWT.PublicKey) == "" {
		errors = append(errors, "JWT_PUBLIC_KEY is required")
	}
	if strings.TrimSpace(c.JWT.PrivateKey) == "" {
		errors = append(errors, "JWT_PRIVATE_KEY is required")
	}

	validDbTypes := []string{"postgresql"}
	if !contains(validDbTypes, c.Database.Type) {
		errors = append(errors, fmt.Sprintf("DB_TYPE must be one of: %s", strings.Join(validDbTypes, ", ")))
	}

	if c.Security.BcryptCost < 4 || c.Security.BcryptCost > 31 {
		errors = append(errors, "BCRYPT_WORK_FACTOR must be between 4 and 31")
	}
	if c.Security.MinPasswordScore < 0 || c.Security.MinPasswordScore > 4 {
		errors = append(errors, "MIN_PASSWORD_SCORE must be between 0 and 4")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// reader applies typed defaults on top of a lookup function. Unparseable
// values fall back to the default.
type reader struct {
	lookup lookupFunc
}

func (r reader) str(key, defaultValue string) string {
	if value, ok := r.lookup(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func (r reader) int(key string, defaultValue int) int {
	if value, ok := r.lookup(key); ok {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (r reader) bool(key string, defaultValue bool) bool {
	if value, ok := r.lookup(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func (r reader) duration(key string, defaultValue time.Duration) time.Duration {
	if value, ok := r.lookup(key); ok {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
