package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Guard    GuardConfig
	Redis    RedisConfig
	Commands CommandsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Tenant-ID,X-Correlation-ID,X-Actor-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Correlation-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

const (
	GuardModeHTTP     = "http"
	GuardModeDisabled = "disabled"
)

// GuardConfig points at the external availability-guard service.
type GuardConfig struct {
	Mode           string        `envconfig:"GUARD_MODE" default:"http"`
	BaseURL        string        `envconfig:"GUARD_BASE_URL" default:"http://localhost:8090"`
	LockTimeout    time.Duration `envconfig:"GUARD_LOCK_TIMEOUT" default:"3s"`
	ReleaseTimeout time.Duration `envconfig:"GUARD_RELEASE_TIMEOUT" default:"2s"`
}

// RedisConfig is optional. An empty Addr disables the rate-plan cache and the
// no-show sweep lock.
type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR" default:""`
	Password     string        `envconfig:"REDIS_PASSWORD" default:""`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	RatePlanTTL  time.Duration `envconfig:"REDIS_RATE_PLAN_TTL" default:"5m"`
	SweepLockTTL time.Duration `envconfig:"REDIS_SWEEP_LOCK_TTL" default:"10m"`
}

type CommandsConfig struct {
	SystemActorID          string `envconfig:"SYSTEM_ACTOR_ID" default:"00000000-0000-0000-0000-000000000001"`
	NoShowSweepConcurrency int    `envconfig:"NO_SHOW_SWEEP_CONCURRENCY" default:"4"`
	TxMaxRetries           int    `envconfig:"TX_MAX_RETRIES" default:"3"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *GuardConfig) Validate() error {
	switch c.Mode {
	case GuardModeHTTP:
		if c.BaseURL == "" {
			return fmt.Errorf("GUARD_BASE_URL is required when GUARD_MODE=%s", GuardModeHTTP)
		}
	case GuardModeDisabled:
	default:
		return fmt.Errorf("unsupported GUARD_MODE %q", c.Mode)
	}
	if c.LockTimeout <= 0 || c.ReleaseTimeout <= 0 {
		return fmt.Errorf("guard timeouts must be positive")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Guard.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid guard config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Guard: GuardConfig{
			Mode:           GuardModeDisabled,
			LockTimeout:    time.Second,
			ReleaseTimeout: time.Second,
		},
		Commands: CommandsConfig{
			SystemActorID:          "00000000-0000-0000-0000-000000000001",
			NoShowSweepConcurrency: 2,
			TxMaxRetries:           1,
		},
	}
}
