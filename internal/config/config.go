package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const defaultJWTSecret = "change-me-jwt-secret"

type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	APIV1Str string `envconfig:"API_V1_STR" default:"/api/v1"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`

	// DB
	DatabaseURL       string        `envconfig:"DATABASE_URL" required:"true"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`

	// Auth
	JWTSecret          string `envconfig:"JWT_SECRET_TOKEN" default:"change-me-jwt-secret"`
	TokenExpireMinutes int    `envconfig:"TOKEN_EXPIRE_MINUTES" default:"30"`
	BcryptCost         int    `envconfig:"BCRYPT_COST" default:"10"`

	// Redis
	RedisAddr     string        `envconfig:"REDIS_ADDR"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheEnabled  bool          `envconfig:"CACHE_ENABLED" default:"true"`
	CacheTTL      time.Duration `envconfig:"CACHE_TTL" default:"60s"`

	RateLimitEnabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RateLimitCapacity       int           `envconfig:"RATE_LIMIT_CAPACITY" default:"10"`
	RateLimitRefillInterval time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"6s"`

	// RabbitMQ; empty URL disables the broker
	RabbitMQURL    string `envconfig:"RABBITMQ_URL"`
	EventsExchange string `envconfig:"EVENTS_EXCHANGE" default:"jobconnect.events"`
	NotifyQueue    string `envconfig:"NOTIFY_QUEUE" default:"jobconnect.notifications"`

	// read notifications older than this are purged by cmd/cleanup
	NotificationRetention time.Duration `envconfig:"NOTIFICATION_RETENTION" default:"720h"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// TokenTTL is the access token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenExpireMinutes) * time.Minute
}

func (c *Config) IsProdLike() bool {
	return isProdLike(c.AppEnv)
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("config_dotenv_error error=%q", err.Error())
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	log.Printf("config_loaded env=%s addr=%s redis=%t rabbitmq=%t", cfg.AppEnv, cfg.HTTPAddr, cfg.RedisAddr != "", cfg.RabbitMQURL != "")
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.TokenExpireMinutes <= 0 {
		return fmt.Errorf("TOKEN_EXPIRE_MINUTES must be > 0")
	}
	if cfg.DBConnMaxLifetime <= 0 {
		return fmt.Errorf("DB_CONN_MAX_LIFETIME must be > 0")
	}
	if cfg.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be > 0")
	}
	if cfg.RateLimitEnabled {
		if cfg.RateLimitCapacity <= 0 {
			return fmt.Errorf("RATE_LIMIT_CAPACITY must be > 0")
		}
		if cfg.RateLimitRefillInterval <= 0 {
			return fmt.Errorf("RATE_LIMIT_REFILL_INTERVAL must be > 0")
		}
	}
	if !strings.HasPrefix(cfg.APIV1Str, "/") {
		return fmt.Errorf("API_V1_STR must start with /")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET_TOKEN must be set and not default")
		}
		if cfg.Debug {
			return fmt.Errorf("in prod/release DEBUG must be false")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}
