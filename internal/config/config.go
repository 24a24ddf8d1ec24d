package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Shortlist   ShortlistConfig
	Application ApplicationConfig
	Messaging   MessagingConfig
	Realtime    RealtimeConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	AutoMigrate bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type ShortlistConfig struct {
	MaxUploadBytes int64
}

type ApplicationConfig struct {
	// StrictTransitions enforces the applied -> shortlisted -> selected
	// adjacency instead of accepting any known status.
	StrictTransitions bool
}

type MessagingConfig struct {
	RabbitMQURL string
	QueueName   string
}

// RealtimeConfig scopes the application events websocket feed.
type RealtimeConfig struct {
	// AllowedOrigins lists dashboard origins allowed to subscribe. Empty
	// means same-origin only; "*" allows any origin.
	AllowedOrigins []string
}

const (
	defaultRedisTTL       = 600 * time.Second
	defaultMaxUploadBytes = 5 << 20
	defaultQueueName      = "application_events"
)

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optBool := func(key string) bool {
		raw := opt(key)
		if raw == "" {
			return false
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return false
		}
		return v
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		raw := opt(key)
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}
	optList := func(key string) []string {
		var out []string
		for _, part := range strings.Split(opt(key), ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		AutoMigrate: optBool("DB_AUTO_MIGRATE"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  optDefault("DB_SSL_MODE", "disable"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 0),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}

	// REDIS_TTL is whole seconds.
	ttl := defaultRedisTTL
	if secs := optInt("REDIS_TTL", 0); secs > 0 {
		ttl = time.Duration(secs) * time.Second
	}
	cfg.Redis = RedisConfig{
		Host:     optDefault("REDIS_HOST", "localhost"),
		Port:     optDefault("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		DB:       optInt("REDIS_DB", 0),
		TTL:      ttl,
	}

	cfg.Shortlist = ShortlistConfig{
		MaxUploadBytes: int64(optInt("SHORTLIST_MAX_UPLOAD_BYTES", defaultMaxUploadBytes)),
	}
	if cfg.Shortlist.MaxUploadBytes == 0 {
		cfg.Shortlist.MaxUploadBytes = defaultMaxUploadBytes
	}

	cfg.Application = ApplicationConfig{
		StrictTransitions: optBool("APPLICATION_STRICT_TRANSITIONS"),
	}

	cfg.Messaging = MessagingConfig{
		RabbitMQURL: opt("RABBITMQ_URL"),
		QueueName:   optDefault("RABBITMQ_QUEUE", defaultQueueName),
	}

	cfg.Realtime = RealtimeConfig{
		AllowedOrigins: optList("WS_ALLOWED_ORIGINS"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}
