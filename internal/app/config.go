package app

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	UploadsDir       string
	SeatHoldTTL      time.Duration
	DB               DBConfig
	Redis            RedisConfig
	JWT              JWTConfig
	SMTP             SMTPConfig
	RabbitMQ         RabbitMQConfig
	RateLimit        RateLimitConfig
	// TrustProxy takes the client address from X-Forwarded-For and
	// X-Real-IP. Enable it only behind a proxy that overwrites them.
	TrustProxy bool
	CORS       CORSConfig
}

type DBConfig struct {
	DSN              string
	MaxOpenConns     int
	MaxIdleTime      time.Duration
	Migrate          bool
	MigrationsSource string
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type RabbitMQConfig struct {
	URL string
}

// RateLimitConfig configures the per client token bucket. Capacity tokens
// are available at once and one token is added every RefillInterval.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillInterval time.Duration
}

type CORSConfig struct {
	TrustedOrigins []string
}

// parseConfig reads the command line. Every flag defaults to its environment
// variable so containers can be configured without arguments.
func parseConfig(args []string) (Config, bool) {
	var cfg Config

	fs := flag.NewFlagSet("api", flag.ExitOnError)

	fs.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "server port")
	fs.StringVar(&cfg.Env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")
	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector gRPC endpoint")
	fs.StringVar(&cfg.UploadsDir, "uploads-dir", envString("UPLOADS_DIR", "./public/uploads"), "directory for uploaded images")
	fs.DurationVar(&cfg.SeatHoldTTL, "seat-hold-ttl", envDuration("SEAT_HOLD_TTL", 30*time.Second), "how long a booking attempt holds its seats")

	fs.StringVar(&cfg.DB.DSN, "db-dsn", envString("DB_DSN", ""), "PostgreSQL DSN")
	fs.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", envInt("DB_MAX_OPEN_CONNS", 25), "PostgreSQL max open connections")
	fs.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", envDuration("DB_MAX_IDLE_TIME", 15*time.Minute), "PostgreSQL max idle time for connections")
	fs.BoolVar(&cfg.DB.Migrate, "migrate", envBool("DB_MIGRATE", false), "apply database migrations on startup")
	fs.StringVar(&cfg.DB.MigrationsSource, "migrations", envString("DB_MIGRATIONS", "file://migrations"), "migrations source URL")

	fs.StringVar(&cfg.Redis.URL, "redis-url", envString("REDIS_URL", "localhost:6379"), "Redis URL")
	fs.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", envInt("REDIS_MAX_OPEN_CONNS", 25), "Redis max open connections")
	fs.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", envInt("REDIS_MAX_IDLE_CONNS", 10), "Redis max idle connections")
	fs.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", envDuration("REDIS_MAX_IDLE_TIME", 2*time.Minute), "Redis max idle time for connections")

	fs.StringVar(&cfg.JWT.Secret, "jwt-secret", envString("JWT_SECRET", ""), "secret used to sign bearer tokens")
	fs.DurationVar(&cfg.JWT.TTL, "jwt-ttl", envDuration("JWT_TTL", 24*time.Hour), "bearer token lifetime")

	fs.StringVar(&cfg.SMTP.Host, "smtp-host", envString("SMTP_HOST", "sandbox.smtp.mailtrap.io"), "SMTP host")
	fs.IntVar(&cfg.SMTP.Port, "smtp-port", envInt("SMTP_PORT", 2525), "SMTP port")
	fs.StringVar(&cfg.SMTP.Username, "smtp-username", envString("SMTP_USERNAME", ""), "SMTP username")
	fs.StringVar(&cfg.SMTP.Password, "smtp-password", envString("SMTP_PASSWORD", ""), "SMTP password")
	fs.StringVar(&cfg.SMTP.Sender, "smtp-sender", envString("SMTP_SENDER", "Cinema Booking <no-reply@cinema.local>"), "SMTP sender")

	fs.StringVar(&cfg.RabbitMQ.URL, "rabbitmq-url", envString("RABBITMQ_URL", ""), "RabbitMQ URL, events are dropped when empty")

	fs.BoolVar(&cfg.RateLimit.Enabled, "limiter-enabled", envBool("RATE_LIMIT_ENABLED", true), "enable rate limiter")
	fs.IntVar(&cfg.RateLimit.Capacity, "limiter-burst", envInt("RATE_LIMIT_BURST", 60), "rate limiter maximum burst")
	fs.DurationVar(&cfg.RateLimit.RefillInterval, "limiter-refill", envDuration("RATE_LIMIT_REFILL_INTERVAL", time.Second), "rate limiter token refill interval")

	fs.BoolVar(&cfg.TrustProxy, "trust-proxy", envBool("TRUST_PROXY", false), "use forwarded client addresses for rate limiting and logs")

	cfg.CORS.TrustedOrigins = strings.Fields(envString("CORS_TRUSTED_ORIGINS", ""))
	fs.Func("cors-trusted-origins", "Trusted CORS origins (space separated), any origin when empty", func(val string) error {
		cfg.CORS.TrustedOrigins = strings.Fields(val)
		return nil
	})

	displayVersion := fs.Bool("version", false, "Display version and exit")

	fs.Parse(args)

	return cfg, *displayVersion
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}

	return fallback
}

func envBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}

	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}

	return fallback
}
