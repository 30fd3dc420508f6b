package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	Redis        RedisConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Cookie       CookieConfig
	Booking      BookingConfig
	RateLimit    RateLimitConfig
	Metrics      MetricsConfig
	Notification NotificationConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type BookingConfig struct {
	TimeZone                     string        `envconfig:"BOOKING_TIMEZONE" default:"Asia/Tokyo"`
	MutationTimeout              time.Duration `envconfig:"BOOKING_MUTATION_TIMEOUT" default:"15s"`
	DefaultCancelDeadlineMinutes int           `envconfig:"BOOKING_DEFAULT_CANCEL_DEADLINE_MINUTES" default:"1440"`
	LockoutThreshold             int           `envconfig:"BOOKING_LOCKOUT_THRESHOLD" default:"3"`
	RapidCancelWithin            time.Duration `envconfig:"BOOKING_RAPID_CANCEL_WITHIN" default:"1h"`
	LockoutDuration              time.Duration `envconfig:"BOOKING_LOCKOUT_DURATION" default:"24h"`
	MaxMonthsAhead               int           `envconfig:"BOOKING_MAX_MONTHS_AHEAD" default:"3"`
	AvailabilityCacheTTL         time.Duration `envconfig:"BOOKING_AVAILABILITY_CACHE_TTL" default:"60s"`
	IdempotencyKeyTTL            time.Duration `envconfig:"BOOKING_IDEMPOTENCY_KEY_TTL" default:"24h"`
	PastReservationsDefaultLimit int32         `envconfig:"BOOKING_PAST_RESERVATIONS_LIMIT" default:"10"`
}

type RateLimitConfig struct {
	Enabled           bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

type NotificationConfig struct {
	Enabled      bool          `envconfig:"NOTIFICATION_ENABLED" default:"true"`
	PollInterval time.Duration `envconfig:"NOTIFICATION_POLL_INTERVAL" default:"10s"`
	BatchSize    int32         `envconfig:"NOTIFICATION_BATCH_SIZE" default:"20"`
	MaxAttempts  int32         `envconfig:"NOTIFICATION_MAX_ATTEMPTS" default:"5"`
	RetryBackoff time.Duration `envconfig:"NOTIFICATION_RETRY_BACKOFF" default:"1m"`
	StaleAfter   time.Duration `envconfig:"NOTIFICATION_STALE_AFTER" default:"5m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves the salon-local timezone used for dates and times of day.
func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.FixedZone(c.TimeZone, 9*60*60)
	}
	return loc
}

func LoadConfig() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	// existing environment variables win over the file
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
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
			TimeZone: "Asia/Tokyo",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-salon-reserve",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Booking: BookingConfig{
			TimeZone:                     "Asia/Tokyo",
			MutationTimeout:              15 * time.Second,
			DefaultCancelDeadlineMinutes: 1440,
			LockoutThreshold:             3,
			RapidCancelWithin:            time.Hour,
			LockoutDuration:              24 * time.Hour,
			MaxMonthsAhead:               3,
			AvailabilityCacheTTL:         time.Minute,
			IdempotencyKeyTTL:            24 * time.Hour,
			PastReservationsDefaultLimit: 10,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Path:    "/metrics",
		},
		Notification: NotificationConfig{
			Enabled:      false,
			PollInterval: time.Second,
			BatchSize:    10,
			MaxAttempts:  3,
			RetryBackoff: time.Minute,
			StaleAfter:   5 * time.Minute,
		},
	}
}
