package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	// Database. DB_DRIVER is "postgres" or "sqlite".
	DBDriver   string `mapstructure:"DB_DRIVER"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	SQLitePath string `mapstructure:"SQLITE_PATH"`

	// Redis configuration.
	RedisEnabled  bool   `mapstructure:"REDIS_ENABLED"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Stylist wisdom.
	GeminiAPIKey   string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel    string        `mapstructure:"GEMINI_MODEL"`
	WisdomCacheTTL time.Duration `mapstructure:"WISDOM_CACHE_TTL"`

	// Admin access.
	AdminSecret      string `mapstructure:"ADMIN_SECRET"`
	AdminSecretHash  string `mapstructure:"ADMIN_SECRET_HASH"`
	JWTAccessSecret  string `mapstructure:"JWT_ACCESS_SECRET"`
	JWTRefreshSecret string `mapstructure:"JWT_REFRESH_SECRET"`

	// Registration geofence.
	GeofenceEnabled   bool    `mapstructure:"GEOFENCE_ENABLED"`
	VenueLat          float64 `mapstructure:"VENUE_LAT"`
	VenueLng          float64 `mapstructure:"VENUE_LNG"`
	VenueRadiusMeters float64 `mapstructure:"VENUE_RADIUS_METERS"`
	DirectionsURL     string  `mapstructure:"DIRECTIONS_URL"`

	RateLimitPerMin   int           `mapstructure:"RATE_LIMIT_PER_MIN"`
	FinishedRetention time.Duration `mapstructure:"FINISHED_RETENTION"`
}

var defaults = map[string]any{
	"APP_PORT":            "8080",
	"ENV":                 "development",
	"LOG_LEVEL":           "info",
	"CORS_ORIGINS":        "*",
	"DB_DRIVER":           "postgres",
	"DB_HOST":             "localhost",
	"DB_PORT":             "5432",
	"DB_USER":             "postgres",
	"DB_PASSWORD":         "",
	"DB_NAME":             "tulook",
	"SQLITE_PATH":         "tulook.db",
	"REDIS_ENABLED":       false,
	"REDIS_ADDR":          "localhost:6379",
	"REDIS_PASSWORD":      "",
	"REDIS_DB":            0,
	"GEMINI_API_KEY":      "",
	"GEMINI_MODEL":        "gemini-1.5-flash",
	"WISDOM_CACHE_TTL":    "10m",
	"ADMIN_SECRET":        "",
	"ADMIN_SECRET_HASH":   "",
	"JWT_ACCESS_SECRET":   "",
	"JWT_REFRESH_SECRET":  "",
	"GEOFENCE_ENABLED":    true,
	"VENUE_LAT":           -32.2236,
	"VENUE_LNG":           -58.1430,
	"VENUE_RADIUS_METERS": 200.0,
	"DIRECTIONS_URL":      "https://maps.app.goo.gl/uXCvu2xt6fTwb5g16",
	"RATE_LIMIT_PER_MIN":  10,
	"FINISHED_RETENTION":  "24h",
}

// Load reads .env (unless ENV_CHEK is set), an optional config.yaml and the
// environment, in that order of precedence from lowest to highest.
func Load() (*Config, error) {
	if os.Getenv("ENV_CHEK") == "" {
		// .env is optional; the environment alone is a valid setup.
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.DBDriver)
	}
	if c.AdminSecret == "" && c.AdminSecretHash == "" {
		return fmt.Errorf("ADMIN_SECRET or ADMIN_SECRET_HASH is required")
	}
	if c.JWTAccessSecret == "" || c.JWTRefreshSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET are required")
	}
	if c.VenueRadiusMeters <= 0 {
		return fmt.Errorf("VENUE_RADIUS_METERS must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// PostgresDSN builds the libpq connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
