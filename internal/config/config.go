package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Security  SecurityConfig
	Business  BusinessConfig
	Geo       GeoConfig
	Redis     RedisConfig
	SMTP      SMTPConfig
	AMQP      AMQPConfig
	Cron      CronConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	Environment     string // development, staging, production
	LogLevel        string // debug, info, warn, error
	TimeZone        string // IANA zone used for calendar-day analytics
	DefaultLanguage string // en or ar
	AssetsDir       string // optional directory served under /assets
	AutoMigrate     bool

	// TrustedProxies lists the reverse proxy addresses or CIDRs whose
	// forwarding headers gin honors. Empty means the peer address is used.
	TrustedProxies []string
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	URL                string
	MaxConnections     int
	MaxIdleConnections int
	ConnMaxLifetime    time.Duration
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret             string
	RefreshSecret      string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

// CORSConfig holds CORS-related configuration
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// SecurityConfig holds security-related configuration
type SecurityConfig struct {
	BcryptCost     int
	EnableAuditLog bool
}

// BusinessConfig holds the operator's public contact channels
type BusinessConfig struct {
	WhatsAppNumber string // digits only, international format without '+'
	ContactPhone   string
	ContactEmail   string
	OperatorEmail  string // inbox receiving booking notifications
}

// GeoConfig holds IP geolocation lookup configuration
type GeoConfig struct {
	APIURL   string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// RedisConfig holds Redis configuration. Redis is optional.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis address was configured
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// SMTPConfig holds outgoing mail configuration. SMTP is optional.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether SMTP delivery is configured
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Username != ""
}

// AMQPConfig holds message broker configuration. AMQP is optional.
type AMQPConfig struct {
	URL      string
	Exchange string
}

// Enabled reports whether an AMQP broker was configured
func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

// CronConfig holds scheduled job configuration
type CronConfig struct {
	Enabled    bool
	DigestSpec string // robfig/cron spec with seconds
}

// RateLimitConfig holds booking submission rate limiting configuration
type RateLimitConfig struct {
	BookingRequests int
	BookingWindow   time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			TimeZone:        getEnv("TIME_ZONE", "Africa/Cairo"),
			DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
			AssetsDir:       getEnv("ASSETS_DIR", ""),
			AutoMigrate:     getEnvAsBool("AUTO_MIGRATE", false),
			TrustedProxies:  getEnvAsSlice("TRUSTED_PROXIES", nil),
		},
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			MaxConnections:     getEnvAsInt("DATABASE_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("DATABASE_MAX_IDLE_CONNECTIONS", 5),
			ConnMaxLifetime:    time.Duration(getEnvAsInt("DATABASE_CONN_MAX_LIFETIME", 300)) * time.Second,
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", ""),
			RefreshSecret:      getEnv("JWT_REFRESH_SECRET", ""),
			AccessTokenExpiry:  time.Duration(getEnvAsInt("JWT_ACCESS_TOKEN_EXPIRY", 3600)) * time.Second,
			RefreshTokenExpiry: time.Duration(getEnvAsInt("JWT_REFRESH_TOKEN_EXPIRY", 604800)) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PATCH", "OPTIONS"}),
			AllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization", "Accept-Language"}),
		},
		Security: SecurityConfig{
			BcryptCost:     getEnvAsInt("BCRYPT_COST", 12),
			EnableAuditLog: getEnvAsBool("ENABLE_AUDIT_LOGGING", true),
		},
		Business: BusinessConfig{
			WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "201023723245"),
			ContactPhone:   getEnv("CONTACT_PHONE", "+201023723245"),
			ContactEmail:   getEnv("CONTACT_EMAIL", "amoamen053@gmail.com"),
			OperatorEmail:  getEnv("OPERATOR_EMAIL", ""),
		},
		Geo: GeoConfig{
			APIURL:   getEnv("GEO_API_URL", "https://ipapi.co"),
			Timeout:  time.Duration(getEnvAsInt("GEO_TIMEOUT_SECONDS", 5)) * time.Second,
			CacheTTL: time.Duration(getEnvAsInt("GEO_CACHE_TTL_HOURS", 24)) * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
		AMQP: AMQPConfig{
			URL:      getEnv("AMQP_URL", ""),
			Exchange: getEnv("AMQP_EXCHANGE", "cruise.events"),
		},
		Cron: CronConfig{
			Enabled:    getEnvAsBool("CRON_ENABLED", true),
			DigestSpec: getEnv("CRON_DIGEST_SPEC", "0 0 7 * * *"),
		},
		RateLimit: RateLimitConfig{
			BookingRequests: getEnvAsInt("BOOKING_RATE_LIMIT_REQUESTS", 5),
			BookingWindow:   time.Duration(getEnvAsInt("BOOKING_RATE_LIMIT_WINDOW_SECONDS", 3600)) * time.Second,
		},
	}

	if config.SMTP.From == "" {
		config.SMTP.From = config.SMTP.Username
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if c.JWT.RefreshSecret == "" {
		return fmt.Errorf("JWT_REFRESH_SECRET is required")
	}

	if c.JWT.Secret == c.JWT.RefreshSecret {
		return fmt.Errorf("JWT_SECRET and JWT_REFRESH_SECRET must differ")
	}

	if c.Business.WhatsAppNumber == "" {
		return fmt.Errorf("WHATSAPP_NUMBER is required")
	}

	if _, err := time.LoadLocation(c.Server.TimeZone); err != nil {
		return fmt.Errorf("invalid TIME_ZONE %q: %w", c.Server.TimeZone, err)
	}

	if c.Server.DefaultLanguage != "en" && c.Server.DefaultLanguage != "ar" {
		return fmt.Errorf("invalid DEFAULT_LANGUAGE: %s (must be 'en' or 'ar')", c.Server.DefaultLanguage)
	}

	if c.SMTP.Enabled() && c.Business.OperatorEmail == "" {
		return fmt.Errorf("OPERATOR_EMAIL is required when SMTP is configured")
	}

	return nil
}

// Location returns the configured time zone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Server.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Helper functions to get environment variables

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var result []string
	for _, v := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
