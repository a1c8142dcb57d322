package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Password reset
	ResetTokenExpiryDuration time.Duration
	ConsumeResetToken        bool // clear the reset token after a successful reset

	// Identifier generation
	IDMaxAttempts uint64

	// HTTP
	LoginRateLimit     string // ulule/limiter formatted rate, e.g. "5-M"
	CORSAllowedOrigins []string

	// Outbound email
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

const (
	defaultJWTSecret   = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer   = "advisor-backend"
	defaultJWTExpiry   = 24 * time.Hour
	defaultResetExpiry = 24 * time.Hour
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("RESET_TOKEN_EXPIRY_DURATION", "24h")
	v.SetDefault("CONSUME_RESET_TOKEN", true)
	v.SetDefault("ID_MAX_ATTEMPTS", 100)
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "no-reply@advisor.local")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = parseDurationOrDefault(v.GetString("JWT_EXPIRY_DURATION"), "JWT_EXPIRY_DURATION", defaultJWTExpiry)
	cfg.ResetTokenExpiryDuration = parseDurationOrDefault(v.GetString("RESET_TOKEN_EXPIRY_DURATION"), "RESET_TOKEN_EXPIRY_DURATION", defaultResetExpiry)

	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.IDMaxAttempts = v.GetUint64("ID_MAX_ATTEMPTS")
	if cfg.IDMaxAttempts == 0 {
		cfg.IDMaxAttempts = 100
		log.Printf("Warning: ID_MAX_ATTEMPTS must be positive. Defaulting to %d.\n", cfg.IDMaxAttempts)
	}

	cfg.LoginRateLimit = v.GetString("LOGIN_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.SMTPHost = v.GetString("SMTP_HOST")
	cfg.SMTPPort = v.GetInt("SMTP_PORT")
	cfg.SMTPUsername = v.GetString("SMTP_USERNAME")
	cfg.SMTPPassword = v.GetString("SMTP_PASSWORD")
	cfg.SMTPFrom = v.GetString("SMTP_FROM")
	if cfg.SMTPHost == "" {
		log.Println("Warning: SMTP_HOST not set. Password reset emails will only be logged.")
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.ConsumeResetToken = v.GetBool("CONSUME_RESET_TOKEN")

	return cfg, nil
}

func parseDurationOrDefault(raw, key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

// splitList parses a comma separated env value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
