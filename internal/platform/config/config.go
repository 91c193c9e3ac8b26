package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Webhook listener (gateway receiver process)
	WebhookPort   string
	WebhookSecret string

	// Filesystem output locations
	ReceiptsDir string
	BackupsDir  string

	// Rendered on every receipt document
	InstitutionName string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Placeholder password for the first-run admin account. Must be rotated out-of-band.
	DefaultAdminPassword string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("WEBHOOK_PORT", "9000")
	viper.SetDefault("WEBHOOK_SECRET", "webhook_secret_change")
	viper.SetDefault("RECEIPTS_DIR", "receipts")
	viper.SetDefault("BACKUPS_DIR", "backups")
	viper.SetDefault("INSTITUTION_NAME", "INSTITUTION NAME")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "college-erp-app")
	viper.SetDefault("DEFAULT_ADMIN_PASSWORD", "admin123")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.WebhookPort = viper.GetString("WEBHOOK_PORT")
	cfg.WebhookSecret = viper.GetString("WEBHOOK_SECRET")
	if cfg.WebhookSecret == "webhook_secret_change" {
		log.Println("Warning: WEBHOOK_SECRET not set. Using default insecure secret.")
	}

	cfg.ReceiptsDir = viper.GetString("RECEIPTS_DIR")
	cfg.BackupsDir = viper.GetString("BACKUPS_DIR")
	cfg.InstitutionName = viper.GetString("INSTITUTION_NAME")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.DefaultAdminPassword = viper.GetString("DEFAULT_ADMIN_PASSWORD")
	if cfg.DefaultAdminPassword == "admin123" {
		log.Println("Warning: DEFAULT_ADMIN_PASSWORD not set. First-run admin uses the well-known placeholder; rotate it.")
	}

	return cfg, nil
}
