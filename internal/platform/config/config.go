package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Sign-in account for warehouse operators
	AdminUsername     string
	AdminPasswordHash string

	// SAP B1 Service Layer connection
	SAPServerURL  string `mapstructure:"SAP_B1_SERVER_URL"`
	SAPUsername   string `mapstructure:"SAP_B1_USERNAME"`
	SAPPassword   string `mapstructure:"SAP_B1_PASSWORD"`
	SAPCompanyDB  string `mapstructure:"SAP_B1_COMPANY_DB"`
	SAPTimeout    time.Duration
	RateLimitSpec string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "wms-backend")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("SAP_B1_SERVER_URL", "")
	viper.SetDefault("SAP_B1_USERNAME", "")
	viper.SetDefault("SAP_B1_PASSWORD", "")
	viper.SetDefault("SAP_B1_COMPANY_DB", "")
	viper.SetDefault("SAP_B1_TIMEOUT", "30s")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 1
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}

	jwtIssuer := viper.GetString("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "wms-backend"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", jwtIssuer)
	}

	sapTimeoutStr := viper.GetString("SAP_B1_TIMEOUT")
	sapTimeout, err := time.ParseDuration(sapTimeoutStr)
	if err != nil {
		sapTimeout = 30 * time.Second
		if sapTimeoutStr != "" {
			log.Printf("Warning: Invalid value for SAP_B1_TIMEOUT ('%s'). Defaulting to %s.\n", sapTimeoutStr, sapTimeout.String())
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.JWTSecret = jwtSecret
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = jwtIssuer
	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	cfg.SAPServerURL = viper.GetString("SAP_B1_SERVER_URL")
	cfg.SAPUsername = viper.GetString("SAP_B1_USERNAME")
	cfg.SAPPassword = viper.GetString("SAP_B1_PASSWORD")
	cfg.SAPCompanyDB = viper.GetString("SAP_B1_COMPANY_DB")
	cfg.SAPTimeout = sapTimeout
	cfg.RateLimitSpec = viper.GetString("RATE_LIMIT")

	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Login will reject all credentials.")
	}
	if cfg.SAPServerURL == "" {
		log.Println("Warning: SAP_B1_SERVER_URL not set. The server will not start without it.")
	}

	return cfg, nil
}
