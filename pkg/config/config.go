package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backend selectors for STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// StorageBackend selects the record store implementation: memory or
	// postgres. Both expose the same repository surface.
	StorageBackend string

	// SnapshotPath is the JSON snapshot file for the memory backend. Empty
	// disables persistence.
	SnapshotPath     string
	SnapshotDebounce time.Duration

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// AuthRateLimit is a ulule/limiter formatted rate applied to the auth
	// routes, e.g. "5-M" for five requests per minute per IP.
	AuthRateLimit string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_BACKEND", BackendMemory)
	viper.SetDefault("SNAPSHOT_PATH", "fca_snapshot.json")
	viper.SetDefault("SNAPSHOT_DEBOUNCE", "500ms")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "fca-backend")
	viper.SetDefault("AUTH_RATE_LIMIT", "5-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.StorageBackend = viper.GetString("STORAGE_BACKEND")
	switch cfg.StorageBackend {
	case BackendMemory, BackendPostgres:
	default:
		log.Printf("Warning: Unknown STORAGE_BACKEND ('%s'). Defaulting to %s.\n", cfg.StorageBackend, BackendMemory)
		cfg.StorageBackend = BackendMemory
	}
	if cfg.StorageBackend == BackendPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: STORAGE_BACKEND is postgres but PGSQL_URL is not set.")
	}

	cfg.SnapshotPath = viper.GetString("SNAPSHOT_PATH")
	debounceStr := viper.GetString("SNAPSHOT_DEBOUNCE")
	debounce, err := time.ParseDuration(debounceStr)
	if err != nil {
		debounce = 500 * time.Millisecond
		log.Printf("Warning: Invalid value for SNAPSHOT_DEBOUNCE ('%s'). Defaulting to %s.\n", debounceStr, debounce)
	}
	cfg.SnapshotDebounce = debounce

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
