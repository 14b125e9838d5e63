// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os"      // For reading environment variables
	"strconv" // For boolean env values

	"github.com/joho/godotenv" // .env file loader
)

type Config struct { // Config struct holds all configuration values
	DBPath          string // Path to the SQLite database file
	Port            string // HTTP listen port
	JWTSecret       string // Secret key for JWT authentication
	MQTTBroker      string // Address of the MQTT broker (empty disables publishing)
	GenomelinkURL   string // Base URL of the trait-data API
	GenomelinkToken string // Bearer token for the trait-data API
	CreateAdmin     bool   // Create a default admin on startup
	AdminUsername   string // Username of the default admin
	AdminPassword   string // Password of the default admin
}

func init() {
	// A missing .env is fine, the process environment is used as is.
	_ = godotenv.Load()
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		DBPath:          getEnv("DB_PATH", "data.db"),                      // Get DB path or use default
		Port:            getEnv("PORT", "8080"),                            // Get port or use default
		JWTSecret:       getEnv("JWT_SECRET", "supersecret"),               // Get JWT secret or use default
		MQTTBroker:      getEnv("MQTT_BROKER", ""),                         // No broker means no events
		GenomelinkURL:   getEnv("GENOMELINK_URL", "https://genomelink.io"), // Trait API base URL
		GenomelinkToken: getEnv("GENOMELINK_TOKEN", ""),                    // Trait API token
		CreateAdmin:     getBool("CREATE_ADMIN", false),                    // Admin bootstrap switch
		AdminUsername:   getEnv("ADMIN_USERNAME", "admin@example.com"),     // Admin username
		AdminPassword:   getEnv("ADMIN_PASSWORD", ""),                      // Admin password
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

func getBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
