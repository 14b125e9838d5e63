// main.go - Entry point for the trait quiz backend server

package main // Declares the package name

import ( // Import required packages
	"go-traits-backend/config"     // Project config management
	"go-traits-backend/database"   // Database connection and setup
	"go-traits-backend/genomelink" // Trait-data API client
	"go-traits-backend/handlers"   // HTTP handlers for API endpoints
	"go-traits-backend/models"     // Schema registry
	"go-traits-backend/mqtt"       // MQTT event publisher
	"log"                          // Logging

	"github.com/gin-gonic/gin" // Gin web framework
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	cfg := config.Load()         // Load configuration (DB path, MQTT broker, JWT secret)
	schema := models.NewSchema() // Tables this process migrates

	if err := database.Connect(cfg.DBPath, schema); err != nil { // Connect to the database
		log.Fatal("DB connection error: ", err) // If error, log and exit
	}
	if err := mqtt.Connect(cfg.MQTTBroker); err != nil { // Connect to the MQTT broker
		log.Fatal("MQTT connection error: ", err) // If error, log and exit
	}
	defer mqtt.Disconnect()
	if !mqtt.Enabled() { // No broker configured
		log.Println("MQTT_BROKER not set, event publishing disabled")
	}

	if cfg.GenomelinkToken != "" {
		handlers.SetTraitSource(genomelink.NewClient(cfg.GenomelinkURL, cfg.GenomelinkToken))
	} else {
		log.Println("GENOMELINK_TOKEN not set, trait import disabled")
	}

	// STEP 2: Create Gin router and configure routes
	r := gin.Default() // Create a new Gin router (web server)
	handlers.Routes(r)

	// STEP 3: Start the web server
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error: ", err)
	}
}
