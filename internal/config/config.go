// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string

	// JWTSecret signs and verifies access tokens.
	JWTSecret string

	// OpenAIKey authenticates calls to the completion API.
	OpenAIKey string

	// MapsKey authenticates calls to the Google Maps APIs.
	MapsKey string

	// GeocodeTimeout bounds one geocoding round trip.
	GeocodeTimeout time.Duration

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Addr, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
	flag.DurationVar(&options.GeocodeTimeout, "geocode-timeout", 5*time.Second, "geocoding request timeout")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. A .env file in the working directory is loaded
// first, if present. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	// Missing .env is fine, real environments set variables directly.
	_ = godotenv.Load()

	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		options.JWTSecret = secret
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		options.OpenAIKey = key
	}
	if key := os.Getenv("GOOGLE_MAPS_API_KEY"); key != "" {
		options.MapsKey = key
	}

	return options
}
