package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the server needs from the environment. Secrets
// have no defaults; startup fails fast when one is missing.
type Config struct {
	MongoURI        string
	DBName          string
	JWTSecret       string
	StripeSecretKey string
	S3Bucket        string
	AWSRegion       string
	Port            string
	AllowedOrigins  []string
}

const defaultPort = "5000"

// Load reads .env when present and builds the configuration from the
// environment.
func Load() (Config, error) {
	// A missing .env file is fine in production, where the environment is
	// supplied by the platform.
	_ = godotenv.Load()

	cfg := Config{
		MongoURI:        os.Getenv("MONGODB_URI"),
		DBName:          os.Getenv("DB_NAME"),
		JWTSecret:       os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		AWSRegion:       os.Getenv("AWS_REGION"),
		Port:            os.Getenv("PORT"),
	}

	if cfg.DBName == "" {
		cfg.DBName = "parmaWorld"
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:5173"}
	}

	var missing []string
	if cfg.MongoURI == "" {
		missing = append(missing, "MONGODB_URI")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "ACCESS_TOKEN_SECRET")
	}
	if cfg.StripeSecretKey == "" {
		missing = append(missing, "STRIPE_SECRET_KEY")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}
