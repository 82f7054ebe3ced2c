package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PubSub PubSubConfig
	Log    LogConfig
}

type LogConfig struct {
	Level string
}

type PubSubConfig struct {
	GCloudProjectID string
	Topic           string
	CredentialsFile string
	NatsURL         string
}

// Load reads configuration from the environment. A .env file in the working
// directory is read first when present; variables already set in the
// environment take precedence over it.
//
// Required values are not checked here. Flags may still override fields
// after loading, so completeness is checked by Validate.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	return &Config{
		PubSub: PubSubConfig{
			GCloudProjectID: projectID,
			Topic:           os.Getenv("PUBSUB_TOPIC"),
			CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
			NatsURL:         getEnv("NATS_URL", "nats://127.0.0.1:4222"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
