// Package config loads service configuration from the environment. A local
// .env file is read when present so development does not need exported vars.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the binaries read from the environment.
type Config struct {
	// Port is the HTTP listen port for the API server.
	Port string

	// GCPProject and BQDataset select the BigQuery-backed repository. When
	// GCPProject is empty the server falls back to the in-memory repository.
	GCPProject string
	BQDataset  string

	// GCSBucket receives dashboard snapshot exports.
	GCSBucket string

	// GeminiAPIKey enables AI category suggestions. Empty means the keyword
	// fallback is used.
	GeminiAPIKey string

	// Notion sync settings.
	NotionToken      string
	NotionDatabaseID string

	// APIBaseURL is the server address used by the CLI tools.
	APIBaseURL string
}

// Load reads the configuration. Missing .env files are not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:             getEnv("PORT", "8080"),
		GCPProject:       os.Getenv("GCP_PROJECT"),
		BQDataset:        getEnv("BQ_DATASET", "budgetmentor"),
		GCSBucket:        os.Getenv("GCS_BUCKET"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		NotionToken:      os.Getenv("NOTION_TOKEN"),
		NotionDatabaseID: os.Getenv("NOTION_DATABASE_ID"),
		APIBaseURL:       getEnv("API_BASE_URL", "http://localhost:8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
