package config

import (
	"log"

	"fleet_docs/internal/storage"
)

var (
	// Store is the globally accessible attachment storage handle
	Store storage.Storage
)

// InitStorage connects to the S3-compatible bucket holding document
// attachments.
func InitStorage() {
	cfg := storage.Config{
		Endpoint:  getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		AccessKey: getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		SecretKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		Bucket:    getEnv("STORAGE_BUCKET", "fleet-docs"),
		UseSSL:    getEnv("STORAGE_USE_SSL", "false") == "true",
	}

	store, err := storage.NewMinIO(cfg)
	if err != nil {
		log.Fatalf("failed to connect to attachment storage: %v", err)
	}

	Store = store
}
