package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	DatabaseURL     string
	UploadDir       string
	OTLPEndpoint    string
	SnowflakeNodeID int64
}

// Load reads configuration from the environment, with a best-effort
// .env preload for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	nodeID, err := strconv.ParseInt(getEnv("SNOWFLAKE_NODE_ID", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing SNOWFLAKE_NODE_ID: %w", err)
	}
	cfg.SnowflakeNodeID = nodeID

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
