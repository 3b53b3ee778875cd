package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const defaultAPIURL = "https://api.firecrawl.com/crawl"

// Config holds the crawl API connection settings.
type Config struct {
	APIURL string // Crawl API endpoint
	APIKey string // Optional bearer token
}

// Load reads an optional .env file and then the process environment.
// FIRECRAWL_API_URL overrides the default endpoint; FIRECRAWL_API_KEY is
// sent as a bearer token when set.
func Load(logger *zap.Logger) Config {
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded environment from .env")
	}

	cfg := Config{
		APIURL: os.Getenv("FIRECRAWL_API_URL"),
		APIKey: os.Getenv("FIRECRAWL_API_KEY"),
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	return cfg
}
