package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Vocabulary refresher config
const VOCAB_REFRESHER_SCHEDULE_MINUTES = 60

// Class Search API
const CLASS_SEARCH_API_BASE_URL = "https://classes.boisestate.edu"
const DEFAULT_TERM = "1263"

// Pagination
const DEFAULT_RESULTS_PER_PAGE = 10
const MAX_RESULTS_PER_PAGE = 50

// HTTP server
const SERVER_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const SEARCH_CLASSES_RESPONSE_RESOURCE = "search_classes_response.json"
const CLASS_DETAILS_RESPONSE_RESOURCE = "class_details_response.json"
const AVAILABILITY_RESPONSE_RESOURCE = "availability_response.json"
const FILTER_OPTIONS_RESOURCE_FORMAT = "filter_options_%s.json"

// LoadDotEnv loads a .env file if present; a missing file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Config] No .env file loaded: %v", err)
	}
}

// Env returns the deployment environment, defaulting to "prod".
func Env() string {
	return getEnv("APP_ENV", "prod")
}

// ServerMode selects the serving surface: "http" (default) or "mcp".
func ServerMode() string {
	return getEnv("SERVER_MODE", "http")
}

// APIBaseURL returns the class-search API base URL.
func APIBaseURL() string {
	return getEnv("CLASS_SEARCH_API_BASE_URL", CLASS_SEARCH_API_BASE_URL)
}

// DefaultTerm returns the term used when a caller omits one and for
// vocabulary refreshes.
func DefaultTerm() string {
	return getEnv("CLASS_SEARCH_DEFAULT_TERM", DEFAULT_TERM)
}

// RedisAddress returns the Redis address for the vocabulary cache.
func RedisAddress() string {
	return getEnv("REDIS_DB_ADDRESS", REDIS_DB_ADDRESS)
}

// RedisPassword returns the Redis password.
func RedisPassword() string {
	return getEnv("REDIS_DB_PASSWORD", REDIS_DB_PASSWORD)
}

// ServerAddress returns the HTTP listen address.
func ServerAddress() string {
	return getEnv("SERVER_ADDRESS", SERVER_ADDRESS)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

// GetResourcePath resolves a fixture file under the resources directory.
func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
