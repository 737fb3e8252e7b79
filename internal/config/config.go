package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr   string
	CORSOrigins  string // Comma-separated allowed origins, e.g. "https://macromate.app,http://localhost:5173"
	RateLimitMax int    // Requests per minute per client on /api, 0 disables the limiter

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // Optional; enables mTLS client verification

	// Chatbot data
	DataDir       string // Directory holding exercises.csv, nutrition.csv, workout_plans.csv; empty uses the embedded samples
	KnowledgeFile string // Optional YAML topic list replacing the built-in knowledge base

	// Response cache
	CacheCapacity int           // Local LRU entries
	CacheTTL      time.Duration // Expiry of shared (redis) entries, 0 means no expiry
	RedisURL      string        // Optional; enables the shared cache and limiter storage

	// Lookup statistics
	DatabaseURL         string // Optional; enables persisted lookup counts
	LookupFlushInterval time.Duration

	// Models
	BodyFatModelFile     string // Optional YAML linear model replacing the built-in one
	FoodClassifierURL    string // Optional model server endpoint for /api/predict/food
	FoodClassifierConfig string // Classifier config.json (class names, threshold)
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		ServerAddr:   getEnv("SERVER_ADDR", ":5000"),
		CORSOrigins:  getEnv("CORS_ORIGINS", ""),
		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 120),

		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:   getEnv("TLS_CA_FILE", ""),

		DataDir:       getEnv("DATA_DIR", ""),
		KnowledgeFile: getEnv("KNOWLEDGE_FILE", ""),

		CacheCapacity: getEnvInt("CACHE_CAPACITY", 1024),
		CacheTTL:      getEnvDuration("CACHE_TTL", time.Hour),
		RedisURL:      getEnv("REDIS_URL", ""),

		DatabaseURL:         getEnv("DATABASE_URL", ""),
		LookupFlushInterval: getEnvDuration("LOOKUP_FLUSH_INTERVAL", 30*time.Second),

		BodyFatModelFile:     getEnv("BODYFAT_MODEL_FILE", ""),
		FoodClassifierURL:    getEnv("FOOD_CLASSIFIER_URL", ""),
		FoodClassifierConfig: getEnv("FOOD_CLASSIFIER_CONFIG", "model/config.json"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %s", key, value, fallback)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HasDatabase returns true if lookup statistics should be persisted.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}
