package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultEndpoint is the Moonshot chat-completions URL used when
// KIMI_ENDPOINT is not set.
const DefaultEndpoint = "https://api.moonshot.cn/v1/chat/completions"

type Config struct {
	Server   ServerConfig
	Moonshot MoonshotConfig
	Pipeline PipelineConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type MoonshotConfig struct {
	APIKey           string
	Endpoint         string
	Model            string
	MaxTokens        int
	RetryMaxAttempts int
}

type PipelineConfig struct {
	MockMode      bool
	PDFProcessing bool
	MaxFileSize   int64
}

// Load reads the environment once at startup. The returned Config is treated
// as read-only for the lifetime of the process.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "4242"),
			Env:  getEnv("ENV", "development"),
		},
		Moonshot: MoonshotConfig{
			APIKey:           getEnv("KIMI_API_KEY", ""),
			Endpoint:         getEnv("KIMI_ENDPOINT", DefaultEndpoint),
			Model:            getEnv("KIMI_MODEL", "moonshot-v1-8k"),
			MaxTokens:        getEnvAsInt("KIMI_MAX_TOKENS", 4000),
			RetryMaxAttempts: getEnvAsInt("RETRY_MAX_ATTEMPTS", 1),
		},
		Pipeline: PipelineConfig{
			MockMode:      getEnvAsBool("MOCK_MODE", false),
			PDFProcessing: getEnvAsBool("PDF_PROCESSING", true),
			MaxFileSize:   getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}
}

func (c *Config) HasAPIKey() bool {
	return c.Moonshot.APIKey != ""
}

// AIEnabled reports whether requests will take the live generative path.
func (c *Config) AIEnabled() bool {
	return !c.Pipeline.MockMode && c.HasAPIKey()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
