package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

type Config struct {
	// Server
	Port string
	Env  string

	// LLM
	LLMProvider    string
	LLMModel       string
	LLMTemperature float64
	LLMTimeout     time.Duration

	// Groq
	GroqAPIKey  string
	GroqBaseURL string

	// Gemini AI
	GeminiAPIKey string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:           getEnvOrDefault("PORT", "8000"),
		Env:            getEnvOrDefault("ENV", "development"),
		LLMProvider:    getEnvOrDefault("LLM_PROVIDER", ProviderGroq),
		LLMModel:       getEnvOrDefault("LLM_MODEL", ""),
		LLMTemperature: getEnvAsFloatOrDefault("LLM_TEMPERATURE", 0.7),
		LLMTimeout:     getEnvAsDurationOrDefault("LLM_TIMEOUT", 2*time.Minute),
		GroqBaseURL:    getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
	}

	// Only the selected provider's credential is required.
	switch cfg.LLMProvider {
	case ProviderGemini:
		cfg.GeminiAPIKey = mustGetEnv("GEMINI_API_KEY")
	default:
		cfg.GroqAPIKey = mustGetEnv("GROQ_API_KEY")
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsFloatOrDefault(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

// getEnvAsDurationOrDefault accepts Go durations ("90s") or a bare number of seconds.
func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if secs := getEnvAsIntOrDefault(key, -1); secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}
