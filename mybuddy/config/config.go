package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultMaxImageSize int64 = 5 * 1024 * 1024

type Config struct {
	Host string
	Port int

	DBDriver   string
	DBPath     string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	LLMProvider    string
	LLMModel       string
	LLMVisionModel string
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	GroqAPIKey     string
	OllamaURL      string

	MaxImageSize int64
	LogDir       string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOSecure    bool
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Host: getEnv("MYBUDDY_HOST", "127.0.0.1"),
		Port: getEnvInt("MYBUDDY_PORT", 8000),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:     getEnv("DB_PATH", defaultDBPath()),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "mybuddy"),

		LLMProvider:    strings.ToLower(getEnv("LLM_PROVIDER", "openai")),
		LLMModel:       getEnv("LLM_MODEL", ""),
		LLMVisionModel: getEnv("LLM_VISION_MODEL", ""),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		GroqAPIKey:     getEnv("GROQ_API_KEY", ""),
		OllamaURL:      getEnv("OLLAMA_URL", "http://localhost:11434/api"),

		MaxImageSize: int64(getEnvInt("MAX_IMAGE_SIZE", int(DefaultMaxImageSize))),
		LogDir:       getEnv("LOG_DIR", "./logs"),

		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinIOBucket:    getEnv("MINIO_BUCKET", "mybuddy-ocr"),
		MinIOSecure:    getEnv("MINIO_SECURE", "") == "true",
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// CredentialEnv names the environment variable holding the key for the
// configured provider. Used in user-facing configuration errors.
func (c Config) CredentialEnv() string {
	if c.LLMProvider == "groq" {
		return "GROQ_API_KEY"
	}
	return "OPENAI_API_KEY"
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".mybuddy", "mybuddy.db")
	}
	return filepath.Join(home, ".mybuddy", "mybuddy.db")
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
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
		return fallback
	}
	return n
}
