package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// API metadata reported by the root and health endpoints.
const (
	APITitle   = "Customer API"
	APIVersion = "1.0.0"
)

type Config struct {
	// Database
	DBHost      string
	DBPort      string
	DBName      string
	DBUser      string
	DBPassword  string
	DBCharset   string
	DBCollation string
	DBMaxConns  int32
	DBMinConns  int32

	// Application
	SecretKey string
	Debug     bool

	// Pagination
	DefaultPageSize int
	MaxPageSize     int

	// CORS
	CORSOrigins []string
	CORSMethods []string
	CORSHeaders []string

	// Server
	Host string
	Port string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "customer_db"),
		DBUser:      getEnv("DB_USER", "root"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBCharset:   getEnv("DB_CHARSET", "utf8"),
		DBCollation: getEnv("DB_COLLATION", "utf8_unicode_ci"),
		DBMaxConns:  int32(getEnvInt("DB_MAX_CONNS", 10)),
		DBMinConns:  int32(getEnvInt("DB_MIN_CONNS", 1)),

		SecretKey: getEnv("SECRET_KEY", "dev-secret-key-change-in-production"),
		Debug:     getEnvBool("DEBUG", false),

		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:     getEnvInt("MAX_PAGE_SIZE", 100),

		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),
		CORSMethods: getEnvList("CORS_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		CORSHeaders: getEnvList("CORS_HEADERS", []string{"Content-Type", "Authorization"}),

		Host: getEnv("HOST", "0.0.0.0"),
		Port: getEnv("PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.EqualFold(value, "true") || value == "1"
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
