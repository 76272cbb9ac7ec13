package configs

import (
	"os"
	"strconv"
)

type Config struct {
	API    APIConfig
	Search SearchConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Stub   StubConfig
}

type APIConfig struct {
	// Endpoint is the storefront API base URL.
	Endpoint       string
	TimeoutSeconds int
}

type SearchConfig struct {
	DebounceMillis int
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type JWTConfig struct {
	SecretKey   string
	ExpiryHours int
}

type StubConfig struct {
	Port string
	Mode string
}

func LoadConfig() *Config {
	return &Config{
		API: APIConfig{
			Endpoint:       getEnv("QKART_ENDPOINT", "http://localhost:8082"),
			TimeoutSeconds: getEnvInt("QKART_HTTP_TIMEOUT_SECONDS", 30),
		},
		Search: SearchConfig{
			DebounceMillis: getEnvInt("QKART_DEBOUNCE_MS", 500),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			SecretKey:   getEnv("JWT_SECRET", "your-secret-key"),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		},
		Stub: StubConfig{
			Port: getEnv("STUB_PORT", "8082"),
			Mode: getEnv("GIN_MODE", "debug"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
