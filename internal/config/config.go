package config

import (
	"os"
	"strconv"
)

// Config holds environment-driven settings for the dashboard service
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Business timezone offset in hours from UTC. The deployment this
	// dashboard serves runs on Indonesian western time (UTC+7).
	TimezoneOffsetHours int

	// Locale-specific presentation strings
	CurrencyPrefix     string
	MillionSuffix      string
	ThousandSuffix     string
	ThousandsSeparator string

	TopProductsLimit int
}

// Load reads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "postgres"),
		DBSSLMode:           getEnv("DB_SSLMODE", "disable"),
		TimezoneOffsetHours: getEnvInt("DASHBOARD_TZ_OFFSET_HOURS", 7),
		CurrencyPrefix:      getEnv("CURRENCY_PREFIX", "Rp "),
		MillionSuffix:       getEnv("MILLION_SUFFIX", " jt"),
		ThousandSuffix:      getEnv("THOUSAND_SUFFIX", "rb"),
		ThousandsSeparator:  getEnv("THOUSANDS_SEPARATOR", "."),
		TopProductsLimit:    getEnvInt("TOP_PRODUCTS_LIMIT", 5),
	}
}

// DSN builds the PostgreSQL connection string
func (c *Config) DSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
