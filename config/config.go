package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string
	TokenTTL  time.Duration

	Port          string
	AllowedOrigin string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	LogLevel  string
	LogFormat string
}

const (
	defaultPort          = "8000"
	defaultAllowedOrigin = "http://localhost:3000"
	defaultTokenTTL      = time.Hour
	defaultCacheTTL      = 5 * time.Minute
)

// LoadConfig reads the process environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("could not read .env file")
	}

	return Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  getDuration("TOKEN_TTL", defaultTokenTTL),

		Port:          getEnv("PORT", defaultPort),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", defaultAllowedOrigin),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),
		CacheTTL:      getDuration("CACHE_TTL", defaultCacheTTL),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// DSN renders the key/value connection string understood by the postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func (c Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.Warnf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		logrus.Warnf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
