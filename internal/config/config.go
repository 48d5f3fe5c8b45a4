package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DB     DBConfig
	Server ServerConfig
	Cache  CacheConfig
	Seeder SeederConfig
}

// DBType represents database type
type DBType string

const (
	DBTypePostgreSQL DBType = "postgres"
	DBTypeMemory     DBType = "memory"
)

const defaultDBName = "travelplanner"

// DBConfig holds database configuration
type DBConfig struct {
	Type     DBType
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the database connection string
func (c DBConfig) DSN() string {
	if c.Type == DBTypeMemory {
		// SQLite in-memory database, foreign keys are enforced per connection
		if c.Name != "" && c.Name != defaultDBName {
			return fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", c.Name)
		}
		return "file::memory:?cache=shared&_foreign_keys=on"
	}
	// PostgreSQL connection string
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// IsMemory returns true if using in-memory database
func (c DBConfig) IsMemory() bool {
	return c.Type == DBTypeMemory
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	// DefaultUserID is used when a request carries no X-User-ID header
	DefaultUserID string
	CSRFEnabled   bool
}

// CacheConfig holds settings for the optional Redis cache
type CacheConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

// Enabled reports whether a Redis address was configured
func (c CacheConfig) Enabled() bool {
	return c.RedisAddr != ""
}

// SeederConfig holds settings for catalog import
type SeederConfig struct {
	DataFile string
	AutoSeed bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbType := DBType(getEnv("DB_TYPE", "memory"))
	if dbType != DBTypePostgreSQL && dbType != DBTypeMemory {
		dbType = DBTypeMemory
	}

	config := &Config{
		DB: DBConfig{
			Type:     dbType,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "travelplanner"),
			Password: getEnv("DB_PASSWORD", "travelplanner_password"),
			Name:     getEnv("DB_NAME", defaultDBName),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Server: ServerConfig{
			Port:          getEnv("APP_PORT", "8080"),
			DefaultUserID: getEnv("SERVER_DEFAULT_USER_ID", "1"),
			CSRFEnabled:   getEnvAsBool("SERVER_CSRF_ENABLED", true),
		},
		Cache: CacheConfig{
			RedisAddr:     getEnv("CACHE_REDIS_ADDR", ""),
			RedisPassword: getEnv("CACHE_REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("CACHE_REDIS_DB", 0),
			TTL:           getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		},
		Seeder: SeederConfig{
			DataFile: getEnv("SEEDER_DATA_FILE", "data/catalog.tsv"),
			AutoSeed: getEnvAsBool("SEEDER_AUTO_SEED", true),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
