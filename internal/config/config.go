package config

import (
	"net"     // Host:port joining
	"net/url" // Postgres connection URL
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // Durations for token and cache lifetimes

	"github.com/joho/godotenv"   // For loading .env files
	"golang.org/x/crypto/bcrypt" // Cost bounds
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application configuration
type Config struct {
	AppPort     string        // Application port
	DBDriver    string        // Database driver: mysql, postgres or sqlite
	DBUser      string        // Database user
	DBPassword  string        // Database password
	DBHost      string        // Database host
	DBPort      string        // Database port
	DBName      string        // Database name
	DBDSN       string        // Full DSN override (file path for sqlite)
	DBTimeZone  string        // IANA zone for postgres sessions, empty keeps the server default
	JWTSecret   string        // JWT secret key
	JWTTTL      time.Duration // Token lifetime
	BcryptCost  int           // Password hashing cost
	RedisAddr   string        // Redis server address, empty disables caching
	RedisPass   string        // Redis password
	RedisDB     int           // Redis database number
	CacheTTL    time.Duration // Lifetime of cached responses
	RequireAuth bool          // Gate record routes behind a bearer token
	IsProd      bool          // Is production environment
	LogLevel    string        // Logrus level name
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	driver := getEnv("DB_DRIVER", DriverMySQL)
	defaultPort := "3306"
	if driver == DriverPostgres {
		defaultPort = "5432"
	}
	return &Config{
		AppPort:     getEnv("APP_PORT", "3001"),
		DBDriver:    driver,
		DBUser:      getEnv("DB_USER", "root"),
		DBPassword:  os.Getenv("DB_PASSWORD"), // Empty password is a valid local setup
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", defaultPort),
		DBName:      getEnv("DB_NAME", "db_tnc"),
		DBDSN:       os.Getenv("DB_DSN"),
		DBTimeZone:  getEnv("DB_TIMEZONE", os.Getenv("TZ")),
		JWTSecret:   getEnv("JWT_SECRET", "rahasia"),
		JWTTTL:      getDuration("JWT_TTL", time.Hour),
		BcryptCost:  getBcryptCost("BCRYPT_COST", 10),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPass:   os.Getenv("REDIS_PASS"),
		RedisDB:     getInt("REDIS_DB", 0),
		CacheTTL:    getDuration("CACHE_TTL", 60*time.Second),
		RequireAuth: os.Getenv("REQUIRE_AUTH") == "true",
		IsProd:      os.Getenv("IS_PROD") == "true",
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// DSN builds the connection string for the configured driver
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN // Explicit override wins
	}
	switch c.DBDriver {
	case DriverPostgres:
		return c.postgresURL()
	case DriverSQLite:
		return c.DBName + ".db"
	default:
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=true&loc=Local"
	}
}

// postgresURL builds a postgres:// URL so empty or special-character
// credentials stay inside their own field
func (c *Config) postgresURL() string {
	q := url.Values{}
	q.Set("sslmode", "disable")
	if c.DBTimeZone != "" {
		q.Set("TimeZone", c.DBTimeZone)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// CacheEnabled reports whether a Redis address was configured
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def // Missing or malformed
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// getBcryptCost rejects costs bcrypt would refuse to hash with
func getBcryptCost(key string, def int) int {
	v := getInt(key, def)
	if v < bcrypt.MinCost || v > bcrypt.MaxCost {
		return def
	}
	return v
}
