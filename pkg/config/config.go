package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	GRPCPort int
	HTTPPort int

	// StorefrontAddr is the gRPC target the gateway dials.
	StorefrontAddr string

	MockLatencyScale float64
	MockFailureRate  float64

	// Backing store per context: "memory" or "postgres".
	CatalogStore string
	CartStore    string
	OrderStore   string
	Postgres     PostgresConfig

	CartSessionTTL    time.Duration
	CartSweepInterval time.Duration
	ShutdownTimeout   time.Duration
}

type PostgresConfig struct {
	Host string
	Port int
	User string
	Pass string
	DB   string
}

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment are never overridden by the file.
func Load() Config {
	_ = godotenv.Load(getEnv("ENV_FILE", ".env"))

	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		GRPCPort: getEnvInt("GRPC_PORT", 8081),

		StorefrontAddr: getEnv("STOREFRONT_ADDR", "localhost:8081"),

		MockLatencyScale: getEnvFloat("MOCK_LATENCY_SCALE", 1),
		MockFailureRate:  getEnvFloat("MOCK_FAILURE_RATE", 0),

		CatalogStore: getStore("CATALOG_STORE"),
		CartStore:    getStore("CART_STORE"),
		OrderStore:   getStore("ORDER_STORE"),
		Postgres: PostgresConfig{
			Host: getEnv("POSTGRES_HOST", "localhost"),
			Port: getEnvInt("POSTGRES_PORT", 5432),
			User: getEnv("POSTGRES_USER", "sweetlayers"),
			Pass: getEnv("POSTGRES_PASSWORD", "sweetlayers"),
			DB:   getEnv("POSTGRES_DB", "sweetlayers"),
		},

		CartSessionTTL:    getEnvDuration("CART_SESSION_TTL", 2*time.Hour),
		CartSweepInterval: getEnvDuration("CART_SWEEP_INTERVAL", 5*time.Minute),
		ShutdownTimeout:   getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getStore(key string) string {
	return strings.ToLower(strings.TrimSpace(getEnv(key, StoreMemory)))
}

// UsesPostgres reports whether any context is configured to store in Postgres.
func (c Config) UsesPostgres() bool {
	return c.CatalogStore == StorePostgres || c.CartStore == StorePostgres || c.OrderStore == StorePostgres
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return def
	}
	return f
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
