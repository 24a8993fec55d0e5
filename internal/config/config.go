package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the service configuration, read from the environment
type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	SessionDir string
	SeedFile   string // empty uses the embedded demo data

	DeliveryFee  float64
	ServiceFee   float64
	PaymentDelay time.Duration
	BcryptCost   int

	CORSAllowOrigins []string
}

// Load reads an optional .env file and then the environment. Unset keys keep
// their defaults; malformed values are errors.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: load env file: %w", err)
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "release"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		SessionDir:       getEnv("SESSION_DIR", "data"),
		SeedFile:         os.Getenv("SEED_FILE"),
		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}

	var err error
	if cfg.DeliveryFee, err = getFloat("DELIVERY_FEE", 5); err != nil {
		return nil, err
	}
	if cfg.ServiceFee, err = getFloat("SERVICE_FEE", 2.99); err != nil {
		return nil, err
	}
	if cfg.PaymentDelay, err = getDuration("PAYMENT_DELAY", 3*time.Second); err != nil {
		return nil, err
	}
	if cfg.BcryptCost, err = getInt("BCRYPT_COST", 10); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("config: %s must be a non-negative number, got %q", key, raw)
	}
	return v, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer, got %q", key, raw)
	}
	return v, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("config: %s must be a non-negative duration, got %q", key, raw)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
