package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPConfig
	Session  SessionConfig
	Discount DiscountConfig
	Payment  PaymentConfig
}

type HTTPConfig struct {
	Addr string
}

type SessionConfig struct {
	Secret string // signs the session cookie
	TTL    time.Duration
}

type DiscountConfig struct {
	Code    string
	Percent int64 // whole percent, e.g. 20
}

type PaymentConfig struct {
	SubmitLatency time.Duration // simulated order-acceptance delay
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	ttlMinutes, _ := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "60"))
	percent, _ := strconv.ParseInt(getEnv("DISCOUNT_PERCENT", "20"), 10, 64)
	latencyMs, _ := strconv.Atoi(getEnv("SUBMIT_LATENCY_MS", "2000"))

	return &Config{
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "munchking-dev-secret"),
			TTL:    time.Duration(ttlMinutes) * time.Minute,
		},
		Discount: DiscountConfig{
			Code:    getEnv("DISCOUNT_CODE", "WELCOME20"),
			Percent: percent,
		},
		Payment: PaymentConfig{
			SubmitLatency: time.Duration(latencyMs) * time.Millisecond,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
