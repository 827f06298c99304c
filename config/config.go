package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config is read once at startup from the environment.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr      string // empty disables the report cache
	RedisPwd       string
	ReportCacheTTL time.Duration

	WebOrigin string
	Port      string

	LoanDays   int             // default loan period when a request omits one
	FinePerDay decimal.Decimal // daily overdue rate
}

// LoadEnv pulls a local .env into the process environment if present.
func LoadEnv() {
	_ = godotenv.Load()
}

func Load() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}

	loanDays, err := strconv.Atoi(get("LOAN_DAYS", "14"))
	if err != nil || loanDays < 1 {
		log.Fatalf("invalid LOAN_DAYS: %v", os.Getenv("LOAN_DAYS"))
	}

	rate, err := decimal.NewFromString(get("FINE_PER_DAY", "1.0"))
	if err != nil || rate.IsNegative() {
		log.Fatalf("invalid FINE_PER_DAY: %v", os.Getenv("FINE_PER_DAY"))
	}

	ttlSec, err := strconv.Atoi(get("REPORT_CACHE_TTL_SECONDS", "30"))
	if err != nil || ttlSec < 1 {
		log.Fatalf("invalid REPORT_CACHE_TTL_SECONDS: %v", os.Getenv("REPORT_CACHE_TTL_SECONDS"))
	}

	return Config{
		DBHost:     get("DB_HOST", "127.0.0.1"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     get("DB_NAME", "library"),

		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPwd:       os.Getenv("REDIS_PASSWORD"),
		ReportCacheTTL: time.Duration(ttlSec) * time.Second,

		WebOrigin: get("WEB_ORIGIN", "http://localhost:3000"),
		Port:      get("PORT", "3001"),

		LoanDays:   loanDays,
		FinePerDay: rate,
	}
}
