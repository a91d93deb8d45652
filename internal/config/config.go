package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries every knob of a run. It is built once in main and passed
// explicitly into the walker and fetcher; nothing reads the environment
// after Load returns.
type Config struct {
	// BaseURL is the assessment API root, without a trailing slash.
	BaseURL string
	// APIKey is sent as the x-api-key header on every request.
	APIKey string
	// PageSize is the patients-per-page limit; the API caps it at 20.
	PageSize int

	// HTTPTimeout bounds each individual HTTP attempt.
	HTTPTimeout time.Duration
	// PageDelay is the fixed wait between consecutive page requests,
	// throttling below the server's rate limit.
	PageDelay time.Duration

	// RetryMaxAttempts is the total attempt budget per logical call.
	RetryMaxAttempts int
	// RetryBaseDelay seeds the exponential backoff.
	RetryBaseDelay time.Duration
	// RetryMaxJitter bounds the random jitter added to every wait.
	RetryMaxJitter time.Duration

	// MetricsPort serves /metrics and /health while the run is in progress.
	MetricsPort string
	// ElasticsearchURL, when set, enables the ECS log sink.
	ElasticsearchURL string
	// SystemMetricsInterval is the system metrics collection period.
	SystemMetricsInterval time.Duration
}

// Load builds a Config from environment variables with defaults. The API key
// has no default: a run without RISK_API_KEY fails up front.
func Load() (Config, error) {
	apiKey := os.Getenv("RISK_API_KEY")
	if apiKey == "" {
		return Config{}, fmt.Errorf("RISK_API_KEY is required")
	}

	pageSize := getEnvInt("RISK_PAGE_SIZE", 20)
	if pageSize < 1 || pageSize > 20 {
		return Config{}, fmt.Errorf("RISK_PAGE_SIZE must be between 1 and 20, got %d", pageSize)
	}

	maxAttempts := getEnvInt("RISK_RETRY_MAX_ATTEMPTS", 5)
	if maxAttempts < 1 {
		return Config{}, fmt.Errorf("RISK_RETRY_MAX_ATTEMPTS must be at least 1, got %d", maxAttempts)
	}

	return Config{
		BaseURL:               getEnvOrDefault("RISK_API_BASE_URL", "https://assessment.ksensetech.com/api"),
		APIKey:                apiKey,
		PageSize:              pageSize,
		HTTPTimeout:           getEnvDuration("RISK_HTTP_TIMEOUT", 30*time.Second),
		PageDelay:             getEnvDuration("RISK_PAGE_DELAY", 120*time.Millisecond),
		RetryMaxAttempts:      maxAttempts,
		RetryBaseDelay:        getEnvDuration("RISK_RETRY_BASE_DELAY", 500*time.Millisecond),
		RetryMaxJitter:        getEnvDuration("RISK_RETRY_MAX_JITTER", 200*time.Millisecond),
		MetricsPort:           getEnvOrDefault("RISK_METRICS_PORT", "8081"),
		ElasticsearchURL:      os.Getenv("ELASTICSEARCH_URL"),
		SystemMetricsInterval: getEnvDuration("RISK_SYSTEM_METRICS_INTERVAL", 15*time.Second),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
