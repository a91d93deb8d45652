package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"stealthcompany.com/riskassess/internal/assessment"
	"stealthcompany.com/riskassess/internal/config"
	"stealthcompany.com/riskassess/internal/metrics"
	"stealthcompany.com/riskassess/pkg/zerolog_config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, assuming environment variables are set")
	}

	cfg, err := config.Load()
	if err != nil {
		zerolog_config.Startup("", "riskassess")
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	zerolog_config.Startup(cfg.ElasticsearchURL, "riskassess")

	log.Info().
		Str("base_url", cfg.BaseURL).
		Int("page_size", cfg.PageSize).
		Int("max_attempts", cfg.RetryMaxAttempts).
		Msg("Starting patient risk assessment")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.StartSystemMetrics(ctx, cfg.SystemMetricsInterval)
	startObservabilityServer(cfg.MetricsPort)

	if err := assessment.Run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("Assessment run failed")
	}

	log.Info().Msg("Assessment run completed successfully")
}

// startObservabilityServer serves /metrics and /health while the run is in
// progress. Failures here are logged but never abort the assessment.
func startObservabilityServer(port string) {
	startTime := time.Now()

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":         "ok",
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	}).Methods(http.MethodGet)

	go func() {
		log.Info().Str("port", port).Msg("Starting observability server")
		if err := http.ListenAndServe(":"+port, router); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Observability server failed")
		}
	}()
}
