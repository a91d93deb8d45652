package zerolog_config

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.elastic.co/ecszerolog"
)

var startupOnce sync.Once

// ElasticsearchWriter sends logs directly to Elasticsearch
type ElasticsearchWriter struct {
	URL string
}

func (ew ElasticsearchWriter) Write(p []byte) (n int, err error) {
	resp, err := http.Post(
		ew.URL+"/_doc",
		"application/json",
		bytes.NewBuffer(p),
	)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return 0, fmt.Errorf("elasticsearch returned %d", resp.StatusCode)
	}

	return len(p), nil
}

// Startup configures the global logger: pretty console output, plus an ECS
// sink when elasticsearchURL is non-empty. The level comes from LOG_LEVEL
// (default info). Safe to call more than once; only the first call wins.
func Startup(elasticsearchURL, appName string) {
	startupOnce.Do(func() {
		level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
		if err != nil || level == zerolog.NoLevel {
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)

		consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}

		if elasticsearchURL == "" {
			log.Logger = zerolog.New(consoleWriter).With().Str("app", appName).
				Timestamp().Logger()
			return
		}

		// ECS format to Elasticsearch, pretty output to the console.
		ecsLogger := ecszerolog.New(&ElasticsearchWriter{
			URL: elasticsearchURL + "/" + appName,
		})
		multi := zerolog.MultiLevelWriter(
			ecsLogger,
			consoleWriter,
		)

		log.Logger = zerolog.New(multi).With().Str("app", appName).
			Timestamp().Logger()
	})
}
