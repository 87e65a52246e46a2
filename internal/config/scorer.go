package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Scorer backends.
const (
	ScorerBackendHTTP   = "http"
	ScorerBackendGemini = "gemini"
)

type ScorerConfig struct {
	Backend      string
	URL          string
	Timeout      time.Duration
	RetryCount   int
	RetryWait    time.Duration
	RetryMaxWait time.Duration
}

var (
	scorerConfig *ScorerConfig
	scorerOnce   sync.Once
)

func LoadScorerConfig() *ScorerConfig {
	scorerOnce.Do(func() {
		scorerConfig = &ScorerConfig{
			Backend:      getEnv("SCORER_BACKEND", ScorerBackendHTTP),
			URL:          getEnv("SCORER_URL", "http://localhost:5000/api/score"),
			Timeout:      getDuration("SCORER_TIMEOUT", 60*time.Second),
			RetryCount:   getInt("SCORER_RETRIES", 2),
			RetryWait:    getDuration("SCORER_RETRY_WAIT", 500*time.Millisecond),
			RetryMaxWait: getDuration("SCORER_RETRY_MAX_WAIT", 5*time.Second),
		}
	})
	return scorerConfig
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
