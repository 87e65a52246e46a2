package config

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type AppConfig struct {
	Name     string
	Env      string
	Port     string
	BaseURL  string
	LogLevel zerolog.Level
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Warn().Msgf("APP_ENV not set, defaulting to %s", env)
		}
		name := os.Getenv("APP_NAME")
		if name == "" {
			name = "cv-feedback"
		}
		port := os.Getenv("APP_PORT")
		if port == "" {
			port = ":8080"
		}
		level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
		if err != nil || level == zerolog.NoLevel {
			level = zerolog.InfoLevel
		}
		appConfig = &AppConfig{
			Name:     name,
			Env:      env,
			Port:     port,
			BaseURL:  os.Getenv("APP_URL"),
			LogLevel: level,
		}
	})
	return appConfig
}

// IsProduction hides stack traces and debug endpoints.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
