package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/cv-feedback/internal/config"
	"github.com/fadilmartias/cv-feedback/internal/domain/fiber/handler"
	"github.com/fadilmartias/cv-feedback/internal/middleware"
	"github.com/fadilmartias/cv-feedback/internal/model"
	"github.com/fadilmartias/cv-feedback/internal/observability"
	"github.com/fadilmartias/cv-feedback/internal/repository"
	"github.com/fadilmartias/cv-feedback/internal/service"
	"github.com/fadilmartias/cv-feedback/internal/usecase"
	"github.com/fadilmartias/cv-feedback/internal/util"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	envErr := godotenv.Load()

	appConfig := config.LoadAppConfig()
	zerolog.SetGlobalLevel(appConfig.LogLevel)
	log := zerolog.New(os.Stdout).With().Timestamp().Str("app", appConfig.Name).Logger()
	if envErr != nil {
		log.Warn().Msg("could not load .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: util.MaxUploadSize + 1024*1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return util.ErrorResponse(ctx, util.ErrorResponseFormat{
				Code:    code,
				Message: message,
			})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.Observability(log))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	app.Get("/metrics", observability.MetricsHandler())

	db := ConnectDB(log)

	scorer, err := newScorer(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create scorer")
	}

	reportRepo := repository.NewFeedbackReportRepository(db)
	validate := validator.New(validator.WithRequiredStructEnabled())
	uc := usecase.NewFeedbackUsecase(reportRepo, scorer, validate, log)
	handler.NewFeedbackHandler(uc, log).RegisterRoutes(app)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				log.Debug().Int("goroutines", runtime.NumGoroutine()).Msg("runtime stats")
			}
		}
	}()

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("port", appConfig.Port).Msg("server running")
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newScorer(ctx context.Context, log zerolog.Logger) (service.Scorer, error) {
	scorerConfig := config.LoadScorerConfig()
	switch scorerConfig.Backend {
	case config.ScorerBackendGemini:
		return service.NewGeminiScorer(ctx, config.LoadGeminiConfig(), log)
	case config.ScorerBackendHTTP:
		return service.NewHTTPScorer(scorerConfig, log), nil
	default:
		return nil, errors.New("unknown SCORER_BACKEND " + scorerConfig.Backend)
	}
}

func ConnectDB(log zerolog.Logger) *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("could not get database instance")
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.FeedbackReport{}); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	return db
}
