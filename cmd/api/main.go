package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ggorockee/cityexplorer/docs"
	"github.com/ggorockee/cityexplorer/internal/config"
	"github.com/ggorockee/cityexplorer/internal/database"
	"github.com/ggorockee/cityexplorer/internal/handlers"
	"github.com/ggorockee/cityexplorer/internal/logger"
	"github.com/ggorockee/cityexplorer/internal/middleware"
	"github.com/ggorockee/cityexplorer/internal/services"
	"github.com/ggorockee/cityexplorer/internal/telemetry"
	"github.com/ggorockee/cityexplorer/pkg/providers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
)

const serviceName = "city-explorer-api"

// @title City Explorer API
// @version 1.0.0
// @description Location, weather, meetup, review and movie aggregation with a read-through cache
// @BasePath /
func main() {
	envErr := godotenv.Load()

	cfg := config.Load()

	_ = logger.Init(cfg.ServerEnv)
	defer logger.Sync()
	log := logger.GetLogger("main")

	if envErr != nil {
		log.Info("No .env file found, using environment variables")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tracerShutdown, err := telemetry.InitTracer(ctx, serviceName, cfg.SigNozEndpoint)
	if err != nil {
		log.Warnf("Failed to initialize tracer: %v", err)
		tracerShutdown = func(context.Context) error { return nil }
	}
	defer func() {
		if err := tracerShutdown(context.Background()); err != nil {
			log.Warnf("Error shutting down tracer: %v", err)
		}
	}()

	meterShutdown, err := telemetry.InitMeter(ctx, serviceName, cfg.SigNozEndpoint)
	if err != nil {
		log.Warnf("Failed to initialize metrics: %v", err)
		meterShutdown = func(context.Context) error { return nil }
	}
	defer func() {
		if err := meterShutdown(context.Background()); err != nil {
			log.Warnf("Error shutting down metrics: %v", err)
		}
	}()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warnf("Error closing database: %v", err)
		}
	}()

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	go database.StartConnectionPoolMetricsCollector(ctx, db, 15*time.Second)

	// 응답 이후에도 진행 중인 캐시 쓰기는 종료 시 drain
	writer := database.NewWriter()
	defer writer.Close()

	docs.SwaggerInfo.Host = cfg.ServerHost

	app := fiber.New(fiber.Config{
		AppName:      "City Explorer API",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestIDMiddleware())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     `{"time":"${time}","request_id":"${respHeader:X-Request-ID}","status":${status},"latency":"${latency}","ip":"${ip}","method":"${method}","path":"${path}","error":"${error}"}` + "\n",
		TimeFormat: "2006-01-02T15:04:05Z07:00",
	}))
	app.Use(middleware.PrometheusMiddleware())
	app.Use(telemetry.New())
	app.Use(cors.New())

	setupRoutes(app, db, writer, cfg)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Warnf("Error shutting down server: %v", err)
		}
	}()

	log.Infof("Listening on PORT %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Errorf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, db *database.DB, writer *database.Writer, cfg *config.Config) {
	// Swagger UI
	app.Get("/docs/*", swagger.HandlerDefault)

	// Probes and metrics
	app.Get("/healthz", handlers.HealthCheck)
	app.Get("/readiness", handlers.ReadinessCheck(db))
	app.Get("/metrics", middleware.PrometheusHandler())

	client := providers.NewClient(cfg.ProviderTimeout)

	handlers.SetupLocationRoutes(app, services.NewLocationService(db, writer,
		providers.NewGeocodeClient(client, cfg.Geocode.BaseURL, cfg.Geocode.APIKey)))
	handlers.SetupWeatherRoutes(app, services.NewWeatherService(db, writer,
		providers.NewForecastClient(client, cfg.Weather.BaseURL, cfg.Weather.APIKey)))
	handlers.SetupMeetupRoutes(app, services.NewMeetupService(db, writer,
		providers.NewEventsClient(client, cfg.Meetup.BaseURL, cfg.Meetup.APIKey)))
	handlers.SetupReviewRoutes(app, services.NewReviewService(db, writer,
		providers.NewBusinessClient(client, cfg.Yelp.BaseURL, cfg.Yelp.APIKey)))
	handlers.SetupMovieRoutes(app, services.NewMovieService(db, writer,
		providers.NewMovieClient(client, cfg.Movie.BaseURL, cfg.MovieConfigURL, cfg.Movie.APIKey),
		cfg.MoviePosterSize))

	// '*' route for invalid endpoints
	if cfg.FallbackRouteEnabled {
		app.Use(handlers.NotFound)
	}
}
