package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel/trace"

	"github.com/tapi-calorie/tapi/internal/config"
	"github.com/tapi-calorie/tapi/internal/infra/database"
	"github.com/tapi-calorie/tapi/internal/infra/repository"
	"github.com/tapi-calorie/tapi/internal/infra/telemetry"
	"github.com/tapi-calorie/tapi/internal/present/rest"
	"github.com/tapi-calorie/tapi/internal/schema"
	"github.com/tapi-calorie/tapi/internal/service"
	"github.com/tapi-calorie/tapi/internal/usecase"
)

var version = "dev"

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func main() {
	configPath := flag.String("config", "/etc/tapi/config.yaml", "path to the configuration file")
	seed := flag.Bool("seed", false, "load example data on start")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(conf.Server.LogLevel),
	})))

	if conf.Server.EnableTrace {
		cleanup, err := telemetry.SetupTraceProvider(conf.Server.TraceEndpoint, "tapi", version)
		if err != nil {
			slog.Error("failed to setup tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer cleanup()
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		slog.Error("failed to connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = database.MigratePostgres(db)
	if err != nil {
		slog.Error("failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *seed || conf.Server.LoadExamples {
		if err := database.LoadExampleData(context.Background(), db, time.Now()); err != nil {
			slog.Error("failed to load example data", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	var (
		publisher usecase.ChangePublisher
		signalSvc *service.SignalService
	)
	if conf.Server.RedisAddr != "" {
		rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
		if err := database.PingRedis(context.Background(), rdb); err != nil {
			slog.Error("failed to connect redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer rdb.Close()
		signalSvc = service.NewSignalService(rdb)
		publisher = signalSvc
	}

	validator, err := schema.NewValidator()
	if err != nil {
		slog.Error("failed to compile schemas", slog.String("error", err.Error()))
		os.Exit(1)
	}

	personUsecase := usecase.NewPersonUsecase(repository.NewPersonRepository(db), publisher)
	mealUsecase := usecase.NewMealUsecase(repository.NewMealRepository(db), publisher)
	portionUsecase := usecase.NewPortionUsecase(repository.NewPortionRepository(db), publisher)
	mealPortionUsecase := usecase.NewMealPortionUsecase(repository.NewMealPortionRepository(db), publisher)
	mealRecordUsecase := usecase.NewMealRecordUsecase(repository.NewMealRecordRepository(db), publisher)

	handler := rest.NewHandler(
		conf,
		validator,
		personUsecase,
		mealUsecase,
		portionUsecase,
		mealPortionUsecase,
		mealRecordUsecase,
		signalSvc,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return uuid.NewString()
		},
	}))
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("tapi"))
	}
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
				slog.String("module", "http"),
			}
			if span := trace.SpanContextFromContext(c.Request().Context()); span.HasTraceID() {
				attrs = append(attrs, slog.String("trace_id", span.TraceID().String()))
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		ExposeHeaders: []string{echo.HeaderLocation, "ETag"},
	}))

	handler.RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("starting server", slog.String("listen", conf.Server.Listen), slog.String("version", version))
		if err := e.Start(conf.Server.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", slog.String("error", err.Error()))
	}
}
