package main

import (
	"context"
	"os"
	"time"

	"CustomerAPI/internal/config"
	"CustomerAPI/internal/db"
	"CustomerAPI/internal/middleware"
	"CustomerAPI/internal/repository"
	"CustomerAPI/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// ======================
	// CONFIG + LOGGING
	// ======================
	cfg := config.Load()
	setupLogger(cfg.Debug)

	// ======================
	// INFRA
	// ======================
	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()
	log.Info().
		Str("host", cfg.DBHost).
		Str("database", cfg.DBName).
		Str("charset", cfg.DBCharset).
		Str("collation", cfg.DBCollation).
		Msg("connected to database")

	// ======================
	// REPOSITORIES
	// ======================
	customerRepo := repository.NewCustomerRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	// ======================
	// SERVICES
	// ======================
	customerSvc := services.NewCustomerService(customerRepo, orderRepo)
	orderSvc := services.NewOrderService(orderRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: cfg.CORSMethods,
		AllowHeaders: cfg.CORSHeaders,
	}))

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerRootRoutes(e, cfg)

	api := e.Group("/api")
	registerCustomerRoutes(api, customerSvc, cfg)
	registerOrderRoutes(api, orderSvc)
	registerHealthRoutes(api, func(ctx context.Context) error {
		return db.Probe(ctx, pool)
	})

	// ======================
	// SERVER
	// ======================
	addr := cfg.Host + ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(debug bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
