// @title Boat Checkout Backend API
// @version 1.0
// @description Checkout backend for boat trip bookings: travellers, coupons, pricing and simulated payment
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token: "Bearer {token}"

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "BOAT_CHECKOUT_BACK-END/docs" // This is required for swagger
	"BOAT_CHECKOUT_BACK-END/internal/checkout"
	"BOAT_CHECKOUT_BACK-END/internal/config"
	"BOAT_CHECKOUT_BACK-END/internal/handlers"
	"BOAT_CHECKOUT_BACK-END/internal/logger"
	"BOAT_CHECKOUT_BACK-END/internal/middleware"
	"BOAT_CHECKOUT_BACK-END/internal/routes"
	"BOAT_CHECKOUT_BACK-END/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.EnvFile == "" {
		log.Warn(".env file not found, using process environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Booking ledger ---
	var (
		recorder checkout.BookingRecorder = store.NewMemoryBookingStore()
		pinger   handlers.Pinger
	)
	if cfg.IsDatabaseConfigured() {
		pool, err := connectDB(ctx, cfg)
		if err != nil {
			log.Fatal("connect database", zap.Error(err))
		}
		defer pool.Close()

		if err := store.EnsureSchema(ctx, pool); err != nil {
			log.Fatal("migrate database", zap.Error(err))
		}
		recorder = store.NewPostgresBookingStore(pool)
		pinger = pool
		log.Info("recording bookings to postgres", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.Name))
	} else {
		log.Warn("DB_HOST not set, confirmed bookings are kept in memory")
	}

	// --- Checkout sessions ---
	manager := checkout.NewManager(checkout.Options{
		CaptureDelay:   cfg.Checkout.CaptureDelay,
		SubmitDelay:    cfg.Checkout.SubmitDelay,
		MaxTravellers:  cfg.Checkout.MaxTravellers,
		NoticeFeedSize: cfg.Checkout.NoticeFeedSize,
		Recorder:       recorder,
		Logger:         log,
	}, cfg.Checkout.SessionIdleTTL)
	defer manager.Close()
	go manager.Run(ctx, cfg.Checkout.SweepInterval)

	// --- HTTP Handlers ---
	mux := http.NewServeMux()
	routes.SetupRoutes(mux,
		handlers.NewHealthHandler(pinger, manager.Len),
		handlers.NewPricingHandler(),
		handlers.NewCheckoutHandler(manager, &cfg.JWT, log),
		handlers.NewNoticesHandler(manager),
		&cfg.JWT,
	)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(middleware.RequestLogger(mux, log)),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}

func connectDB(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	// simple protocol is required behind PgBouncer
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "boat-checkout-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = fmt.Sprint(cfg.Database.QueryTimeout.Milliseconds())
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}
