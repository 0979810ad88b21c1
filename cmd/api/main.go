package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/pet-shelter/internal/audit"
	"github.com/BruksfildServices01/pet-shelter/internal/config"
	dbpkg "github.com/BruksfildServices01/pet-shelter/internal/db"
	infraRepo "github.com/BruksfildServices01/pet-shelter/internal/infra/repository"
	"github.com/BruksfildServices01/pet-shelter/internal/logging"
	"github.com/BruksfildServices01/pet-shelter/internal/routes"
	"github.com/BruksfildServices01/pet-shelter/internal/session"
	"github.com/BruksfildServices01/pet-shelter/internal/storage"
	ucUser "github.com/BruksfildServices01/pet-shelter/internal/usecase/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	dispatcher := audit.NewDispatcher(audit.New(db), logger)
	defer dispatcher.Close()

	store, err := storage.New(ctx, cfg)
	if err != nil {
		return err
	}

	sessions, closeSessions, err := sessionStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSessions()

	// --------------------------------------------------
	// Seed administrator
	// --------------------------------------------------
	seeder := ucUser.NewAuth(infraRepo.NewUserGormRepository(db, cfg.DBQueryTimeout), dispatcher, nil)
	seeded, err := seeder.SeedAdmin(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return err
	}
	if seeded {
		logger.Info("administrator ready", zap.String("email", cfg.AdminEmail))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = cfg.UploadMaxBytes

	if err := routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      logger,
		Sessions: sessions,
		Storage:  store,
		Audit:    dispatcher,
	}); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// sessionStore picks the configured backend. The memory store is swept
// every minute until ctx ends.
func sessionStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (session.Store, func(), error) {
	if cfg.SessionStore == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return session.NewRedisStore(client), func() { _ = client.Close() }, nil
	}

	mem := session.NewMemoryStore()
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := mem.Sweep(); n > 0 {
					logger.Debug("expired sessions swept", zap.Int("count", n))
				}
			}
		}
	}()
	return mem, func() {}, nil
}
