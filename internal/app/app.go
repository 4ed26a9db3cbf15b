package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/lindenb1/impress/internal/config"
	"github.com/lindenb1/impress/internal/domain/services"
	"github.com/lindenb1/impress/internal/infrastructure/cache"
	"github.com/lindenb1/impress/internal/infrastructure/database"
	"github.com/lindenb1/impress/internal/infrastructure/database/repositories"
	"github.com/lindenb1/impress/internal/interfaces/handlers"
	"github.com/lindenb1/impress/pkg/logger"
	"go.uber.org/zap"
)

func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := cache.NewRedisCache(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	accessRepo := repositories.NewAccessRepository(db.Pool())
	docRepo := repositories.NewDocumentRepository(db.DB())

	cacheSvc := services.NewRedisCacheService(redisClient, cfg.Cache.AccessesTTL)
	accessSvc := services.NewAccessService(
		accessRepo, docRepo, cacheSvc, logger.Named("accesses"),
		cfg.Pagination.DefaultPageSize, cfg.Pagination.MaxPageSize,
	)
	healthSvc := services.NewHealthService(db, redisClient)

	if cfg.Env != "dev" && cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := NewRouter(Handlers{
		Access: handlers.NewAccessHandler(accessSvc),
		Config: handlers.NewConfigHandler(cfg.Locale),
		Health: handlers.NewHealthHandler(healthSvc, logger.Named("health")),
	}, cfg.Locale.Languages, logger.Named("http"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("port", cfg.Server.Port))
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

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
