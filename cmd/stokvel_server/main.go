package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/config"
	dao "github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dao/mysql"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/handler"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/https_server"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/infrastructure/logger"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/infrastructure/storage"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/service/chat"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/util/jwt"
)

func main() {
	// 1. Load configuration.
	conf := config.GetConfig()

	// 2. Initialise logging.
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("logger initialised", zap.String("app", conf.MainConfig.AppName))

	// 3. Initialise the request validator translations.
	if err := handler.InitTrans(); err != nil {
		zap.L().Fatal("init validator translations failed", zap.Error(err))
	}

	// 4. Initialise JWT signing.
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.TokenExpiryHours)

	// 5. Initialise the database: connect, migrate, seed.
	repos := dao.Init()
	zap.L().Info("database initialised")

	// 6. Object store for uploads.
	uploader := storage.NewLocalStore(conf.StorageConfig.UploadPath, conf.StorageConfig.BaseURL)

	// 7. Chat relay hub.
	hub := chat.NewHub()
	go hub.Run()

	// 8. Service and handler layers (dependency injection).
	services := service.NewServices(repos, uploader, hub)
	handlers := handler.NewHandlers(services, hub)

	// 9. HTTP server.
	engine := https_server.Init(conf, handlers)
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}

	go func() {
		zap.L().Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for a termination signal, then drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}
	hub.Close()

	zap.L().Info("server stopped")
}
