package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/adapter/filestore"
	httpadapter "github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/adapter/http"
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/adapter/http/handlers"
	httpmiddleware "github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/adapter/http/middleware"
	appservice "github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/app/service"
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/internal/config"
	"github.com/airtribe-projects/task-manager-api-SSaiPranay/pkg/translator"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	tasksFile, err := filestore.OpenFile(cfg)
	if err != nil {
		logger.Fatal("failed to open tasks file", zap.String("path", cfg.TasksFile), zap.Error(err))
	}
	logger.Info("using tasks file", zap.String("path", tasksFile.Path()))

	taskRepository := filestore.NewTaskRepository(tasksFile)
	taskService := appservice.NewTaskService(taskRepository)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}
	r.Use(
		gin.Recovery(),
		httpmiddleware.RequestIDMiddleware(),
		httpmiddleware.GinZapMiddleware(logger),
		httpmiddleware.CORSMiddleware(cfg.CorsAllowedOrigins),
	)
	healthHandler := handlers.NewHealthHandler(tasksFile)
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}
