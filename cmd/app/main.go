package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	apiHttp "github.com/cityinfo/backend/internal/api/http"
	"github.com/cityinfo/backend/internal/config"
	"github.com/cityinfo/backend/internal/db"
	"github.com/cityinfo/backend/internal/queue/asynqserver"
	queueclient "github.com/cityinfo/backend/internal/queue/client"
	"github.com/cityinfo/backend/internal/repository"
	"github.com/cityinfo/backend/internal/server"
	"github.com/cityinfo/backend/internal/service"
	"github.com/cityinfo/backend/internal/worker"
	"github.com/cityinfo/backend/pkg/auth"
	"github.com/cityinfo/backend/pkg/email/smtp"
	"github.com/cityinfo/backend/pkg/logger"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env)

	appLogger.Info("starting cityinfo api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		err = dbMySQL.Close()
		if err != nil {
			appLogger.Error("error when closing", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	if err := db.Migrate(context.Background(), dbMySQL); err != nil {
		appLogger.Error("db migrations failed", zap.Error(err))
		os.Exit(1)
	}
	appLogger.Info("db migrations applied")

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		appLogger.Error("auth manager creation err", zap.Error(err))
		return
	}

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config: cfg,
		Repos:  repos,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// Notification queue
	var asynqSrv *asynq.Server
	if cfg.Queue.Enabled {
		emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
		if err != nil {
			appLogger.Error("smtp sender creation failed", zap.Error(err))
			return
		}

		workers := worker.NewWorkers(worker.Deps{
			EmailProvider: emailSender,
			Config:        cfg,
		})

		var mux *asynq.ServeMux
		asynqSrv, mux = asynqserver.New(cfg.Queue, workers)
		go func() {
			if err := asynqSrv.Run(mux); err != nil {
				appLogger.Error("error occurred while running asynq server", zap.Error(err))
			}
		}()

		queueClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Queue))
		defer queueClient.Close()
		queueclient.SetClient(queueClient)

		appLogger.Info("notification queue started")
	}

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	if asynqSrv != nil {
		asynqSrv.Shutdown()
	}

	appLogger.Info("app stopped")
}
