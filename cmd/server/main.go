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

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/config"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/database"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/grpc"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/logger"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/route"
)

// @title CampusLearn API
// @version 1.0
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.MustLoad("config.yaml")
	conf := config.Conf

	log, err := logger.New(conf.Log.Level, conf.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log.Zap())
	ctx := context.Background()

	database.InitDatabase()
	defer database.Close()

	var rdb redis.Cmdable
	if database.RedisDB != nil {
		rdb = database.RedisDB
	}

	deps, closeDeps, err := app.Build(ctx, conf, database.DB, rdb, log)
	if err != nil {
		log.Error(ctx, "failed to build dependencies", zap.Error(err))
		os.Exit(1)
	}
	defer closeDeps()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", conf.Server.Host, conf.Server.Port),
		Handler:      route.SetupRouter(deps),
		ReadTimeout:  conf.Server.ReadTimeout,
		WriteTimeout: conf.Server.WriteTimeout,
	}
	go func() {
		log.Info(ctx, "http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "http server failed", zap.Error(err))
			os.Exit(1)
		}
	}()

	var grpcServer *grpc.Server
	if conf.GRPC.Port > 0 {
		grpcServer, err = grpc.NewServer(conf.GRPC.Port)
		if err != nil {
			log.Error(ctx, "failed to start grpc server", zap.Error(err))
			os.Exit(1)
		}
		go func() {
			log.Info(ctx, "grpc health server listening", zap.String("addr", grpcServer.GetAddr()))
			if err := grpcServer.Start(); err != nil {
				log.Error(ctx, "grpc server stopped", zap.Error(err))
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn(ctx, "http shutdown", zap.Error(err))
	}
	if grpcServer != nil {
		grpcServer.Stop()
	}
}
