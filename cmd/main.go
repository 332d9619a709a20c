package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ndbell/authstore/internal/api/http/handler"
	"github.com/ndbell/authstore/internal/api/http/middleware"
	"github.com/ndbell/authstore/internal/api/http/router"
	httpserver "github.com/ndbell/authstore/internal/api/http/server"
	"github.com/ndbell/authstore/internal/config"
	"github.com/ndbell/authstore/internal/logger"
	"github.com/ndbell/authstore/internal/repository/postgres"
	"github.com/ndbell/authstore/internal/service"
	"github.com/ndbell/authstore/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	verificationTokenRepo := postgres.NewVerificationTokenRepository(db)
	postRepo := postgres.NewPostRepository(db)

	adapter := service.NewAdapter(userRepo, sessionRepo, accountRepo, verificationTokenRepo, logger)
	posts := service.NewPosts(postRepo, logger)

	tokenManager := token.NewJWT(cfg.Auth.Secret)
	auth := middleware.NewAuthenticate(tokenManager, logger)

	h := handler.New(adapter, posts, logger)
	srv := httpserver.NewHTTPServer(
		router.New(h, auth, logger),
		fmt.Sprintf(":%s", cfg.HTTP.Port),
		httpserver.TLSConfig{
			Enable:   cfg.HTTP.EnableTLS,
			CertFile: cfg.HTTP.CertFile,
			KeyFile:  cfg.HTTP.KeyFile,
		},
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "address", srv.Address())
		if err := srv.Start(); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownWait)*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
