// Package main wires the HTTP server for the meeting scheduling service.
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/transport/http/server/handlers-fiber"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/usecase"

	"github.com/k-z-w-e-b-3-1-0/MtgCrd/config"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/notify"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/redmine"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/repository"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/internal/transport/http/middleware"
	"github.com/k-z-w-e-b-3-1-0/MtgCrd/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "jsonfile", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	source, err := redmine.New(log, cfg.Redmine)
	if err != nil {
		log.Errorw("redmine client initialization error", "error", err)
		return
	}
	notifier := notify.New(log, cfg.Slack)

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, source, notifier, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	serv.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(cfg.Storage.IndexFile)
	})
	serv.Static("/static", cfg.Storage.StaticDir)

	h := handlers_fiber.NewHandler(log, uc)
	handlers_fiber.RegisterRoutes(serv, h)

	serv.Use(func(c *fiber.Ctx) error {
		return c.Status(http.StatusNotFound).SendString("Not Found")
	})

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
