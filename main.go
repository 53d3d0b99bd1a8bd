package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"edupolo_backend/internals/configs"
	database "edupolo_backend/internals/databases"
	helper "edupolo_backend/internals/helpers"
	"edupolo_backend/internals/logger"
	middlewares "edupolo_backend/internals/middlewares"
	routes "edupolo_backend/internals/route"
)

func main() {
	if err := logger.Init(logger.DefaultConfig()); err != nil {
		logger.GetAppLogger().WithError(err).Warn("logger init, falling back to stdout")
	}
	log := logger.GetAppLogger()

	cfg, err := configs.LoadEnv()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.FiberErrorHandler,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app, cfg)

	// 🔌 DB connect + pool + warm-up
	if err := database.ConnectDB(cfg); err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	database.TunePool()
	if cfg.AutoMigrate {
		if err := database.AutoMigrate(); err != nil {
			log.WithError(err).Fatal("auto migrate failed")
		}
		log.Info("✅ AutoMigrate done")
	}
	database.WarmUpQueries()

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, cfg, database.Ping)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Infof("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.WithError(err).Fatal("server error")
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close()
	log.Info("👋 bye")
}
