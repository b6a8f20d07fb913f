package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"coursehub/interfaces/api/handlers"
	"coursehub/interfaces/api/middleware"
	"coursehub/interfaces/api/routes"
	"coursehub/pkg/di"
	"coursehub/pkg/logger"
)

func main() {
	// Initialize DI container
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		// ใช้ panic เพราะ logger อาจยังไม่ init
		panic("Failed to initialize container: " + err.Error())
	}

	setupGracefulShutdown(container)

	cfg := container.GetConfig()

	// Server-rendered views
	engine := html.New("./web/views", ".html")
	if cfg.IsDevelopment() {
		engine.Reload(true)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      cfg.App.Name,
		Views:        engine,
		// เผื่อ multipart overhead เหนือ limit ของไฟล์เอง
		BodyLimit: int(cfg.Storage.MaxUploadSize) + 1024*1024,
	})

	// Setup middleware (order matters!)
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.MethodOverride()) // HTML form จำลอง PUT/DELETE ผ่าน _method

	app.Static("/public", "./web/public")

	services := container.GetHandlerServices()
	h := handlers.NewHandlers(services)

	gates := routes.NewGates(
		container.SessionService,
		cfg.Session.CookieName,
		cfg.Storage.RequireAuthForFileRoutes,
	)
	routes.SetupRoutes(app, h, gates)

	port := cfg.App.Port
	logger.Info("Server starting",
		"port", port,
		"env", cfg.App.Env,
		"app", cfg.App.Name,
	)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
