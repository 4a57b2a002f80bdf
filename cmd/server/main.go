package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hajj-admin/internal/config"
	"hajj-admin/internal/database"
	"hajj-admin/internal/filestore"
	"hajj-admin/internal/routes"
	"hajj-admin/pkg/logger"
	"hajj-admin/pkg/metrics"
)

func main() {
	log := logger.NewLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("loading config", "error", err)
	}

	client, err := database.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatal("connecting to mongodb", "error", err)
	}
	defer database.Disconnect(client)
	db := client.Database(cfg.MongoDB)
	log.Info("connected to mongodb", "database", cfg.MongoDB)

	store, err := filestore.New(cfg.UploadDir)
	if err != nil {
		log.Fatal("preparing upload directories", "error", err)
	}

	m := metrics.NewMetrics("hajj_admin")

	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		m.HTTPRequests.WithLabelValues(c.Route().Path, statusLabel(c, err)).Inc()
		return err
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Static("/uploads", cfg.UploadDir)

	routes.Register(app, routes.Deps{
		DB:        db,
		Store:     store,
		Log:       log,
		Metrics:   m,
		JWTSecret: cfg.JWTSecret,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("server stopped", "error", err)
		}
	}()
	log.Info("server listening", "port", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error("shutdown", "error", err)
	}
}

// errorHandler turns fiber errors into the JSON error envelope the
// frontend expects.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}

func statusLabel(c *fiber.Ctx, err error) string {
	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	return strconv.Itoa(status)
}
