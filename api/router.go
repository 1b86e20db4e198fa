package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/metrics"
)

// NewApp wires the scheduler routes and the metrics endpoint.
func NewApp(handler SchedulerHandler) *fiber.App {
	metrics.Register()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(requestLogger)
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/2xfcfs", handler.TwoLevelFirstComeFirstServe)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/schedule/:algorithm", handler.Algorithm)
		v1.Get("/presets", handler.Presets)
	}

	return app
}

func requestLogger(ctx *fiber.Ctx) error {
	start := time.Now()
	err := ctx.Next()
	logrus.WithFields(logrus.Fields{
		"method":  ctx.Method(),
		"path":    ctx.Path(),
		"status":  ctx.Response().StatusCode(),
		"latency": time.Since(start),
	}).Info("request")
	return err
}
