package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/Depado/ginprom"
	"github.com/aurowora/compress"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"

	"github.com/rm-hull/paypal-api/internal"
	"github.com/rm-hull/paypal-api/internal/routes"
	"github.com/rm-hull/paypal-api/internal/telemetry"
	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	hc_config "github.com/tavsec/gin-healthcheck/config"
)

var Version = "dev"

func ApiServer(dbPath string, port int, debug bool) error {

	shutdown, err := telemetry.InitTracer(context.Background(), "paypal-api", Version)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer shutdown()

	client, repo, err := bootstrap(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Printf("failed to close repository: %v", err)
		}
	}()

	cron, err := internal.StartCron(client, repo)
	if err != nil {
		return fmt.Errorf("failed to start CRON jobs: %w", err)
	}
	defer cron.Stop()

	r := gin.New()

	prometheus := ginprom.New(
		ginprom.Engine(r),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/healthz"),
	)

	r.Use(
		gin.Recovery(),
		gin.LoggerWithWriter(gin.DefaultWriter, "/healthz", "/metrics"),
		prometheus.Instrument(),
		compress.Compress(),
		cors.Default(),
	)

	if debug {
		log.Println("WARNING: pprof endpoints are enabled and exposed. Do not run with this flag in production.")
		pprof.Register(r)
	}

	err = healthcheck.New(r, hc_config.DefaultConfig(), []checks.Check{
		repo.Check(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize healthcheck: %v", err)
	}

	v1 := r.Group("/v1")
	v1.GET("/invoices", routes.Invoices(repo))
	v1.GET("/orders/:id", routes.GetOrder(client))
	v1.POST("/orders", routes.CreateOrder(client))
	v1.POST("/orders/:id/capture", routes.CaptureOrder(client))

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting HTTP API Server on port %d (%s)...", port, client.Environment())
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP API Server failed to start on port %d: %v", port, err)
	}

	return nil
}
