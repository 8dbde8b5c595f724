package main

import (
	"fmt"
	"net/http"
	"os"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"train_routes/internal/bootstrap"
	"train_routes/internal/config"
	"train_routes/internal/controllers"
	"train_routes/internal/database"
	"train_routes/internal/logger"
	"train_routes/internal/middleware"
	"train_routes/internal/routes"
	"train_routes/internal/schedule"
)

func main() {
	envFile := pflag.String("env-file", "", "Read configuration from this file instead of .env")
	addr := pflag.String("addr", "", "Listen address (defaults to HTTP_ADDR)")
	pflag.Parse()

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.HTTPAddr = *addr
	}

	// Initialize structured logging to file
	log, err := logger.New(cfg)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	// Connect to the database
	gdb, err := config.OpenDB(cfg, logger.GormLogger(log))
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	db := database.New(gdb, log)
	defer func() { _ = db.Close() }()

	fixture, err := bootstrap.DefaultFixture()
	if err != nil {
		log.Fatalf("failed to load seed data: %v", err)
	}
	if err := bootstrap.New(db, fixture, log).Run(cfg.Schema); err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}

	resolver := schedule.NewResolver(db, log)
	registry := schedule.NewRegistry(db, schedule.NewAssembler(db, resolver, log), log)
	if err := registry.Reload(); err != nil {
		log.Fatalf("failed to load routes: %v", err)
	}

	// Setup Gin router with request logging and recovery middleware
	r := routes.SetupRouter(
		controllers.NewScheduleController(registry, log),
		ginlog.SetLogger(),
		gin.Recovery(),
	)

	// Wrap with CORS
	handler := middleware.EnableCORS(r, cfg.CORSOrigins...)

	log.WithField("addr", cfg.HTTPAddr).Info("Schedule board running")
	fmt.Printf("Schedule board running at %s\n", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, handler); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
