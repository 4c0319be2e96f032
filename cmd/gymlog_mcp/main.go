// Package main runs the gymlog MCP server over stdio, for local MCP clients.
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/config"
	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/gymstats/exercises"
	gymlogmcp "github.com/2beens/gymlog/internal/gymstats/mcp"
	"github.com/2beens/gymlog/internal/gymstats/progress"
	"github.com/2beens/gymlog/internal/gymstats/workouts"
	"github.com/2beens/gymlog/internal/telemetry/metrics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("GYMLOG_POSTGRES_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	// stdout belongs to the MCP transport, metrics are only kept in memory
	metricsManager := metrics.NewManager("gymlog", "mcp_stdio", prometheus.NewRegistry())

	catalog := exercises.NewCatalog(exercises.NewRepo(dbPool), cfg.CatalogCacheSizeMB)
	caches := progress.NewCaches(auth.NewBroker(), metricsManager)
	defer caches.Close()

	logsRepo := workouts.NewLogsRepo(dbPool)
	workoutsService := workouts.NewService(
		workouts.NewSessionList(workouts.NewSessionsRepo(dbPool)),
		logsRepo,
		catalog,
		caches,
		metricsManager,
	)
	progressService := progress.NewService(catalog, logsRepo, workoutsService, caches, metricsManager)

	server := gymlogmcp.NewServer(dbPool, progressService)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
