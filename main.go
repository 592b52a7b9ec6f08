// Fourteeners MCP Server - A Model Context Protocol server for Colorado
// 14er data. Provides mountain and route search, mountain details, and
// NWS weather forecasts, with widget UI resources for capable clients.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/colemanhs/fourteeners-mcp-server/internal/fourteeners"
	"github.com/colemanhs/fourteeners-mcp-server/internal/weather"
	"github.com/colemanhs/fourteeners-mcp-server/internal/widgets"
	"github.com/colemanhs/fourteeners-mcp-server/tools"
	"github.com/colemanhs/fourteeners-mcp-server/tracing"
)

const (
	ServerName    = "fourteeners-mcp-server"
	ServerVersion = "1.0.0"

	defaultAssetsDir = "internal/widgets/assets"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration from environment (.env supported)
	config, err := fourteeners.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize tracing
	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() { _ = shutdown(ctx) }()

	// Connect to Postgres
	pool, err := pgxpool.New(ctx, config.DSN())
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Wire the service
	store := fourteeners.NewStore(pool, config.ImageBaseURL, logger)
	forecasts := weather.NewClient(logger)
	service := fourteeners.NewService(store, forecasts, logger)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `Fourteeners MCP Server provides tools for exploring Colorado's 14,000-foot mountains.

Available tools:
- get_mountains: Search and filter 14er mountains (elevation, rank, range, county, nearby towns)
- get_routes: Search climbing routes (difficulty, distance, elevation gain, snow/standard status)
- get_mountain_info: Get details and route count for a specific mountain
- get_weather: Get NWS current conditions and multi-day forecast for a mountain

Naming quirk: the dataset uses 'Mt.' rather than 'Mount' (e.g., 'Mt. Elbert').
By default get_mountains excludes unranked mountains; pass rank_filter 'include_all' for every peak.

Configure via environment variables:
- DB_HOST, DB_PORT, DB_USER, DB_PASSWORD: Postgres connection (required)
- DB_NAME: Database name (default: postgres)
- METRICS_ADDR: Optional address for the Prometheus /metrics listener`,
	})

	// Register tools and widget resources
	registry := tools.NewHandlerRegistry(service, logger)
	registry.RegisterAll(server)

	assetsDir := os.Getenv("WIDGET_ASSETS_DIR")
	if assetsDir == "" {
		assetsDir = defaultAssetsDir
	}
	devReload := os.Getenv("WIDGET_DEV_RELOAD") != "false"
	widgetRegistry := widgets.NewRegistry(assetsDir, devReload, logger)
	widgetRegistry.RegisterResources(server)

	// Optional metrics listener; the MCP transport itself is stdio
	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			logger.Info("Serving metrics", "addr", addr)
			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Error("Metrics listener failed", "error", err)
			}
		}()
	}

	// Run server on stdio transport
	logger.Info("Starting Fourteeners MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"db_host", config.DBHost,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
