package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/colemanhs/fourteeners-mcp-server/internal/fourteeners"
	"github.com/colemanhs/fourteeners-mcp-server/internal/widgets"
	"github.com/colemanhs/fourteeners-mcp-server/metrics"
	"github.com/colemanhs/fourteeners-mcp-server/tracing"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete executor implementations.
type HandlerRegistry struct {
	service *fourteeners.Service
	logger  *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(service *fourteeners.Service, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		service: service,
		logger:  logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "GetMountains":
		register(h, server, tool, spec, h.service.GetMountains)
	case "GetRoutes":
		register(h, server, tool, spec, h.service.GetRoutes)
	case "GetMountainInfo":
		register(h, server, tool, spec, h.service.GetMountainInfo)
	case "GetWeather":
		register(h, server, tool, spec, h.service.GetWeather)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec. Tools backed by a widget
// carry the widget metadata so clients know the result can render.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:           spec.Title,
		ReadOnlyHint:    spec.ReadOnly,
		IdempotentHint:  spec.Idempotent,
		DestructiveHint: ptr(spec.Destructive),
		OpenWorldHint:   ptr(spec.OpenWorld),
	}

	tool := &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
	if spec.Widget != nil {
		tool.Meta = widgets.ToolMeta(*spec.Widget)
	}
	return tool
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the executor with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, *mcp.CallToolRequest, Args) (*mcp.CallToolResult, Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		res, result, err := method(ctx, req, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		// Executors surface user-facing failures as in-band error
		// results rather than Go errors.
		if res != nil && res.IsError {
			span.SetStatus(codes.Error, "tool returned error result")
			metrics.RecordRequest(spec.Name, duration, false)
			return res, result, nil
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return res, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}

	switch a := args.(type) {
	case fourteeners.GetMountainsArgs:
		if a.NameSearch != "" {
			attrs = append(attrs, "name_search", a.NameSearch)
		}
		if a.RankFilter != "" {
			attrs = append(attrs, "rank_filter", a.RankFilter)
		}
	case fourteeners.GetRoutesArgs:
		if a.MountainName != "" {
			attrs = append(attrs, "mountain_name", a.MountainName)
		}
	case fourteeners.GetMountainInfoArgs:
		attrs = append(attrs, "mountain_name", a.MountainName)
	case fourteeners.GetWeatherArgs:
		attrs = append(attrs, "mountain_name", a.MountainName)
	}

	switch r := result.(type) {
	case fourteeners.GetMountainsResult:
		attrs = append(attrs, "results_count", len(r.Mountains))
	case fourteeners.GetRoutesResult:
		attrs = append(attrs, "results_count", len(r.Routes))
	case fourteeners.GetMountainInfoResult:
		attrs = append(attrs, "found", r.Mountain != nil, "route_count", r.RouteCount)
	case fourteeners.GetWeatherResult:
		attrs = append(attrs, "forecast_periods", len(r.Weather.Forecast))
	}

	h.logger.Info("Tool executed", attrs...)
}
