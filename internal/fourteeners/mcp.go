package fourteeners

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	apierrors "github.com/colemanhs/fourteeners-mcp-server/internal/errors"
	"github.com/colemanhs/fourteeners-mcp-server/internal/weather"
	"github.com/colemanhs/fourteeners-mcp-server/internal/widgets"
)

// Repository is the data access surface the executors need. *Store
// satisfies it; tests swap in fakes.
type Repository interface {
	SearchMountains(ctx context.Context, q *Query) ([]Mountain, error)
	SearchRoutes(ctx context.Context, q *Query) ([]Route, error)
	FindMountain(ctx context.Context, name string) (*Mountain, error)
	CountRoutes(ctx context.Context, mountainName string) (int, error)
}

// ForecastProvider fetches NWS forecast periods for a coordinate pair.
type ForecastProvider interface {
	GetForecast(ctx context.Context, lat, lon float64) ([]weather.Period, error)
}

// Service implements the four tool executors against a Repository and a
// ForecastProvider.
type Service struct {
	repo      Repository
	forecasts ForecastProvider
	logger    *slog.Logger
}

// NewService wires the executors to their dependencies.
func NewService(repo Repository, forecasts ForecastProvider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, forecasts: forecasts, logger: logger}
}

// Presentation hints attached to multi-result payloads so clients render
// them consistently.
const (
	mountainsFormattingInstructions = "Use a table when presenting multiple mountains to the user. After showing results, suggest: checking details for a specific mountain, finding routes, or checking weather conditions."
	routesFormattingInstructions    = "Use a table when presenting multiple routes. Provide personalized recommendations based on user preferences (experience level, distance, difficulty). After showing routes, suggest checking weather with get_weather if not already done."
	weatherFormattingInstructions   = "Use a table for multi-day forecasts. Use emojis to represent weather conditions (☀️ sunny, ⛅ partly sunny, ☁️ cloudy, \U0001f4a8 windy, \U0001f32b️ foggy, \U0001f327️ rain, ❄️ snow, ⛈️ storms). Provide advice on the best day to go based on weather conditions."
)

const noMountainsMessage = "No mountains found matching the criteria. " +
	"Note: By default, unranked mountains are excluded. " +
	"Try using 'rank_filter: \"include_all\"' to include all mountains."

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

// GetMountains searches the mountains table with dynamic filters.
func (s *Service) GetMountains(ctx context.Context, req *mcp.CallToolRequest, args GetMountainsArgs) (*mcp.CallToolResult, GetMountainsResult, error) {
	filter, err := ValidateMountains(args)
	if err != nil {
		return errorResult("Input validation error: %v", err), GetMountainsResult{}, nil
	}

	mountains, err := s.repo.SearchMountains(ctx, BuildMountainQuery(filter))
	if err != nil {
		s.logger.Error("mountain search failed", "error", err)
		return errorResult("Failed to query mountains: %v", err), GetMountainsResult{}, nil
	}

	result := GetMountainsResult{Mountains: mountains}
	if len(mountains) == 0 {
		result.Mountains = []Mountain{}
		return textResult(noMountainsMessage), result, nil
	}

	blocks := make([]string, len(mountains))
	for i, m := range mountains {
		blocks[i] = FormatMountain(m)
	}
	text := fmt.Sprintf("Found %d mountain(s):\n\n", len(mountains)) + strings.Join(blocks, "\n\n")

	if len(mountains) > 1 {
		result.FormattingInstructions = mountainsFormattingInstructions
	}

	res := textResult(text)
	res.Meta = widgets.InvocationMeta(widgets.MountainsMap)
	return res, result, nil
}

// GetRoutes searches the routes table with dynamic filters.
func (s *Service) GetRoutes(ctx context.Context, req *mcp.CallToolRequest, args GetRoutesArgs) (*mcp.CallToolResult, GetRoutesResult, error) {
	filter, err := ValidateRoutes(args)
	if err != nil {
		return errorResult("Input validation error: %v", err), GetRoutesResult{}, nil
	}

	routes, err := s.repo.SearchRoutes(ctx, BuildRouteQuery(filter))
	if err != nil {
		s.logger.Error("route search failed", "error", err)
		return errorResult("Failed to query routes: %v", err), GetRoutesResult{}, nil
	}

	result := GetRoutesResult{Routes: routes}
	if len(routes) == 0 {
		result.Routes = []Route{}
		return textResult("No routes found matching the criteria."), result, nil
	}

	blocks := make([]string, len(routes))
	for i, rt := range routes {
		blocks[i] = FormatRoute(rt)
	}
	text := fmt.Sprintf("Found %d route(s):\n\n", len(routes)) + strings.Join(blocks, "\n\n")

	if len(routes) > 1 {
		result.FormattingInstructions = routesFormattingInstructions
	}
	return textResult(text), result, nil
}

// GetMountainInfo looks up a single mountain and its route count. A name
// that matches nothing is a successful empty result, not an error.
func (s *Service) GetMountainInfo(ctx context.Context, req *mcp.CallToolRequest, args GetMountainInfoArgs) (*mcp.CallToolResult, GetMountainInfoResult, error) {
	if err := ValidateMountainName(args.MountainName); err != nil {
		return errorResult("Input validation error: %v", err), GetMountainInfoResult{}, nil
	}

	mountain, err := s.repo.FindMountain(ctx, args.MountainName)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return textResult("No mountain found matching the criteria."), GetMountainInfoResult{}, nil
		}
		s.logger.Error("mountain lookup failed", "error", err)
		return errorResult("Failed to get mountain information: %v", err), GetMountainInfoResult{}, nil
	}

	routeCount, err := s.repo.CountRoutes(ctx, mountain.Name)
	if err != nil {
		s.logger.Error("route count failed", "mountain", mountain.Name, "error", err)
		return errorResult("Failed to get mountain information: %v", err), GetMountainInfoResult{}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Mountain: %s\n", mountain.Name)
	if mountain.Elevation != 0 {
		fmt.Fprintf(&b, "Elevation: %s\n", mountain.ElevationFt)
	}
	if mountain.Rank != nil {
		fmt.Fprintf(&b, "Rank: %d\n", *mountain.Rank)
	}
	if mountain.County != "" {
		fmt.Fprintf(&b, "County: %s\n", mountain.County)
	}
	if mountain.NearbyTowns != "" {
		fmt.Fprintf(&b, "Nearby Towns: %s\n", mountain.NearbyTowns)
	}
	fmt.Fprintf(&b, "Number of Routes: %d\n", routeCount)

	res := textResult(b.String())
	res.Meta = widgets.InvocationMeta(widgets.MountainInfo)
	return res, GetMountainInfoResult{Mountain: mountain, RouteCount: routeCount}, nil
}

// GetWeather resolves a mountain name to coordinates and fetches its NWS
// forecast. Each distinct failure mode gets its own message so callers
// can tell a coverage gap from an outage.
func (s *Service) GetWeather(ctx context.Context, req *mcp.CallToolRequest, args GetWeatherArgs) (*mcp.CallToolResult, GetWeatherResult, error) {
	if err := ValidateMountainName(args.MountainName); err != nil {
		return errorResult("Input validation error: %v", err), GetWeatherResult{}, nil
	}

	mountain, err := s.repo.FindMountain(ctx, args.MountainName)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return errorResult("Error: No mountain found matching '%s'. Please check the mountain name and try again.", args.MountainName), GetWeatherResult{}, nil
		}
		s.logger.Error("mountain lookup failed", "error", err)
		return errorResult("Failed to get weather: %v", err), GetWeatherResult{}, nil
	}

	if !mountain.HasCoordinates() {
		return errorResult("Error: Mountain '%s' does not have GPS coordinates in the database.", mountain.Name), GetWeatherResult{}, nil
	}

	lat, lon := *mountain.Latitude, *mountain.Longitude
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return errorResult("Error: Invalid coordinates for mountain '%s'.", mountain.Name), GetWeatherResult{}, nil
	}

	periods, err := s.forecasts.GetForecast(ctx, lat, lon)
	if err != nil {
		return s.weatherError(mountain.Name, lat, lon, err), GetWeatherResult{}, nil
	}

	snapshot := weather.BuildSnapshot(mountain.Name, lat, lon, periods)
	if len(periods) == 0 {
		return textResult(fmt.Sprintf("No forecast periods available for %s.", mountain.Name)),
			GetWeatherResult{Weather: snapshot}, nil
	}

	return textResult(snapshot.Format()), GetWeatherResult{
		Weather:                snapshot,
		FormattingInstructions: weatherFormattingInstructions,
	}, nil
}

// weatherError maps forecast chain failures onto user-facing messages.
func (s *Service) weatherError(mountainName string, lat, lon float64, err error) *mcp.CallToolResult {
	s.logger.Error("weather fetch failed", "mountain", mountainName, "error", err)

	if weather.IsRegionNotCovered(err) {
		return errorResult("Error: No weather data available for %s at coordinates (%v, %v). The location may be outside the NWS coverage area.", mountainName, lat, lon)
	}

	if status, ok := weather.IsStatus(err); ok {
		if status.Stage == "points" {
			return errorResult("Error: Failed to get weather grid point: HTTP %d", status.Code)
		}
		return errorResult("Error: Failed to get weather forecast: HTTP %d", status.Code)
	}

	if network, ok := weather.IsNetwork(err); ok {
		if network.Stage == "points" {
			return errorResult("Error: Network error connecting to NWS API: %v", network.Err)
		}
		return errorResult("Error: Network error getting forecast: %v", network.Err)
	}

	if malformed, ok := weather.IsMalformed(err); ok {
		if malformed.Stage == "points" {
			return errorResult("Error: Invalid response from NWS API - forecast URL not found.")
		}
		return errorResult("Error: Invalid forecast response - periods not found.")
	}

	return errorResult("Failed to get weather: %v", err)
}
