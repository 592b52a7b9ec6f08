package tools

import "github.com/colemanhs/fourteeners-mcp-server/internal/widgets"

// AllTools contains all tool specifications for the fourteeners MCP server.
// Descriptions mirror the dataset's quirks (Mt. Elbert, not Mount Elbert)
// and tell the LLM how to present results, which measurably improves tool
// selection and follow-up suggestions.
var AllTools = []ToolSpec{
	{
		Name:        "get_mountains",
		Method:      "GetMountains",
		Title:       "Get Mountains",
		Category:    "search",
		Description: "Search and filter Colorado 14er mountains. Returns mountain details including name, elevation, rank, range, county, location, and nearby towns. Results are displayed in an interactive map widget. Use this when users ask about mountains, peaks, hiking, elevation, or geographic information. Presentation format: use a table when presenting multiple mountains. After showing results, suggest: checking details for a specific mountain, finding routes, or checking weather.",
		Widget:      &widgets.MountainsMap,
		ReadOnly:    true,
		Idempotent:  true,
	},
	{
		Name:        "get_routes",
		Method:      "GetRoutes",
		Title:       "Get Routes",
		Category:    "search",
		Description: "Get climbing routes for Colorado 14ers. Returns route details including difficulty, distance, elevation gain, risk factors, and snow/standard status. Use this when users ask about routes, trails, or route planning. Presentation format: use a table when presenting multiple routes, provide personalized recommendations based on user preferences (experience level, distance, difficulty). After showing routes, suggest checking weather if not already done.",
		ReadOnly:    true,
		Idempotent:  true,
	},
	{
		Name:        "get_mountain_info",
		Method:      "GetMountainInfo",
		Title:       "Get Mountain Information",
		Category:    "info",
		Description: "Get detailed information about a specific Colorado 14er mountain. Returns name, elevation, rank, county, nearby towns, and route count. Results are displayed in a visual widget. Use this when users ask about a specific mountain. After getting mountain info, suggest checking routes or weather.",
		Widget:      &widgets.MountainInfo,
		ReadOnly:    true,
		Idempotent:  true,
	},
	{
		Name:        "get_weather",
		Method:      "GetWeather",
		Title:       "Get Weather",
		Category:    "weather",
		Description: "Get weather forecast for a specific Colorado 14er mountain. Returns current conditions and multi-day forecast with temperature, wind speed/direction, and detailed descriptions. The forecast includes multiple periods (typically day/night cycles). Presentation format: use a table for multi-day forecasts, emojis for weather conditions (☀️ sunny, ⛅ partly sunny, ☁️ cloudy, \U0001f4a8 windy, \U0001f32b️ foggy, \U0001f327️ rain, ❄️ snow, ⛈️ storms), and provide advice on the best day to go based on weather conditions.",
		ReadOnly:    true,
	},
}

// ToolsByCategory returns the specs in a given category.
func ToolsByCategory(category string) []ToolSpec {
	var specs []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			specs = append(specs, spec)
		}
	}
	return specs
}

