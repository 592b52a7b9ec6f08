package fourteeners

import "github.com/colemanhs/fourteeners-mcp-server/internal/weather"

// GetMountainsArgs contains the optional filters for mountain search.
// Absent fields apply no filter; invalid sort fields fall back to defaults.
type GetMountainsArgs struct {
	Limit          int      `json:"limit,omitempty" jsonschema_description:"Maximum number of results (default: 10, max: 1000)."`
	MinElevation   *int     `json:"min_elevation,omitempty" jsonschema_description:"Minimum elevation in feet. Example: 14000 for 14ers. Can combine with max_elevation."`
	MaxElevation   *int     `json:"max_elevation,omitempty" jsonschema_description:"Maximum elevation in feet. Can combine with min_elevation."`
	RankFilter     string   `json:"rank_filter,omitempty" jsonschema_description:"Rank filter. CRITICAL: Default excludes unranked mountains. Values: 'include_all' (all mountains), 'only_unranked', 'exclude_unranked' (default), or rank number like '1', '2'. Use 'include_all' for comprehensive results."`
	NameSearch     string   `json:"name_search,omitempty" jsonschema_description:"Mountain name filter. Case-insensitive partial matching. IMPORTANT: Use 'Mt.' not 'Mount' (e.g., 'Mt. Elbert' not 'Mount Elbert'). Examples: 'Longs' matches 'Longs Peak'."`
	MountainRange  string   `json:"mountain_range,omitempty" jsonschema_description:"Mountain range filter. Case-insensitive partial matching. IMPORTANT: Omit 'Range' (e.g., use 'Front' not 'Front Range')."`
	County         string   `json:"county,omitempty" jsonschema_description:"County filter. Case-insensitive partial matching. Example: 'Clear Creek' matches 'Clear Creek County'."`
	NearbyTowns    string   `json:"nearby_towns,omitempty" jsonschema_description:"Nearby towns filter. Case-insensitive partial matching. Example: 'Aspen' matches mountains near Aspen."`
	OrderBy        string   `json:"order_by,omitempty" jsonschema_description:"Sort field: 'elevation' (default) or 'rank'."`
	OrderDirection string   `json:"order_direction,omitempty" jsonschema_description:"Sort direction: 'DESC' (default, highest first) or 'ASC' (lowest first)."`
}

// GetMountainsResult is the structured payload for mountain search.
type GetMountainsResult struct {
	Mountains              []Mountain `json:"mountains"`
	FormattingInstructions string     `json:"formatting_instructions,omitempty"`
}

// GetRoutesArgs contains the optional filters for route search.
type GetRoutesArgs struct {
	Limit            int      `json:"limit,omitempty" jsonschema_description:"Maximum number of route records to return. Defaults to 10. Maximum allowed value is 1000."`
	MountainName     string   `json:"mountain_name,omitempty" jsonschema_description:"Mountain name filter. Case-insensitive partial matching. IMPORTANT: Use 'Mt.' not 'Mount' (e.g., 'Mt. Elbert' not 'Mount Elbert')."`
	RouteName        string   `json:"route_name,omitempty" jsonschema_description:"Route name filter. Case-insensitive partial matching. Example: 'North' matches routes with 'North' in the name."`
	RouteDifficulty  []string `json:"route_difficulty,omitempty" jsonschema_description:"Filter routes by difficulty class(es): Class 1-5, Difficult Class 2, Easy Class 3. Can select multiple values. Omit to include all."`
	Range            string   `json:"range,omitempty" jsonschema_description:"Mountain range filter. Case-insensitive partial matching. IMPORTANT: Omit 'Range' (e.g., use 'Front' not 'Front Range')."`
	Snow             *bool    `json:"snow,omitempty" jsonschema_description:"Filter by snow route status. true for only snow routes, false for only non-snow routes. Omit to include both."`
	Standard         *bool    `json:"standard,omitempty" jsonschema_description:"Filter by standard route status. true for only standard routes, false for only non-standard routes. Omit to include both."`
	MinDistance      *float64 `json:"min_distance,omitempty" jsonschema_description:"Only routes with roundtrip distance >= this value (miles). Can combine with max_distance."`
	MaxDistance      *float64 `json:"max_distance,omitempty" jsonschema_description:"Only routes with roundtrip distance <= this value (miles). Can combine with min_distance."`
	MinElevationGain *int     `json:"min_elevation_gain,omitempty" jsonschema_description:"Only routes with elevation gain >= this value (feet). Can combine with max_elevation_gain."`
	MaxElevationGain *int     `json:"max_elevation_gain,omitempty" jsonschema_description:"Only routes with elevation gain <= this value (feet). Can combine with min_elevation_gain."`
	OrderBy          string   `json:"order_by,omitempty" jsonschema_description:"Sort field: 'mountain_name' (default), 'roundtrip_distance', 'elevation_gain', or 'route_difficulty'. Invalid values fall back to the default."`
	OrderDirection   string   `json:"order_direction,omitempty" jsonschema_description:"Sort direction: 'ASC' (default) or 'DESC'. Invalid values fall back to the default."`
}

// GetRoutesResult is the structured payload for route search.
type GetRoutesResult struct {
	Routes                 []Route `json:"routes"`
	FormattingInstructions string  `json:"formatting_instructions,omitempty"`
}

// GetMountainInfoArgs identifies the mountain to look up.
type GetMountainInfoArgs struct {
	MountainName string `json:"mountain_name" jsonschema:"required" jsonschema_description:"Mountain name to look up. Case-insensitive partial matching supported. IMPORTANT: Use 'Mt.' not 'Mount' (e.g., 'Mt. Elbert' not 'Mount Elbert')."`
}

// GetMountainInfoResult is the structured payload for the mountain-info tool.
// A lookup that matches nothing returns a nil Mountain and zero RouteCount,
// not an error.
type GetMountainInfoResult struct {
	Mountain   *Mountain `json:"mountain"`
	RouteCount int       `json:"route_count"`
}

// GetWeatherArgs identifies the mountain to fetch a forecast for.
type GetWeatherArgs struct {
	MountainName string `json:"mountain_name" jsonschema:"required" jsonschema_description:"The name of the mountain to get weather for. Case-insensitive partial matching is supported. IMPORTANT: Use 'Mt.' not 'Mount' (e.g., 'Mt. Elbert' not 'Mount Elbert')."`
}

// GetWeatherResult is the structured payload for the weather tool.
type GetWeatherResult struct {
	Weather                weather.Snapshot `json:"weather"`
	FormattingInstructions string           `json:"formatting_instructions,omitempty"`
}
