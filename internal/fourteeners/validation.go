package fourteeners

import (
	"strings"

	apierrors "github.com/colemanhs/fourteeners-mcp-server/internal/errors"
)

// Limit policy shared by both record kinds.
const (
	DefaultLimit = 10
	MaxLimit     = 1000
)

// Rank filter tokens. Any other token is parsed as a rank number by the
// query builder; unparseable tokens contribute no predicate.
const (
	RankExcludeUnranked = "exclude_unranked"
	RankOnlyUnranked    = "only_unranked"
	RankIncludeAll      = "include_all"
)

// Sort field allow-lists per record kind.
var (
	mountainOrderFields = map[string]bool{"elevation": true, "rank": true}
	routeOrderFields    = map[string]bool{
		"roundtrip_distance": true,
		"elevation_gain":     true,
		"route_difficulty":   true,
		"mountain_name":      true,
	}
)

// MountainFilter is the validated, fully-defaulted filter specification for
// a mountain search. It is built per request and never persisted.
type MountainFilter struct {
	Limit          int
	OrderBy        string
	OrderDirection string
	RankFilter     string
	MinElevation   *int
	MaxElevation   *int
	NameSearch     string
	Range          string
	County         string
	NearbyTowns    string
}

// RouteFilter is the validated, fully-defaulted filter specification for a
// route search.
type RouteFilter struct {
	Limit            int
	OrderBy          string
	OrderDirection   string
	MountainName     string
	RouteName        string
	RouteDifficulty  []string
	Range            string
	Snow             *bool
	Standard         *bool
	MinDistance      *float64
	MaxDistance      *float64
	MinElevationGain *int
	MaxElevationGain *int
}

// normalizeLimit applies the default and clamps to [1, MaxLimit]. A zero
// value means the caller omitted the field.
func normalizeLimit(limit int) int {
	if limit == 0 {
		return DefaultLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// normalizeOrderBy falls back to def when v is empty or not in the
// allow-list. Invalid sort fields are corrected, not rejected.
func normalizeOrderBy(v string, valid map[string]bool, def string) string {
	if v == "" || !valid[v] {
		return def
	}
	return v
}

// normalizeOrderDirection upper-cases v and falls back to def unless the
// result is ASC or DESC.
func normalizeOrderDirection(v, def string) string {
	if v == "" {
		return def
	}
	upper := strings.ToUpper(v)
	if upper != "ASC" && upper != "DESC" {
		return def
	}
	return upper
}

// ValidateMountains normalizes mountain search arguments into a filter
// specification. Sort fields use the leniency policy (silent fallback);
// there are no strict failure modes for this kind beyond what the argument
// schema already rejects.
func ValidateMountains(args GetMountainsArgs) (MountainFilter, error) {
	return MountainFilter{
		Limit:          normalizeLimit(args.Limit),
		OrderBy:        normalizeOrderBy(args.OrderBy, mountainOrderFields, "elevation"),
		OrderDirection: normalizeOrderDirection(args.OrderDirection, "DESC"),
		RankFilter:     args.RankFilter,
		MinElevation:   args.MinElevation,
		MaxElevation:   args.MaxElevation,
		NameSearch:     args.NameSearch,
		Range:          args.MountainRange,
		County:         args.County,
		NearbyTowns:    args.NearbyTowns,
	}, nil
}

// ValidateRoutes normalizes route search arguments into a filter
// specification. Out-of-enum difficulty values are a strict failure; the
// error lists every offending entry.
func ValidateRoutes(args GetRoutesArgs) (RouteFilter, error) {
	verr := &apierrors.ValidationError{}
	for _, d := range args.RouteDifficulty {
		if !IsValidDifficulty(d) {
			verr.Add("route_difficulty", d, "not a recognized difficulty class")
		}
	}
	if !verr.Empty() {
		return RouteFilter{}, verr
	}

	return RouteFilter{
		Limit:            normalizeLimit(args.Limit),
		OrderBy:          normalizeOrderBy(args.OrderBy, routeOrderFields, "mountain_name"),
		OrderDirection:   normalizeOrderDirection(args.OrderDirection, "ASC"),
		MountainName:     args.MountainName,
		RouteName:        args.RouteName,
		RouteDifficulty:  args.RouteDifficulty,
		Range:            args.Range,
		Snow:             args.Snow,
		Standard:         args.Standard,
		MinDistance:      args.MinDistance,
		MaxDistance:      args.MaxDistance,
		MinElevationGain: args.MinElevationGain,
		MaxElevationGain: args.MaxElevationGain,
	}, nil
}

// ValidateMountainName checks the required name argument for the info and
// weather lookups. Absence is a strict failure, not a default.
func ValidateMountainName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apierrors.NewValidationError("mountain_name", "", "is required")
	}
	return nil
}
