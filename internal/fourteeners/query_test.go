package fourteeners

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
)

var placeholderRe = regexp.MustCompile(`\$(\d+)`)

// checkBoundParams verifies the placeholder/parameter invariant: the text
// references exactly $1..$n in some order and params has length n.
func checkBoundParams(t *testing.T, sql string, params []any) {
	t.Helper()

	matches := placeholderRe.FindAllStringSubmatch(sql, -1)
	seen := make(map[string]bool)
	for _, m := range matches {
		seen[m[1]] = true
	}
	if len(seen) != len(params) {
		t.Errorf("placeholder count %d != param count %d in %q", len(seen), len(params), sql)
	}
	for i := 1; i <= len(params); i++ {
		if !seen[fmt.Sprint(i)] {
			t.Errorf("missing placeholder $%d in %q", i, sql)
		}
	}
}

func TestBuildMountainQueryDefaults(t *testing.T) {
	f, _ := ValidateMountains(GetMountainsArgs{})
	sql, params := BuildMountainQuery(f).Render()

	if !strings.HasPrefix(sql, "SELECT "+mountainColumns+" FROM mountains WHERE 1=1") {
		t.Errorf("unexpected query prefix: %q", sql)
	}
	// Default rank filter excludes unranked rows without binding a value.
	if !strings.Contains(sql, "rank IS NOT NULL") {
		t.Errorf("default query should exclude unranked: %q", sql)
	}
	if !strings.Contains(sql, "ORDER BY elevation DESC") {
		t.Errorf("missing default order: %q", sql)
	}
	if !strings.Contains(sql, "LIMIT $1") {
		t.Errorf("missing limit placeholder: %q", sql)
	}
	if len(params) != 1 || params[0] != DefaultLimit {
		t.Errorf("params = %v, want [%d]", params, DefaultLimit)
	}
	checkBoundParams(t, sql, params)
}

func TestBuildMountainQueryRankFilter(t *testing.T) {
	tests := []struct {
		name       string
		rankFilter string
		wantSQL    string
	}{
		{"empty excludes unranked", "", "rank IS NOT NULL"},
		{"explicit exclude", RankExcludeUnranked, "rank IS NOT NULL"},
		{"only unranked", RankOnlyUnranked, "rank IS NULL"},
		{"numeric token is equality", "2", "rank = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := ValidateMountains(GetMountainsArgs{RankFilter: tt.rankFilter})
			sql, params := BuildMountainQuery(f).Render()

			if !strings.Contains(sql, tt.wantSQL) {
				t.Errorf("query %q should contain %q", sql, tt.wantSQL)
			}
			checkBoundParams(t, sql, params)
		})
	}

	// include_all and unparseable tokens both contribute no rank predicate.
	for _, token := range []string{RankIncludeAll, "abc"} {
		f, _ := ValidateMountains(GetMountainsArgs{RankFilter: token})
		sql, _ := BuildMountainQuery(f).Render()
		if strings.Contains(sql, "rank IS") || strings.Contains(sql, "rank =") {
			t.Errorf("rank_filter %q should add no predicate: %q", token, sql)
		}
	}
}

func TestBuildMountainQueryRankEquality(t *testing.T) {
	f, _ := ValidateMountains(GetMountainsArgs{RankFilter: "2"})
	sql, params := BuildMountainQuery(f).Render()

	if !strings.Contains(sql, "rank = $1") {
		t.Errorf("numeric rank should bind a parameter: %q", sql)
	}
	if len(params) != 2 {
		t.Fatalf("params = %v, want rank value plus limit", params)
	}
	if params[0] != 2 {
		t.Errorf("rank param = %v, want 2", params[0])
	}
}

func TestBuildMountainQueryFilters(t *testing.T) {
	minEl, maxEl := 14000, 14300
	f, _ := ValidateMountains(GetMountainsArgs{
		MinElevation:  &minEl,
		MaxElevation:  &maxEl,
		NameSearch:    "Elbert",
		MountainRange: "Sawatch",
		County:        "Lake",
		NearbyTowns:   "Leadville",
		RankFilter:    RankIncludeAll,
	})
	sql, params := BuildMountainQuery(f).Render()

	for _, want := range []string{
		"elevation >= $1",
		"elevation <= $2",
		"mountain_name ILIKE $3",
		"mountain_range ILIKE $4",
		"county ILIKE $5",
		"nearby_towns ILIKE $6",
		"LIMIT $7",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("query %q should contain %q", sql, want)
		}
	}

	// Substring filters are wrapped for partial matching; the raw value
	// never appears in the query text.
	if params[2] != "%Elbert%" {
		t.Errorf("name param = %v, want %%Elbert%%", params[2])
	}
	if strings.Contains(sql, "Elbert") {
		t.Errorf("caller value leaked into query text: %q", sql)
	}
	checkBoundParams(t, sql, params)
}

func TestBuildRouteQueryDifficultyIn(t *testing.T) {
	tests := []struct {
		name         string
		difficulties []string
		wantSQL      string
	}{
		{"empty set adds nothing", nil, "FROM routes WHERE 1=1 ORDER BY"},
		{"single value is equality", []string{"Class 3"}, "route_difficulty = $1"},
		{"multiple values use IN", []string{"Class 1", "Class 2", "Easy Class 3"}, "route_difficulty IN ($1,$2,$3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ValidateRoutes(GetRoutesArgs{RouteDifficulty: tt.difficulties})
			if err != nil {
				t.Fatalf("ValidateRoutes() error: %v", err)
			}
			sql, params := BuildRouteQuery(f).Render()

			if !strings.Contains(sql, tt.wantSQL) {
				t.Errorf("query %q should contain %q", sql, tt.wantSQL)
			}
			checkBoundParams(t, sql, params)
		})
	}
}

func TestBuildRouteQueryFilters(t *testing.T) {
	snow := true
	standard := false
	minDist, maxDist := 4.5, 12.0
	minGain, maxGain := 2000, 5500
	f, err := ValidateRoutes(GetRoutesArgs{
		MountainName:     "Longs",
		RouteName:        "North",
		Range:            "Front",
		Snow:             &snow,
		Standard:         &standard,
		MinDistance:      &minDist,
		MaxDistance:      &maxDist,
		MinElevationGain: &minGain,
		MaxElevationGain: &maxGain,
		OrderBy:          "elevation_gain",
		OrderDirection:   "DESC",
	})
	if err != nil {
		t.Fatalf("ValidateRoutes() error: %v", err)
	}
	sql, params := BuildRouteQuery(f).Render()

	for _, want := range []string{
		"mountain_name ILIKE",
		"route_name ILIKE",
		`"range" ILIKE`,
		"snow =",
		"standard =",
		"roundtrip_distance >=",
		"roundtrip_distance <=",
		"elevation_gain >=",
		"elevation_gain <=",
		"ORDER BY elevation_gain DESC",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("query %q should contain %q", sql, want)
		}
	}
	checkBoundParams(t, sql, params)
}

func TestRenderLimitCap(t *testing.T) {
	q := &Query{table: "mountains", columns: mountainColumns, limit: 5000}
	sql, params := q.Render()

	if !strings.Contains(sql, "LIMIT $1") {
		t.Errorf("missing limit: %q", sql)
	}
	if params[0] != MaxLimit {
		t.Errorf("limit param = %v, want %d", params[0], MaxLimit)
	}
}

func TestRenderNoLimit(t *testing.T) {
	q := &Query{table: "routes", columns: routeColumns}
	sql, params := q.Render()

	if strings.Contains(sql, "LIMIT") {
		t.Errorf("zero limit should omit the clause: %q", sql)
	}
	if len(params) != 0 {
		t.Errorf("params = %v, want none", params)
	}
}

func TestBuildMountainLookup(t *testing.T) {
	sql, params := BuildMountainLookup("Mt. Elbert").Render()

	if !strings.Contains(sql, "mountain_name ILIKE $1") {
		t.Errorf("lookup should match by name: %q", sql)
	}
	if !strings.Contains(sql, "LIMIT $2") {
		t.Errorf("lookup should cap to one row: %q", sql)
	}
	if params[0] != "%Mt. Elbert%" || params[1] != 1 {
		t.Errorf("params = %v", params)
	}
	if strings.Contains(sql, "ORDER BY") {
		t.Errorf("lookup should not order: %q", sql)
	}
}
