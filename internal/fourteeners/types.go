// Package fourteeners provides query tools over the Colorado 14er dataset:
// mountain and route search with dynamic filtering, a composed mountain-info
// lookup, and an NWS weather forecast keyed by mountain name.
package fourteeners

// Mountain is the structured representation of a mountains row. Every field
// is always present in the JSON output; nullable columns marshal as explicit
// nulls via pointers.
type Mountain struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Rank        *int     `json:"rank"`
	Elevation   int      `json:"elevation"`
	ElevationFt string   `json:"elevation_ft"`
	Range       string   `json:"range"`
	County      string   `json:"county"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	NearbyTowns string   `json:"nearby_towns"`
	ImageURL    *string  `json:"image_url"`
	ImageFile   *string  `json:"image_filename"`
	MountainURL *string  `json:"mountain_url"`
}

// HasCoordinates reports whether both latitude and longitude are present.
// The dataset invariant is that they are either both set or both absent.
func (m *Mountain) HasCoordinates() bool {
	return m.Latitude != nil && m.Longitude != nil
}

// Route is the structured representation of a routes row. SnowDifficulty is
// attached only when the snow flag is true; for non-snow routes the key is
// omitted entirely rather than set to null.
type Route struct {
	MountainName      string   `json:"mountain_name"`
	RouteName         string   `json:"route_name"`
	RouteDifficulty   string   `json:"route_difficulty"`
	RoundtripDistance *float64 `json:"roundtrip_distance"`
	ElevationGain     *int     `json:"elevation_gain"`
	Range             string   `json:"range"`
	Snow              *bool    `json:"snow"`
	SnowDifficulty    *string  `json:"snow_difficulty,omitempty"`
	RiskExposure      *string  `json:"risk_factor_exposure"`
	RiskRockfall      *string  `json:"risk_factor_rockfall"`
	RiskRouteFinding  *string  `json:"risk_factor_route_finding"`
	RiskCommitment    *string  `json:"risk_factor_commitment"`
	RouteURL          *string  `json:"route_url"`
	Standard          *bool    `json:"standard"`
}

// Difficulty classes recognized by the routes table.
var ValidDifficulties = []string{
	"Class 1",
	"Class 2",
	"Class 3",
	"Class 4",
	"Class 5",
	"Difficult Class 2",
	"Easy Class 3",
}

// IsValidDifficulty reports whether d is one of the fixed difficulty classes.
func IsValidDifficulty(d string) bool {
	for _, v := range ValidDifficulties {
		if d == v {
			return true
		}
	}
	return false
}
