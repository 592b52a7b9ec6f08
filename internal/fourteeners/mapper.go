package fourteeners

import (
	"fmt"
	"strconv"
	"strings"
)

// mountainRow and routeRow are the raw tuples scanned from the store, in
// the fixed column order of the kind's select list.
type mountainRow struct {
	id            int
	name          string
	rank          *int
	elevation     int
	mountainRange string
	county        string
	latitude      *float64
	longitude     *float64
	nearbyTowns   string
	imageFile     *string
	mountainURL   *string
}

type routeRow struct {
	mountainName     string
	routeName        string
	routeDifficulty  string
	roundtripMiles   *float64
	elevationGain    *int
	routeRange       string
	snow             *bool
	snowDifficulty   *string
	riskExposure     *string
	riskRockfall     *string
	riskRouteFinding *string
	riskCommitment   *string
	routeURL         *string
	standard         *bool
}

// mapMountain converts a raw mountains tuple into its structured record,
// deriving elevation_ft and the image URL.
func mapMountain(r mountainRow, imageBaseURL string) Mountain {
	m := Mountain{
		ID:          r.id,
		Name:        r.name,
		Rank:        r.rank,
		Elevation:   r.elevation,
		ElevationFt: strconv.Itoa(r.elevation) + "ft",
		Range:       r.mountainRange,
		County:      r.county,
		Latitude:    r.latitude,
		Longitude:   r.longitude,
		NearbyTowns: r.nearbyTowns,
		ImageFile:   r.imageFile,
		MountainURL: r.mountainURL,
	}
	if r.imageFile != nil && *r.imageFile != "" {
		u := imageBaseURL + *r.imageFile
		m.ImageURL = &u
	}
	return m
}

// mapRoute converts a raw routes tuple into its structured record. The
// snow_difficulty field is attached only when the snow flag is true.
func mapRoute(r routeRow) Route {
	rt := Route{
		MountainName:      r.mountainName,
		RouteName:         r.routeName,
		RouteDifficulty:   r.routeDifficulty,
		RoundtripDistance: r.roundtripMiles,
		ElevationGain:     r.elevationGain,
		Range:             r.routeRange,
		Snow:              r.snow,
		RiskExposure:      r.riskExposure,
		RiskRockfall:      r.riskRockfall,
		RiskRouteFinding:  r.riskRouteFinding,
		RiskCommitment:    r.riskCommitment,
		RouteURL:          r.routeURL,
		Standard:          r.standard,
	}
	if r.snow != nil && *r.snow {
		rt.SnowDifficulty = r.snowDifficulty
	}
	return rt
}

// field is one "Label: value" line of a text block. Empty values are omitted.
type field struct {
	label string
	value string
}

func renderFields(fields []field) string {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		lines = append(lines, f.label+": "+f.value)
	}
	return strings.Join(lines, "\n")
}

// yesNo renders a tri-state boolean: "Yes"/"No" when set, empty when null.
func yesNo(b *bool) string {
	if b == nil {
		return ""
	}
	if *b {
		return "Yes"
	}
	return "No"
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FormatMountain renders a mountain record as a human-readable text block.
func FormatMountain(m Mountain) string {
	rank := ""
	if m.Rank != nil {
		rank = strconv.Itoa(*m.Rank)
	}
	location := ""
	if m.HasCoordinates() {
		location = fmt.Sprintf("%v, %v", *m.Latitude, *m.Longitude)
	}

	return renderFields([]field{
		{"ID", strconv.Itoa(m.ID)},
		{"Name", m.Name},
		{"Elevation", m.ElevationFt},
		{"Rank", rank},
		{"Range", m.Range},
		{"County", m.County},
		{"Location", location},
		{"Nearby Towns", m.NearbyTowns},
	})
}

// FormatRoute renders a route record as a human-readable text block.
func FormatRoute(rt Route) string {
	distance := ""
	if rt.RoundtripDistance != nil {
		distance = fmt.Sprintf("%v miles", *rt.RoundtripDistance)
	}
	gain := ""
	if rt.ElevationGain != nil {
		gain = strconv.Itoa(*rt.ElevationGain) + "ft"
	}
	snowDifficulty := ""
	if rt.Snow != nil && *rt.Snow {
		snowDifficulty = strOrEmpty(rt.SnowDifficulty)
	}

	return renderFields([]field{
		{"Mountain", rt.MountainName},
		{"Route Name", rt.RouteName},
		{"Difficulty", rt.RouteDifficulty},
		{"Roundtrip Distance", distance},
		{"Elevation Gain", gain},
		{"Range", rt.Range},
		{"Snow Route", yesNo(rt.Snow)},
		{"Snow Difficulty", snowDifficulty},
		{"Risk - Exposure", strOrEmpty(rt.RiskExposure)},
		{"Risk - Rockfall", strOrEmpty(rt.RiskRockfall)},
		{"Risk - Route Finding", strOrEmpty(rt.RiskRouteFinding)},
		{"Risk - Commitment", strOrEmpty(rt.RiskCommitment)},
		{"Standard Route", yesNo(rt.Standard)},
		{"URL", strOrEmpty(rt.RouteURL)},
	})
}
