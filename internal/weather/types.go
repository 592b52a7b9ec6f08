// Package weather fetches forecasts from the National Weather Service API.
//
// The NWS API is a two-step chain: a points lookup resolves coordinates to
// a gridpoint forecast URL, and a second request fetches the forecast
// periods themselves. Both requests share a single timeout budget and are
// never retried.
package weather

// pointsResponse is the subset of the NWS /points payload we care about.
type pointsResponse struct {
	Properties struct {
		Forecast string `json:"forecast"`
	} `json:"properties"`
}

// forecastResponse is the subset of the NWS gridpoint forecast payload.
type forecastResponse struct {
	Properties struct {
		Periods []Period `json:"periods"`
	} `json:"properties"`
}

// Period is a single forecast period as returned by the NWS API.
// Temperature is a pointer so a missing value survives as null rather
// than a misleading zero.
type Period struct {
	Name             string `json:"name"`
	Temperature      *int   `json:"temperature"`
	TemperatureUnit  string `json:"temperatureUnit"`
	WindSpeed        string `json:"windSpeed"`
	WindDirection    string `json:"windDirection"`
	ShortForecast    string `json:"shortForecast"`
	DetailedForecast string `json:"detailedForecast"`
}

// Location is the coordinate pair the forecast was fetched for.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Conditions describes a single period in the shape we expose to clients.
// The temperatureUnit key keeps the NWS camelCase spelling while the rest
// use snake_case, matching the established output contract.
type Conditions struct {
	Temperature      *int   `json:"temperature"`
	TemperatureUnit  string `json:"temperatureUnit"`
	WindSpeed        string `json:"wind_speed"`
	WindDirection    string `json:"wind_direction"`
	ShortForecast    string `json:"short_forecast"`
	DetailedForecast string `json:"detailed_forecast"`
}

// ForecastPeriod is a named future period in the snapshot.
type ForecastPeriod struct {
	Name             string `json:"name"`
	Temperature      *int   `json:"temperature"`
	TemperatureUnit  string `json:"temperatureUnit"`
	WindSpeed        string `json:"wind_speed"`
	WindDirection    string `json:"wind_direction"`
	ShortForecast    string `json:"short_forecast"`
	DetailedForecast string `json:"detailed_forecast"`
}

// Snapshot is the structured weather payload for a mountain. The first
// NWS period becomes CurrentConditions and the following ForecastPeriods
// periods become Forecast.
type Snapshot struct {
	MountainName      string           `json:"mountain_name"`
	Location          Location         `json:"location"`
	CurrentConditions Conditions       `json:"current_conditions"`
	Forecast          []ForecastPeriod `json:"forecast"`
}

// ForecastPeriods is how many future periods a snapshot carries beyond
// the current conditions.
const ForecastPeriods = 7

// BuildSnapshot assembles a Snapshot from raw NWS periods. An empty
// period list yields a snapshot with zero current conditions and an
// empty forecast slice.
func BuildSnapshot(mountainName string, lat, lon float64, periods []Period) Snapshot {
	snap := Snapshot{
		MountainName: mountainName,
		Location:     Location{Latitude: lat, Longitude: lon},
		Forecast:     []ForecastPeriod{},
	}
	if len(periods) == 0 {
		return snap
	}

	current := periods[0]
	snap.CurrentConditions = Conditions{
		Temperature:      current.Temperature,
		TemperatureUnit:  current.TemperatureUnit,
		WindSpeed:        current.WindSpeed,
		WindDirection:    current.WindDirection,
		ShortForecast:    current.ShortForecast,
		DetailedForecast: current.DetailedForecast,
	}

	rest := periods[1:]
	if len(rest) > ForecastPeriods {
		rest = rest[:ForecastPeriods]
	}
	for _, p := range rest {
		snap.Forecast = append(snap.Forecast, ForecastPeriod{
			Name:             p.Name,
			Temperature:      p.Temperature,
			TemperatureUnit:  p.TemperatureUnit,
			WindSpeed:        p.WindSpeed,
			WindDirection:    p.WindDirection,
			ShortForecast:    p.ShortForecast,
			DetailedForecast: p.DetailedForecast,
		})
	}
	return snap
}
