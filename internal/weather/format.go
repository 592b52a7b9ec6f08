package weather

import (
	"fmt"
	"strings"
)

// Format renders the snapshot as the plain-text summary that accompanies
// the structured payload. Missing fields are skipped rather than padded.
func (s Snapshot) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weather forecast for %s (%s, %s):\n\n",
		s.MountainName, formatCoord(s.Location.Latitude), formatCoord(s.Location.Longitude))

	if s.CurrentConditions != (Conditions{}) {
		b.WriteString("Current Conditions:\n")
		writePeriodBody(&b, s.CurrentConditions.Temperature, s.CurrentConditions.TemperatureUnit,
			s.CurrentConditions.WindSpeed, s.CurrentConditions.WindDirection,
			s.CurrentConditions.ShortForecast, s.CurrentConditions.DetailedForecast)
		b.WriteString("\n")
	}

	if len(s.Forecast) > 0 {
		b.WriteString("Forecast:\n")
		for _, p := range s.Forecast {
			fmt.Fprintf(&b, "%s:\n", p.Name)
			writePeriodBody(&b, p.Temperature, p.TemperatureUnit,
				p.WindSpeed, p.WindDirection, p.ShortForecast, p.DetailedForecast)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func writePeriodBody(b *strings.Builder, temp *int, unit, windSpeed, windDir, short, detailed string) {
	if temp != nil {
		if unit == "" {
			unit = "F"
		}
		fmt.Fprintf(b, "  Temperature: %d\u00b0%s\n", *temp, unit)
	}
	if windSpeed != "" {
		wind := windSpeed
		if windDir != "" {
			wind += " " + windDir
		}
		fmt.Fprintf(b, "  Wind: %s\n", wind)
	}
	if short != "" {
		fmt.Fprintf(b, "  Conditions: %s\n", short)
	}
	if detailed != "" {
		fmt.Fprintf(b, "  %s\n", detailed)
	}
}
