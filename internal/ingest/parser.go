package ingest

import (
	"strings"

	"github.com/meteo-data/weather-ingest/internal/models"
)

// ParseRow validates one data line and returns its normalized reading.
// Rules are applied in a fixed order with short-circuit on first failure:
// field count, date, city, temp_max, temp_min, precip (>= 0), cloud_pct
// (0..100), and finally temp_min <= temp_max. The boolean reports whether
// the row is acceptable; rejected rows carry no detail beyond the flag.
func ParseRow(line string) (models.WeatherReading, bool) {
	var r models.WeatherReading

	cols := SplitFields(line)
	if len(cols) != 6 {
		return r, false
	}
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}

	date, ok := ToISODate(cols[0])
	if !ok {
		return r, false
	}
	r.Date = date

	r.City = cols[1]
	if r.City == "" {
		return r, false
	}

	if r.TempMaxC, ok = ToDecimal(cols[2]); !ok {
		return r, false
	}
	if r.TempMinC, ok = ToDecimal(cols[3]); !ok {
		return r, false
	}

	if r.PrecipMM, ok = ToDecimal(cols[4]); !ok {
		return r, false
	}
	if r.PrecipMM < 0 {
		return r, false
	}

	if r.CloudPct, ok = ToInt(cols[5]); !ok {
		return r, false
	}
	if r.CloudPct < 0 || r.CloudPct > 100 {
		return r, false
	}

	if r.TempMinC > r.TempMaxC {
		return r, false
	}

	return r, true
}
