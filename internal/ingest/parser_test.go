package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meteo-data/weather-ingest/internal/models"
)

func TestParseRow_Valid(t *testing.T) {
	reading, ok := ParseRow("2025-10-15;Madrid;16.5;8.1;1.4;80")
	require.True(t, ok)
	assert.Equal(t, models.WeatherReading{
		Date:     "2025-10-15",
		City:     "Madrid",
		TempMaxC: 16.5,
		TempMinC: 8.1,
		PrecipMM: 1.4,
		CloudPct: 80,
	}, reading)
}

func TestParseRow_CommaDecimalsAndPadding(t *testing.T) {
	reading, ok := ParseRow(" 2025-10-16 ; Madrid ; 17,0 ; 7,9 ; 0,0 ; 50 ")
	require.True(t, ok)
	assert.Equal(t, "2025-10-16", reading.Date)
	assert.Equal(t, "Madrid", reading.City)
	assert.Equal(t, 17.0, reading.TempMaxC)
	assert.Equal(t, 7.9, reading.TempMinC)
	assert.Equal(t, 0.0, reading.PrecipMM)
	assert.Equal(t, 50, reading.CloudPct)
}

func TestParseRow_Rejections(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"five fields", "2025-10-15;Madrid;16.5;8.1;1.4"},
		{"seven fields", "2025-10-15;Madrid;16.5;8.1;1.4;80;extra"},
		{"bad date", "2025-15-99;Madrid;16.5;8.1;1.4;80"},
		{"dmy date", "15/10/2025;Madrid;16.5;8.1;1.4;80"},
		{"empty city", "2025-10-15;   ;16.5;8.1;1.4;80"},
		{"bad temp max", "2025-10-15;Madrid;warm;8.1;1.4;80"},
		{"bad temp min", "2025-10-15;Madrid;16.5;cold;1.4;80"},
		{"bad precip", "2025-10-15;Madrid;16.5;8.1;wet;80"},
		{"negative precip", "2025-10-15;Madrid;16.5;8.1;-1.4;80"},
		{"bad cloud", "2025-10-15;Madrid;16.5;8.1;1.4;cloudy"},
		{"cloud over 100", "2025-10-15;Madrid;16.5;8.1;1.4;101"},
		{"cloud negative", "2025-10-15;Madrid;16.5;8.1;1.4;-1"},
		{"fractional cloud", "2025-10-15;Madrid;16.5;8.1;1.4;80.5"},
		{"min above max", "2025-10-15;Madrid;8.1;16.5;1.4;80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseRow(tt.line)
			assert.False(t, ok)
		})
	}
}

func TestParseRow_NegativeTemperaturesAllowed(t *testing.T) {
	reading, ok := ParseRow("2025-01-15;Burgos;-2.5;-8.0;0.0;10")
	require.True(t, ok)
	assert.Equal(t, -2.5, reading.TempMaxC)
	assert.Equal(t, -8.0, reading.TempMinC)
}

func TestParseRow_EqualTemperaturesAllowed(t *testing.T) {
	_, ok := ParseRow("2025-10-15;Madrid;10.0;10.0;0.0;0")
	assert.True(t, ok)
}

func TestParseRow_CloudBounds(t *testing.T) {
	_, ok := ParseRow("2025-10-15;Madrid;16.5;8.1;1.4;0")
	assert.True(t, ok)
	_, ok = ParseRow("2025-10-16;Madrid;16.5;8.1;1.4;100")
	assert.True(t, ok)
}
