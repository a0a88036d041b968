package solar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClearSkyGlobal(t *testing.T) {
	tests := []struct {
		name     string
		geometry Geometry
		zero     bool
	}{
		{
			name:     "sun below horizon",
			geometry: Geometry{Extraterrestrial: 4.9, Altitude: -5, SinAltitude: -0.0872},
			zero:     true,
		},
		{
			name:     "sun on horizon",
			geometry: Geometry{Extraterrestrial: 4.9, Altitude: 0, SinAltitude: 0},
			zero:     true,
		},
		{
			name:     "low sun",
			geometry: Geometry{Extraterrestrial: 4.9, Altitude: 10, SinAltitude: 0.173648},
		},
		{
			name:     "high sun",
			geometry: Geometry{Extraterrestrial: 4.9, Altitude: 70, SinAltitude: 0.939693},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			global := DefaultClearSky().Global(tt.geometry, 172)
			if tt.zero {
				assert.Zero(t, global)
				return
			}
			assert.Greater(t, global, 0.0)
			// Never more than reaches the top of the atmosphere
			assert.Less(t, global, tt.geometry.Extraterrestrial*tt.geometry.SinAltitude)
		})
	}
}

func TestClearSkyTurbidityAttenuates(t *testing.T) {
	g := Geometry{Extraterrestrial: 4.8, Altitude: 45, SinAltitude: 0.707107}

	clean := ClearSky{Turbidity: 2}.Global(g, 100)
	hazy := ClearSky{Turbidity: 5}.Global(g, 100)
	highAltitude := ClearSky{Turbidity: 5, Elevation: 3000}.Global(g, 100)

	assert.Less(t, hazy, clean)
	assert.Greater(t, highAltitude, hazy)
}

func TestClearSkySeries(t *testing.T) {
	start := time.Date(2021, time.December, 21, 0, 0, 0, 0, time.UTC)
	times := make([]time.Time, 24)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * time.Hour)
	}

	o := NewObserver(35.6895, 139.6917)
	global := ClearSky{Turbidity: 4, Elevation: 40}.Series(o, times)

	assert.Len(t, global, 24)
	for i, g := range o.Positions(times) {
		if g.SinAltitude <= 0 {
			assert.Zero(t, global[i], "hour %d", i)
		} else {
			assert.Greater(t, global[i], 0.0, "hour %d", i)
		}
	}
}
