package separation

import (
	"errors"
	"math"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chrissnell/irradiance/pkg/solar"
)

var allModels = []string{"Nagata", "Watanabe", "Erbs", "Udagawa", "Perez"}

// eveningSeries is three hours around sunset in Kitakyushu
func eveningSeries() *Series {
	start := time.Date(2010, time.December, 31, 18, 0, 0, 0, time.UTC)
	return &Series{
		Times:    []time.Time{start, start.Add(time.Hour), start.Add(2 * time.Hour)},
		Global:   map[Source][]float64{Estimated: {0.012614, 0, 0}},
		DewPoint: []float64{-5.169731, -4.761409, -4.154089},
	}
}

// clearDay is a winter solstice day in Tokyo under a clear sky, with the
// modeled column dimmed to exercise the cloudy branches of each model.
func clearDay(t *testing.T) (*Series, Site) {
	t.Helper()

	site := NewSite(35.6895, 139.6917, 40)
	start := time.Date(2021, time.December, 21, 0, 0, 0, 0, time.UTC)
	times := make([]time.Time, 24)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * time.Hour)
	}

	clear := solar.ClearSky{Turbidity: 4, Elevation: site.Elevation}.Series(site.observer(), times)
	cloudy := make([]float64, len(clear))
	for i, v := range clear {
		cloudy[i] = v * 0.45
	}
	cloudy[12] = math.NaN()

	return &Series{
		Times:    times,
		Global:   map[Source][]float64{Estimated: clear, Modeled: cloudy},
		DewPoint: repeat(-2, len(times)),
	}, site
}

func TestSeparateSunset(t *testing.T) {
	tests := []struct {
		model   string
		direct  []float64
		diffuse []float64
	}{
		{model: "Nagata", direct: []float64{0, 0, 0}, diffuse: []float64{0, 0, 0}},
		{model: "Watanabe", direct: []float64{0, 0, 0}, diffuse: []float64{0, 0, 0}},
		{model: "Erbs", direct: []float64{0.0012734823, 0, 0}, diffuse: []float64{0.0126738977, 0, 0}},
		{model: "Udagawa", direct: []float64{0, 0, 0}, diffuse: []float64{0.012614, 0, 0}},
		{model: "Perez", direct: []float64{0, 0, 0}, diffuse: []float64{0.012614, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			out, err := Separate(eveningSeries(), 33.8834976, 130.8751773, 2.7, tt.model)
			require.NoError(t, err)

			require.Len(t, out.Direct[Estimated], 3)
			require.Len(t, out.Diffuse[Estimated], 3)
			for i := range tt.direct {
				assert.InDelta(t, tt.direct[i], out.Direct[Estimated][i], 1e-9, "direct hour %d", i)
				assert.InDelta(t, tt.diffuse[i], out.Diffuse[Estimated][i], 1e-9, "diffuse hour %d", i)
			}

			assert.InDelta(t, -2.695877, out.Altitude[0], 1e-6)
			assert.InDelta(t, 243.709298, out.Azimuth[0], 1e-6)
			assert.InDelta(t, -14.1939, out.Altitude[1], 1e-4)
			assert.InDelta(t, -26.2095, out.Altitude[2], 1e-4)

			_, ok := out.Direct[Modeled]
			assert.False(t, ok, "absent source is skipped")
		})
	}
}

func TestSeparateEnergyBalance(t *testing.T) {
	series, site := clearDay(t)
	sinh := make([]float64, series.Len())
	for i, g := range site.observer().Positions(series.Times) {
		sinh[i] = g.SinAltitude
	}

	for _, model := range allModels {
		t.Run(model, func(t *testing.T) {
			sep, err := NewSeparator(site, model, nil)
			require.NoError(t, err)

			out, err := sep.Separate(series)
			require.NoError(t, err)

			for _, src := range Sources {
				th := series.Global[src]
				dn, sh := out.Direct[src], out.Diffuse[src]
				require.Len(t, dn, len(th))
				require.Len(t, sh, len(th))

				for i := range th {
					if IsMissing(th[i]) {
						assert.True(t, IsMissing(dn[i]), "%s hour %d direct", src, i)
						assert.True(t, IsMissing(sh[i]), "%s hour %d diffuse", src, i)
						continue
					}

					assert.GreaterOrEqual(t, dn[i], 0.0, "%s hour %d", src, i)
					assert.GreaterOrEqual(t, sh[i], 0.0, "%s hour %d", src, i)

					if sinh[i] <= 0 {
						continue
					}
					if sh[i] > 0 {
						assert.InDelta(t, th[i], dn[i]*sinh[i]+sh[i], 1e-4, "%s hour %d", src, i)
					} else {
						assert.GreaterOrEqual(t, dn[i]*sinh[i], th[i]-1e-4, "%s hour %d", src, i)
					}
				}
			}
		})
	}
}

func TestSeparateNightHasNoDiffuse(t *testing.T) {
	series, site := clearDay(t)
	geometry := site.observer().Positions(series.Times)

	for _, model := range []string{"Nagata", "Watanabe"} {
		t.Run(model, func(t *testing.T) {
			sep, err := NewSeparator(site, model, nil)
			require.NoError(t, err)

			out, err := sep.Separate(series)
			require.NoError(t, err)

			for i, g := range geometry {
				if g.SinAltitude <= 0 {
					assert.Zero(t, out.Diffuse[Estimated][i], "hour %d", i)
				}
			}
		})
	}
}

func TestSeparateDirectFollowsSun(t *testing.T) {
	series, site := clearDay(t)
	geometry := site.observer().Positions(series.Times)

	sep, err := NewSeparator(site, "Udagawa", nil)
	require.NoError(t, err)

	out, err := sep.Separate(series)
	require.NoError(t, err)

	var daylight []int
	for i, g := range geometry {
		if g.SinAltitude > 0 {
			daylight = append(daylight, i)
		}
	}
	require.NotEmpty(t, daylight)

	sort.Slice(daylight, func(a, b int) bool {
		return geometry[daylight[a]].SinAltitude > geometry[daylight[b]].SinAltitude
	})

	dn := out.Direct[Estimated]
	for k := 1; k < len(daylight); k++ {
		assert.LessOrEqual(t, dn[daylight[k]], dn[daylight[k-1]], "hour %d", daylight[k])
	}
}

func TestSeparateLeavesInputUntouched(t *testing.T) {
	series := eveningSeries()
	before := eveningSeries()

	out, err := Separate(series, 33.8834976, 130.8751773, 2.7, "Erbs")
	require.NoError(t, err)

	assert.Equal(t, before, series)
	assert.Nil(t, series.Direct)

	out.Global[Estimated][0] = 99
	assert.Equal(t, 0.012614, series.Global[Estimated][0])
}

func TestSeparateUnknownModel(t *testing.T) {
	_, err := Separate(eveningSeries(), 33.8834976, 130.8751773, 2.7, "erbs")
	require.Error(t, err)

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestSeparateLengthMismatch(t *testing.T) {
	series := eveningSeries()
	series.Global[Modeled] = []float64{0.1, 0.2}

	_, err := Separate(series, 33.8834976, 130.8751773, 2.7, "Nagata")
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, string(Modeled), cfgErr.Value)

	series = eveningSeries()
	series.DewPoint = series.DewPoint[:1]
	_, err = Separate(series, 33.8834976, 130.8751773, 2.7, "Perez")
	assert.Error(t, err)
}

func TestSeparateEmptySeries(t *testing.T) {
	out, err := Separate(&Series{Global: map[Source][]float64{Estimated: {}}}, 35, 139, 0, "Perez")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
	assert.Empty(t, out.Direct[Estimated])
}

func TestSeparateLogsRun(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	sep, err := NewSeparator(NewSite(33.8834976, 130.8751773, 2.7), "Perez", zap.New(core).Sugar())
	require.NoError(t, err)

	_, err = sep.Separate(eveningSeries())
	require.NoError(t, err)
	_, err = sep.Separate(eveningSeries())
	require.NoError(t, err)

	entries := logs.FilterMessage("separating global irradiance").All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "Perez", first["model"])
	assert.Equal(t, int64(3), first["rows"])
	assert.Equal(t, true, first["dew_point"])

	runID, ok := first["run_id"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(runID)
	assert.NoError(t, err)
	assert.NotEqual(t, runID, entries[1].ContextMap()["run_id"])

	assert.Zero(t, logs.FilterMessage("hours left without a separated value").Len())
}
