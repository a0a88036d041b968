package separation

import (
	"fmt"
	"time"

	"github.com/chrissnell/irradiance/pkg/solar"
)

// Source names one of the global irradiance inputs of a series
type Source string

const (
	// Estimated is global irradiance estimated for the site
	Estimated Source = "est"
	// Modeled is global irradiance taken directly from the mesoscale model
	Modeled Source = "msm"
)

// Sources lists the irradiance inputs in processing order
var Sources = []Source{Estimated, Modeled}

// Series is an ordered hourly record. Global holds the horizontal global
// irradiance inputs (MJ/m²h) and DewPoint the optional dew point (°C).
// Direct, Diffuse, Altitude and Azimuth are filled in by a separation.
// Missing hours are NaN.
type Series struct {
	Times    []time.Time          `json:"times"`
	Global   map[Source][]float64 `json:"global"`
	DewPoint []float64            `json:"dew_point,omitempty"`

	Direct   map[Source][]float64 `json:"direct,omitempty"`
	Diffuse  map[Source][]float64 `json:"diffuse,omitempty"`
	Altitude []float64            `json:"altitude,omitempty"`
	Azimuth  []float64            `json:"azimuth,omitempty"`
}

// Len returns the number of hourly records
func (s *Series) Len() int {
	return len(s.Times)
}

// validate checks that every column has one value per timestamp
func (s *Series) validate() error {
	n := s.Len()

	for _, src := range Sources {
		if th, ok := s.Global[src]; ok && len(th) != n {
			return &ConfigurationError{
				Setting: "global irradiance column",
				Value:   string(src),
				Reason:  fmt.Sprintf("has %d values for %d timestamps", len(th), n),
			}
		}
	}

	if s.DewPoint != nil && len(s.DewPoint) != n {
		return &ConfigurationError{
			Setting: "dew point column",
			Value:   "dew_point",
			Reason:  fmt.Sprintf("has %d values for %d timestamps", len(s.DewPoint), n),
		}
	}

	return nil
}

// inputs returns a copy of the series' input columns with empty result maps
func (s *Series) inputs() *Series {
	out := &Series{
		Times:   append([]time.Time(nil), s.Times...),
		Global:  make(map[Source][]float64, len(s.Global)),
		Direct:  make(map[Source][]float64),
		Diffuse: make(map[Source][]float64),
	}

	for src, th := range s.Global {
		out.Global[src] = append([]float64(nil), th...)
	}
	if s.DewPoint != nil {
		out.DewPoint = append([]float64(nil), s.DewPoint...)
	}

	return out
}

// Site describes where a series was observed
type Site struct {
	Latitude         float64 // Degrees, north positive
	Longitude        float64 // Degrees, east positive
	Elevation        float64 // Meters above sea level
	StandardMeridian float64 // Longitude defining the timestamps' standard time
}

// NewSite returns a site keeping Japan Standard Time
func NewSite(latitude, longitude, elevation float64) Site {
	return Site{
		Latitude:         latitude,
		Longitude:        longitude,
		Elevation:        elevation,
		StandardMeridian: solar.DefaultStandardMeridian,
	}
}

func (s Site) observer() solar.Observer {
	return solar.Observer{
		Latitude:         s.Latitude,
		Longitude:        s.Longitude,
		StandardMeridian: s.StandardMeridian,
	}
}
