package separation

import (
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/chrissnell/irradiance/pkg/solar"
)

// Separator splits the global irradiance of hourly series observed at one
// site with one model. It holds no per-series state and is safe for
// concurrent use.
type Separator struct {
	site   Site
	model  Model
	logger *zap.SugaredLogger
}

// NewSeparator creates a separator for the named model. An unrecognized
// model name is reported as a *ConfigurationError. A nil logger discards
// all log output.
func NewSeparator(site Site, modelName string, logger *zap.SugaredLogger) (*Separator, error) {
	model, err := ParseModel(modelName)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Separator{
		site:   site,
		model:  model,
		logger: logger,
	}, nil
}

// Model returns the model the separator applies
func (s *Separator) Model() Model {
	return s.model
}

// Separate computes direct normal and diffuse horizontal irradiance for each
// global irradiance source present in the series. The input is not
// modified; the returned series carries copies of the inputs plus the
// derived columns and the solar altitude and azimuth.
func (s *Separator) Separate(series *Series) (*Series, error) {
	if err := series.validate(); err != nil {
		return nil, err
	}

	log := s.logger.With("run_id", uuid.New().String(), "model", s.model.String())

	geometry := s.site.observer().Positions(series.Times)
	in0, altitude, sinh, azimuth := splitGeometry(geometry)

	out := series.inputs()
	out.Altitude = altitude
	out.Azimuth = azimuth

	log.Debugw("separating global irradiance",
		"rows", series.Len(),
		"sources", len(series.Global),
		"dew_point", series.DewPoint != nil,
		"dew_point_gaps", series.DewPoint != nil && floats.HasNaN(series.DewPoint),
	)

	for _, src := range Sources {
		th, ok := series.Global[src]
		if !ok {
			continue
		}

		dn, sh := s.separateSource(th, in0, altitude, sinh, series.DewPoint)
		out.Direct[src] = dn
		out.Diffuse[src] = sh

		// Missing input always gives missing output; anything beyond that
		// is an hour the model could not resolve.
		if unresolved := floats.Count(math.IsNaN, dn) - floats.Count(math.IsNaN, th); unresolved > 0 {
			log.Warnw("hours left without a separated value", "source", src, "hours", unresolved)
		}
	}

	return out, nil
}

// separateSource runs the model on one global irradiance column and derives
// the complementary component through TH = DN·sinh + SH.
func (s *Separator) separateSource(th, in0, altitude, sinh, dewPoint []float64) (dn, sh []float64) {
	switch s.model {
	case Nagata:
		sh = DiffuseByTransmittance(th, sinh, in0, NagataDiffuse)
	case Watanabe:
		sh = DiffuseByTransmittance(th, sinh, in0, WatanabeDiffuse)
	case Erbs:
		sh = ErbsDiffuseSeries(th, in0, sinh)
	case Udagawa:
		dn = UdagawaDirectSeries(th, in0, sinh)
	case Perez:
		dn = PerezDirect(th, altitude, dewPoint, s.site.Elevation, in0)
	}

	if s.model.producesDiffuse() {
		dn = make([]float64, len(th))
		for i := range th {
			dn[i] = DirectFromDiffuse(th[i], sh[i], sinh[i])
		}
		return dn, sh
	}

	sh = make([]float64, len(th))
	for i := range th {
		sh[i] = DiffuseFromDirect(th[i], dn[i], sinh[i])
	}
	return dn, sh
}

// splitGeometry turns per-hour geometry into column slices
func splitGeometry(geometry []solar.Geometry) (in0, altitude, sinh, azimuth []float64) {
	n := len(geometry)
	in0 = make([]float64, n)
	altitude = make([]float64, n)
	sinh = make([]float64, n)
	azimuth = make([]float64, n)

	for i, g := range geometry {
		in0[i] = g.Extraterrestrial
		altitude[i] = g.Altitude
		sinh[i] = g.SinAltitude
		azimuth[i] = g.Azimuth
	}
	return in0, altitude, sinh, azimuth
}

// Separate splits the global irradiance of a series observed at the given
// latitude, longitude (degrees) and elevation (m) with the named model.
// Timestamps are read as Japan Standard Time wall clock.
func Separate(series *Series, latitude, longitude, elevation float64, modelName string) (*Series, error) {
	sep, err := NewSeparator(NewSite(latitude, longitude, elevation), modelName, nil)
	if err != nil {
		return nil, err
	}
	return sep.Separate(series)
}
