// Package solar computes hour-averaged sun positions and extraterrestrial
// irradiance for hourly weather records.
package solar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultStandardMeridian is the longitude of the JST standard meridian in degrees
	DefaultStandardMeridian = 135.0

	solarConstant       = 4.921    // Solar constant in MJ/m²h
	solsticeDeclination = -23.4393 // Declination at the winter solstice, degrees
)

// subHourOffsets are the hours before the reference hour at which the sun is
// sampled. The reported position is the mean over the preceding hour.
var subHourOffsets = [...]float64{1.0, 0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2, 0.1}

// Geometry is the sun's position and the extraterrestrial irradiance for one hourly record
type Geometry struct {
	Extraterrestrial float64 // IN0: extraterrestrial normal irradiance (MJ/m²h)
	Altitude         float64 // h: solar altitude (degrees)
	SinAltitude      float64 // Sinh: sine of Altitude
	Azimuth          float64 // A: solar azimuth (degrees)
}

// Observer is a location on the ground. StandardMeridian is the longitude
// whose mean solar time defines the local standard time of the timestamps.
type Observer struct {
	Latitude         float64
	Longitude        float64
	StandardMeridian float64
}

// NewObserver returns an observer keeping Japan Standard Time
func NewObserver(latitude, longitude float64) Observer {
	return Observer{
		Latitude:         latitude,
		Longitude:        longitude,
		StandardMeridian: DefaultStandardMeridian,
	}
}

// Positions computes the geometry for every timestamp at the given latitude
// and longitude using the default standard meridian. Order is preserved.
func Positions(latitude, longitude float64, times []time.Time) []Geometry {
	return NewObserver(latitude, longitude).Positions(times)
}

// Positions computes the geometry for every timestamp, one entry per input
func (o Observer) Positions(times []time.Time) []Geometry {
	geometry := make([]Geometry, len(times))
	for i, t := range times {
		geometry[i] = o.Position(t)
	}
	return geometry
}

// Position computes the sun's mean altitude and azimuth over the hour ending at
// t. The wall-clock hour of t is taken as standard time; minutes are ignored.
func (o Observer) Position(t time.Time) Geometry {
	orbit := newSolarOrbit(t.Year(), julian.DayOfYearGregorian(t.Year(), int(t.Month()), t.Day()))

	latRad := degToRad(o.Latitude)
	sinLat, cosLat := math.Sin(latRad), math.Cos(latRad)

	altitudes := make([]float64, len(subHourOffsets))
	azimuths := make([]float64, len(subHourOffsets))

	for i, offset := range subHourOffsets {
		tm := float64(t.Hour()) - offset

		// Hour angle in degrees, corrected for longitude and the equation of time
		hourAngle := degToRad(15*(tm-12) + (o.Longitude - o.StandardMeridian) + orbit.equationOfTime)

		sinH := sinLat*orbit.sinDeclination + cosLat*orbit.cosDeclination*math.Cos(hourAngle)
		cosH := math.Sqrt(1 - sinH*sinH)
		sinA := orbit.cosDeclination * math.Sin(hourAngle) / cosH
		cosA := (sinH*sinLat - orbit.sinDeclination) / (cosH * cosLat)

		altitudes[i] = radToDeg(math.Asin(sinH))
		azimuths[i] = radToDeg(math.Atan2(sinA, cosA) + math.Pi)
	}

	altitude := stat.Mean(altitudes, nil)

	return Geometry{
		Extraterrestrial: orbit.extraterrestrial,
		Altitude:         altitude,
		SinAltitude:      math.Sin(degToRad(altitude)),
		Azimuth:          stat.Mean(azimuths, nil),
	}
}

// solarOrbit holds the per-day orbital quantities shared by all samples of an hour
type solarOrbit struct {
	equationOfTime   float64 // degrees of hour angle
	sinDeclination   float64
	cosDeclination   float64
	extraterrestrial float64 // MJ/m²h
}

// newSolarOrbit approximates the sun's orbit for a day of the year with a
// polynomial referenced to the 1968 perihelion passage.
func newSolarOrbit(year, dayOfYear int) solarOrbit {
	n := float64(year - 1968)

	// Perihelion passage day and mean anomaly
	d0 := 3.71 + 0.2596*n - math.Floor((n+3)/4)
	m := 360 * (float64(dayOfYear) - d0) / 365.2596

	// Angle between perihelion and the winter solstice
	eps := 12.3901 + 0.0172*(n+m/360)

	// True anomaly
	v := m + 1.914*math.Sin(degToRad(m)) + 0.02*math.Sin(degToRad(2*m))
	veps := degToRad(v + eps)

	// Equation of time, expressed as degrees of hour angle
	et := (m - v) - radToDeg(math.Atan(0.043*math.Sin(2*veps)/(1-0.043*math.Cos(2*veps))))

	sinDecl := math.Cos(veps) * math.Sin(degToRad(solsticeDeclination))

	return solarOrbit{
		equationOfTime:   et,
		sinDeclination:   sinDecl,
		cosDeclination:   math.Sqrt(math.Abs(1 - sinDecl*sinDecl)),
		extraterrestrial: solarConstant * (1 + 0.033*math.Cos(degToRad(v))),
	}
}
