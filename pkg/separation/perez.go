package separation

import (
	"math"
	"sort"

	"github.com/chrissnell/irradiance/pkg/solar"
)

// Bin thresholds selecting the Perez coefficient table cell
var (
	clearnessThresholds   = []float64{0.24, 0.4, 0.56, 0.7, 0.8}
	zenithThresholds      = []float64{25.0, 40.0, 55.0, 70.0, 80.0}
	variabilityThresholds = []float64{0.015, 0.035, 0.07, 0.15, 0.3}
	moistureThresholds    = []float64{1.0, 2.0, 3.0}
)

const (
	// Bins used when the data needed to compute the index is absent
	noNeighborVariabilityBin = 6
	noDewPointMoistureBin    = 4

	minCosZenith    = 0.065 // Cosine of zenith is floored here to keep clearness finite
	maxAirMass      = 15.25
	minPerezGlobalW = 1.0  // Global irradiance (W/m²) below which there is no beam
	lowSunZenithDeg = 85.0 // Neighbors with the sun this low do not count toward variability
	elevationDecay  = 0.0001184
)

// Window positions for the hour before, the current hour and the hour after
const (
	previous = iota
	current
	next
)

// perezWindow holds the global irradiance (MJ/m²h) and solar altitude
// (degrees) of three consecutive hours. Absent neighbors are missing.
type perezWindow struct {
	global   [3]float64
	altitude [3]float64
}

// PerezDirect estimates direct normal irradiance (MJ/m²h) for every hour with
// the Perez DIRINT model. Each hour looks at its neighbors to gauge how
// quickly the sky is changing; the first and last hours see a missing
// neighbor. dewPoint (°C) may be nil, in which case every hour is treated as
// lacking dew point. Missing global irradiance yields a missing result.
func PerezDirect(th, altitude, dewPoint []float64, elevation float64, in0 []float64) []float64 {
	n := len(th)
	dn := make([]float64, n)

	for i := 0; i < n; i++ {
		if IsMissing(th[i]) {
			dn[i] = missing()
			continue
		}

		w := perezWindow{
			global:   [3]float64{missing(), th[i], missing()},
			altitude: [3]float64{missing(), altitude[i], missing()},
		}
		if i > 0 {
			w.global[previous] = th[i-1]
			w.altitude[previous] = altitude[i-1]
		}
		if i < n-1 {
			w.global[next] = th[i+1]
			w.altitude[next] = altitude[i+1]
		}

		td := missing()
		if dewPoint != nil {
			td = dewPoint[i]
		}

		dn[i] = perezDirectHour(w, td, elevation, in0[i])
	}

	return dn
}

// perezDirectHour evaluates the model for the middle hour of the window
func perezDirectHour(w perezWindow, dewPoint, elevation, in0 float64) float64 {
	var global, zenith, cosZenith, clearness, airMass, adjusted [3]float64

	for k := range w.global {
		global[k] = solar.MJToW(w.global[k])
	}

	if global[current] < minPerezGlobalW || IsMissing(global[current]) {
		return 0
	}
	if w.altitude[current] <= 0 {
		return 0
	}

	i0 := solar.MJToW(in0)
	pressureCorrection := math.Exp(-elevationDecay * elevation)

	for k := range w.altitude {
		h := w.altitude[k]
		if h < 0 {
			h = missing()
		}
		zenith[k] = 90 - h

		cz := math.Cos(degToRad(zenith[k]))
		cosZenith[k] = cz
		if cz <= minCosZenith {
			cosZenith[k] = minCosZenith
		}

		clearness[k] = global[k] / (i0 * cosZenith[k])

		airMass[k] = 1.0 / (cosZenith[k] + 0.15*math.Pow(93.9-zenith[k], -1.253))
		if airMass[k] >= maxAirMass {
			airMass[k] = maxAirMass
		}

		// Clearness index made independent of solar altitude and site elevation
		kpam := airMass[k] * pressureCorrection
		adjusted[k] = clearness[k] / (1.031*math.Exp(-1.4/(0.9+9.4/kpam)) + 0.1)
		if cz < 0 {
			adjusted[k] = missing()
		}
	}

	for _, k := range []int{previous, next} {
		if IsMissing(global[k]) || IsMissing(zenith[k]) {
			adjusted[k] = missing()
		}
	}

	bmax := i0 * (clearSkyNormal(airMass[current]) - directDeficit(clearness[current], airMass[current]))

	variability := noNeighborVariabilityBin
	if !IsMissing(adjusted[previous]) || !IsMissing(adjusted[next]) {
		variability = digitize(clearnessVariability(adjusted, zenith), variabilityThresholds)
	}

	moisture := noDewPointMoistureBin
	if !IsMissing(dewPoint) {
		// Precipitable water proxy from surface dew point
		moisture = digitize(math.Exp(-0.075+0.07*dewPoint), moistureThresholds)
	}

	coefficient := perezCoefficient(
		digitize(adjusted[current], clearnessThresholds),
		digitize(zenith[current], zenithThresholds),
		variability,
		moisture,
	)

	dn := bmax * coefficient
	if dn < 0 {
		dn = 0
	}
	return solar.WToMJ(dn)
}

// clearSkyNormal is the clear-sky beam fraction KNC as a function of air mass
func clearSkyNormal(am float64) float64 {
	return 0.866 - 0.122*am + 0.0121*math.Pow(am, 2) - 0.000653*math.Pow(am, 3) + 0.000014*math.Pow(am, 4)
}

// directDeficit is the DISC correction A + B·exp(C·AM) for the current clearness index
func directDeficit(kt, am float64) float64 {
	var a, b, c float64
	if kt <= 0.6 {
		a = 0.512 - 1.56*kt + 2.286*math.Pow(kt, 2) - 2.22*math.Pow(kt, 3)
		b = 0.37 + 0.962*kt
		c = -0.28 + 0.932*kt - 2.048*math.Pow(kt, 2)
	} else {
		a = -5.743 + 21.77*kt - 27.49*math.Pow(kt, 2) + 11.56*math.Pow(kt, 3)
		b = 41.40 - 118.5*kt + 66.05*math.Pow(kt, 2) + 31.9*math.Pow(kt, 3)
		c = -47.01 + 184.2*kt - 222.0*math.Pow(kt, 2) + 73.81*math.Pow(kt, 3)
	}
	return a + b*math.Exp(c*am)
}

// clearnessVariability is the mean absolute change of the adjusted clearness
// index across the window. A neighbor that is missing, or whose sun is
// within 5 degrees of the horizon, is left out.
func clearnessVariability(adjusted, zenith [3]float64) float64 {
	switch {
	case IsMissing(adjusted[previous]) || zenith[previous] >= lowSunZenithDeg:
		return math.Abs(adjusted[next] - adjusted[current])
	case IsMissing(adjusted[next]) || zenith[next] >= lowSunZenithDeg:
		return math.Abs(adjusted[current] - adjusted[previous])
	default:
		return 0.5 * (math.Abs(adjusted[current]-adjusted[previous]) + math.Abs(adjusted[next]-adjusted[current]))
	}
}

// digitize returns the index of the bin holding x: the number of thresholds
// less than or equal to x. A missing x falls in the last bin.
func digitize(x float64, thresholds []float64) int {
	return sort.Search(len(thresholds), func(i int) bool {
		return thresholds[i] > x
	})
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
