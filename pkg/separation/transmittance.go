// Package separation splits hourly horizontal global irradiance into direct
// normal and diffuse horizontal components using published empirical models.
//
// All irradiance values are hourly totals in MJ/m²h. A missing hour is
// represented by NaN and is never treated as zero.
package separation

import "math"

const (
	// transmittanceUpper bounds the bisection bracket. Near the horizon the
	// fitted formulas can place the root above 1.
	transmittanceUpper = 1.2

	// transmittanceCeiling is the largest transmittance used to evaluate diffuse irradiance
	transmittanceCeiling = 0.85

	globalTolerance   = 1e-5  // Converged when |TH(P) - TH| is within this
	bracketFloor      = 1e-10 // Bracket narrower than this without convergence gives up
	zeroTransmittance = 1e-9  // Midpoints at or below this are taken as zero
)

// DiffuseModel evaluates diffuse horizontal irradiance (MJ/m²h) for
// atmospheric transmittance p, extraterrestrial normal irradiance in0 and
// the sine of the solar altitude.
type DiffuseModel func(p, in0, sinh float64) float64

// IsMissing reports whether v is the missing-value marker
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// missing returns the missing-value marker
func missing() float64 {
	return math.NaN()
}

// horizontalGlobal is the global irradiance implied by transmittance p: the
// Bouguer beam projected on the horizontal plus the model's diffuse part.
func horizontalGlobal(p, in0, sinh, sh float64) float64 {
	return in0*math.Pow(p, 1/sinh)*sinh + sh
}

// SolveDiffuse finds by bisection the atmospheric transmittance that
// reproduces th under model and returns the diffuse irradiance at that
// transmittance, never more than th. Transmittances beyond 0.85 are clamped.
// It returns the missing-value marker when the bracket collapses without
// converging. TH(P) is not guaranteed monotonic for every model, so the
// search is a heuristic rather than a guaranteed root finder.
func SolveDiffuse(th, sinh, in0 float64, model DiffuseModel) float64 {
	a, b := 0.0, transmittanceUpper

	for {
		p := (a + b) / 2
		sh := model(p, in0, sinh)
		estimate := horizontalGlobal(p, in0, sinh, sh)

		switch {
		case math.Abs(estimate-th) <= globalTolerance:
			if p >= transmittanceCeiling {
				sh = model(transmittanceCeiling, in0, sinh)
			}
			return math.Min(sh, th)
		case a >= transmittanceCeiling:
			return math.Min(model(transmittanceCeiling, in0, sinh), th)
		case b <= 0:
			return math.Min(model(0, in0, sinh), th)
		case p <= zeroTransmittance:
			return math.Min(model(0, in0, sinh), th)
		case math.Abs(a-b) <= bracketFloor:
			return missing()
		case estimate < th:
			a = p
		default:
			b = p
		}
	}
}

// DiffuseByTransmittance applies SolveDiffuse to every hour. Missing global
// irradiance stays missing, hours with the sun at or below the horizon get
// zero, and negative results are floored at zero.
func DiffuseByTransmittance(th, sinh, in0 []float64, model DiffuseModel) []float64 {
	sh := make([]float64, len(th))

	for i := range th {
		switch {
		case IsMissing(th[i]):
			sh[i] = missing()
		case sinh[i] <= 0:
			sh[i] = 0
		default:
			v := SolveDiffuse(th[i], sinh[i], in0[i], model)
			if !IsMissing(v) && v < 0 {
				v = 0
			}
			sh[i] = v
		}
	}

	return sh
}

// NagataDiffuse is Nagata's diffuse irradiance formula
func NagataDiffuse(p, in0, sinh float64) float64 {
	beam := math.Pow(p, 1/sinh)
	return in0 * sinh * (1.0 - beam) * (0.66 - 0.32*sinh) * (0.5 + (0.4-0.3*p)*sinh)
}

// WatanabeDiffuse is Watanabe's diffuse irradiance formula. The fit is
// unstable above p = 1, so p is clamped there.
func WatanabeDiffuse(p, in0, sinh float64) float64 {
	if p >= 1.0 {
		p = 1.0
	}

	q := (0.8672 + 0.7505*sinh) * math.Pow(p, 0.421/sinh) * math.Pow(1-math.Pow(p, 1/sinh), 2.277)
	return in0 * sinh * (q / (1 + q))
}
