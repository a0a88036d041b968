package separation

import "math"

// ClearnessIndex is the ratio of global irradiance to extraterrestrial
// irradiance on the horizontal, capped at 1.0
func ClearnessIndex(th, in0, sinh float64) float64 {
	return math.Min(1.0, th/(in0*sinh))
}

// ErbsDiffuse estimates diffuse horizontal irradiance with the Erbs
// correlation. Zero or negative global irradiance yields zero.
func ErbsDiffuse(th, in0, sinh float64) float64 {
	switch {
	case IsMissing(th):
		return missing()
	case th <= 0:
		return 0
	}

	kt := ClearnessIndex(th, in0, sinh)
	switch {
	case kt <= 0.22:
		return erbsOvercast(th, kt)
	case kt <= 0.80:
		return erbsIntermediate(th, kt)
	default:
		return erbsClear(th)
	}
}

// ErbsDiffuseSeries applies ErbsDiffuse to every hour
func ErbsDiffuseSeries(th, in0, sinh []float64) []float64 {
	sh := make([]float64, len(th))
	for i := range th {
		sh[i] = ErbsDiffuse(th[i], in0[i], sinh[i])
	}
	return sh
}

// erbsOvercast is the linear branch for kt <= 0.22
func erbsOvercast(th, kt float64) float64 {
	return th * (1.0 - 0.09*kt)
}

// erbsIntermediate is the quartic branch for 0.22 < kt <= 0.80
func erbsIntermediate(th, kt float64) float64 {
	return th * (0.9511 - 0.1604*kt + 4.388*kt*kt - 16.638*math.Pow(kt, 3) + 12.336*math.Pow(kt, 4))
}

// erbsClear is the constant diffuse fraction for kt > 0.80
func erbsClear(th float64) float64 {
	return 0.165 * th
}

// UdagawaDirect estimates direct normal irradiance with the Udagawa
// correlation, floored at zero. Zero or negative global irradiance yields zero.
func UdagawaDirect(th, in0, sinh float64) float64 {
	switch {
	case IsMissing(th):
		return missing()
	case th <= 0:
		return 0
	}

	// Cutoff between the cubic and linear branches, scaled to the horizontal
	kc := udagawaCrossover(sinh) * in0 * sinh
	kt := ClearnessIndex(th, in0, sinh)

	if kt < kc {
		return math.Max(0, udagawaCubic(in0, sinh, kt))
	}
	return math.Max(0, udagawaLinear(in0, kt))
}

// UdagawaDirectSeries applies UdagawaDirect to every hour
func UdagawaDirectSeries(th, in0, sinh []float64) []float64 {
	dn := make([]float64, len(th))
	for i := range th {
		dn[i] = UdagawaDirect(th[i], in0[i], sinh[i])
	}
	return dn
}

// udagawaCrossover is the clearness index where the two Udagawa branches meet
func udagawaCrossover(sinh float64) float64 {
	return 0.5163 + 0.333*sinh + 0.00803*sinh*sinh
}

func udagawaCubic(in0, sinh, kt float64) float64 {
	return in0 * (2.277 - 1.258*sinh + 0.2396*sinh*sinh) * math.Pow(kt, 3)
}

func udagawaLinear(in0, kt float64) float64 {
	return in0 * (-0.43 + 1.43*kt)
}

// DirectFromDiffuse derives direct normal irradiance from global and diffuse
// horizontal irradiance, floored at zero. With the sun exactly on the
// horizon there is no beam to recover and the result is zero.
func DirectFromDiffuse(th, sh, sinh float64) float64 {
	if IsMissing(th) || IsMissing(sh) {
		return missing()
	}
	if sinh == 0 {
		return 0
	}

	dn := (th - sh) / sinh
	if dn <= 0 {
		return 0
	}
	return dn
}

// DiffuseFromDirect derives diffuse horizontal irradiance from global
// horizontal and direct normal irradiance, floored at zero.
func DiffuseFromDirect(th, dn, sinh float64) float64 {
	if IsMissing(th) || IsMissing(dn) {
		return missing()
	}

	sh := th - dn*sinh
	if sh <= 0 {
		return 0
	}
	return sh
}
