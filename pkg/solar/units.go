package solar

import "math"

// mjPerWattHour converts an hourly mean power density (W/m²) to energy (MJ/m²h)
const mjPerWattHour = 3600 * 1e-6

// degToRad converts an angle from degrees to radians for trigonometric calculations
func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// radToDeg converts an angle from radians to degrees for human-readable output
func radToDeg(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}

// MJToW converts hourly irradiation in MJ/m²h to mean irradiance in W/m²
func MJToW(mj float64) float64 {
	return mj / mjPerWattHour
}

// WToMJ converts mean irradiance in W/m² to hourly irradiation in MJ/m²h
func WToMJ(w float64) float64 {
	return w * mjPerWattHour
}
