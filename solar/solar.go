// Copyright 2013 Sonia Keys
// License: MIT

// Solar: apparent longitude of the Sun, truncated series.
//
// Geometric mean longitude, mean anomaly and the equation of center
// give the true longitude; a flat aberration term and the Ω nutation
// term give the apparent longitude.  The higher-order VSOP87 theory is
// deliberately not used: the lunisolar calendar anchors depend on this
// exact truncation.
package solar

import (
	"github.com/soniakeys/unit"

	"github.com/tienminh/laso/base"
)

// True returns the true geometric longitude and anomaly of the Sun
// referenced to the mean equinox of date.
//
// Argument T is the number of Julian centuries since J2000.
// See base.J2000Century.
func True(T float64) (s, ν unit.Angle) {
	L0 := unit.AngleFromDeg(base.Horner(T, 280.46646, 36000.76983, 0.0003032))
	M := MeanAnomaly(T)
	C := unit.AngleFromDeg(base.Horner(T, 1.914602, -0.004817, -.000014)*
		M.Sin() +
		(0.019993-.000101*T)*M.Mul(2).Sin() +
		0.000289*M.Mul(3).Sin())
	return (L0 + C).Mod1(), (M + C).Mod1()
}

// MeanAnomaly returns the mean anomaly of Earth at the given T.
//
// Result is not normalized to the range 0..2π.
func MeanAnomaly(T float64) unit.Angle {
	return unit.AngleFromDeg(base.Horner(T, 357.52911, 35999.05029, -0.0001537))
}

// Eccentricity returns the eccentricity of the Earth's orbit.
func Eccentricity(T float64) float64 {
	return base.Horner(T, 0.016708634, -0.000042037, -0.0000001267)
}

// Radius returns the Sun-Earth distance in AU.
func Radius(T float64) float64 {
	_, ν := True(T)
	e := Eccentricity(T)
	return 1.000001018 * (1 - e*e) / (1 + e*ν.Cos())
}

func node(T float64) unit.Angle {
	return unit.AngleFromDeg(125.04 - 1934.136*T)
}

// ApparentLongitude returns the apparent longitude of the Sun
// referenced to the true equinox of date, reduced to [0, 2π).
//
// The argument is a Julian day; the result includes the flat
// corrections for nutation and aberration.
func ApparentLongitude(jd float64) unit.Angle {
	T := base.J2000Century(jd)
	s, _ := True(T)
	return (s - unit.AngleFromDeg(.00569) -
		unit.AngleFromDeg(.00478).Mul(node(T).Sin())).Mod1()
}
