// Copyright 2013 Sonia Keys
// License: MIT

package base

// JMod is the Julian date of the modified Julian date epoch.
const JMod = 2400000.5

// J2000 is the Julian date corresponding to January 1.5, year 2000.
const J2000 = 2451545.0

// JulianYear and JulianCentury in days.
const (
	JulianYear    = 365.25
	JulianCentury = 36525
)

// J2000Century returns the number of Julian centuries since J2000.
//
// The quantity appears as T in the solar longitude series.
func J2000Century(jde float64) float64 {
	return (jde - J2000) / JulianCentury
}
