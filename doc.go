// Laso computes Vietnamese astrological birth charts (lá số tử vi).
//
// The module is organized as a set of small packages, leaves first:
//
//	base       arithmetic helpers shared by everything below
//	date       the civil/lunar calendar date value type
//	julian     calendar date ↔ Julian day conversions
//	easter     date of Easter Sunday
//	moonphase  Julian Ephemeris Day of the k-th mean new moon
//	solar      apparent solar longitude, truncated series
//	lunisolar  Gregorian ↔ Vietnamese lunisolar conversion at UTC+7
//	canchi     sexagenary stems and branches
//	nguhanh    the five elements and their relations
//	viet       Vietnamese diacritic localization of bare Latin tokens
//	tuvi       the chart itself: palaces, cục, the star catalog, BuildChart
//	render     fixed canvas coordinates and color codes for rasterizers
//
// The astronomical kernel follows the truncated series published in
// Meeus, "Astronomical Algorithms": chapter 7 for the Julian day,
// chapter 25 for the solar longitude, and chapter 49 for the mean new
// moon, with the coefficient set fixed by the Vietnamese calendar
// reference implementations.  Chart synthesis in package tuvi is a pure
// function of the birth instant, gender, and querent year; a Chart is
// built once and never mutated.
package laso
