// Copyright 2013 Sonia Keys
// License: MIT

// Julian: calendar date ↔ Julian day conversions.
//
// The conversion follows the classical formula, switching from the
// Julian to the Gregorian calendar at 1582 October 15: civil dates
// strictly before the switch take no Gregorian century adjustment.
// Fractional days carry the clock time; the inverse decomposes the
// fraction back to hour, minute and second, rounding to the nearest
// whole second.
package julian

import (
	"errors"
	"math"
	"time"

	"github.com/tienminh/laso/base"
	"github.com/tienminh/laso/date"
)

// ErrNegativeJD is returned by DateFromJD for a negative Julian day.
var ErrNegativeJD = errors.New("julian: negative Julian day")

// gregorianStart is the first day of the Gregorian calendar.
var gregorianStart = date.Date{Year: 1582, Month: 10, Day: 15}

// FractionalDay returns the day of the month including the clock time
// as a day fraction.
func FractionalDay(d date.Date) float64 {
	s := d.Hour*3600 + d.Minute*60 + d.Second
	return float64(d.Day) + float64(s)/86400
}

// DecomposeFractionalDay splits a fractional day into whole days, hour,
// minute and second, rounding to the nearest whole second.
func DecomposeFractionalDay(fd float64) (day, hour, minute, second int) {
	day = int(fd)
	rem := int(math.Round((fd - float64(day)) * 86400))
	second = rem % 60
	m := rem / 60
	minute = m % 60
	hour = m / 60
	return
}

// JD converts a calendar date to Julian day.
//
// Dates before 1582 October 15 are interpreted in the Julian calendar.
func JD(d date.Date) float64 {
	fd, m, y := FractionalDay(d), d.Month, d.Year
	if m <= 2 {
		m += 12
		y--
	}
	b := 0
	if !d.Before(gregorianStart) {
		a := base.FloorDiv(y, 100)
		b = 2 - a + base.FloorDiv(a, 4)
	}
	return float64(int(365.25*float64(y+4716))) +
		float64(int(30.6001*float64(m+1))) + fd + float64(b) - 1524.5
}

// MJD converts a calendar date to Modified Julian Day,
// JD − 2400000.5.  MJD 0.0 is 1858 November 17 at Greenwich midnight.
func MJD(d date.Date) float64 {
	return JD(d) - base.JMod
}

// DateFromJD converts a Julian day to a calendar date.
//
// The result is in the Julian or Gregorian calendar as appropriate.
// A negative jd returns ErrNegativeJD.
func DateFromJD(jd float64) (date.Date, error) {
	if jd < 0 {
		return date.Date{}, ErrNegativeJD
	}
	z := int(jd + .5)
	f := jd + .5 - float64(z)
	a := z
	if z >= 2299161 {
		α := int((float64(z) - 1867216.25) / 36524.25)
		a = z + 1 + α - base.FloorDiv(α, 4)
	}
	b := a + 1524
	c := int((float64(b) - 122.1) / 365.25)
	dd := int(365.25 * float64(c))
	e := int(float64(b-dd) / 30.6001)

	day, hour, minute, second := DecomposeFractionalDay(
		float64(b-dd-int(30.6001*float64(e))) + f)

	month := e - 1
	if e >= 14 {
		month = e - 13
	}
	year := c - 4716
	if month <= 2 {
		year = c - 4715
	}
	return date.Date{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
	}, nil
}

// AddDays returns the date the given number of days after d.
func AddDays(d date.Date, days float64) (date.Date, error) {
	return DateFromJD(JD(d) + days)
}

// SubDays returns the date the given number of days before d.
func SubDays(d date.Date, days float64) (date.Date, error) {
	return DateFromJD(JD(d) - days)
}

// DiffDays returns the absolute difference between two dates in days.
func DiffDays(d1, d2 date.Date) float64 {
	return math.Abs(JD(d1) - JD(d2))
}

// DayOfWeek returns the weekday of a date, Sunday = 0, matching the
// convention of the time package.
func DayOfWeek(d date.Date) time.Weekday {
	return time.Weekday(int(math.Round(JD(d)+1.5)) % 7)
}

// DayOfYear returns the day number of d within its year.
func DayOfYear(d date.Date) int {
	k := 2
	if date.LeapYear(d.Year) {
		k = 1
	}
	return 275*d.Month/9 - k*((d.Month+9)/12) + d.Day - 30
}

// DayOfYearToDate returns the calendar date of day number n in the
// given year.
func DayOfYearToDate(year, n int) date.Date {
	k := 2
	if date.LeapYear(year) {
		k = 1
	}
	m := int(9*float64(k+n)/275 + .98)
	if n < 32 {
		m = 1
	}
	d := n - 275*m/9 + k*((m+9)/12) + 30
	return date.Date{Year: year, Month: m, Day: d}
}
