// Copyright 2013 Sonia Keys
// License: MIT

// Lunisolar: conversion between the civil calendar and the Vietnamese
// lunisolar calendar.
//
// The Vietnamese calendar is anchored at civil offset UTC+7.  A lunar
// month begins on the local day of a new moon; the month containing the
// winter solstice is month 11.  A year of thirteen months inserts a
// leap month at the first month whose solar-longitude sector repeats
// the previous month's.
package lunisolar

import (
	"math"

	"github.com/tienminh/laso/date"
	"github.com/tienminh/laso/julian"
	"github.com/tienminh/laso/moonphase"
	"github.com/tienminh/laso/solar"
)

// tz is the fixed civil offset of the calendar in hours.
const tz = 7

// synodic month in days
const lunation = 29.530588861

// NewMoonDay returns the Julian day number, at local midnight UTC+7, of
// the day containing the k-th new moon.
func NewMoonDay(k int) int {
	return int(moonphase.NewMoon(k) + tz/24. + .5)
}

// SunSector maps the apparent solar longitude at the end of the local
// day before jd to an integer sector 0..11 of the ecliptic.
//
// The sector boundaries are the principal terms (trung khí) of the
// calendar; sector changes between successive new moons decide month
// numbering and leap insertion.
func SunSector(jd int) int {
	λ := solar.ApparentLongitude(float64(jd) - tz/24. - .5)
	return int(λ.Rad() / math.Pi * 6)
}

// Month11 returns the Julian day number of the first day of lunar month
// 11 of the given civil year, the month containing the winter solstice.
func Month11(year int) int {
	off := julian.JD(date.Date{Year: year, Month: 12, Day: 31}) -
		moonphase.NewMoon(0) + .5
	k := int(math.Floor(off / lunation))
	jd := NewMoonDay(k)
	if SunSector(jd) >= 9 {
		jd = NewMoonDay(k - 1)
	}
	return jd
}

// LeapMonthOffset returns the offset, counted in months from the month
// starting at jd, of the leap-month insertion point.  jd should be a
// month-11 start as returned by Month11.
func LeapMonthOffset(jd int) int {
	k := int(math.Floor((float64(jd)-moonphase.NewMoon(0))/lunation + .5))
	last := 0
	i := 1 // start with the month following lunar month 11
	arc := SunSector(NewMoonDay(k + i))
	for i < 14 {
		last = arc
		i++
		arc = SunSector(NewMoonDay(k + i))
		if arc == last {
			break
		}
	}
	return i - 1
}

// SolarToLunar converts a civil date to the Vietnamese lunisolar
// calendar.  The time of day is ignored.
func SolarToLunar(d date.Solar) date.Lunar {
	jd := julian.JD(d.Date.StripTime()) + .5
	k := int(math.Floor((jd - moonphase.NewMoon(0)) / lunation))
	monthStart := NewMoonDay(k + 1)
	if float64(monthStart) > jd {
		monthStart = NewMoonDay(k)
	}

	a11 := Month11(d.Year)
	b11 := a11
	year := d.Year
	if a11 >= monthStart {
		a11 = Month11(d.Year - 1)
	} else {
		year = d.Year + 1
		b11 = Month11(d.Year + 1)
	}

	day := int(jd-float64(monthStart)) + 1
	diff := (monthStart - a11) / 29
	month := diff + 11

	if b11-a11 > 365 {
		if diff >= LeapMonthOffset(a11) {
			month = diff + 10
		}
	}
	if month > 12 {
		month -= 12
	}
	if month >= 11 && diff < 4 {
		year--
	}
	return date.Lunar{Date: date.Date{Year: year, Month: month, Day: day}}
}

// LunarToSolar converts a Vietnamese lunisolar date to the civil
// calendar.
func LunarToSolar(d date.Lunar) date.Solar {
	var a11, b11 int
	if d.Month < 11 {
		a11 = Month11(d.Year - 1)
		b11 = Month11(d.Year)
	} else {
		a11 = Month11(d.Year)
		b11 = Month11(d.Year + 1)
	}

	k := int(math.Floor((float64(a11)-moonphase.NewMoon(0))/lunation + .5))
	off := d.Month - 11
	if off < 0 {
		off += 12
	}

	if b11-a11 > 365 {
		leapOff := LeapMonthOffset(a11)
		leapMonth := leapOff - 2
		if leapMonth < 0 {
			leapMonth += 12
		}
		switch {
		case LeapLunarYear(d.Year) && d.Month != leapMonth:
			if off >= leapOff {
				off++
			}
		case LeapLunarYear(d.Year) || off >= leapOff:
			off++
		}
	}

	monthStart := NewMoonDay(k + off)
	s, _ := julian.DateFromJD(float64(monthStart) + float64(d.Day) - 1 - .5)
	return date.Solar{Date: s.StripTime()}
}

// LeapLunarYear reports whether the lunar year has a leap month.
func LeapLunarYear(y int) bool {
	switch ((y % 19) + 19) % 19 {
	case 0, 3, 6, 9, 11, 14, 17:
		return true
	}
	return false
}
