// Copyright 2013 Sonia Keys
// License: MIT

// Date: the calendar instant used throughout the module.
//
// A Date is an ordered tuple of year, month, day, hour, minute and
// second.  The same representation serves both the civil (Gregorian)
// and the Vietnamese lunisolar calendar; the Solar and Lunar wrapper
// types mark which calendar a value belongs to.  Values are immutable:
// derived dates are new values.
package date

import (
	"errors"
	"fmt"
)

// Validation errors returned by New.
var (
	ErrInvalidMonth  = errors.New("date: invalid month")
	ErrInvalidDay    = errors.New("date: invalid day")
	ErrInvalidHour   = errors.New("date: invalid hour")
	ErrInvalidMinute = errors.New("date: invalid minute")
	ErrInvalidSecond = errors.New("date: invalid second")
)

// A Date is a calendar instant.  The zero value is the (unused)
// instant year 0, month 0, day 0, midnight.
type Date struct {
	Year, Month, Day     int
	Hour, Minute, Second int
}

// Solar marks a Date as a civil, Gregorian-calendar instant.
type Solar struct{ Date }

// Lunar marks a Date as a Vietnamese lunisolar-calendar instant.
type Lunar struct{ Date }

// New returns a validated Date.
//
// Month must be 1..12 and day must fit the month, with February
// allowing 29 in leap years.  Hour, minute and second are validated as
// clock components; hour 23 is valid even though chart construction
// treats it as the first hour of the following day.
func New(year, month, day, hour, minute, second int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, ErrInvalidMonth
	}
	if day < 1 || day > DaysOfMonth(month, LeapYear(year)) {
		return Date{}, ErrInvalidDay
	}
	if hour < 0 || hour > 23 {
		return Date{}, ErrInvalidHour
	}
	if minute < 0 || minute > 59 {
		return Date{}, ErrInvalidMinute
	}
	if second < 0 || second > 59 {
		return Date{}, ErrInvalidSecond
	}
	return Date{year, month, day, hour, minute, second}, nil
}

// NewSolar is New returning the value as a civil-calendar instant.
func NewSolar(year, month, day, hour, minute, second int) (Solar, error) {
	d, err := New(year, month, day, hour, minute, second)
	return Solar{d}, err
}

// LeapYear returns true for a Gregorian leap year.
func LeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// DaysOfMonth returns the number of days in the given month, with leap
// deciding February.
func DaysOfMonth(month int, leap bool) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 2:
		if leap {
			return 29
		}
		return 28
	}
	return 30
}

// StripTime returns the date with hour, minute and second zeroed.
func (d Date) StripTime() Date {
	return Date{Year: d.Year, Month: d.Month, Day: d.Day}
}

// StripTime returns the solar date with hour, minute and second zeroed.
func (d Solar) StripTime() Solar {
	return Solar{d.Date.StripTime()}
}

// Compare returns -1, 0 or 1 comparing d to other lexicographically by
// the six components.
func (d Date) Compare(other Date) int {
	for _, p := range [6][2]int{
		{d.Year, other.Year},
		{d.Month, other.Month},
		{d.Day, other.Day},
		{d.Hour, other.Hour},
		{d.Minute, other.Minute},
		{d.Second, other.Second},
	} {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}
	return 0
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

func (d Date) String() string {
	n, err := MonthName(d.Month)
	if err != nil {
		n = fmt.Sprintf("month %d", d.Month)
	}
	return fmt.Sprintf("%s %s, %d %02d:%02d:%02d",
		n, Ordinal(d.Day), d.Year, d.Hour, d.Minute, d.Second)
}

// MonthName returns the English month name for month 1..12.
func MonthName(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", ErrInvalidMonth
	}
	return monthNames[month-1], nil
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Ordinal returns the day number with its English ordinal suffix,
// "1st", "2nd", "3rd", "4th" and so on.
func Ordinal(n int) string {
	switch n {
	case 1, 21, 31:
		return fmt.Sprintf("%dst", n)
	case 2, 22:
		return fmt.Sprintf("%dnd", n)
	case 3, 23:
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}
