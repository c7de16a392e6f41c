// Copyright 2013 Sonia Keys
// License: MIT

// Canchi: the sexagenary cycle of heavenly stems (can) and earthly
// branches (chi).
//
// Stems are indexed 1..10 from Giáp, branches 1..12 from Tí.  Names
// are bare Latin transliterations; package viet supplies the diacritic
// forms.  The pair functions map a calendar date to the stem and
// branch of its year, month, day and hour.
package canchi

import (
	"errors"
	"math"

	"github.com/tienminh/laso/date"
	"github.com/tienminh/laso/julian"
	"github.com/tienminh/laso/viet"
)

// Range errors for stem and branch indices.
var (
	ErrInvalidCan = errors.New("canchi: invalid stem")
	ErrInvalidChi = errors.New("canchi: invalid branch")
)

// CanOf returns the stem with the given 1-based index.
func CanOf(i int) (Can, error) {
	if i < 1 || i > 10 {
		return 0, ErrInvalidCan
	}
	return Can(i), nil
}

// ChiOf returns the branch with the given 1-based index.
func ChiOf(i int) (Chi, error) {
	if i < 1 || i > 12 {
		return 0, ErrInvalidChi
	}
	return Chi(i), nil
}

// A Can is a heavenly stem, 1..10.
type Can int

// The ten stems.
const (
	Giap Can = 1 + iota
	At
	Binh
	Dinh
	Mau
	Ky
	Canh
	Tan
	Nham
	Quy
)

var canNames = [10]string{
	"Giap", "At", "Binh", "Dinh", "Mau", "Ky", "Canh", "Tan", "Nham", "Quy",
}

// String returns the bare Latin name of the stem.
func (c Can) String() string {
	if c < 1 || c > 10 {
		return "Can(?)"
	}
	return canNames[c-1]
}

// Viet returns the diacritic Vietnamese name of the stem.
func (c Can) Viet() string { return viet.Localize(c.String()) }

// Valid reports whether the stem index is in range.
func (c Can) Valid() bool { return 1 <= c && c <= 10 }

// A Chi is an earthly branch, 1..12.
type Chi int

// The twelve branches.
const (
	Ti Chi = 1 + iota
	Suu
	Dan
	Mao
	Thin
	Ty
	Ngo
	Mui
	Than
	Dau
	Tuat
	Hoi
)

var chiNames = [12]string{
	"Ti", "Suu", "Dan", "Mao", "Thin", "Ty",
	"Ngo", "Mui", "Than", "Dau", "Tuat", "Hoi",
}

// String returns the bare Latin name of the branch.
func (c Chi) String() string {
	if c < 1 || c > 12 {
		return "Chi(?)"
	}
	return chiNames[c-1]
}

// Viet returns the diacritic Vietnamese name of the branch.
func (c Chi) Viet() string { return viet.Localize(c.String()) }

// Valid reports whether the branch index is in range.
func (c Chi) Valid() bool { return 1 <= c && c <= 12 }

// YearPair returns the stem and branch of the year of d.
//
// For birth figures the lunar date is the one to pass: the sexagenary
// year follows the lunar year, not the civil one.
func YearPair(d date.Date) (Can, Chi) {
	return Can((d.Year+6)%10 + 1), Chi((d.Year+8)%12 + 1)
}

// MonthPair returns the stem and branch of the month of d.
func MonthPair(d date.Date) (Can, Chi) {
	return Can((d.Year*12+d.Month+3)%10 + 1), Chi((d.Month+1)%12 + 1)
}

// dayNumber is the integer Julian day number of the civil day of d.
func dayNumber(d date.Solar) int {
	return int(math.Round(julian.JD(d.Date.StripTime()) + .5))
}

// DayPair returns the stem and branch of the civil day of d.
func DayPair(d date.Solar) (Can, Chi) {
	jd := dayNumber(d)
	return Can((jd+9)%10 + 1), Chi((jd+1)%12 + 1)
}

// HourChi returns the branch of the double-hour containing the clock
// hour.  Hours 23 and 0 are both Tí.
func HourChi(hour int) Chi {
	if hour == 23 || hour == 0 {
		return Ti
	}
	return Chi((hour-1)/2 + 2)
}

// HourPair returns the stem and branch of the hour of d.  The hour stem
// derives from the day stem by the five-rat rule.
func HourPair(d date.Solar) (Can, Chi) {
	chi := HourChi(d.Hour)
	dayCan := (dayNumber(d)+9)%10 + 1
	return Can((2*((dayCan-1)%5)+int(chi)-1)%10 + 1), chi
}

// YearName returns the localized sexagenary label of the year of d,
// such as "Ất Hợi".
func YearName(d date.Date) string {
	can, chi := YearPair(d)
	return viet.Phrase(can.String() + " " + chi.String())
}

// MonthName returns the localized sexagenary label of the month of d.
func MonthName(d date.Date) string {
	can, chi := MonthPair(d)
	return viet.Phrase(can.String() + " " + chi.String())
}

// DayName returns the localized sexagenary label of the civil day of d.
func DayName(d date.Solar) string {
	can, chi := DayPair(d)
	return viet.Phrase(can.String() + " " + chi.String())
}

// HourName returns the localized sexagenary label of the hour of d.
func HourName(d date.Solar) string {
	can, chi := HourPair(d)
	return viet.Phrase(can.String() + " " + chi.String())
}
