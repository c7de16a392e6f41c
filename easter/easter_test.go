// Copyright 2013 Sonia Keys
// License: MIT

package easter_test

import (
	"testing"

	"github.com/tienminh/laso/date"
	"github.com/tienminh/laso/easter"
)

func TestSunday(t *testing.T) {
	for _, c := range []struct {
		y, m, d int
	}{
		{1991, 3, 31},
		{1992, 4, 19},
		{1993, 4, 11},
		{1954, 4, 18},
		{2000, 4, 23},
		{1818, 3, 22},
		{1582, 4, 15}, // Julian-calendar year
	} {
		want := date.Date{Year: c.y, Month: c.m, Day: c.d}
		if got := easter.Sunday(c.y); got.Date != want {
			t.Errorf("Sunday(%d) = %v, want %v", c.y, got.Date, want)
		}
	}
}
