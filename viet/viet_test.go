// Copyright 2013 Sonia Keys
// License: MIT

package viet_test

import (
	"testing"

	"github.com/tienminh/laso/viet"
)

func TestLocalize(t *testing.T) {
	for _, c := range []struct{ in, want string }{
		{"Giap", "Giáp"},
		{"At", "Ất"},
		{"Dinh", "Đinh"},
		{"Canh", "Canh"},
		{"Ty", "Tỵ"},
		{"Hoi", "Hợi"},
		{"Thang", "Thang"}, // outside the token set
	} {
		if got := viet.Localize(c.in); got != c.want {
			t.Errorf("Localize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPhrase(t *testing.T) {
	for _, c := range []struct{ in, want string }{
		{"At Hoi", "Ất Hợi"},
		{"Mau Tuat", "Mậu Tuất"},
		{"Giap Ti", "Giáp Tí"},
	} {
		if got := viet.Phrase(c.in); got != c.want {
			t.Errorf("Phrase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStripInvertsLocalize(t *testing.T) {
	for _, tok := range []string{
		"Giap", "At", "Binh", "Dinh", "Mau", "Ky", "Canh", "Tan",
		"Nham", "Quy", "Ti", "Suu", "Dan", "Mao", "Thin", "Ty",
		"Ngo", "Mui", "Than", "Dau", "Tuat", "Hoi",
	} {
		if got := viet.Strip(viet.Localize(tok)); got != tok {
			t.Errorf("Strip(Localize(%q)) = %q", tok, got)
		}
	}
}
