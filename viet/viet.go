// Copyright 2013 Sonia Keys
// License: MIT

// Viet: Vietnamese localization of the module's bare Latin tokens.
//
// The core packages compute with a closed set of transliterated tokens,
// the ten heavenly stems and twelve earthly branches.  This package
// maps the tokens to their diacritic forms for display, and can strip
// the diacritics back off.  Both directions work token by token over
// whitespace-separated phrases; tokens outside the set pass through
// unchanged.
package viet

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var tokens = map[string]string{
	"Giap": "Giáp",
	"At":   "Ất",
	"Binh": "Bính",
	"Dinh": "Đinh",
	"Mau":  "Mậu",
	"Ky":   "Kỷ",
	"Canh": "Canh",
	"Tan":  "Tân",
	"Nham": "Nhâm",
	"Quy":  "Quý",
	"Ti":   "Tí",
	"Suu":  "Sửu",
	"Dan":  "Dần",
	"Mao":  "Mão",
	"Thin": "Thìn",
	"Ty":   "Tỵ",
	"Ngo":  "Ngọ",
	"Mui":  "Mùi",
	"Than": "Thân",
	"Dau":  "Dậu",
	"Tuat": "Tuất",
	"Hoi":  "Hợi",
}

// strip removes combining marks and flattens the crossed Đ, which does
// not decompose under NFD.
var strip = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Map(func(r rune) rune {
		switch r {
		case 'Đ':
			return 'D'
		case 'đ':
			return 'd'
		}
		return r
	}),
	norm.NFC,
)

// Localize returns the diacritic Vietnamese form of a single bare
// Latin token, in composed (NFC) form.  An unknown token is returned
// unchanged.
func Localize(tok string) string {
	if v, ok := tokens[tok]; ok {
		return norm.NFC.String(v)
	}
	return tok
}

// Phrase localizes each whitespace-separated token of s, rejoining with
// single spaces.
func Phrase(s string) string {
	f := strings.Fields(s)
	for i, tok := range f {
		f[i] = Localize(tok)
	}
	return strings.Join(f, " ")
}

// Strip returns s with Vietnamese diacritics removed, the inverse of
// Localize over the token set.
func Strip(s string) string {
	out, _, err := transform.String(strip, s)
	if err != nil {
		return s
	}
	return out
}
