// Copyright 2013 Sonia Keys
// License: MIT

// Tuvi: the birth chart itself.
//
// The package derives everything the printed chart shows from a civil
// birth instant, a gender, and the querent year: the yin-yang
// designation, the cục, the twelve palaces, the decadal, annual and
// monthly period markers, and the positions and brightness states of
// the stars.  BuildChart runs the whole derivation once and returns an
// immutable Chart snapshot.
//
// The star catalog is declarative: each entry carries fixed metadata
// and a positioning rule.  Rules may depend on other stars' positions;
// the per-chart evaluator memoizes each rule so the dependency graph is
// walked once.  Brightness states are recorded on the chart's
// placements, never on the catalog, so charts may be computed
// concurrently against the shared catalog.
package tuvi

import (
	"errors"

	"github.com/tienminh/laso/nguhanh"
)

// Errors reported by chart construction.  The gender error is an input
// fault; the others surface catalog bugs and should not occur.
var (
	ErrInvalidGender  = errors.New("tuvi: invalid gender")
	ErrInvalidViTri   = errors.New("tuvi: invalid cell position")
	ErrInvalidCuc     = errors.New("tuvi: invalid cục")
	ErrInvalidLoaiSao = errors.New("tuvi: invalid star category")
	ErrUnsolvable     = errors.New("tuvi: rule inputs outside all cases")
)

// GioiTinh is the querent's gender.
type GioiTinh int

// The two genders.  The numeric values are part of the module's
// external interface.
const (
	Nam GioiTinh = 1
	Nu  GioiTinh = -1
)

// Valid reports whether g is one of the two genders.
func (g GioiTinh) Valid() bool { return g == Nam || g == Nu }

func (g GioiTinh) String() string {
	switch g {
	case Nam:
		return "Nam"
	case Nu:
		return "Nữ"
	}
	return "GioiTinh(?)"
}

// AmDuong is a yin-yang polarity, carried by stars and years.
type AmDuong int

// Polarities.  None marks stars with no declared polarity.
const (
	AmDuongNone AmDuong = 0
	Duong       AmDuong = 1
	Am          AmDuong = -1
)

func (a AmDuong) String() string {
	switch a {
	case Duong:
		return "Dương"
	case Am:
		return "Âm"
	}
	return ""
}

// TrangThai is a star's brightness state in its cell.
type TrangThai int

// The five states.  TrangThaiNone marks stars with no state table.
const (
	TrangThaiNone TrangThai = iota
	Mieu
	Vuong
	Dac
	Binh
	Ham
)

var trangThaiNames = [...]string{"", "Miếu", "Vượng", "Đắc", "Bình", "Hãm"}

func (t TrangThai) String() string {
	if t < TrangThaiNone || t > Ham {
		return ""
	}
	return trangThaiNames[t]
}

// LoaiSao routes a star into its cell list.
type LoaiSao int

// Star categories.  LoaiNone marks the Tuần and Triệt overlays, which
// attach to the chart root rather than a cell list.
const (
	LoaiNone LoaiSao = iota
	ChinhTinh
	PhuTinhTrai
	PhuTinhPhai
	PhuTinhDuoi
)

// Cuc is one of the five natures.  The numeric value is the cục
// number, the base of the decadal bands.
type Cuc int

// The five cục, by number.
const (
	ThuyNhi Cuc = 2
	MocTam  Cuc = 3
	KimTu   Cuc = 4
	ThoNgu  Cuc = 5
	HoaLuc  Cuc = 6
)

// Number returns the cục number, 2..6.
func (c Cuc) Number() int { return int(c) }

func (c Cuc) String() string {
	switch c {
	case ThuyNhi:
		return "Thuỷ nhị cục"
	case MocTam:
		return "Mộc tam cục"
	case KimTu:
		return "Kim tứ cục"
	case ThoNgu:
		return "Thổ ngũ cục"
	case HoaLuc:
		return "Hoả lục cục"
	}
	return "Cuc(?)"
}

// Hanh returns the element of the cục.
func (c Cuc) Hanh() nguhanh.Hanh {
	switch c {
	case ThuyNhi:
		return nguhanh.Thuy
	case MocTam:
		return nguhanh.Moc
	case KimTu:
		return nguhanh.Kim
	case ThoNgu:
		return nguhanh.Tho
	}
	return nguhanh.Hoa
}
