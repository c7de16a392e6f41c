// Copyright 2013 Sonia Keys
// License: MIT

package tuvi_test

import (
	"testing"

	"github.com/tienminh/laso/date"
	"github.com/tienminh/laso/tuvi"
)

func solar(y, m, d, h, min int) date.Solar {
	return date.Solar{Date: date.Date{Year: y, Month: m, Day: d, Hour: h, Minute: min}}
}

func TestTimAmDuong(t *testing.T) {
	for _, c := range []struct {
		d    date.Solar
		g    tuvi.GioiTinh
		want string
	}{
		{solar(2002, 3, 1, 0, 0), tuvi.Nam, "Dương Nam"},
		{solar(1997, 7, 28, 5, 0), tuvi.Nu, "Âm Nữ"},
		{solar(1994, 11, 2, 16, 0), tuvi.Nu, "Dương Nữ"},
		{solar(1997, 12, 25, 20, 0), tuvi.Nu, "Âm Nữ"},
		{solar(2002, 8, 16, 10, 30), tuvi.Nu, "Dương Nữ"},
	} {
		got, err := tuvi.TimAmDuong(c.d, c.g)
		if err != nil || got != c.want {
			t.Errorf("TimAmDuong(%v, %v) = %q, %v; want %q", c.d.Date, c.g, got, err, c.want)
		}
	}
	if _, err := tuvi.TimAmDuong(solar(2002, 3, 1, 0, 0), 0); err != tuvi.ErrInvalidGender {
		t.Errorf("invalid gender err = %v", err)
	}
}

func TestTimCuc(t *testing.T) {
	for _, c := range []struct {
		d    date.Solar
		want tuvi.Cuc
	}{
		{solar(1991, 7, 3, 5, 50), tuvi.MocTam},
		{solar(1997, 7, 28, 5, 0), tuvi.HoaLuc},
		{solar(1994, 11, 2, 16, 0), tuvi.HoaLuc},
		{solar(1997, 12, 25, 20, 0), tuvi.KimTu},
		{solar(2002, 8, 16, 10, 30), tuvi.KimTu},
	} {
		if got := tuvi.TimCuc(c.d); got != c.want {
			t.Errorf("TimCuc(%v) = %v, want %v", c.d.Date, got, c.want)
		}
	}
}

func TestTimMenh(t *testing.T) {
	for _, c := range []struct {
		d    date.Solar
		want string
	}{
		{solar(1991, 7, 3, 5, 50), "Lộ Bàng Thổ"},
		{solar(1997, 7, 28, 5, 0), "Giản Hạ Thuỷ"},
		{solar(1994, 11, 2, 16, 0), "Sơn Đầu Hoả"},
		{solar(1997, 12, 25, 20, 0), "Giản Hạ Thuỷ"},
		{solar(2002, 8, 16, 10, 30), "Dương Liễu Mộc"},
	} {
		if got := tuvi.TimMenh(c.d); got.Name != c.want {
			t.Errorf("TimMenh(%v) = %q, want %q", c.d.Date, got.Name, c.want)
		}
	}
}

func TestTimChuMenh(t *testing.T) {
	for _, c := range []struct {
		d    date.Solar
		want string
	}{
		{solar(1991, 7, 3, 5, 50), "Văn Khúc"},
		{solar(1997, 7, 28, 5, 0), "Liêm Trinh"},
		{solar(1994, 11, 2, 16, 0), "Lộc Tồn"},
		{solar(1997, 12, 25, 20, 0), "Lộc Tồn"},
		{solar(2002, 8, 16, 10, 30), "Văn Khúc"},
	} {
		if got := tuvi.TimChuMenh(c.d); got != c.want {
			t.Errorf("TimChuMenh(%v) = %q, want %q", c.d.Date, got, c.want)
		}
	}
}

func TestTimChuThan(t *testing.T) {
	for _, c := range []struct {
		d    date.Solar
		want string
	}{
		{solar(1991, 7, 3, 5, 50), "Thiên Tướng"},
		{solar(1997, 7, 28, 5, 0), "Thiên Tướng"},
		{solar(1994, 11, 2, 16, 0), "Văn Xương"},
		{solar(1997, 12, 25, 20, 0), "Thiên Tướng"},
		{solar(2002, 8, 16, 10, 30), "Hoả Tinh"},
	} {
		if got := tuvi.TimChuThan(c.d); got != c.want {
			t.Errorf("TimChuThan(%v) = %q, want %q", c.d.Date, got, c.want)
		}
	}
}

func TestTimTinhLyAmDuong(t *testing.T) {
	for _, c := range []struct {
		d    date.Solar
		want string
	}{
		{solar(1991, 7, 3, 5, 50), "Âm Dương thuận lý"},
		{solar(1997, 7, 28, 5, 0), "Âm Dương nghịch lý"},
		{solar(1994, 11, 2, 16, 0), "Âm Dương thuận lý"},
		{solar(1997, 12, 25, 20, 0), "Âm Dương nghịch lý"},
		{solar(2002, 8, 16, 10, 30), "Âm Dương nghịch lý"},
	} {
		if got := tuvi.TimTinhLyAmDuong(c.d); got != c.want {
			t.Errorf("TimTinhLyAmDuong(%v) = %q, want %q", c.d.Date, got, c.want)
		}
	}
}

func TestTimCucMenhSinhKhac(t *testing.T) {
	for _, c := range []struct {
		d    date.Solar
		want string
	}{
		{solar(1991, 7, 3, 5, 50), "Cục khắc Mệnh"},
		{solar(1997, 7, 28, 5, 0), "Mệnh khắc Cục"},
		{solar(1994, 11, 2, 16, 0), "Mệnh Cục bình hoà"},
		{solar(1997, 12, 25, 20, 0), "Cục sinh Mệnh"},
		{solar(2002, 8, 16, 10, 30), "Cục khắc Mệnh"},
	} {
		if got := tuvi.TimCucMenhSinhKhac(c.d); got != c.want {
			t.Errorf("TimCucMenhSinhKhac(%v) = %q, want %q", c.d.Date, got, c.want)
		}
	}
}

func TestTimNoiCuThan(t *testing.T) {
	for _, c := range []struct {
		d    date.Solar
		g    tuvi.GioiTinh
		want string
	}{
		{solar(1991, 7, 3, 5, 50), tuvi.Nam, "Thân cư Thiên Di"},
		{solar(1997, 7, 28, 5, 0), tuvi.Nu, "Thân cư Thiên Di"},
		{solar(1994, 11, 2, 16, 0), tuvi.Nu, "Thân cư Quan Lộc"},
		{solar(1997, 12, 25, 20, 0), tuvi.Nu, "Thân cư Tài Bạch"},
		{solar(2002, 8, 16, 10, 30), tuvi.Nu, "Thân cư Phu"},
		{solar(2002, 8, 16, 11, 30), tuvi.Nu, "Thân Mệnh đồng cung"},
	} {
		got, err := tuvi.TimNoiCuThan(c.d, c.g)
		if err != nil || got != c.want {
			t.Errorf("TimNoiCuThan(%v, %v) = %q, %v; want %q", c.d.Date, c.g, got, err, c.want)
		}
	}
	if _, err := tuvi.TimNoiCuThan(solar(1991, 7, 3, 5, 50), 7); err != tuvi.ErrInvalidGender {
		t.Errorf("invalid gender err = %v", err)
	}
}

func TestPalacesPartitionRing(t *testing.T) {
	d := solar(1991, 7, 3, 5, 50)
	cells := []int{
		tuvi.TimViTriMenh(d),
		tuvi.TimCungPhuMau(d),
		tuvi.TimCungPhucDuc(d),
		tuvi.TimCungDienTrach(d),
		tuvi.TimCungQuanLoc(d),
		tuvi.TimCungNoBoc(d),
		tuvi.TimCungThienDi(d),
		tuvi.TimCungTatAch(d),
		tuvi.TimCungTaiBach(d),
		tuvi.TimCungTuTuc(d),
		tuvi.TimCungPhuThe(d),
		tuvi.TimCungHuynhDe(d),
	}
	var seen [13]bool
	for _, c := range cells {
		if c < 1 || c > 12 || seen[c] {
			t.Fatalf("palace cells %v do not partition 1..12", cells)
		}
		seen[c] = true
	}
}
