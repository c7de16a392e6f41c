// Copyright 2013 Sonia Keys
// License: MIT

package tuvi_test

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/tienminh/laso/date"
	"github.com/tienminh/laso/tuvi"
)

var scenarios = []struct {
	y, m, d, h, min               int
	g                             tuvi.GioiTinh
	amDuong, cuc, menh, noiCuThan string
	chuMenh                       string
}{
	{1991, 7, 3, 5, 50, tuvi.Nam,
		"Âm Nam", "Mộc tam cục", "Lộ Bàng Thổ", "Thân cư Thiên Di", "Văn Khúc"},
	{1997, 7, 28, 5, 0, tuvi.Nu,
		"Âm Nữ", "Hoả lục cục", "Giản Hạ Thuỷ", "Thân cư Thiên Di", "Liêm Trinh"},
	{1994, 11, 2, 16, 0, tuvi.Nu,
		"Dương Nữ", "Hoả lục cục", "Sơn Đầu Hoả", "Thân cư Quan Lộc", "Lộc Tồn"},
	{1997, 12, 25, 20, 0, tuvi.Nu,
		"Âm Nữ", "Kim tứ cục", "Giản Hạ Thuỷ", "Thân cư Tài Bạch", "Lộc Tồn"},
	{2002, 8, 16, 10, 30, tuvi.Nu,
		"Dương Nữ", "Kim tứ cục", "Dương Liễu Mộc", "Thân cư Phu", "Văn Khúc"},
}

func TestBuildChartHeaders(t *testing.T) {
	for _, c := range scenarios {
		ch, err := tuvi.BuildChart(c.y, c.m, c.d, c.h, c.min, 0, c.g, 2023, "Tử vi Tiến Minh")
		if err != nil {
			t.Fatalf("BuildChart(%d-%d-%d): %v", c.y, c.m, c.d, err)
		}
		if ch.AmDuong != c.amDuong {
			t.Errorf("%d-%d-%d: AmDuong = %q, want %q", c.y, c.m, c.d, ch.AmDuong, c.amDuong)
		}
		if ch.Cuc.String() != c.cuc {
			t.Errorf("%d-%d-%d: Cuc = %q, want %q", c.y, c.m, c.d, ch.Cuc, c.cuc)
		}
		if ch.BanMenh.Name != c.menh {
			t.Errorf("%d-%d-%d: BanMenh = %q, want %q", c.y, c.m, c.d, ch.BanMenh.Name, c.menh)
		}
		if ch.NoiCuThan != c.noiCuThan {
			t.Errorf("%d-%d-%d: NoiCuThan = %q, want %q", c.y, c.m, c.d, ch.NoiCuThan, c.noiCuThan)
		}
		if ch.ChuMenh != c.chuMenh {
			t.Errorf("%d-%d-%d: ChuMenh = %q, want %q", c.y, c.m, c.d, ch.ChuMenh, c.chuMenh)
		}
	}
}

func TestChartInvariants(t *testing.T) {
	for _, c := range scenarios {
		ch, err := tuvi.BuildChart(c.y, c.m, c.d, c.h, c.min, 0, c.g, 2023, "")
		if err != nil {
			t.Fatalf("BuildChart(%d-%d-%d): %v", c.y, c.m, c.d, err)
		}
		checkChart(t, ch)
	}
}

func checkChart(t *testing.T, ch *tuvi.Chart) {
	t.Helper()

	// Palace names are twelve distinct non-empty labels with exactly
	// one Mệnh and one body palace.
	names := map[string]bool{}
	menh, than := 0, 0
	for _, cell := range ch.DiaBan {
		name := strings.TrimSuffix(cell.Name, " <THÂN>")
		if name == "" || names[name] {
			t.Errorf("palace name %q missing or duplicated", name)
		}
		names[name] = true
		if name == "MỆNH" {
			menh++
		}
		if cell.CungThan {
			than++
			if !strings.HasSuffix(cell.Name, " <THÂN>") {
				t.Errorf("body palace cell %d lacks the <THÂN> suffix", cell.ID)
			}
		}
	}
	if menh != 1 || than != 1 {
		t.Errorf("Mệnh cells = %d, Thân cells = %d; want 1 and 1", menh, than)
	}

	// Every catalog star lands exactly once: in a list, as a cell's
	// life-cycle station, or as an overlay.
	count := 2 // Tuần, Triệt
	for _, cell := range ch.DiaBan {
		count += len(cell.ChinhTinh) + len(cell.PhuTinhTrai) + len(cell.PhuTinhPhai)
		if cell.PhuTinhDuoi == nil {
			t.Errorf("cell %d has no life-cycle station", cell.ID)
		} else {
			count++
		}
	}
	if count != len(tuvi.Catalog) {
		t.Errorf("placed %d stars, catalog has %d", count, len(tuvi.Catalog))
	}
	if ch.ViTriTuan < 1 || ch.ViTriTuan > 12 || ch.ViTriTriet < 1 || ch.ViTriTriet > 12 {
		t.Errorf("overlays at %d, %d", ch.ViTriTuan, ch.ViTriTriet)
	}

	// Decadal bands are {c, c+10, …, c+110}.
	bands := map[int]bool{}
	for _, cell := range ch.DiaBan {
		bands[cell.DaiHan] = true
	}
	for i := 0; i < 12; i++ {
		if !bands[ch.Cuc.Number()+10*i] {
			t.Errorf("decadal band %d missing", ch.Cuc.Number()+10*i)
		}
	}

	// Monthly labels are Tháng 1..12, annual labels twelve distinct
	// branches.
	months := map[string]bool{}
	tieu := map[string]bool{}
	for _, cell := range ch.DiaBan {
		months[cell.NguyetHan] = true
		tieu[cell.TieuHan] = true
	}
	for i := 1; i <= 12; i++ {
		if !months[fmt.Sprintf("Tháng %d", i)] {
			t.Errorf("monthly label Tháng %d missing", i)
		}
	}
	if len(tieu) != 12 {
		t.Errorf("annual labels not distinct: %v", tieu)
	}

	// Monthly labels run forward around the ring.
	var start int
	for i, cell := range ch.DiaBan {
		if cell.NguyetHan == "Tháng 1" {
			start = i
		}
	}
	for i := 0; i < 12; i++ {
		want := fmt.Sprintf("Tháng %d", i+1)
		if got := ch.DiaBan[(start+i)%12].NguyetHan; got != want {
			t.Errorf("cell %d monthly label = %q, want %q", (start+i)%12+1, got, want)
		}
	}

	// Cell lists are sorted by order.
	for _, cell := range ch.DiaBan {
		for _, l := range [][]tuvi.Placement{cell.ChinhTinh, cell.PhuTinhTrai, cell.PhuTinhPhai} {
			for i := 1; i < len(l); i++ {
				if l[i-1].Sao.Order > l[i].Sao.Order {
					t.Errorf("cell %d list out of order: %s after %s",
						cell.ID, l[i-1].Sao.Name, l[i].Sao.Name)
				}
			}
		}
	}
}

func TestHourRollover(t *testing.T) {
	// A birth at 23:30 of a day is the chart of the next day at 00:00;
	// only the header keeps the entered figures.
	late, err := tuvi.BuildChart(1994, 11, 2, 23, 30, 0, tuvi.Nu, 2023, "")
	if err != nil {
		t.Fatal(err)
	}
	next, err := tuvi.BuildChart(1994, 11, 3, 0, 0, 0, tuvi.Nu, 2023, "")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(late.DiaBan, next.DiaBan) {
		t.Error("rollover chart cells differ from next-day chart")
	}
	if late.LunarBirth != next.LunarBirth {
		t.Errorf("rollover lunar date %v, next-day %v", late.LunarBirth.Date, next.LunarBirth.Date)
	}
	if late.Birth.Hour != 23 || late.Birth.Minute != 30 {
		t.Errorf("entered figures lost: %v", late.Birth.Date)
	}
	if late.CanonicalBirth.Day != 3 || late.CanonicalBirth.Hour != 0 {
		t.Errorf("canonical birthdate not advanced: %v", late.CanonicalBirth.Date)
	}
}

func TestBuildChartErrors(t *testing.T) {
	if _, err := tuvi.BuildChart(1994, 11, 2, 16, 0, 0, 0, 2023, ""); err != tuvi.ErrInvalidGender {
		t.Errorf("gender err = %v", err)
	}
	if _, err := tuvi.BuildChart(1994, 2, 30, 16, 0, 0, tuvi.Nam, 2023, ""); err != date.ErrInvalidDay {
		t.Errorf("date err = %v", err)
	}
	if _, err := tuvi.BuildChart(1994, 11, 2, 24, 0, 0, tuvi.Nam, 2023, ""); err != date.ErrInvalidHour {
		t.Errorf("hour err = %v", err)
	}
}
