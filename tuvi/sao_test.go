// Copyright 2013 Sonia Keys
// License: MIT

package tuvi_test

import (
	"testing"

	"github.com/tienminh/laso/tuvi"
)

func TestCatalogNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range tuvi.Catalog {
		if s.Name == "" {
			t.Fatal("catalog entry with empty name")
		}
		if seen[s.Name] {
			t.Errorf("duplicate star name %q", s.Name)
		}
		seen[s.Name] = true
	}
	if len(tuvi.Catalog) != 120 {
		t.Errorf("catalog has %d entries, want 120", len(tuvi.Catalog))
	}
}

func TestThienPhuMirrorsTuVi(t *testing.T) {
	// Thiên Phủ is the reflection of Tử Vi through the axis between
	// cells 5 and 6, so their cells always sum to 6 or 18 (mod 12).
	for _, c := range scenarios {
		ch, err := tuvi.BuildChart(c.y, c.m, c.d, c.h, c.min, 0, c.g, 2023, "")
		if err != nil {
			t.Fatal(err)
		}
		tv, tp := 0, 0
		for _, cell := range ch.DiaBan {
			for _, p := range cell.ChinhTinh {
				switch p.Sao.Name {
				case "Tử Vi":
					tv = cell.ID
				case "Thiên Phủ":
					tp = cell.ID
				}
			}
		}
		if tv == 0 || tp == 0 {
			t.Fatalf("%d-%d-%d: Tử Vi at %d, Thiên Phủ at %d", c.y, c.m, c.d, tv, tp)
		}
		if s := (tv + tp) % 12; s != 6 {
			t.Errorf("%d-%d-%d: mirror broken, Tử Vi %d + Thiên Phủ %d", c.y, c.m, c.d, tv, tp)
		}
	}
}

func TestLifeCycleRing(t *testing.T) {
	// The twelve stations cover the twelve cells, one each, starting
	// from Trường Sinh.
	for _, c := range scenarios {
		ch, err := tuvi.BuildChart(c.y, c.m, c.d, c.h, c.min, 0, c.g, 2023, "")
		if err != nil {
			t.Fatal(err)
		}
		seen := map[string]bool{}
		for _, cell := range ch.DiaBan {
			if cell.PhuTinhDuoi == nil {
				t.Fatalf("cell %d without a station", cell.ID)
			}
			seen[cell.PhuTinhDuoi.Sao.Name] = true
		}
		for _, name := range []string{
			"Trường Sinh", "Mộc Dục", "Quan Đới", "Lâm Quan", "Đế Vượng",
			"Suy", "Bệnh", "Tử", "Mộ", "Tuyệt", "Thai", "Dưỡng",
		} {
			if !seen[name] {
				t.Errorf("%d-%d-%d: station %q missing", c.y, c.m, c.d, name)
			}
		}
	}
}

func TestChartsAreDeterministic(t *testing.T) {
	a, err := tuvi.BuildChart(1997, 7, 28, 5, 0, 0, tuvi.Nu, 2023, "x")
	if err != nil {
		t.Fatal(err)
	}
	b, err := tuvi.BuildChart(1997, 7, 28, 5, 0, 0, tuvi.Nu, 2023, "x")
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.DiaBan {
		if len(a.DiaBan[i].PhuTinhTrai) != len(b.DiaBan[i].PhuTinhTrai) ||
			len(a.DiaBan[i].PhuTinhPhai) != len(b.DiaBan[i].PhuTinhPhai) {
			t.Fatalf("cell %d differs between identical builds", i+1)
		}
		for j := range a.DiaBan[i].PhuTinhTrai {
			x, y := a.DiaBan[i].PhuTinhTrai[j], b.DiaBan[i].PhuTinhTrai[j]
			if x.Sao != y.Sao || x.TrangThai != y.TrangThai {
				t.Fatalf("cell %d star %d differs", i+1, j)
			}
		}
	}
}

func TestPlacementLabel(t *testing.T) {
	var tv, taPhu *tuvi.Sao
	for _, s := range tuvi.Catalog {
		switch s.Name {
		case "Tử Vi":
			tv = s
		case "Tả Phù":
			taPhu = s
		}
	}
	if got := (tuvi.Placement{Sao: tv, TrangThai: tuvi.Mieu}).Label(); got != "Tử Vi(Miếu)" {
		t.Errorf("Label = %q", got)
	}
	if got := (tuvi.Placement{Sao: taPhu}).Label(); got != "Tả Phù" {
		t.Errorf("Label = %q", got)
	}
}
