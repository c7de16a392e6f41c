// Copyright 2013 Sonia Keys
// License: MIT

package nguhanh_test

import (
	"testing"

	"github.com/tienminh/laso/nguhanh"
)

func TestSinh(t *testing.T) {
	// The full generation cycle Thuỷ→Mộc→Hoả→Thổ→Kim→Thuỷ.
	cycle := []nguhanh.Hanh{
		nguhanh.Thuy, nguhanh.Moc, nguhanh.Hoa, nguhanh.Tho, nguhanh.Kim,
	}
	for i, h := range cycle {
		next := cycle[(i+1)%len(cycle)]
		if h.Sinh() != next {
			t.Errorf("%v.Sinh() = %v, want %v", h, h.Sinh(), next)
		}
		if next.SinhBoi() != h {
			t.Errorf("%v.SinhBoi() = %v, want %v", next, next.SinhBoi(), h)
		}
	}
}

func TestKhac(t *testing.T) {
	// The control cycle Thuỷ→Hoả→Kim→Mộc→Thổ→Thuỷ.
	cycle := []nguhanh.Hanh{
		nguhanh.Thuy, nguhanh.Hoa, nguhanh.Kim, nguhanh.Moc, nguhanh.Tho,
	}
	for i, h := range cycle {
		next := cycle[(i+1)%len(cycle)]
		if h.Khac() != next {
			t.Errorf("%v.Khac() = %v, want %v", h, h.Khac(), next)
		}
		if next.KhacBoi() != h {
			t.Errorf("%v.KhacBoi() = %v, want %v", next, next.KhacBoi(), h)
		}
	}
}

func TestTuongSinhKhac(t *testing.T) {
	if !nguhanh.TuongSinh(nguhanh.Thuy, nguhanh.Moc) {
		t.Error("Thuỷ and Mộc are tương sinh")
	}
	if nguhanh.TuongSinh(nguhanh.Thuy, nguhanh.Hoa) {
		t.Error("Thuỷ and Hoả are not tương sinh")
	}
	if !nguhanh.TuongKhac(nguhanh.Thuy, nguhanh.Hoa) {
		t.Error("Thuỷ and Hoả are tương khắc")
	}
	if !nguhanh.TuongKhac(nguhanh.Moc, nguhanh.Tho) {
		t.Error("Mộc and Thổ are tương khắc")
	}
}

func TestFromName(t *testing.T) {
	for h := nguhanh.Kim; h <= nguhanh.Tho; h++ {
		got, err := nguhanh.FromName(h.String())
		if err != nil || got != h {
			t.Errorf("FromName(%q) = %v, %v", h.String(), got, err)
		}
	}
	if _, err := nguhanh.FromName("Sắt"); err != nguhanh.ErrInvalidHanh {
		t.Errorf("FromName unknown err = %v", err)
	}
}
