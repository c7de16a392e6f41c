// Copyright 2013 Sonia Keys
// License: MIT

package tuvi

// The life-cycle ring (vòng Trường Sinh): twelve stations, one per
// cell.  Trường Sinh starts at a cell fixed by the cục; each following
// station advances one cell in the chart direction.
var truongSinhStart = map[Cuc]int{
	ThuyNhi: 9,
	MocTam:  12,
	KimTu:   6,
	ThoNgu:  9,
	HoaLuc:  3,
}

var saoTruongSinh = &Sao{
	Name: "Trường Sinh", Loai: PhuTinhDuoi, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		return truongSinhStart[c.cuc], TrangThaiNone
	},
}

// station builds the rule for the n-th station after Trường Sinh.
func station(n int) func(c *evalContext) (int, TrangThai) {
	return func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoTruongSinh) - 1 + n*c.d), TrangThaiNone
	}
}

var (
	saoMocDuc  = &Sao{Name: "Mộc Dục", Loai: PhuTinhDuoi, Bold: true, pos: station(1)}
	saoQuanDoi = &Sao{Name: "Quan Đới", Loai: PhuTinhDuoi, Bold: true, pos: station(2)}
	saoLamQuan = &Sao{Name: "Lâm Quan", Loai: PhuTinhDuoi, Bold: true, pos: station(3)}
	saoDeVuong = &Sao{Name: "Đế Vượng", Loai: PhuTinhDuoi, Bold: true, pos: station(4)}
	saoSuy     = &Sao{Name: "Suy", Loai: PhuTinhDuoi, Bold: true, pos: station(5)}
	saoBenh    = &Sao{Name: "Bệnh", Loai: PhuTinhDuoi, Bold: true, pos: station(6)}
	saoTu      = &Sao{Name: "Tử", Loai: PhuTinhDuoi, Bold: true, pos: station(7)}
	saoMo      = &Sao{Name: "Mộ", Loai: PhuTinhDuoi, Bold: true, pos: station(8)}
	saoTuyet   = &Sao{Name: "Tuyệt", Loai: PhuTinhDuoi, Bold: true, pos: station(9)}
	saoThai    = &Sao{Name: "Thai", Loai: PhuTinhDuoi, Bold: true, pos: station(10)}
	saoDuong   = &Sao{Name: "Dưỡng", Loai: PhuTinhDuoi, Bold: true, pos: station(11)}
)

// The Tuần overlay.  The branch-minus-stem expression lands two cells
// past the void pair; the further fixed back-shift is carried verbatim
// from the reference tables, which every known vector confirms.
var saoTuan = &Sao{
	Name: "Tuần", Loai: LoaiNone, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		after2 := wrap12(int(c.chiNam) - 1 - (int(c.canNam) - 1))
		return wrap12(after2 - 3), TrangThaiNone
	},
}

// The Triệt overlay, keyed by the year stem.
var saoTriet = &Sao{
	Name: "Triệt", Loai: LoaiNone, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [10]int{9, 7, 5, 3, 1, 9, 7, 5, 3, 1}
		return t[c.canNam-1], TrangThaiNone
	},
}
