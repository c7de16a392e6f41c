// Copyright 2013 Sonia Keys
// License: MIT

package tuvi

import "github.com/tienminh/laso/nguhanh"

// The Tử Vi anchor: cục and lunar day determine both the cell and the
// brightness of Tử Vi, and through it the other thirteen principal
// stars.  One table per cục, indexed by lunar day 1..30.
var tuViTable = map[Cuc]*[31]placed{
	ThuyNhi: {
		22: {1, Binh}, 23: {1, Binh},
		1: {2, Dac}, 24: {2, Dac}, 25: {2, Dac},
		2: {3, Mieu}, 3: {3, Mieu}, 26: {3, Mieu}, 27: {3, Mieu},
		4: {4, Binh}, 5: {4, Binh}, 28: {4, Binh}, 29: {4, Binh},
		6: {5, Vuong}, 7: {5, Vuong}, 30: {5, Vuong},
		8: {6, Mieu}, 9: {6, Mieu},
		10: {7, Mieu}, 11: {7, Mieu},
		12: {8, Dac}, 13: {8, Dac},
		14: {9, Mieu}, 15: {9, Mieu},
		16: {10, Binh}, 17: {10, Binh},
		18: {11, Vuong}, 19: {11, Vuong},
		20: {12, Binh}, 21: {12, Binh},
	},
	MocTam: {
		25: {1, Binh},
		2:  {2, Dac}, 28: {2, Dac},
		3: {3, Mieu}, 5: {3, Mieu},
		6: {4, Binh}, 8: {4, Binh},
		1: {5, Vuong}, 9: {5, Vuong}, 11: {5, Vuong},
		4: {6, Mieu}, 12: {6, Mieu}, 14: {6, Mieu},
		7: {7, Mieu}, 15: {7, Mieu}, 17: {7, Mieu},
		10: {8, Dac}, 18: {8, Dac}, 20: {8, Dac},
		13: {9, Mieu}, 21: {9, Mieu}, 23: {9, Mieu},
		16: {10, Binh}, 24: {10, Binh}, 26: {10, Binh},
		19: {11, Vuong}, 27: {11, Vuong}, 29: {11, Vuong},
		22: {12, Binh}, 30: {12, Binh},
	},
	KimTu: {
		5: {1, Binh},
		3: {2, Dac}, 9: {2, Dac},
		4: {3, Mieu}, 7: {3, Mieu}, 13: {3, Mieu},
		8: {4, Binh}, 11: {4, Binh}, 17: {4, Binh},
		2: {5, Vuong}, 12: {5, Vuong}, 15: {5, Vuong}, 21: {5, Vuong},
		6: {6, Mieu}, 16: {6, Mieu}, 19: {6, Mieu}, 25: {6, Mieu},
		10: {7, Mieu}, 20: {7, Mieu}, 23: {7, Mieu}, 29: {7, Mieu},
		14: {8, Dac}, 24: {8, Dac}, 27: {8, Dac},
		18: {9, Mieu}, 28: {9, Mieu},
		22: {10, Binh},
		26: {11, Vuong},
		1:  {12, Binh}, 30: {12, Binh},
	},
	ThoNgu: {
		7: {1, Binh},
		4: {2, Dac}, 12: {2, Dac},
		5: {3, Mieu}, 9: {3, Mieu}, 17: {3, Mieu},
		10: {4, Binh}, 14: {4, Binh}, 22: {4, Binh},
		3: {5, Vuong}, 15: {5, Vuong}, 19: {5, Vuong}, 27: {5, Vuong},
		8: {6, Mieu}, 20: {6, Mieu}, 24: {6, Mieu},
		1: {7, Mieu}, 13: {7, Mieu}, 25: {7, Mieu}, 29: {7, Mieu},
		6: {8, Dac}, 18: {8, Dac}, 30: {8, Dac},
		11: {9, Mieu}, 23: {9, Mieu},
		16: {10, Binh}, 28: {10, Binh},
		21: {11, Vuong},
		2:  {12, Binh}, 26: {12, Binh},
	},
	HoaLuc: {
		9: {1, Binh}, 19: {1, Binh},
		5: {2, Dac}, 15: {2, Dac}, 25: {2, Dac},
		6: {3, Mieu}, 11: {3, Mieu}, 21: {3, Mieu},
		12: {4, Binh}, 17: {4, Binh}, 27: {4, Binh},
		4: {5, Vuong}, 18: {5, Vuong}, 23: {5, Vuong},
		10: {6, Mieu}, 24: {6, Mieu}, 29: {6, Mieu},
		2: {7, Mieu}, 16: {7, Mieu}, 30: {7, Mieu},
		8: {8, Dac}, 22: {8, Dac},
		14: {9, Mieu}, 28: {9, Mieu},
		1:  {10, Binh}, 20: {10, Binh},
		7: {11, Vuong}, 26: {11, Vuong},
		3: {12, Binh}, 13: {12, Binh},
	},
}

var saoTuVi = &Sao{
	Name: "Tử Vi", AmDuong: Duong, Hanh: nguhanh.Tho,
	Loai: ChinhTinh, Order: 1, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		p := tuViTable[c.cuc][c.lunar.Day]
		return p.cell, p.st
	},
}

var thienCoState = [12]TrangThai{
	Dac, Dac, Ham, Mieu, Mieu, Vuong, Dac, Dac, Vuong, Mieu, Mieu, Ham,
}

var saoThienCo = &Sao{
	Name: "Thiên Cơ", AmDuong: Am, Hanh: nguhanh.Moc,
	Loai: ChinhTinh, Order: 1, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoTuVi) - 2)
		return cell, stateOf(&thienCoState, cell)
	},
}

var thaiDuongState = [12]TrangThai{
	Ham, Dac, Vuong, Vuong, Vuong, Mieu, Mieu, Dac, Ham, Ham, Ham, Ham,
}

var saoThaiDuong = &Sao{
	Name: "Thái Dương", AmDuong: Duong, Hanh: nguhanh.Hoa,
	Loai: ChinhTinh, Order: 1, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoThienCo) - 3)
		return cell, stateOf(&thaiDuongState, cell)
	},
}

var vuKhucState = [12]TrangThai{
	Vuong, Mieu, Vuong, Dac, Mieu, Ham, Vuong, Mieu, Vuong, Dac, Mieu, Ham,
}

var saoVuKhuc = &Sao{
	Name: "Vũ Khúc", AmDuong: Am, Hanh: nguhanh.Kim,
	Loai: ChinhTinh, Order: 1, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoThaiDuong) - 2)
		return cell, stateOf(&vuKhucState, cell)
	},
}

var thienDongState = [12]TrangThai{
	Vuong, Ham, Mieu, Dac, Ham, Dac, Ham, Ham, Mieu, Ham, Ham, Dac,
}

var saoThienDong = &Sao{
	Name: "Thiên Đồng", AmDuong: Duong, Hanh: nguhanh.Thuy,
	Loai: ChinhTinh, Order: 1, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoVuKhuc) - 2)
		return cell, stateOf(&thienDongState, cell)
	},
}

var liemTrinhState = [12]TrangThai{
	Vuong, Dac, Vuong, Ham, Mieu, Ham, Vuong, Dac, Vuong, Ham, Mieu, Ham,
}

var saoLiemTrinh = &Sao{
	Name: "Liêm Trinh", AmDuong: Am, Hanh: nguhanh.Hoa,
	Loai: ChinhTinh, Order: 1, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoThienDong) - 4)
		return cell, stateOf(&liemTrinhState, cell)
	},
}

// thienPhuMirror reflects Tử Vi through the axis between cells 5
// and 6.
var thienPhuMirror = [12]int{5, 4, 3, 2, 1, 12, 11, 10, 9, 8, 7, 6}

var thienPhuState = [12]TrangThai{
	Mieu, Binh, Mieu, Binh, Vuong, Dac, Mieu, Dac, Mieu, Binh, Vuong, Dac,
}

var saoThienPhu = &Sao{
	Name: "Thiên Phủ", AmDuong: Duong, Hanh: nguhanh.Tho,
	Loai: ChinhTinh, Order: 2, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := thienPhuMirror[c.pos(saoTuVi)-1]
		return cell, stateOf(&thienPhuState, cell)
	},
}

var thaiAmState = [12]TrangThai{
	Vuong, Dac, Ham, Ham, Ham, Ham, Ham, Dac, Vuong, Mieu, Mieu, Mieu,
}

var saoThaiAm = &Sao{
	Name: "Thái Âm", AmDuong: Am, Hanh: nguhanh.Thuy,
	Loai: ChinhTinh, Order: 2, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoThienPhu))
		return cell, stateOf(&thaiAmState, cell)
	},
}

var thamLangState = [12]TrangThai{
	Ham, Mieu, Dac, Ham, Vuong, Ham, Ham, Mieu, Dac, Ham, Vuong, Ham,
}

var saoThamLang = &Sao{
	Name: "Tham Lang", AmDuong: Am, Hanh: nguhanh.Thuy,
	Loai: ChinhTinh, Order: 2, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoThaiAm))
		return cell, stateOf(&thamLangState, cell)
	},
}

var cuMonState = [12]TrangThai{
	Vuong, Ham, Vuong, Mieu, Ham, Ham, Vuong, Ham, Dac, Mieu, Ham, Dac,
}

var saoCuMon = &Sao{
	Name: "Cự Môn", AmDuong: Am, Hanh: nguhanh.Thuy,
	Loai: ChinhTinh, Order: 2, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoThamLang))
		return cell, stateOf(&cuMonState, cell)
	},
}

var thienTuongState = [12]TrangThai{
	Vuong, Dac, Mieu, Ham, Vuong, Dac, Vuong, Dac, Mieu, Ham, Vuong, Dac,
}

var saoThienTuong = &Sao{
	Name: "Thiên Tướng", AmDuong: Duong, Hanh: nguhanh.Thuy,
	Loai: ChinhTinh, Order: 2, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoCuMon))
		return cell, stateOf(&thienTuongState, cell)
	},
}

var thienLuongState = [12]TrangThai{
	Vuong, Dac, Vuong, Vuong, Mieu, Ham, Mieu, Dac, Vuong, Ham, Mieu, Ham,
}

var saoThienLuong = &Sao{
	Name: "Thiên Lương", AmDuong: Am, Hanh: nguhanh.Moc,
	Loai: ChinhTinh, Order: 2, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoThienTuong))
		return cell, stateOf(&thienLuongState, cell)
	},
}

var thatSatState = [12]TrangThai{
	Mieu, Dac, Mieu, Ham, Ham, Vuong, Mieu, Dac, Mieu, Ham, Ham, Vuong,
}

var saoThatSat = &Sao{
	Name: "Thất Sát", AmDuong: Duong, Hanh: nguhanh.Kim,
	Loai: ChinhTinh, Order: 2, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoThienLuong))
		return cell, stateOf(&thatSatState, cell)
	},
}

var phaQuanState = [12]TrangThai{
	Mieu, Vuong, Ham, Ham, Dac, Ham, Mieu, Vuong, Ham, Ham, Dac, Ham,
}

var saoPhaQuan = &Sao{
	Name: "Phá Quân", AmDuong: Am, Hanh: nguhanh.Thuy,
	Loai: ChinhTinh, Order: 2, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoThatSat) + 3)
		return cell, stateOf(&phaQuanState, cell)
	},
}
