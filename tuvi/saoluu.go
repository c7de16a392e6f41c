// Copyright 2013 Sonia Keys
// License: MIT

package tuvi

import "github.com/tienminh/laso/nguhanh"

// Flow stars (lưu tinh) of the querent year.  These repeat a handful
// of year-keyed rules with the querent year's stem and branch in place
// of the birth year's, and print with an "L. " prefix.

var saoLuuThienMa = &Sao{
	Name: "L. Thiên Mã", Hanh: nguhanh.Hoa,
	Loai: PhuTinhTrai, Order: 2000,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [12]int{3, 12, 9, 6, 3, 12, 9, 6, 3, 12, 9, 6}
		return t[c.chiNamXem-1], TrangThaiNone
	},
}

var saoLuuTangMon = &Sao{
	Name: "L. Tang Môn", Hanh: nguhanh.Moc,
	Loai: PhuTinhPhai, Order: 2000,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(2 + int(c.chiNamXem) - 1), TrangThaiNone
	},
}

var saoLuuThienHu = &Sao{
	Name: "L. Thiên Hư", Hanh: nguhanh.Thuy,
	Loai: PhuTinhPhai, Order: 2001,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(6 + int(c.chiNamXem) - 1), TrangThaiNone
	},
}

var saoLuuThaiTue = &Sao{
	Name: "L. Thái Tuế", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 2002,
	pos: func(c *evalContext) (int, TrangThai) {
		return int(c.chiNamXem), TrangThaiNone
	},
}

var saoLuuThienKhoc = &Sao{
	Name: "L. Thiên Khốc", Hanh: nguhanh.Kim,
	Loai: PhuTinhPhai, Order: 2003,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(6 - (int(c.chiNamXem) - 1)), TrangThaiNone
	},
}

var saoLuuKinhDuong = &Sao{
	Name: "L. Kình Dương", Hanh: nguhanh.Kim,
	Loai: PhuTinhPhai, Order: 2010,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoLuuLocTon)), TrangThaiNone
	},
}

var saoLuuLocTon = &Sao{
	Name: "L. Lộc Tồn", Hanh: nguhanh.Tho,
	Loai: PhuTinhTrai, Order: 2001,
	pos: func(c *evalContext) (int, TrangThai) {
		return locTonTable[c.canNamXem-1], TrangThaiNone
	},
}

var saoLuuBachHo = &Sao{
	Name: "L. Bạch Hổ", Hanh: nguhanh.Kim,
	Loai: PhuTinhPhai, Order: 2004,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(8 + int(c.chiNamXem) - 1), TrangThaiNone
	},
}

var saoLuuDaLa = &Sao{
	Name: "L. Đà La", Hanh: nguhanh.Kim,
	Loai: PhuTinhPhai, Order: 2015,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoLuuLocTon) - 2), TrangThaiNone
	},
}
