// Copyright 2013 Sonia Keys
// License: MIT

package tuvi

import "github.com/tienminh/laso/nguhanh"

// Shared brightness tables.  Several auxiliary stars are bright in the
// same cell families: the four cardinal cells (Tí Ngọ Mão Dậu pattern
// 1,3,7,9), the four graves (2,5,8,11), the four cradles (3,6,9,12),
// Dần-Mão/Thân-Dậu (3,4,9,10) and the Dần..Ngọ arc (3..7).
var (
	stTuChinhDac = [12]TrangThai{
		Dac, Ham, Dac, Ham, Ham, Ham, Dac, Ham, Dac, Ham, Ham, Ham,
	}
	stTuChinhHam = [12]TrangThai{
		Ham, Dac, Ham, Dac, Dac, Dac, Ham, Dac, Ham, Dac, Dac, Dac,
	}
	stTuMoDac = [12]TrangThai{
		Ham, Dac, Ham, Ham, Dac, Ham, Ham, Dac, Ham, Ham, Dac, Ham,
	}
	stTuSinhDac = [12]TrangThai{
		Ham, Ham, Dac, Ham, Ham, Dac, Ham, Ham, Dac, Ham, Ham, Dac,
	}
	stDanMaoDac = [12]TrangThai{
		Ham, Ham, Dac, Dac, Ham, Ham, Ham, Ham, Dac, Dac, Ham, Ham,
	}
	stDanNgoDac = [12]TrangThai{
		Ham, Ham, Dac, Dac, Dac, Dac, Dac, Ham, Ham, Ham, Ham, Ham,
	}
)

var saoThienViet = &Sao{
	Name: "Thiên Việt", Hanh: nguhanh.Hoa,
	Loai: PhuTinhTrai, Order: 4.5, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [10]int{8, 9, 10, 10, 8, 9, 3, 3, 6, 6}
		return t[c.canNam-1], TrangThaiNone
	},
}

var hoaKhoaState = [12]TrangThai{
	Binh, Dac, Vuong, Vuong, Vuong, Dac, Dac, Vuong, Dac, Ham, Vuong, Binh,
}

var saoHoaKhoa = &Sao{
	Name: "Hoá Khoa", Hanh: nguhanh.Moc,
	Loai: PhuTinhTrai, Order: 0.2, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [10]*Sao{
			saoVuKhuc, saoTuVi, saoVanXuong, saoThienCo, saoHuuBat,
			saoThienLuong, saoThaiAm, saoVanKhuc, saoTaPhu, saoThaiAm,
		}
		cell := c.pos(t[c.canNam-1])
		return cell, stateOf(&hoaKhoaState, cell)
	},
}

var saoTaPhu = &Sao{
	Name: "Tả Phù", Hanh: nguhanh.Tho,
	Loai: PhuTinhTrai, Order: 6, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(4 + c.lunar.Month - 1), TrangThaiNone
	},
}

var saoPhiLiem = &Sao{
	Name: "Phi Liêm", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoLocTon) - 1 + 6*c.d), TrangThaiNone
	},
}

var saoTrucPhu = &Sao{
	Name: "Trực Phù", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 25,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoDieuKhach)), TrangThaiNone
	},
}

var saoPhaToai = &Sao{
	Name: "Phá Toái", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 30,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [12]int{6, 2, 10, 6, 2, 10, 6, 2, 10, 6, 2, 10}
		return t[c.chiNam-1], TrangThaiNone
	},
}

var saoHiThan = &Sao{
	Name: "Hỉ Thần", Hanh: nguhanh.Hoa,
	Loai: PhuTinhTrai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoLocTon) - 1 + 7*c.d), TrangThaiNone
	},
}

var saoThienPhuc = &Sao{
	Name: "Thiên Phúc", Hanh: nguhanh.Tho,
	Loai: PhuTinhTrai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [10]int{10, 9, 1, 12, 4, 3, 7, 6, 7, 6}
		return t[c.canNam-1], TrangThaiNone
	},
}

var saoDiaKiep = &Sao{
	Name: "Địa Kiếp", AmDuong: Duong, Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 0, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(11 + int(c.chiGio) - 1)
		return cell, stateOf(&stTuSinhDac, cell)
	},
}

var saoThaiTue = &Sao{
	Name: "Thái Tuế", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 25,
	pos: func(c *evalContext) (int, TrangThai) {
		return int(c.chiNam), TrangThaiNone
	},
}

var hoaLocState = [12]TrangThai{
	Ham, Dac, Vuong, Binh, Vuong, Dac, Ham, Binh, Dac, Ham, Vuong, Ham,
}

var saoHoaLoc = &Sao{
	Name: "Hoá Lộc", Hanh: nguhanh.Moc,
	Loai: PhuTinhTrai, Order: 0, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [10]*Sao{
			saoLiemTrinh, saoThienCo, saoThienDong, saoThaiAm, saoThamLang,
			saoVuKhuc, saoThaiDuong, saoCuMon, saoThienLuong, saoPhaQuan,
		}
		cell := c.pos(t[c.canNam-1])
		return cell, stateOf(&hoaLocState, cell)
	},
}

var saoQuocAn = &Sao{
	Name: "Quốc Ấn", Hanh: nguhanh.Tho,
	Loai: PhuTinhTrai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoLocTon) - 1 + 8), TrangThaiNone
	},
}

var saoThieuDuong = &Sao{
	Name: "Thiếu Dương", Hanh: nguhanh.Hoa,
	Loai: PhuTinhTrai, Order: 25,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoThaiTue)), TrangThaiNone
	},
}

var saoThienKhong = &Sao{
	Name: "Thiên Không", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 2.2, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		return c.pos(saoThieuDuong), TrangThaiNone
	},
}

var saoBenhPhu = &Sao{
	Name: "Bệnh Phù", Hanh: nguhanh.Tho,
	Loai: PhuTinhPhai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoLocTon) - 1 + 8*c.d), TrangThaiNone
	},
}

var saoDiaGiai = &Sao{
	Name: "Địa Giải", Hanh: nguhanh.Tho,
	Loai: PhuTinhTrai, Order: 10,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(7 + c.lunar.Month - 1), TrangThaiNone
	},
}

var saoThienMa = &Sao{
	Name: "Thiên Mã", Hanh: nguhanh.Hoa,
	Loai: PhuTinhTrai, Order: 30,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [12]int{3, 12, 9, 6, 3, 12, 9, 6, 3, 12, 9, 6}
		cell := t[c.chiNam-1]
		st := Dac
		if cell == 9 || cell == 12 {
			st = Ham
		}
		return cell, st
	},
}

var saoHoaTinh = &Sao{
	Name: "Hoả Tinh", AmDuong: Duong, Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: -1, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		var start int
		switch c.chiNam {
		case 3, 7, 11:
			start = 1
		case 1, 5, 9:
			start = 2
		case 2, 6, 10:
			start = 3
		default: // 4, 8, 12
			start = 9
		}
		cell := wrap12(start + c.d*(int(c.chiGio)-1))
		return cell, stateOf(&stDanNgoDac, cell)
	},
}

var saoLinhTinh = &Sao{
	Name: "Linh Tinh", AmDuong: Am, Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: -0.9, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		// traversal runs against the chart direction
		start := 10
		switch c.chiNam {
		case 3, 7, 11:
			start = 3
		}
		cell := wrap12(start - c.d*(int(c.chiGio)-1))
		return cell, stateOf(&stDanNgoDac, cell)
	},
}

var saoCoThan = &Sao{
	Name: "Cô Thần", Hanh: nguhanh.Tho,
	Loai: PhuTinhPhai, Order: 8.2, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [12]int{3, 3, 6, 6, 6, 9, 9, 9, 12, 12, 12, 3}
		return t[c.chiNam-1], TrangThaiNone
	},
}

var saoDaiHao = &Sao{
	Name: "Đại Hao", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoLocTon) - 1 + 9*c.d)
		return cell, stateOf(&stDanMaoDac, cell)
	},
}

var saoTangMon = &Sao{
	Name: "Tang Môn", Hanh: nguhanh.Moc,
	Loai: PhuTinhPhai, Order: 25,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoThieuDuong))
		return cell, stateOf(&stDanMaoDac, cell)
	},
}

var saoThienQuy = &Sao{
	Name: "Thiên Quý", Hanh: nguhanh.Tho,
	Loai: PhuTinhTrai, Order: 1.05,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoVanKhuc) - 1 - (c.lunar.Day - 2)), TrangThaiNone
	},
}

var saoTauThu = &Sao{
	Name: "Tấu Thư", Hanh: nguhanh.Kim,
	Loai: PhuTinhTrai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoLocTon) - 1 + 5*c.d), TrangThaiNone
	},
}

var saoDuongPhu = &Sao{
	Name: "Đường Phù", Hanh: nguhanh.Moc,
	Loai: PhuTinhTrai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoLocTon) - 1 + 5), TrangThaiNone
	},
}

var saoThienTho = &Sao{
	Name: "Thiên Thọ", Hanh: nguhanh.Tho,
	Loai: PhuTinhTrai, Order: 26,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.viTriThan - 1 + int(c.chiNam) - 1), TrangThaiNone
	},
}

var saoGiaiThan = &Sao{
	Name: "Giải Thần", Hanh: nguhanh.Moc,
	Loai: PhuTinhTrai, Order: 30,
	pos: func(c *evalContext) (int, TrangThai) {
		return c.pos(saoPhuongCac), TrangThaiNone
	},
}

var saoPhuongCac = &Sao{
	Name: "Phượng Các", Hanh: nguhanh.Moc,
	Loai: PhuTinhTrai, Order: 30.1,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(10 - (int(c.chiNam) - 1)), TrangThaiNone
	},
}

var saoDiaKhong = &Sao{
	Name: "Địa Không", AmDuong: Am, Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: -0.1, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(11 - (int(c.chiGio) - 1))
		return cell, stateOf(&stTuSinhDac, cell)
	},
}

var saoQuaTu = &Sao{
	Name: "Quả Tú", Hanh: nguhanh.Tho,
	Loai: PhuTinhPhai, Order: 8.2, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [12]int{11, 11, 2, 2, 2, 5, 5, 5, 8, 8, 8, 11}
		return t[c.chiNam-1], TrangThaiNone
	},
}

var saoDieuKhach = &Sao{
	Name: "Điếu Khách", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 25,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoPhucDuc)), TrangThaiNone
	},
}

var saoThienLa = &Sao{
	Name: "Thiên La", Hanh: nguhanh.Kim,
	Loai: PhuTinhPhai, Order: 1000,
	pos: func(c *evalContext) (int, TrangThai) {
		return 5, TrangThaiNone
	},
}

var saoHuuBat = &Sao{
	Name: "Hữu Bật", Hanh: nguhanh.Thuy,
	Loai: PhuTinhTrai, Order: 6.1, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(10 - (c.lunar.Month - 1)), TrangThaiNone
	},
}

var saoHongLoan = &Sao{
	Name: "Hồng Loan", Hanh: nguhanh.Thuy,
	Loai: PhuTinhTrai, Order: 12.1, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(3 - (int(c.chiNam) - 1)), TrangThaiNone
	},
}

var saoThienGiai = &Sao{
	Name: "Thiên Giải", Hanh: nguhanh.Hoa,
	Loai: PhuTinhTrai, Order: 10,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(8 + c.lunar.Month - 1), TrangThaiNone
	},
}

var saoPhongCao = &Sao{
	Name: "Phong Cáo", Hanh: nguhanh.Tho,
	Loai: PhuTinhTrai, Order: 11,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(2 + int(c.chiGio) - 1), TrangThaiNone
	},
}

var saoThienTru = &Sao{
	Name: "Thiên Trù", Hanh: nguhanh.Tho,
	Loai: PhuTinhTrai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [10]int{6, 7, 1, 6, 7, 9, 3, 7, 10, 11}
		return t[c.canNam-1], TrangThaiNone
	},
}

var saoThieuAm = &Sao{
	Name: "Thiếu Âm", Hanh: nguhanh.Thuy,
	Loai: PhuTinhTrai, Order: 25,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoTangMon)), TrangThaiNone
	},
}

var saoPhucBinh = &Sao{
	Name: "Phục Binh", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoLocTon) - 1 + 10*c.d), TrangThaiNone
	},
}

var saoVanXuong = &Sao{
	Name: "Văn Xương", Hanh: nguhanh.Kim,
	Loai: PhuTinhTrai, Order: 1.2, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(10 - (int(c.chiGio) - 1))
		return cell, stateOf(&stTuChinhHam, cell)
	},
}

var saoThienKhoi = &Sao{
	Name: "Thiên Khôi", Hanh: nguhanh.Hoa,
	Loai: PhuTinhTrai, Order: 4.5, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [10]int{2, 1, 12, 12, 2, 1, 7, 7, 4, 4}
		return t[c.canNam-1], TrangThaiNone
	},
}

var saoThienHy = &Sao{
	Name: "Thiên Hỷ", Hanh: nguhanh.Thuy,
	Loai: PhuTinhTrai, Order: 11.9, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(9 - (int(c.chiNam) - 1)), TrangThaiNone
	},
}

var saoDaoHoa = &Sao{
	Name: "Đào Hoa", Hanh: nguhanh.Moc,
	Loai: PhuTinhTrai, Order: 12, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [12]int{10, 7, 4, 1, 10, 7, 4, 1, 10, 7, 4, 1}
		return t[c.chiNam-1], TrangThaiNone
	},
}

var saoPhucDuc = &Sao{
	Name: "Phúc Đức", Hanh: nguhanh.Tho,
	Loai: PhuTinhTrai, Order: 25,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoBachHo)), TrangThaiNone
	},
}

var saoThienDuc = &Sao{
	Name: "Thiên Đức", Hanh: nguhanh.Hoa,
	Loai: PhuTinhTrai, Order: 30,
	pos: func(c *evalContext) (int, TrangThai) {
		return c.pos(saoPhucDuc), TrangThaiNone
	},
}

var saoTuongQuan = &Sao{
	Name: "Tướng Quân", Hanh: nguhanh.Moc,
	Loai: PhuTinhPhai, Order: 5.1,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoLocTon) - 1 + 4*c.d), TrangThaiNone
	},
}

var saoThienSu = &Sao{
	Name: "Thiên Sứ", Hanh: nguhanh.Thuy,
	Loai: PhuTinhPhai, Order: 1000,
	pos: func(c *evalContext) (int, TrangThai) {
		return c.cung(7), TrangThaiNone // tật ách
	},
}

var saoAnQuang = &Sao{
	Name: "Ân Quang", Hanh: nguhanh.Moc,
	Loai: PhuTinhTrai, Order: 1.04,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoVanXuong) - 1 + c.lunar.Day - 2), TrangThaiNone
	},
}

var saoThienQuan = &Sao{
	Name: "Thiên Quan", Hanh: nguhanh.Hoa,
	Loai: PhuTinhTrai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [10]int{8, 5, 6, 3, 4, 10, 12, 10, 11, 7}
		return t[c.canNam-1], TrangThaiNone
	},
}

var saoHoaCai = &Sao{
	Name: "Hoa Cái", Hanh: nguhanh.Kim,
	Loai: PhuTinhTrai, Order: 12,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [12]int{5, 2, 11, 8, 5, 2, 11, 8, 5, 2, 11, 8}
		return t[c.chiNam-1], TrangThaiNone
	},
}

var saoLongTri = &Sao{
	Name: "Long Trì", Hanh: nguhanh.Thuy,
	Loai: PhuTinhTrai, Order: 30,
	pos: func(c *evalContext) (int, TrangThai) {
		return c.pos(saoQuanPhuHuyen), TrangThaiNone
	},
}

var saoDaLa = &Sao{
	Name: "Đà La", AmDuong: Am, Hanh: nguhanh.Kim,
	Loai: PhuTinhPhai, Order: 0, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoLocTon) - 2)
		return cell, stateOf(&stTuMoDac, cell)
	},
}

var saoHoaKy = &Sao{
	Name: "Hoá Kỵ", Hanh: nguhanh.Thuy,
	Loai: PhuTinhPhai, Order: 0.8, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [10]*Sao{
			saoThaiDuong, saoThaiAm, saoLiemTrinh, saoCuMon, saoThienCo,
			saoVanKhuc, saoThienDong, saoVanXuong, saoVuKhuc, saoThamLang,
		}
		cell := c.pos(t[c.canNam-1])
		return cell, stateOf(&stTuMoDac, cell)
	},
}

var saoThienHinh = &Sao{
	Name: "Thiên Hình", AmDuong: Duong, Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 3, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(9 + c.lunar.Month - 1)
		return cell, stateOf(&stDanMaoDac, cell)
	},
}

var saoQuanPhuHoi = &Sao{
	Name: "Quan Phủ", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoLocTon) - 1 + 11*c.d), TrangThaiNone
	},
}

var saoQuanPhuHuyen = &Sao{
	Name: "Quan Phù", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 25,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoThieuAm)), TrangThaiNone
	},
}

var saoDiaVong = &Sao{
	Name: "Địa Võng", Hanh: nguhanh.Kim,
	Loai: PhuTinhPhai, Order: 1000,
	pos: func(c *evalContext) (int, TrangThai) {
		return 11, TrangThaiNone
	},
}

var hoaQuyenState = [12]TrangThai{
	Ham, Dac, Vuong, Vuong, Binh, Binh, Binh, Vuong, Ham, Ham, Vuong, Binh,
}

var saoHoaQuyen = &Sao{
	Name: "Hoá Quyền", Hanh: nguhanh.Moc,
	Loai: PhuTinhTrai, Order: 0.1, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [10]*Sao{
			saoPhaQuan, saoThienLuong, saoThienCo, saoThienDong, saoThaiAm,
			saoThamLang, saoVuKhuc, saoThaiDuong, saoTuVi, saoCuMon,
		}
		cell := c.pos(t[c.canNam-1])
		return cell, stateOf(&hoaQuyenState, cell)
	},
}

var saoThienY = &Sao{
	Name: "Thiên Y", Hanh: nguhanh.Thuy,
	Loai: PhuTinhTrai, Order: -1,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(1 + c.lunar.Month - 1)
		return cell, stateOf(&stDanMaoDac, cell)
	},
}

var saoLNVanTinh = &Sao{
	Name: "LN Văn Tinh", Hanh: nguhanh.Kim,
	Loai: PhuTinhTrai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoLocTon) - 1 + 3), TrangThaiNone
	},
}

var saoThienTai = &Sao{
	Name: "Thiên Tài", Hanh: nguhanh.Tho,
	Loai: PhuTinhTrai, Order: 30,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.viTriMenh - 1 - (int(c.chiNam) - 1)), TrangThaiNone
	},
}

var saoThienDieu = &Sao{
	Name: "Thiên Diêu", Hanh: nguhanh.Thuy,
	Loai: PhuTinhPhai, Order: -0.9, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		// inherits both cell and state from Thiên Y
		p := c.place(saoThienY)
		return p.cell, p.st
	},
}

var saoTieuHao = &Sao{
	Name: "Tiểu Hao", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoLocTon) - 1 + 3*c.d)
		return cell, stateOf(&stDanMaoDac, cell)
	},
}

var saoBachHo = &Sao{
	Name: "Bạch Hổ", Hanh: nguhanh.Kim,
	Loai: PhuTinhPhai, Order: 25,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoLongDuc))
		return cell, stateOf(&stDanMaoDac, cell)
	},
}

var saoThaiPhu = &Sao{
	Name: "Thai Phụ", Hanh: nguhanh.Kim,
	Loai: PhuTinhTrai, Order: 0.9,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(6 + int(c.chiGio) - 1), TrangThaiNone
	},
}

var saoTamThai = &Sao{
	Name: "Tam Thai", Hanh: nguhanh.Thuy,
	Loai: PhuTinhTrai, Order: 3.5,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoTaPhu) - 1 + c.lunar.Day - 1), TrangThaiNone
	},
}

var saoBatToa = &Sao{
	Name: "Bát Toạ", Hanh: nguhanh.Moc,
	Loai: PhuTinhTrai, Order: 3.6,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoHuuBat) - 1 - (c.lunar.Day - 1)), TrangThaiNone
	},
}

var saoThanhLong = &Sao{
	Name: "Thanh Long", Hanh: nguhanh.Thuy,
	Loai: PhuTinhTrai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoLocTon) - 1 + 2*c.d), TrangThaiNone
	},
}

var saoLongDuc = &Sao{
	Name: "Long Đức", Hanh: nguhanh.Thuy,
	Loai: PhuTinhTrai, Order: 25,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoTuePha)), TrangThaiNone
	},
}

var saoThienThuong = &Sao{
	Name: "Thiên Thương", Hanh: nguhanh.Tho,
	Loai: PhuTinhPhai, Order: 1000,
	pos: func(c *evalContext) (int, TrangThai) {
		return c.cung(5), TrangThaiNone // nô bộc
	},
}

var saoLucSi = &Sao{
	Name: "Lực Sĩ", Hanh: nguhanh.Hoa,
	Loai: PhuTinhTrai, Order: 15.1,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoLocTon) - 1 + c.d), TrangThaiNone
	},
}

var saoKinhDuong = &Sao{
	Name: "Kình Dương", AmDuong: Duong, Hanh: nguhanh.Kim,
	Loai: PhuTinhPhai, Order: 0, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(c.pos(saoLocTon))
		return cell, stateOf(&stTuMoDac, cell)
	},
}

var saoTuePha = &Sao{
	Name: "Tuế Phá", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 25,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoTuPhu)), TrangThaiNone
	},
}

var saoThienHu = &Sao{
	Name: "Thiên Hư", Hanh: nguhanh.Thuy,
	Loai: PhuTinhPhai, Order: 8,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := c.pos(saoTuePha)
		return cell, stateOf(&stTuChinhDac, cell)
	},
}

var saoThienKhoc = &Sao{
	Name: "Thiên Khốc", Hanh: nguhanh.Kim,
	Loai: PhuTinhPhai, Order: 8.1,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(6 - (int(c.chiNam) - 1))
		return cell, stateOf(&stTuChinhDac, cell)
	},
}

var saoDauQuan = &Sao{
	Name: "Đẩu Quân", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 31,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(int(c.chiNam) - 1 - (c.lunar.Month - 1) +
			int(c.chiGio) - 1), TrangThaiNone
	},
}

var saoVanKhuc = &Sao{
	Name: "Văn Khúc", Hanh: nguhanh.Thuy,
	Loai: PhuTinhTrai, Order: 1.1, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := wrap12(4 + int(c.chiGio) - 1)
		return cell, stateOf(&stTuChinhHam, cell)
	},
}

// locTonState covers the six cells Lộc Tồn can occupy; the rest are
// unreachable from the stem table.
var locTonState = [12]TrangThai{
	Mieu, TrangThaiNone, Mieu, Mieu, TrangThaiNone, Dac,
	Mieu, TrangThaiNone, Binh, Binh, TrangThaiNone, Dac,
}

// locTonTable is shared with the querent-year flow star.
var locTonTable = [10]int{3, 4, 6, 7, 6, 7, 9, 10, 12, 1}

var saoLocTon = &Sao{
	Name: "Lộc Tồn", Hanh: nguhanh.Tho,
	Loai: PhuTinhTrai, Order: -0.8, Bold: true,
	pos: func(c *evalContext) (int, TrangThai) {
		cell := locTonTable[c.canNam-1]
		return cell, stateOf(&locTonState, cell)
	},
}

var saoBacSy = &Sao{
	Name: "Bác Sỹ", Hanh: nguhanh.Thuy,
	Loai: PhuTinhTrai, Order: 15,
	pos: func(c *evalContext) (int, TrangThai) {
		return c.pos(saoLocTon), TrangThaiNone
	},
}

var saoNguyetDuc = &Sao{
	Name: "Nguyệt Đức", Hanh: nguhanh.Hoa,
	Loai: PhuTinhTrai, Order: 30,
	pos: func(c *evalContext) (int, TrangThai) {
		return c.pos(saoTuPhu), TrangThaiNone
	},
}

var saoLuuHa = &Sao{
	Name: "Lưu Hà", Hanh: nguhanh.Thuy,
	Loai: PhuTinhPhai, Order: 4.5,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [10]int{10, 11, 8, 9, 6, 7, 4, 5, 12, 3}
		return t[c.canNam-1], TrangThaiNone
	},
}

var saoTuPhu = &Sao{
	Name: "Tử Phủ", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 25,
	pos: func(c *evalContext) (int, TrangThai) {
		return wrap12(c.pos(saoQuanPhuHuyen)), TrangThaiNone
	},
}

var saoKiepSat = &Sao{
	Name: "Kiếp Sát", Hanh: nguhanh.Hoa,
	Loai: PhuTinhPhai, Order: 30,
	pos: func(c *evalContext) (int, TrangThai) {
		t := [12]int{6, 3, 12, 9, 6, 3, 12, 9, 6, 3, 12, 9}
		return t[c.chiNam-1], TrangThaiNone
	},
}
