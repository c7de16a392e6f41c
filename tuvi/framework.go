// Copyright 2013 Sonia Keys
// License: MIT

package tuvi

import (
	"github.com/tienminh/laso/base"
	"github.com/tienminh/laso/canchi"
	"github.com/tienminh/laso/date"
	"github.com/tienminh/laso/lunisolar"
	"github.com/tienminh/laso/nguhanh"
)

// BanMenh is the nature of the life palace, one of the thirty nạp âm
// names with its element.
type BanMenh struct {
	Name string
	Hanh nguhanh.Hanh
}

// yearPair returns the sexagenary year of the lunar year containing
// the birth instant.
func yearPair(d date.Solar) (canchi.Can, canchi.Chi) {
	return canchi.YearPair(lunisolar.SolarToLunar(d).Date)
}

// TimAmDuong returns the yin-yang designation of the querent, one of
// Dương Nam, Dương Nữ, Âm Nam, Âm Nữ.
func TimAmDuong(d date.Solar, g GioiTinh) (string, error) {
	if !g.Valid() {
		return "", ErrInvalidGender
	}
	can, _ := yearPair(d)
	ad := "Âm"
	if can%2 == 1 {
		ad = "Dương"
	}
	return ad + " " + g.String(), nil
}

// direction returns the traversal direction of many star rules:
// +1 for Dương Nam and Âm Nữ, −1 otherwise.
func direction(d date.Solar, g GioiTinh) int {
	can, _ := yearPair(d)
	if (can%2 == 1) == (g == Nam) {
		return 1
	}
	return -1
}

// menhKeys[chi-1][can-1] indexes the thirty nạp âm by sexagenary year.
// A year's stem and branch always share parity, so the blank cells are
// unreachable.
var menhKeys = [12][10]string{
	{"K1", "", "T1", "", "H1", "", "O1", "", "M1", ""},
	{"", "K1", "", "T1", "", "H1", "", "O1", "", "M1"},
	{"T2", "", "H2", "", "O2", "", "M2", "", "K2", ""},
	{"", "T2", "", "H2", "", "O2", "", "M2", "", "K2"},
	{"H3", "", "O3", "", "M3", "", "K3", "", "T3", ""},
	{"", "H3", "", "O3", "", "M3", "", "K3", "", "T3"},
	{"K4", "", "T4", "", "H4", "", "O4", "", "M4", ""},
	{"", "K4", "", "T4", "", "H4", "", "O4", "", "M4"},
	{"T5", "", "H5", "", "O5", "", "M5", "", "K5", ""},
	{"", "T5", "", "H5", "", "O5", "", "M5", "", "K5"},
	{"H6", "", "O6", "", "M6", "", "K6", "", "T6", ""},
	{"", "H6", "", "O6", "", "M6", "", "K6", "", "T6"},
}

var banMenh = map[string]BanMenh{
	"K1": {"Hải Trung Kim", nguhanh.Kim},
	"T1": {"Giản Hạ Thuỷ", nguhanh.Thuy},
	"H1": {"Tích Lịch Hoả", nguhanh.Hoa},
	"O1": {"Bích Thượng Thổ", nguhanh.Tho},
	"M1": {"Tang Đố Mộc", nguhanh.Moc},
	"T2": {"Đại Khê Thuỷ", nguhanh.Thuy},
	"H2": {"Lư Trung Hoả", nguhanh.Hoa},
	"O2": {"Thành Đầu Thổ", nguhanh.Tho},
	"M2": {"Tùng Bách Mộc", nguhanh.Moc},
	"K2": {"Kim Bạch Kim", nguhanh.Kim},
	"H3": {"Phúc Đăng Hoả", nguhanh.Hoa},
	"O3": {"Sa Trung Thổ", nguhanh.Tho},
	"M3": {"Đại Lâm Mộc", nguhanh.Moc},
	"K3": {"Bạch Lạp Kim", nguhanh.Kim},
	"T3": {"Trường Lưu Thuỷ", nguhanh.Thuy},
	"K4": {"Sa Trung Kim", nguhanh.Kim},
	"T4": {"Thiên Hà Thuỷ", nguhanh.Thuy},
	"H4": {"Thiên Thượng Hoả", nguhanh.Hoa},
	"O4": {"Lộ Bàng Thổ", nguhanh.Tho},
	"M4": {"Dương Liễu Mộc", nguhanh.Moc},
	"T5": {"Tuyền Trung Thuỷ", nguhanh.Thuy},
	"H5": {"Sơn Hạ Hoả", nguhanh.Hoa},
	"O5": {"Đại Trạch Thổ", nguhanh.Tho},
	"M5": {"Thạch Lựu Mộc", nguhanh.Moc},
	"K5": {"Kiếm Phong Kim", nguhanh.Kim},
	"H6": {"Sơn Đầu Hoả", nguhanh.Hoa},
	"O6": {"Ốc Thượng Thổ", nguhanh.Tho},
	"M6": {"Bình Địa Mộc", nguhanh.Moc},
	"K6": {"Thoa Xuyến Kim", nguhanh.Kim},
	"T6": {"Đại Hải Thuỷ", nguhanh.Thuy},
}

// TimMenh returns the nạp âm nature of the birth year.
func TimMenh(d date.Solar) BanMenh {
	can, chi := yearPair(d)
	return banMenh[menhKeys[chi-1][can-1]]
}

// TimViTriMenh returns the cell of the life palace.
func TimViTriMenh(d date.Solar) int {
	month := lunisolar.SolarToLunar(d).Month
	hour := int(canchi.HourChi(d.Hour))
	return base.Wrap12(2 + (month - 1) - (hour - 1))
}

// TimViTriThan returns the cell of the body palace.
func TimViTriThan(d date.Solar) int {
	month := lunisolar.SolarToLunar(d).Month
	hour := int(canchi.HourChi(d.Hour))
	return base.Wrap12(2 + (month - 1) + (hour - 1))
}

// TimCuc returns the cục of the chart, from the year stem and the
// branch of the life palace's cell.
func TimCuc(d date.Solar) Cuc {
	can, _ := yearPair(d)
	canMod5 := (int(can)-1)%5 + 1

	var menhGroup int
	switch canchi.Chi(TimViTriMenh(d)) {
	case canchi.Ti, canchi.Suu:
		menhGroup = 1
	case canchi.Dan, canchi.Mao, canchi.Tuat, canchi.Hoi:
		menhGroup = 2
	case canchi.Ngo, canchi.Mui:
		menhGroup = 3
	case canchi.Ty, canchi.Thin:
		menhGroup = 4
	default: // Thân, Dậu
		menhGroup = 5
	}

	switch (canMod5+menhGroup-1)%5 + 1 {
	case 1:
		return KimTu
	case 2:
		return ThuyNhi
	case 3:
		return HoaLuc
	case 4:
		return ThoNgu
	}
	return MocTam
}

// chuMenh[cell-1] is the chart lord for a life palace in that cell.
var chuMenh = [12]string{
	"Tham Lang", "Cự Môn", "Lộc Tồn", "Văn Khúc", "Liêm Trinh", "Vũ Khúc",
	"Phá Quân", "Vũ Khúc", "Liêm Trinh", "Văn Khúc", "Lộc Tồn", "Cự Môn",
}

// TimChuMenh returns the lord of the life palace.
func TimChuMenh(d date.Solar) string {
	return chuMenh[TimViTriMenh(d)-1]
}

// chuThan[chi-1] is the body lord for a birth year of that branch.
var chuThan = [12]string{
	"Linh Tinh", "Thiên Tướng", "Thiên Lương", "Thiên Đồng", "Văn Xương",
	"Thiên Cơ", "Hoả Tinh", "Thiên Tướng", "Thiên Lương", "Thiên Đồng",
	"Văn Xương", "Thiên Cơ",
}

// TimChuThan returns the lord of the body palace.
func TimChuThan(d date.Solar) string {
	_, chi := yearPair(d)
	return chuThan[chi-1]
}

// TimTinhLyAmDuong reports whether the year polarity and the life
// palace's cell parity agree.
func TimTinhLyAmDuong(d date.Solar) string {
	can, _ := yearPair(d)
	if int(can)%2 == TimViTriMenh(d)%2 {
		return "Âm Dương thuận lý"
	}
	return "Âm Dương nghịch lý"
}

// TimCucMenhSinhKhac describes the generation or control relation
// between the nature of the life palace and the cục.
func TimCucMenhSinhKhac(d date.Solar) string {
	menh := TimMenh(d).Hanh
	cuc := TimCuc(d).Hanh()

	switch {
	case nguhanh.TuongSinh(menh, cuc):
		if menh == cuc.SinhBoi() {
			return "Mệnh sinh Cục"
		}
		return "Cục sinh Mệnh"
	case nguhanh.TuongKhac(menh, cuc):
		if menh == cuc.KhacBoi() {
			return "Mệnh khắc Cục"
		}
		return "Cục khắc Mệnh"
	}
	return "Mệnh Cục bình hoà"
}

// TimNoiCuThan names the palace the body palace shares a cell with.
//
// The body palace always sits an even number of cells from the life
// palace; an odd distance is a catalog bug and returns ErrUnsolvable.
func TimNoiCuThan(d date.Solar, g GioiTinh) (string, error) {
	if !g.Valid() {
		return "", ErrInvalidGender
	}
	distance := (TimViTriThan(d) - TimViTriMenh(d) + 12) % 12
	switch distance {
	case 0:
		return "Thân Mệnh đồng cung", nil
	case 2:
		return "Thân cư Phúc Đức", nil
	case 4:
		return "Thân cư Quan Lộc", nil
	case 6:
		return "Thân cư Thiên Di", nil
	case 8:
		return "Thân cư Tài Bạch", nil
	case 10:
		if g == Nam {
			return "Thân cư Thê", nil
		}
		return "Thân cư Phu", nil
	}
	return "", ErrUnsolvable
}

// The remaining palaces follow the life palace in order.

// TimCungPhuMau returns the cell of the parents palace.
func TimCungPhuMau(d date.Solar) int { return base.Wrap12(TimViTriMenh(d)) }

// TimCungPhucDuc returns the cell of the fortune palace.
func TimCungPhucDuc(d date.Solar) int { return base.Wrap12(TimViTriMenh(d) + 1) }

// TimCungDienTrach returns the cell of the property palace.
func TimCungDienTrach(d date.Solar) int { return base.Wrap12(TimViTriMenh(d) + 2) }

// TimCungQuanLoc returns the cell of the career palace.
func TimCungQuanLoc(d date.Solar) int { return base.Wrap12(TimViTriMenh(d) + 3) }

// TimCungNoBoc returns the cell of the servants palace.
func TimCungNoBoc(d date.Solar) int { return base.Wrap12(TimViTriMenh(d) + 4) }

// TimCungThienDi returns the cell of the travel palace.
func TimCungThienDi(d date.Solar) int { return base.Wrap12(TimViTriMenh(d) + 5) }

// TimCungTatAch returns the cell of the health palace.
func TimCungTatAch(d date.Solar) int { return base.Wrap12(TimViTriMenh(d) + 6) }

// TimCungTaiBach returns the cell of the wealth palace.
func TimCungTaiBach(d date.Solar) int { return base.Wrap12(TimViTriMenh(d) + 7) }

// TimCungTuTuc returns the cell of the children palace.
func TimCungTuTuc(d date.Solar) int { return base.Wrap12(TimViTriMenh(d) + 8) }

// TimCungPhuThe returns the cell of the spouse palace.
func TimCungPhuThe(d date.Solar) int { return base.Wrap12(TimViTriMenh(d) + 9) }

// TimCungHuynhDe returns the cell of the siblings palace.
func TimCungHuynhDe(d date.Solar) int { return base.Wrap12(TimViTriMenh(d) + 10) }
