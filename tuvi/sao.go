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

// A Sao is a catalog entry: fixed star metadata and a positioning
// rule.  Entries are process-wide immutable; the per-chart brightness
// state lives on the Placement the evaluator produces.
type Sao struct {
	Name    string
	AmDuong AmDuong
	Hanh    nguhanh.Hanh
	Loai    LoaiSao
	Order   float64
	Bold    bool

	// pos places the star for the chart being evaluated and reports
	// its brightness state there.  Rules read other stars' positions
	// through the evaluator, which memoizes each rule per chart.
	pos func(c *evalContext) (int, TrangThai)
}

// A Placement is a star resolved onto a chart: the catalog entry and
// its brightness state in its cell.
type Placement struct {
	Sao       *Sao
	TrangThai TrangThai
}

// Label returns the display name of the placement, with the state
// appended in parentheses when the star has one.
func (p Placement) Label() string {
	if p.TrangThai == TrangThaiNone {
		return p.Sao.Name
	}
	return p.Sao.Name + "(" + p.TrangThai.String() + ")"
}

// evalContext evaluates the catalog for one chart.  The birth figures
// are resolved once; star rules are memoized so each runs at most once
// however many rules depend on it.
type evalContext struct {
	birth   date.Solar // canonical, after hour rollover
	lunar   date.Lunar
	curYear int
	gender  GioiTinh

	canNam               canchi.Can
	chiNam               canchi.Chi
	chiGio               canchi.Chi
	canNamXem            canchi.Can
	chiNamXem            canchi.Chi
	cuc                  Cuc
	viTriMenh, viTriThan int
	d                    int // +1 for Dương Nam and Âm Nữ

	memo map[*Sao]placed
}

type placed struct {
	cell int
	st   TrangThai
}

func newEvalContext(birth date.Solar, curYear int, g GioiTinh) *evalContext {
	c := &evalContext{
		birth:   birth,
		lunar:   lunisolar.SolarToLunar(birth),
		curYear: curYear,
		gender:  g,
		memo:    make(map[*Sao]placed, len(Catalog)),
	}
	c.canNam, c.chiNam = canchi.YearPair(c.lunar.Date)
	c.chiGio = canchi.HourChi(birth.Hour)
	c.canNamXem, c.chiNamXem = canchi.YearPair(date.Date{Year: curYear, Month: 6, Day: 1})
	c.cuc = TimCuc(birth)
	c.viTriMenh = TimViTriMenh(birth)
	c.viTriThan = TimViTriThan(birth)
	c.d = direction(birth, g)
	return c
}

// place resolves a star, memoized.
func (c *evalContext) place(s *Sao) placed {
	if p, ok := c.memo[s]; ok {
		return p
	}
	cell, st := s.pos(c)
	p := placed{cell, st}
	c.memo[s] = p
	return p
}

// pos resolves a star and returns only its cell.
func (c *evalContext) pos(s *Sao) int { return c.place(s).cell }

// cung returns the palace cell offset cells forward of the life
// palace.
func (c *evalContext) cung(offset int) int {
	return wrap12(c.viTriMenh + offset - 1)
}

// wrap12 is base.Wrap12, aliased locally because the star rules use it
// on nearly every line.
func wrap12(x int) int { return base.Wrap12(x) }

// stateOf looks up a star's state table by final cell.  Tables are
// [12]TrangThai indexed by cell−1.
func stateOf(t *[12]TrangThai, cell int) TrangThai { return t[cell-1] }

// Catalog is the star registry in registration order.  BuildChart
// evaluates every entry; the Tuần and Triệt overlays land on the chart
// root, everything else in a cell list selected by category.
var Catalog = []*Sao{
	// principal stars
	saoTuVi, saoThienCo, saoThaiDuong, saoVuKhuc, saoThienDong,
	saoLiemTrinh, saoThienPhu, saoThaiAm, saoThamLang, saoCuMon,
	saoThienTuong, saoThienLuong, saoThatSat, saoPhaQuan,
	// auxiliary stars
	saoThienViet, saoHoaKhoa, saoTaPhu, saoPhiLiem, saoTrucPhu,
	saoPhaToai, saoHiThan, saoThienPhuc, saoDiaKiep, saoThaiTue,
	saoHoaLoc, saoQuocAn, saoThieuDuong, saoThienKhong, saoBenhPhu,
	saoDiaGiai, saoThienMa, saoHoaTinh, saoLinhTinh, saoCoThan,
	saoDaiHao, saoTangMon, saoThienQuy, saoTauThu, saoDuongPhu,
	saoThienTho, saoGiaiThan, saoPhuongCac, saoDiaKhong, saoQuaTu,
	saoDieuKhach, saoThienLa, saoHuuBat, saoHongLoan, saoThienGiai,
	saoPhongCao, saoThienTru, saoThieuAm, saoPhucBinh, saoVanXuong,
	saoThienKhoi, saoThienHy, saoDaoHoa, saoPhucDuc, saoThienDuc,
	saoTuongQuan, saoThienSu, saoAnQuang, saoThienQuan, saoHoaCai,
	saoLongTri, saoDaLa, saoHoaKy, saoThienHinh, saoQuanPhuHoi,
	saoQuanPhuHuyen, saoDiaVong, saoHoaQuyen, saoThienY, saoLNVanTinh,
	saoThienTai, saoThienDieu, saoTieuHao, saoBachHo, saoThaiPhu,
	saoTamThai, saoBatToa, saoThanhLong, saoLongDuc, saoThienThuong,
	saoLucSi, saoKinhDuong, saoTuePha, saoThienHu, saoThienKhoc,
	saoDauQuan, saoVanKhuc, saoLocTon, saoBacSy, saoNguyetDuc,
	saoLuuHa, saoTuPhu, saoKiepSat,
	// the life-cycle ring
	saoTruongSinh, saoMocDuc, saoQuanDoi, saoLamQuan, saoDeVuong,
	saoSuy, saoBenh, saoTu, saoMo, saoTuyet, saoThai, saoDuong,
	// overlays
	saoTuan, saoTriet,
	// flow stars of the querent year
	saoLuuThienMa, saoLuuTangMon, saoLuuThienHu, saoLuuThaiTue,
	saoLuuThienKhoc, saoLuuKinhDuong, saoLuuLocTon, saoLuuBachHo,
	saoLuuDaLa,
}
