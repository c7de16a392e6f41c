// Copyright 2013 Sonia Keys
// License: MIT

package tuvi

import (
	"fmt"
	"sort"

	"github.com/tienminh/laso/base"
	"github.com/tienminh/laso/canchi"
	"github.com/tienminh/laso/date"
	"github.com/tienminh/laso/julian"
)

// A Cell is one of the twelve cells of the địa bàn.
type Cell struct {
	ID       int
	Name     string // palace label, with the body palace suffixed " <THÂN>"
	CungThan bool   // hosts the body palace

	Zodiac    string // sexagenary corner label, "G. Tí" style
	DaiHan    int    // decadal milestone
	TieuHan   string // annual-cycle branch label
	NguyetHan string // monthly-cycle label, "Tháng k"

	ChinhTinh   []Placement
	PhuTinhTrai []Placement
	PhuTinhPhai []Placement
	PhuTinhDuoi *Placement // the cell's life-cycle station
}

// A Chart is the immutable snapshot BuildChart produces.
type Chart struct {
	HoTen string

	// Birth keeps the figures as entered; CanonicalBirth is the
	// instant all the arithmetic used, one civil day later when the
	// birth hour was 23.
	Birth          date.Solar
	CanonicalBirth date.Solar
	LunarBirth     date.Lunar
	Gender         GioiTinh
	CurYear        int

	DiaBan     [12]Cell
	ViTriTuan  int
	ViTriTriet int

	// header facts
	AmDuong      string
	BanMenh      BanMenh
	Cuc          Cuc
	ChuMenh      string
	ChuThan      string
	TinhLy       string
	CucMenh      string
	NoiCuThan    string
	ZodiacYear   string
	ZodiacMonth  string
	ZodiacDay    string
	ZodiacHour   string
	ZodiacCurNam string
	Tuoi         int

	// TamGiac is the Mệnh, Tài Bạch, Quan Lộc cell triple renderers
	// join with lines.
	TamGiac [3]int
}

// BuildChart computes the full chart for a birth instant.
//
// The hour is a clock hour 0..23; hour 23 belongs to the Tí double-hour
// of the following day, so the working birthdate is advanced one civil
// day with hour and minute zeroed (the second is kept), while the
// header keeps the entered figures.
func BuildChart(year, month, day, hour, minute, second int, gender GioiTinh, curYear int, hoTen string) (*Chart, error) {
	if !gender.Valid() {
		return nil, ErrInvalidGender
	}
	entered, err := date.NewSolar(year, month, day, hour, minute, second)
	if err != nil {
		return nil, err
	}

	birth := entered
	if hour >= 23 {
		next, err := julian.AddDays(entered.Date.StripTime(), 1)
		if err != nil {
			return nil, err
		}
		birth = date.Solar{Date: date.Date{
			Year: next.Year, Month: next.Month, Day: next.Day, Second: second,
		}}
	}

	ctx := newEvalContext(birth, curYear, gender)
	if _, ok := tuViTable[ctx.cuc]; !ok {
		return nil, ErrInvalidCuc
	}
	ch := &Chart{
		HoTen:          hoTen,
		Birth:          entered,
		CanonicalBirth: birth,
		LunarBirth:     ctx.lunar,
		Gender:         gender,
		CurYear:        curYear,
	}
	for i := range ch.DiaBan {
		ch.DiaBan[i].ID = i + 1
	}

	if err := ch.placeStars(ctx); err != nil {
		return nil, err
	}
	if err := ch.initNames(ctx); err != nil {
		return nil, err
	}
	ch.initZodiac(ctx)
	ch.initDaiHan(ctx)
	ch.initTieuHan(ctx)
	ch.initNguyetHan(ctx)
	ch.sortStars()

	if err := ch.initHeader(ctx); err != nil {
		return nil, err
	}
	return ch, nil
}

// placeStars evaluates the whole catalog and routes each star to its
// cell list or overlay slot.
func (ch *Chart) placeStars(c *evalContext) error {
	for _, s := range Catalog {
		p := c.place(s)
		if p.cell < 1 || p.cell > 12 {
			return fmt.Errorf("%w: sao %s at %d", ErrInvalidViTri, s.Name, p.cell)
		}
		pl := Placement{Sao: s, TrangThai: p.st}
		cell := &ch.DiaBan[p.cell-1]
		switch s.Loai {
		case ChinhTinh:
			cell.ChinhTinh = append(cell.ChinhTinh, pl)
		case PhuTinhTrai:
			cell.PhuTinhTrai = append(cell.PhuTinhTrai, pl)
		case PhuTinhPhai:
			cell.PhuTinhPhai = append(cell.PhuTinhPhai, pl)
		case PhuTinhDuoi:
			cell.PhuTinhDuoi = &pl
		case LoaiNone:
			switch s {
			case saoTuan:
				ch.ViTriTuan = p.cell
			case saoTriet:
				ch.ViTriTriet = p.cell
			}
		default:
			return fmt.Errorf("%w: sao %s", ErrInvalidLoaiSao, s.Name)
		}
	}
	return nil
}

func (ch *Chart) initNames(c *evalContext) error {
	names := [12]string{
		"MỆNH", "PHỤ MẪU", "PHÚC", "ĐIỀN TRẠCH", "QUAN LỘC", "NÔ BỘC",
		"THIÊN DI", "TẬT ÁCH", "TÀI BẠCH", "TỬ TỨC", "", "HUYNH ĐỆ",
	}
	if c.gender == Nam {
		names[10] = "THÊ"
	} else {
		names[10] = "PHU"
	}
	for i, n := range names {
		ch.DiaBan[c.cung(i)-1].Name = n
	}

	than := &ch.DiaBan[c.viTriThan-1]
	than.CungThan = true
	than.Name += " <THÂN>"
	return nil
}

// zodiacLabel renders a cell corner label: the localized stem's first
// letter, a period, and the localized branch.
func zodiacLabel(can canchi.Can, chi canchi.Chi) string {
	r := []rune(can.Viet())
	return string(r[0]) + ". " + chi.Viet()
}

func (ch *Chart) initZodiac(c *evalContext) {
	canStart := (int(c.canNam)*2 + 1) % 10
	ch.DiaBan[0].Zodiac = zodiacLabel(canchi.Can(canStart), 1)
	ch.DiaBan[1].Zodiac = zodiacLabel(canchi.Can(canStart%10+1), 2)
	ch.DiaBan[2].Zodiac = zodiacLabel(canchi.Can(canStart), 3)
	ch.DiaBan[3].Zodiac = zodiacLabel(canchi.Can(canStart%10+1), 4)
	for i := 4; i < 12; i++ {
		ch.DiaBan[i].Zodiac = zodiacLabel(
			canchi.Can((canStart+i-3)%10+1), canchi.Chi(i+1))
	}
}

func (ch *Chart) initDaiHan(c *evalContext) {
	start := c.cuc.Number()
	for i := 0; i < 12; i++ {
		ch.DiaBan[base.Wrap12(c.viTriMenh-1+c.d*i)-1].DaiHan = start + i*10
	}
}

func (ch *Chart) initTieuHan(c *evalContext) {
	var start int
	switch c.chiNam {
	case 3, 7, 11:
		start = 5
	case 1, 5, 9:
		start = 11
	case 2, 6, 10:
		start = 8
	default: // 4, 8, 12
		start = 2
	}

	// the annual cycle runs forward for men, backward for women
	d := 1
	if c.gender == Nu {
		d = -1
	}

	cungTy := base.Wrap12(start - 1 - d*(int(c.chiNam)-1))
	for i := 0; i < 12; i++ {
		ch.DiaBan[base.Wrap12(cungTy-1+d*i)-1].TieuHan = canchi.Chi(i + 1).Viet()
	}
}

func (ch *Chart) initNguyetHan(c *evalContext) {
	ten := c.chiNamXem.Viet()
	pos := 0
	for i := range ch.DiaBan {
		if ch.DiaBan[i].TieuHan == ten {
			pos = i
			break
		}
	}

	thang1 := base.Wrap12(pos - (c.lunar.Month - 1) + int(c.chiGio) - 1)
	for i := 0; i < 12; i++ {
		ch.DiaBan[(thang1-1+i)%12].NguyetHan = fmt.Sprintf("Tháng %d", i+1)
	}
}

func (ch *Chart) sortStars() {
	byOrder := func(l []Placement) {
		sort.SliceStable(l, func(i, j int) bool {
			return l[i].Sao.Order < l[j].Sao.Order
		})
	}
	for i := range ch.DiaBan {
		byOrder(ch.DiaBan[i].ChinhTinh)
		byOrder(ch.DiaBan[i].PhuTinhTrai)
		byOrder(ch.DiaBan[i].PhuTinhPhai)
	}
}

func (ch *Chart) initHeader(c *evalContext) error {
	var err error
	if ch.AmDuong, err = TimAmDuong(c.birth, c.gender); err != nil {
		return err
	}
	if ch.NoiCuThan, err = TimNoiCuThan(c.birth, c.gender); err != nil {
		return err
	}
	ch.BanMenh = TimMenh(c.birth)
	ch.Cuc = c.cuc
	ch.ChuMenh = TimChuMenh(c.birth)
	ch.ChuThan = TimChuThan(c.birth)
	ch.TinhLy = TimTinhLyAmDuong(c.birth)
	ch.CucMenh = TimCucMenhSinhKhac(c.birth)

	ch.ZodiacYear = canchi.YearName(c.lunar.Date)
	ch.ZodiacMonth = canchi.MonthName(c.lunar.Date)
	ch.ZodiacDay = canchi.DayName(c.birth)
	ch.ZodiacHour = canchi.HourName(c.birth)
	ch.ZodiacCurNam = canchi.YearName(date.Date{Year: c.curYear, Month: 6, Day: 1})
	ch.Tuoi = c.curYear - c.lunar.Year + 1

	ch.TamGiac = [3]int{c.viTriMenh, c.cung(8), c.cung(4)}
	return nil
}
