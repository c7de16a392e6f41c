// Copyright 2013 Sonia Keys
// License: MIT

// Render: fixed layout and color facts for chart rasterizers.
//
// The twelve cells run clockwise around the border of a 4×4
// grid whose interior holds the chart header.  The coordinate map and
// the color assignments are frozen; rasterizers consume them as data
// and do their own drawing.
package render

import (
	"errors"

	"github.com/tienminh/laso/nguhanh"
)

// ErrInvalidCell is returned for a cell ordinal outside 1..12.
var ErrInvalidCell = errors.New("render: invalid cell ordinal")

// A Color is one of the palette entries used on the printed chart.
type Color int

// The palette.
const (
	Red Color = iota
	Green
	Blue
	Black
	White
	Background
	Yellow
	Grey
)

var rgb = [...][3]uint8{
	Red:        {255, 0, 0},
	Green:      {28, 128, 19},
	Blue:       {0, 0, 255},
	Black:      {0, 0, 0},
	White:      {255, 255, 255},
	Background: {250, 241, 215},
	Yellow:     {209, 206, 15},
	Grey:       {145, 144, 134},
}

// RGB returns the 8-bit color components.
func (c Color) RGB() (r, g, b uint8) {
	v := rgb[c]
	return v[0], v[1], v[2]
}

// coords[id-1] is the (row, col) of cell id; row 0 is the top of the
// paper, col 0 the left.
var coords = [12][2]int{
	{3, 2}, {3, 1}, {3, 0}, {2, 0}, {1, 0}, {0, 0},
	{0, 1}, {0, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3},
}

// Coord returns the frozen paper coordinate of a cell.
func Coord(id int) (row, col int, err error) {
	if id < 1 || id > 12 {
		return 0, 0, ErrInvalidCell
	}
	return coords[id-1][0], coords[id-1][1], nil
}

// CornerColor returns the color of a cell's zodiac corner label.
func CornerColor(id int) (Color, error) {
	switch id {
	case 2, 5, 8, 11:
		return Yellow, nil
	case 1, 12:
		return Black, nil
	case 3, 4:
		return Green, nil
	case 6, 7:
		return Red, nil
	case 9, 10:
		return Grey, nil
	}
	return White, ErrInvalidCell
}

// HanhColor returns the ink color of a star of the given element.
func HanhColor(h nguhanh.Hanh) Color {
	switch h {
	case nguhanh.Hoa:
		return Red
	case nguhanh.Thuy:
		return Black
	case nguhanh.Moc:
		return Green
	case nguhanh.Tho:
		return Yellow
	case nguhanh.Kim:
		return Grey
	}
	return White
}
