// Copyright 2013 Sonia Keys
// License: MIT

package render_test

import (
	"testing"

	"github.com/tienminh/laso/nguhanh"
	"github.com/tienminh/laso/render"
)

func TestCoord(t *testing.T) {
	// All twelve cells sit on the border of the 4×4 grid, each on its
	// own square.
	seen := map[[2]int]int{}
	for id := 1; id <= 12; id++ {
		r, c, err := render.Coord(id)
		if err != nil {
			t.Fatalf("Coord(%d): %v", id, err)
		}
		if r < 0 || r > 3 || c < 0 || c > 3 {
			t.Errorf("Coord(%d) = (%d, %d) off the grid", id, r, c)
		}
		if r != 0 && r != 3 && c != 0 && c != 3 {
			t.Errorf("Coord(%d) = (%d, %d) in the interior", id, r, c)
		}
		if prev, dup := seen[[2]int{r, c}]; dup {
			t.Errorf("cells %d and %d share (%d, %d)", prev, id, r, c)
		}
		seen[[2]int{r, c}] = id
	}
	if r, c, err := render.Coord(1); err != nil || r != 3 || c != 2 {
		t.Errorf("Coord(1) = (%d, %d), %v; want (3, 2)", r, c, err)
	}
	if _, _, err := render.Coord(13); err != render.ErrInvalidCell {
		t.Errorf("Coord(13) err = %v", err)
	}
}

func TestCornerColor(t *testing.T) {
	for id, want := range map[int]render.Color{
		2: render.Yellow, 5: render.Yellow, 8: render.Yellow, 11: render.Yellow,
		1: render.Black, 12: render.Black,
		3: render.Green, 4: render.Green,
		6: render.Red, 7: render.Red,
		9: render.Grey, 10: render.Grey,
	} {
		got, err := render.CornerColor(id)
		if err != nil || got != want {
			t.Errorf("CornerColor(%d) = %v, %v; want %v", id, got, err, want)
		}
	}
}

func TestHanhColor(t *testing.T) {
	for h, want := range map[nguhanh.Hanh]render.Color{
		nguhanh.Hoa:  render.Red,
		nguhanh.Thuy: render.Black,
		nguhanh.Moc:  render.Green,
		nguhanh.Tho:  render.Yellow,
		nguhanh.Kim:  render.Grey,
	} {
		if got := render.HanhColor(h); got != want {
			t.Errorf("HanhColor(%v) = %v, want %v", h, got, want)
		}
	}
}
