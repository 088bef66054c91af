package canvas

import "testing"

func mustNew(t *testing.T, size int) *Canvas {
	t.Helper()
	c, err := New(size)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", size, err)
	}
	return c
}

func TestNewSizeBounds(t *testing.T) {
	tests := []struct {
		size    int
		wantErr bool
	}{
		{15, true},
		{16, false},
		{200, false},
		{1024, false},
		{1025, true},
		{0, true},
		{-5, true},
	}
	for _, tc := range tests {
		_, err := New(tc.size)
		if (err != nil) != tc.wantErr {
			t.Errorf("New(%d) error = %v, wantErr %t", tc.size, err, tc.wantErr)
		}
	}
}

func TestNewCanvasIsWhite(t *testing.T) {
	c := mustNew(t, 16)
	if got := c.CountColorInBox(White, 0, 0, 15, 15); got != 256 {
		t.Errorf("white pixel count = %d, want 256", got)
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	c := mustNew(t, 16)
	c.DrawLine(2, 5, 9, 5, 1, Black)
	for x := 2; x <= 9; x++ {
		if c.ColorAt(x, 5) != Black {
			t.Errorf("pixel (%d, 5) not painted", x)
		}
	}
	if got := c.CountColorInBox(Black, 0, 0, 15, 15); got != 8 {
		t.Errorf("black pixel count = %d, want 8", got)
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	c := mustNew(t, 16)
	c.DrawLine(0, 0, 7, 7, 1, Black)
	for i := 0; i <= 7; i++ {
		if c.ColorAt(i, i) != Black {
			t.Errorf("pixel (%d, %d) not painted", i, i)
		}
	}
}

func TestDrawLineDirectionIndependent(t *testing.T) {
	a := mustNew(t, 16)
	b := mustNew(t, 16)
	a.DrawLine(1, 2, 12, 9, 1, Black)
	b.DrawLine(12, 9, 1, 2, 1, Black)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if a.ColorAt(x, y) != b.ColorAt(x, y) {
				t.Fatalf("pixel (%d, %d) differs between directions", x, y)
			}
		}
	}
}

func TestDrawLineStampThickness(t *testing.T) {
	c := mustNew(t, 16)
	c.DrawLine(4, 8, 11, 8, 3, Black)
	// A width-3 brush stamps a radius-1 disk: the rows above and below the
	// line must be painted too.
	for x := 4; x <= 11; x++ {
		for _, y := range []int{7, 8, 9} {
			if c.ColorAt(x, y) != Black {
				t.Errorf("pixel (%d, %d) not painted by width-3 brush", x, y)
			}
		}
	}
	if c.ColorAt(8, 6) != White || c.ColorAt(8, 10) != White {
		t.Error("width-3 brush painted more than one row on each side")
	}
}

func TestDrawLineClipsOffCanvas(t *testing.T) {
	c := mustNew(t, 16)
	// A wide brush at the edge stamps partially off-canvas; the overflow
	// is dropped per pixel, not an error.
	c.DrawLine(0, 0, 5, 0, 5, Black)
	if c.ColorAt(0, 0) != Black {
		t.Error("on-canvas part of the stroke missing")
	}
}

func TestDrawCircleCardinalPoints(t *testing.T) {
	c := mustNew(t, 32)
	c.DrawCircle(16, 16, 10, 1, Black)
	for _, p := range [4][2]int{{26, 16}, {6, 16}, {16, 26}, {16, 6}} {
		if c.ColorAt(p[0], p[1]) != Black {
			t.Errorf("cardinal point (%d, %d) not on the circle", p[0], p[1])
		}
	}
	if c.ColorAt(16, 16) != White {
		t.Error("circle is filled; the center must stay untouched")
	}
}

func TestDrawCircleOctantSymmetry(t *testing.T) {
	c := mustNew(t, 32)
	c.DrawCircle(16, 16, 9, 1, Black)
	for dy := -15; dy <= 15; dy++ {
		for dx := -15; dx <= 15; dx++ {
			got := c.ColorAt(16+dx, 16+dy)
			if got != c.ColorAt(16-dx, 16+dy) {
				t.Fatalf("offset (%d, %d) breaks horizontal mirror symmetry", dx, dy)
			}
			if got != c.ColorAt(16+dx, 16-dy) {
				t.Fatalf("offset (%d, %d) breaks vertical mirror symmetry", dx, dy)
			}
			if got != c.ColorAt(16+dy, 16+dx) {
				t.Fatalf("offset (%d, %d) breaks diagonal symmetry", dx, dy)
			}
		}
	}
}

func TestDrawCircleZeroRadius(t *testing.T) {
	c := mustNew(t, 16)
	c.DrawCircle(8, 8, 0, 1, Black)
	if c.ColorAt(8, 8) != Black {
		t.Error("zero-radius circle must paint the center pixel")
	}
	if got := c.CountColorInBox(Black, 0, 0, 15, 15); got != 1 {
		t.Errorf("black pixel count = %d, want 1", got)
	}
}

func TestDrawRectangleBorderUnfilled(t *testing.T) {
	c := mustNew(t, 16)
	c.DrawRectangleBorder(8, 8, 6, 4, 1, Black)
	// 6×4 centered at (8,8): corners (5,6) and (10,9).
	for x := 5; x <= 10; x++ {
		if c.ColorAt(x, 6) != Black || c.ColorAt(x, 9) != Black {
			t.Errorf("column %d missing a horizontal edge pixel", x)
		}
	}
	for y := 6; y <= 9; y++ {
		if c.ColorAt(5, y) != Black || c.ColorAt(10, y) != Black {
			t.Errorf("row %d missing a vertical edge pixel", y)
		}
	}
	if c.ColorAt(8, 8) != White {
		t.Error("rectangle interior was filled")
	}
	// 2·6 + 2·4 - 4 corners counted once
	if got := c.CountColorInBox(Black, 0, 0, 15, 15); got != 16 {
		t.Errorf("border pixel count = %d, want 16", got)
	}
}

func TestFloodFillStaysInsideBoundary(t *testing.T) {
	c := mustNew(t, 16)
	c.DrawRectangleBorder(8, 8, 8, 8, 1, Black)
	c.FloodFill(8, 8, Red)
	if c.ColorAt(8, 8) != Red {
		t.Error("interior not filled")
	}
	if c.ColorAt(0, 0) != White || c.ColorAt(15, 15) != White {
		t.Error("flood fill escaped the black boundary")
	}
	// 8×8 border at corners (4,4)-(11,11) encloses a 6×6 interior.
	if got := c.CountColorInBox(Red, 0, 0, 15, 15); got != 36 {
		t.Errorf("red pixel count = %d, want 36", got)
	}
}

func TestFloodFillSameColorIsNoop(t *testing.T) {
	c := mustNew(t, 16)
	c.FloodFill(8, 8, White)
	if got := c.CountColorInBox(White, 0, 0, 15, 15); got != 256 {
		t.Errorf("white pixel count = %d, want 256", got)
	}
}

func TestFloodFillWholeCanvas(t *testing.T) {
	c := mustNew(t, 16)
	c.FloodFill(0, 0, Blue)
	if got := c.CountColorInBox(Blue, 0, 0, 15, 15); got != 256 {
		t.Errorf("blue pixel count = %d, want 256", got)
	}
}

func TestFloodFillTransparentIsNoop(t *testing.T) {
	c := mustNew(t, 16)
	c.FloodFill(8, 8, Transparent)
	if got := c.CountColorInBox(White, 0, 0, 15, 15); got != 256 {
		t.Errorf("transparent fill changed the canvas: %d white pixels", got)
	}
}

func TestTransparentInkIsDropped(t *testing.T) {
	c := mustNew(t, 16)
	c.DrawLine(0, 0, 15, 15, 3, Transparent)
	if got := c.CountColorInBox(White, 0, 0, 15, 15); got != 256 {
		t.Errorf("transparent ink changed the canvas: %d white pixels", got)
	}
}

func TestCountColorInBox(t *testing.T) {
	c := mustNew(t, 16)
	c.DrawLine(0, 0, 3, 0, 1, Black)
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		want           int
	}{
		{"Exact", 0, 0, 3, 0, 4},
		{"Swapped Corners", 3, 0, 0, 0, 4},
		{"Partial Overlap", 2, 0, 10, 5, 2},
		{"Clamped Off Canvas", -5, -5, 100, 100, 4},
		{"Empty Region", 5, 5, 8, 8, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.CountColorInBox(Black, tc.x1, tc.y1, tc.x2, tc.y2); got != tc.want {
				t.Errorf("CountColorInBox(black, %d, %d, %d, %d) = %d, want %d",
					tc.x1, tc.y1, tc.x2, tc.y2, got, tc.want)
			}
		})
	}
}

func TestResizeClears(t *testing.T) {
	c := mustNew(t, 16)
	c.DrawLine(0, 0, 10, 0, 1, Black)
	if err := c.Resize(32); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if c.Size() != 32 {
		t.Errorf("size = %d, want 32", c.Size())
	}
	if got := c.CountColorInBox(White, 0, 0, 31, 31); got != 32*32 {
		t.Errorf("resized canvas not blank: %d white pixels", got)
	}
	if err := c.Resize(4000); err == nil {
		t.Error("Resize(4000) succeeded, want out-of-range error")
	}
}

func TestInBounds(t *testing.T) {
	c := mustNew(t, 16)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{15, 15, true},
		{-1, 0, false},
		{0, -1, false},
		{16, 0, false},
		{0, 16, false},
	}
	for _, tc := range tests {
		if got := c.InBounds(tc.x, tc.y); got != tc.want {
			t.Errorf("InBounds(%d, %d) = %t, want %t", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		want    Color
		wantErr bool
	}{
		{"Red", Red, false},
		{"red", Red, false},
		{"TRANSPARENT", Transparent, false},
		{"White", White, false},
		{"#FF0000", Red, false},
		{"#00FF00", 0x00FF00FF, false},
		{"Magenta", 0, true},
		{"#GGGGGG", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %t", tc.name, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseColor(%q) = %08X, want %08X", tc.name, uint32(got), uint32(tc.want))
		}
	}
}

func TestRGBAExport(t *testing.T) {
	c := mustNew(t, 16)
	c.DrawLine(0, 0, 0, 0, 1, Black)
	pix := c.RGBA()
	if len(pix) != 16*16*4 {
		t.Fatalf("RGBA length = %d, want %d", len(pix), 16*16*4)
	}
	// Pixel (0,0) is black, fully opaque.
	if pix[0] != 0 || pix[1] != 0 || pix[2] != 0 || pix[3] != 0xFF {
		t.Errorf("pixel (0,0) bytes = %v, want opaque black", pix[:4])
	}
	// Pixel (1,0) is untouched white.
	if pix[4] != 0xFF || pix[5] != 0xFF || pix[6] != 0xFF || pix[7] != 0xFF {
		t.Errorf("pixel (1,0) bytes = %v, want opaque white", pix[4:8])
	}
}
