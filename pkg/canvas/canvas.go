package canvas

import "fmt"

// Size limits enforced at construction and resize. The default shell size
// is 200.
const (
	MinSize     = 16
	MaxSize     = 1024
	DefaultSize = 200
)

// Canvas is a square grid of pixels. Drawing operations write through a
// per-pixel bounds check, so callers may stamp partially off-canvas shapes
// and only the visible pixels land. Validating the commanded center or
// endpoint is the caller's job, not the canvas's.
type Canvas struct {
	size int
	pix  []Color
}

// New creates a size×size canvas cleared to white.
func New(size int) (*Canvas, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("canvas size %d out of range [%d, %d]", size, MinSize, MaxSize)
	}
	c := &Canvas{size: size, pix: make([]Color, size*size)}
	c.Clear()
	return c, nil
}

// Size returns the side length of the canvas.
func (c *Canvas) Size() int { return c.size }

// Clear repaints every pixel white.
func (c *Canvas) Clear() {
	for i := range c.pix {
		c.pix[i] = White
	}
}

// Resize replaces the buffer with a blank newSize×newSize grid.
// Existing pixel content is discarded.
func (c *Canvas) Resize(newSize int) error {
	if newSize < MinSize || newSize > MaxSize {
		return fmt.Errorf("canvas size %d out of range [%d, %d]", newSize, MinSize, MaxSize)
	}
	c.size = newSize
	c.pix = make([]Color, newSize*newSize)
	c.Clear()
	return nil
}

// InBounds reports whether (x, y) lies on the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.size && y >= 0 && y < c.size
}

// ColorAt returns the pixel at (x, y). Out-of-bounds reads return Transparent.
func (c *Canvas) ColorAt(x, y int) Color {
	if !c.InBounds(x, y) {
		return Transparent
	}
	return c.pix[y*c.size+x]
}

// set writes one pixel, silently dropping out-of-bounds writes and
// transparent ink.
func (c *Canvas) set(x, y int, color Color) {
	if color == Transparent || !c.InBounds(x, y) {
		return
	}
	c.pix[y*c.size+x] = color
}

// stamp paints a filled disk of the given radius centered at (cx, cy).
// Radius 0 paints the single center pixel. Brush thickness comes from
// stamping this disk at every point a line or circle algorithm visits.
func (c *Canvas) stamp(cx, cy, radius int, color Color) {
	if radius <= 0 {
		c.set(cx, cy, color)
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				c.set(cx+dx, cy+dy, color)
			}
		}
	}
}

// DrawLine rasterizes a straight line from (x0, y0) to (x1, y1) using
// integer Bresenham stepping, stamping a disk of radius width/2 at every
// visited point.
func (c *Canvas) DrawLine(x0, y0, x1, y1, width int, color Color) {
	r := width / 2

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.stamp(x0, y0, r, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle rasterizes an unfilled circle of the given radius centered at
// (cx, cy) with the midpoint circle algorithm, stamping the brush disk at
// each of the eight octant-symmetric points per step.
func (c *Canvas) DrawCircle(cx, cy, radius, width int, color Color) {
	r := width / 2
	if radius <= 0 {
		c.stamp(cx, cy, r, color)
		return
	}

	x := radius
	y := 0
	d := 1 - radius

	for x >= y {
		c.stamp(cx+x, cy+y, r, color)
		c.stamp(cx+y, cy+x, r, color)
		c.stamp(cx-y, cy+x, r, color)
		c.stamp(cx-x, cy+y, r, color)
		c.stamp(cx-x, cy-y, r, color)
		c.stamp(cx-y, cy-x, r, color)
		c.stamp(cx+y, cy-x, r, color)
		c.stamp(cx+x, cy-y, r, color)

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// DrawRectangleBorder draws the unfilled border of a w×h rectangle centered
// at (cx, cy): four independent strokes of the given stroke width. The
// interior is never painted.
func (c *Canvas) DrawRectangleBorder(cx, cy, w, h, strokeWidth int, color Color) {
	if w <= 0 || h <= 0 {
		return
	}
	left := cx - w/2
	top := cy - h/2
	right := left + w - 1
	bottom := top + h - 1

	c.DrawLine(left, top, right, top, strokeWidth, color)
	c.DrawLine(left, bottom, right, bottom, strokeWidth, color)
	c.DrawLine(left, top, left, bottom, strokeWidth, color)
	c.DrawLine(right, top, right, bottom, strokeWidth, color)
}

// FloodFill repaints the 4-connected region of pixels sharing the exact
// color under (x, y) with the given color, breadth-first. Each pixel is
// recolored as it is enqueued, so the recolor doubles as the visited marker.
// Filling with the color already present, or with transparent ink, does
// nothing.
func (c *Canvas) FloodFill(x, y int, color Color) {
	if color == Transparent || !c.InBounds(x, y) {
		return
	}
	target := c.pix[y*c.size+x]
	if target == color {
		return
	}

	queue := []int{y*c.size + x}
	c.pix[y*c.size+x] = color

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		px := idx % c.size
		py := idx / c.size

		for _, n := range [4][2]int{{px + 1, py}, {px - 1, py}, {px, py + 1}, {px, py - 1}} {
			nx, ny := n[0], n[1]
			if !c.InBounds(nx, ny) {
				continue
			}
			nidx := ny*c.size + nx
			if c.pix[nidx] != target {
				continue
			}
			c.pix[nidx] = color
			queue = append(queue, nidx)
		}
	}
}

// CountColorInBox counts pixels equal to color inside the inclusive
// axis-aligned box spanned by the two corners. Corner order does not
// matter; the box is clamped to the canvas.
func (c *Canvas) CountColorInBox(color Color, x1, y1, x2, y2 int) int {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	x1 = max(x1, 0)
	y1 = max(y1, 0)
	x2 = min(x2, c.size-1)
	y2 = min(y2, c.size-1)

	count := 0
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if c.pix[y*c.size+x] == color {
				count++
			}
		}
	}
	return count
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
