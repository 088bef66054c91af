package canvas

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a packed 0xRRGGBBAA pixel value.
type Color uint32

const (
	Transparent Color = 0x00000000
	Red         Color = 0xFF0000FF
	Blue        Color = 0x0000FFFF
	Green       Color = 0x008000FF
	Yellow      Color = 0xFFFF00FF
	Orange      Color = 0xFFA500FF
	Purple      Color = 0x800080FF
	Black       Color = 0x000000FF
	White       Color = 0xFFFFFFFF
)

// colorNames maps lowercase color names to their pixel value.
var colorNames = map[string]Color{
	"red":         Red,
	"blue":        Blue,
	"green":       Green,
	"yellow":      Yellow,
	"orange":      Orange,
	"purple":      Purple,
	"black":       Black,
	"white":       White,
	"transparent": Transparent,
}

// ParseColor resolves a color name from the fixed table, case-insensitively.
// A "#RRGGBB" hex string is accepted as a fallback and is treated as opaque.
func ParseColor(name string) (Color, error) {
	if c, ok := colorNames[strings.ToLower(name)]; ok {
		return c, nil
	}
	if len(name) == 7 && name[0] == '#' {
		v, err := strconv.ParseUint(name[1:], 16, 32)
		if err == nil {
			return Color(v<<8) | 0xFF, nil
		}
	}
	return Transparent, fmt.Errorf("unknown color %q", name)
}

// rgba splits a packed color into four bytes.
func (c Color) rgba() (r, g, b, a byte) {
	r = byte(c >> 24)
	g = byte(c >> 16)
	b = byte(c >> 8)
	a = byte(c)
	return
}

func (c Color) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return fmt.Sprintf("#%06X", uint32(c)>>8)
}
