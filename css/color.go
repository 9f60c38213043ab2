package css

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a CSS color in non-premultiplied 8-bit RGBA.
type Color struct {
	R, G, B, A uint8
}

// Transparent is the fully transparent color. It doubles as the unset
// marker in compact storage.
var Transparent = Color{}

// Black is the CSS initial color for text and borders.
var Black = Color{A: 0xff}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 0xff}
}

// RGBA implements the Color interface of package image/color, reporting
// alpha-premultiplied channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r = r * uint32(c.A) / 0xff
	g = uint32(c.G)
	g |= g << 8
	g = g * uint32(c.A) / 0xff
	b = uint32(c.B)
	b |= b << 8
	b = b * uint32(c.A) / 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

// Packed returns the color as a 0xRRGGBBAA word, the storage format of
// the compact property cache.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// ColorFromPacked decodes a 0xRRGGBBAA word.
func ColorFromPacked(u uint32) Color {
	return Color{uint8(u >> 24), uint8(u >> 16), uint8(u >> 8), uint8(u)}
}

func (c Color) String() string {
	if c == Transparent {
		return "transparent"
	}
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor parses CSS color notation: named colors ("cornflowerblue"),
// hex notation in 3-, 4-, 6- and 8-digit form, and rgb()/rgba() with
// numeric channels.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, fmt.Errorf("Empty color")
	}
	if s == "transparent" {
		return Transparent, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return parseRGBFunc(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return Color{c.R, c.G, c.B, c.A}, nil
	}
	return Color{}, fmt.Errorf("Unknown color: %q", s)
}

func parseHexColor(hex string) (Color, error) {
	n, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("Not a hex color: %q", "#"+hex)
	}
	switch len(hex) {
	case 3:
		return Color{
			R: nibbleSpread(uint8(n >> 8 & 0xf)),
			G: nibbleSpread(uint8(n >> 4 & 0xf)),
			B: nibbleSpread(uint8(n & 0xf)),
			A: 0xff,
		}, nil
	case 4:
		return Color{
			R: nibbleSpread(uint8(n >> 12 & 0xf)),
			G: nibbleSpread(uint8(n >> 8 & 0xf)),
			B: nibbleSpread(uint8(n >> 4 & 0xf)),
			A: nibbleSpread(uint8(n & 0xf)),
		}, nil
	case 6:
		return ColorFromPacked(uint32(n)<<8 | 0xff), nil
	case 8:
		return ColorFromPacked(uint32(n)), nil
	}
	return Color{}, fmt.Errorf("Not a hex color: %q", "#"+hex)
}

// nibbleSpread expands the short hex notation, '#f80' being '#ff8800'.
func nibbleSpread(n uint8) uint8 {
	return n<<4 | n
}

func parseRGBFunc(s string) (Color, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return Color{}, fmt.Errorf("Not a color function: %q", s)
	}
	args := strings.Split(s[open+1:len(s)-1], ",")
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("Color function with %d arguments: %q", len(args), s)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(args[i]))
		if err != nil {
			return Color{}, fmt.Errorf("Not a color channel: %q", args[i])
		}
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		ch[i] = uint8(v)
	}
	a := uint8(0xff)
	if len(args) == 4 {
		milli, rest, err := splitNumeric(strings.TrimSpace(args[3]))
		if err != nil || rest != "" {
			return Color{}, fmt.Errorf("Not an alpha value: %q", args[3])
		}
		if milli < 0 {
			milli = 0
		} else if milli > 1000 {
			milli = 1000
		}
		a = uint8(int32(milli) * 255 / 1000)
	}
	return Color{ch[0], ch[1], ch[2], a}, nil
}
