package state

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an NRGBA color with a "#rrggbb" or "#rrggbbaa" text form.
type Color struct {
	color.NRGBA
}

var (
	Black       = Color{color.NRGBA{A: 255}}
	White       = Color{color.NRGBA{R: 255, G: 255, B: 255, A: 255}}
	Transparent = Color{}
)

// FromColor converts any color.Color into a Color.
func FromColor(c color.Color) Color {
	if c == nil {
		return Transparent
	}
	return Color{color.NRGBAModel.Convert(c).(color.NRGBA)}
}

// ParseColor reads "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("invalid color format: %q", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var c color.NRGBA
	var err error
	if c.R, err = parse(0); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if c.G, err = parse(2); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if c.B, err = parse(4); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	c.A = 255
	if len(s) == 8 {
		if c.A, err = parse(6); err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
	}
	return Color{c}, nil
}

// MustColor is ParseColor for literals known to be valid.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// IsTransparent reports whether the color paints nothing.
func (c Color) IsTransparent() bool { return c.A == 0 }

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
