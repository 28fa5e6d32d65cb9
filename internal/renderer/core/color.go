// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer and backend.
package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a true color or the terminal's default color.
type Color struct {
	R, G, B uint8
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// Common colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0}
	ColorWhite = Color{R: 255, G: 255, B: 255}
	ColorGray  = Color{R: 128, G: 128, B: 128}
)

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex parses "#rrggbb" or "#rgb".
func ColorFromHex(hex string) (Color, error) {
	if len(hex) == 4 && hex[0] == '#' {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return fromColorful(c), nil
}

// MustColorFromHex is ColorFromHex for constants; it panics on error.
func MustColorFromHex(hex string) Color {
	c, err := ColorFromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// IsDefault returns true if this is the default/transparent color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.Default || other.Default {
		return c.Default == other.Default
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Blend mixes c toward other in CIE-L*a*b* space. amount 0 yields c,
// 1 yields other.
func (c Color) Blend(other Color, amount float64) Color {
	if c.Default || other.Default {
		if amount < 0.5 {
			return c
		}
		return other
	}
	return fromColorful(c.colorful().BlendLab(other.colorful(), amount))
}

// Lighten raises lightness in HCL space by amount (0..1).
func (c Color) Lighten(amount float64) Color {
	if c.Default {
		return c
	}
	h, ch, l := c.colorful().Hcl()
	return fromColorful(colorful.Hcl(h, ch, min(1, l+amount)))
}

// Darken lowers lightness in HCL space by amount (0..1).
func (c Color) Darken(amount float64) Color {
	if c.Default {
		return c
	}
	h, ch, l := c.colorful().Hcl()
	return fromColorful(colorful.Hcl(h, ch, max(0, l-amount)))
}

// Rotate shifts the hue by degrees, keeping chroma and lightness.
func (c Color) Rotate(degrees float64) Color {
	if c.Default {
		return c
	}
	h, ch, l := c.colorful().Hcl()
	h += degrees
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return fromColorful(colorful.Hcl(h, ch, l))
}

// Contrast returns black or white, whichever reads better on c.
func (c Color) Contrast() Color {
	if c.Default {
		return ColorDefault
	}
	_, _, l := c.colorful().Hcl()
	if l > 0.6 {
		return ColorBlack
	}
	return ColorWhite
}
