package model

import "image/color"

// Color is an 8-bit RGB ball color.
type Color struct {
	R, G, B uint8
}

// Hex builds a Color from 0xRRGGBB.
func Hex(u uint32) Color {
	return Color{
		R: uint8(0xff & (u >> 16)),
		G: uint8(0xff & (u >> 8)),
		B: uint8(0xff & u),
	}
}

// RGBA implements image/color.Color, always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Jitter shifts each channel by the given delta, clamped to the byte range.
// Pure on purpose: the caller samples the deltas, so a seeded run always
// reproduces the same colors.
func (c Color) Jitter(dr, dg, db int) Color {
	return Color{
		R: clampByte(int(c.R) + dr),
		G: clampByte(int(c.G) + dg),
		B: clampByte(int(c.B) + db),
	}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Per-mode ball palettes.
var PaletteClassical = []Color{
	Hex(0x50c88c),
	Hex(0x3cb4dc),
	Hex(0x64dcb4),
	Hex(0x8cc864),
	Hex(0x50a0f0),
	Hex(0x78e6a0),
	Hex(0x46bec8),
	Hex(0xa0dc50),
	Hex(0x5aaaff),
	Hex(0x32d2aa),
}

var PalettePareto = []Color{
	Hex(0xf04646),
	Hex(0xfa8228),
	Hex(0xf0c828),
	Hex(0xff5a96),
	Hex(0xe6a032),
	Hex(0xff3c64),
	Hex(0xf06e50),
	Hex(0xfab446),
	Hex(0xdc3282),
	Hex(0xff961e),
}

var PaletteCompetition = []Color{
	Hex(0x9664ff),
	Hex(0xb450e6),
	Hex(0x7882ff),
	Hex(0xc864c8),
	Hex(0x6450f0),
	Hex(0xaa78fa),
	Hex(0x8c3cdc),
	Hex(0xbe8cff),
	Hex(0x6e64e6),
	Hex(0xa050c8),
}

func PaletteFor(mode Mode) []Color {
	switch mode {
	case Classical:
		return PaletteClassical
	case Pareto:
		return PalettePareto
	case Competition:
		return PaletteCompetition
	default:
		return nil
	}
}

// AccentFor is the UI accent color of a mode.
func AccentFor(mode Mode) Color {
	switch mode {
	case Classical:
		return Hex(0x50b478)
	case Pareto:
		return Hex(0xdc7850)
	case Competition:
		return Hex(0x8264dc)
	default:
		return Hex(0xc8c8dc)
	}
}
