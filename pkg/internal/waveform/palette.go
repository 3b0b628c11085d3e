package waveform

import "github.com/lucasb-eyer/go-colorful"

// palette holds one distinct base color per channel position, sized to the
// session channel limit. Positions beyond the palette cycle.
var palette = []colorful.Color{
	{R: 0.90, G: 0.10, B: 0.10}, // red
	{R: 0.10, G: 0.45, B: 0.90}, // blue
	{R: 0.10, G: 0.70, B: 0.20}, // green
	{R: 0.95, G: 0.60, B: 0.05}, // orange
	{R: 0.60, G: 0.20, B: 0.80}, // purple
	{R: 0.05, G: 0.75, B: 0.75}, // teal
	{R: 0.90, G: 0.15, B: 0.60}, // magenta
	{R: 0.55, G: 0.40, B: 0.10}, // brown
	{R: 0.40, G: 0.55, B: 0.95}, // light blue
	{R: 0.45, G: 0.80, B: 0.25}, // lime
	{R: 0.95, G: 0.75, B: 0.10}, // gold
	{R: 0.75, G: 0.35, B: 0.95}, // violet
	{R: 0.10, G: 0.55, B: 0.45}, // sea green
	{R: 0.95, G: 0.40, B: 0.30}, // salmon
	{R: 0.35, G: 0.35, B: 0.75}, // indigo
	{R: 0.55, G: 0.55, B: 0.55}, // gray
}

// ChannelColor returns the deterministic base color for a channel's load
// position. The same position always yields the same color.
func ChannelColor(position int) colorful.Color {
	if position < 0 {
		position = 0
	}
	return palette[position%len(palette)]
}

// PaletteSize returns the number of distinct base colors.
func PaletteSize() int {
	return len(palette)
}

// Darken blends a color toward black by fraction: each component is scaled
// by (1 - fraction), with fraction clamped to [0, 1]. Stateless; the input
// color is never mutated.
func Darken(c colorful.Color, fraction float64) colorful.Color {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return colorful.Color{
		R: c.R * (1 - fraction),
		G: c.G * (1 - fraction),
		B: c.B * (1 - fraction),
	}
}
