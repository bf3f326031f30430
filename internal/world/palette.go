package world

import "github.com/lucasb-eyer/go-colorful"

// PaletteSize is the number of distinct display colors before the cycle
// repeats. Shared colors are possible once it wraps, which is why color
// is never used as body identity.
const PaletteSize = 7

var palette = buildPalette(PaletteSize)

func buildPalette(n int) []string {
	out := make([]string, n)
	for i := range out {
		hue := float64(i) * 360.0 / float64(n)
		out[i] = colorful.Hsv(hue, 0.85, 0.95).Hex()
	}
	return out
}

// PaletteColor returns the display color for the i-th injected body.
func PaletteColor(i int) string {
	return palette[i%len(palette)]
}
