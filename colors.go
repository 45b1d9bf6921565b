package arpctheme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// ErrUnknownColor is returned when a requested color name is not part of
// the brand palette. Use [ColorNames] to list the valid names.
var ErrUnknownColor = errors.New("arpctheme: unknown brand color")

// brandHex maps brand color names to hex codes. The table is fixed;
// every chart color comes from here.
var brandHex = map[string]string{
	"blue":      "#004E7C",
	"green":     "#4C8C2B",
	"gold":      "#D3A518",
	"red":       "#9E2B25",
	"gray":      "#6E7B84",
	"darkblue":  "#002A42",
	"darkgreen": "#2E5820",
	"lightgray": "#D5DBDE",
	"cream":     "#F5F1E7",
}

// paletteOrder lists the brand colors in categorical priority order:
// a series with n groups uses the first n entries.
var paletteOrder = []string{
	"blue",
	"green",
	"gold",
	"red",
	"gray",
	"darkblue",
	"darkgreen",
	"lightgray",
	"cream",
}

// Color returns a single brand color by name.
// Names are case-insensitive. Unknown names return [ErrUnknownColor].
func Color(name string) (gg.RGBA, error) {
	hex, ok := brandHex[strings.ToLower(name)]
	if !ok {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return gg.Hex(hex), nil
}

// Colors returns the requested brand colors in the requested order.
// With no arguments it returns the full palette in priority order.
// A single unknown name fails the whole call; no partial result is returned.
// Requesting the same name twice returns it twice.
func Colors(names ...string) ([]gg.RGBA, error) {
	if len(names) == 0 {
		names = paletteOrder
	}
	out := make([]gg.RGBA, len(names))
	for i, name := range names {
		c, err := Color(name)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// HexColors is like [Colors] but returns hex strings instead of parsed colors.
func HexColors(names ...string) ([]string, error) {
	if len(names) == 0 {
		names = paletteOrder
	}
	out := make([]string, len(names))
	for i, name := range names {
		hex, ok := brandHex[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}
		out[i] = hex
	}
	return out, nil
}

// Palette returns the first n colors of the priority order, for coloring a
// categorical series with n groups. n must be between 1 and the palette
// size (see [ColorNames]).
func Palette(n int) ([]gg.RGBA, error) {
	if n < 1 || n > len(paletteOrder) {
		return nil, fmt.Errorf("arpctheme: palette size must be between 1 and %d, got %d",
			len(paletteOrder), n)
	}
	return Colors(paletteOrder[:n]...)
}

// ColorNames returns the brand color names in priority order.
// The returned slice is a copy; callers may modify it.
func ColorNames() []string {
	out := make([]string, len(paletteOrder))
	copy(out, paletteOrder)
	return out
}

// mustColor looks up a brand color that is known to exist.
// Only used internally with names from paletteOrder.
func mustColor(name string) gg.RGBA {
	c, err := Color(name)
	if err != nil {
		panic(err)
	}
	return c
}
