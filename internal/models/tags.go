package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/habitkit/internal/constants"
)

// ErrInvalidColor is returned when a color tag is not part of the palette.
var ErrInvalidColor = errors.New("invalid color")

// Color is a categorical display tag. The statistics engine never branches on it.
type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorPink   Color = "pink"
	ColorIndigo Color = "indigo"
	ColorTeal   Color = "teal"
	ColorCyan   Color = "cyan"
)

// DefaultColor is used for habits created without a color and for unknown tags.
const DefaultColor = ColorRed

// Palette lists the colors offered when creating a habit.
var Palette = []Color{
	ColorRed, ColorOrange, ColorYellow, ColorGreen,
	ColorBlue, ColorPurple, ColorPink, ColorIndigo,
	ColorTeal, ColorCyan,
}

var knownColors = func() map[Color]bool {
	m := make(map[Color]bool, len(Palette))
	for _, c := range Palette {
		m[c] = true
	}
	return m
}()

// ParseColor validates a color name. An empty name yields DefaultColor.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return DefaultColor, nil
	}
	c := Color(s)
	if !knownColors[c] {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// OrDefault returns c when it is a known color and DefaultColor otherwise.
func (c Color) OrDefault() Color {
	if knownColors[Color(strings.ToLower(string(c)))] {
		return Color(strings.ToLower(string(c)))
	}
	return DefaultColor
}

// Icon is an opaque icon identifier.
type Icon string

// OrDefault returns the icon, or the default icon when empty.
func (i Icon) OrDefault() Icon {
	if strings.TrimSpace(string(i)) == "" {
		return constants.DefaultIcon
	}
	return i
}
