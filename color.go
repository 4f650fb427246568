package sparkle

import (
	"fmt"
	"strings"
)

// Color classifies an LED by the color it emits. It is a static property
// fixed at construction; group operations can filter on it.
type Color uint8

const (
	Any Color = iota
	Infrared // for whatever it's worth
	Red
	Orange
	Yellow
	Green
	Aqua
	Blue
	Purple
	Ultraviolet // for whatever it's worth
	White
)

var colorNames = [...]string{
	Any:         "any",
	Infrared:    "infrared",
	Red:         "red",
	Orange:      "orange",
	Yellow:      "yellow",
	Green:       "green",
	Aqua:        "aqua",
	Blue:        "blue",
	Purple:      "purple",
	Ultraviolet: "ultraviolet",
	White:       "white",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// ParseColor maps a case-insensitive color name back to its Color value.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c, n := range colorNames {
		if n == name {
			return Color(c), nil
		}
	}
	return Any, fmt.Errorf("unknown LED color %q", s)
}
