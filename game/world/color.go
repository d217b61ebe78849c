package world

import (
	"fmt"
	"strings"
)

// Color identifies one of the four diseases.
type Color int

const (
	NoColor Color = iota
	Blue
	Yellow
	Black
	Red
)

// NumColors is the number of diseases in play.
const NumColors = 4

// Colors lists every disease color in canonical order.
var Colors = [NumColors]Color{Blue, Yellow, Black, Red}

var colorNames = map[Color]string{
	NoColor: "None",
	Blue:    "Blue",
	Yellow:  "Yellow",
	Black:   "Black",
	Red:     "Red",
}

func (c Color) String() string {
	if s, ok := colorNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Valid reports whether c is one of the four disease colors.
func (c Color) Valid() bool {
	return c >= Blue && c <= Red
}

// Index returns the zero-based position of c in Colors. Only valid colors
// have a meaningful index.
func (c Color) Index() int {
	return int(c) - 1
}

// MarshalText encodes the color by name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(c.String())), nil
}

// UnmarshalText decodes a color name.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses a color name, case-insensitively.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	for _, c := range Colors {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	if s == "" || strings.EqualFold(s, "none") {
		return NoColor, nil
	}
	return NoColor, fmt.Errorf("unknown color %q", s)
}
