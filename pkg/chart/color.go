package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor parses the color forms used by series and stylesheet values:
// "#rgb", "#rrggbb", "rgb(r, g, b)" with 0-255 channels, and SVG color
// keywords such as "orange".
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		c, _ := colorful.MakeColor(named)
		return c, nil
	}
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return colorful.Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		return c, nil
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		parts := strings.Split(s[len("rgb("):len(s)-1], ",")
		if len(parts) != 3 {
			return colorful.Color{}, fmt.Errorf("invalid rgb color %q", s)
		}
		var ch [3]float64
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 || n > 255 {
				return colorful.Color{}, fmt.Errorf("invalid rgb channel %q in %q", p, s)
			}
			ch[i] = float64(n) / 255
		}
		return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
	}
	return colorful.Color{}, fmt.Errorf("unsupported color %q (use #rrggbb, rgb(r, g, b) or a color name)", s)
}
