package dom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// StyleProperties maps CSS property names to declared values.
type StyleProperties map[string]string

// PresentationalHints maps the width, height and bgcolor attributes onto style
// properties. Values that fail to parse are skipped.
// https://html.spec.whatwg.org/multipage/rendering.html#tables-2
func (t *HTMLTableElement) PresentationalHints() StyleProperties {
	style := StyleProperties{}
	for _, name := range t.GetAttributeNames() {
		value := t.GetAttribute(name)
		switch name {
		case "width", "height":
			if v, ok := parseNonzeroDimension(value); ok {
				style[name] = v
			}
		case "bgcolor":
			if v, ok := parseColor(value); ok {
				style["background-color"] = v
			}
		}
	}
	return style
}

func isASCIIWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseNonzeroDimension returns "<n>px" or "<n>%" for a valid non-zero
// dimension.
// https://html.spec.whatwg.org/multipage/common-microsyntaxes.html#rules-for-parsing-non-zero-dimension-values
func parseNonzeroDimension(input string) (string, bool) {
	pos := 0
	for pos < len(input) && isASCIIWhitespace(input[pos]) {
		pos++
	}
	if pos >= len(input) || !isASCIIDigit(input[pos]) {
		return "", false
	}

	start := pos
	for pos < len(input) && isASCIIDigit(input[pos]) {
		pos++
	}
	if pos+1 < len(input) && input[pos] == '.' && isASCIIDigit(input[pos+1]) {
		pos++
		for pos < len(input) && isASCIIDigit(input[pos]) {
			pos++
		}
	}

	value, err := strconv.ParseFloat(input[start:pos], 64)
	if err != nil || value == 0 {
		return "", false
	}

	unit := "px"
	if pos < len(input) && input[pos] == '%' {
		unit = "%"
	}
	return strconv.FormatFloat(value, 'f', -1, 64) + unit, true
}

// parseColor accepts named colors, transparent, hex notations and the
// rgb()/rgba() functions.
func parseColor(input string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return "", false
	}

	if s == "transparent" {
		return formatColor(0, 0, 0, 0), true
	}
	if c, ok := colornames.Map[s]; ok {
		return formatColor(c.R, c.G, c.B, c.A), true
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	for _, fn := range []string{"rgba(", "rgb("} {
		if strings.HasPrefix(s, fn) && strings.HasSuffix(s, ")") {
			return parseRGBFunction(s[len(fn) : len(s)-1])
		}
	}
	return "", false
}

func parseHexColor(hex string) (string, bool) {
	var digits []uint8
	for i := 0; i < len(hex); i++ {
		d, err := strconv.ParseUint(hex[i:i+1], 16, 8)
		if err != nil {
			return "", false
		}
		digits = append(digits, uint8(d))
	}

	switch len(digits) {
	case 3, 4:
		c := []uint8{0, 0, 0, 0xff}
		for i, d := range digits {
			c[i] = d<<4 | d
		}
		return formatColor(c[0], c[1], c[2], c[3]), true
	case 6, 8:
		c := []uint8{0, 0, 0, 0xff}
		for i := 0; i < len(digits); i += 2 {
			c[i/2] = digits[i]<<4 | digits[i+1]
		}
		return formatColor(c[0], c[1], c[2], c[3]), true
	}
	return "", false
}

func parseRGBFunction(args string) (string, bool) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return "", false
	}

	var c [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return "", false
		}
		c[i] = uint8(v)
	}

	alpha := uint8(0xff)
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return "", false
		}
		alpha = uint8(math.Round(a * 255))
	}
	return formatColor(c[0], c[1], c[2], alpha), true
}

func formatColor(r, g, b, a uint8) string {
	if a == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	alpha := math.Round(float64(a)/255*1000) / 1000
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}
