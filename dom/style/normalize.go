package style

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	colorRGB   = regexp.MustCompile(`rgb\(([0-9]+, ?[0-9]+, ?[0-9]+)\)`)
	colorHex   = regexp.MustCompile(`#([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})`)
	commaSpace = regexp.MustCompile(`, +`)
)

// Normalize canonicalizes a computed style value before comparison, so that
// equivalent colour notations compare as equal:
//
//    rgb(10, 20, 30)  →  rgba(10,20,30,255)
//    #0a141e          →  rgba(10,20,30,255)
//    transparent      →  rgba(0,0,0,0)
//    white            →  rgba(255,255,255,255)
//
// Patterns are not anchored: a value containing an rgb() or hex colour anywhere
// is replaced as a whole by the rgba() form of the first colour found.
// Alpha is always 255 for rgb() and hex input. Other values, including "black"
// and rgba() input, pass through unchanged. Finally every comma followed by
// spaces is collapsed to a bare comma, regardless of the branch taken.
//
// Normalize is applied to every style value, not just to colours.
func Normalize(value Property) Property {
	v := string(value)
	var result string
	if m := colorRGB.FindStringSubmatch(v); m != nil {
		result = "rgba(" + m[1] + ", 255)"
	} else if m := colorHex.FindStringSubmatch(v); m != nil {
		result = "rgba(" + hexByte(m[1]) + ", " + hexByte(m[2]) + ", " + hexByte(m[3]) + ", 255)"
	} else if v == "transparent" {
		result = "rgba(0, 0, 0, 0)"
	} else if v == "white" {
		result = "rgba(255, 255, 255, 255)"
	} else {
		result = v
	}
	return Property(commaSpace.ReplaceAllString(result, ","))
}

func hexByte(h string) string {
	n, err := strconv.ParseUint(strings.ToLower(h), 16, 8)
	if err != nil { // cannot happen, guarded by regexp
		tracer().Errorf("invalid hex colour component %q", h)
		return "0"
	}
	return strconv.FormatUint(n, 10)
}

// Equal compares two style values after normalization.
func Equal(p1, p2 Property) bool {
	return Normalize(p1) == Normalize(p2)
}
