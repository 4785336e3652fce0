package styles

import (
	"bytes"
	"encoding/xml"
	"unicode/utf8"
)

const (
	fontThicknessRatio = 0.14
	fontCharWidth      = 0.55
	fontSizeMin        = 9.0
	fontSizeMax        = 14.0
	labelPadding       = 0.85
)

// FontSize returns the label font size for a ring of the given thickness.
func FontSize(thickness float64) float64 {
	return max(fontSizeMin, min(fontSizeMax, thickness*fontThicknessRatio))
}

// TruncateLabel shortens label to fit radially within thickness at the
// given font size. Labels run along the radius, so the ring thickness is
// the available length.
func TruncateLabel(label string, thickness, fontSize float64) string {
	maxChars := int(thickness * labelPadding / (fontSize * fontCharWidth))
	maxChars = max(maxChars, 3)
	if utf8.RuneCountInString(label) <= maxChars {
		return label
	}
	runes := []rune(label)
	return string(runes[:maxChars-2]) + ".."
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
