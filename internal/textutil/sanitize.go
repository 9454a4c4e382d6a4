package textutil

import "strings"

// Bidi overrides, zero-width joiners and similar runes that can reorder or hide
// text on a terminal.
var formattingRunes = map[rune]bool{
	0x00AD: true, 0x061C: true, 0x180E: true,
	0x200B: true, 0x200C: true, 0x200D: true, 0x200E: true, 0x200F: true,
	0x2028: true, 0x2029: true,
	0x202A: true, 0x202B: true, 0x202C: true, 0x202D: true, 0x202E: true,
	0x2060: true, 0x2066: true, 0x2067: true, 0x2068: true, 0x2069: true,
	0xFEFF: true,
}

// SafeRune maps a rune that could inject escape sequences or reorder text to
// '?'. Every other rune is returned unchanged, so rune positions survive.
func SafeRune(r rune) rune {
	if (r >= 0 && r < 0x20) || r == 0x7f || formattingRunes[r] {
		return '?'
	}
	return r
}

// SanitizeTerminalText applies SafeRune to every rune of text.
func SanitizeTerminalText(text string) string {
	for _, r := range text {
		if SafeRune(r) != r {
			return strings.Map(SafeRune, text)
		}
	}
	return text
}
