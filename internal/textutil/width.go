package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = '…'

// RuneWidth is the terminal column width of r, at least 1 for printable output.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		return 1
	}
	return w
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, r := range text {
		width += RuneWidth(r)
	}
	return width
}

// TruncateToWidth shortens text to maxWidth columns, ending with an ellipsis
// when anything was cut.
func TruncateToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if DisplayWidth(text) <= maxWidth {
		return text
	}

	ellipsisWidth := RuneWidth(ellipsis)
	if maxWidth <= ellipsisWidth {
		return string(ellipsis)
	}

	available := maxWidth - ellipsisWidth
	var b strings.Builder
	used := 0
	for _, r := range text {
		w := RuneWidth(r)
		if used+w > available {
			break
		}
		b.WriteRune(r)
		used += w
	}
	b.WriteRune(ellipsis)
	return b.String()
}

// TruncateLeft keeps the tail of text, prefixing an ellipsis, so the end of a
// long path stays visible.
func TruncateLeft(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if DisplayWidth(text) <= maxWidth {
		return text
	}

	ellipsisWidth := RuneWidth(ellipsis)
	if maxWidth <= ellipsisWidth {
		return string(ellipsis)
	}

	runes := []rune(text)
	available := maxWidth - ellipsisWidth
	used := 0
	start := len(runes)
	for start > 0 {
		w := RuneWidth(runes[start-1])
		if used+w > available {
			break
		}
		used += w
		start--
	}
	return string(ellipsis) + string(runes[start:])
}
