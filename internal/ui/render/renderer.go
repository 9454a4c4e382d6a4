package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/rnav/internal/fs"
	search "github.com/kk-code-lab/rnav/internal/search"
	textutil "github.com/kk-code-lab/rnav/internal/textutil"
	"github.com/kk-code-lab/rnav/internal/view"
)

const (
	statusRow    = 0
	listStartRow = 2
	entryIndent  = 2
)

// Renderer draws a view.Model onto a tcell screen.
type Renderer struct {
	screen       tcell.Screen
	theme        ColorTheme
	scrollOffset int
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, theme ColorTheme) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  theme,
	}
}

// Render draws one full frame.
func (r *Renderer) Render(m view.Model) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	r.drawStatus(m, w)
	if h > listStartRow {
		listHeight := h - listStartRow - 1
		r.drawEntries(m, w, listHeight)
		r.drawNotice(m, w, h-1)
	}

	r.screen.Show()
}

// ScrollOffset is the index of the first entry drawn in the last frame.
func (r *Renderer) ScrollOffset() int {
	return r.scrollOffset
}

func (r *Renderer) drawStatus(m view.Model, w int) {
	style := tcell.StyleDefault.Foreground(r.theme.StatusFg).Bold(true)
	// Keep the tail: the query and the deepest segment matter most.
	status := textutil.TruncateLeft(textutil.SanitizeTerminalText(m.Status), w)
	r.drawText(0, statusRow, w, status, style)
}

func (r *Renderer) drawEntries(m view.Model, w, listHeight int) {
	if listHeight <= 0 {
		return
	}
	r.scrollOffset = adjustScroll(r.scrollOffset, m.Selected, len(m.Lines), listHeight)

	end := min(r.scrollOffset+listHeight, len(m.Lines))
	y := listStartRow
	for i := r.scrollOffset; i < end; i++ {
		r.drawLine(m.Lines[i], y, w)
		y++
	}
}

// adjustScroll moves the window the least amount that keeps selected visible.
func adjustScroll(offset, selected, total, height int) int {
	if total <= height || selected < 0 {
		return 0
	}
	if selected < offset {
		offset = selected
	}
	if selected >= offset+height {
		offset = selected - height + 1
	}
	return max(0, min(offset, total-height))
}

func (r *Renderer) lineStyle(line view.Line) tcell.Style {
	base := tcell.StyleDefault
	switch line.Tag() {
	case view.TagSelectedDirectory, view.TagSelectedFile:
		return base.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg).Bold(line.Tag() == view.TagSelectedDirectory)
	case view.TagDirectory:
		return base.Foreground(r.theme.DirectoryFg).Bold(true)
	}
	if line.Kind == fsutil.KindExecutable {
		return base.Foreground(r.theme.ExecutableFg)
	}
	return base.Foreground(r.theme.FileFg)
}

func (r *Renderer) drawLine(line view.Line, y, w int) {
	style := r.lineStyle(line)
	matchStyle := style.Foreground(r.theme.MatchFg).Bold(true)
	if line.Selected {
		matchStyle = style.Underline(true).Bold(true)
	}

	x := 0
	for ; x < entryIndent && x < w; x++ {
		ch := ' '
		if line.Selected && x == 0 {
			ch = '>'
		}
		r.screen.SetContent(x, y, ch, nil, style)
	}

	runes := []rune(line.Label())
	nameLen := len([]rune(line.Name))
	available := w - x
	if textutil.DisplayWidth(string(runes)) > available {
		// Leave one column for the ellipsis.
		available--
		if available < 0 {
			return
		}
		x = r.drawRunes(runes, line.Matches, nameLen, x, y, x+available, style, matchStyle)
		if x < w {
			r.screen.SetContent(x, y, '…', nil, style)
			x++
		}
	} else {
		x = r.drawRunes(runes, line.Matches, nameLen, x, y, w, style, matchStyle)
	}

	for ; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawRunes draws runes from x up to maxX, styling rune positions that fall
// inside spans. Positions at or past nameLen belong to the marker and are
// never highlighted.
func (r *Renderer) drawRunes(runes []rune, spans []search.MatchSpan, nameLen, x, y, maxX int, style, matchStyle tcell.Style) int {
	for i, ru := range runes {
		rw := textutil.RuneWidth(ru)
		if x+rw > maxX {
			break
		}
		cellStyle := style
		if i < nameLen && inSpans(spans, i) {
			cellStyle = matchStyle
		}
		r.screen.SetContent(x, y, textutil.SafeRune(ru), nil, cellStyle)
		x += rw
	}
	return x
}

func inSpans(spans []search.MatchSpan, i int) bool {
	for _, span := range spans {
		if span.Contains(i) {
			return true
		}
	}
	return false
}

func (r *Renderer) drawNotice(m view.Model, w, y int) {
	counter := ""
	if len(m.Lines) > 0 {
		counter = fmt.Sprintf("%d/%d", m.Selected+1, len(m.Lines))
	}
	if m.HistoryDepth > 0 {
		counter = fmt.Sprintf("%s ↓%d", counter, m.HistoryDepth)
	}

	counterWidth := textutil.DisplayWidth(counter)
	noticeWidth := w
	if counter != "" && counterWidth+1 < w {
		noticeWidth = w - counterWidth - 1
		r.drawText(w-counterWidth, y, counterWidth, counter, tcell.StyleDefault.Foreground(r.theme.StatusFg))
	}

	if m.Notice != "" {
		notice := textutil.TruncateToWidth(textutil.SanitizeTerminalText(m.Notice), noticeWidth)
		r.drawText(0, y, noticeWidth, notice, tcell.StyleDefault.Foreground(r.theme.NoticeFg))
	}
}

// drawText draws text with proper Unicode handling and returns the end column.
func (r *Renderer) drawText(x, y, maxWidth int, text string, style tcell.Style) int {
	limit := x + maxWidth
	for _, ru := range text {
		rw := textutil.RuneWidth(ru)
		if x+rw > limit {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += rw
	}
	return x
}
