package search

// MatchSpan is an inclusive [Start, End] range of rune indexes.
type MatchSpan struct {
	Start int
	End   int
}

// Contains reports whether rune index i falls inside the span.
func (s MatchSpan) Contains(i int) bool {
	return i >= s.Start && i <= s.End
}

// SpansFromPositions groups sorted match positions into runs of adjacent runes.
func SpansFromPositions(positions []int) []MatchSpan {
	if len(positions) == 0 {
		return nil
	}
	spans := make([]MatchSpan, 0, len(positions))
	current := MatchSpan{Start: positions[0], End: positions[0]}
	for _, p := range positions[1:] {
		if p == current.End+1 {
			current.End = p
			continue
		}
		spans = append(spans, current)
		current = MatchSpan{Start: p, End: p}
	}
	return append(spans, current)
}
