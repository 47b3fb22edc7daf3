package tui

import (
	"fmt"

	"github.com/devbush/cueline/internal/domain"
)

// truncate shortens a string to max cells, rune-safe, with a trailing
// ellipsis when anything was cut.
func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// segmentLine formats one transcript row.
// Example: "00:04-00:09 Alice: morning everyone"
func segmentLine(seg domain.Segment, speakerName string, max int) string {
	text := seg.Text
	if text == "" {
		text = "(empty)"
	}
	line := fmt.Sprintf("%s-%s %s: %s", seg.Start, seg.End, speakerName, text)
	return truncate(line, max)
}

// speakerLine formats one speaker-panel row with its segment count.
// Example: "Alice (12)"
func speakerLine(sp domain.Speaker, segments int, max int) string {
	return truncate(fmt.Sprintf("%s (%d)", sp.Name, segments), max)
}
