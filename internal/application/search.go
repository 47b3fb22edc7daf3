package application

import (
	"strings"

	"github.com/devbush/cueline/internal/domain"
)

// Match locates one occurrence of a search query inside a segment.
type Match struct {
	SegmentID string
	Offset    int
}

// FindMatches scans segment text for the query, case-insensitively,
// returning matches in segment order then offset order.
func FindMatches(segments []domain.Segment, query string) []Match {
	if query == "" {
		return nil
	}

	needle := strings.ToLower(query)
	var matches []Match
	for _, seg := range segments {
		hay := strings.ToLower(seg.Text)
		from := 0
		for {
			i := strings.Index(hay[from:], needle)
			if i < 0 {
				break
			}
			matches = append(matches, Match{SegmentID: seg.ID, Offset: from + i})
			from += i + len(needle)
		}
	}
	return matches
}

func countOccurrences(text, query string) int {
	return strings.Count(text, query)
}

func replaceAll(text, query, replacement string) string {
	return strings.ReplaceAll(text, query, replacement)
}
