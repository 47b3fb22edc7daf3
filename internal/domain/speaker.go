package domain

import "fmt"

// Speaker is a named, colored identity that owns zero or more segments.
type Speaker struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Palette is the fixed color rotation for auto-created speakers.
var Palette = []string{
	"3B82F6", // blue
	"EF4444", // red
	"10B981", // green
	"F59E0B", // amber
	"8B5CF6", // violet
	"EC4899", // pink
	"14B8A6", // teal
	"F97316", // orange
}

// PaletteColor returns the palette entry for a speaker position,
// cycling when the index exceeds the palette length.
func PaletteColor(index int) string {
	if index < 0 {
		index = -index
	}
	return Palette[index%len(Palette)]
}

// SpeakersFromSegments derives the roster for a segment batch: distinct
// speaker ids in first-seen order, sequential display names, cycled colors.
func SpeakersFromSegments(segments []Segment) []Speaker {
	seen := make(map[string]bool)
	var speakers []Speaker
	for _, seg := range segments {
		if seg.SpeakerID == "" || seen[seg.SpeakerID] {
			continue
		}
		seen[seg.SpeakerID] = true
		speakers = append(speakers, Speaker{
			ID:    seg.SpeakerID,
			Name:  fmt.Sprintf("Speaker %d", len(speakers)+1),
			Color: PaletteColor(len(speakers)),
		})
	}
	return speakers
}
