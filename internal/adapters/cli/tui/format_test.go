package tui

import (
	"testing"

	"github.com/devbush/cueline/internal/domain"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
	}{
		{"", 10, ""},
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is t…"},
		{"héllo wörld", 6, "héllo…"},
		{"x", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := truncate(tt.input, tt.max)
			if result != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, result, tt.expected)
			}
		})
	}
}

func TestSegmentLine(t *testing.T) {
	seg := domain.Segment{Start: "00:04", End: "00:09", Text: "morning everyone"}

	result := segmentLine(seg, "Alice", 80)
	if result != "00:04-00:09 Alice: morning everyone" {
		t.Errorf("segmentLine = %q", result)
	}
}

func TestSegmentLineEmptyText(t *testing.T) {
	seg := domain.Segment{Start: "00:00", End: "00:03"}

	result := segmentLine(seg, "Bob", 80)
	if result != "00:00-00:03 Bob: (empty)" {
		t.Errorf("segmentLine = %q", result)
	}
}

func TestSpeakerLine(t *testing.T) {
	sp := domain.Speaker{Name: "Alice"}

	if got := speakerLine(sp, 12, 40); got != "Alice (12)" {
		t.Errorf("speakerLine = %q", got)
	}
	if got := speakerLine(sp, 12, 8); got != "Alice (…" {
		t.Errorf("speakerLine truncated = %q", got)
	}
}
