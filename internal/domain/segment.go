package domain

import "sort"

const (
	// MinDuration is the shortest a segment may be at rest, in seconds.
	MinDuration = 0.5

	// DefaultDuration is the length given to newly added segments.
	DefaultDuration = 3.0
)

// Segment is a speaker-attributed, time-bounded unit of transcript text.
// Start and End are stored in clock form ("MM:SS" or "MM:SS.d"); numeric
// access goes through the clock codec, so stored precision is one decimal.
type Segment struct {
	ID        string `json:"id"`
	SpeakerID string `json:"speakerId"`
	Start     string `json:"startTime"`
	End       string `json:"endTime"`
	Text      string `json:"text"`
}

// StartSeconds returns the parsed start bound.
func (s Segment) StartSeconds() float64 {
	return ParseClock(s.Start)
}

// EndSeconds returns the parsed end bound.
func (s Segment) EndSeconds() float64 {
	return ParseClock(s.End)
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.EndSeconds() - s.StartSeconds()
}

// SortSegmentsByStart stable-sorts segments into ascending start order.
func SortSegmentsByStart(segments []Segment) {
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].StartSeconds() < segments[j].StartSeconds()
	})
}
