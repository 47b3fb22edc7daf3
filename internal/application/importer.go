package application

import (
	"encoding/json"
	"fmt"

	"github.com/devbush/cueline/internal/domain"
	"github.com/google/uuid"
)

// TranscriptionRecord is one row of a bulk transcription result as
// produced by an external transcriber.
type TranscriptionRecord struct {
	SpeakerID string `json:"speakerId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Text      string `json:"text"`
}

// ParseTranscription decodes a transcription result document.
func ParseTranscription(data []byte) ([]TranscriptionRecord, error) {
	var records []TranscriptionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse transcription: %w", err)
	}
	return records, nil
}

// BuildProject turns a transcription batch into a fresh project. The
// import layer owns id assignment; the roster is derived from distinct
// speaker ids in first-seen order.
func BuildProject(title string, records []TranscriptionRecord) domain.Project {
	segments := make([]domain.Segment, 0, len(records))
	for _, rec := range records {
		segments = append(segments, domain.Segment{
			ID:        uuid.NewString(),
			SpeakerID: rec.SpeakerID,
			Start:     rec.StartTime,
			End:       rec.EndTime,
			Text:      rec.Text,
		})
	}

	var duration float64
	for _, seg := range segments {
		if end := seg.EndSeconds(); end > duration {
			duration = end
		}
	}

	return domain.Project{
		Meta:     domain.Meta{Title: title, Duration: duration},
		View:     domain.View{Zoom: 10},
		Speakers: domain.SpeakersFromSegments(segments),
		Segments: segments,
	}
}

// SampleProject returns the built-in demo fixture loaded when the
// editor starts without a project file.
func SampleProject() domain.Project {
	records := []TranscriptionRecord{
		{SpeakerID: "speaker_1", StartTime: "00:00", EndTime: "00:04", Text: "Welcome back to the show, it's great to have you here."},
		{SpeakerID: "speaker_2", StartTime: "00:04", EndTime: "00:09.5", Text: "Thanks for having me, it's been a while."},
		{SpeakerID: "speaker_1", StartTime: "00:09.5", EndTime: "00:15", Text: "Let's pick up where we left off last time."},
		{SpeakerID: "speaker_2", StartTime: "00:15", EndTime: "00:22", Text: "Right, we were talking about the new release."},
		{SpeakerID: "speaker_1", StartTime: "00:22", EndTime: "00:27.5", Text: "Exactly. So what changed since then?"},
		{SpeakerID: "speaker_2", StartTime: "00:27.5", EndTime: "00:36", Text: "Quite a lot, actually. The whole pipeline was rebuilt from scratch."},
	}

	p := BuildProject("Sample Session", records)
	p.Meta.Duration = 60
	return p
}
