package application

import (
	"testing"

	"github.com/devbush/cueline/internal/domain"
)

func TestParseTranscription(t *testing.T) {
	data := []byte(`[
		{"speakerId": "speaker_1", "startTime": "00:00", "endTime": "00:04", "text": "Hi"},
		{"speakerId": "speaker_2", "startTime": "00:04", "endTime": "00:09.5", "text": "Hello"}
	]`)

	records, err := ParseTranscription(data)
	if err != nil {
		t.Fatalf("ParseTranscription: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[1].EndTime != "00:09.5" || records[1].SpeakerID != "speaker_2" {
		t.Errorf("record[1] = %+v", records[1])
	}
}

func TestParseTranscriptionMalformed(t *testing.T) {
	if _, err := ParseTranscription([]byte("{not json")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestBuildProject(t *testing.T) {
	records := []TranscriptionRecord{
		{SpeakerID: "b", StartTime: "00:00", EndTime: "00:04", Text: "x"},
		{SpeakerID: "a", StartTime: "00:04", EndTime: "01:30", Text: "y"},
		{SpeakerID: "b", StartTime: "01:30", EndTime: "01:45", Text: "z"},
	}

	p := BuildProject("Meeting", records)

	if p.Meta.Title != "Meeting" {
		t.Errorf("title = %q", p.Meta.Title)
	}
	if p.Meta.Duration != 105 {
		t.Errorf("duration = %v, want max end 105", p.Meta.Duration)
	}
	if len(p.Segments) != 3 {
		t.Fatalf("got %d segments", len(p.Segments))
	}

	ids := make(map[string]bool)
	for _, seg := range p.Segments {
		if seg.ID == "" {
			t.Error("segment missing assigned id")
		}
		if ids[seg.ID] {
			t.Errorf("duplicate id %q", seg.ID)
		}
		ids[seg.ID] = true
	}

	// Roster derived first-seen: b before a.
	if len(p.Speakers) != 2 || p.Speakers[0].ID != "b" || p.Speakers[1].ID != "a" {
		t.Errorf("speakers = %+v", p.Speakers)
	}
}

func TestSampleProjectLoads(t *testing.T) {
	p := SampleProject()

	if len(p.Segments) == 0 || len(p.Speakers) == 0 {
		t.Fatal("sample project is empty")
	}

	e := NewEditor()
	e.Load(p)
	if e.CanUndo() {
		t.Error("fresh load left history populated")
	}

	for i := 1; i < len(p.Segments); i++ {
		if p.Segments[i].StartSeconds() < p.Segments[i-1].StartSeconds() {
			t.Errorf("sample segments out of order at %d", i)
		}
	}
	_ = domain.SegmentEdgeTimes(p.Segments, "")
}

func TestFindMatches(t *testing.T) {
	segments := []domain.Segment{
		{ID: "1", Text: "Hello world"},
		{ID: "2", Text: "hello again, hello"},
		{ID: "3", Text: "nothing here"},
	}

	matches := FindMatches(segments, "HELLO")
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	if matches[0].SegmentID != "1" || matches[0].Offset != 0 {
		t.Errorf("match[0] = %+v", matches[0])
	}
	if matches[2].SegmentID != "2" || matches[2].Offset != 13 {
		t.Errorf("match[2] = %+v", matches[2])
	}

	if got := FindMatches(segments, ""); got != nil {
		t.Errorf("empty query returned %+v", got)
	}
}
