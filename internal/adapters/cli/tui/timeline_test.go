package tui

import (
	"testing"

	"github.com/devbush/cueline/internal/application"
	"github.com/devbush/cueline/internal/domain"
)

func testModel(t *testing.T) Model {
	t.Helper()
	project := domain.Project{
		Meta: domain.Meta{Title: "test", Duration: 60},
		Speakers: []domain.Speaker{
			{ID: "sp_a", Name: "Alice", Color: domain.Palette[0]},
			{ID: "sp_b", Name: "Bob", Color: domain.Palette[1]},
		},
		Segments: []domain.Segment{
			{ID: "seg_1", SpeakerID: "sp_a", Start: "00:00", End: "00:04", Text: "hi"},
			{ID: "seg_2", SpeakerID: "sp_b", Start: "00:10", End: "00:20", Text: "yo"},
		},
	}
	m := New(Options{Project: project, Zoom: 10})
	m.width = 212
	m.height = 30
	return m
}

func TestSegmentCols(t *testing.T) {
	m := testModel(t)

	seg, _ := m.editor.SegmentByID("seg_1")
	cs, ce, ok := m.segmentCols(seg)
	if !ok {
		t.Fatal("expected segment in view")
	}
	if cs != 0 || ce != 39 {
		t.Errorf("cols = %d..%d, want 0..39", cs, ce)
	}
}

func TestSegmentColsOffscreen(t *testing.T) {
	m := testModel(t)
	m.scroll = 500

	seg, _ := m.editor.SegmentByID("seg_1")
	if _, _, ok := m.segmentCols(seg); ok {
		t.Error("expected segment outside view")
	}
}

func TestHitTest(t *testing.T) {
	m := testModel(t)

	tests := []struct {
		name string
		x, y int
		id   string
		mode application.DragMode
	}{
		{"left edge", timelineGutter + 0, trackTopRow, "seg_1", application.DragLeft},
		{"right edge", timelineGutter + 39, trackTopRow, "seg_1", application.DragRight},
		{"body", timelineGutter + 20, trackTopRow, "seg_1", application.DragMove},
		{"wrong track", timelineGutter + 20, trackTopRow + 1, "", application.DragNone},
		{"second track", timelineGutter + 150, trackTopRow + 1, "seg_2", application.DragMove},
		{"gap", timelineGutter + 60, trackTopRow, "", application.DragNone},
		{"gutter", 3, trackTopRow, "", application.DragNone},
		{"ruler", timelineGutter + 20, rulerRow, "", application.DragNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, mode := m.hitTest(tt.x, tt.y)
			if id != tt.id || mode != tt.mode {
				t.Errorf("hitTest(%d,%d) = (%q,%d), want (%q,%d)",
					tt.x, tt.y, id, mode, tt.id, tt.mode)
			}
		})
	}
}

func TestRulerStepGrowsWhenZoomedOut(t *testing.T) {
	m := testModel(t)

	m.zoom = 20
	fine := m.rulerStep()
	m.zoom = 1
	coarse := m.rulerStep()

	if fine >= coarse {
		t.Errorf("step at zoom 20 (%v) should be finer than at zoom 1 (%v)", fine, coarse)
	}
}

func TestClampScroll(t *testing.T) {
	m := testModel(t)

	m.scroll = -10
	m.clampScroll()
	if m.scroll != 0 {
		t.Errorf("scroll = %v, want 0", m.scroll)
	}

	m.scroll = 100000
	m.clampScroll()
	max := m.mapper().XAt(m.editor.Duration()) - float64(m.timelineWidth())
	if m.scroll != max {
		t.Errorf("scroll = %v, want %v", m.scroll, max)
	}
}

func TestContentXAppliesScroll(t *testing.T) {
	m := testModel(t)
	m.scroll = 25
	if got := m.contentX(10); got != 35 {
		t.Errorf("contentX(10) = %v, want 35", got)
	}
}
