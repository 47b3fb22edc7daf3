package application

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/devbush/cueline/internal/domain"
)

// testEditor returns an editor with deterministic ids and a small roster.
func testEditor(t *testing.T) *Editor {
	t.Helper()

	e := NewEditor()
	n := 0
	e.newID = func() string {
		n++
		return fmt.Sprintf("id_%d", n)
	}
	e.Load(domain.Project{
		Meta: domain.Meta{Title: "Test", Duration: 60},
		Speakers: []domain.Speaker{
			{ID: "sp_a", Name: "Alice", Color: "3B82F6"},
			{ID: "sp_b", Name: "Bob", Color: "EF4444"},
		},
		Segments: []domain.Segment{
			{ID: "seg_1", SpeakerID: "sp_a", Start: "00:00", End: "00:05", Text: "one"},
			{ID: "seg_2", SpeakerID: "sp_b", Start: "00:10", End: "00:15", Text: "two"},
			{ID: "seg_3", SpeakerID: "sp_a", Start: "00:20", End: "00:25", Text: "three"},
		},
	})
	return e
}

func segmentIDs(e *Editor) []string {
	var ids []string
	for _, seg := range e.Segments() {
		ids = append(ids, seg.ID)
	}
	return ids
}

func TestAddSegmentInsertSorted(t *testing.T) {
	e := testEditor(t)

	seg := e.AddSegment(7, "")
	if seg.Start != "00:07" || seg.End != "00:10" {
		t.Errorf("new segment bounds = %s..%s, want 00:07..00:10", seg.Start, seg.End)
	}
	if seg.SpeakerID != "sp_a" {
		t.Errorf("default speaker = %q, want first roster speaker", seg.SpeakerID)
	}

	want := []string{"seg_1", seg.ID, "seg_2", "seg_3"}
	if got := segmentIDs(e); !reflect.DeepEqual(got, want) {
		t.Errorf("segment order = %v, want %v", got, want)
	}
	if e.Selected() != seg.ID {
		t.Errorf("selected = %q, want new segment", e.Selected())
	}
}

func TestAddSegmentEmptyRosterFallback(t *testing.T) {
	e := NewEditor()
	seg := e.AddSegment(0, "")
	if seg.SpeakerID != fallbackSpeakerID {
		t.Errorf("speaker = %q, want %q", seg.SpeakerID, fallbackSpeakerID)
	}
}

func TestUpdateSegmentPartialMerge(t *testing.T) {
	e := testEditor(t)

	text := "edited"
	end := "00:06"
	e.UpdateSegment("seg_1", SegmentPatch{Text: &text, End: &end})

	seg, _ := e.SegmentByID("seg_1")
	if seg.Text != "edited" || seg.End != "00:06" || seg.Start != "00:00" || seg.SpeakerID != "sp_a" {
		t.Errorf("patched segment = %+v", seg)
	}
}

func TestUpdateSegmentMissingIDIsNoOp(t *testing.T) {
	e := testEditor(t)

	text := "x"
	e.UpdateSegment("nope", SegmentPatch{Text: &text})

	if e.CanUndo() {
		t.Error("no-op mutation recorded a history entry")
	}
}

func TestDeleteSegmentClearsSelection(t *testing.T) {
	e := testEditor(t)
	e.Select("seg_2")

	e.DeleteSegment("seg_2")

	if _, ok := e.SegmentByID("seg_2"); ok {
		t.Error("segment still present after delete")
	}
	if e.Selected() != "" {
		t.Errorf("selection = %q, want cleared", e.Selected())
	}
}

func TestSplitSegmentIsOneUndoStep(t *testing.T) {
	e := testEditor(t)
	before := append([]domain.Segment(nil), e.Segments()...)

	e.SplitSegment("seg_1")

	seg, _ := e.SegmentByID("seg_1")
	if seg.End != "00:02.5" {
		t.Errorf("split end = %q, want 00:02.5", seg.End)
	}
	if len(e.Segments()) != 4 {
		t.Fatalf("got %d segments after split, want 4", len(e.Segments()))
	}

	e.Undo()
	if !reflect.DeepEqual(e.Segments(), before) {
		t.Errorf("single undo did not reverse split:\n got %+v\nwant %+v", e.Segments(), before)
	}
}

func TestDeleteSpeakerCascades(t *testing.T) {
	e := testEditor(t)

	e.DeleteSpeaker("sp_a")

	if _, ok := e.SpeakerByID("sp_a"); ok {
		t.Error("speaker still in roster")
	}
	for _, seg := range e.Segments() {
		if seg.SpeakerID == "sp_a" {
			t.Errorf("segment %s survived cascade", seg.ID)
		}
	}
	if len(e.Segments()) != 1 {
		t.Errorf("got %d segments, want 1", len(e.Segments()))
	}
}

func TestMergeSpeakers(t *testing.T) {
	e := testEditor(t)

	if err := e.MergeSpeakers("sp_a", "sp_b"); err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	if _, ok := e.SpeakerByID("sp_a"); ok {
		t.Error("source speaker still in roster")
	}
	for _, seg := range e.Segments() {
		if seg.SpeakerID == "sp_a" {
			t.Errorf("segment %s still references merged speaker", seg.ID)
		}
		if seg.SpeakerID != "sp_b" {
			t.Errorf("segment %s has speaker %q", seg.ID, seg.SpeakerID)
		}
	}
}

func TestMergeSpeakersInvalidTarget(t *testing.T) {
	e := testEditor(t)

	if err := e.MergeSpeakers("sp_a", "ghost"); err != domain.ErrSpeakerNotFound {
		t.Errorf("merge into missing target: err = %v, want ErrSpeakerNotFound", err)
	}
	if _, ok := e.SpeakerByID("sp_a"); !ok {
		t.Error("rejected merge removed the source speaker")
	}
	if e.CanUndo() {
		t.Error("rejected merge recorded history")
	}
}

func TestMergeSpeakersSelfIsNoOp(t *testing.T) {
	e := testEditor(t)

	if err := e.MergeSpeakers("sp_a", "sp_a"); err != nil {
		t.Errorf("self merge: err = %v", err)
	}
	if e.CanUndo() {
		t.Error("self merge recorded history")
	}
}

func TestUpdateSpeakerEmptyNameRejected(t *testing.T) {
	e := testEditor(t)

	empty := ""
	if err := e.UpdateSpeaker("sp_a", SpeakerPatch{Name: &empty}); err != domain.ErrEmptyName {
		t.Errorf("err = %v, want ErrEmptyName", err)
	}
	sp, _ := e.SpeakerByID("sp_a")
	if sp.Name != "Alice" {
		t.Errorf("name = %q after rejected rename", sp.Name)
	}
}

func TestReorderSpeakers(t *testing.T) {
	e := testEditor(t)

	e.ReorderSpeakers(1, 0)
	if e.Speakers()[0].ID != "sp_b" || e.Speakers()[1].ID != "sp_a" {
		t.Errorf("roster after reorder = %+v", e.Speakers())
	}

	// Out of range: no-op, no history entry beyond the first.
	before := append([]domain.Speaker(nil), e.Speakers()...)
	e.ReorderSpeakers(0, 5)
	if !reflect.DeepEqual(e.Speakers(), before) {
		t.Error("out-of-range reorder changed roster")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	e := testEditor(t)
	before := e.Snapshot(domain.View{})

	text := "changed"
	e.UpdateSegment("seg_1", SegmentPatch{Text: &text})
	after := e.Snapshot(domain.View{})

	e.Undo()
	if got := e.Snapshot(domain.View{}); !reflect.DeepEqual(got.Segments, before.Segments) ||
		!reflect.DeepEqual(got.Speakers, before.Speakers) {
		t.Errorf("undo state = %+v, want pre-mutation state", got.Segments)
	}

	e.Redo()
	if got := e.Snapshot(domain.View{}); !reflect.DeepEqual(got.Segments, after.Segments) {
		t.Errorf("redo state = %+v, want post-mutation state", got.Segments)
	}
}

func TestUndoEmptyStackIsNoOp(t *testing.T) {
	e := testEditor(t)
	before := append([]domain.Segment(nil), e.Segments()...)

	e.Undo()
	e.Redo()

	if !reflect.DeepEqual(e.Segments(), before) {
		t.Error("undo/redo on empty stacks changed state")
	}
}

func TestMutationAfterUndoClearsRedo(t *testing.T) {
	e := testEditor(t)

	text := "first"
	e.UpdateSegment("seg_1", SegmentPatch{Text: &text})
	e.Undo()
	if !e.CanRedo() {
		t.Fatal("redo unavailable after undo")
	}

	other := "second"
	e.UpdateSegment("seg_2", SegmentPatch{Text: &other})
	if e.CanRedo() {
		t.Error("redo still available after superseding mutation")
	}
}

func TestGestureCoalescesHistory(t *testing.T) {
	e := testEditor(t)
	before := append([]domain.Segment(nil), e.Segments()...)

	e.BeginGesture()
	for _, end := range []string{"00:06", "00:07", "00:08"} {
		v := end
		e.UpdateSegment("seg_1", SegmentPatch{End: &v})
	}
	e.EndGesture()

	seg, _ := e.SegmentByID("seg_1")
	if seg.End != "00:08" {
		t.Errorf("end after gesture = %q", seg.End)
	}

	e.Undo()
	if !reflect.DeepEqual(e.Segments(), before) {
		t.Error("one undo did not reverse the whole gesture")
	}
	if e.CanUndo() {
		t.Error("gesture produced more than one history entry")
	}
}

func TestReplaceAllText(t *testing.T) {
	e := testEditor(t)

	n := e.ReplaceAllText("o", "0")
	if n != 2 { // "one" and "two" each contain one o
		t.Errorf("replacement count = %d, want 2", n)
	}
	seg, _ := e.SegmentByID("seg_1")
	if seg.Text != "0ne" {
		t.Errorf("text = %q", seg.Text)
	}

	e.Undo()
	seg, _ = e.SegmentByID("seg_1")
	if seg.Text != "one" {
		t.Errorf("undo did not restore text: %q", seg.Text)
	}
}

func TestReplaceAllTextNoMatches(t *testing.T) {
	e := testEditor(t)

	if n := e.ReplaceAllText("zzz", "x"); n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
	if e.CanUndo() {
		t.Error("no-match replace recorded history")
	}
}

func TestDurationStretchesToLastSegment(t *testing.T) {
	e := testEditor(t)
	if e.Duration() != 60 {
		t.Errorf("duration = %v, want declared 60", e.Duration())
	}

	end := "02:00"
	e.UpdateSegment("seg_3", SegmentPatch{End: &end})
	if e.Duration() != 120 {
		t.Errorf("duration = %v, want stretched 120", e.Duration())
	}
}
