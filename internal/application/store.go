package application

import (
	"github.com/devbush/cueline/internal/domain"
	"github.com/google/uuid"
)

// fallbackSpeakerID is assigned to segments added while the roster is empty.
const fallbackSpeakerID = "speaker_1"

// SegmentPatch is a partial segment update; nil fields are left untouched.
type SegmentPatch struct {
	SpeakerID *string
	Start     *string
	End       *string
	Text      *string
}

// SpeakerPatch is a partial speaker update; nil fields are left untouched.
type SpeakerPatch struct {
	Name  *string
	Color *string
}

// Editor is the owned state container for segments, speakers, selection
// and history. All mutation goes through its methods; every mutating
// operation records a history entry first (one per gesture while a
// gesture is open). Mutations addressing a missing id are no-ops.
type Editor struct {
	meta     domain.Meta
	segments []domain.Segment
	speakers []domain.Speaker
	selected string
	history  *History

	newID func() string
}

// NewEditor returns an empty editor with uuid-based id generation.
func NewEditor() *Editor {
	return &Editor{
		history: NewHistory(),
		newID:   uuid.NewString,
	}
}

// Load replaces the full entity set from a project snapshot. Callers
// supply already-ordered segments; history is reset.
func (e *Editor) Load(p domain.Project) {
	e.meta = p.Meta
	e.segments = append([]domain.Segment(nil), p.Segments...)
	e.speakers = append([]domain.Speaker(nil), p.Speakers...)
	e.selected = ""
	e.history.Reset()
}

// Snapshot assembles the current state into a serializable project.
func (e *Editor) Snapshot(view domain.View) domain.Project {
	return domain.Project{
		Meta:     e.meta,
		View:     view,
		Speakers: append([]domain.Speaker(nil), e.speakers...),
		Segments: append([]domain.Segment(nil), e.segments...),
	}
}

// Meta returns the project metadata.
func (e *Editor) Meta() domain.Meta { return e.meta }

// SetTitle updates the project title. Not history-tracked: metadata sits
// outside the undoable entity set.
func (e *Editor) SetTitle(title string) { e.meta.Title = title }

// Duration returns the project duration, stretched to cover the last
// segment when segments run past the declared media length.
func (e *Editor) Duration() float64 {
	d := e.meta.Duration
	for _, seg := range e.segments {
		if end := seg.EndSeconds(); end > d {
			d = end
		}
	}
	return d
}

// Segments returns the segment sequence. Callers must treat it as
// read-only; all mutation goes through editor methods.
func (e *Editor) Segments() []domain.Segment { return e.segments }

// Speakers returns the roster. Read-only for callers.
func (e *Editor) Speakers() []domain.Speaker { return e.speakers }

// SegmentByID looks up a segment.
func (e *Editor) SegmentByID(id string) (domain.Segment, bool) {
	for _, seg := range e.segments {
		if seg.ID == id {
			return seg, true
		}
	}
	return domain.Segment{}, false
}

// SpeakerByID looks up a speaker.
func (e *Editor) SpeakerByID(id string) (domain.Speaker, bool) {
	for _, sp := range e.speakers {
		if sp.ID == id {
			return sp, true
		}
	}
	return domain.Speaker{}, false
}

// Selected returns the selected segment id, or "".
func (e *Editor) Selected() string { return e.selected }

// Select sets the selected segment id.
func (e *Editor) Select(id string) { e.selected = id }

// EdgeTimes returns the snap targets from every segment except the
// excluded one.
func (e *Editor) EdgeTimes(excludeID string) []float64 {
	return domain.SegmentEdgeTimes(e.segments, excludeID)
}

// record captures the pre-mutation state.
func (e *Editor) record() {
	e.history.Record(e.segments, e.speakers)
}

// BeginGesture opens a history coalescing window for a drag gesture.
func (e *Editor) BeginGesture() { e.history.BeginGesture() }

// EndGesture closes the drag coalescing window.
func (e *Editor) EndGesture() { e.history.EndGesture() }

// CanUndo reports whether undo is available.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether redo is available.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// Undo restores the previous snapshot. No-op on an empty stack.
func (e *Editor) Undo() {
	snap, ok := e.history.Undo(e.segments, e.speakers)
	if !ok {
		return
	}
	e.apply(snap)
}

// Redo restores the next snapshot. No-op on an empty stack.
func (e *Editor) Redo() {
	snap, ok := e.history.Redo(e.segments, e.speakers)
	if !ok {
		return
	}
	e.apply(snap)
}

func (e *Editor) apply(snap snapshot) {
	e.segments = snap.segments
	e.speakers = snap.speakers
	if e.selected != "" {
		if _, ok := e.SegmentByID(e.selected); !ok {
			e.selected = ""
		}
	}
}

// AddSegment creates a segment of default duration at anchorTime,
// insertion-sorted into ascending start order, and selects it. An empty
// speakerID falls back to the first roster speaker.
func (e *Editor) AddSegment(anchorTime float64, speakerID string) domain.Segment {
	if anchorTime < 0 {
		anchorTime = 0
	}
	if speakerID == "" {
		if len(e.speakers) > 0 {
			speakerID = e.speakers[0].ID
		} else {
			speakerID = fallbackSpeakerID
		}
	}

	e.record()
	seg := domain.Segment{
		ID:        e.newID(),
		SpeakerID: speakerID,
		Start:     domain.FormatClock(anchorTime),
		End:       domain.FormatClock(anchorTime + domain.DefaultDuration),
	}
	e.insertSegment(seg)
	e.selected = seg.ID
	return seg
}

// insertSegment appends and re-sorts without touching history.
func (e *Editor) insertSegment(seg domain.Segment) {
	e.segments = append(e.segments, seg)
	domain.SortSegmentsByStart(e.segments)
}

// UpdateSegment shallow-merges the patch into the matching segment.
// The sequence is not re-sorted and bounds are not re-validated here;
// drag callers validate minimum duration before committing a move.
func (e *Editor) UpdateSegment(id string, patch SegmentPatch) {
	idx := e.segmentIndex(id)
	if idx < 0 {
		return
	}

	e.record()
	seg := &e.segments[idx]
	if patch.SpeakerID != nil {
		seg.SpeakerID = *patch.SpeakerID
	}
	if patch.Start != nil {
		seg.Start = *patch.Start
	}
	if patch.End != nil {
		seg.End = *patch.End
	}
	if patch.Text != nil {
		seg.Text = *patch.Text
	}
}

// DeleteSegment removes a segment, clearing selection if it was selected.
func (e *Editor) DeleteSegment(id string) {
	idx := e.segmentIndex(id)
	if idx < 0 {
		return
	}

	e.record()
	e.segments = append(e.segments[:idx], e.segments[idx+1:]...)
	if e.selected == id {
		e.selected = ""
	}
}

// SplitSegment shrinks the segment to its midpoint and inserts a
// default-length continuation for the same speaker, as one history
// entry so a single undo reverses the whole split.
func (e *Editor) SplitSegment(id string) {
	idx := e.segmentIndex(id)
	if idx < 0 {
		return
	}

	e.record()
	seg := &e.segments[idx]
	mid := (seg.StartSeconds() + seg.EndSeconds()) / 2
	seg.End = domain.FormatClock(mid)

	next := domain.Segment{
		ID:        e.newID(),
		SpeakerID: seg.SpeakerID,
		Start:     domain.FormatClock(mid),
		End:       domain.FormatClock(mid + domain.DefaultDuration),
	}
	e.insertSegment(next)
	e.selected = next.ID
}

// AddSpeaker appends a named speaker with the next palette color.
func (e *Editor) AddSpeaker(name string) (domain.Speaker, error) {
	if name == "" {
		return domain.Speaker{}, domain.ErrEmptyName
	}

	e.record()
	sp := domain.Speaker{
		ID:    e.newID(),
		Name:  name,
		Color: domain.PaletteColor(len(e.speakers)),
	}
	e.speakers = append(e.speakers, sp)
	return sp, nil
}

// UpdateSpeaker shallow-merges the patch. Renames to an empty name are
// rejected rather than persisted.
func (e *Editor) UpdateSpeaker(id string, patch SpeakerPatch) error {
	idx := e.speakerIndex(id)
	if idx < 0 {
		return nil
	}
	if patch.Name != nil && *patch.Name == "" {
		return domain.ErrEmptyName
	}

	e.record()
	sp := &e.speakers[idx]
	if patch.Name != nil {
		sp.Name = *patch.Name
	}
	if patch.Color != nil {
		sp.Color = *patch.Color
	}
	return nil
}

// DeleteSpeaker removes a speaker and cascades to every owned segment.
// The caller is responsible for confirming this destructive operation.
func (e *Editor) DeleteSpeaker(id string) {
	idx := e.speakerIndex(id)
	if idx < 0 {
		return
	}

	e.record()
	e.speakers = append(e.speakers[:idx], e.speakers[idx+1:]...)

	kept := e.segments[:0]
	for _, seg := range e.segments {
		if seg.SpeakerID != id {
			kept = append(kept, seg)
		} else if e.selected == seg.ID {
			e.selected = ""
		}
	}
	e.segments = kept
}

// MergeSpeakers reassigns every segment of fromID to toID and removes
// fromID from the roster. Merging a speaker into itself is a no-op; a
// missing source or target is rejected so no dangling reference can be
// produced.
func (e *Editor) MergeSpeakers(fromID, toID string) error {
	if fromID == toID {
		return nil
	}
	fromIdx := e.speakerIndex(fromID)
	if fromIdx < 0 || e.speakerIndex(toID) < 0 {
		return domain.ErrSpeakerNotFound
	}

	e.record()
	for i := range e.segments {
		if e.segments[i].SpeakerID == fromID {
			e.segments[i].SpeakerID = toID
		}
	}
	e.speakers = append(e.speakers[:fromIdx], e.speakers[fromIdx+1:]...)
	return nil
}

// ReorderSpeakers splices the roster entry at fromIndex to toIndex.
// Purely cosmetic track ordering; out-of-range indexes are no-ops.
func (e *Editor) ReorderSpeakers(fromIndex, toIndex int) {
	n := len(e.speakers)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n || fromIndex == toIndex {
		return
	}

	e.record()
	sp := e.speakers[fromIndex]
	e.speakers = append(e.speakers[:fromIndex], e.speakers[fromIndex+1:]...)
	e.speakers = append(e.speakers[:toIndex], append([]domain.Speaker{sp}, e.speakers[toIndex:]...)...)
}

// ReplaceAllText replaces every literal occurrence of query in segment
// text, as a single history entry. Returns the replacement count.
func (e *Editor) ReplaceAllText(query, replacement string) int {
	if query == "" {
		return 0
	}

	total := 0
	for _, seg := range e.segments {
		total += countOccurrences(seg.Text, query)
	}
	if total == 0 {
		return 0
	}

	e.record()
	for i := range e.segments {
		e.segments[i].Text = replaceAll(e.segments[i].Text, query, replacement)
	}
	return total
}

func (e *Editor) segmentIndex(id string) int {
	for i, seg := range e.segments {
		if seg.ID == id {
			return i
		}
	}
	return -1
}

func (e *Editor) speakerIndex(id string) int {
	for i, sp := range e.speakers {
		if sp.ID == id {
			return i
		}
	}
	return -1
}
