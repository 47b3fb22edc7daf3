package application

import "github.com/devbush/cueline/internal/domain"

// snapshot is a fully denormalized copy of the mutable editor state,
// captured immediately before a mutation.
type snapshot struct {
	segments []domain.Segment
	speakers []domain.Speaker
}

func makeSnapshot(segments []domain.Segment, speakers []domain.Speaker) snapshot {
	return snapshot{
		segments: append([]domain.Segment(nil), segments...),
		speakers: append([]domain.Speaker(nil), speakers...),
	}
}

// History holds the undo/redo stacks. Any recorded mutation clears the
// redo stack. While a gesture is open, only the first record of the
// gesture is kept, so a full drag collapses into one undo step.
type History struct {
	past   []snapshot
	future []snapshot

	inGesture bool
	recorded  bool
}

// NewHistory returns an empty history; undo and redo start unavailable.
func NewHistory() *History {
	return &History{}
}

// Record pushes the pre-mutation state onto the undo stack and clears
// the redo stack. Inside a gesture, repeat records are coalesced away.
func (h *History) Record(segments []domain.Segment, speakers []domain.Speaker) {
	if h.inGesture {
		if h.recorded {
			return
		}
		h.recorded = true
	}
	h.past = append(h.past, makeSnapshot(segments, speakers))
	h.future = nil
}

// BeginGesture opens a coalescing window: every mutation until EndGesture
// shares a single history entry.
func (h *History) BeginGesture() {
	h.inGesture = true
	h.recorded = false
}

// EndGesture closes the coalescing window.
func (h *History) EndGesture() {
	h.inGesture = false
	h.recorded = false
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Undo pops the newest past snapshot, pushing the given current state
// onto the redo stack. Returns ok=false on an empty stack.
func (h *History) Undo(segments []domain.Segment, speakers []domain.Speaker) (snapshot, bool) {
	if len(h.past) == 0 {
		return snapshot{}, false
	}
	prev := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, makeSnapshot(segments, speakers))
	return prev, true
}

// Redo pops the newest future snapshot, pushing the given current state
// back onto the undo stack. Returns ok=false on an empty stack.
func (h *History) Redo(segments []domain.Segment, speakers []domain.Speaker) (snapshot, bool) {
	if len(h.future) == 0 {
		return snapshot{}, false
	}
	next := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, makeSnapshot(segments, speakers))
	return next, true
}

// Reset drops both stacks, used on bulk project load.
func (h *History) Reset() {
	h.past = nil
	h.future = nil
	h.inGesture = false
	h.recorded = false
}
