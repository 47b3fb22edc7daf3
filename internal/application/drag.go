package application

import "github.com/devbush/cueline/internal/domain"

// DragMode identifies which part of a segment a drag gesture grabbed.
type DragMode int

const (
	DragNone DragMode = iota
	DragLeft          // resize by the left edge
	DragRight         // resize by the right edge
	DragMove          // move the whole segment, duration preserved
)

// Auto-scroll tuning: pointer inside the margin near either viewport
// edge scrolls the view, faster the deeper the pointer sits in the zone.
const (
	AutoScrollMargin   = 4.0  // cells
	autoScrollMaxSpeed = 80.0 // cells per second
)

// AutoScrollSpeed returns the scroll velocity in cells per second for a
// viewport-relative pointer position. Zero outside the edge zones;
// negative scrolls left.
func AutoScrollSpeed(pointerX, viewportWidth float64) float64 {
	if viewportWidth <= 2*AutoScrollMargin {
		return 0
	}
	if pointerX < AutoScrollMargin {
		depth := (AutoScrollMargin - pointerX) / AutoScrollMargin
		if depth > 1 {
			depth = 1
		}
		return -depth * autoScrollMaxSpeed
	}
	if pointerX > viewportWidth-AutoScrollMargin {
		depth := (pointerX - (viewportWidth - AutoScrollMargin)) / AutoScrollMargin
		if depth > 1 {
			depth = 1
		}
		return depth * autoScrollMaxSpeed
	}
	return 0
}

// Drag translates pointer positions into validated, snapped segment
// mutations. It is a two-state machine: idle, or dragging one segment
// in one mode. While a drag is active every store update shares a
// single history entry, so one gesture is one undo step.
type Drag struct {
	editor *Editor
	snap   domain.SnapConfig

	mode      DragMode
	segmentID string

	initialX     float64 // content-space pointer position at press
	initialStart float64
	initialEnd   float64

	guide    float64
	hasGuide bool
}

// NewDrag creates an idle drag controller over the editor.
func NewDrag(editor *Editor, snap domain.SnapConfig) *Drag {
	return &Drag{editor: editor, snap: snap}
}

// SetSnapConfig swaps the active snap policy.
func (d *Drag) SetSnapConfig(cfg domain.SnapConfig) { d.snap = cfg }

// SnapConfig returns the active snap policy.
func (d *Drag) SnapConfig() domain.SnapConfig { return d.snap }

// Active reports whether a drag gesture is in progress.
func (d *Drag) Active() bool { return d.mode != DragNone }

// Mode returns the active drag mode.
func (d *Drag) Mode() DragMode { return d.mode }

// SegmentID returns the id of the segment being dragged.
func (d *Drag) SegmentID() string { return d.segmentID }

// Guide returns the time at which a snap guide should render, if an
// edge snap occurred on the latest move.
func (d *Drag) Guide() (float64, bool) { return d.guide, d.hasGuide }

// Begin starts a gesture on the segment with the pointer at the given
// content-space position. Returns false if the segment does not exist.
func (d *Drag) Begin(segmentID string, mode DragMode, pointerX float64) bool {
	seg, ok := d.editor.SegmentByID(segmentID)
	if !ok || mode == DragNone {
		return false
	}

	d.mode = mode
	d.segmentID = segmentID
	d.initialX = pointerX
	d.initialStart = seg.StartSeconds()
	d.initialEnd = seg.EndSeconds()
	d.hasGuide = false
	d.editor.Select(segmentID)
	d.editor.BeginGesture()
	return true
}

// Move handles a pointer move at the given content-space position and
// zoom. Moves that would violate the minimum duration are dropped
// silently; the gesture stays active.
func (d *Drag) Move(pointerX, zoom float64) {
	if d.mode == DragNone || zoom <= 0 {
		return
	}

	deltaTime := (pointerX - d.initialX) / zoom
	targets := d.editor.EdgeTimes(d.segmentID)
	d.hasGuide = false

	switch d.mode {
	case DragLeft:
		candidate := d.initialStart + deltaTime
		if candidate < 0 {
			candidate = 0
		}
		res := domain.SnapTime(candidate, targets, d.snap)
		if res.Snapped {
			d.setGuide(res.Time)
		}
		if res.Time >= d.initialEnd-domain.MinDuration {
			return // too short, ignore this tick
		}
		start := domain.FormatClock(res.Time)
		d.editor.UpdateSegment(d.segmentID, SegmentPatch{Start: &start})

	case DragRight:
		candidate := d.initialEnd + deltaTime
		if floor := d.initialStart + domain.MinDuration; candidate < floor {
			candidate = floor
		}
		res := domain.SnapTime(candidate, targets, d.snap)
		if res.Snapped {
			d.setGuide(res.Time)
		}
		end := domain.FormatClock(res.Time)
		d.editor.UpdateSegment(d.segmentID, SegmentPatch{End: &end})

	case DragMove:
		duration := d.initialEnd - d.initialStart
		candStart := d.initialStart + deltaTime
		if candStart < 0 {
			candStart = 0
		}
		candEnd := candStart + duration

		// Each bound tries to edge-snap independently; whichever lands
		// wins and the other bound is derived to keep duration fixed.
		newStart, newEnd := candStart, candEnd
		startSnap := domain.SnapToEdge(candStart, targets, d.snap.EdgeThreshold, d.snap.EdgeEnabled)
		endSnap := domain.SnapToEdge(candEnd, targets, d.snap.EdgeThreshold, d.snap.EdgeEnabled)
		switch {
		case startSnap.Snapped:
			newStart = startSnap.Time
			newEnd = newStart + duration
			d.setGuide(newStart)
		case endSnap.Snapped:
			newEnd = endSnap.Time
			newStart = newEnd - duration
			d.setGuide(newEnd)
		default:
			newStart = domain.SnapToGrid(candStart, d.snap.GridInterval, d.snap.GridEnabled)
			newEnd = newStart + duration
		}
		if newStart < 0 {
			newStart = 0
			newEnd = duration
		}

		start := domain.FormatClock(newStart)
		end := domain.FormatClock(newEnd)
		d.editor.UpdateSegment(d.segmentID, SegmentPatch{Start: &start, End: &end})
	}
}

// End finishes the gesture, committing its single history entry and
// clearing the snap guide.
func (d *Drag) End() {
	if d.mode == DragNone {
		return
	}
	d.editor.EndGesture()
	d.mode = DragNone
	d.segmentID = ""
	d.hasGuide = false
}

func (d *Drag) setGuide(t float64) {
	d.guide = t
	d.hasGuide = true
}
