package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/devbush/cueline/internal/application"
	"github.com/devbush/cueline/internal/domain"
)

const (
	// timelineGutter is the left label column before the track area.
	timelineGutter = 12

	// rulerRow and trackTopRow are the absolute screen rows of the
	// timeline parts; the header occupies row 0.
	rulerRow    = 1
	trackTopRow = 2
)

// timelineWidth returns the visible track area width in cells.
func (m Model) timelineWidth() int {
	w := m.width - timelineGutter
	if w < 1 {
		return 1
	}
	return w
}

func (m Model) mapper() application.Mapper {
	return application.Mapper{Zoom: m.zoom, Duration: m.editor.Duration()}
}

// segmentCols returns the inclusive viewport column span of a segment,
// or ok=false when it is fully outside the view.
func (m Model) segmentCols(seg domain.Segment) (int, int, bool) {
	mp := m.mapper()
	cs := int(math.Round(mp.XAt(seg.StartSeconds()) - m.scroll))
	ce := int(math.Round(mp.XAt(seg.EndSeconds())-m.scroll)) - 1
	if ce < cs {
		ce = cs
	}
	if ce < 0 || cs >= m.timelineWidth() {
		return 0, 0, false
	}
	return cs, ce, true
}

// hitTest resolves a mouse press inside the track area to a segment and
// drag mode. Coordinates are screen cells.
func (m Model) hitTest(x, y int) (string, application.DragMode) {
	track := y - trackTopRow
	speakers := m.editor.Speakers()
	if track < 0 || track >= len(speakers) || x < timelineGutter {
		return "", application.DragNone
	}

	col := x - timelineGutter
	speakerID := speakers[track].ID
	for _, seg := range m.editor.Segments() {
		if seg.SpeakerID != speakerID {
			continue
		}
		cs, ce, ok := m.segmentCols(seg)
		if !ok || col < cs || col > ce {
			continue
		}
		switch {
		case ce-cs < 2:
			return seg.ID, application.DragMove
		case col == cs:
			return seg.ID, application.DragLeft
		case col == ce:
			return seg.ID, application.DragRight
		default:
			return seg.ID, application.DragMove
		}
	}
	return "", application.DragNone
}

// contentX converts a viewport column to the content coordinate space
// (scroll applied) used by the drag controller.
func (m Model) contentX(viewportCol int) float64 {
	return float64(viewportCol) + m.scroll
}

// rulerStep picks a tick label spacing in seconds that keeps labels
// readable at the current zoom.
func (m Model) rulerStep() float64 {
	for _, step := range []float64{0.5, 1, 2, 5, 10, 15, 30, 60, 120, 300, 600} {
		if step*m.zoom >= 8 {
			return step
		}
	}
	return 600
}

func (m Model) renderRuler() string {
	w := m.timelineWidth()
	cells := make([]byte, w)
	for i := range cells {
		cells[i] = ' '
	}

	step := m.rulerStep()
	mp := m.mapper()
	first := math.Ceil(m.scroll/mp.Zoom/step) * step
	for t := first; ; t += step {
		col := int(math.Round(mp.XAt(t) - m.scroll))
		if col >= w {
			break
		}
		label := domain.FormatClock(t)
		if col+len(label) <= w {
			copy(cells[col:], label)
			// skip to avoid writing a label over this one
		} else if col >= 0 {
			cells[col] = '.'
		}
	}

	return strings.Repeat(" ", timelineGutter) + rulerStyle.Render(string(cells))
}

// renderTrackRow draws one speaker's lane with its segments, the
// playhead and any active snap guide.
func (m Model) renderTrackRow(sp domain.Speaker) string {
	w := m.timelineWidth()

	type cell struct {
		ch    rune
		seg   *domain.Segment
		style int // 0 plain, 1 segment, 2 playhead, 3 guide
	}
	cells := make([]cell, w)
	for i := range cells {
		cells[i] = cell{ch: ' '}
	}

	selected := m.editor.Selected()
	for i := range m.editor.Segments() {
		seg := &m.editor.Segments()[i]
		if seg.SpeakerID != sp.ID {
			continue
		}
		cs, ce, ok := m.segmentCols(*seg)
		if !ok {
			continue
		}
		label := " " + seg.Text
		for col := cs; col <= ce; col++ {
			if col < 0 || col >= w {
				continue
			}
			ch := ' '
			switch col {
			case cs:
				ch = '▕'
			case ce:
				ch = '▏'
			default:
				if li := col - cs - 1; li < len(label) {
					ch = rune(label[li])
				}
			}
			cells[col] = cell{ch: ch, seg: seg, style: 1}
		}
	}

	mp := m.mapper()
	if pc := int(math.Round(mp.XAt(m.playhead) - m.scroll)); pc >= 0 && pc < w {
		cells[pc].ch = '│'
		cells[pc].style = 2
	}
	if guide, ok := m.drag.Guide(); ok {
		if gc := int(math.Round(mp.XAt(guide) - m.scroll)); gc >= 0 && gc < w {
			cells[gc].ch = '┆'
			cells[gc].style = 3
		}
	}

	var sb strings.Builder
	name := sp.Name
	if len(name) > timelineGutter-2 {
		name = name[:timelineGutter-2]
	}
	sb.WriteString(trackLabelStyle.Render(fmt.Sprintf("%-*s", timelineGutter, name)))

	for _, c := range cells {
		s := string(c.ch)
		switch c.style {
		case 1:
			sb.WriteString(speakerStyle(sp.Color, c.seg.ID == selected).Render(s))
		case 2:
			sb.WriteString(playheadStyle.Render(s))
		case 3:
			sb.WriteString(guideStyle.Render(s))
		default:
			sb.WriteString(s)
		}
	}
	return sb.String()
}

func (m Model) renderTimeline() []string {
	rows := []string{m.renderRuler()}
	for _, sp := range m.editor.Speakers() {
		rows = append(rows, m.renderTrackRow(sp))
	}
	return rows
}

// clampScroll keeps the viewport inside the timeline content.
func (m *Model) clampScroll() {
	maxScroll := m.mapper().XAt(m.editor.Duration()) - float64(m.timelineWidth())
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// followPlayhead scrolls the view to keep the playhead visible. Runs
// only while playing and never during a drag, so playback follow and
// drag auto-scroll cannot fight.
func (m *Model) followPlayhead() {
	if m.drag.Active() {
		return
	}
	pc := m.mapper().XAt(m.playhead) - m.scroll
	w := float64(m.timelineWidth())
	if pc < 0 || pc > w-2 {
		m.scroll = m.mapper().XAt(m.playhead) - w/2
		m.clampScroll()
	}
}
