package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/devbush/cueline/internal/application"
	"github.com/devbush/cueline/internal/domain"
	"github.com/devbush/cueline/internal/ports"
)

// Options configures an editor session.
type Options struct {
	Project   domain.Project
	Path      string
	Snap      domain.SnapConfig
	Zoom      float64
	Projects  ports.ProjectStore
	Clipboard ports.Clipboard
	Log       zerolog.Logger
}

// panelFocus tracks which panel receives keyboard input.
type panelFocus int

const (
	focusTimeline panelFocus = iota
	focusTranscript
	focusSpeakers
)

// inputMode is the modal state of the editor's single-line prompt.
type inputMode int

const (
	modeNormal inputMode = iota
	modeEditText
	modeEditStart
	modeEditEnd
	modeRename
	modeNewSpeaker
	modeSearch
	modeReplace
	modeConfirmDelete
)

const speakerPanelWidth = 24

type playTickMsg struct{ gen int }
type scrollTickMsg struct{ gen int }

// Model is the root bubbletea model for the editor.
type Model struct {
	opts   Options
	editor *application.Editor
	drag   *application.Drag
	km     keyMap
	log    zerolog.Logger

	width  int
	height int

	zoom     float64
	scroll   float64
	playhead float64
	playing  bool

	playGen   int
	scrollGen int

	// viewport-relative pointer column, tracked for drag auto-scroll
	lastMouseX int

	focus      panelFocus
	cursor     int
	listScroll int
	spkCursor  int

	mode             inputMode
	input            textinput.Model
	confirmSpeakerID string
	matches          []application.Match
	matchIdx         int

	path   string
	dirty  bool
	status string
	isErr  bool
}

// New builds the editor model for a loaded project.
func New(opts Options) Model {
	editor := application.NewEditor()
	editor.Load(opts.Project)

	zoom := application.ClampZoom(opts.Zoom)
	if opts.Project.View.Zoom > 0 {
		zoom = application.ClampZoom(opts.Project.View.Zoom)
	}

	input := textinput.New()
	input.CharLimit = 512

	return Model{
		opts:   opts,
		editor: editor,
		drag:   application.NewDrag(editor, opts.Snap),
		km:     defaultKeyMap(),
		log:    opts.Log,
		zoom:   zoom,
		scroll: opts.Project.View.Scroll,
		path:   opts.Path,
		input:  input,
		status: "Ready",
	}
}

// Run starts the editor program over the terminal.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func playTickCmd(gen int) tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return playTickMsg{gen: gen}
	})
}

// scrollTickCmd is the self-rescheduling auto-scroll frame. The
// generation counter makes stale frames cancellable after drag end.
func scrollTickCmd(gen int) tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(time.Time) tea.Msg {
		return scrollTickMsg{gen: gen}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeNormal {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case playTickMsg:
		if msg.gen != m.playGen || !m.playing {
			return m, nil
		}
		m.playhead += 0.1
		if m.playhead >= m.editor.Duration() {
			m.playhead = m.editor.Duration()
			m.playing = false
			return m, nil
		}
		m.followPlayhead()
		return m, playTickCmd(m.playGen)

	case scrollTickMsg:
		if msg.gen != m.scrollGen || !m.drag.Active() {
			return m, nil
		}
		speed := application.AutoScrollSpeed(float64(m.lastMouseX), float64(m.timelineWidth()))
		if speed != 0 {
			m.scroll += speed * 0.05
			m.clampScroll()
			m.drag.Move(m.contentX(m.lastMouseX), m.zoom)
			m.dirty = true
		}
		return m, scrollTickCmd(m.scrollGen)
	}

	return m, nil
}

// handleMouse routes pointer events to seeking and the drag controller.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll -= 4
		m.clampScroll()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scroll += 4
		m.clampScroll()
		return m, nil
	}

	col := msg.X - timelineGutter

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.Y == rulerRow && col >= 0 {
			m.playhead = m.mapper().TimeAt(m.contentX(col))
			return m, nil
		}
		if id, mode := m.hitTest(msg.X, msg.Y); mode != application.DragNone {
			m.lastMouseX = col
			if m.drag.Begin(id, mode, m.contentX(col)) {
				m.focus = focusTimeline
				m.syncCursorToSelection()
				m.scrollGen++
				m.log.Debug().Str("segment", id).Int("mode", int(mode)).Msg("drag started")
				return m, scrollTickCmd(m.scrollGen)
			}
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.drag.Active() {
			m.lastMouseX = col
			m.drag.Move(m.contentX(col), m.zoom)
			m.dirty = true
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.drag.Active() {
			// pointer-up anywhere ends the gesture
			m.drag.End()
			m.scrollGen++
			m.log.Debug().Msg("drag ended")
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.km

	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit

	case key.Matches(msg, km.Save):
		m.save()
		return m, nil

	case key.Matches(msg, km.Undo):
		if m.editor.CanUndo() {
			m.editor.Undo()
			m.dirty = true
			m.setStatus("Undone")
		} else {
			m.setStatus("Nothing to undo")
		}
		return m, nil

	case key.Matches(msg, km.Redo):
		if m.editor.CanRedo() {
			m.editor.Redo()
			m.dirty = true
			m.setStatus("Redone")
		} else {
			m.setStatus("Nothing to redo")
		}
		return m, nil

	case key.Matches(msg, km.PlayPause):
		m.playing = !m.playing
		if m.playing {
			if m.playhead >= m.editor.Duration() {
				m.playhead = 0
			}
			m.playGen++
			return m, playTickCmd(m.playGen)
		}
		return m, nil

	case key.Matches(msg, km.ZoomIn):
		m.setZoom(m.zoom * 1.25)
		return m, nil

	case key.Matches(msg, km.ZoomOut):
		m.setZoom(m.zoom / 1.25)
		return m, nil

	case key.Matches(msg, km.Left):
		if m.focus == focusTimeline {
			m.scroll -= 4
			m.clampScroll()
		}
		return m, nil

	case key.Matches(msg, km.Right):
		if m.focus == focusTimeline {
			m.scroll += 4
			m.clampScroll()
		}
		return m, nil

	case key.Matches(msg, km.Tab):
		m.focus = (m.focus + 1) % 3
		return m, nil

	case key.Matches(msg, km.Search):
		m.openPrompt(modeSearch, "search: ", "")
		return m, nil

	case key.Matches(msg, km.Replace):
		m.openPrompt(modeReplace, "replace (old => new): ", "")
		return m, nil

	case key.Matches(msg, km.Next):
		m.gotoMatch(1)
		return m, nil

	case key.Matches(msg, km.Prev):
		m.gotoMatch(-1)
		return m, nil

	case key.Matches(msg, km.Copy):
		view := domain.View{Zoom: m.zoom, Scroll: m.scroll}
		if err := m.opts.Clipboard.WriteAll(m.editor.Snapshot(view).ToText()); err != nil {
			m.setError("Clipboard unavailable: " + err.Error())
		} else {
			m.setStatus("Transcript copied")
		}
		return m, nil
	}

	if m.focus == focusSpeakers {
		return m.handleSpeakerKey(msg)
	}
	return m.handleSegmentKey(msg)
}

// handleSegmentKey covers segment operations shared by the timeline and
// transcript panels.
func (m Model) handleSegmentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.km
	segments := m.editor.Segments()

	switch {
	case key.Matches(msg, km.Up):
		if m.focus == focusTranscript && m.cursor > 0 {
			m.cursor--
			m.selectCursor()
		}

	case key.Matches(msg, km.Down):
		if m.focus == focusTranscript && m.cursor < len(segments)-1 {
			m.cursor++
			m.selectCursor()
		}

	case key.Matches(msg, km.AddSegment):
		seg := m.editor.AddSegment(m.playhead, "")
		m.syncCursorToSelection()
		m.dirty = true
		m.log.Debug().Str("segment", seg.ID).Msg("segment added")
		m.setStatus("Segment added at " + seg.Start)

	case key.Matches(msg, km.DeleteSeg):
		if id := m.editor.Selected(); id != "" {
			m.editor.DeleteSegment(id)
			m.dirty = true
			m.setStatus("Segment deleted")
			if m.cursor >= len(m.editor.Segments()) {
				m.cursor = len(m.editor.Segments()) - 1
			}
		}

	case key.Matches(msg, km.SplitSeg):
		if id := m.editor.Selected(); id != "" {
			m.editor.SplitSegment(id)
			m.syncCursorToSelection()
			m.dirty = true
			m.setStatus("Segment split")
		}

	case key.Matches(msg, km.CycleSpeaker):
		m.cycleSpeaker()

	case key.Matches(msg, km.EditText):
		if seg, ok := m.selectedSegment(); ok {
			m.openPrompt(modeEditText, "text: ", seg.Text)
		}

	case key.Matches(msg, km.EditStart):
		if seg, ok := m.selectedSegment(); ok {
			m.openPrompt(modeEditStart, "start: ", seg.Start)
		}

	case key.Matches(msg, km.EditEnd):
		if seg, ok := m.selectedSegment(); ok {
			m.openPrompt(modeEditEnd, "end: ", seg.End)
		}
	}

	return m, nil
}

func (m Model) handleSpeakerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.km
	speakers := m.editor.Speakers()

	switch {
	case key.Matches(msg, km.Up):
		if m.spkCursor > 0 {
			m.spkCursor--
		}

	case key.Matches(msg, km.Down):
		if m.spkCursor < len(speakers)-1 {
			m.spkCursor++
		}

	case key.Matches(msg, km.Rename):
		if sp, ok := m.cursorSpeaker(); ok {
			m.openPrompt(modeRename, "name: ", sp.Name)
		}

	case key.Matches(msg, km.Recolor):
		if sp, ok := m.cursorSpeaker(); ok {
			next := nextPaletteColor(sp.Color)
			if err := m.editor.UpdateSpeaker(sp.ID, application.SpeakerPatch{Color: &next}); err == nil {
				m.dirty = true
			}
		}

	case key.Matches(msg, km.NewSpeaker):
		m.openPrompt(modeNewSpeaker, "new speaker: ", "")

	case key.Matches(msg, km.DeleteSpk):
		if sp, ok := m.cursorSpeaker(); ok {
			owned := m.ownedSegmentCount(sp.ID)
			m.confirmSpeakerID = sp.ID
			m.mode = modeConfirmDelete
			m.setStatus(fmt.Sprintf("Delete %s and its %d segment(s)? (y/n)", sp.Name, owned))
		}

	case key.Matches(msg, km.MergeSpk):
		if m.spkCursor > 0 && m.spkCursor < len(speakers) {
			from := speakers[m.spkCursor]
			to := speakers[m.spkCursor-1]
			if err := m.editor.MergeSpeakers(from.ID, to.ID); err != nil {
				m.setError(err.Error())
			} else {
				m.spkCursor--
				m.dirty = true
				m.log.Info().Str("from", from.ID).Str("to", to.ID).Msg("speakers merged")
				m.setStatus(fmt.Sprintf("Merged %s into %s", from.Name, to.Name))
			}
		}

	case key.Matches(msg, km.MoveSpkUp):
		if m.spkCursor > 0 {
			m.editor.ReorderSpeakers(m.spkCursor, m.spkCursor-1)
			m.spkCursor--
			m.dirty = true
		}

	case key.Matches(msg, km.MoveSpkDn):
		if m.spkCursor < len(speakers)-1 {
			m.editor.ReorderSpeakers(m.spkCursor, m.spkCursor+1)
			m.spkCursor++
			m.dirty = true
		}
	}

	return m, nil
}

// handlePromptKey drives the single-line modal input.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeConfirmDelete {
		switch msg.String() {
		case "y", "Y":
			if sp, ok := m.editor.SpeakerByID(m.confirmSpeakerID); ok {
				m.editor.DeleteSpeaker(sp.ID)
				m.dirty = true
				m.log.Info().Str("speaker", sp.ID).Msg("speaker deleted")
				m.setStatus("Speaker deleted")
				if m.spkCursor >= len(m.editor.Speakers()) {
					m.spkCursor = len(m.editor.Speakers()) - 1
				}
			}
		default:
			m.setStatus("Cancelled")
		}
		m.mode = modeNormal
		m.confirmSpeakerID = ""
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.closePrompt()
		m.setStatus("Cancelled")
		return m, nil
	case "enter":
		m.commitPrompt()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) openPrompt(mode inputMode, prompt, value string) {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) closePrompt() {
	m.mode = modeNormal
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) commitPrompt() {
	value := m.input.Value()
	mode := m.mode
	m.closePrompt()

	switch mode {
	case modeEditText:
		if id := m.editor.Selected(); id != "" {
			m.editor.UpdateSegment(id, application.SegmentPatch{Text: &value})
			m.dirty = true
			m.setStatus("Text updated")
		}

	case modeEditStart, modeEditEnd:
		m.commitTimeEdit(mode, value)

	case modeRename:
		if sp, ok := m.cursorSpeaker(); ok {
			if err := m.editor.UpdateSpeaker(sp.ID, application.SpeakerPatch{Name: &value}); err != nil {
				m.setError(err.Error())
			} else {
				m.dirty = true
				m.setStatus("Speaker renamed")
			}
		}

	case modeNewSpeaker:
		if _, err := m.editor.AddSpeaker(value); err != nil {
			m.setError(err.Error())
		} else {
			m.dirty = true
			m.setStatus("Speaker added")
		}

	case modeSearch:
		m.matches = application.FindMatches(m.editor.Segments(), value)
		m.matchIdx = -1
		if len(m.matches) == 0 {
			m.setStatus("No matches")
		} else {
			m.setStatus(fmt.Sprintf("%d match(es); n/N to cycle", len(m.matches)))
			m.gotoMatch(1)
		}

	case modeReplace:
		parts := strings.SplitN(value, "=>", 2)
		if len(parts) != 2 {
			m.setError("Use: old => new")
			return
		}
		old := strings.TrimSpace(parts[0])
		repl := strings.TrimSpace(parts[1])
		n := m.editor.ReplaceAllText(old, repl)
		if n > 0 {
			m.dirty = true
		}
		m.setStatus(fmt.Sprintf("Replaced %d occurrence(s)", n))
	}
}

// commitTimeEdit validates clock input on commit; the fail-soft codec
// would silently zero a typo, so malformed text is rejected here.
func (m *Model) commitTimeEdit(mode inputMode, value string) {
	if !validClock(value) {
		m.setError("Invalid time, use MM:SS or MM:SS.d")
		return
	}
	id := m.editor.Selected()
	seg, ok := m.editor.SegmentByID(id)
	if !ok {
		return
	}

	normalized := domain.FormatClock(domain.ParseClock(value))
	if mode == modeEditStart {
		if domain.ParseClock(normalized) > seg.EndSeconds()-domain.MinDuration {
			m.setError("Start too close to end")
			return
		}
		m.editor.UpdateSegment(id, application.SegmentPatch{Start: &normalized})
	} else {
		if domain.ParseClock(normalized) < seg.StartSeconds()+domain.MinDuration {
			m.setError("End too close to start")
			return
		}
		m.editor.UpdateSegment(id, application.SegmentPatch{End: &normalized})
	}
	m.dirty = true
	m.setStatus("Time updated")
}

// validClock is the strict display-layer check: both clock parts must
// parse as numbers, unlike the fail-soft ParseClock.
func validClock(text string) bool {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return false
	}
	if _, err := strconv.ParseFloat(parts[0], 64); err != nil {
		return false
	}
	if _, err := strconv.ParseFloat(parts[1], 64); err != nil {
		return false
	}
	return true
}

func (m *Model) save() {
	path := m.path
	if path == "" {
		path = "untitled.cueline.json"
		m.path = path
	}
	view := domain.View{Zoom: m.zoom, Scroll: m.scroll}
	project := m.editor.Snapshot(view)
	if err := m.opts.Projects.Save(path, &project); err != nil {
		m.setError("Save failed: " + err.Error())
		m.log.Error().Err(err).Str("path", path).Msg("save failed")
		return
	}
	m.dirty = false
	m.log.Info().Str("path", path).Msg("project saved")
	m.setStatus("Saved " + path)
}

func (m *Model) setZoom(zoom float64) {
	// keep the playhead's screen position stable across zoom changes
	anchor := m.mapper().XAt(m.playhead) - m.scroll
	m.zoom = application.ClampZoom(zoom)
	m.scroll = m.mapper().XAt(m.playhead) - anchor
	m.clampScroll()
}

func (m *Model) cycleSpeaker() {
	seg, ok := m.selectedSegment()
	if !ok {
		return
	}
	speakers := m.editor.Speakers()
	if len(speakers) == 0 {
		return
	}
	next := speakers[0].ID
	for i, sp := range speakers {
		if sp.ID == seg.SpeakerID {
			next = speakers[(i+1)%len(speakers)].ID
			break
		}
	}
	m.editor.UpdateSegment(seg.ID, application.SegmentPatch{SpeakerID: &next})
	m.dirty = true
}

func (m *Model) gotoMatch(dir int) {
	if len(m.matches) == 0 {
		return
	}
	m.matchIdx = (m.matchIdx + dir + len(m.matches)) % len(m.matches)
	match := m.matches[m.matchIdx]
	m.editor.Select(match.SegmentID)
	m.syncCursorToSelection()
	if seg, ok := m.editor.SegmentByID(match.SegmentID); ok {
		m.scrollTo(seg.StartSeconds())
	}
	m.setStatus(fmt.Sprintf("Match %d/%d", m.matchIdx+1, len(m.matches)))
}

// scrollTo centers the view on a time if it is offscreen.
func (m *Model) scrollTo(t float64) {
	x := m.mapper().XAt(t) - m.scroll
	w := float64(m.timelineWidth())
	if x < 0 || x > w-2 {
		m.scroll = m.mapper().XAt(t) - w/2
		m.clampScroll()
	}
}

func (m *Model) selectCursor() {
	segments := m.editor.Segments()
	if m.cursor >= 0 && m.cursor < len(segments) {
		m.editor.Select(segments[m.cursor].ID)
		m.scrollTo(segments[m.cursor].StartSeconds())
	}
}

func (m *Model) syncCursorToSelection() {
	for i, seg := range m.editor.Segments() {
		if seg.ID == m.editor.Selected() {
			m.cursor = i
			return
		}
	}
}

func (m Model) selectedSegment() (domain.Segment, bool) {
	return m.editor.SegmentByID(m.editor.Selected())
}

func (m Model) cursorSpeaker() (domain.Speaker, bool) {
	speakers := m.editor.Speakers()
	if m.spkCursor < 0 || m.spkCursor >= len(speakers) {
		return domain.Speaker{}, false
	}
	return speakers[m.spkCursor], true
}

func (m Model) ownedSegmentCount(speakerID string) int {
	n := 0
	for _, seg := range m.editor.Segments() {
		if seg.SpeakerID == speakerID {
			n++
		}
	}
	return n
}

func nextPaletteColor(current string) string {
	for i, c := range domain.Palette {
		if c == current {
			return domain.Palette[(i+1)%len(domain.Palette)]
		}
	}
	return domain.Palette[0]
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.isErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.isErr = true
}
