package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap declares the editor key bindings. Help text doubles as the
// footer content.
type keyMap struct {
	Quit      key.Binding
	Save      key.Binding
	Undo      key.Binding
	Redo      key.Binding
	PlayPause key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	Left      key.Binding
	Right     key.Binding
	Tab       key.Binding
	Up        key.Binding
	Down      key.Binding

	AddSegment   key.Binding
	DeleteSeg    key.Binding
	SplitSeg     key.Binding
	CycleSpeaker key.Binding
	EditText     key.Binding
	EditStart    key.Binding
	EditEnd      key.Binding
	Copy         key.Binding

	Search  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Replace key.Binding

	Rename     key.Binding
	Recolor    key.Binding
	DeleteSpk  key.Binding
	MergeSpk   key.Binding
	MoveSpkUp  key.Binding
	MoveSpkDn  key.Binding
	NewSpeaker key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^s", "save")),
		Undo:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("^r", "redo")),
		PlayPause: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play")),
		ZoomIn:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/l", "pan")),
		Right:     key.NewBinding(key.WithKeys("right", "l")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "nav")),
		Down:      key.NewBinding(key.WithKeys("down", "j")),

		AddSegment:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		DeleteSeg:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		SplitSeg:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "split")),
		CycleSpeaker: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "speaker")),
		EditText:     key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("e", "edit")),
		EditStart:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "start time")),
		EditEnd:      key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "end time")),
		Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),

		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Next:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n/N", "match")),
		Prev:    key.NewBinding(key.WithKeys("N")),
		Replace: key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("^h", "replace")),

		Rename:     key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "rename")),
		Recolor:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color")),
		DeleteSpk:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete")),
		MergeSpk:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "merge up")),
		MoveSpkUp:  key.NewBinding(key.WithKeys("K"), key.WithHelp("K/J", "reorder")),
		MoveSpkDn:  key.NewBinding(key.WithKeys("J")),
		NewSpeaker: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "new speaker")),
	}
}
