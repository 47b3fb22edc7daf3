package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/devbush/cueline/internal/ports"
)

// System writes through the OS clipboard.
type System struct{}

// NewSystem creates the system clipboard adapter.
func NewSystem() *System {
	return &System{}
}

// WriteAll replaces the clipboard contents with text.
func (c *System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

var _ ports.Clipboard = (*System)(nil)
