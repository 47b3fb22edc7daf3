package cli

import (
	"path/filepath"
	"strings"
)

// deriveOutputPath swaps an input path's extension for a new suffix.
// "talk.json" + ".cueline.json" -> "talk.cueline.json"
func deriveOutputPath(input, suffix string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
}

// titleFromPath derives a project title from a file name.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
