package domain

import "errors"

var (
	// Entity lookup errors
	ErrSegmentNotFound = errors.New("segment not found")
	ErrSpeakerNotFound = errors.New("speaker not found")

	// Validation errors
	ErrEmptyName = errors.New("speaker name cannot be empty")

	// Export errors
	ErrUnknownFormat = errors.New("unknown export format")

	// Project errors
	ErrProjectNotFound = errors.New("project file not found")
)
