package cli

import "testing"

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		input    string
		suffix   string
		expected string
	}{
		{"talk.json", ".cueline.json", "talk.cueline.json"},
		{"dir/interview.txt", ".cueline.json", "dir/interview.cueline.json"},
		{"noext", ".cueline.json", "noext.cueline.json"},
		{"session.srt", ".json", "session.json"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := deriveOutputPath(tt.input, tt.suffix)
			if result != tt.expected {
				t.Errorf("deriveOutputPath(%q, %q) = %q, want %q",
					tt.input, tt.suffix, result, tt.expected)
			}
		})
	}
}

func TestTitleFromPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"talk.json", "talk"},
		{"/home/u/projects/standup.cueline.json", "standup.cueline"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := titleFromPath(tt.input); got != tt.expected {
				t.Errorf("titleFromPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
