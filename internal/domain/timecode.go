package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseClock converts a "MM:SS" or "MM:SS.d" clock string to seconds.
// Malformed input degrades to 0 rather than erroring so a transiently
// invalid text field never breaks playback or seeking.
func ParseClock(text string) float64 {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return 0
	}

	minutes, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0
	}
	seconds, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0
	}

	return minutes*60 + seconds
}

// FormatClock converts seconds to a "MM:SS" or "MM:SS.d" clock string.
// The seconds remainder is rounded (not truncated) to one decimal place;
// an integer remainder drops the decimal. Minutes may exceed 59.
func FormatClock(seconds float64) string {
	minutes := int(seconds / 60)
	rem := seconds - float64(minutes)*60

	tenths := math.Round(rem * 10)
	if math.Mod(tenths, 10) == 0 {
		return fmt.Sprintf("%02d:%02d", minutes, int(tenths/10))
	}
	return fmt.Sprintf("%02d:%04.1f", minutes, tenths/10)
}
