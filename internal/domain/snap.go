package domain

import "math"

// SnapConfig holds the snapping policies applied to drag candidates.
type SnapConfig struct {
	GridEnabled   bool
	GridInterval  float64
	EdgeEnabled   bool
	EdgeThreshold float64
}

// DefaultSnapConfig returns the snapping defaults: 0.5s grid, 0.2s edge pull.
func DefaultSnapConfig() SnapConfig {
	return SnapConfig{
		GridEnabled:   true,
		GridInterval:  0.5,
		EdgeEnabled:   true,
		EdgeThreshold: 0.2,
	}
}

// SnapResult is the outcome of a snap attempt. Snapped is true only for
// edge snaps; grid rounding alone does not light up a snap guide.
type SnapResult struct {
	Time    float64
	Snapped bool
}

// SnapToGrid rounds time to the nearest multiple of interval.
// Disabled or non-positive intervals pass the time through unchanged.
func SnapToGrid(time, interval float64, enabled bool) float64 {
	if !enabled || interval <= 0 {
		return time
	}
	return math.Round(time/interval) * interval
}

// SnapToEdge pulls time to the closest target strictly within threshold.
// Ties go to the first minimal distance found in target order. A target
// exactly at threshold distance does not snap.
func SnapToEdge(time float64, targets []float64, threshold float64, enabled bool) SnapResult {
	if !enabled || len(targets) == 0 {
		return SnapResult{Time: time}
	}

	best := threshold
	snapped := time
	for _, target := range targets {
		d := math.Abs(time - target)
		if d < best {
			best = d
			snapped = target
		}
	}

	return SnapResult{Time: snapped, Snapped: snapped != time}
}

// SnapTime resolves the snap policies in fixed precedence: an edge snap
// wins outright and the grid is not consulted; otherwise the time falls
// back to grid rounding, reported as not snapped.
func SnapTime(time float64, targets []float64, cfg SnapConfig) SnapResult {
	edge := SnapToEdge(time, targets, cfg.EdgeThreshold, cfg.EdgeEnabled)
	if edge.Snapped {
		return edge
	}
	return SnapResult{Time: SnapToGrid(time, cfg.GridInterval, cfg.GridEnabled)}
}

// SegmentEdgeTimes flattens the start and end of every segment except the
// excluded one into a single snap target list. A dragged segment never
// snaps against its own bounds.
func SegmentEdgeTimes(segments []Segment, excludeID string) []float64 {
	var targets []float64
	for _, seg := range segments {
		if seg.ID == excludeID {
			continue
		}
		targets = append(targets, seg.StartSeconds(), seg.EndSeconds())
	}
	return targets
}
