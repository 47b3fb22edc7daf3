package application

// Zoom bounds in timeline cells per second of media.
const (
	MinZoom = 1.0
	MaxZoom = 60.0
)

// ClampZoom keeps a zoom level inside the supported range.
func ClampZoom(zoom float64) float64 {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

// Mapper converts between timeline cell offsets and media time for a
// given zoom. The mapper clamps resulting times to [0, Duration] but
// never clamps zoom; callers clamp zoom when the user changes it.
type Mapper struct {
	Zoom     float64 // cells per second
	Duration float64 // total media length in seconds
}

// TimeAt converts a content-space cell offset to seconds.
func (m Mapper) TimeAt(x float64) float64 {
	if m.Zoom <= 0 {
		return 0
	}
	t := x / m.Zoom
	if t < 0 {
		return 0
	}
	if t > m.Duration {
		return m.Duration
	}
	return t
}

// XAt converts seconds to a content-space cell offset.
func (m Mapper) XAt(t float64) float64 {
	return t * m.Zoom
}
