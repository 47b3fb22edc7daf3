package domain

// Meta holds project-level information.
type Meta struct {
	Title    string  `json:"title"`
	Duration float64 `json:"duration"`
}

// View is the persisted viewport state of the timeline.
type View struct {
	Zoom   float64 `json:"zoom"`   // timeline cells per second
	Scroll float64 `json:"scroll"` // leftmost visible cell offset
}

// Project is the full serializable editor state.
type Project struct {
	Meta     Meta      `json:"meta"`
	View     View      `json:"view"`
	Speakers []Speaker `json:"speakers"`
	Segments []Segment `json:"segments"`
}

// SpeakerName resolves a speaker id to its display name, falling back to
// the raw id for dangling references.
func (p Project) SpeakerName(id string) string {
	for _, sp := range p.Speakers {
		if sp.ID == id {
			return sp.Name
		}
	}
	return id
}
