package domain

import "testing"

func TestSnapToGrid(t *testing.T) {
	tests := []struct {
		time     float64
		interval float64
		enabled  bool
		want     float64
	}{
		{1.3, 0.5, true, 1.5},
		{1.2, 0.5, true, 1.0},
		{1.25, 0.5, true, 1.5},
		{5.05, 0.5, true, 5.0},
		{1.3, 0.5, false, 1.3},
		{1.3, 0, true, 1.3},
		{1.3, -1, true, 1.3},
	}

	for _, tt := range tests {
		got := SnapToGrid(tt.time, tt.interval, tt.enabled)
		if got != tt.want {
			t.Errorf("SnapToGrid(%v, %v, %v) = %v, want %v",
				tt.time, tt.interval, tt.enabled, got, tt.want)
		}
	}
}

func TestSnapToGridIdempotent(t *testing.T) {
	for _, time := range []float64{0, 0.3, 1.7, 12.34, 99.99} {
		once := SnapToGrid(time, 0.5, true)
		twice := SnapToGrid(once, 0.5, true)
		if once != twice {
			t.Errorf("SnapToGrid not idempotent at %v: %v then %v", time, once, twice)
		}
	}
}

func TestSnapToEdge(t *testing.T) {
	targets := []float64{1, 3, 5, 10}

	tests := []struct {
		name        string
		time        float64
		want        float64
		wantSnapped bool
	}{
		{"within threshold", 1.1, 1, true},
		{"exactly at threshold stays put", 1.3, 1.3, false},
		{"just inside threshold", 4.81, 5, true},
		{"far from everything", 7, 7, false},
		{"already on target", 3, 3, false},
	}

	for _, tt := range tests {
		got := SnapToEdge(tt.time, targets, 0.2, true)
		if got.Time != tt.want || got.Snapped != tt.wantSnapped {
			t.Errorf("%s: SnapToEdge(%v) = {%v %v}, want {%v %v}",
				tt.name, tt.time, got.Time, got.Snapped, tt.want, tt.wantSnapped)
		}
	}
}

func TestSnapToEdgeDisabledOrEmpty(t *testing.T) {
	if got := SnapToEdge(1.1, []float64{1}, 0.2, false); got.Time != 1.1 || got.Snapped {
		t.Errorf("disabled edge snap altered time: %+v", got)
	}
	if got := SnapToEdge(1.1, nil, 0.2, true); got.Time != 1.1 || got.Snapped {
		t.Errorf("empty targets altered time: %+v", got)
	}
}

func TestSnapToEdgeFirstMinimalWins(t *testing.T) {
	// Two targets equidistant from 2.0; the first in list order wins.
	got := SnapToEdge(2.0, []float64{1.9, 2.1}, 0.2, true)
	if got.Time != 1.9 || !got.Snapped {
		t.Errorf("tie break = %+v, want {1.9 true}", got)
	}
}

func TestSnapTimePrecedence(t *testing.T) {
	targets := []float64{2, 4, 6}
	cfg := SnapConfig{GridEnabled: true, GridInterval: 0.5, EdgeEnabled: true, EdgeThreshold: 0.2}

	// Edge wins over grid and reports the snap.
	got := SnapTime(1.9, targets, cfg)
	if got.Time != 2 || !got.Snapped {
		t.Errorf("SnapTime(1.9) = %+v, want {2 true}", got)
	}

	// No edge in range: falls back to grid, reported unsnapped.
	got = SnapTime(3.2, targets, cfg)
	if got.Time != 3 || got.Snapped {
		t.Errorf("SnapTime(3.2) = %+v, want {3 false}", got)
	}
}

func TestSegmentEdgeTimes(t *testing.T) {
	segments := []Segment{
		{ID: "a", Start: "00:00", End: "00:05"},
		{ID: "b", Start: "00:10", End: "00:12.5"},
		{ID: "c", Start: "00:20", End: "00:25"},
	}

	targets := SegmentEdgeTimes(segments, "b")
	want := []float64{0, 5, 20, 25}
	if len(targets) != len(want) {
		t.Fatalf("got %d targets, want %d", len(targets), len(want))
	}
	for i, w := range want {
		if targets[i] != w {
			t.Errorf("target[%d] = %v, want %v", i, targets[i], w)
		}
	}
}
