package shake

import (
	"strings"
	"testing"
	"time"
)

func TestReadTrack(t *testing.T) {
	input := `offset_ms,x,y,z
# resting
0, 0, 0, 9.8
100, 12, 4, 9.8

250, 0, 0, 9.8
`
	track, err := ReadTrack(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTrack() failed: %v", err)
	}
	if len(track) != 3 {
		t.Fatalf("expected 3 points, got %d", len(track))
	}
	if track[1].Offset != 100*time.Millisecond || track[1].X != 12 {
		t.Errorf("track[1] = %+v", track[1])
	}

	start := time.Date(2026, 1, 1, 7, 0, 0, 0, time.UTC)
	if got := track[2].Sample(start).At; !got.Equal(start.Add(250 * time.Millisecond)) {
		t.Errorf("Sample().At = %v", got)
	}
}

func TestReadTrackErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"wrong field count", "0,1,2\n"},
		{"not a number", "0,1,2,x\n"},
		{"backwards", "100,0,0,0\n50,0,0,0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadTrack(strings.NewReader(tc.input)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestTrackDrivesGame(t *testing.T) {
	g, clock := newTestGame(t, 5)
	input := "0,0,0,0\n100,20,0,0\n700,0,0,0\n1300,20,0,0\n1400,0,0,0\n"
	track, err := ReadTrack(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTrack() failed: %v", err)
	}

	for _, p := range track {
		g.Observe(p.Sample(clock.Now()))
	}
	// 100ms and 700ms and 1300ms clear the debounce; 1400ms does not
	if g.Count() != 3 {
		t.Errorf("Count() = %d, expected 3", g.Count())
	}
}
