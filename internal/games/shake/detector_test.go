package shake

import (
	"testing"
	"time"
)

func TestDetector(t *testing.T) {
	base := time.Date(2026, 1, 1, 7, 0, 0, 0, time.UTC)
	at := func(ms int) time.Time { return base.Add(time.Duration(ms) * time.Millisecond) }

	tests := []struct {
		name     string
		samples  []Sample
		expected []bool
	}{
		{
			name:     "first sample primes",
			samples:  []Sample{{X: 40, At: at(0)}},
			expected: []bool{false},
		},
		{
			name:     "below threshold",
			samples:  []Sample{{At: at(0)}, {X: 5, Y: 5, Z: 5, At: at(100)}},
			expected: []bool{false, false},
		},
		{
			name:     "summed axes exceed threshold",
			samples:  []Sample{{At: at(0)}, {X: 6, Y: -6, Z: 6, At: at(100)}},
			expected: []bool{false, true},
		},
		{
			name: "debounce suppresses rapid shakes",
			samples: []Sample{
				{At: at(0)},
				{X: 20, At: at(100)},
				{At: at(300)},
				{X: 20, At: at(700)},
			},
			expected: []bool{false, true, false, true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDetector(0, 0)
			for i, s := range tc.samples {
				if got := d.Observe(s); got != tc.expected[i] {
					t.Errorf("sample %d: Observe() = %v, expected %v", i, got, tc.expected[i])
				}
			}
		})
	}
}

func TestDetectorReset(t *testing.T) {
	d := NewDetector(10, time.Second)
	now := time.Now()

	d.Observe(Sample{At: now})
	if !d.Observe(Sample{X: 20, At: now}) {
		t.Fatal("expected shake")
	}

	d.Reset()
	if d.Observe(Sample{X: 40, At: now}) {
		t.Error("first sample after reset should only prime")
	}
	if !d.Observe(Sample{At: now}) {
		t.Error("debounce window should be cleared by reset")
	}
}
