package shake

import (
	"math"
	"time"
)

const (
	// DefaultThreshold is the summed per-axis acceleration change that counts
	// as a shake.
	DefaultThreshold = 15.0
	// DefaultDebounce is the minimum gap between two detected shakes.
	DefaultDebounce = 500 * time.Millisecond
)

// Sample is one accelerometer reading.
type Sample struct {
	X, Y, Z float64
	At      time.Time
}

// Detector turns a stream of samples into discrete shakes.
type Detector struct {
	threshold float64
	debounce  time.Duration

	prev      Sample
	hasPrev   bool
	lastShake time.Time
	hasShake  bool
}

// NewDetector creates a detector. Non-positive arguments use the defaults.
func NewDetector(threshold float64, debounce time.Duration) *Detector {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Detector{threshold: threshold, debounce: debounce}
}

// Observe feeds one sample and reports whether it completes a shake.
// The first sample only primes the detector.
func (d *Detector) Observe(s Sample) bool {
	prev, had := d.prev, d.hasPrev
	d.prev, d.hasPrev = s, true
	if !had {
		return false
	}

	delta := math.Abs(s.X-prev.X) + math.Abs(s.Y-prev.Y) + math.Abs(s.Z-prev.Z)
	if delta <= d.threshold {
		return false
	}
	if d.hasShake && s.At.Sub(d.lastShake) < d.debounce {
		return false
	}
	d.lastShake, d.hasShake = s.At, true
	return true
}

// Reset forgets the previous sample and the debounce window.
func (d *Detector) Reset() {
	*d = Detector{threshold: d.threshold, debounce: d.debounce}
}
