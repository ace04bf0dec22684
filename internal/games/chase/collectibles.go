package chase

import (
	"slices"

	"github.com/vovakirdan/tui-alarm/internal/core"
)

const (
	// DefaultQuota caps the number of seeded collectibles.
	DefaultQuota = 30
	// DefaultPoints is the score awarded per collectible.
	DefaultPoints = 10
)

// SeedCollectibles returns the initial collectible list: interior cells scanned
// column by column (x outer, y inner), skipping walls and the excluded spawn
// cells, truncated to quota.
func SeedCollectibles(m *Maze, exclude []core.Point, quota int) []core.Point {
	var out []core.Point
	for x := 1; x < m.Side()-1; x++ {
		for y := 1; y < m.Side()-1; y++ {
			if len(out) >= quota {
				return out
			}
			p := core.Pt(x, y)
			if m.Blocked(p) || slices.Contains(exclude, p) {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

// Collect removes p from remaining and reports the score delta. The input
// slice is never modified; a miss returns it unchanged with a zero delta, so
// repeated calls on a cleared cell are harmless.
func Collect(remaining []core.Point, p core.Point, points int) ([]core.Point, int) {
	i := slices.Index(remaining, p)
	if i < 0 {
		return remaining, 0
	}
	out := make([]core.Point, 0, len(remaining)-1)
	out = append(out, remaining[:i]...)
	out = append(out, remaining[i+1:]...)
	return out, points
}
