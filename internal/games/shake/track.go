package shake

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// TrackPoint is one recorded reading, timed from the start of the recording.
type TrackPoint struct {
	Offset  time.Duration
	X, Y, Z float64
}

// Sample stamps the point relative to start.
func (p TrackPoint) Sample(start time.Time) Sample {
	return Sample{X: p.X, Y: p.Y, Z: p.Z, At: start.Add(p.Offset)}
}

// ReadTrack parses a recording of "offset_ms,x,y,z" lines. Blank lines,
// lines starting with # and a header row are skipped. Offsets must not
// decrease.
func ReadTrack(r io.Reader) ([]TrackPoint, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	var track []TrackPoint
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("motion: %w", err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "offset_ms") {
			continue
		}

		var vals [4]float64
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("motion: record %d field %d: %w", line, i+1, err)
			}
			vals[i] = v
		}

		p := TrackPoint{
			Offset: time.Duration(vals[0] * float64(time.Millisecond)),
			X:      vals[1],
			Y:      vals[2],
			Z:      vals[3],
		}
		if n := len(track); n > 0 && p.Offset < track[n-1].Offset {
			return nil, fmt.Errorf("motion: record %d goes back in time", line)
		}
		track = append(track, p)
	}
	return track, nil
}
