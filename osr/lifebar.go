package osr

import (
	"fmt"
	"strconv"
	"strings"
)

// LifeBarPoint is one sample of the player's health during the play.
type LifeBarPoint struct {
	// Offset is milliseconds into the song.
	Offset int32
	// Health is the life-bar fill, 0 (empty) to 1 (full).
	Health float64
}

// parseLifeBar decodes the life-bar curve string: comma-separated
// "offset|health" segments, where a trailing comma leaves an empty segment
// that is skipped. Offsets from the reference client are non-decreasing;
// strict mode rejects a curve that goes backwards, the default stores it
// as-is.
func parseLifeBar(s string, strict bool) ([]LifeBarPoint, error) {
	if s == "" {
		return nil, nil
	}
	var points []LifeBarPoint
	for _, seg := range strings.Split(s, ",") {
		if seg == "" {
			continue
		}
		offStr, healthStr, ok := strings.Cut(seg, "|")
		if !ok {
			return nil, fmt.Errorf("%w: segment %q has no separator", ErrMalformedLifeBar, seg)
		}
		off, err := strconv.ParseInt(offStr, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: offset %q: %v", ErrMalformedLifeBar, offStr, err)
		}
		health, err := strconv.ParseFloat(healthStr, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: health %q: %v", ErrMalformedLifeBar, healthStr, err)
		}
		if strict && len(points) > 0 && int32(off) < points[len(points)-1].Offset {
			return nil, fmt.Errorf("%w: offset %d after %d", ErrMalformedLifeBar,
				off, points[len(points)-1].Offset)
		}
		points = append(points, LifeBarPoint{Offset: int32(off), Health: health})
	}
	return points, nil
}
