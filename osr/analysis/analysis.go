// Package analysis derives read-only metrics from a decoded replay's frame
// trace: cumulative timing, play duration, and button press counts. It never
// recomputes judgements or scores; everything here is a pure function of the
// frame sequence.
package analysis

import (
	"time"

	"github.com/reallyoldfogie/osu-replay-go/osr"
)

// CumulativeTimes returns the absolute time of each frame in milliseconds,
// the running sum of deltas. The result has one entry per frame.
func CumulativeTimes(frames []osr.Frame) []int64 {
	if len(frames) == 0 {
		return nil
	}
	out := make([]int64, len(frames))
	var t int64
	for i, f := range frames {
		t += f.Delta
		out[i] = t
	}
	return out
}

// Duration returns the total recorded play time, the sum of all frame
// deltas.
func Duration(frames []osr.Frame) time.Duration {
	var t int64
	for _, f := range frames {
		t += f.Delta
	}
	return time.Duration(t) * time.Millisecond
}

// PressCounts counts discrete presses per button: a press is a frame where
// a key bit is set that was clear on the previous frame. Buttons that are
// never pressed do not appear in the map.
func PressCounts(frames []osr.Frame) map[osr.KeyState]int {
	counts := make(map[osr.KeyState]int)
	var prev osr.KeyState
	for _, f := range frames {
		pressed := f.Keys &^ prev
		for bit := osr.KeyState(1); pressed != 0; bit <<= 1 {
			if pressed&bit != 0 {
				counts[bit]++
				pressed &^= bit
			}
		}
		prev = f.Keys
	}
	return counts
}
