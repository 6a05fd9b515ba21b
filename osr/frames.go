package osr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// SeedDelta is the sentinel time delta marking the pseudo-frame that
// carries the RNG seed in its key-state slot. Clients emit it as the last
// token for format versions from 20130319 on; it is never a gameplay frame.
const SeedDelta = -12345

// Frame is one sampled input state.
type Frame struct {
	// Delta is milliseconds since the previous frame. Cumulative play time
	// is the running sum of deltas.
	Delta int64
	// X and Y are the cursor position, 0-512 by 0-384 in osu! standard.
	X float32
	Y float32
	// Keys are the buttons held during the frame.
	Keys KeyState
}

type frameStream struct {
	frames  []Frame
	seed    uint32
	hasSeed bool
}

// parseFrames decodes the decompressed payload: comma-separated
// "delta|x|y|keys" tokens, with the trailing separator leaving an empty
// token that is dropped. A sentinel token sets the seed instead of
// appending a frame; the first sentinel wins and later ones are ignored.
// Strict mode additionally rejects a negative delta on any gameplay frame
// past the second (the reference client starts replays with one or two
// negative-delta frames).
func parseFrames(payload []byte, strict bool) (frameStream, error) {
	var fs frameStream
	if len(payload) == 0 {
		return fs, nil
	}
	if !utf8.Valid(payload) {
		return fs, fmt.Errorf("%w: frame payload", ErrInvalidUTF8)
	}
	for i, token := range strings.Split(string(payload), ",") {
		if token == "" {
			continue
		}
		fields := strings.Split(token, "|")
		if len(fields) != 4 {
			return fs, fmt.Errorf("%w: token %d has %d fields, want 4",
				ErrMalformedFrameData, i, len(fields))
		}
		delta, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return fs, fmt.Errorf("%w: token %d delta %q: %v", ErrMalformedFrameData, i, fields[0], err)
		}
		if delta == SeedDelta {
			seed, err := strconv.ParseUint(fields[3], 10, 32)
			if err != nil {
				return fs, fmt.Errorf("%w: token %d seed %q: %v", ErrMalformedFrameData, i, fields[3], err)
			}
			if !fs.hasSeed {
				fs.seed = uint32(seed)
				fs.hasSeed = true
			}
			continue
		}
		x, err := strconv.ParseFloat(fields[1], 32)
		if err != nil {
			return fs, fmt.Errorf("%w: token %d x %q: %v", ErrMalformedFrameData, i, fields[1], err)
		}
		y, err := strconv.ParseFloat(fields[2], 32)
		if err != nil {
			return fs, fmt.Errorf("%w: token %d y %q: %v", ErrMalformedFrameData, i, fields[2], err)
		}
		keys, err := strconv.ParseUint(fields[3], 10, 32)
		if err != nil {
			return fs, fmt.Errorf("%w: token %d keys %q: %v", ErrMalformedFrameData, i, fields[3], err)
		}
		if strict && delta < 0 && len(fs.frames) >= 2 {
			return fs, fmt.Errorf("%w: token %d has negative delta %d",
				ErrMalformedFrameData, i, delta)
		}
		fs.frames = append(fs.frames, Frame{
			Delta: delta,
			X:     float32(x),
			Y:     float32(y),
			Keys:  KeyState(keys),
		})
	}
	return fs, nil
}
