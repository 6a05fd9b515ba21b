package osr

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Format versions that changed the file layout.
const (
	// versionScoreID32 introduced a 32-bit online score id after the frame
	// block.
	versionScoreID32 = 20121008
	// VersionSeed is the first format version whose frame data carries the
	// RNG seed sentinel.
	VersionSeed = 20130319
	// versionScoreID64 widened the online score id to 64 bits.
	versionScoreID64 = 20140721
)

// DefaultMaxPayload is the decompressed frame-data ceiling applied by
// NewDecoder. Frame data for a long marathon play stays in the tens of
// megabytes.
const DefaultMaxPayload = 128 << 20

// .NET ticks are 100ns intervals since 0001-01-01; the Unix epoch is this
// many seconds later.
const ticksEpochOffset = 62135596800

// Replay is a fully decoded .osr file. It is constructed once by Decode and
// never modified afterwards.
type Replay struct {
	// Mode is the ruleset the score was set under.
	Mode GameMode
	// Version is the client version that wrote the file (e.g. 20210520).
	Version int32
	// BeatmapHash is the MD5 of the beatmap, a 32-character hex string.
	BeatmapHash string
	// PlayerName is the scoring player.
	PlayerName string
	// ReplayHash is the MD5 over selected replay properties.
	ReplayHash string

	// Judgement counts. The labels are for osu! standard; other modes reuse
	// the slots (e.g. Count100 holds 150s in taiko, CountGeki max-300s in
	// mania).
	Count300  uint16
	Count100  uint16
	Count50   uint16
	CountGeki uint16
	CountKatu uint16
	CountMiss uint16

	// Score and MaxCombo are the values shown on the score report.
	Score    int32
	MaxCombo uint16
	// FullCombo is set for a perfect combo (no misses or dropped sliders).
	FullCombo bool

	// Mods active on the score.
	Mods Mods
	// LifeBar is the health curve over the play, ordered by offset. Nil
	// when the file carries no curve.
	LifeBar []LifeBarPoint
	// Timestamp is the play date in .NET ticks; see Time.
	Timestamp int64

	// Frames is the recorded input trace. Empty for online-only entries
	// whose frame block has zero length.
	Frames []Frame

	// ScoreID is the online score id; HasScoreID reports whether the format
	// version carries the field at all.
	ScoreID    int64
	HasScoreID bool

	// Seed is the RNG seed extracted from the frame data's sentinel token;
	// HasSeed reports whether one was present.
	Seed    uint32
	HasSeed bool
}

// Time converts the raw tick timestamp to UTC.
func (r *Replay) Time() time.Time {
	return time.Unix(r.Timestamp/1e7-ticksEpochOffset, r.Timestamp%1e7*100).UTC()
}

// Decoder decodes .osr buffers. The zero value is not usable; NewDecoder
// fills in the LZMA decompressor and the default payload ceiling.
//
// Usage:
//
//	r, err := osr.NewDecoder().Decode(data)
//
// A Decoder holds no per-parse state and may be shared across goroutines.
type Decoder struct {
	// Decompress inflates the frame-data block.
	Decompress DecompressFunc
	// MaxPayload caps the decompressed frame data, in bytes.
	MaxPayload int64
	// Strict rejects files the reference client would never write but that
	// are structurally decodable: life-bar curves with decreasing offsets
	// and negative frame deltas past the second frame.
	Strict bool
}

// NewDecoder returns a Decoder with the default LZMA collaborator and
// payload ceiling.
func NewDecoder() *Decoder {
	return &Decoder{
		Decompress: decompressLZMA,
		MaxPayload: DefaultMaxPayload,
	}
}

// Decode parses a complete .osr buffer. It returns the first failure
// encountered and never a partially-populated Replay.
func Decode(data []byte) (*Replay, error) {
	return NewDecoder().Decode(data)
}

// Open reads and decodes the replay file at path.
func Open(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	return Decode(data)
}

// Decode parses a complete .osr buffer in a single forward pass: header
// fields in file order, then the compressed frame block, then the
// version-dependent trailer.
func (d *Decoder) Decode(data []byte) (*Replay, error) {
	c := &cursor{buf: data}
	r := &Replay{}

	modeByte, err := c.readByte()
	if err != nil {
		return nil, fmt.Errorf("game mode: %w", err)
	}
	r.Mode = GameMode(modeByte)
	if !r.Mode.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedGameMode, modeByte)
	}

	if r.Version, err = c.readInt32(); err != nil {
		return nil, fmt.Errorf("format version: %w", err)
	}
	if r.BeatmapHash, err = c.readString(); err != nil {
		return nil, fmt.Errorf("beatmap hash: %w", err)
	}
	if r.PlayerName, err = c.readString(); err != nil {
		return nil, fmt.Errorf("player name: %w", err)
	}
	if r.ReplayHash, err = c.readString(); err != nil {
		return nil, fmt.Errorf("replay hash: %w", err)
	}

	if r.Count300, err = c.readUint16(); err != nil {
		return nil, fmt.Errorf("count-300: %w", err)
	}
	if r.Count100, err = c.readUint16(); err != nil {
		return nil, fmt.Errorf("count-100: %w", err)
	}
	if r.Count50, err = c.readUint16(); err != nil {
		return nil, fmt.Errorf("count-50: %w", err)
	}
	if r.CountGeki, err = c.readUint16(); err != nil {
		return nil, fmt.Errorf("count-geki: %w", err)
	}
	if r.CountKatu, err = c.readUint16(); err != nil {
		return nil, fmt.Errorf("count-katu: %w", err)
	}
	if r.CountMiss, err = c.readUint16(); err != nil {
		return nil, fmt.Errorf("count-miss: %w", err)
	}

	if r.Score, err = c.readInt32(); err != nil {
		return nil, fmt.Errorf("total score: %w", err)
	}
	if r.MaxCombo, err = c.readUint16(); err != nil {
		return nil, fmt.Errorf("max combo: %w", err)
	}
	if r.FullCombo, err = c.readBool(); err != nil {
		return nil, fmt.Errorf("full combo: %w", err)
	}
	mods, err := c.readUint32()
	if err != nil {
		return nil, fmt.Errorf("mods: %w", err)
	}
	r.Mods = Mods(mods)

	lifeBar, err := c.readString()
	if err != nil {
		return nil, fmt.Errorf("life bar: %w", err)
	}
	if r.LifeBar, err = parseLifeBar(lifeBar, d.Strict); err != nil {
		return nil, err
	}

	if r.Timestamp, err = c.readInt64(); err != nil {
		return nil, fmt.Errorf("timestamp: %w", err)
	}

	compLen, err := c.readInt32()
	if err != nil {
		return nil, fmt.Errorf("compressed length: %w", err)
	}
	block, err := c.take(int(compLen))
	if err != nil {
		return nil, fmt.Errorf("compressed frame data: %w", err)
	}

	// A zero-length block is a replay with no locally stored frame data
	// (e.g. fetched online metadata): no frames, no seed, not an error.
	if len(block) > 0 {
		payload, err := d.Decompress(block, d.MaxPayload)
		if err != nil {
			if !errors.Is(err, ErrDecompression) && !errors.Is(err, ErrPayloadTooLarge) {
				err = fmt.Errorf("%w: %v", ErrDecompression, err)
			}
			return nil, fmt.Errorf("frame data: %w", err)
		}
		fs, err := parseFrames(payload, d.Strict)
		if err != nil {
			return nil, err
		}
		r.Frames = fs.frames
		r.Seed, r.HasSeed = fs.seed, fs.hasSeed
	}

	// The online score id trails the frame block and exists only from
	// versionScoreID32 on; reading it unconditionally misparses older
	// files. It was a 32-bit field until versionScoreID64.
	switch {
	case r.Version >= versionScoreID64:
		if r.ScoreID, err = c.readInt64(); err != nil {
			return nil, fmt.Errorf("online score id: %w", err)
		}
		r.HasScoreID = true
	case r.Version >= versionScoreID32:
		id, err := c.readInt32()
		if err != nil {
			return nil, fmt.Errorf("online score id: %w", err)
		}
		r.ScoreID = int64(id)
		r.HasScoreID = true
	}

	return r, nil
}
