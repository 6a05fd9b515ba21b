package osr

import (
	"fmt"
	"io"
	"log"
	"os"
)

// ValidateFile decodes the replay at path and reports problems. Files that
// fail to decode return an error; content that parses but looks off (odd
// hash lengths, empty frame data, a life bar running backwards) is logged
// as a warning instead. Useful for checking batches of downloaded replays.
func ValidateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("replay file not found: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("replay file is empty (0 bytes)")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read replay file: %w", err)
	}

	r, err := Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode replay: %w", err)
	}

	// Hashes are MD5 hex digests in every file the client writes.
	if len(r.BeatmapHash) != 32 {
		log.Printf("[osr] WARNING: beatmap hash is %d chars, expected 32", len(r.BeatmapHash))
	}
	if len(r.ReplayHash) != 32 {
		log.Printf("[osr] WARNING: replay hash is %d chars, expected 32", len(r.ReplayHash))
	}
	if r.PlayerName == "" {
		log.Printf("[osr] WARNING: player name is empty")
	}
	if len(r.Frames) == 0 {
		log.Printf("[osr] WARNING: no locally stored frame data")
	}
	for i := 1; i < len(r.LifeBar); i++ {
		if r.LifeBar[i].Offset < r.LifeBar[i-1].Offset {
			log.Printf("[osr] WARNING: life bar offset decreases at point %d (%d after %d)",
				i, r.LifeBar[i].Offset, r.LifeBar[i-1].Offset)
			break
		}
	}

	var duration int64
	for _, f := range r.Frames {
		duration += f.Delta
	}
	if len(r.Frames) > 0 && duration == 0 {
		log.Printf("[osr] WARNING: replay duration is 0 ms (very short)")
	}

	log.Printf("[osr] Validated %s: %s play by %q, v%d, %d frames, %d ms, %d bytes",
		path, r.Mode, r.PlayerName, r.Version, len(r.Frames), duration, info.Size())

	return nil
}

// ValidateFileQuiet is like ValidateFile but suppresses all log output.
// Useful for CLI tools that want to control output formatting.
func ValidateFileQuiet(path string) error {
	// Temporarily suppress log output
	oldFlags := log.Flags()
	oldOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer func() {
		log.SetFlags(oldFlags)
		log.SetOutput(oldOutput)
	}()

	return ValidateFile(path)
}
