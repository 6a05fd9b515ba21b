// Package osr decodes osu! score replay (.osr) files.
//
// A replay file is a little-endian binary header followed by an
// LZMA-compressed block of input frames:
//   - header: game mode, format version, beatmap/replay hashes, score
//     statistics, mods, life-bar curve, timestamp
//   - frame data: comma-separated "delta|x|y|keys" tokens; on newer format
//     versions a sentinel token carries the RNG seed instead of a frame
//   - trailer: online score id, present only for newer format versions
//
// Decoding is a single forward pass over an in-memory buffer; the returned
// Replay is never mutated afterwards. The package is a read-only decoder and
// does not write replays.
package osr
