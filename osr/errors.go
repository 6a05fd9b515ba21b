package osr

import "errors"

// Decoding failures wrap exactly one of these sentinel errors. Callers test
// with errors.Is; the wrapped message names the field and byte offset that
// failed.
var (
	// ErrInsufficientData means the buffer ended before a field was complete.
	ErrInsufficientData = errors.New("osr: insufficient data")

	// ErrInvalidStringFlag means a string field started with a byte other
	// than 0x00 or 0x0b.
	ErrInvalidStringFlag = errors.New("osr: invalid string flag")

	// ErrMalformedVarInt means a string length prefix had too many
	// continuation bytes.
	ErrMalformedVarInt = errors.New("osr: malformed varint")

	// ErrLengthTooLarge means a declared string length exceeded the ceiling.
	ErrLengthTooLarge = errors.New("osr: string length too large")

	// ErrUnsupportedGameMode means the mode byte was outside 0-3.
	ErrUnsupportedGameMode = errors.New("osr: unsupported game mode")

	// ErrMalformedLifeBar means a life-bar segment did not parse.
	ErrMalformedLifeBar = errors.New("osr: malformed life bar")

	// ErrDecompression means the LZMA block could not be decompressed.
	ErrDecompression = errors.New("osr: decompression failed")

	// ErrPayloadTooLarge means the frame data decompressed past the
	// configured ceiling.
	ErrPayloadTooLarge = errors.New("osr: decompressed payload too large")

	// ErrMalformedFrameData means a frame token did not parse.
	ErrMalformedFrameData = errors.New("osr: malformed frame data")

	// ErrInvalidUTF8 means a string field or the frame payload was not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("osr: invalid utf-8")
)
