package osr

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// DecompressFunc turns a compressed frame-data block into its plaintext
// payload. Implementations must stop and fail with ErrPayloadTooLarge once
// the output would exceed limit bytes; a tiny block can otherwise be made
// to decompress without bound. Decode uses LZMA by default; tests inject an
// identity function to feed pre-built payloads through the frame parser.
type DecompressFunc func(data []byte, limit int64) ([]byte, error)

// decompressLZMA decodes an LZMA-alone stream (5-byte properties header
// plus 8-byte size field), the format the osu! client writes.
func decompressLZMA(data []byte, limit int64) ([]byte, error) {
	r, err := lzma.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	var out bytes.Buffer
	n, err := io.Copy(&out, io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	if n > limit {
		return nil, fmt.Errorf("%w: payload exceeds %d bytes", ErrPayloadTooLarge, limit)
	}
	return out.Bytes(), nil
}
