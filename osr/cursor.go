package osr

import "fmt"

// cursor is a bounds-checked sequential reader over an immutable byte
// buffer. Every other decoding step consumes the buffer exclusively through
// take; nothing reads past the end or rewinds.
type cursor struct {
	buf []byte
	off int
}

// take returns the next n bytes and advances the cursor. The returned slice
// aliases the underlying buffer and must not be modified.
func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 || n > len(c.buf)-c.off {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrInsufficientData, n, c.off, len(c.buf)-c.off)
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) remaining() int { return len(c.buf) - c.off }

func (c *cursor) position() int { return c.off }
