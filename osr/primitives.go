package osr

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// maxStringLen caps the decoded length of any string field. The longest
// legitimate string in a replay is the life-bar curve, well under a
// megabyte; the cap stops a forged length prefix from forcing a huge
// allocation.
const maxStringLen = 8 << 20

func (c *cursor) readByte() (byte, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) readUint16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) readInt32() (int32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func (c *cursor) readUint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) readInt64() (int64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// readBool reads a single byte; any nonzero value is true.
func (c *cursor) readBool() (bool, error) {
	b, err := c.readByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// readVarInt decodes a ULEB128 value: 7 payload bits per byte, least
// significant group first, continuation flag in the high bit. A 32-bit
// value fits in 5 bytes; a longer continuation run is malformed.
func (c *cursor) readVarInt() (uint32, error) {
	var v uint32
	for i := 0; ; i++ {
		if i == 5 {
			return 0, fmt.Errorf("%w: continuation past 5 bytes at offset %d",
				ErrMalformedVarInt, c.position())
		}
		b, err := c.readByte()
		if err != nil {
			return 0, err
		}
		v |= uint32(b&0x7F) << (7 * i)
		if b&0x80 == 0 {
			return v, nil
		}
	}
}

// readString decodes an osu! flagged string: 0x00 means empty with no
// further bytes, 0x0b means a varint byte length followed by that many
// bytes of UTF-8 text.
func (c *cursor) readString() (string, error) {
	flag, err := c.readByte()
	if err != nil {
		return "", err
	}
	switch flag {
	case 0x00:
		return "", nil
	case 0x0b:
		n, err := c.readVarInt()
		if err != nil {
			return "", err
		}
		if n > maxStringLen {
			return "", fmt.Errorf("%w: declared length %d exceeds %d",
				ErrLengthTooLarge, n, maxStringLen)
		}
		b, err := c.take(int(n))
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: string at offset %d", ErrInvalidUTF8, c.position()-int(n))
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("%w: 0x%02x at offset %d", ErrInvalidStringFlag, flag, c.position()-1)
	}
}
