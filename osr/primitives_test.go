package osr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorTake(t *testing.T) {
	c := &cursor{buf: []byte{1, 2, 3, 4}}

	b, err := c.take(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	assert.Equal(t, 2, c.position())
	assert.Equal(t, 2, c.remaining())

	_, err = c.take(3)
	assert.ErrorIs(t, err, ErrInsufficientData)
	assert.Equal(t, 2, c.position(), "a failed take must not advance")

	b, err = c.take(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4}, b)
	assert.Equal(t, 0, c.remaining())

	b, err = c.take(0)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestCursorTakeNegative(t *testing.T) {
	c := &cursor{buf: []byte{1, 2}}
	_, err := c.take(-1)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestReadIntegers(t *testing.T) {
	c := &cursor{buf: []byte{
		0x2A,                   // u8
		0x34, 0x12,             // u16
		0xFF, 0xFF, 0xFF, 0xFF, // i32 = -1
		0x78, 0x56, 0x34, 0x12, // u32
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, // i64
	}}

	b, err := c.readByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x2A), b)

	u16, err := c.readUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), u16)

	i32, err := c.readInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), i32)

	u32, err := c.readUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), u32)

	i64, err := c.readInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(-0x7FFFFFFFFFFFFFFF), i64)

	_, err = c.readByte()
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestReadBool(t *testing.T) {
	c := &cursor{buf: []byte{0x00, 0x01, 0x2A}}

	for _, want := range []bool{false, true, true} {
		v, err := c.readBool()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestReadVarInt(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want uint32
	}{
		{"single byte", []byte{0x05}, 5},
		{"two bytes", []byte{0xAC, 0x02}, 300},
		{"zero", []byte{0x00}, 0},
		{"max group", []byte{0x7F}, 127},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &cursor{buf: tt.in}
			v, err := c.readVarInt()
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestReadVarIntTooLong(t *testing.T) {
	c := &cursor{buf: []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}}
	_, err := c.readVarInt()
	assert.ErrorIs(t, err, ErrMalformedVarInt)
}

func TestReadVarIntTruncated(t *testing.T) {
	c := &cursor{buf: []byte{0x80, 0x80}}
	_, err := c.readVarInt()
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestReadString(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		c := &cursor{buf: []byte{0x00}}
		s, err := c.readString()
		require.NoError(t, err)
		assert.Equal(t, "", s)
	})

	t.Run("present", func(t *testing.T) {
		c := &cursor{buf: append([]byte{0x0b, 0x05}, "hello"...)}
		s, err := c.readString()
		require.NoError(t, err)
		assert.Equal(t, "hello", s)
		assert.Equal(t, 0, c.remaining())
	})

	t.Run("present empty", func(t *testing.T) {
		c := &cursor{buf: []byte{0x0b, 0x00}}
		s, err := c.readString()
		require.NoError(t, err)
		assert.Equal(t, "", s)
	})

	t.Run("bad flag", func(t *testing.T) {
		c := &cursor{buf: []byte{0x01, 0x05}}
		_, err := c.readString()
		assert.ErrorIs(t, err, ErrInvalidStringFlag)
	})

	t.Run("truncated text", func(t *testing.T) {
		c := &cursor{buf: []byte{0x0b, 0x05, 'h', 'i'}}
		_, err := c.readString()
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		c := &cursor{buf: []byte{0x0b, 0x01, 0xFF}}
		_, err := c.readString()
		assert.ErrorIs(t, err, ErrInvalidUTF8)
	})

	t.Run("length above ceiling", func(t *testing.T) {
		// ULEB128 for 9 MiB, over the 8 MiB cap.
		c := &cursor{buf: []byte{0x0b, 0x80, 0x80, 0xC0, 0x04}}
		_, err := c.readString()
		assert.ErrorIs(t, err, ErrLengthTooLarge)
	})
}
