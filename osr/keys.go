package osr

// KeyState is the bitmask of input buttons held during a frame. The bit
// meanings below are for osu! standard; taiko reuses the low bits for drum
// sides and mania uses one bit per column starting at bit 0.
type KeyState uint32

const (
	KeyM1    KeyState = 1 << iota // left mouse button; set whenever KeyK1 is
	KeyM2                         // right mouse button; set whenever KeyK2 is
	KeyK1                         // left keyboard key
	KeyK2                         // right keyboard key
	KeySmoke                      // smoke trail
)

// Pressed reports whether every button of b is held.
func (k KeyState) Pressed(b KeyState) bool { return k&b == b }
