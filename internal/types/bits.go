package types

const (
	Bit0 = 1 << iota // 0b0000_0001
	Bit1             // 0b0000_0010
	Bit2             // 0b0000_0100
	Bit3             // 0b0000_1000
	Bit4             // 0b0001_0000
	Bit5             // 0b0010_0000
	Bit6             // 0b0100_0000
	Bit7             // 0b1000_0000
)

// Bit is a single-bit mask.
type Bit = uint8

// BitAt returns the mask for bit index i (0-7).
func BitAt(i uint8) Bit {
	return 1 << (i & 7)
}
