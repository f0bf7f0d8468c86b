package cpu

import "github.com/thelolagemann/lr35902/pkg/utils"

// testBit tests the bit at the given position in the given value.
//
//	BIT n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit n of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, position uint8) {
	c.setFlags(!utils.TestBit(value, position), false, true, c.IsFlagSet(FlagCarry))
}

// setBit sets the bit at the given position. No flags are affected.
//
//	SET n, r
func setBit(position uint8) func(uint8) uint8 {
	return func(value uint8) uint8 {
		return utils.SetBit(value, position)
	}
}

// resetBit clears the bit at the given position. No flags are affected.
//
//	RES n, r
func resetBit(position uint8) func(uint8) uint8 {
	return func(value uint8) uint8 {
		return utils.ClearBit(value, position)
	}
}
