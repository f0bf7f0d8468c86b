package cpu

import "github.com/thelolagemann/lr35902/internal/types"

// rotateLeftCarry moves bit 7 into both carry and bit 0.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	return c.shifted(n<<1|n>>7, n&types.Bit7 != 0)
}

// rotateRightCarry moves bit 0 into both carry and bit 7.
//
//	RRC n
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	return c.shifted(n>>1|n<<7, n&types.Bit0 != 0)
}

// rotateLeftThroughCarry rotates the 9 bits formed by carry and n left.
//
//	RL n
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	return c.shifted(n<<1|c.flagValue(FlagCarry), n&types.Bit7 != 0)
}

// rotateRightThroughCarry rotates the 9 bits formed by n and carry right.
//
//	RR n
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	return c.shifted(n>>1|c.flagValue(FlagCarry)<<7, n&types.Bit0 != 0)
}

// The accumulator forms share the bit algorithm of their CB counterparts,
// including the zero flag.
//
//	RLCA, RRCA, RLA, RRA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit shifted out.

func (c *CPU) rotateLeftCarryAccumulator() {
	c.A = c.rotateLeftCarry(c.A)
}

func (c *CPU) rotateRightCarryAccumulator() {
	c.A = c.rotateRightCarry(c.A)
}

func (c *CPU) rotateLeftAccumulatorThroughCarry() {
	c.A = c.rotateLeftThroughCarry(c.A)
}

func (c *CPU) rotateRightAccumulatorThroughCarry() {
	c.A = c.rotateRightThroughCarry(c.A)
}
