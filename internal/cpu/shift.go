package cpu

import "github.com/thelolagemann/lr35902/internal/types"

// shifted sets the flags shared by the CB shifts and rotates: Z from
// result, N and H reset, C from the bit moved out of the operand.
func (c *CPU) shifted(result uint8, carry bool) uint8 {
	c.setFlags(result == 0, false, false, carry)
	return result
}

// shiftLeftArithmetic moves bit 7 into carry and fills bit 0 with 0.
//
//	SLA n
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	return c.shifted(n<<1, n&types.Bit7 != 0)
}

// shiftRightArithmetic moves bit 0 into carry and repeats bit 7, so
// signed values keep their sign.
//
//	SRA n
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	return c.shifted(uint8(int8(n)>>1), n&types.Bit0 != 0)
}

// shiftRightLogical moves bit 0 into carry and fills bit 7 with 0.
//
//	SRL n
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	return c.shifted(n>>1, n&types.Bit0 != 0)
}
