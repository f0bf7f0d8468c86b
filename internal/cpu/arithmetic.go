package cpu

// addUint16 adds two uint16 values together and sets the flags
// accordingly. The zero flag is left untouched.
//
// Used by:
//
//	ADD HL, nn
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	c.setFlags(c.IsFlagSet(FlagZero), false, (a&0xFFF)+(b&0xFFF) > 0xFFF, sum > 0xFFFF)
	return uint16(sum)
}

// addHLRR adds the given value to the HL RegisterPair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
func (c *CPU) addHLRR(value uint16) {
	c.HL.SetUint16(c.addUint16(c.HL.Uint16(), value))
}

// addSPSigned returns SP plus the signed immediate operand. The
// operand is sign extended and the flags follow the 16-bit add rules,
// with zero forced clear.
//
// Used by:
//
//	ADD SP, s8
//	LD HL, SP+s8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addSPSigned() uint16 {
	offset := uint16(int8(c.readOperand()))
	sum := uint32(c.SP) + uint32(offset)
	c.setFlags(false, false, (c.SP&0xFFF)+(offset&0xFFF) > 0xFFF, sum > 0xFFFF)
	return uint16(sum)
}

// pairValue returns the value of the pair in bits 4-5 of an opcode,
// where index 3 is SP.
func (c *CPU) pairValue(index uint8) uint16 {
	if index == 3 {
		return c.SP
	}
	return c.registerPairIndex(index).Uint16()
}

// setPairValue sets the pair in bits 4-5 of an opcode, where index 3
// is SP.
func (c *CPU) setPairValue(index uint8, value uint16) {
	if index == 3 {
		c.SP = value
		return
	}
	c.registerPairIndex(index).SetUint16(value)
}

// incrementNN increments the given register pair by 1. No flags are
// affected.
//
//	INC nn
//	nn = BC, DE, HL, SP
func (c *CPU) incrementNN(index uint8) {
	if index == 3 {
		c.SP++
		return
	}
	c.registerPairIndex(index).Increment()
}

// decrementNN decrements the given register pair by 1. No flags are
// affected.
//
//	DEC nn
//	nn = BC, DE, HL, SP
func (c *CPU) decrementNN(index uint8) {
	if index == 3 {
		c.SP--
		return
	}
	c.registerPairIndex(index).Decrement()
}
