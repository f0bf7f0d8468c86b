package cpu

// add adds n (and the carry flag, if withCarry) to the A Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var carry uint8
	if withCarry {
		carry = c.flagValue(FlagCarry)
	}

	sum := uint16(c.A) + uint16(n) + uint16(carry)
	sumHalf := c.A&0xF + n&0xF + carry

	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// sub subtracts n (and the carry flag, if withCarry) from the A Register.
//
//	SUB n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	c.A = c.subtract(n, withCarry)
}

// compare compares n to the A Register. It is a subtraction whose
// result is thrown away.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero (A == n).
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow (A < n).
func (c *CPU) compare(n uint8) {
	c.subtract(n, false)
}

// subtract computes A - n (- carry) and sets the flags, without storing
// the result.
func (c *CPU) subtract(n uint8, withCarry bool) uint8 {
	var carry int
	if withCarry {
		carry = int(c.flagValue(FlagCarry))
	}

	diff := int(c.A) - int(n) - carry
	diffHalf := int(c.A&0xF) - int(n&0xF) - carry
	result := uint8(diff)

	c.setFlags(result == 0, true, diffHalf < 0, diff < 0)
	return result
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 1
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.IsFlagSet(FlagCarry))
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 1
	c.setFlags(decremented == 0, true, n&0xF == 0x0, c.IsFlagSet(FlagCarry))
	return decremented
}

// decimalAdjust adjusts the A Register to packed BCD after an addition
// or subtraction, depending on the Subtract flag.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if an adjustment of 0x60 was applied, otherwise unchanged.
func (c *CPU) decimalAdjust() {
	a := c.A
	if !c.IsFlagSet(FlagSubtract) {
		if c.IsFlagSet(FlagCarry) || a > 0x99 {
			a += 0x60
			c.SetFlag(FlagCarry)
		}
		if c.IsFlagSet(FlagHalfCarry) || a&0xF > 0x9 {
			a += 0x06
		}
	} else {
		if c.IsFlagSet(FlagCarry) {
			a -= 0x60
		}
		if c.IsFlagSet(FlagHalfCarry) {
			a -= 0x06
		}
	}

	c.A = a
	c.ClearFlag(FlagHalfCarry)
	c.putFlag(FlagZero, a == 0)
}

// complement flips every bit of the A Register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = ^c.A
	c.SetFlag(FlagSubtract)
	c.SetFlag(FlagHalfCarry)
}

// setCarry sets the carry flag.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func (c *CPU) setCarry() {
	c.SetFlag(FlagCarry)
	c.ClearFlag(FlagSubtract)
	c.ClearFlag(FlagHalfCarry)
}

// complementCarry flips the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func (c *CPU) complementCarry() {
	c.putFlag(FlagCarry, !c.IsFlagSet(FlagCarry))
	c.ClearFlag(FlagSubtract)
	c.ClearFlag(FlagHalfCarry)
}
