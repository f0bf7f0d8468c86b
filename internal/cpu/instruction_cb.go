package cpu

import "fmt"

// InstructionSetCB holds the 256 instructions reached through the 0xCB
// prefix. The whole table follows the register encoding and is
// generated in init.
var InstructionSetCB = [256]Instruction{}

// cbCycles is the cost of a prefixed instruction on a register, or on
// (HL) when index is 6.
func cbCycles(index uint8) uint8 {
	return memoryCycles(index, 8, 8)
}

func init() {
	generateRotateInstructions()
	generateBitInstructions()
}

// generateRotateInstructions defines the rotates, shifts and SWAP
// (0x00 - 0x3F).
func generateRotateInstructions() {
	ops := [8]struct {
		name string
		fn   func(c *CPU, n uint8) uint8
	}{
		{"rlc", (*CPU).rotateLeftCarry},
		{"rrc", (*CPU).rotateRightCarry},
		{"rl", (*CPU).rotateLeftThroughCarry},
		{"rr", (*CPU).rotateRightThroughCarry},
		{"sla", (*CPU).shiftLeftArithmetic},
		{"sra", (*CPU).shiftRightArithmetic},
		{"swap", (*CPU).swap},
		{"srl", (*CPU).shiftRightLogical},
	}

	for op := uint8(0); op < 8; op++ {
		fn := ops[op].fn
		for r := uint8(0); r < 8; r++ {
			r := r
			InstructionSetCB[op<<3|r] = define(
				ops[op].name+" "+registerNames[r],
				operandNone,
				cbCycles(r),
				func(c *CPU) {
					c.modifyIndex(r, func(n uint8) uint8 {
						return fn(c, n)
					})
				},
			)
		}
	}
}

// generateBitInstructions defines BIT b, r (0x40 - 0x7F), RES b, r
// (0x80 - 0xBF) and SET b, r (0xC0 - 0xFF).
func generateBitInstructions() {
	for b := uint8(0); b < 8; b++ {
		b := b
		for r := uint8(0); r < 8; r++ {
			r := r
			operands := fmt.Sprintf("%d,%s", b, registerNames[r])

			InstructionSetCB[0x40|b<<3|r] = define("bit "+operands, operandNone, cbCycles(r), func(c *CPU) {
				c.testBit(c.readIndex(r), b)
			})
			InstructionSetCB[0x80|b<<3|r] = define("res "+operands, operandNone, cbCycles(r), func(c *CPU) {
				c.modifyIndex(r, resetBit(b))
			})
			InstructionSetCB[0xC0|b<<3|r] = define("set "+operands, operandNone, cbCycles(r), func(c *CPU) {
				c.modifyIndex(r, setBit(b))
			})
		}
	}
}
