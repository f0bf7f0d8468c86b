package cpu

import "fmt"

// InstructionSet holds the 256 unprefixed instructions. Entries that
// follow the regular register encoding are generated in init.
var InstructionSet = [256]Instruction{
	0x00: define("nop", operandNone, 4, func(c *CPU) {}),
	0x02: define("ld (bc),a", operandNone, 8, func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.BC.Uint16())
	}),
	0x07: define("rlca", operandNone, 4, func(c *CPU) {
		c.rotateLeftCarryAccumulator()
	}),
	0x08: define("ld (%s),sp", operandA16, 20, func(c *CPU) {
		c.loadSPToMemory()
	}),
	0x0A: define("ld a,(bc)", operandNone, 8, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.BC.Uint16())
	}),
	0x0F: define("rrca", operandNone, 4, func(c *CPU) {
		c.rotateRightCarryAccumulator()
	}),
	// HALT and STOP only step over themselves.
	0x10: define("stop", operandNone, 4, func(c *CPU) {}),
	0x12: define("ld (de),a", operandNone, 8, func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.DE.Uint16())
	}),
	0x17: define("rla", operandNone, 4, func(c *CPU) {
		c.rotateLeftAccumulatorThroughCarry()
	}),
	0x18: defineJump("jr %s", operandR8, 8, func(c *CPU) {
		c.jumpRelative(true)
	}),
	0x1A: define("ld a,(de)", operandNone, 8, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.DE.Uint16())
	}),
	0x1F: define("rra", operandNone, 4, func(c *CPU) {
		c.rotateRightAccumulatorThroughCarry()
	}),
	0x22: define("ldi (hl),a", operandNone, 8, func(c *CPU) {
		c.loadHLIncrementDecrement(true, 1)
	}),
	0x27: define("daa", operandNone, 4, func(c *CPU) {
		c.decimalAdjust()
	}),
	0x2A: define("ldi a,(hl)", operandNone, 8, func(c *CPU) {
		c.loadHLIncrementDecrement(false, 1)
	}),
	0x2F: define("cpl", operandNone, 4, func(c *CPU) {
		c.complement()
	}),
	0x32: define("ldd (hl),a", operandNone, 8, func(c *CPU) {
		c.loadHLIncrementDecrement(true, 0xFFFF)
	}),
	0x37: define("scf", operandNone, 4, func(c *CPU) {
		c.setCarry()
	}),
	0x3A: define("ldd a,(hl)", operandNone, 8, func(c *CPU) {
		c.loadHLIncrementDecrement(false, 0xFFFF)
	}),
	0x3F: define("ccf", operandNone, 4, func(c *CPU) {
		c.complementCarry()
	}),
	0x76: define("halt", operandNone, 4, func(c *CPU) {}),
	0xC3: defineJump("jp %s", operandA16, 12, func(c *CPU) {
		c.jumpAbsolute(true)
	}),
	0xC9: defineJump("ret", operandNone, 8, func(c *CPU) {
		c.ret(true)
	}),
	0xCB: define("prefix cb", operandNone, 4, func(c *CPU) {
		c.cbPending = true
	}),
	0xCD: defineJump("call %s", operandA16, 12, func(c *CPU) {
		c.call(true)
	}),
	0xD9: defineJump("reti", operandNone, 8, func(c *CPU) {
		c.retInterrupt()
	}),
	0xE0: define("ldh (%s),a", operandA8, 12, func(c *CPU) {
		c.loadRegisterToMemory(c.A, highPage+uint16(c.readOperand()))
	}),
	0xE2: define("ld (0xFF00+c),a", operandNone, 8, func(c *CPU) {
		c.loadRegisterToMemory(c.A, highPage+uint16(c.C))
	}),
	0xE8: define("add sp,%s", operandS8, 16, func(c *CPU) {
		c.SP = c.addSPSigned()
	}),
	0xE9: defineJump("jp hl", operandNone, 4, func(c *CPU) {
		c.SetPC(c.HL.Uint16())
	}),
	0xEA: define("ld (%s),a", operandA16, 16, func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.readOperand16())
	}),
	0xF0: define("ldh a,(%s)", operandA8, 12, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, highPage+uint16(c.readOperand()))
	}),
	0xF2: define("ld a,(0xFF00+c)", operandNone, 8, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, highPage+uint16(c.C))
	}),
	0xF3: define("di", operandNone, 4, func(c *CPU) {
		c.ScheduleInterruptDisable()
	}),
	0xF8: define("ld hl,sp%s", operandS8, 12, func(c *CPU) {
		c.HL.SetUint16(c.addSPSigned())
	}),
	0xF9: define("ld sp,hl", operandNone, 8, func(c *CPU) {
		c.SP = c.HL.Uint16()
	}),
	0xFA: define("ld a,(%s)", operandA16, 16, func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.readOperand16())
	}),
	0xFB: define("ei", operandNone, 4, func(c *CPU) {
		c.ScheduleInterruptEnable()
	}),
}

// disallowedOpcodes have no defined behaviour on the CPU.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

// aluNames are the mnemonics of the 8 ALU operations encoded in bits
// 3-5 of opcodes 0x80-0xBF and 0xC6-0xFE.
var aluNames = [8]string{"add a,", "adc a,", "sub a,", "sbc a,", "and a,", "xor a,", "or a,", "cp a,"}

// alu performs the ALU operation op with n as the second operand.
func (c *CPU) alu(op uint8, n uint8) {
	switch op {
	case 0:
		c.add(n, false)
	case 1:
		c.add(n, true)
	case 2:
		c.sub(n, false)
	case 3:
		c.sub(n, true)
	case 4:
		c.and(n)
	case 5:
		c.xor(n)
	case 6:
		c.or(n)
	case 7:
		c.compare(n)
	}
}

// memoryCycles returns cycles, plus extra if the register index
// refers to (HL).
func memoryCycles(index uint8, cycles, extra uint8) uint8 {
	if index == 6 {
		return cycles + extra
	}
	return cycles
}

func init() {
	for _, opcode := range disallowedOpcodes {
		InstructionSet[opcode] = illegalOpcode(opcode)
	}

	generateLoadInstructions()
	generateALUInstructions()
	generate16BitInstructions()
	generateControlInstructions()
}

// generateLoadInstructions defines LD r, r' (0x40 - 0x7F, except HALT)
// and LD r, d8 (0x06, 0x0E ... 0x3E).
func generateLoadInstructions() {
	for dst := uint8(0); dst < 8; dst++ {
		dst := dst
		InstructionSet[0x06|dst<<3] = define(
			fmt.Sprintf("ld %s,%%s", registerNames[dst]),
			operandD8,
			memoryCycles(dst, 8, 4),
			func(c *CPU) {
				c.writeIndex(dst, c.readOperand())
			},
		)

		for src := uint8(0); src < 8; src++ {
			src := src
			if dst == 6 && src == 6 {
				continue // 0x76 - HALT
			}
			cycles := uint8(4)
			if dst == 6 || src == 6 {
				cycles = 8
			}
			InstructionSet[0x40|dst<<3|src] = define(
				fmt.Sprintf("ld %s,%s", registerNames[dst], registerNames[src]),
				operandNone,
				cycles,
				func(c *CPU) {
					c.writeIndex(dst, c.readIndex(src))
				},
			)
		}
	}
}

// generateALUInstructions defines the ALU operations on registers
// (0x80 - 0xBF) and immediates (0xC6, 0xCE ... 0xFE), as well as
// INC r and DEC r.
func generateALUInstructions() {
	for op := uint8(0); op < 8; op++ {
		op := op
		for r := uint8(0); r < 8; r++ {
			r := r
			InstructionSet[0x80|op<<3|r] = define(
				aluNames[op]+registerNames[r],
				operandNone,
				memoryCycles(r, 4, 4),
				func(c *CPU) {
					c.alu(op, c.readIndex(r))
				},
			)
		}

		InstructionSet[0xC6|op<<3] = define(aluNames[op]+"%s", operandD8, 8, func(c *CPU) {
			c.alu(op, c.readOperand())
		})
	}

	for r := uint8(0); r < 8; r++ {
		r := r
		InstructionSet[0x04|r<<3] = define("inc "+registerNames[r], operandNone, memoryCycles(r, 4, 8), func(c *CPU) {
			c.modifyIndex(r, c.increment)
		})
		InstructionSet[0x05|r<<3] = define("dec "+registerNames[r], operandNone, memoryCycles(r, 4, 8), func(c *CPU) {
			c.modifyIndex(r, c.decrement)
		})
	}
}

// generate16BitInstructions defines the instructions operating on
// register pairs: LD rr, d16, INC rr, DEC rr, ADD HL, rr, PUSH and POP.
func generate16BitInstructions() {
	for p := uint8(0); p < 4; p++ {
		p := p
		InstructionSet[0x01|p<<4] = define("ld "+pairNames[p]+",%s", operandD16, 12, func(c *CPU) {
			c.setPairValue(p, c.readOperand16())
		})
		InstructionSet[0x03|p<<4] = define("inc "+pairNames[p], operandNone, 8, func(c *CPU) {
			c.incrementNN(p)
		})
		InstructionSet[0x0B|p<<4] = define("dec "+pairNames[p], operandNone, 8, func(c *CPU) {
			c.decrementNN(p)
		})
		InstructionSet[0x09|p<<4] = define("add hl,"+pairNames[p], operandNone, 8, func(c *CPU) {
			c.addHLRR(c.pairValue(p))
		})
		InstructionSet[0xC1|p<<4] = define("pop "+stackPairNames[p], operandNone, 12, func(c *CPU) {
			c.popNN(p)
		})
		InstructionSet[0xC5|p<<4] = define("push "+stackPairNames[p], operandNone, 16, func(c *CPU) {
			c.pushNN(p)
		})
	}
}

// generateControlInstructions defines the conditional jumps, calls and
// returns, and the RST vectors.
func generateControlInstructions() {
	for cc := uint8(0); cc < 4; cc++ {
		cc := cc
		name := conditionNames[cc]
		InstructionSet[0x20|cc<<3] = defineJump("jr "+name+",%s", operandR8, 8, func(c *CPU) {
			c.jumpRelative(c.condition(cc))
		})
		InstructionSet[0xC0|cc<<3] = defineJump("ret "+name, operandNone, 8, func(c *CPU) {
			c.ret(c.condition(cc))
		})
		InstructionSet[0xC2|cc<<3] = defineJump("jp "+name+",%s", operandA16, 12, func(c *CPU) {
			c.jumpAbsolute(c.condition(cc))
		})
		InstructionSet[0xC4|cc<<3] = defineJump("call "+name+",%s", operandA16, 12, func(c *CPU) {
			c.call(c.condition(cc))
		})
	}

	for n := uint8(0); n < 8; n++ {
		vector := uint16(n) << 3
		InstructionSet[0xC7|n<<3] = defineJump(fmt.Sprintf("rst %02Xh", vector), operandNone, 32, func(c *CPU) {
			c.restart(vector)
		})
	}
}
