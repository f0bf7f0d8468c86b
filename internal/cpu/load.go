package cpu

import "github.com/thelolagemann/lr35902/internal/types"

// highPage is the base of the memory region reached through LDH and
// LD (C), A.
const highPage uint16 = 0xFF00

// loadRegisterToMemory stores value at address.
//
//	LD (BC), A
//	LD (DE), A
//	LD (a16), A
//	LDH (a8), A
//	LD (C), A
func (c *CPU) loadRegisterToMemory(value uint8, address uint16) {
	c.mem.Write(address, value)
}

// loadMemoryToRegister loads the byte at address into reg.
//
//	LD A, (BC)
//	LD A, (DE)
//	LD A, (a16)
//	LDH A, (a8)
//	LD A, (C)
func (c *CPU) loadMemoryToRegister(reg *Register, address uint16) {
	*reg = c.mem.Read(address)
}

// loadHLIncrementDecrement performs a load through (HL), then moves HL
// by delta (+1 for LDI, -1 for LDD). toMemory selects the direction.
//
//	LDI (HL), A / LDD (HL), A
//	LDI A, (HL) / LDD A, (HL)
func (c *CPU) loadHLIncrementDecrement(toMemory bool, delta uint16) {
	address := c.HL.Uint16()
	if toMemory {
		c.loadRegisterToMemory(c.A, address)
	} else {
		c.loadMemoryToRegister(&c.A, address)
	}
	c.HL.SetUint16(address + delta)
}

// loadSPToMemory stores SP at the absolute address operand.
//
//	LD (a16), SP
func (c *CPU) loadSPToMemory() {
	c.mem.WriteWord(c.readOperand16(), c.SP)
}

// pushStack pushes a 16 bit value onto the stack.
func (c *CPU) pushStack(value uint16) {
	c.SP -= 2
	c.mem.WriteWord(c.SP, value)
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack() uint16 {
	value := c.mem.ReadWord(c.SP)
	c.SP += 2
	return value
}

// pushNN pushes the given register pair onto the stack.
//
//	PUSH nn
//	nn = BC, DE, HL, AF
func (c *CPU) pushNN(index uint8) {
	c.pushStack(c.stackPair(index).Uint16())
}

// popNN pops the given register pair off the stack. POP AF writes F as
// plain data.
//
//	POP nn
//	nn = BC, DE, HL, AF
func (c *CPU) popNN(index uint8) {
	c.stackPair(index).SetUint16(c.popStack())
}

// stackPair returns the pair for bits 4-5 of PUSH and POP, where
// index 3 is AF.
func (c *CPU) stackPair(index uint8) *types.RegisterPair {
	if index == 3 {
		return c.AF
	}
	return c.registerPairIndex(index)
}
