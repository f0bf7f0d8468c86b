package cpu

// Disassemble renders the instruction at address without changing any
// state. A 0xCB byte is decoded together with the byte following it.
// If reading memory panics, Undecodable is returned with a length of 1.
func (c *CPU) Disassemble(address uint16) (text string, length uint8) {
	return disassemble(c.mem, address, false)
}

// DisassembleNext renders the instruction Step would execute next. If
// a CB prefix has already been executed, the byte at PC is decoded from
// InstructionSetCB.
func (c *CPU) DisassembleNext() (string, uint8) {
	return disassemble(c.mem, c.pc, c.cbPending)
}

func disassemble(mem Memory, address uint16, prefixed bool) (text string, length uint8) {
	defer func() {
		if recover() != nil {
			text, length = Undecodable, 1
		}
	}()

	if prefixed {
		return InstructionSetCB[mem.Read(address)].Disassemble(mem, address)
	}

	opcode := mem.Read(address)
	if opcode == 0xCB {
		text, length = InstructionSetCB[mem.Read(address+1)].Disassemble(mem, address+1)
		return text, length + 1
	}
	return InstructionSet[opcode].Disassemble(mem, address)
}
