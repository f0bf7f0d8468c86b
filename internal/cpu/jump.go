package cpu

// jumpAbsolute jumps to the 16-bit immediate address if the condition
// holds, otherwise it steps over the instruction.
//
//	JP nn
//	JP cc, nn
//	cc = NZ, Z, NC, C
func (c *CPU) jumpAbsolute(condition bool) {
	if condition {
		c.SetPC(c.readOperand16())
	} else {
		c.AdvancePC(3)
	}
}

// jumpRelative jumps relative to the address following the instruction
// if the condition holds.
//
//	JR e
//	JR cc, e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(condition bool) {
	if condition {
		c.SetPC(relativeTarget(c.pc, c.readOperand()))
	} else {
		c.AdvancePC(2)
	}
}

// call pushes the address of the next instruction onto the stack and
// jumps to the 16-bit immediate address if the condition holds.
//
//	CALL nn
//	CALL cc, nn
func (c *CPU) call(condition bool) {
	if !condition {
		c.AdvancePC(3)
		return
	}
	address := c.readOperand16()
	c.pushStack(c.pc + 3)
	c.SetPC(address)
}

// ret pops an address off the stack and jumps to it if the condition
// holds.
//
//	RET
//	RET cc
func (c *CPU) ret(condition bool) {
	if condition {
		c.SetPC(c.popStack())
	} else {
		c.AdvancePC(1)
	}
}

// retInterrupt returns and schedules interrupts to be enabled.
//
//	RETI
func (c *CPU) retInterrupt() {
	c.ret(true)
	c.ScheduleInterruptEnable()
}

// restart pushes the address of the RST instruction itself onto the stack
// and jumps to one of the fixed vectors 0x00, 0x08 ... 0x38.
//
//	RST n
func (c *CPU) restart(vector uint16) {
	c.pushStack(c.pc)
	c.SetPC(vector)
}
