package cpu

import (
	"context"

	"github.com/thelolagemann/lr35902/internal/boot"
	"github.com/thelolagemann/lr35902/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	mem Memory
	irq InterruptController
	log log.Logger

	// Debug logs every executed instruction along with the registers.
	Debug bool

	cbPending bool
	latch     latch
	cycles    uint64
}

// New creates a new CPU reading and writing through mem. irq may be nil,
// in which case interrupt requests are dropped.
func New(mem Memory, irq InterruptController, opts ...Opt) *CPU {
	c := &CPU{
		mem: mem,
		irq: irq,
		log: log.NewNullLogger(),
	}
	c.initPairs()

	c.AF.SetUint16(boot.DMG.AF)
	c.BC.SetUint16(boot.DMG.BC)
	c.DE.SetUint16(boot.DMG.DE)
	c.HL.SetUint16(boot.DMG.HL)
	c.SP = boot.DMG.SP
	c.SetPC(boot.EntryPoint)

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Memory returns the memory the CPU is attached to.
func (c *CPU) Memory() Memory {
	return c.mem
}

// Cycles returns the number of clock cycles executed since creation.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// CBPending reports whether the last executed instruction was the CB
// prefix, so that the next Step decodes from InstructionSetCB.
func (c *CPU) CBPending() bool {
	return c.cbPending
}

// Step executes a single instruction and returns the number of cycles
// it took. A CB prefix counts as an instruction of its own.
func (c *CPU) Step() uint8 {
	// forward EI/DI from the previous instruction
	c.latch = c.latch.advance(c.irq)

	address := c.pc
	opcode := c.mem.Read(address)

	var instruction Instruction
	if c.cbPending {
		instruction = InstructionSetCB[opcode]
		c.cbPending = false
	} else {
		instruction = InstructionSet[opcode]
		// prefixed instructions are traced as a whole, from the prefix
		if c.Debug {
			c.trace(address)
		}
	}

	cycles := instruction.Execute(c)

	if c.irq != nil {
		c.irq.Poll(c)
	}

	c.cycles += uint64(cycles)
	return cycles
}

// Run steps the CPU until at least budget cycles have been executed or
// ctx is cancelled, returning the number of cycles executed.
func (c *CPU) Run(ctx context.Context, budget uint64) (uint64, error) {
	var executed uint64
	for executed < budget {
		select {
		case <-ctx.Done():
			return executed, ctx.Err()
		default:
		}
		executed += uint64(c.Step())
	}
	return executed, nil
}

// Interrupt pushes PC onto the stack and jumps to vector. It is used by
// interrupt controllers from Poll.
func (c *CPU) Interrupt(vector uint16) {
	c.pushStack(c.pc)
	c.SetPC(vector)
}

func (c *CPU) trace(address uint16) {
	text, _ := c.Disassemble(address)
	c.log.Debugf("%04X  %-20s %s", address, text, c.Registers.String())
}
