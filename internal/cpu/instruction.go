package cpu

import (
	"fmt"
	"strings"
)

// Undecodable is rendered by the disassembler for bytes that do not
// decode to an instruction, or when the memory probe fails.
const Undecodable = "-"

// operand describes the immediate data following an opcode.
type operand uint8

const (
	operandNone operand = iota
	operandD8           // 8-bit immediate
	operandA8           // high page offset, 0xFF00 + n
	operandR8           // signed jump displacement
	operandS8           // signed stack pointer offset
	operandD16          // 16-bit immediate
	operandA16          // 16-bit absolute address
)

// size returns the number of bytes the operand occupies.
func (o operand) size() uint8 {
	switch o {
	case operandNone:
		return 0
	case operandD16, operandA16:
		return 2
	}
	return 1
}

// Instruction represents a single instruction of the CPU.
type Instruction struct {
	name    string     // mnemonic, %s is replaced by the rendered operand
	operand operand    // immediate data following the opcode
	length  uint8      // encoded length including the opcode byte
	cycles  uint8      // clock cycles taken
	jump    bool       // fn sets PC itself
	illegal bool       // opcode has no defined behaviour
	fn      func(*CPU) // fn called when executing the instruction
}

// define creates an instruction that advances PC by its own length
// once fn returns.
func define(name string, arg operand, cycles uint8, fn func(*CPU)) Instruction {
	return Instruction{
		name:    name,
		operand: arg,
		length:  1 + arg.size(),
		cycles:  cycles,
		fn:      fn,
	}
}

// defineJump creates a control transfer instruction, fn is responsible
// for either setting or advancing PC.
func defineJump(name string, arg operand, cycles uint8, fn func(*CPU)) Instruction {
	i := define(name, arg, cycles, fn)
	i.jump = true
	return i
}

// illegalOpcode creates the instruction used for opcodes that the CPU
// does not define. It behaves like a NOP.
func illegalOpcode(opcode uint8) Instruction {
	return Instruction{
		name:    fmt.Sprintf("illegal 0x%02X", opcode),
		length:  1,
		cycles:  4,
		illegal: true,
		fn: func(c *CPU) {
			c.log.Debugf("illegal opcode 0x%02X at 0x%04X", opcode, c.pc)
		},
	}
}

// Name returns the mnemonic without operands.
func (i Instruction) Name() string {
	return strings.TrimSpace(strings.ReplaceAll(i.name, "%s", "n"))
}

// Length returns the encoded length in bytes, not counting a CB prefix.
func (i Instruction) Length() uint8 {
	return i.length
}

// Cycles returns the number of clock cycles the instruction takes.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// Execute runs the instruction against c and returns the number of
// cycles taken. Instructions that do not transfer control leave PC
// pointing at the following instruction.
func (i Instruction) Execute(c *CPU) uint8 {
	i.fn(c)
	if !i.jump {
		c.AdvancePC(uint16(i.length))
	}
	return i.cycles
}

// Disassemble renders the instruction located at address, returning
// the text and the encoded length. It only reads from mem.
func (i Instruction) Disassemble(mem Memory, address uint16) (string, uint8) {
	if i.illegal || i.fn == nil {
		return Undecodable, 1
	}

	var arg string
	switch i.operand {
	case operandNone:
		return i.name, i.length
	case operandD8:
		arg = fmt.Sprintf("0x%02X", mem.Read(address+1))
	case operandA8:
		arg = fmt.Sprintf("0x%04X", 0xFF00+uint16(mem.Read(address+1)))
	case operandR8:
		arg = fmt.Sprintf("0x%04X", relativeTarget(address, mem.Read(address+1)))
	case operandS8:
		arg = signedHex(mem.Read(address + 1))
	case operandD16, operandA16:
		arg = fmt.Sprintf("0x%04X", mem.ReadWord(address+1))
	}

	return fmt.Sprintf(i.name, arg), i.length
}

// relativeTarget returns the destination of a 2-byte relative jump
// located at address.
func relativeTarget(address uint16, offset uint8) uint16 {
	return address + 2 + uint16(int8(offset))
}

// signedHex renders a two's complement byte as +0xNN or -0xNN.
func signedHex(v uint8) string {
	if s := int8(v); s < 0 {
		return fmt.Sprintf("-0x%02X", -int(s))
	}
	return fmt.Sprintf("+0x%02X", v)
}
