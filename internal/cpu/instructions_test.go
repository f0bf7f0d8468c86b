package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionSet_Total(t *testing.T) {
	for i := range InstructionSet {
		if InstructionSet[i].fn == nil {
			t.Errorf("0x%02X is not defined", i)
		}
		if InstructionSetCB[i].fn == nil {
			t.Errorf("CB 0x%02X is not defined", i)
		}
	}
}

func TestDisassemble(t *testing.T) {
	tests := []struct {
		program []uint8
		text    string
		length  uint8
	}{
		{[]uint8{0x00}, "nop", 1},
		{[]uint8{0x06, 0x12}, "ld b,0x12", 2},
		{[]uint8{0x01, 0x34, 0x12}, "ld bc,0x1234", 3},
		{[]uint8{0x08, 0x00, 0xC0}, "ld (0xC000),sp", 3},
		{[]uint8{0xC2, 0x34, 0x12}, "jp nz,0x1234", 3},
		{[]uint8{0x18, 0xFE}, "jr 0xC000", 2},
		{[]uint8{0x28, 0x10}, "jr z,0xC012", 2},
		{[]uint8{0xF0, 0x12}, "ldh a,(0xFF12)", 2},
		{[]uint8{0xE0, 0x80}, "ldh (0xFF80),a", 2},
		{[]uint8{0xF2}, "ld a,(0xFF00+c)", 1},
		{[]uint8{0x22}, "ldi (hl),a", 1},
		{[]uint8{0x3A}, "ldd a,(hl)", 1},
		{[]uint8{0xF8, 0x05}, "ld hl,sp+0x05", 2},
		{[]uint8{0xE8, 0xFD}, "add sp,-0x03", 2},
		{[]uint8{0x86}, "add a,(hl)", 1},
		{[]uint8{0xFE, 0x10}, "cp a,0x10", 2},
		{[]uint8{0xCD, 0x00, 0x03}, "call 0x0300", 3},
		{[]uint8{0xF5}, "push af", 1},
		{[]uint8{0xFF}, "rst 38h", 1},
		{[]uint8{0xC7}, "rst 00h", 1},
		{[]uint8{0xCB, 0x58}, "bit 3,b", 2},
		{[]uint8{0xCB, 0x7C}, "bit 7,h", 2},
		{[]uint8{0xCB, 0x37}, "swap a", 2},
		{[]uint8{0xCB, 0xFE}, "set 7,(hl)", 2},
		{[]uint8{0xD3}, Undecodable, 1},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			reset()
			load(tt.program...)
			before := *mem

			text, length := cpu.Disassemble(0xC000)
			assert.Equal(t, tt.text, text)
			assert.Equal(t, tt.length, length)
			assert.Equal(t, before.data, mem.data, "disassembly must not write memory")
			assert.Equal(t, uint16(0xC000), cpu.PC())
		})
	}
}

func TestDisassemble_Recover(t *testing.T) {
	reset()
	mem.broken = true

	text, length := cpu.Disassemble(0xC000)
	assert.Equal(t, Undecodable, text)
	assert.Equal(t, uint8(1), length)
}

func TestDisassembleNext(t *testing.T) {
	reset()
	load(0xCB, 0xCB) // set 1,e

	text, length := cpu.DisassembleNext()
	assert.Equal(t, "set 1,e", text)
	assert.Equal(t, uint8(2), length)

	cpu.Step()
	text, length = cpu.DisassembleNext()
	assert.Equal(t, "set 1,e", text)
	assert.Equal(t, uint8(1), length)
	assert.True(t, cpu.CBPending(), "disassembly does not consume the prefix")
}

func TestInstruction_Name(t *testing.T) {
	assert.Equal(t, "ld b,n", InstructionSet[0x06].Name())
	assert.Equal(t, "jp nz,n", InstructionSet[0xC2].Name())
	assert.Equal(t, "halt", InstructionSet[0x76].Name())
	assert.Equal(t, "res 0,b", InstructionSetCB[0x80].Name())
}
