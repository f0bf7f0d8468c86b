package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Bit(t *testing.T) {
	for b := uint8(0); b < 8; b++ {
		// 0x40 - 0x7F - BIT b, r
		testInstructionCB(t, fmt.Sprintf("BIT %d, D", b), 0x42|b<<3, func(t *testing.T, instr Instruction) {
			cpu.D = 1 << b
			cpu.F = flags(true, true, false, true)
			instr.Execute(cpu)
			assert.Equal(t, flags(false, false, true, true), cpu.F)

			cpu.D = ^uint8(1 << b)
			instr.Execute(cpu)
			assert.Equal(t, flags(true, false, true, true), cpu.F)
			assert.Equal(t, ^uint8(1<<b), cpu.D, "BIT must not change the register")
		})
		// 0x80 - 0xBF - RES b, (HL)
		testInstructionCB(t, fmt.Sprintf("RES %d, (HL)", b), 0x86|b<<3, func(t *testing.T, instr Instruction) {
			cpu.HL.SetUint16(0xD000)
			mem.data[0xD000] = 0xFF
			cpu.F = 0x50
			instr.Execute(cpu)

			assert.Equal(t, ^uint8(1<<b), mem.data[0xD000])
			assert.Equal(t, uint8(0x50), cpu.F)
		})
		// 0xC0 - 0xFF - SET b, A
		testInstructionCB(t, fmt.Sprintf("SET %d, A", b), 0xC7|b<<3, func(t *testing.T, instr Instruction) {
			cpu.A = 0
			instr.Execute(cpu)
			assert.Equal(t, uint8(1<<b), cpu.A)
		})
	}
}
