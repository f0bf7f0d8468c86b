package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Swap(t *testing.T) {
	// 0x37 - SWAP A
	testInstructionCB(t, "SWAP A", 0x37, func(t *testing.T, instr Instruction) {
		cpu.A = 0xF1
		cpu.F = 0xF0
		instr.Execute(cpu)

		assert.Equal(t, uint8(0x1F), cpu.A)
		assert.Equal(t, flags(false, false, false, false), cpu.F)

		cpu.A = 0x00
		instr.Execute(cpu)
		assert.Equal(t, flags(true, false, false, false), cpu.F)
	})
	// 0x36 - SWAP (HL)
	testInstructionCB(t, "SWAP (HL)", 0x36, func(t *testing.T, instr Instruction) {
		cpu.HL.SetUint16(0xD000)
		mem.data[0xD000] = 0xAB
		instr.Execute(cpu)
		assert.Equal(t, uint8(0xBA), mem.data[0xD000])
	})
}

func TestSwap_Involution(t *testing.T) {
	reset()
	for v := 0; v < 256; v++ {
		if got := cpu.swap(cpu.swap(uint8(v))); got != uint8(v) {
			t.Fatalf("swap(swap(0x%02X)) = 0x%02X", v, got)
		}
	}
}
