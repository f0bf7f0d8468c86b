package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Rotate(t *testing.T) {
	// 0x07 - RLCA
	testInstruction(t, "RLCA", 0x07, func(t *testing.T, instr Instruction) {
		cpu.A = 0x85
		cpu.F = 0
		instr.Execute(cpu)

		assert.Equal(t, uint8(0x0B), cpu.A)
		assert.Equal(t, flags(false, false, false, true), cpu.F)
	})
	// 0x0F - RRCA
	testInstruction(t, "RRCA", 0x0F, func(t *testing.T, instr Instruction) {
		cpu.A = 0x3B
		cpu.F = 0
		instr.Execute(cpu)

		assert.Equal(t, uint8(0x9D), cpu.A)
		assert.Equal(t, flags(false, false, false, true), cpu.F)
	})
	// 0x17 - RLA
	testInstruction(t, "RLA", 0x17, func(t *testing.T, instr Instruction) {
		cpu.A = 0x95
		cpu.F = flags(false, false, false, true)
		instr.Execute(cpu)

		assert.Equal(t, uint8(0x2B), cpu.A)
		assert.Equal(t, flags(false, false, false, true), cpu.F)
	})
	// 0x1F - RRA
	testInstruction(t, "RRA", 0x1F, func(t *testing.T, instr Instruction) {
		cpu.A = 0x81
		cpu.F = 0
		instr.Execute(cpu)

		assert.Equal(t, uint8(0x40), cpu.A)
		assert.Equal(t, flags(false, false, false, true), cpu.F)
	})
	// 0x07 - RLCA, zero is set from the result
	testInstruction(t, "RLCA zero", 0x07, func(t *testing.T, instr Instruction) {
		cpu.A = 0x00
		instr.Execute(cpu)
		assert.True(t, cpu.IsFlagSet(FlagZero))
	})
}

func TestInstruction_RotateCB(t *testing.T) {
	// 0x00 - RLC B
	testInstructionCB(t, "RLC B", 0x00, func(t *testing.T, instr Instruction) {
		cpu.B = 0x80
		instr.Execute(cpu)

		assert.Equal(t, uint8(0x01), cpu.B)
		assert.Equal(t, flags(false, false, false, true), cpu.F)
	})
	// 0x0E - RRC (HL)
	testInstructionCB(t, "RRC (HL)", 0x0E, func(t *testing.T, instr Instruction) {
		cpu.HL.SetUint16(0xD000)
		mem.data[0xD000] = 0x01
		instr.Execute(cpu)

		assert.Equal(t, uint8(0x80), mem.data[0xD000])
		assert.True(t, cpu.IsFlagSet(FlagCarry))
	})
	// 0x11 - RL C
	testInstructionCB(t, "RL C", 0x11, func(t *testing.T, instr Instruction) {
		cpu.C = 0x80
		cpu.F = 0
		instr.Execute(cpu)

		assert.Equal(t, uint8(0x00), cpu.C)
		assert.Equal(t, flags(true, false, false, true), cpu.F)
	})
	// 0x1F - RR A
	testInstructionCB(t, "RR A", 0x1F, func(t *testing.T, instr Instruction) {
		cpu.A = 0x01
		cpu.F = flags(false, false, false, true)
		instr.Execute(cpu)

		assert.Equal(t, uint8(0x80), cpu.A)
		assert.Equal(t, flags(false, false, false, true), cpu.F)
	})
}

func TestRotateLeftCarry_Identity(t *testing.T) {
	reset()
	for v := 0; v < 256; v++ {
		value := uint8(v)
		for i := 0; i < 8; i++ {
			value = cpu.rotateLeftCarry(value)
		}
		if value != uint8(v) {
			t.Fatalf("rlc^8(0x%02X) = 0x%02X", v, value)
		}
	}
}
