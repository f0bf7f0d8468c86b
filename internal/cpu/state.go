package cpu

import "github.com/thelolagemann/lr35902/internal/types"

var _ types.Stater = (*CPU)(nil)

// Load restores the registers, the pending prefix and interrupt
// requests, and the cycle counter from s. Memory is not included.
func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = s.Read8()
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.pc = s.Read16()
	c.skipNextAdvance = s.ReadBool()
	c.cbPending = s.ReadBool()
	c.latch = latch(s.Read8())
	c.cycles = s.Read64()
}

// Save writes the CPU state to s, in the order Load expects it.
func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.pc)
	s.WriteBool(c.skipNextAdvance)
	s.WriteBool(c.cbPending)
	s.Write8(uint8(c.latch))
	s.Write64(c.cycles)
}
