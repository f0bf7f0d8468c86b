package cpu

// Memory is the CPU's view of the 16-bit address space. Addresses wrap
// modulo 0x10000. Implementations are owned by the host and shared with
// any other component that needs the bus.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	// ReadWord reads a little-endian word, low byte at address.
	ReadWord(address uint16) uint16
	// WriteWord writes a little-endian word, low byte at address.
	WriteWord(address uint16, value uint16)
	ReadBytes(address uint16, count uint16) []uint8
	// LoadImage loads a binary image at address 0. Images larger than
	// 0x7FFF bytes are ignored without an error.
	LoadImage(path string) error
}

// readOperand reads the byte following the opcode at PC.
func (c *CPU) readOperand() uint8 {
	return c.mem.Read(c.pc + 1)
}

// readOperand16 reads the little-endian word following the opcode at PC.
func (c *CPU) readOperand16() uint16 {
	return c.mem.ReadWord(c.pc + 1)
}

// readIndex returns the value of the operand at the given register
// index, reading memory at HL for index 6.
func (c *CPU) readIndex(index uint8) uint8 {
	if index == 6 {
		return c.mem.Read(c.HL.Uint16())
	}
	return *c.registerIndex(index)
}

// writeIndex stores value to the operand at the given register index,
// writing memory at HL for index 6.
func (c *CPU) writeIndex(index uint8, value uint8) {
	if index == 6 {
		c.mem.Write(c.HL.Uint16(), value)
		return
	}
	*c.registerIndex(index) = value
}

// modifyIndex applies fn to the operand at index in place.
func (c *CPU) modifyIndex(index uint8, fn func(uint8) uint8) {
	c.writeIndex(index, fn(c.readIndex(index)))
}
