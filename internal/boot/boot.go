// Package boot describes the machine state left behind by the boot ROM.
// The core never executes a boot ROM itself; instead the CPU starts at
// EntryPoint with the registers the DMG boot ROM hands over to the
// cartridge.
package boot

// EntryPoint is the address execution resumes at once the boot ROM has
// unmapped itself.
const EntryPoint uint16 = 0x0100

// Registers holds the 16-bit register values left behind by a boot ROM.
type Registers struct {
	AF uint16
	BC uint16
	DE uint16
	HL uint16
	SP uint16
}

// DMG is the register state after the original Game Boy boot ROM.
var DMG = Registers{
	AF: 0x01B0,
	BC: 0x0013,
	DE: 0x00D8,
	HL: 0x014D,
	SP: 0xFFFE,
}
