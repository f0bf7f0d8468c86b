// Package interrupts provides an interrupt controller for the cpu
// package, holding the interrupt master enable along with the
// requested and enabled interrupt registers.
package interrupts

import (
	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD STAT interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2), requested when
	// the timer overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3), requested when
	// a serial transfer is completed.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4).
	JoypadFlag = types.Bit4
)

// Service is the interrupt service, used to request interrupts and to
// deliver them to the CPU.
//
// When an interrupt is requested, the corresponding bit in the Flag
// register is set. When an interrupt is requested and enabled, and the
// IME is set, Poll pushes PC and jumps to the interrupt vector, the
// corresponding bit in the Flag register is cleared and the IME reset.
//
// The IME is changed by the DI, EI and RETI instructions, through
// RequestEnable and RequestDisable.
type Service struct {
	IME    bool  // interrupt master enable
	Flag   uint8 // interrupt Flag (IF)
	Enable uint8 // interrupt Enable (IE)
}

var _ cpu.InterruptController = (*Service)(nil)

// NewService returns a new Service with interrupts disabled.
func NewService() *Service {
	return &Service{}
}

// RequestEnable sets the IME.
func (s *Service) RequestEnable() {
	s.IME = true
}

// RequestDisable clears the IME.
func (s *Service) RequestDisable() {
	s.IME = false
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag & 0x1F
}

// Vector returns the vector of the highest priority interrupt that is
// requested and enabled, or 0 if there is none. This function will
// also clear the corresponding bit in the Flag register.
func (s *Service) Vector() uint16 {
	for i := uint8(0); i < 5; i++ {
		flag := types.BitAt(i)
		if s.Flag&flag != 0 && s.Enable&flag != 0 {
			s.Flag ^= flag
			return uint16(0x0040 + i*8)
		}
	}

	return 0
}

// Poll delivers a pending interrupt to c, if the IME is set.
func (s *Service) Poll(c *cpu.CPU) {
	if !s.IME || !s.HasInterrupts() {
		return
	}

	s.IME = false
	c.Interrupt(s.Vector())
}

var _ types.Stater = (*Service)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - IME (bool)
//   - Flag (uint8)
//   - Enable (uint8)
func (s *Service) Load(st *types.State) {
	s.IME = st.ReadBool()
	s.Flag = st.Read8()
	s.Enable = st.Read8()
}

// Save implements the types.Stater interface.
func (s *Service) Save(st *types.State) {
	st.WriteBool(s.IME)
	st.Write8(s.Flag)
	st.Write8(s.Enable)
}
