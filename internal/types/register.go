package types

import "fmt"

// Register represents an 8-bit CPU register. The CPU has 8 of them:
// A, F, B, C, D, E, H and L, where F holds the flags.
type Register = uint8

// RegisterPair represents a pair of Registers viewed as a single
// 16-bit value. The first named register of the pair holds the high
// byte, so BC.Uint16() == uint16(B)<<8 | uint16(C).
type RegisterPair struct {
	High *Register
	Low  *Register
}

// NewRegisterPair returns a RegisterPair viewing high and low.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Increment adds 1 to the pair, wrapping at 0xFFFF.
func (r *RegisterPair) Increment() {
	r.SetUint16(r.Uint16() + 1)
}

// Decrement subtracts 1 from the pair, wrapping at 0x0000.
func (r *RegisterPair) Decrement() {
	r.SetUint16(r.Uint16() - 1)
}

func (r *RegisterPair) String() string {
	return fmt.Sprintf("0x%04X", r.Uint16())
}
