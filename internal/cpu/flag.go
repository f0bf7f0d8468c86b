package cpu

// Flag is the bit position of a flag within the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// SetFlag sets a flag in the F register.
func (r *Registers) SetFlag(flag Flag) {
	r.F |= 1 << flag
}

// ClearFlag clears a flag from the F register.
func (r *Registers) ClearFlag(flag Flag) {
	r.F &^= 1 << flag
}

// IsFlagSet returns true if the given flag is set.
func (r *Registers) IsFlagSet(flag Flag) bool {
	return r.F&(1<<flag) != 0
}

// flagValue returns 1 if the flag is set, 0 otherwise.
func (r *Registers) flagValue(flag Flag) uint8 {
	return (r.F >> flag) & 1
}

// putFlag sets or clears flag depending on value.
func (r *Registers) putFlag(flag Flag, value bool) {
	if value {
		r.SetFlag(flag)
	} else {
		r.ClearFlag(flag)
	}
}

// setFlags sets all four flags at once, leaving the low nibble
// of F untouched.
func (r *Registers) setFlags(zero, subtract, halfCarry, carry bool) {
	r.putFlag(FlagZero, zero)
	r.putFlag(FlagSubtract, subtract)
	r.putFlag(FlagHalfCarry, halfCarry)
	r.putFlag(FlagCarry, carry)
}

// condition reports whether the branch condition encoded in bits 3-4
// of a conditional opcode holds (NZ, Z, NC, C).
func (r *Registers) condition(cc uint8) bool {
	switch cc & 0x3 {
	case 0:
		return !r.IsFlagSet(FlagZero)
	case 1:
		return r.IsFlagSet(FlagZero)
	case 2:
		return !r.IsFlagSet(FlagCarry)
	default:
		return r.IsFlagSet(FlagCarry)
	}
}

var conditionNames = [4]string{"nz", "z", "nc", "c"}
