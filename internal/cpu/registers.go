package cpu

import (
	"fmt"

	"github.com/thelolagemann/lr35902/internal/types"
)

// Register is an alias of types.Register.
type Register = types.Register

// Registers contains the 8-bit registers, the 16-bit register pairs
// viewing them, the stack pointer and the program counter.
//
// The program counter is only changed through SetPC and AdvancePC, so
// that a pending SkipNextAdvance can be honoured.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *types.RegisterPair
	DE *types.RegisterPair
	HL *types.RegisterPair
	AF *types.RegisterPair

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16

	pc              uint16
	skipNextAdvance bool
}

// initPairs wires the register pairs to their 8-bit halves. It must be
// called once the Registers have their final address.
func (r *Registers) initPairs() {
	r.BC = types.NewRegisterPair(&r.B, &r.C)
	r.DE = types.NewRegisterPair(&r.D, &r.E)
	r.HL = types.NewRegisterPair(&r.H, &r.L)
	r.AF = types.NewRegisterPair(&r.A, &r.F)
}

// PC returns the program counter.
func (r *Registers) PC() uint16 {
	return r.pc
}

// SetPC sets the program counter to an absolute address.
func (r *Registers) SetPC(pc uint16) {
	r.pc = pc
}

// AdvancePC moves the program counter forward by n bytes, wrapping at
// 0xFFFF. If SkipNextAdvance was called since the last advance, this
// call is ignored instead.
func (r *Registers) AdvancePC(n uint16) {
	if r.skipNextAdvance {
		r.skipNextAdvance = false
		return
	}
	r.pc += n
}

// SkipNextAdvance makes the next AdvancePC a no-op. Reserved for
// resuming from HALT.
func (r *Registers) SkipNextAdvance() {
	r.skipNextAdvance = true
}

// registerIndex returns a Register pointer for the given operand index,
// as encoded in the low 3 bits of most opcodes. Index 6 refers to (HL)
// and has no Register.
func (r *Registers) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &r.B
	case 1:
		return &r.C
	case 2:
		return &r.D
	case 3:
		return &r.E
	case 4:
		return &r.H
	case 5:
		return &r.L
	case 7:
		return &r.A
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

// registerPairIndex returns the pair for bits 4-5 of an opcode
// (BC, DE, HL, SP). SP is returned as nil, callers handle it.
func (r *Registers) registerPairIndex(index uint8) *types.RegisterPair {
	switch index {
	case 0:
		return r.BC
	case 1:
		return r.DE
	case 2:
		return r.HL
	}
	return nil
}

func (r *Registers) String() string {
	return fmt.Sprintf("A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X",
		r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L, r.SP, r.pc)
}

// registerNames are the operand names in opcode index order.
var registerNames = [8]string{"b", "c", "d", "e", "h", "l", "(hl)", "a"}

// pairNames are the pair names for bits 4-5 of 16-bit load and
// arithmetic opcodes.
var pairNames = [4]string{"bc", "de", "hl", "sp"}

// stackPairNames are the pair names used by PUSH and POP.
var stackPairNames = [4]string{"bc", "de", "hl", "af"}
