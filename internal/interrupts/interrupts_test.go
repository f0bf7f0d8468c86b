package interrupts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/internal/ram"
	"github.com/thelolagemann/lr35902/internal/types"
)

func TestService_Vector(t *testing.T) {
	s := NewService()
	s.Enable = 0x1F
	s.Request(TimerFlag)
	s.Request(LCDFlag)

	// lower bits have priority
	assert.Equal(t, uint16(0x48), s.Vector())
	assert.Equal(t, uint16(0x50), s.Vector())
	assert.Equal(t, uint16(0), s.Vector())
}

func TestService_Poll(t *testing.T) {
	mem := ram.NewRAM(nil)
	mem.CopyAt(0x0100, []byte{
		0xFB, // ei
		0x00, // nop
		0x00, // nop
	})
	s := NewService()
	s.Enable = VBlankFlag
	s.Request(VBlankFlag)

	c := cpu.New(mem, s)

	c.Step() // ei
	assert.False(t, s.IME, "IME enabled before the next instruction")
	assert.Equal(t, uint16(0x0101), c.PC())

	c.Step() // nop, IME set before fetch, interrupt taken after
	assert.False(t, s.IME)
	assert.Equal(t, uint16(0x0040), c.PC())
	assert.Equal(t, uint16(0xFFFC), c.SP)
	assert.Equal(t, uint16(0x0102), mem.ReadWord(c.SP))
	assert.Zero(t, s.Flag)
}

func TestService_PollDisabled(t *testing.T) {
	mem := ram.NewRAM(nil)
	s := NewService()
	s.Enable = JoypadFlag
	s.Request(JoypadFlag)

	c := cpu.New(mem, s)
	c.Step()
	assert.Equal(t, uint16(0x0101), c.PC())
	assert.Equal(t, uint8(JoypadFlag), s.Flag)
}

func TestService_State(t *testing.T) {
	s := &Service{IME: true, Flag: 0x03, Enable: 0x11}
	st := types.NewState()
	s.Save(st)

	restored := NewService()
	restored.Load(st)
	assert.Equal(t, s, restored)
}
