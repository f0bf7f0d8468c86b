package cpu

import "testing"

var allFlags = []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}

func TestFlag(t *testing.T) {
	reset()
	t.Run("clear", func(t *testing.T) {
		for _, f := range allFlags {
			cpu.ClearFlag(f)
			if cpu.IsFlagSet(f) {
				t.Errorf("expected flag %d to be unset, got set", f)
			}
		}
		if cpu.F != 0 {
			t.Errorf("expected F to be 0x00, got 0x%02X", cpu.F)
		}
	})
	t.Run("set", func(t *testing.T) {
		for _, f := range allFlags {
			cpu.SetFlag(f)
			if !cpu.IsFlagSet(f) {
				t.Errorf("expected flag %d to be set, got unset", f)
			}
		}
		if cpu.F != 0xF0 {
			t.Errorf("expected F to be 0xF0, got 0x%02X", cpu.F)
		}
	})
	t.Run("setFlags", func(t *testing.T) {
		cpu.F = 0x0F
		cpu.setFlags(true, false, true, false)
		if cpu.F != 0xAF {
			t.Errorf("expected F to be 0xAF, got 0x%02X", cpu.F)
		}
	})
	t.Run("condition", func(t *testing.T) {
		cpu.F = 0
		want := []bool{true, false, true, false}
		for cc, w := range want {
			if cpu.condition(uint8(cc)) != w {
				t.Errorf("condition %s: expected %t", conditionNames[cc], w)
			}
		}
		cpu.F = 0xF0
		for cc, w := range want {
			if cpu.condition(uint8(cc)) == w {
				t.Errorf("condition %s: expected %t", conditionNames[cc], !w)
			}
		}
	})
}
