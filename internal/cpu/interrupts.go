package cpu

// InterruptController decides when and how interrupts are delivered.
// The CPU only forwards enable/disable requests, one instruction after
// they were issued, and polls the controller once per instruction.
type InterruptController interface {
	// RequestEnable enables interrupt delivery (IME = 1).
	RequestEnable()
	// RequestDisable disables interrupt delivery (IME = 0).
	RequestDisable()
	// Poll is called after every instruction. It may push PC and
	// jump to an interrupt vector.
	Poll(c *CPU)
}

// latch holds at most one pending interrupt master enable request.
type latch uint8

const (
	latchIdle latch = iota
	latchPendingEnable
	latchPendingDisable
)

func (l latch) String() string {
	switch l {
	case latchPendingEnable:
		return "pending enable"
	case latchPendingDisable:
		return "pending disable"
	}
	return "idle"
}

// advance forwards the pending request, if any, to irq and returns the
// next latch state, which is always idle.
func (l latch) advance(irq InterruptController) latch {
	if irq != nil {
		switch l {
		case latchPendingEnable:
			irq.RequestEnable()
		case latchPendingDisable:
			irq.RequestDisable()
		}
	}
	return latchIdle
}

// ScheduleInterruptEnable requests that interrupts be enabled after
// the next instruction has been fetched. It replaces any pending
// disable request.
func (c *CPU) ScheduleInterruptEnable() {
	c.latch = latchPendingEnable
}

// ScheduleInterruptDisable requests that interrupts be disabled after
// the next instruction has been fetched. It replaces any pending
// enable request.
func (c *CPU) ScheduleInterruptDisable() {
	c.latch = latchPendingDisable
}
