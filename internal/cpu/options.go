package cpu

import "github.com/thelolagemann/lr35902/pkg/log"

// Opt configures a CPU created by New.
type Opt func(c *CPU)

// WithStartPC sets the address execution starts from. Defaults to
// boot.EntryPoint.
func WithStartPC(pc uint16) Opt {
	return func(c *CPU) {
		c.SetPC(pc)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// Debug enables the per instruction trace, written at debug level.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}
