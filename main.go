package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/thelolagemann/lr35902/internal/boot"
	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/ram"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
)

func main() {
	image := flag.String("image", "", "The image file to load at address 0 (may be compressed)")
	startPC := flag.String("pc", fmt.Sprintf("0x%04X", boot.EntryPoint), "The address to start executing from")
	steps := flag.Int("steps", 100, "The number of instructions to execute")
	trace := flag.Bool("trace", true, "Print each instruction before executing it")
	level := flag.String("level", "info", "The log level (debug, info, warn, error)")
	state := flag.String("state", "", "Write a compressed snapshot of the CPU and memory to this file on exit")
	flag.Parse()

	lvl, err := log.ParseLevel(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := log.NewWithLevel(os.Stdout, lvl)

	pc, err := strconv.ParseUint(*startPC, 0, 16)
	if err != nil {
		logger.Errorf("invalid start address %q: %v", *startPC, err)
		os.Exit(2)
	}

	mem := ram.NewRAM(logger)
	if *image != "" {
		if err := mem.LoadImage(*image); err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
	}

	irq := interrupts.NewService()
	c := cpu.New(mem, irq, cpu.WithStartPC(uint16(pc)), cpu.WithLogger(logger))

	for i := 0; i < *steps; i++ {
		if *trace {
			address := c.PC()
			text, length := c.DisassembleNext()
			fmt.Printf("%04X  % -9X %-20s %s\n", address, mem.ReadBytes(address, uint16(length)), text, c.Registers.String())
		}
		c.Step()
	}

	logger.Infof("executed %d instructions in %d cycles", *steps, c.Cycles())

	if *state != "" {
		s := types.NewState()
		c.Save(s)
		irq.Save(s)
		mem.Save(s)
		if err := s.SaveToFile(*state); err != nil {
			logger.Errorf("save state: %v", err)
			os.Exit(1)
		}
		logger.Infof("state written to %s (xxhash %016x)", *state, s.Checksum())
	}
}
