package emu

import (
	"fmt"

	"m6502/cpu"
)

// Tracer formats one line per executed instruction: address, raw bytes,
// assembly, then the register file and cycle counter as they stand before
// the instruction runs.
type Tracer struct {
	cpu *cpu.CPU
}

func NewTracer(c *cpu.CPU) *Tracer {
	return &Tracer{cpu: c}
}

// Line renders the trace line for the instruction at the current PC. Call
// it when the CPU is about to dispatch (remaining cycles at zero).
func (t *Tracer) Line() string {
	c := t.cpu
	dis := c.Disasm(c.PC)
	return fmt.Sprintf("%04X  %-9s %-14s A:%02X X:%02X Y:%02X P:%s SP:%02X CYC:%d\n",
		dis.PC, dis.Bytes(), dis.String(), c.A, c.X, c.Y, c.P, c.SP, c.Cycles)
}
