package cpu

import "fmt"

// Locations reserved for vector pointers.
const (
	NMIVector   = uint16(0xFFFA) // Non-Maskable Interrupt (not wired)
	ResetVector = uint16(0xFFFC) // Reset
	IRQVector   = uint16(0xFFFE) // Interrupt Request / BRK
)

// CPU emulates the NMOS 6502 without decimal mode, as found in the NES.
//
// The CPU owns its Memory and is not safe for concurrent use: a driver
// calls Step repeatedly from a single goroutine and may inspect or load
// memory only between steps.
type CPU struct {
	Mem *Memory

	// cpu registers
	A, X, Y, SP uint8
	PC          uint16
	P           P

	Cycles    int64 // lifetime cycle count
	remaining int   // countdown for the in-flight instruction

	halted  bool
	haltErr error
}

// NewCPU creates a new CPU at power-up state.
func NewCPU(mem *Memory) *CPU {
	return &CPU{
		Mem: mem,
		A:   0x00,
		X:   0x00,
		Y:   0x00,
		SP:  0xFF,
		P:   0x00,
		PC:  0x0000,
	}
}

// Reset loads PC from the reset vector and restores the power-up stack
// pointer. The status byte is cleared, a simplification the real chip does
// not guarantee.
func (c *CPU) Reset() {
	c.PC = c.Mem.Read16(ResetVector)
	c.SP = 0xFF
	c.P = 0x00
	c.remaining = 0
	c.halted = false
	c.haltErr = nil
}

// StepInfo reports what a Step did, for display purposes.
type StepInfo struct {
	Dispatched bool // a new instruction was fetched this tick
	PC         uint16
	Opcode     uint8
	Mnemonic   Mnemonic
	Mode       Mode
}

// DecodeError is returned by Step when the byte at PC has no table entry.
// Undocumented opcodes are deliberately not emulated and decode the same
// way as genuinely undefined bytes.
type DecodeError struct {
	Opcode uint8
	Addr   uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at $%04X", e.Opcode, e.Addr)
}

// Step advances the CPU by exactly one cycle tick.
//
// When no instruction is in flight it fetches the opcode at PC, advances PC
// past the whole instruction, resolves the operand from the pre-advance
// offsets and executes. Executors add the documented page-cross and branch
// penalties on top of the table's base cycle count. Every call, dispatching
// or not, burns one cycle of the countdown and one lifetime cycle.
//
// An unknown opcode halts the CPU: Step returns a *DecodeError now and on
// every further call until Reset or Resume. PC is left on the offending
// byte.
func (c *CPU) Step() (StepInfo, error) {
	if c.halted {
		return StepInfo{}, c.haltErr
	}

	var info StepInfo
	if c.remaining == 0 {
		opcode := c.Mem.Read8(c.PC)
		def := opcodes[opcode]
		if def.Size == 0 {
			c.halted = true
			c.haltErr = &DecodeError{Opcode: opcode, Addr: c.PC}
			return StepInfo{}, c.haltErr
		}

		pc := c.PC
		c.PC += uint16(def.Size)
		c.remaining = int(def.Cycles)
		exec[def.Mnem](c, c.resolve(def.Mode, pc))

		info = StepInfo{
			Dispatched: true,
			PC:         pc,
			Opcode:     opcode,
			Mnemonic:   def.Mnem,
			Mode:       def.Mode,
		}
	}

	c.remaining--
	c.Cycles++
	return info, nil
}

// RemainingCycles returns the countdown left for the in-flight instruction.
// Zero means the next Step dispatches a new instruction.
func (c *CPU) RemainingCycles() int { return c.remaining }

// TotalCycles returns the lifetime cycle count.
func (c *CPU) TotalCycles() int64 { return c.Cycles }

func (c *CPU) IsHalted() bool { return c.halted }

// Resume clears the halt condition after a decode error. The caller is
// expected to have moved PC past the offending byte, the core does not
// guess.
func (c *CPU) Resume() {
	c.halted = false
	c.haltErr = nil
}

/* stack operations */

// The stack lives in page 1 and wraps silently, matching hardware: there is
// no overflow or underflow check.

func (c *CPU) push8(val uint8) {
	c.Mem.Write8(0x0100+uint16(c.SP), val)
	c.SP--
}

func (c *CPU) push16(val uint16) {
	c.push8(uint8(val >> 8))
	c.push8(uint8(val & 0xff))
}

func (c *CPU) pull8() uint8 {
	c.SP++
	return c.Mem.Read8(0x0100 + uint16(c.SP))
}

func (c *CPU) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

// State is a snapshot of the register file and cycle counter, taken and
// restored at instruction boundaries.
type State struct {
	A, X, Y, SP uint8
	PC          uint16
	P           uint8
	Cycles      int64
}

func (c *CPU) State() State {
	return State{
		A: c.A, X: c.X, Y: c.Y, SP: c.SP,
		PC: c.PC, P: uint8(c.P), Cycles: c.Cycles,
	}
}

func (c *CPU) SetState(s State) {
	c.A, c.X, c.Y, c.SP = s.A, s.X, s.Y, s.SP
	c.PC = s.PC
	c.P = P(s.P)
	c.Cycles = s.Cycles
	c.remaining = 0
}
