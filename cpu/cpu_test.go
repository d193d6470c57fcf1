package cpu

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReset(t *testing.T) {
	c := loadCPUWith(t, `
fffc: 00 c0`)
	c.A, c.X, c.Y = 1, 2, 3
	c.SP = 0x80
	c.P = 0xFF
	c.Reset()

	if c.PC != 0xC000 {
		t.Errorf("PC=%04X want C000", c.PC)
	}
	if c.SP != 0xFF || c.P != 0 {
		t.Errorf("SP=%02X P=%02X want FF 00", c.SP, uint8(c.P))
	}
	// Registers are not cleared, only the control state is.
	if c.A != 1 || c.X != 2 || c.Y != 3 {
		t.Errorf("A X Y = %d %d %d, want 1 2 3", c.A, c.X, c.Y)
	}
}

func TestResetClearsHalt(t *testing.T) {
	c := loadCPUWith(t, `
0000: ff
c000: ea
fffc: 00 c0`)

	if _, err := c.Step(); err == nil {
		t.Fatal("expected decode error")
	}
	c.Reset()
	if c.IsHalted() {
		t.Fatal("still halted after reset")
	}
	step(t, c, 2) // NOP at C000
}

func TestStepAccounting(t *testing.T) {
	c := loadCPUWith(t, `0600: a9 05 ea`)
	c.PC = 0x0600

	info, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	want := StepInfo{Dispatched: true, PC: 0x0600, Opcode: 0xA9, Mnemonic: LDA, Mode: Immediate}
	if diff := cmp.Diff(want, info); diff != "" {
		t.Error(diff)
	}
	if c.RemainingCycles() != 1 || c.TotalCycles() != 1 {
		t.Errorf("after dispatch: remaining=%d total=%d", c.RemainingCycles(), c.TotalCycles())
	}

	// Second tick of the same instruction dispatches nothing.
	info, err = c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if info.Dispatched {
		t.Error("mid-instruction tick reported a dispatch")
	}
	if c.RemainingCycles() != 0 || c.TotalCycles() != 2 {
		t.Errorf("after instruction: remaining=%d total=%d", c.RemainingCycles(), c.TotalCycles())
	}

	step(t, c, 2) // NOP
	if c.TotalCycles() != 4 {
		t.Errorf("total=%d want 4", c.TotalCycles())
	}
}

func TestDecodeHalt(t *testing.T) {
	c := loadCPUWith(t, `0600: ff ea`)
	c.PC = 0x0600

	_, err := c.Step()
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("got %v, want a decode error", err)
	}
	if derr.Opcode != 0xFF || derr.Addr != 0x0600 {
		t.Errorf("decode error %02X at %04X, want FF at 0600", derr.Opcode, derr.Addr)
	}
	if c.PC != 0x0600 {
		t.Errorf("PC advanced to %04X on a decode error", c.PC)
	}
	if c.TotalCycles() != 0 {
		t.Errorf("halted step burned %d cycles", c.TotalCycles())
	}
	if !c.IsHalted() {
		t.Error("not halted")
	}

	// The halt is sticky: same error on every further call.
	if _, err2 := c.Step(); !errors.Is(err2, err) {
		t.Errorf("second step: got %v want %v", err2, err)
	}

	// Resume does not move PC, the caller does.
	c.Resume()
	c.PC = 0x0601
	step(t, c, 2) // NOP
	if c.PC != 0x0602 {
		t.Errorf("PC=%04X want 0602", c.PC)
	}
}

func TestStateRoundTrip(t *testing.T) {
	c := loadCPUWith(t, `0600: a9 05 ea`)
	c.PC = 0x0600
	step(t, c, 2)

	s := c.State()
	want := State{A: 0x05, SP: 0xFF, PC: 0x0602, P: 0x00, Cycles: 2}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Error(diff)
	}

	c2 := NewCPU(c.Mem)
	c2.SetState(s)
	step(t, c2, 2) // NOP
	if c2.PC != 0x0603 || c2.TotalCycles() != 4 {
		t.Errorf("restored CPU: PC=%04X total=%d", c2.PC, c2.TotalCycles())
	}
}

// Restoring a snapshot mid-instruction is not possible: SetState always
// lands on an instruction boundary.
func TestSetStateBoundary(t *testing.T) {
	c := loadCPUWith(t, `0600: a9 05`)
	c.PC = 0x0600
	step(t, c, 1)
	if c.RemainingCycles() != 1 {
		t.Fatalf("remaining=%d want 1", c.RemainingCycles())
	}

	c.SetState(c.State())
	if c.RemainingCycles() != 0 {
		t.Errorf("remaining=%d after SetState, want 0", c.RemainingCycles())
	}
}
