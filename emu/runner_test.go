package emu

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"m6502/cpu"
)

// loads a program at 0x0600 and points the reset vector at it.
func newTestMachine(t *testing.T, prog []byte) *Machine {
	t.Helper()

	m := New()
	m.LoadImage(0x0600, prog)
	m.SetResetVector(0x0600)
	m.Reset()
	return m
}

func TestRunBudget(t *testing.T) {
	// LDA #$05 / ADC #$03 / STA $10: 2+2+3 cycles.
	m := newTestMachine(t, []byte{0xA9, 0x05, 0x69, 0x03, 0x85, 0x10})

	if err := m.Run(context.Background(), 7, nil); err != nil {
		t.Fatal(err)
	}
	if m.CPU.TotalCycles() != 7 {
		t.Errorf("total cycles = %d want 7", m.CPU.TotalCycles())
	}
	if got := m.Mem.Read8(0x10); got != 0x08 {
		t.Errorf("$10 = %02X want 08", got)
	}
}

func TestRunHalts(t *testing.T) {
	m := newTestMachine(t, []byte{0xEA, 0xFF})

	err := m.Run(context.Background(), 100, nil)
	var derr *cpu.DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("got %v, want a decode error", err)
	}
	if derr.Addr != 0x0601 {
		t.Errorf("halted at %04X want 0601", derr.Addr)
	}
	if !m.CPU.IsHalted() {
		t.Error("machine not left halted")
	}
}

func TestRunCancel(t *testing.T) {
	// JMP $0600: spins forever without the context.
	m := newTestMachine(t, []byte{0x4C, 0x00, 0x06})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Run(ctx, 1<<40, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestRunTrace(t *testing.T) {
	m := newTestMachine(t, []byte{0xA9, 0x05, 0x69, 0x03, 0x85, 0x10})

	var buf bytes.Buffer
	if err := m.Run(context.Background(), 7, &buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"0600  A9 05     LDA #$05       A:00 X:00 Y:00 P:nvubdizc SP:FF CYC:0",
		"0602  69 03     ADC #$03       A:05 X:00 Y:00 P:nvubdizc SP:FF CYC:2",
		"0604  85 10     STA $10        A:08 X:00 Y:00 P:nvubdizc SP:FF CYC:4",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d trace lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d:\ngot  %q\nwant %q", i, lines[i], want[i])
		}
	}
}

func TestRunTraceHalt(t *testing.T) {
	// The trace still flushes the lines written before the halt.
	m := newTestMachine(t, []byte{0xEA, 0xFF})

	var buf bytes.Buffer
	err := m.Run(context.Background(), 100, &buf)
	var derr *cpu.DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("got %v, want a decode error", err)
	}
	if !strings.Contains(buf.String(), "NOP") {
		t.Errorf("trace missing the executed NOP:\n%s", buf.String())
	}
}
