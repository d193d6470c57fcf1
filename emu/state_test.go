package emu

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"m6502/cpu"
)

func TestStateRoundTrip(t *testing.T) {
	want := cpu.State{
		A: 0x42, X: 0x01, Y: 0xFF, SP: 0xF7,
		PC: 0xC123, P: 0x81, Cycles: 123456,
	}

	got, err := UnmarshalState(MarshalState(want))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestUnmarshalStateUnknownKeys(t *testing.T) {
	// Unknown keys must be skipped, not rejected.
	got, err := UnmarshalState([]byte(`{"pc": 512, "later_addition": {"x": 1}, "a": 7}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.PC != 512 || got.A != 7 {
		t.Errorf("got PC=%d A=%d, want 512 7", got.PC, got.A)
	}
}

func TestUnmarshalStateErrors(t *testing.T) {
	if _, err := UnmarshalState([]byte(`{"pc": 65536}`)); err == nil {
		t.Error("pc out of range accepted")
	}
	if _, err := UnmarshalState([]byte(`{"pc": `)); err == nil {
		t.Error("truncated input accepted")
	}
}
