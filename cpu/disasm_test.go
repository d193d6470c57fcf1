package cpu

import "testing"

func TestDisasm(t *testing.T) {
	c := loadCPUWith(t, `
0600: a9 05 9d 00 03 d0 fb 6c ff 02 b1 44 4a ea ff 60`)

	tests := []struct {
		pc    uint16
		str   string
		bytes string
	}{
		{0x0600, "LDA #$05", "A9 05"},
		{0x0602, "STA $0300,X", "9D 00 03"},
		{0x0605, "BNE $0602", "D0 FB"}, // target, not displacement
		{0x0607, "JMP ($02FF)", "6C FF 02"},
		{0x060A, "LDA ($44),Y", "B1 44"},
		{0x060C, "LSR A", "4A"},
		{0x060D, "NOP", "EA"},
		{0x060E, "???  ($FF)", "FF"},
		{0x060F, "RTS", "60"},
	}

	for _, tt := range tests {
		op := c.Disasm(tt.pc)
		if got := op.String(); got != tt.str {
			t.Errorf("%04X: %q want %q", tt.pc, got, tt.str)
		}
		if got := op.Bytes(); got != tt.bytes {
			t.Errorf("%04X: bytes %q want %q", tt.pc, got, tt.bytes)
		}
		if want := uint16(len(tt.bytes)+1) / 3; op.Size != uint8(want) {
			t.Errorf("%04X: size %d want %d", tt.pc, op.Size, want)
		}
	}
}

func TestDisasmDoesNotExecute(t *testing.T) {
	c := loadCPUWith(t, `0600: a9 05`)
	c.PC = 0x0600

	c.Disasm(0x0600)
	if c.A != 0 || c.PC != 0x0600 || c.TotalCycles() != 0 {
		t.Error("Disasm mutated CPU state")
	}
}
