package cpu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveZeroPageIndexed(t *testing.T) {
	c := NewCPU(NewMemory())

	// Indexed zero-page addressing never leaves page 0: the index addition
	// wraps mod 256 instead of carrying into page 1.
	for zp := range 256 {
		for reg := range 256 {
			c.Mem.Write8(1, uint8(zp))
			c.X = uint8(reg)
			op := c.resolve(ZeroPageX, 0)
			if op.Addr > 0xFF {
				t.Fatalf("zp,X: zp=%02X X=%02X resolved outside page 0: $%04X", zp, reg, op.Addr)
			}
			if want := uint16(uint8(zp) + uint8(reg)); op.Addr != want {
				t.Fatalf("zp,X: zp=%02X X=%02X: got $%04X want $%04X", zp, reg, op.Addr, want)
			}
			if op.PageCross {
				t.Fatalf("zp,X: page-cross reported, impossible by construction")
			}
		}
	}

	c.Mem.Write8(1, 0xF0)
	c.Y = 0x20
	if op := c.resolve(ZeroPageY, 0); op.Addr != 0x10 {
		t.Errorf("zp,Y: got $%04X want $0010", op.Addr)
	}
}

func TestResolvePageCross(t *testing.T) {
	tests := []struct {
		base    uint16
		reg     uint8
		crossed bool
	}{
		{0x00FF, 0x01, true},
		{0x0100, 0x01, false}, // low byte 0+1 stays in page
		{0x01FF, 0x00, false},
		{0x0180, 0x80, true},
		{0x0180, 0x7F, false},
		{0xFFFF, 0x01, true}, // wraps to 0x0000
	}

	c := NewCPU(NewMemory())
	for _, tt := range tests {
		c.Mem.Write8(1, uint8(tt.base&0xff))
		c.Mem.Write8(2, uint8(tt.base>>8))

		c.X = tt.reg
		op := c.resolve(AbsoluteX, 0)
		if want := tt.base + uint16(tt.reg); op.Addr != want {
			t.Errorf("abs,X base=$%04X X=%02X: got $%04X want $%04X", tt.base, tt.reg, op.Addr, want)
		}
		if op.PageCross != tt.crossed {
			t.Errorf("abs,X base=$%04X X=%02X: crossed=%t want %t", tt.base, tt.reg, op.PageCross, tt.crossed)
		}

		c.Y = tt.reg
		op = c.resolve(AbsoluteY, 0)
		if op.PageCross != tt.crossed {
			t.Errorf("abs,Y base=$%04X Y=%02X: crossed=%t want %t", tt.base, tt.reg, op.PageCross, tt.crossed)
		}
	}
}

func TestResolveIndirect(t *testing.T) {
	// JMP (ind) page-wrap bug: with a pointer at $02FF, the high byte is
	// fetched from $0200, not $0300.
	c := loadCPUWith(t, `
0200: 03
02ff: 80
0300: 04`)
	c.Mem.Write8(1, 0xFF)
	c.Mem.Write8(2, 0x02)

	op := c.resolve(Indirect, 0)
	if want := uint16(0x0380); op.Addr != want {
		t.Errorf("ind: got $%04X want $%04X", op.Addr, want)
	}
}

func TestResolveIndirectX(t *testing.T) {
	c := loadCPUWith(t, `
0000: 00 00 05 07`)
	c.Mem.Write8(0x100, 0x02) // operand byte at pc+1 (pc=0xFF)
	c.Mem.Write8(0xFF, 0x00)

	// zp pointer wraps inside page 0: (0xFE + 4) & 0xFF = 0x02.
	c.X = 0x04
	c.Mem.Write8(1, 0xFE)
	op := c.resolve(IndirectX, 0)
	if want := uint16(0x0705); op.Addr != want {
		t.Errorf("(ind,X): got $%04X want $%04X", op.Addr, want)
	}
	if op.PageCross {
		t.Error("(ind,X): unexpected page-cross report")
	}
}

func TestResolveIndirectY(t *testing.T) {
	c := loadCPUWith(t, `
0000: 00 20 ff 00`)

	c.Mem.Write8(1, 0x02) // zp operand
	c.Y = 0x01
	op := c.resolve(IndirectY, 0)
	// pointer at $02/$03 = $00FF, +Y crosses into page 1.
	if want := uint16(0x0100); op.Addr != want {
		t.Errorf("(ind),Y: got $%04X want $%04X", op.Addr, want)
	}
	if !op.PageCross {
		t.Error("(ind),Y: page-cross not reported")
	}

	c.Y = 0x00
	if op := c.resolve(IndirectY, 0); op.PageCross {
		t.Error("(ind),Y: page-cross reported with Y=0")
	}

	// pointer high byte wraps within the zero page ($FF then $00).
	c.Mem.Write8(1, 0xFF)
	c.Mem.Write8(0xFF, 0x34)
	c.Mem.Write8(0x00, 0x12)
	c.Y = 0x00
	if op := c.resolve(IndirectY, 0); op.Addr != 0x1234 {
		t.Errorf("(ind),Y zp wrap: got $%04X want $1234", op.Addr)
	}
}

func TestResolveImmediate(t *testing.T) {
	c := NewCPU(NewMemory())

	// The immediate operand resolves to its own location, pc+1.
	want := Operand{Kind: KindAddress, Addr: 0x0601}
	if diff := cmp.Diff(want, c.resolve(Immediate, 0x0600)); diff != "" {
		t.Error(diff)
	}
}

func TestResolveRelative(t *testing.T) {
	c := NewCPU(NewMemory())

	tests := []struct {
		raw  uint8
		disp int8
	}{
		{0x00, 0},
		{0x7F, 127},
		{0x80, -128},
		{0xFF, -1},
		{0xFB, -5},
	}
	for _, tt := range tests {
		c.Mem.Write8(0x0601, tt.raw)
		op := c.resolve(Relative, 0x0600)
		if op.Kind != KindRelative || op.Disp != tt.disp {
			t.Errorf("rel %02X: got %+d want %+d", tt.raw, op.Disp, tt.disp)
		}
	}
}

func TestResolveAbsolute(t *testing.T) {
	c := NewCPU(NewMemory())
	c.Mem.Write8(0x0601, 0x34)
	c.Mem.Write8(0x0602, 0x12)

	op := c.resolve(Absolute, 0x0600)
	if op.Addr != 0x1234 {
		t.Errorf("abs: got $%04X want $1234", op.Addr)
	}
}

func TestResolveMarkers(t *testing.T) {
	c := NewCPU(NewMemory())

	if op := c.resolve(Implied, 0); op.Kind != KindImplied {
		t.Errorf("imp: got kind %d", op.Kind)
	}
	if op := c.resolve(Accumulator, 0); op.Kind != KindAccumulator {
		t.Errorf("A: got kind %d", op.Kind)
	}
}
