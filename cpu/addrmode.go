package cpu

//go:generate go tool stringer -type=Mode -linecomment
//go:generate go tool stringer -type=Mnemonic

// Mode is one of the 13 addressing modes of the 6502.
type Mode uint8

const (
	Implied     Mode = iota // imp
	Accumulator             // A
	Immediate               // #
	ZeroPage                // zp
	ZeroPageX               // zp,X
	ZeroPageY               // zp,Y
	Absolute                // abs
	AbsoluteX               // abs,X
	AbsoluteY               // abs,Y
	Indirect                // ind
	IndirectX               // (ind,X)
	IndirectY               // (ind),Y
	Relative                // rel

	numModes
)

// OperandKind tags the shape of a resolved operand.
type OperandKind uint8

const (
	// KindImplied marks instructions without an operand.
	KindImplied OperandKind = iota

	// KindAccumulator marks operations targeting the accumulator rather
	// than a memory location (ASL A, LSR A, ROL A, ROR A).
	KindAccumulator

	// KindAddress carries an effective memory address, plus the
	// page-crossed flag for the indexed modes that pay a penalty.
	KindAddress

	// KindRelative carries a signed branch displacement.
	KindRelative
)

// Operand is the contract between the addressing-mode resolver and the
// instruction executors. Executors never look at the addressing mode
// itself: they consume the resolved shape, and only the shift/rotate
// family distinguishes accumulator from memory targets.
type Operand struct {
	Kind      OperandKind
	Addr      uint16 // effective address, for KindAddress
	Disp      int8   // branch displacement, for KindRelative
	PageCross bool   // Absolute,X / Absolute,Y / (zp),Y only
}

// resolve computes the operand for an instruction whose opcode byte lives
// at pc. It reads operand bytes from pc+1 onwards and, for indirect modes,
// follows pointers in memory. It mutates nothing.
func (c *CPU) resolve(mode Mode, pc uint16) Operand {
	switch mode {
	case Implied:
		return Operand{Kind: KindImplied}

	case Accumulator:
		return Operand{Kind: KindAccumulator}

	case Immediate:
		// The operand value is the byte at pc+1: resolve to its own
		// location so executors read immediates like any memory operand.
		return Operand{Kind: KindAddress, Addr: pc + 1}

	case ZeroPage:
		return Operand{Kind: KindAddress, Addr: uint16(c.Mem.Read8(pc + 1))}

	case ZeroPageX:
		// Index addition wraps inside page 0, no carry into page 1.
		return Operand{Kind: KindAddress, Addr: uint16(c.Mem.Read8(pc+1) + c.X)}

	case ZeroPageY:
		return Operand{Kind: KindAddress, Addr: uint16(c.Mem.Read8(pc+1) + c.Y)}

	case Absolute:
		return Operand{Kind: KindAddress, Addr: c.Mem.Read16(pc + 1)}

	case AbsoluteX:
		base := c.Mem.Read16(pc + 1)
		dst := base + uint16(c.X)
		return Operand{Kind: KindAddress, Addr: dst, PageCross: pagecrossed(base, dst)}

	case AbsoluteY:
		base := c.Mem.Read16(pc + 1)
		dst := base + uint16(c.Y)
		return Operand{Kind: KindAddress, Addr: dst, PageCross: pagecrossed(base, dst)}

	case Indirect:
		// JMP (ind) hardware bug: the pointer high byte is fetched from
		// the same page as the low byte, the +1 wraps within the page.
		ptr := c.Mem.Read16(pc + 1)
		lo := c.Mem.Read8(ptr)
		hi := c.Mem.Read8(ptr&0xff00 | (ptr+1)&0x00ff)
		return Operand{Kind: KindAddress, Addr: uint16(hi)<<8 | uint16(lo)}

	case IndirectX:
		zp := c.Mem.Read8(pc+1) + c.X
		return Operand{Kind: KindAddress, Addr: c.zpRead16(zp)}

	case IndirectY:
		base := c.zpRead16(c.Mem.Read8(pc + 1))
		dst := base + uint16(c.Y)
		return Operand{Kind: KindAddress, Addr: dst, PageCross: pagecrossed(base, dst)}

	case Relative:
		return Operand{Kind: KindRelative, Disp: int8(c.Mem.Read8(pc + 1))}
	}

	panic("unreachable: bad addressing mode")
}

// zpRead16 reads a little-endian word from the zero page, the second byte
// wrapping within page 0.
func (c *CPU) zpRead16(zp uint8) uint16 {
	lo := c.Mem.Read8(uint16(zp))
	hi := c.Mem.Read8(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func pagecrossed(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}
