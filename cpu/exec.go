package cpu

// One handler per mnemonic. Handlers consume the resolved operand and
// mutate registers, flags and memory. By the time a handler runs, PC has
// already been advanced past the whole instruction.

// pagePenalty adds the +1 cycle paid by read instructions on indexed modes
// that crossed a page boundary. Write and read-modify-write instructions
// use the same resolved address but never call this.
func (c *CPU) pagePenalty(op Operand) {
	if op.PageCross {
		c.remaining++
	}
}

/* load / store */

func (c *CPU) lda(op Operand) {
	c.A = c.Mem.Read8(op.Addr)
	c.P.checkNZ(c.A)
	c.pagePenalty(op)
}

func (c *CPU) ldx(op Operand) {
	c.X = c.Mem.Read8(op.Addr)
	c.P.checkNZ(c.X)
	c.pagePenalty(op)
}

func (c *CPU) ldy(op Operand) {
	c.Y = c.Mem.Read8(op.Addr)
	c.P.checkNZ(c.Y)
	c.pagePenalty(op)
}

func (c *CPU) sta(op Operand) { c.Mem.Write8(op.Addr, c.A) }
func (c *CPU) stx(op Operand) { c.Mem.Write8(op.Addr, c.X) }
func (c *CPU) sty(op Operand) { c.Mem.Write8(op.Addr, c.Y) }

/* arithmetic */

// add memory to accumulator with carry. Decimal mode is permanently
// disabled on this variant, the D flag is storable but never honored.
func (c *CPU) adc(op Operand) {
	val := c.Mem.Read8(op.Addr)
	sum := uint16(c.A) + uint16(val) + uint16(c.P.ibit(pbitC))

	c.P.checkCV(c.A, val, sum)
	c.A = uint8(sum)
	c.P.checkNZ(c.A)
	c.pagePenalty(op)
}

// subtract memory from accumulator with borrow: A - M - (1-C), computed as
// addition of the one's complement so carry/overflow fall out identically.
func (c *CPU) sbc(op Operand) {
	val := c.Mem.Read8(op.Addr) ^ 0xff
	sum := uint16(c.A) + uint16(val) + uint16(c.P.ibit(pbitC))

	c.P.checkCV(c.A, val, sum)
	c.A = uint8(sum)
	c.P.checkNZ(c.A)
	c.pagePenalty(op)
}

/* logical */

func (c *CPU) and(op Operand) {
	c.A &= c.Mem.Read8(op.Addr)
	c.P.checkNZ(c.A)
	c.pagePenalty(op)
}

func (c *CPU) ora(op Operand) {
	c.A |= c.Mem.Read8(op.Addr)
	c.P.checkNZ(c.A)
	c.pagePenalty(op)
}

func (c *CPU) eor(op Operand) {
	c.A ^= c.Mem.Read8(op.Addr)
	c.P.checkNZ(c.A)
	c.pagePenalty(op)
}

// test bits in memory with accumulator: N and V copied straight from the
// operand, Z from the AND with A.
func (c *CPU) bit(op Operand) {
	val := c.Mem.Read8(op.Addr)
	c.P &= 0b00111111
	c.P |= P(val & 0b11000000)
	c.P.checkZ(c.A & val)
}

/* compare */

func (c *CPU) compare(reg uint8, op Operand) {
	val := c.Mem.Read8(op.Addr)
	c.P.checkNZ(reg - val)
	c.P.writeBit(pbitC, val <= reg)
}

func (c *CPU) cmp(op Operand) {
	c.compare(c.A, op)
	c.pagePenalty(op)
}

func (c *CPU) cpx(op Operand) { c.compare(c.X, op) }
func (c *CPU) cpy(op Operand) { c.compare(c.Y, op) }

/* shifts and rotates */

// The shift/rotate family is the only one allowed to target either the
// accumulator or a memory byte: handlers switch on the operand shape.

func (c *CPU) rmw(op Operand, f func(uint8) uint8) {
	if op.Kind == KindAccumulator {
		c.A = f(c.A)
		return
	}
	c.Mem.Write8(op.Addr, f(c.Mem.Read8(op.Addr)))
}

func (c *CPU) asl(op Operand) {
	c.rmw(op, func(v uint8) uint8 {
		c.P.writeBit(pbitC, v&0x80 != 0)
		v <<= 1
		c.P.checkNZ(v)
		return v
	})
}

func (c *CPU) lsr(op Operand) {
	c.rmw(op, func(v uint8) uint8 {
		c.P.writeBit(pbitC, v&0x01 != 0)
		v >>= 1
		c.P.checkNZ(v)
		return v
	})
}

func (c *CPU) rol(op Operand) {
	c.rmw(op, func(v uint8) uint8 {
		carry := v & 0x80
		v <<= 1
		if c.P.C() {
			v |= 1 << 0
		}
		c.P.checkNZ(v)
		c.P.writeBit(pbitC, carry != 0)
		return v
	})
}

func (c *CPU) ror(op Operand) {
	c.rmw(op, func(v uint8) uint8 {
		carry := v & 0x01
		v >>= 1
		if c.P.C() {
			v |= 1 << 7
		}
		c.P.checkNZ(v)
		c.P.writeBit(pbitC, carry != 0)
		return v
	})
}

/* increment / decrement */

func (c *CPU) inc(op Operand) {
	v := c.Mem.Read8(op.Addr) + 1
	c.Mem.Write8(op.Addr, v)
	c.P.checkNZ(v)
}

func (c *CPU) dec(op Operand) {
	v := c.Mem.Read8(op.Addr) - 1
	c.Mem.Write8(op.Addr, v)
	c.P.checkNZ(v)
}

func (c *CPU) inx(Operand) { c.X++; c.P.checkNZ(c.X) }
func (c *CPU) iny(Operand) { c.Y++; c.P.checkNZ(c.Y) }
func (c *CPU) dex(Operand) { c.X--; c.P.checkNZ(c.X) }
func (c *CPU) dey(Operand) { c.Y--; c.P.checkNZ(c.Y) }

/* transfers */

func (c *CPU) tax(Operand) { c.X = c.A; c.P.checkNZ(c.X) }
func (c *CPU) tay(Operand) { c.Y = c.A; c.P.checkNZ(c.Y) }
func (c *CPU) txa(Operand) { c.A = c.X; c.P.checkNZ(c.A) }
func (c *CPU) tya(Operand) { c.A = c.Y; c.P.checkNZ(c.A) }
func (c *CPU) tsx(Operand) { c.X = c.SP; c.P.checkNZ(c.X) }

// TXS is the one transfer that does not touch flags.
func (c *CPU) txs(Operand) { c.SP = c.X }

/* stack */

func (c *CPU) pha(Operand) { c.push8(c.A) }

// PHP pushes the status byte with Break and the unused bit forced set.
func (c *CPU) php(Operand) {
	p := c.P
	p.setBit(pbitB)
	p.setBit(pbitU)
	c.push8(uint8(p))
}

func (c *CPU) pla(Operand) {
	c.A = c.pull8()
	c.P.checkNZ(c.A)
}

// PLP clears Break and the unused bit on read, like RTI.
func (c *CPU) plp(Operand) {
	p := P(c.pull8())
	p.clearBit(pbitB)
	p.clearBit(pbitU)
	c.P = p
}

/* jumps and subroutines */

func (c *CPU) jmp(op Operand) { c.PC = op.Addr }

// JSR pushes the address of its own last byte: the chip latches PC before
// fetching the final operand byte, so the stacked return address is one
// less than the next instruction. RTS adds the 1 back.
func (c *CPU) jsr(op Operand) {
	c.push16(c.PC - 1)
	c.PC = op.Addr
}

func (c *CPU) rts(Operand) {
	c.PC = c.pull16() + 1
}

// BRK pushes PC+1 (the byte after the BRK padding byte), then the status
// byte with Break and the unused bit set, then vectors through 0xFFFE.
func (c *CPU) brk(Operand) {
	c.push16(c.PC + 1)

	p := c.P
	p.setBit(pbitB)
	p.setBit(pbitU)
	c.push8(uint8(p))

	c.P.writeBit(pbitI, true)
	c.PC = c.Mem.Read16(IRQVector)
}

// RTI pulls the status byte (Break and unused cleared on read) then PC,
// with no +1 adjustment, unlike RTS.
func (c *CPU) rti(Operand) {
	p := P(c.pull8())
	p.clearBit(pbitB)
	p.clearBit(pbitU)
	c.P = p
	c.PC = c.pull16()
}

/* branches */

// branch applies the signed displacement when cond holds. A taken branch
// pays +1 cycle, +1 more when the destination is on another page than the
// instruction that would have run next.
func (c *CPU) branch(op Operand, cond bool) {
	if !cond {
		return
	}
	next := c.PC
	c.PC = next + uint16(int16(op.Disp))
	c.remaining++
	if pagecrossed(next, c.PC) {
		c.remaining++
	}
}

func (c *CPU) bcc(op Operand) { c.branch(op, !c.P.C()) }
func (c *CPU) bcs(op Operand) { c.branch(op, c.P.C()) }
func (c *CPU) bne(op Operand) { c.branch(op, !c.P.Z()) }
func (c *CPU) beq(op Operand) { c.branch(op, c.P.Z()) }
func (c *CPU) bpl(op Operand) { c.branch(op, !c.P.N()) }
func (c *CPU) bmi(op Operand) { c.branch(op, c.P.N()) }
func (c *CPU) bvc(op Operand) { c.branch(op, !c.P.V()) }
func (c *CPU) bvs(op Operand) { c.branch(op, c.P.V()) }

/* flag manipulation */

func (c *CPU) clc(Operand) { c.P.writeBit(pbitC, false) }
func (c *CPU) sec(Operand) { c.P.writeBit(pbitC, true) }
func (c *CPU) cli(Operand) { c.P.writeBit(pbitI, false) }
func (c *CPU) sei(Operand) { c.P.writeBit(pbitI, true) }
func (c *CPU) clv(Operand) { c.P.writeBit(pbitV, false) }
func (c *CPU) cld(Operand) { c.P.writeBit(pbitD, false) }
func (c *CPU) sed(Operand) { c.P.writeBit(pbitD, true) }

func (c *CPU) nop(Operand) {}
