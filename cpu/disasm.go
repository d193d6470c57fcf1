package cpu

import "fmt"

// DisasmOp is the decoded form of one instruction, for display.
type DisasmOp struct {
	PC      uint16
	Size    uint8
	Raw     [3]uint8 // Raw[:Size] are the instruction bytes
	Mnem    Mnemonic
	Mode    Mode
	Illegal bool
}

// Disasm decodes the instruction at pc without executing it or touching any
// CPU state. Unknown opcodes come back as a 1-byte Illegal entry so a
// listing can walk past them.
func (c *CPU) Disasm(pc uint16) DisasmOp {
	opcode := c.Mem.Read8(pc)
	def := opcodes[opcode]
	if def.Size == 0 {
		return DisasmOp{PC: pc, Size: 1, Raw: [3]uint8{opcode}, Illegal: true}
	}

	op := DisasmOp{PC: pc, Size: def.Size, Mnem: def.Mnem, Mode: def.Mode}
	for i := uint8(0); i < def.Size; i++ {
		op.Raw[i] = c.Mem.Read8(pc + uint16(i))
	}
	return op
}

// String formats the instruction in conventional 6502 assembly syntax.
func (op DisasmOp) String() string {
	if op.Illegal {
		return fmt.Sprintf("???  ($%02X)", op.Raw[0])
	}

	oper8 := op.Raw[1]
	oper16 := uint16(op.Raw[2])<<8 | uint16(op.Raw[1])

	switch op.Mode {
	case Implied:
		return op.Mnem.String()
	case Accumulator:
		return fmt.Sprintf("%s A", op.Mnem)
	case Immediate:
		return fmt.Sprintf("%s #$%02X", op.Mnem, oper8)
	case ZeroPage:
		return fmt.Sprintf("%s $%02X", op.Mnem, oper8)
	case ZeroPageX:
		return fmt.Sprintf("%s $%02X,X", op.Mnem, oper8)
	case ZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", op.Mnem, oper8)
	case Absolute:
		return fmt.Sprintf("%s $%04X", op.Mnem, oper16)
	case AbsoluteX:
		return fmt.Sprintf("%s $%04X,X", op.Mnem, oper16)
	case AbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", op.Mnem, oper16)
	case Indirect:
		return fmt.Sprintf("%s ($%04X)", op.Mnem, oper16)
	case IndirectX:
		return fmt.Sprintf("%s ($%02X,X)", op.Mnem, oper8)
	case IndirectY:
		return fmt.Sprintf("%s ($%02X),Y", op.Mnem, oper8)
	case Relative:
		// show the branch target rather than the raw displacement.
		dst := op.PC + uint16(op.Size) + uint16(int16(int8(oper8)))
		return fmt.Sprintf("%s $%04X", op.Mnem, dst)
	}
	return op.Mnem.String()
}

// Bytes formats the raw instruction bytes, space separated.
func (op DisasmOp) Bytes() string {
	switch op.Size {
	case 1:
		return fmt.Sprintf("%02X", op.Raw[0])
	case 2:
		return fmt.Sprintf("%02X %02X", op.Raw[0], op.Raw[1])
	default:
		return fmt.Sprintf("%02X %02X %02X", op.Raw[0], op.Raw[1], op.Raw[2])
	}
}
