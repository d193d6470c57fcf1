package emu

import (
	"fmt"

	"github.com/go-faster/jx"

	"m6502/cpu"
)

// MarshalState encodes a CPU snapshot as JSON. The snapshot is taken at an
// instruction boundary; restoring it resumes execution at the same point.
func MarshalState(s cpu.State) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("pc", func(e *jx.Encoder) { e.UInt32(uint32(s.PC)) })
		e.Field("sp", func(e *jx.Encoder) { e.UInt32(uint32(s.SP)) })
		e.Field("a", func(e *jx.Encoder) { e.UInt32(uint32(s.A)) })
		e.Field("x", func(e *jx.Encoder) { e.UInt32(uint32(s.X)) })
		e.Field("y", func(e *jx.Encoder) { e.UInt32(uint32(s.Y)) })
		e.Field("p", func(e *jx.Encoder) { e.UInt32(uint32(s.P)) })
		e.Field("cycles", func(e *jx.Encoder) { e.Int64(s.Cycles) })
	})
	return e.Bytes()
}

// UnmarshalState decodes a snapshot produced by MarshalState. Unknown keys
// are skipped so the format can grow.
func UnmarshalState(data []byte) (cpu.State, error) {
	var s cpu.State
	d := jx.DecodeBytes(data)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "pc":
			v, err := d.UInt32()
			if err != nil {
				return err
			}
			if v > 0xFFFF {
				return fmt.Errorf("pc 0x%X out of range", v)
			}
			s.PC = uint16(v)
			return nil
		case "sp":
			v, err := d.UInt32()
			s.SP = uint8(v)
			return err
		case "a":
			v, err := d.UInt32()
			s.A = uint8(v)
			return err
		case "x":
			v, err := d.UInt32()
			s.X = uint8(v)
			return err
		case "y":
			v, err := d.UInt32()
			s.Y = uint8(v)
			return err
		case "p":
			v, err := d.UInt32()
			s.P = uint8(v)
			return err
		case "cycles":
			v, err := d.Int64()
			s.Cycles = v
			return err
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return cpu.State{}, fmt.Errorf("decoding cpu state: %w", err)
	}
	return s, nil
}
