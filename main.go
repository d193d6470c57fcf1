package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"m6502/cpu"
	"m6502/emu"
)

var version = "devel"

func main() {
	cli, ctx := parseArgs(os.Args[1:])

	switch cmd := ctx.Command(); {
	case cmd == "version":
		fmt.Println("m6502", version)
	case cmd == "disasm </path/to/image>":
		checkf(disasmCmd(&cli.Disasm), "disasm failed")
	default:
		checkf(runCmd(&cli.Run), "run failed")
	}
}

func runCmd(cmd *Run) error {
	m := emu.New()

	cycles := cmd.Cycles
	if cmd.Machine != "" {
		cfg, err := emu.LoadConfig(cmd.Machine)
		if err != nil {
			return err
		}
		if err := cfg.Apply(m); err != nil {
			return err
		}
		if cfg.Cycles > 0 {
			cycles = cfg.Cycles
		}
	}

	if cmd.Image != "" {
		data, err := os.ReadFile(cmd.Image)
		if err != nil {
			return err
		}
		m.LoadImage(uint16(cmd.Offset), data)
	}

	if cmd.Entry != nil {
		m.SetResetVector(uint16(*cmd.Entry))
	}

	if cmd.StateIn != "" {
		buf, err := os.ReadFile(cmd.StateIn)
		if err != nil {
			return err
		}
		state, err := emu.UnmarshalState(buf)
		if err != nil {
			return err
		}
		m.CPU.SetState(state)
	} else {
		m.Reset()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	if cmd.Trace != nil {
		defer cmd.Trace.Close()
		err = m.Run(ctx, cycles, cmd.Trace)
	} else {
		err = m.Run(ctx, cycles, nil)
	}

	// A decode error is a run result worth showing next to the final
	// state, not a driver failure.
	var derr *cpu.DecodeError
	switch {
	case errors.As(err, &derr):
		fmt.Fprintln(os.Stderr, "halted:", derr)
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "interrupted")
	case err != nil:
		return err
	}

	c := m.CPU
	fmt.Printf("A:%02X X:%02X Y:%02X P:%s SP:%02X PC:%04X CYC:%d\n",
		c.A, c.X, c.Y, c.P, c.SP, c.PC, c.TotalCycles())

	if cmd.StateOut != "" {
		if err := os.WriteFile(cmd.StateOut, emu.MarshalState(c.State()), 0644); err != nil {
			return err
		}
	}
	return nil
}

func disasmCmd(cmd *Disasm) error {
	data, err := os.ReadFile(cmd.Image)
	if err != nil {
		return err
	}

	m := emu.New()
	m.LoadImage(uint16(cmd.Offset), data)

	pc := uint16(cmd.Offset)
	for range cmd.Count {
		op := m.CPU.Disasm(pc)
		fmt.Printf("%04X  %-9s %s\n", op.PC, op.Bytes(), op)
		pc += uint16(op.Size)
	}
	return nil
}
