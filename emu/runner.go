package emu

import (
	"bufio"
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"m6502/emu/log"
)

// Run steps the machine for at most budget cycles. Execution stops early
// when the context is cancelled or the CPU hits an unknown opcode; the
// decode error is returned to the caller, the CPU stays halted.
//
// When trace is non-nil a line per executed instruction is written to it.
// Formatting and I/O run on their own goroutine so the stepping loop is not
// gated on the disk.
func (m *Machine) Run(ctx context.Context, budget int64, trace io.Writer) error {
	if trace == nil {
		return m.run(ctx, budget, nil)
	}

	g, ctx := errgroup.WithContext(ctx)
	lines := make(chan string, 256)

	g.Go(func() error {
		bw := bufio.NewWriter(trace)
		for line := range lines {
			if _, err := bw.WriteString(line); err != nil {
				return err
			}
		}
		return bw.Flush()
	})

	g.Go(func() error {
		defer close(lines)
		return m.run(ctx, budget, func(line string) {
			select {
			case lines <- line:
			case <-ctx.Done():
			}
		})
	})

	return g.Wait()
}

func (m *Machine) run(ctx context.Context, budget int64, emit func(string)) error {
	tracer := NewTracer(m.CPU)
	until := m.CPU.Cycles + budget

	for m.CPU.Cycles < until {
		// Instruction boundary: a good place to notice cancellation and
		// to trace, both before the next dispatch.
		if m.CPU.RemainingCycles() == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			if emit != nil {
				emit(tracer.Line())
			}
		}

		if _, err := m.CPU.Step(); err != nil {
			log.ModCPU.ErrorZ("cpu halted").
				Hex16("PC", m.CPU.PC).
				Err(err).
				End()
			return err
		}
	}
	return nil
}
