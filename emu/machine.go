package emu

import (
	"m6502/cpu"
	"m6502/emu/log"
)

// TileRAMSize is the size of the tile-data region exposed for an external
// graphics unit. The machine stores and returns the bytes, nothing more:
// rendering and pixel timing are not modeled here.
const TileRAMSize = 0x2000

// Machine assembles the CPU core with its address space and the tile-data
// region. It is the surface the driver program talks to; the core itself is
// only reached through loads, resets, steps and state reads.
type Machine struct {
	CPU *cpu.CPU
	Mem *cpu.Memory

	tiles [TileRAMSize]byte
}

func New() *Machine {
	mem := cpu.NewMemory()
	return &Machine{
		CPU: cpu.NewCPU(mem),
		Mem: mem,
	}
}

// LoadImage copies a program image into CPU memory at offset. Bytes are
// taken verbatim; stripping file headers is the loader's problem, not ours.
func (m *Machine) LoadImage(offset uint16, data []byte) {
	m.Mem.Load(offset, data)
	log.ModMem.InfoZ("image loaded").
		Hex16("offset", offset).
		Int("size", len(data)).
		End()
}

// SetResetVector writes addr to 0xFFFC/0xFFFD so the next Reset starts
// execution there.
func (m *Machine) SetResetVector(addr uint16) {
	m.Mem.Write16(cpu.ResetVector, addr)
}

func (m *Machine) Reset() {
	m.CPU.Reset()
	log.ModEmu.InfoZ("reset").Hex16("PC", m.CPU.PC).End()
}

// LoadTiles copies tile data into the separate tile RAM, truncating at the
// region size.
func (m *Machine) LoadTiles(data []byte) {
	n := copy(m.tiles[:], data)
	log.ModMem.InfoZ("tile data loaded").Int("size", n).End()
}

// Tiles exposes the tile-data region for readback by a display layer.
func (m *Machine) Tiles() []byte {
	return m.tiles[:]
}
