package cpu

// Memory is the flat 64 KiB address space the CPU executes from.
//
// Every address is valid by construction: indices are uint16 so they wrap
// modulo 65536, there is no fault path. The CPU owns its Memory; external
// collaborators (loader, monitor) may only touch it between steps.
type Memory struct {
	bytes [1 << 16]byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Read8(addr uint16) uint8 {
	return m.bytes[addr]
}

func (m *Memory) Write8(addr uint16, val uint8) {
	m.bytes[addr] = val
}

// Read16 reads a little-endian word. The high byte comes from addr+1 with
// 16-bit wraparound.
func (m *Memory) Read16(addr uint16) uint16 {
	lo := m.Read8(addr)
	hi := m.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (m *Memory) Write16(addr uint16, val uint16) {
	m.Write8(addr, uint8(val&0xff))
	m.Write8(addr+1, uint8(val>>8))
}

// Load copies data verbatim into memory starting at offset, wrapping past
// 0xFFFF. No validation is performed: the bytes are the program.
func (m *Memory) Load(offset uint16, data []byte) {
	for i, b := range data {
		m.bytes[offset+uint16(i)] = b
	}
}

// Clear zeroes the whole address space, for reuse across program loads.
func (m *Memory) Clear() {
	clear(m.bytes[:])
}
