package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SyedAsadK/rnes/internal/cpu"
)

// flatMemory is a direct 64KiB address space, standing in for the bus in
// tests that only exercise CPU semantics.
type flatMemory struct {
	bytes   [0x10000]uint8
	nmi     bool
	nmiTake int
}

func (m *flatMemory) Read(address uint16) uint8        { return m.bytes[address] }
func (m *flatMemory) Write(address uint16, value uint8) { m.bytes[address] = value }
func (m *flatMemory) TakeNMI() bool {
	if m.nmi {
		m.nmi = false
		m.nmiTake++
		return true
	}
	return false
}

func newTestCPU(program []uint8, at uint16) (*cpu.CPU, *flatMemory) {
	mem := &flatMemory{}
	copy(mem.bytes[at:], program)
	mem.bytes[0xFFFC] = uint8(at & 0xFF)
	mem.bytes[0xFFFD] = uint8(at >> 8)
	c := cpu.New(mem)
	c.Reset()
	return c, mem
}

func TestResetVector(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xEA}, 0x8000)
	require.Equal(t, uint16(0x8000), c.PC)
	require.Equal(t, uint8(0xFD), c.SP)
	require.Equal(t, uint8(0x24), c.Status())
}

func TestLDAImmediate(t *testing.T) { // E1
	c, _ := newTestCPU([]uint8{0xA9, 0x05, 0x00}, 0x8000)
	c.Step()
	require.Equal(t, uint8(0x05), c.A)
	require.False(t, c.Z)
	require.False(t, c.N)
}

func TestLDAZeroFlag(t *testing.T) { // E2
	c, _ := newTestCPU([]uint8{0xA9, 0x00, 0x00}, 0x8000)
	c.Step()
	require.True(t, c.Z)
}

func TestTAXChain(t *testing.T) { // E3
	c, _ := newTestCPU([]uint8{0xAA, 0x00}, 0x8000)
	c.A = 10
	c.Step()
	require.Equal(t, uint8(10), c.X)
}

func TestFiveOpSequence(t *testing.T) { // E4
	c, _ := newTestCPU([]uint8{0xA9, 0xC0, 0xAA, 0xE8, 0x00}, 0x8000)
	c.Step() // LDA #$C0
	c.Step() // TAX
	c.Step() // INX
	require.Equal(t, uint8(0xC1), c.X)
}

func TestINXOverflow(t *testing.T) { // E5
	c, _ := newTestCPU([]uint8{0xE8, 0xE8, 0x00}, 0x8000)
	c.X = 0xFF
	c.Step()
	c.Step()
	require.Equal(t, uint8(0x01), c.X)
}

func TestUnknownOpcodePanics(t *testing.T) {
	c, _ := newTestCPU([]uint8{0x02}, 0x8000) // $02 is unmapped
	require.Panics(t, func() { c.Step() })
}

func TestStackRoundTrip(t *testing.T) {
	// Universal property 1: push then pop restores both value and SP.
	c, mem := newTestCPU([]uint8{0x48, 0x68}, 0x8000) // PHA, PLA
	c.A = 0x42
	startSP := c.SP
	c.Step()
	require.Equal(t, startSP-1, c.SP)
	c.A = 0
	c.Step()
	require.Equal(t, uint8(0x42), c.A)
	require.Equal(t, startSP, c.SP)
	_ = mem
}

func TestFlagMonotonicity(t *testing.T) {
	// Universal property 2: Z iff result==0, N iff bit7 set.
	c, _ := newTestCPU([]uint8{0xA9, 0x80}, 0x8000)
	c.Step()
	require.False(t, c.Z)
	require.True(t, c.N)

	c2, _ := newTestCPU([]uint8{0xA9, 0x00}, 0x8000)
	c2.Step()
	require.True(t, c2.Z)
	require.False(t, c2.N)
}

func TestADCOverflow(t *testing.T) { // universal property 8
	// 0x50 + 0x50 = 0xA0: two positives producing a negative result sets V.
	c, _ := newTestCPU([]uint8{0x69, 0x50}, 0x8000) // ADC #$50
	c.A = 0x50
	c.C = false
	c.Step()
	require.Equal(t, uint8(0xA0), c.A)
	require.True(t, c.V)
}

func TestSBCOverflow(t *testing.T) {
	// 0x50 - 0xB0 (with carry set, i.e. no borrow) = 0xA0: positive minus
	// negative producing a negative result sets V.
	c, _ := newTestCPU([]uint8{0xE9, 0xB0}, 0x8000) // SBC #$B0
	c.A = 0x50
	c.C = true
	c.Step()
	require.True(t, c.V)
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, mem := newTestCPU([]uint8{0x6C, 0xFF, 0x02}, 0x8000) // JMP ($02FF)
	mem.bytes[0x02FF] = 0x00
	mem.bytes[0x0200] = 0x80 // high byte wraps to $0200, not $0300
	mem.bytes[0x0300] = 0xFF
	c.Step()
	require.Equal(t, uint16(0x8000), c.PC)
}

func TestBRKPushesPCPlusTwoAndSetsB(t *testing.T) {
	c, mem := newTestCPU([]uint8{0x00}, 0x8000) // BRK
	mem.bytes[0xFFFE] = 0x00
	mem.bytes[0xFFFF] = 0x90
	startSP := c.SP
	cycles := c.Step()
	require.Equal(t, uint16(0x9000), c.PC)
	pushedStatus := mem.bytes[0x0100+uint16(startSP-2)]
	require.NotZero(t, pushedStatus&0x10)
	pushedPCHigh := mem.bytes[0x0100+uint16(startSP)]
	pushedPCLow := mem.bytes[0x0100+uint16(startSP-1)]
	pushedPC := uint16(pushedPCLow) | uint16(pushedPCHigh)<<8
	require.Equal(t, uint16(0x8002), pushedPC)
	require.Equal(t, uint64(7), cycles)
	require.Equal(t, uint64(7), c.Cycles(), "CPU.Cycles must match what Step charged, not double-count the interrupt entry")
}

func TestNMIVectorsThroughFFFA(t *testing.T) { // universal property 7
	c, mem := newTestCPU([]uint8{0xEA}, 0x8000)
	mem.bytes[0xFFFA] = 0x00
	mem.bytes[0xFFFB] = 0x90
	mem.nmi = true
	cycles := c.Step()
	require.Equal(t, uint16(0x9000), c.PC)
	require.Equal(t, 1, mem.nmiTake)
	require.Equal(t, uint64(2), cycles)
	require.Equal(t, uint64(2), c.Cycles())
}

func TestBranchPageCrossPenalty(t *testing.T) {
	c, _ := newTestCPU([]uint8{0xF0, 0x7F}, 0x80FD) // BEQ +127, crosses into next page
	c.Z = true
	cycles := c.Step()
	require.Equal(t, uint64(4), cycles) // 2 base + 1 taken + 1 page-cross
}
