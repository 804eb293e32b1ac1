package bus_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SyedAsadK/rnes/internal/bus"
	"github.com/SyedAsadK/rnes/internal/cartridge"
)

func testCartridge(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	header := make([]byte, 16)
	copy(header[0:4], []byte("NES\x1A"))
	header[4] = 2 // 32KiB PRG
	header[5] = 1 // 8KiB CHR
	body := make([]byte, 2*16*1024+8*1024)
	rom := append(header, body...)
	cart, err := cartridge.LoadFromReader(bytes.NewReader(rom))
	require.NoError(t, err)
	return cart
}

func TestRAMMirroring(t *testing.T) {
	b := bus.New()
	b.LoadCartridge(testCartridge(t))

	b.Write(0x0000, 0x77)
	require.Equal(t, uint8(0x77), b.Read(0x0000))
	require.Equal(t, uint8(0x77), b.Read(0x0800))
	require.Equal(t, uint8(0x77), b.Read(0x1000))
	require.Equal(t, uint8(0x77), b.Read(0x1800))
}

func TestPPURegisterMirroring(t *testing.T) {
	b := bus.New()
	b.LoadCartridge(testCartridge(t))

	b.Write(0x2000, 0x80) // PPUCTRL: enable NMI
	// $2002 and its mirror $2012 both decode to PPUSTATUS; reads must agree.
	first := b.Read(0x2002)
	second := b.Read(0x200A + 8) // $2012, still within $2000-$3FFF window
	require.Equal(t, first, second)
}

func TestClockCoupling(t *testing.T) {
	b := bus.New()
	b.LoadCartridge(testCartridge(t))
	b.Reset()

	var prev uint64
	for i := 0; i < 20; i++ {
		b.Step()
		require.GreaterOrEqual(t, b.TotalCycles(), prev)
		prev = b.TotalCycles()
	}
	require.Greater(t, prev, uint64(0))
}

func TestOAMDMAStallsCPU(t *testing.T) {
	b := bus.New()
	b.LoadCartridge(testCartridge(t))
	b.Reset()

	before := b.TotalCycles()
	b.Write(0x4014, 0x00) // trigger DMA from page $00
	stepped := uint64(0)
	for i := 0; i < 520; i++ {
		stepped += b.Step()
	}
	require.Greater(t, b.TotalCycles()-before, uint64(512))
}

func TestControllerPortRouting(t *testing.T) {
	b := bus.New()
	b.LoadCartridge(testCartridge(t))

	b.Controller1.SetButton(1, true) // ButtonA == 1
	b.Write(0x4016, 1)
	require.Equal(t, uint8(1), b.Read(0x4016))
}
