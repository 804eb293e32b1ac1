package cartridge_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SyedAsadK/rnes/internal/cartridge"
)

func buildROM(prgBanks, chrBanks int, flags6, flags7 uint8, prgFill uint8) []byte {
	header := make([]byte, 16)
	copy(header[0:4], []byte("NES\x1A"))
	header[4] = uint8(prgBanks)
	header[5] = uint8(chrBanks)
	header[6] = flags6
	header[7] = flags7

	body := make([]byte, prgBanks*16*1024+chrBanks*8*1024)
	for i := range body[:prgBanks*16*1024] {
		body[i] = prgFill
	}
	return append(header, body...)
}

func TestLoadFromReaderValidNROM(t *testing.T) {
	rom := buildROM(2, 1, 0, 0, 0xAB)
	cart, err := cartridge.LoadFromReader(bytes.NewReader(rom))
	require.NoError(t, err)

	info := cart.Info()
	require.Equal(t, uint8(0), info.Mapper)
	require.Equal(t, 2, info.PRGBanks)
	require.Equal(t, 1, info.CHRBanks)
	require.False(t, info.HasCHRRAM)
	require.Equal(t, uint8(0xAB), cart.ReadPRG(0x8000))
}

func TestLoadFromReaderRejectsBadMagic(t *testing.T) {
	rom := buildROM(1, 1, 0, 0, 0)
	rom[0] = 'X'
	_, err := cartridge.LoadFromReader(bytes.NewReader(rom))
	require.Error(t, err)
	var decodeErr *cartridge.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, cartridge.InvalidHeader, decodeErr.Kind)
}

func TestLoadFromReaderRejectsZeroPRG(t *testing.T) {
	rom := buildROM(0, 1, 0, 0, 0)
	_, err := cartridge.LoadFromReader(bytes.NewReader(rom))
	require.Error(t, err)
}

func TestLoadFromReaderTruncatedBody(t *testing.T) {
	rom := buildROM(2, 1, 0, 0, 0)
	truncated := rom[:len(rom)-100]
	_, err := cartridge.LoadFromReader(bytes.NewReader(truncated))
	require.Error(t, err)
	var decodeErr *cartridge.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, cartridge.TruncatedBody, decodeErr.Kind)
}

func TestLoadFromReaderUnsupportedMapper(t *testing.T) {
	rom := buildROM(1, 1, 0x10, 0, 0) // mapper 1
	_, err := cartridge.LoadFromReader(bytes.NewReader(rom))
	require.Error(t, err)
	var decodeErr *cartridge.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, cartridge.UnsupportedMapper, decodeErr.Kind)
}

func TestLoadFromReaderRejectsUnsupportedVersion(t *testing.T) {
	for _, flags7 := range []uint8{0x04, 0x08, 0x0C} {
		rom := buildROM(1, 1, 0, flags7, 0)
		_, err := cartridge.LoadFromReader(bytes.NewReader(rom))
		require.Error(t, err)
		var decodeErr *cartridge.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		require.Equal(t, cartridge.UnsupportedVersion, decodeErr.Kind)
	}
}

func TestCHRRAMFallbackWhenHeaderDeclaresZero(t *testing.T) {
	rom := buildROM(1, 0, 0, 0, 0)
	cart, err := cartridge.LoadFromReader(bytes.NewReader(rom))
	require.NoError(t, err)
	require.True(t, cart.Info().HasCHRRAM)

	cart.WriteCHR(0x0010, 0x42)
	require.Equal(t, uint8(0x42), cart.ReadCHR(0x0010))
}

func TestMirroringFlags(t *testing.T) {
	vertical := buildROM(1, 1, 0x01, 0, 0)
	cart, err := cartridge.LoadFromReader(bytes.NewReader(vertical))
	require.NoError(t, err)
	require.Equal(t, cartridge.MirrorVertical, cart.Mirror())

	fourScreen := buildROM(1, 1, 0x08, 0, 0)
	cart2, err := cartridge.LoadFromReader(bytes.NewReader(fourScreen))
	require.NoError(t, err)
	require.Equal(t, cartridge.MirrorFourScreen, cart2.Mirror())
}

func TestPRGRAMReadWrite(t *testing.T) {
	rom := buildROM(1, 1, 0, 0, 0)
	cart, err := cartridge.LoadFromReader(bytes.NewReader(rom))
	require.NoError(t, err)

	cart.WritePRG(0x6000, 0x99)
	require.Equal(t, uint8(0x99), cart.ReadPRG(0x6000))
}

func TestSixteenKBPRGMirrorsToThirtyTwoKBWindow(t *testing.T) {
	rom := buildROM(1, 1, 0, 0, 0x11)
	cart, err := cartridge.LoadFromReader(bytes.NewReader(rom))
	require.NoError(t, err)

	require.Equal(t, cart.ReadPRG(0x8000), cart.ReadPRG(0xC000))
}
