package tiledump_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SyedAsadK/rnes/internal/tiledump"
)

func TestDumpOneSolidTile(t *testing.T) {
	chr := make([]uint8, 16)
	for i := 0; i < 8; i++ {
		chr[i] = 0xFF
		chr[i+8] = 0xFF
	}

	var buf bytes.Buffer
	require.NoError(t, tiledump.Dump(&buf, chr))

	out := buf.String()
	require.Contains(t, out, "tile 0000:")
	require.Contains(t, out, "########")
}

func TestDumpEmptyTileIsBlank(t *testing.T) {
	chr := make([]uint8, 16)

	var buf bytes.Buffer
	require.NoError(t, tiledump.Dump(&buf, chr))

	out := buf.String()
	require.Contains(t, out, "        \n")
}

func TestDumpCoversEveryTile(t *testing.T) {
	chr := make([]uint8, 16*3)

	var buf bytes.Buffer
	require.NoError(t, tiledump.Dump(&buf, chr))

	out := buf.String()
	require.Contains(t, out, "tile 0000:")
	require.Contains(t, out, "tile 0001:")
	require.Contains(t, out, "tile 0002:")
}
