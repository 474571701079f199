package cartridge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildROM(prgPages, chrPages int, flags6, flags7 byte) []byte {
	data := make([]byte, 16+prgPages*prgPageSize+chrPages*chrPageSize)
	data[0], data[1], data[2], data[3] = 'N', 'E', 'S', 0x1A
	data[4] = byte(prgPages)
	data[5] = byte(chrPages)
	data[6] = flags6
	data[7] = flags7
	return data
}

func TestNewRejectsBadMagic(t *testing.T) {
	data := buildROM(1, 1, 0, 0)
	data[0] = 'X'
	_, err := New(data)
	require.Error(t, err)
}

func TestNewRejectsTruncated(t *testing.T) {
	_, err := New([]byte{'N', 'E', 'S', 0x1A})
	require.Error(t, err)
}

func TestNewParsesRegionsAndHorizontalMirroring(t *testing.T) {
	data := buildROM(2, 1, 0x01, 0x00)
	for i := range data[16:] {
		data[16+i] = byte(i)
	}
	c, err := New(data)
	require.NoError(t, err)
	require.Equal(t, uint8(2), c.Header().PRGPages)
	require.Equal(t, uint8(1), c.Header().CHRPages)
	require.Equal(t, MirrorHorizontal, c.Header().Mirroring)
	require.Len(t, c.PRGROM(), 2*prgPageSize)
	require.Len(t, c.CHRROM(), chrPageSize)
	require.Equal(t, byte(0), c.PRGROM()[0])
	require.False(t, c.HasCHRRAM())
}

func TestNewVerticalMirroringAndMapperID(t *testing.T) {
	// mapper 2 (UxROM): low nibble in flags6 bits 4-7, high nibble in flags7.
	data := buildROM(2, 0, 0x20, 0x00)
	c, err := New(data)
	require.NoError(t, err)
	require.Equal(t, MirrorVertical, c.Header().Mirroring)
	require.Equal(t, uint8(2), c.Header().MapperID)
	require.True(t, c.HasCHRRAM())
}

func TestNewHonorsTrainerOffset(t *testing.T) {
	data := buildROM(1, 0, 0x04, 0x00) // trainer bit set
	data = append(data[:16], append(make([]byte, trainerSize), data[16:]...)...)
	for i := range data[16+trainerSize:] {
		data[16+trainerSize+i] = 0xAB
	}
	c, err := New(data)
	require.NoError(t, err)
	require.True(t, c.Header().HasTrainer)
	require.Equal(t, byte(0xAB), c.PRGROM()[0])
}
