package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ysaito/nescore/cartridge"
)

func buildROM(prgPages, chrPages int, flags6, flags7 byte) []byte {
	data := make([]byte, 16+prgPages*16*1024+chrPages*8*1024)
	data[0], data[1], data[2], data[3] = 'N', 'E', 'S', 0x1A
	data[4] = byte(prgPages)
	data[5] = byte(chrPages)
	data[6] = flags6
	data[7] = flags7
	return data
}

func TestNewRejectsUnsupportedMapper(t *testing.T) {
	data := buildROM(1, 1, 0x10, 0x00) // mapper id 1 (MMC1), unimplemented.
	c, err := cartridge.New(data)
	require.NoError(t, err)
	_, err = New(c)
	require.Error(t, err)
}

func TestNROMMirrorsSinglePRGBank(t *testing.T) {
	data := buildROM(1, 1, 0x00, 0x00)
	data[16] = 0x42
	c, err := cartridge.New(data)
	require.NoError(t, err)
	m, err := New(c)
	require.NoError(t, err)
	require.Equal(t, byte(0x42), m.CPURead(0x8000))
	require.Equal(t, byte(0x42), m.CPURead(0xC000))
}

func TestNROMTwoBanksAreDistinct(t *testing.T) {
	data := buildROM(2, 1, 0x00, 0x00)
	data[16] = 0x11
	data[16+16*1024] = 0x22
	c, err := cartridge.New(data)
	require.NoError(t, err)
	m, err := New(c)
	require.NoError(t, err)
	require.Equal(t, byte(0x11), m.CPURead(0x8000))
	require.Equal(t, byte(0x22), m.CPURead(0xC000))
}

func TestNROMCHRRAMIsWritable(t *testing.T) {
	data := buildROM(1, 0, 0x00, 0x00)
	c, err := cartridge.New(data)
	require.NoError(t, err)
	m, err := New(c)
	require.NoError(t, err)
	m.PPUWrite(0x0005, 0x99)
	require.Equal(t, byte(0x99), m.PPURead(0x0005))
}

func TestNametableHorizontalMirroring(t *testing.T) {
	// flags6 bit0=0 => cartridge.MirrorVertical, slots (0,1,2,3) -> banks
	// (0,0,1,1): $2000 and $2400 share a bank (horizontal mirroring in NES terms).
	data := buildROM(1, 1, 0x00, 0x00)
	c, err := cartridge.New(data)
	require.NoError(t, err)
	m, err := New(c)
	require.NoError(t, err)
	m.PPUWrite(0x2000, 0xAA)
	require.Equal(t, byte(0xAA), m.PPURead(0x2400))
	require.NotEqual(t, byte(0xAA), m.PPURead(0x2800))
}

func TestNametableVerticalMirroring(t *testing.T) {
	// flags6 bit0=1 => cartridge.MirrorHorizontal, slots (0,1,2,3) -> banks
	// (0,1,0,1): $2000 and $2800 share a bank (vertical mirroring in NES terms).
	data := buildROM(1, 1, 0x01, 0x00)
	c, err := cartridge.New(data)
	require.NoError(t, err)
	m, err := New(c)
	require.NoError(t, err)
	m.PPUWrite(0x2000, 0x55)
	require.Equal(t, byte(0x55), m.PPURead(0x2800))
	require.NotEqual(t, byte(0x55), m.PPURead(0x2400))
}

func TestNametableMirrorsAboveThreeThousand(t *testing.T) {
	data := buildROM(1, 1, 0x00, 0x00)
	c, err := cartridge.New(data)
	require.NoError(t, err)
	m, err := New(c)
	require.NoError(t, err)
	m.PPUWrite(0x2000, 0x77)
	require.Equal(t, byte(0x77), m.PPURead(0x3000))
}

func TestUxROMBankSwitching(t *testing.T) {
	data := buildROM(4, 0, 0x20, 0x00) // mapper 2 (low nibble in flags6 bits 4-7).
	for bank := 0; bank < 4; bank++ {
		data[16+bank*16*1024] = byte(0x10 + bank)
	}
	c, err := cartridge.New(data)
	require.NoError(t, err)
	m, err := New(c)
	require.NoError(t, err)

	require.Equal(t, byte(0x10), m.CPURead(0x8000))
	require.Equal(t, byte(0x13), m.CPURead(0xC000)) // fixed to last bank.

	m.CPUWrite(0x8000, 0x02)
	require.Equal(t, byte(0x12), m.CPURead(0x8000))
	require.Equal(t, byte(0x13), m.CPURead(0xC000)) // unaffected.
}

func TestUxROMCHRIsAlwaysRAM(t *testing.T) {
	data := buildROM(2, 0, 0x20, 0x00) // mapper 2.
	c, err := cartridge.New(data)
	require.NoError(t, err)
	m, err := New(c)
	require.NoError(t, err)
	m.PPUWrite(0x0010, 0x5A)
	require.Equal(t, byte(0x5A), m.PPURead(0x0010))
}
