// Package cartridge parses iNES ROM images and owns the resulting PRG/CHR
// byte regions and header metadata. A Cartridge never mutates after
// construction; banking and mirroring are the Mapper's job.
package cartridge

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/ysaito/nescore/neserr"
)

// Mirroring describes how the cartridge wants its four logical nametables
// folded onto two physical 1 KiB CIRAM banks.
type Mirroring int

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

func (m Mirroring) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorFourScreen:
		return "four-screen"
	default:
		return "unknown"
	}
}

const (
	headerSize     = 16
	prgPageSize    = 16 * 1024
	chrPageSize    = 8 * 1024
	trainerSize    = 512
	magic0, magic1 = 'N', 'E'
	magic2, magic3 = 'S', 0x1A
)

// Header is the parsed first 16 bytes of an iNES image.
type Header struct {
	PRGPages          uint8
	CHRPages          uint8
	MapperID          uint8
	Mirroring         Mirroring
	HasTrainer        bool
	HasPersistentRAM  bool
	AlternateNametable bool
	IsNES2            bool
}

// Cartridge owns the full ROM bytes and exposes read-only PRG/CHR slices.
type Cartridge struct {
	header Header
	prgROM []byte
	chrROM []byte // empty => CHR RAM is in use.
}

func isValid(data []byte) bool {
	return len(data) >= headerSize &&
		data[0] == magic0 && data[1] == magic1 && data[2] == magic2 && data[3] == magic3
}

func parseHeader(data []byte) Header {
	flags6 := data[6]
	flags7 := data[7]
	h := Header{
		PRGPages:           data[4],
		CHRPages:           data[5],
		HasTrainer:         flags6&0x04 != 0,
		HasPersistentRAM:   flags6&0x02 != 0,
		AlternateNametable: flags6&0x08 != 0,
		MapperID:           (flags7 & 0xF0) | (flags6 >> 4),
		IsNES2:             flags7&0x0C == 0x08,
	}
	if flags6&0x01 != 0 {
		h.Mirroring = MirrorHorizontal
	} else {
		h.Mirroring = MirrorVertical
	}
	if h.AlternateNametable {
		h.Mirroring = MirrorFourScreen
	}
	return h
}

// New parses an iNES image. It fails with a *neserr.RomError (wrapped for
// context) if the magic does not match or the declared PRG/CHR regions
// don't fit in the supplied bytes.
func New(data []byte) (*Cartridge, error) {
	if !isValid(data) {
		return nil, errors.Wrap(neserr.NewRomError("missing \"NES\\x1A\" magic or truncated header"), "cartridge.New")
	}
	h := parseHeader(data)

	prgOffset := headerSize
	if h.HasTrainer {
		prgOffset += trainerSize
	}
	prgEnd := prgOffset + int(h.PRGPages)*prgPageSize
	if prgEnd > len(data) {
		return nil, errors.Wrap(neserr.NewRomError("PRG ROM region exceeds file length"), "cartridge.New")
	}
	chrEnd := prgEnd + int(h.CHRPages)*chrPageSize
	if chrEnd > len(data) {
		return nil, errors.Wrap(neserr.NewRomError("CHR ROM region exceeds file length"), "cartridge.New")
	}

	c := &Cartridge{
		header: h,
		prgROM: data[prgOffset:prgEnd],
		chrROM: data[prgEnd:chrEnd],
	}
	glog.V(1).Infof("cartridge: mapper=%d prgPages=%d chrPages=%d mirroring=%s",
		h.MapperID, h.PRGPages, h.CHRPages, h.Mirroring)
	return c, nil
}

// Header returns the parsed header.
func (c *Cartridge) Header() Header { return c.header }

// PRGROM returns the (read-only, by convention) PRG ROM bytes.
func (c *Cartridge) PRGROM() []byte { return c.prgROM }

// CHRROM returns the CHR ROM bytes; empty means the cartridge uses CHR RAM.
func (c *Cartridge) CHRROM() []byte { return c.chrROM }

// HasCHRRAM reports whether pattern data is cartridge RAM rather than ROM.
func (c *Cartridge) HasCHRRAM() bool { return len(c.chrROM) == 0 }
