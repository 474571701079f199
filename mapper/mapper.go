// Package mapper translates CPU/PPU addresses within cartridge space to
// PRG/CHR offsets and owns the nametable CIRAM banks plus their mirroring.
// cpu_read/cpu_write/ppu_read/ppu_write form the capability contract: a
// new mapper is added by implementing Mapper, without touching the Bus or
// the PPU.
package mapper

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/ysaito/nescore/cartridge"
	"github.com/ysaito/nescore/neserr"
)

// Mapper is the capability contract every cartridge mapper satisfies.
type Mapper interface {
	// CPURead returns the PRG byte mapped at addr (addr >= 0x8000).
	CPURead(addr uint16) byte
	// CPUWrite handles a CPU write into cartridge space; bank-switching
	// mappers treat it as a bank-select register write, pure-ROM mappers
	// ignore it.
	CPUWrite(addr uint16, v byte)
	// PPURead returns the CHR or nametable byte at addr (addr < 0x3F00).
	PPURead(addr uint16) byte
	// PPUWrite handles a PPU-side write (CHR RAM or nametable RAM).
	PPUWrite(addr uint16, v byte)
	// Mirroring reports the nametable arrangement currently in effect.
	Mirroring() cartridge.Mirroring
}

// New dispatches on the cartridge header's mapper id and constructs the
// matching Mapper. Only mapper 0 (NROM) and mapper 2 (UxROM) are
// implemented; any other id is an *neserr.MapperError.
func New(c *cartridge.Cartridge) (Mapper, error) {
	h := c.Header()
	switch h.MapperID {
	case 0:
		glog.V(1).Infof("mapper: selecting NROM (mapper 0)")
		return newNROM(c), nil
	case 2:
		glog.V(1).Infof("mapper: selecting UxROM (mapper 2)")
		return newUxROM(c), nil
	default:
		return nil, errors.Wrapf(neserr.NewMapperError(h.MapperID), "mapper.New")
	}
}
