package mapper

import "github.com/ysaito/nescore/cartridge"

// uxrom implements mapper 2: PRG ROM is split into 16 KiB banks, the
// $8000-$BFFF slot is switched by the low bits of any CPU write into
// cartridge space, and $C000-$FFFF is fixed to the last bank. CHR is
// always RAM; UxROM boards have no CHR ROM.
type uxrom struct {
	prg      *region
	prgBanks int
	chr      *region
	chrRAM   []byte
	nt       *nametables
	mirror   cartridge.Mirroring
}

func newUxROM(c *cartridge.Cartridge) *uxrom {
	prgData := c.PRGROM()
	banks := len(prgData) / prgBankSize
	prg := newRegion(0x8000, prgBankSize, 2, prgData)
	prg.setBank(0, prgBankSize, 0)
	prg.setBank(1, prgBankSize, banks-1)

	u := &uxrom{
		prg:      prg,
		prgBanks: banks,
		chrRAM:   make([]byte, chrBankSize),
		nt:       newNametables(c.Header().Mirroring),
		mirror:   c.Header().Mirroring,
	}
	u.chr = newRegion(0x0000, chrBankSize, 1, u.chrRAM)
	u.chr.setBank(0, chrBankSize, 0)
	return u
}

func (u *uxrom) CPURead(addr uint16) byte { return u.prg.read(addr) }

func (u *uxrom) CPUWrite(addr uint16, v byte) {
	bank := int(v) % u.prgBanks
	u.prg.setBank(0, prgBankSize, bank)
}

func (u *uxrom) PPURead(addr uint16) byte {
	if addr < 0x2000 {
		return u.chr.read(addr)
	}
	return u.nt.read(addr)
}

func (u *uxrom) PPUWrite(addr uint16, v byte) {
	if addr < 0x2000 {
		u.chr.write(addr, v)
		return
	}
	u.nt.write(addr, v)
}

func (u *uxrom) Mirroring() cartridge.Mirroring { return u.mirror }
