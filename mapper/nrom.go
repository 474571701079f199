package mapper

import "github.com/ysaito/nescore/cartridge"

const (
	prgBankSize = 16 * 1024
	chrBankSize = 8 * 1024
)

// nrom implements mapper 0: fixed PRG ROM (mirrored into both slots when
// the cartridge has only one 16 KiB page) and either fixed CHR ROM or a
// single 8 KiB bank of CHR RAM. There is no bank-select register; CPU
// writes into cartridge space are ignored.
type nrom struct {
	prg   *region
	chr   *region
	chrRAM []byte
	nt    *nametables
	mirror cartridge.Mirroring
}

func newNROM(c *cartridge.Cartridge) *nrom {
	prgData := c.PRGROM()
	prg := newRegion(0x8000, prgBankSize, 2, prgData)
	if len(prgData) == prgBankSize {
		prg.setBank(0, prgBankSize, 0)
		prg.setBank(1, prgBankSize, 0)
	} else {
		prg.setBank(0, prgBankSize, 0)
		prg.setBank(1, prgBankSize, 1)
	}

	n := &nrom{prg: prg, nt: newNametables(c.Header().Mirroring), mirror: c.Header().Mirroring}
	if c.HasCHRRAM() {
		n.chrRAM = make([]byte, chrBankSize)
		n.chr = newRegion(0x0000, chrBankSize, 1, n.chrRAM)
	} else {
		n.chr = newRegion(0x0000, chrBankSize, 1, c.CHRROM())
	}
	n.chr.setBank(0, chrBankSize, 0)
	return n
}

func (n *nrom) CPURead(addr uint16) byte    { return n.prg.read(addr) }
func (n *nrom) CPUWrite(addr uint16, v byte) {} // NROM has no writable registers.

func (n *nrom) PPURead(addr uint16) byte {
	if addr < 0x2000 {
		return n.chr.read(addr)
	}
	return n.nt.read(addr)
}

func (n *nrom) PPUWrite(addr uint16, v byte) {
	if addr < 0x2000 {
		if n.chrRAM != nil {
			n.chr.write(addr, v)
		}
		return
	}
	n.nt.write(addr, v)
}

func (n *nrom) Mirroring() cartridge.Mirroring { return n.mirror }
