package mapper

import "github.com/ysaito/nescore/cartridge"

// nametables owns the two physical 1 KiB CIRAM banks and the four-slot
// table that folds the PPU's four logical nametables onto them. Horizontal
// mirroring assigns slots (0,1,2,3) to banks (0,1,0,1); vertical mirroring
// assigns them to banks (0,0,1,1). Four-screen cartridges get their own
// bank per slot, which only matters for carts with onboard nametable RAM;
// this core treats it as an alias of vertical since it never ships one.
type nametables struct {
	ciram [2][1024]byte
	slots [4]int
}

func newNametables(m cartridge.Mirroring) *nametables {
	n := &nametables{}
	n.setMirroring(m)
	return n
}

func (n *nametables) setMirroring(m cartridge.Mirroring) {
	switch m {
	case cartridge.MirrorHorizontal:
		n.slots = [4]int{0, 1, 0, 1}
	case cartridge.MirrorVertical, cartridge.MirrorFourScreen:
		n.slots = [4]int{0, 0, 1, 1}
	}
}

// read and write take an address already folded into 0x2000-0x3EFF.
func (n *nametables) read(addr uint16) byte {
	slot, offset := n.resolve(addr)
	return n.ciram[n.slots[slot]][offset]
}

func (n *nametables) write(addr uint16, v byte) {
	slot, offset := n.resolve(addr)
	n.ciram[n.slots[slot]][offset] = v
}

func (n *nametables) resolve(addr uint16) (slot int, offset int) {
	rel := (addr - 0x2000) & 0x0FFF
	return int(rel / 0x0400), int(rel % 0x0400)
}
