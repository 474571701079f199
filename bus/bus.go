// Package bus decodes the NES CPU address space into CpuRam, PPU
// registers, controller ports, cartridge RAM, and the mapper, and
// performs OAM DMA transfers on behalf of the CPU.
package bus

import (
	"github.com/golang/glog"

	"github.com/ysaito/nescore/controller"
	"github.com/ysaito/nescore/mapper"
	"github.com/ysaito/nescore/memory"
	"github.com/ysaito/nescore/ppu"
)

// ppuPort is the narrow PPU capability the Bus needs.
type ppuPort interface {
	ReadRegister(addr uint16) byte
	WriteRegister(addr uint16, data byte)
	WriteOAMDMA(data [256]byte)
}

// Bus is the CPU's view of the machine: RAM, PPU registers, both
// controller ports, cartridge RAM, and the mapper's PRG window.
type Bus struct {
	ram          *memory.RAM
	ppu          ppuPort
	mapper       mapper.Mapper
	controller1  *controller.Controller
	controller2  *controller.Controller
	cartridgeRAM [0x2000]byte // $6000-$7FFF.
	openBus      byte
}

// New wires a Bus to its backing components. ppu is accepted as an
// interface so tests can substitute a fake without constructing a real
// mapper-backed PPU.
func New(ram *memory.RAM, p ppuPort, m mapper.Mapper, c1, c2 *controller.Controller) *Bus {
	return &Bus{ram: ram, ppu: p, mapper: m, controller1: c1, controller2: c2}
}

// Read performs a CPU-side read per the $0000-$FFFF decode table: RAM,
// mirrored PPU registers, controller ports, an APU/IO placeholder, open
// bus, cartridge RAM, and the mapper's PRG window.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr < 0x2000:
		b.openBus = b.ram.Read(addr)
	case addr < 0x4000:
		b.openBus = b.ppu.ReadRegister(0x2000 + (addr-0x2000)%8)
	case addr == 0x4016:
		b.openBus = b.controller1.Read()
	case addr == 0x4017:
		if b.controller2 != nil {
			b.openBus = b.controller2.Read()
		} else {
			b.openBus = 0
		}
	case addr < 0x4020:
		glog.V(2).Infof("bus: unimplemented APU/IO read at 0x%04x", addr)
		b.openBus = 0
	case addr < 0x6000:
		b.openBus = 0
	case addr < 0x8000:
		b.openBus = b.cartridgeRAM[addr-0x6000]
	default:
		b.openBus = b.mapper.CPURead(addr)
	}
	return b.openBus
}

// Read16 reads a little-endian 16-bit value.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

// Write performs a CPU-side write. $4014 (OAM DMA) is deliberately not
// handled here: the CPU intercepts it before reaching the bus so it can
// account for the stall cycles against its own cycle counter, mirroring
// how the real hardware halts the CPU mid-instruction.
func (b *Bus) Write(addr uint16, v byte) {
	b.openBus = v
	switch {
	case addr < 0x2000:
		b.ram.Write(addr, v)
	case addr < 0x4000:
		b.ppu.WriteRegister(0x2000+(addr-0x2000)%8, v)
	case addr == 0x4014:
		glog.Errorf("bus: write to 0x4014 reached Bus.Write; OAM DMA must go through Bus.OAMDMA")
	case addr == 0x4016:
		b.controller1.Write(v)
		if b.controller2 != nil {
			b.controller2.Write(v)
		}
	case addr < 0x4020:
		glog.V(2).Infof("bus: unimplemented APU/IO write at 0x%04x = 0x%02x", addr, v)
	case addr < 0x6000:
		// Open bus; nothing to store.
	case addr < 0x8000:
		b.cartridgeRAM[addr-0x6000] = v
	default:
		b.mapper.CPUWrite(addr, v)
	}
}

// OAMDMA copies the 256-byte page starting at page<<8 into PPU OAM. It
// returns the number of CPU cycles the transfer stalls the CPU for: 513,
// or 514 when triggered on an odd CPU cycle (one extra alignment cycle
// before the transfer proper begins).
func (b *Bus) OAMDMA(page byte, cpuCycleOdd bool) int {
	var data [256]byte
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		data[i] = b.Read(base + uint16(i))
	}
	b.ppu.WriteOAMDMA(data)
	if cpuCycleOdd {
		return 514
	}
	return 513
}

// OpenBus returns the last value latched onto the bus, approximating
// open-bus read behavior for addresses with no real backing store.
func (b *Bus) OpenBus() byte { return b.openBus }
