// Package console orchestrates the CPU/PPU/Bus/Mapper aggregate into the
// public embedding surface a host drives: cartridge insertion, reset, and
// the three granularities of stepping (instruction, scanline, frame).
package console

import (
	"image"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/ysaito/nescore/bus"
	"github.com/ysaito/nescore/cartridge"
	"github.com/ysaito/nescore/controller"
	"github.com/ysaito/nescore/cpu"
	"github.com/ysaito/nescore/mapper"
	"github.com/ysaito/nescore/memory"
	"github.com/ysaito/nescore/ppu"
)

// dotsPerCPUCycle is the NTSC PPU:CPU clock ratio this Console preserves
// across every instruction and OAM DMA stall cycle.
const dotsPerCPUCycle = 3

// PixelSink receives one call per visible pixel once a frame completes.
// x is 0-255, y is 0-239. The core does not invoke this mid-frame; see
// DESIGN.md for why (the PPU renders into its own framebuffer rather than
// calling back per dot).
type PixelSink func(x, y uint16, r, g, b byte)

// ControllerRead reports the currently latched button state of both
// controller ports, high bit first: A, B, Select, Start, Up, Down, Left,
// Right. The second return value is ignored when no second controller is
// attached.
type ControllerRead func() (byte, byte)

// Console is the host-embeddable aggregate coupling the CPU, PPU, Bus,
// Mapper, and both controller ports.
type Console struct {
	ram          *memory.RAM
	ppu          *ppu.PPU
	mapper       mapper.Mapper
	cart         *cartridge.Cartridge
	bus          *bus.Bus
	cpu          *cpu.CPU
	controller1  *controller.Controller
	controller2  *controller.Controller
	pixelSink    PixelSink
	controllerRead ControllerRead
	traceHook    func(cpu.Snapshot)

	scanlineDots int // dots accumulated since the last scanline marker.
}

// New constructs a Console with no cartridge inserted. Insert must be
// called before Reset or any Step* method.
func New(pixelSink PixelSink, controllerRead ControllerRead) *Console {
	return &Console{
		controller1:    controller.New(),
		controller2:    controller.New(),
		pixelSink:      pixelSink,
		controllerRead: controllerRead,
	}
}

// SetTraceHook registers fn to be invoked after every completed
// instruction, before PPU catch-up. fn must not mutate CPU state.
func (c *Console) SetTraceHook(fn func(cpu.Snapshot)) { c.traceHook = fn }

// Insert parses data as an iNES image, constructs the matching mapper,
// wires it to a fresh Bus/PPU/CPU, and resets. It never panics: a bad ROM
// or unsupported mapper id returns a typed, wrapped error.
func (c *Console) Insert(data []byte) error {
	cart, err := cartridge.New(data)
	if err != nil {
		return errors.Wrap(err, "console.Insert")
	}
	m, err := mapper.New(cart)
	if err != nil {
		return errors.Wrap(err, "console.Insert")
	}

	c.cart = cart
	c.mapper = m
	c.ram = memory.New()
	c.ppu = ppu.New(m)
	c.bus = bus.New(c.ram, c.ppu, m, c.controller1, c.controller2)
	c.cpu = cpu.New(c.bus)
	glog.V(1).Infof("console: cartridge inserted, mapper=%d", cart.Header().MapperID)
	c.Reset()
	return nil
}

// Reset performs a CPU reset (7 cycles) and advances the PPU the matching
// 21 dots to keep the two units in lockstep.
func (c *Console) Reset() {
	c.cpu.Reset()
	c.scanlineDots = 0
	for i := 0; i < 7*dotsPerCPUCycle; i++ {
		c.ppu.Step()
	}
}

func (c *Console) sampleControllers() {
	if c.controllerRead == nil {
		return
	}
	b1, b2 := c.controllerRead()
	c.controller1.SetButtons(unpackButtons(b1))
	c.controller2.SetButtons(unpackButtons(b2))
}

// unpackButtons splits a bit-packed controller byte (high bit first: A, B,
// Select, Start, Up, Down, Left, Right) into controller.Controller's
// indexed button array.
func unpackButtons(packed byte) [8]bool {
	var out [8]bool
	for i := 0; i < 8; i++ {
		out[i] = packed&(1<<uint(7-i)) != 0
	}
	return out
}

// StepInstruction executes exactly one CPU instruction (or interrupt
// service, or one leftover OAM DMA stall cycle), advances the PPU by
// exactly 3 dots per CPU cycle consumed, and latches any NMI the PPU
// raised during those dots for the CPU's next fetch. It returns the
// number of CPU cycles consumed.
func (c *Console) StepInstruction() int {
	c.sampleControllers()
	cycles := c.cpu.Step()
	if c.traceHook != nil {
		c.traceHook(c.cpu.Snapshot())
	}
	nmi := false
	for i := 0; i < cycles*dotsPerCPUCycle; i++ {
		if c.ppu.Step() {
			nmi = true
		}
	}
	if nmi {
		c.cpu.TriggerNMI()
	}
	c.scanlineDots += cycles * dotsPerCPUCycle
	return cycles
}

// StepScanline runs instructions until the PPU has advanced at least 341
// dots since the last scanline marker; any excess dots roll into the next
// scanline's count rather than being dropped.
func (c *Console) StepScanline() {
	for c.scanlineDots < ppu.DotsPerScanline {
		c.StepInstruction()
	}
	c.scanlineDots -= ppu.DotsPerScanline
}

// StepFrame runs scanlines until a full 262-scanline frame completes, then
// replays the completed framebuffer through the registered PixelSink, one
// call per visible pixel.
func (c *Console) StepFrame() {
	for i := 0; i < ppu.ScanlinesPerFrame; i++ {
		c.StepScanline()
	}
	if c.pixelSink == nil {
		return
	}
	_, picture := c.ppu.Frame()
	bounds := picture.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba := picture.RGBAAt(x, y)
			c.pixelSink(uint16(x), uint16(y), rgba.R, rgba.G, rgba.B)
		}
	}
}

// CPURegisters returns a point-in-time snapshot of CPU-visible state.
func (c *Console) CPURegisters() cpu.Snapshot { return c.cpu.Snapshot() }

// PPUFrame returns the PPU's current (possibly in-progress) framebuffer.
func (c *Console) PPUFrame() *image.RGBA {
	_, picture := c.ppu.Frame()
	return picture
}

// PPUScanline and PPUDot expose the PPU's current raster position.
func (c *Console) PPUScanline() int { return c.ppu.Scanline() }
func (c *Console) PPUDot() int      { return c.ppu.Dot() }

// PaletteRAM returns the PPU's 32-byte palette memory.
func (c *Console) PaletteRAM() [32]byte { return c.ppu.PaletteRAM() }

// OAM returns the PPU's 256-byte primary object attribute memory.
func (c *Console) OAM() [256]byte { return c.ppu.OAM() }

// CartridgeHeader returns the inserted cartridge's parsed iNES header.
func (c *Console) CartridgeHeader() cartridge.Header { return c.cart.Header() }
