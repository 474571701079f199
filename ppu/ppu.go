// Package ppu implements the NES Picture Processing Unit: a per-dot
// state machine driving background fetches, sprite evaluation, the pixel
// mux, VBlank/NMI timing, and the register file and OAM/palette memories
// the CPU bus exposes at $2000-$3FFF.
package ppu

import (
	"image"
	"image/color"
)

// Frame dimensions in pixels.
const (
	Width  = 256
	Height = 240
)

// DotsPerScanline and ScanlinesPerFrame give the NTSC timing this PPU
// emulates: 341 dots per scanline, 262 scanlines per frame.
const (
	DotsPerScanline   = 341
	ScanlinesPerFrame = 262
)

// colors is the NES's fixed 64-entry NTSC palette.
// Reference: https://emulation.gametechwiki.com/index.php/Famicom_color_palette
var colors = [64]color.RGBA{
	{0x6D, 0x6D, 0x6D, 255}, {0x00, 0x24, 0x92, 255}, {0x00, 0x00, 0xDB, 255}, {0x6D, 0x49, 0xDB, 255},
	{0x92, 0x00, 0x6D, 255}, {0xB6, 0x00, 0x6D, 255}, {0xB6, 0x24, 0x00, 255}, {0x92, 0x49, 0x00, 255},
	{0x6D, 0x49, 0x00, 255}, {0x24, 0x49, 0x00, 255}, {0x00, 0x6D, 0x24, 255}, {0x00, 0x92, 0x00, 255},
	{0x00, 0x49, 0x49, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
	{0xB6, 0xB6, 0xB6, 255}, {0x00, 0x6D, 0xDB, 255}, {0x00, 0x49, 0xFF, 255}, {0x92, 0x00, 0xFF, 255},
	{0xB6, 0x00, 0xFF, 255}, {0xFF, 0x00, 0x92, 255}, {0xFF, 0x00, 0x00, 255}, {0xDB, 0x6D, 0x00, 255},
	{0x92, 0x6D, 0x00, 255}, {0x24, 0x92, 0x00, 255}, {0x00, 0x92, 0x00, 255}, {0x00, 0xB6, 0x6D, 255},
	{0x00, 0x92, 0x92, 255}, {0x24, 0x24, 0x24, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
	{0xFF, 0xFF, 0xFF, 255}, {0x6D, 0xB6, 0xFF, 255}, {0x92, 0x92, 0xFF, 255}, {0xDB, 0x6D, 0xFF, 255},
	{0xFF, 0x00, 0xFF, 255}, {0xFF, 0x6D, 0xFF, 255}, {0xFF, 0x92, 0x00, 255}, {0xFF, 0xB6, 0x00, 255},
	{0xDB, 0xDB, 0x00, 255}, {0x6D, 0xDB, 0x00, 255}, {0x00, 0xFF, 0x00, 255}, {0x49, 0xFF, 0xDB, 255},
	{0x00, 0xFF, 0xFF, 255}, {0x49, 0x49, 0x49, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
	{0xFF, 0xFF, 0xFF, 255}, {0xB6, 0xDB, 0xFF, 255}, {0xDB, 0xB6, 0xFF, 255}, {0xFF, 0xB6, 0xFF, 255},
	{0xFF, 0x92, 0xFF, 255}, {0xFF, 0xB6, 0xB6, 255}, {0xFF, 0xDB, 0x92, 255}, {0xFF, 0xFF, 0x49, 255},
	{0xFF, 0xFF, 0x6D, 255}, {0xB6, 0xFF, 0x49, 255}, {0x92, 0xFF, 0x6D, 255}, {0x49, 0xFF, 0xDB, 255},
	{0x92, 0xDB, 0xFF, 255}, {0x92, 0x92, 0x92, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
}

// bus is the narrow capability the PPU needs from a cartridge mapper:
// CHR and nametable access. It is satisfied by mapper.Mapper.
type bus interface {
	PPURead(addr uint16) byte
	PPUWrite(addr uint16, v byte)
}

// PPU is the per-dot NES picture processing unit.
type PPU struct {
	bus     bus
	picture *image.RGBA

	oamAddress   byte
	primaryOAM   [256]byte
	secondaryOAM [8]sprite
	secondaryNum int

	spriteOverflow bool
	spriteZeroHit  bool

	// v, t, x, w: the PPU scrolling/addressing latch described at
	// https://www.nesdev.org/wiki/PPU_scrolling.
	v uint16
	t uint16
	x byte
	w bool

	buffer   byte
	busLatch byte // open-bus value for write-only register reads.

	nmiOccurred bool
	nmiOutput   bool

	nameTableFlag         byte
	vramIncrementFlag     byte
	spriteTableFlag       byte
	backgroundTableFlag   byte
	spriteSizeFlag        byte
	masterSlaveSelectFlag byte

	grayScale          bool
	showLeftBackground bool
	showLeftSprite     bool
	showBackground     bool
	showSprite         bool
	emphasizeRed       bool
	emphasizeGreen     bool
	emphasizeBlue      bool

	paletteRAM paletteRAM

	nameTableByte      byte
	attributeTableByte byte
	lowTileByte        byte
	highTileByte       byte
	tileDataBuffer     [6]byte

	cycle    int
	scanline int
}

// New constructs a PPU reading CHR/nametable data through b (a
// mapper.Mapper in production, a fake in tests).
func New(b bus) *PPU {
	return &PPU{
		bus:     b,
		picture: image.NewRGBA(image.Rect(0, 0, Width, Height)),
	}
}

// Reset puts the PPU at dot 0 of the post-render scanline (240), one line
// before vblank begins, matching power-on behavior
// closely enough that the first visible frame renders correctly; exact
// power-on PPU state varies by revision and is not otherwise specified.
func (p *PPU) Reset() {
	p.cycle = 0
	p.scanline = 240
}

// Frame reports whether the dot just stepped completed the visible
// picture, returning it if so.
func (p *PPU) Frame() (bool, *image.RGBA) {
	return p.cycle == 257 && p.scanline == 239, p.picture
}

// Scanline and Dot expose the PPU's raster position for introspection.
func (p *PPU) Scanline() int { return p.scanline }
func (p *PPU) Dot() int      { return p.cycle }

// OAM returns the primary OAM bytes.
func (p *PPU) OAM() [256]byte { return p.primaryOAM }

// PaletteRAM returns the 32-byte palette memory.
func (p *PPU) PaletteRAM() [32]byte { return p.paletteRAM.ram }

func (p *PPU) color(value, attributeTableData byte) color.RGBA {
	x := p.cycle - 1
	y := p.scanline
	num := byte(y&8)>>2 | byte(x&8)>>3
	palette := (attributeTableData >> (num << 1)) & 3
	paletteIndex := p.paletteRAM.read(0x3F00 | uint16((palette<<2)+value))
	return colors[paletteIndex]
}

// incrementCoarseX advances the coarse X scroll component of v, wrapping
// into the next horizontal nametable.
// https://www.nesdev.org/wiki/PPU_scrolling
func (p *PPU) incrementCoarseX() {
	if p.v&0x001F == 31 {
		p.v &= 0xFFE0
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

func (p *PPU) copyX() {
	p.v = (p.v & 0xFBE0) | (p.t & 0x041F)
}

func (p *PPU) copyY() {
	p.v = (p.v & 0x841F) | (p.t & 0x7BE0)
}

// incrementY advances the fine/coarse Y scroll component of v.
// https://www.nesdev.org/wiki/PPU_scrolling#Wrapping_around
func (p *PPU) incrementY() {
	if (p.v & 0x7000) != 0x7000 {
		p.v += 0x1000
	} else {
		p.v &= 0x8FFF
		y := (p.v & 0x03E0) >> 5
		switch y {
		case 29:
			y = 0
			p.v ^= 0x0800
		case 31:
			y = 0
		default:
			y++
		}
		p.v = (p.v & 0xFC1F) | (y << 5)
	}
}

func (p *PPU) fetchNameTableByte() {
	p.nameTableByte = p.bus.PPURead(0x2000 | (p.v & 0x0FFF))
}

// fetchAttributeTableByte address calc from https://www.nesdev.org/wiki/PPU_scrolling
func (p *PPU) fetchAttributeTableByte() {
	address := 0x23C0 | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
	p.attributeTableByte = p.bus.PPURead(address)
}

func (p *PPU) fetchLowTileByte() {
	fineY := (p.v >> 12) & 0b111
	address := 0x1000*uint16(p.backgroundTableFlag) + uint16(p.nameTableByte)*16 + fineY
	p.lowTileByte = p.bus.PPURead(address)
}

func (p *PPU) fetchHighTileByte() {
	fineY := (p.v >> 12) & 0b111
	address := 0x1000*uint16(p.backgroundTableFlag) + uint16(p.nameTableByte)*16 + fineY + 8
	p.highTileByte = p.bus.PPURead(address)
}

func (p *PPU) renderBackgroundPixel() byte {
	if !p.showBackground {
		return 0
	}
	x := p.cycle - 1
	lowTileByte := p.tileDataBuffer[4]
	highTileByte := p.tileDataBuffer[5]
	lv := lowTileByte >> (7 - (x % 8)) & 1
	hv := highTileByte >> (7 - (x % 8)) & 1
	return lv | hv<<1
}

func (p *PPU) renderPixel() {
	x := p.cycle - 1
	y := p.scanline
	attributeTableByte := p.tileDataBuffer[3]
	bg := p.renderBackgroundPixel()
	i, sp := p.renderSpritePixel()
	if x < 8 && !p.showLeftBackground {
		bg = 0
	}
	if x < 8 && !p.showLeftSprite {
		sp = 0
	}
	bgOpaque := bg != 0
	spOpaque := sp != 0
	sprite := p.secondaryOAM[i]
	var pixel color.RGBA
	switch {
	case !spOpaque && !bgOpaque:
		pixel = colors[p.paletteRAM.read(0x3F00)]
	case spOpaque && !bgOpaque:
		pixel = colors[p.paletteRAM.read(sprite.paletteAddress(sp))]
	case !spOpaque && bgOpaque:
		pixel = p.color(bg, attributeTableByte)
	default:
		if sprite.priority() == 1 {
			pixel = p.color(bg, attributeTableByte)
		} else {
			pixel = colors[p.paletteRAM.read(sprite.paletteAddress(sp))]
		}
		// "When an opaque pixel of sprite 0 overlaps an opaque pixel of
		// the background, this is a sprite zero hit."
		if sprite.index == 0 && x < 255 {
			p.spriteZeroHit = true
		}
	}
	p.picture.SetRGBA(x, y, pixel)
}

// Step advances the PPU by one dot and reports whether this dot should
// assert NMI to the CPU.
// References:
//
//	https://www.nesdev.org/wiki/PPU_rendering
//	https://www.nesdev.org/wiki/File:Ntsc_timing.png
func (p *PPU) Step() bool {
	p.cycle++
	if p.cycle == DotsPerScanline {
		p.cycle = 0
		p.scanline++
		if p.scanline == ScanlinesPerFrame {
			p.scanline = 0
		}
	}

	if p.showBackground {
		if 1 <= p.cycle && p.cycle <= 256 && p.scanline <= 239 {
			p.renderPixel()
		}
		if p.scanline == 261 && 280 <= p.cycle && p.cycle <= 304 {
			p.copyY()
		}
		if p.scanline < 240 || p.scanline == 261 {
			if 1 <= p.cycle && p.cycle <= 256 && p.cycle%8 == 0 {
				p.incrementCoarseX()
			}
			if p.cycle == 328 || p.cycle == 336 {
				p.incrementCoarseX()
			}
			if p.cycle == 256 {
				p.incrementY()
			}
			if p.cycle == 257 {
				p.copyX()
			}
			if (0 < p.cycle && p.cycle <= 257) || 320 < p.cycle {
				switch p.cycle % 8 {
				case 0:
					// The PPU fetches tile data 2 fetch-cycles ahead of
					// when it is consumed; shift the pipeline here.
					p.tileDataBuffer[3] = p.tileDataBuffer[0]
					p.tileDataBuffer[4] = p.tileDataBuffer[1]
					p.tileDataBuffer[5] = p.tileDataBuffer[2]
					p.tileDataBuffer[0] = p.attributeTableByte
					p.tileDataBuffer[1] = p.lowTileByte
					p.tileDataBuffer[2] = p.highTileByte
				case 1:
					p.fetchNameTableByte()
				case 3:
					p.fetchAttributeTableByte()
				case 5:
					p.fetchLowTileByte()
				case 7:
					p.fetchHighTileByte()
				}
			}
		}
	}

	if p.scanline == 241 && p.cycle == 1 {
		p.nmiOccurred = true
	}
	if p.scanline == 261 && p.cycle == 1 {
		p.spriteOverflow = false
		p.spriteZeroHit = false
		p.nmiOccurred = false
	}
	if p.cycle == 257 {
		if p.scanline < 240 {
			p.evaluateSprite()
		} else {
			p.secondaryNum = 0
		}
	}
	return p.nmiOutput && p.nmiOccurred && p.scanline == 241 && p.cycle == 1
}
