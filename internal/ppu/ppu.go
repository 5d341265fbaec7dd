// Package ppu implements the 2C02 Picture Processing Unit: the
// dot/scanline timing grid, the loopy scroll registers, the background
// shift-register pipeline, and sprite evaluation.
package ppu

import "gones/internal/cartridge"

// PPU represents the NES Picture Processing Unit (2C02).
type PPU struct {
	// CPU-visible registers ($2000-$2007).
	ctrl   uint8
	mask   uint8
	status uint8

	oamAddr uint8
	oam     [256]uint8

	// Loopy scroll/address registers.
	v uint16 // current VRAM address (15 bits)
	t uint16 // temporary VRAM address / address latch (15 bits)
	x uint8  // fine X scroll (3 bits)
	w bool   // write toggle, shared by PPUSCROLL/PPUADDR

	readBuffer uint8 // buffered $2007 read

	// Nametable RAM: 2KiB physical, mirrored into the 4 logical tables by
	// the cartridge's mirroring mode.
	nameTable  [2][1024]uint8
	paletteRAM [32]uint8

	cart *cartridge.Cartridge

	scanline int
	cycle    int
	oddFrame bool

	frameComplete bool
	frameBuffer   [256 * 240]uint32

	// Background fetch/shift pipeline.
	bgNextTileID   uint8
	bgNextTileAttr uint8
	bgNextTileLo   uint8
	bgNextTileHi   uint8
	bgShiftLo      uint16
	bgShiftHi      uint16
	bgShiftAttrLo  uint16
	bgShiftAttrHi  uint16

	// Sprite evaluation/rendering state.
	secondaryOAM   [32]uint8
	spriteCount    uint8
	spritePatLo    [8]uint8
	spritePatHi    [8]uint8
	spriteAttr     [8]uint8
	spriteX        [8]uint8
	spriteIsZero   [8]bool
	sprite0OnLine  bool
	sprite0Rendered bool

	nmiCallback           func()
	frameCompleteCallback func()
}

const (
	ctrlNMIEnable    = 0x80
	ctrlSpriteHeight = 0x20
	ctrlBGPattern    = 0x10
	ctrlSpritePattern = 0x08
	ctrlIncrement32  = 0x04

	maskShowBG        = 0x08
	maskShowSprites   = 0x10
	maskShowBGLeft    = 0x02
	maskShowSpriteLeft = 0x04

	statusVBlank    = 0x80
	statusSprite0   = 0x40
	statusOverflow  = 0x20
)

// New creates a PPU with the pre-render scanline as the starting state.
func New() *PPU {
	return &PPU{scanline: -1, cycle: 0}
}

// SetCartridge attaches the cartridge whose mapper backs CHR reads/writes
// and whose mirroring mode maps nametable addresses.
func (p *PPU) SetCartridge(c *cartridge.Cartridge) { p.cart = c }

// SetNMICallback installs the function invoked when the PPU asserts NMI.
func (p *PPU) SetNMICallback(fn func()) { p.nmiCallback = fn }

// SetFrameCompleteCallback installs the function invoked once per frame,
// when the last vertical-blank scanline (260) wraps to the pre-render
// scanline.
func (p *PPU) SetFrameCompleteCallback(fn func()) { p.frameCompleteCallback = fn }

// Reset returns the PPU to its power-on state.
func (p *PPU) Reset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.oamAddr = 0
	p.v, p.t, p.x, p.w = 0, 0, 0, false
	p.readBuffer = 0
	p.scanline, p.cycle = -1, 0
	p.oddFrame = false
	p.frameComplete = false
	p.bgNextTileID, p.bgNextTileAttr, p.bgNextTileLo, p.bgNextTileHi = 0, 0, 0, 0
	p.bgShiftLo, p.bgShiftHi, p.bgShiftAttrLo, p.bgShiftAttrHi = 0, 0, 0, 0
	p.spriteCount = 0
	for i := range p.oam {
		p.oam[i] = 0
	}
	for i := range p.frameBuffer {
		p.frameBuffer[i] = 0
	}
}

// ReadRegister services a CPU read of $2000-$2007 (and its mirrors).
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr & 0x0007 {
	case 0: // PPUCTRL, write-only
		return p.status & 0x1F
	case 1: // PPUMASK, write-only
		return p.status & 0x1F
	case 2: // PPUSTATUS
		result := (p.status & 0xE0) | (p.readBuffer & 0x1F)
		p.status &^= statusVBlank
		p.w = false
		return result
	case 3: // OAMADDR, write-only
		return p.status & 0x1F
	case 4: // OAMDATA
		return p.oam[p.oamAddr]
	case 5, 6: // PPUSCROLL, PPUADDR, write-only
		return p.status & 0x1F
	case 7: // PPUDATA
		return p.readPPUData()
	}
	return 0
}

// WriteRegister services a CPU write to $2000-$2007 (and its mirrors).
func (p *PPU) WriteRegister(addr uint16, value uint8) {
	switch addr & 0x0007 {
	case 0: // PPUCTRL
		p.ctrl = value
		p.t = (p.t & 0xF3FF) | ((uint16(value) & 0x03) << 10)
	case 1: // PPUMASK
		p.mask = value
	case 2: // PPUSTATUS, read-only
	case 3: // OAMADDR
		p.oamAddr = value
	case 4: // OAMDATA
		p.oam[p.oamAddr] = value
		p.oamAddr++
	case 5: // PPUSCROLL
		if !p.w {
			p.x = value & 0x07
			p.t = (p.t & 0xFFE0) | (uint16(value) >> 3)
		} else {
			p.t = (p.t & 0x8FFF) | ((uint16(value) & 0x07) << 12)
			p.t = (p.t & 0xFC1F) | ((uint16(value) & 0xF8) << 2)
		}
		p.w = !p.w
	case 6: // PPUADDR
		if !p.w {
			p.t = (p.t & 0x00FF) | ((uint16(value) & 0x3F) << 8)
		} else {
			p.t = (p.t & 0xFF00) | uint16(value)
			p.v = p.t
		}
		p.w = !p.w
	case 7: // PPUDATA
		p.writePPUData(value)
	}
}

// WriteOAM writes directly into OAM, used by the bus's OAM DMA sequencer.
func (p *PPU) WriteOAM(addr uint8, value uint8) { p.oam[addr] = value }

func (p *PPU) renderingEnabled() bool { return p.mask&(maskShowBG|maskShowSprites) != 0 }

// FrameComplete reports (and clears) whether a frame finished since the
// last call, mirroring the bus's per-frame poll of the PPU.
func (p *PPU) FrameComplete() bool {
	done := p.frameComplete
	p.frameComplete = false
	return done
}

// GetFrameBuffer returns the completed RGB frame, one uint32 per pixel.
func (p *PPU) GetFrameBuffer() [256 * 240]uint32 { return p.frameBuffer }

// IsVBlank reports whether the VBL status flag is currently set.
func (p *PPU) IsVBlank() bool { return p.status&statusVBlank != 0 }

// GetScanline and GetCycle expose the current timing position, mostly for
// tests and trace tooling.
func (p *PPU) GetScanline() int { return p.scanline }
func (p *PPU) GetCycle() int    { return p.cycle }

// RenderingEnabled reports whether background or sprite rendering is on.
func (p *PPU) RenderingEnabled() bool { return p.renderingEnabled() }

// NMIEnabled reports whether PPUCTRL currently requests NMI-at-VBlank.
func (p *PPU) NMIEnabled() bool { return p.ctrl&ctrlNMIEnable != 0 }

func (p *PPU) vramAddr(addr uint16) int {
	addr &= 0x0FFF
	table := addr / 0x0400
	offset := int(addr % 0x0400)
	switch p.cart.Mirror() {
	case cartridge.MirrorVertical:
		return int(table%2)*1024 + offset // table 0,2 -> NT0; 1,3 -> NT1
	case cartridge.MirrorHorizontal:
		return int(table/2)*1024 + offset
	case cartridge.MirrorSingleScreenLo:
		return offset
	case cartridge.MirrorSingleScreenHi:
		return 1024 + offset
	default: // four-screen: fold into the two physical tables
		return int(table%2)*1024 + offset
	}
}

func (p *PPU) readNameTable(addr uint16) uint8 {
	idx := p.vramAddr(addr)
	return p.nameTable[idx/1024][idx%1024]
}

func (p *PPU) writeNameTable(addr uint16, v uint8) {
	idx := p.vramAddr(addr)
	p.nameTable[idx/1024][idx%1024] = v
}

func (p *PPU) paletteIndex(addr uint16) uint16 {
	addr &= 0x1F
	if addr >= 0x10 && addr%4 == 0 {
		addr -= 0x10
	}
	return addr
}

// busRead services the internal $0000-$3FFF PPU address space used by
// PPUDATA and by the rendering pipeline's own tile/attribute fetches.
func (p *PPU) busRead(addr uint16) uint8 {
	addr &= 0x3FFF
	if p.cart == nil && addr < 0x3F00 {
		return 0 // no cartridge: no CHR and no mirroring mode
	}
	switch {
	case addr < 0x2000:
		return p.cart.ReadCHR(addr)
	case addr < 0x3F00:
		return p.readNameTable(addr)
	default:
		return p.paletteRAM[p.paletteIndex(addr)]
	}
}

func (p *PPU) busWrite(addr uint16, v uint8) {
	addr &= 0x3FFF
	if p.cart == nil && addr < 0x3F00 {
		return
	}
	switch {
	case addr < 0x2000:
		p.cart.WriteCHR(addr, v)
	case addr < 0x3F00:
		p.writeNameTable(addr, v)
	default:
		p.paletteRAM[p.paletteIndex(addr)] = v
	}
}

func (p *PPU) incrementVRAM() {
	if p.ctrl&ctrlIncrement32 != 0 {
		p.v += 32
	} else {
		p.v++
	}
}

func (p *PPU) readPPUData() uint8 {
	result := p.readBuffer
	p.readBuffer = p.busRead(p.v)
	if p.v >= 0x3F00 { // palette reads aren't delayed by the buffer
		result = p.readBuffer
	}
	p.incrementVRAM()
	return result
}

func (p *PPU) writePPUData(v uint8) {
	p.busWrite(p.v, v)
	p.incrementVRAM()
}
