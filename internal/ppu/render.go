package ppu

// Clock advances the PPU by one pixel dot. The bus calls this three times
// per CPU cycle; the 341x262 (dot x scanline) grid and the background
// shift-register pipeline below follow the 2C02's documented timing.

func (p *PPU) Clock() {
	if p.scanline == -1 && p.cycle == 0 && p.oddFrame && p.renderingEnabled() {
		p.cycle = 1 // odd-frame cycle skip, NTSC only
	}

	if p.scanline >= -1 && p.scanline < 240 {
		p.doScanlineCycle()
	}

	if p.scanline == 241 && p.cycle == 1 {
		p.status |= statusVBlank
		if p.ctrl&ctrlNMIEnable != 0 && p.nmiCallback != nil {
			p.nmiCallback()
		}
	}

	p.cycle++
	if p.cycle > 340 {
		p.cycle = 0
		p.scanline++
		if p.scanline > 260 {
			p.scanline = -1
			p.oddFrame = !p.oddFrame
			p.frameComplete = true
			if p.frameCompleteCallback != nil {
				p.frameCompleteCallback()
			}
		}
	}
}

func (p *PPU) doScanlineCycle() {
	if p.scanline == -1 && p.cycle == 1 {
		p.status &^= statusVBlank | statusSprite0 | statusOverflow
	}

	if (p.cycle >= 2 && p.cycle < 258) || (p.cycle >= 321 && p.cycle < 338) {
		p.shiftBackgroundRegisters()
		switch (p.cycle - 1) % 8 {
		case 0:
			p.loadBackgroundShifters()
			p.bgNextTileID = p.busRead(0x2000 | (p.v & 0x0FFF))
		case 2:
			attrAddr := 0x23C0 | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
			attr := p.busRead(attrAddr)
			if p.v&0x0040 != 0 {
				attr >>= 4
			}
			if p.v&0x0002 != 0 {
				attr >>= 2
			}
			p.bgNextTileAttr = attr & 0x03
		case 4:
			base := uint16(0)
			if p.ctrl&ctrlBGPattern != 0 {
				base = 0x1000
			}
			fineY := (p.v >> 12) & 0x07
			p.bgNextTileLo = p.busRead(base + uint16(p.bgNextTileID)*16 + fineY)
		case 6:
			base := uint16(0)
			if p.ctrl&ctrlBGPattern != 0 {
				base = 0x1000
			}
			fineY := (p.v >> 12) & 0x07
			p.bgNextTileHi = p.busRead(base + uint16(p.bgNextTileID)*16 + fineY + 8)
		case 7:
			if p.renderingEnabled() {
				p.incrementX()
			}
		}
	}

	if p.cycle == 256 && p.renderingEnabled() {
		p.incrementY()
	}
	if p.cycle == 257 {
		p.loadBackgroundShifters()
		if p.renderingEnabled() {
			p.copyX()
		}
		if p.scanline >= 0 {
			p.evaluateSprites()
		} else {
			p.spriteCount = 0
			p.sprite0OnLine = false
		}
	}

	if p.scanline == -1 && p.cycle >= 280 && p.cycle < 305 && p.renderingEnabled() {
		p.copyY()
	}

	if p.cycle >= 257 && p.cycle < 321 {
		p.fetchSpritePatterns()
	}

	if p.scanline >= 0 && p.cycle >= 1 && p.cycle <= 256 {
		p.renderPixel()
	}
}

func (p *PPU) loadBackgroundShifters() {
	p.bgShiftLo = (p.bgShiftLo & 0xFF00) | uint16(p.bgNextTileLo)
	p.bgShiftHi = (p.bgShiftHi & 0xFF00) | uint16(p.bgNextTileHi)
	attrLo, attrHi := uint16(0), uint16(0)
	if p.bgNextTileAttr&0x01 != 0 {
		attrLo = 0x00FF
	}
	if p.bgNextTileAttr&0x02 != 0 {
		attrHi = 0x00FF
	}
	p.bgShiftAttrLo = (p.bgShiftAttrLo & 0xFF00) | attrLo
	p.bgShiftAttrHi = (p.bgShiftAttrHi & 0xFF00) | attrHi
}

func (p *PPU) shiftBackgroundRegisters() {
	if p.mask&maskShowBG == 0 {
		return
	}
	p.bgShiftLo <<= 1
	p.bgShiftHi <<= 1
	p.bgShiftAttrLo <<= 1
	p.bgShiftAttrHi <<= 1
}

// evaluateSprites scans primary OAM for the next scanline's sprites. The
// first 8 matches are found with correct indexing, exactly like real
// hardware. Past that, the 2C02's evaluation logic reuses the same 2-bit
// counter for both the sprite index and the in-sprite byte offset, so once
// a 9th candidate is searched for, both n and m advance together instead
// of m staying pinned at 0 - the evaluator reads diagonally through OAM
// rather than re-checking each sprite's Y byte. That bug is reproduced
// here rather than replaced with a simple "stop at 8, flag overflow" cutoff,
// since it causes real ROMs to observe both false-positive and
// false-negative overflow flags depending on OAM contents.
func (p *PPU) evaluateSprites() {
	for i := range p.secondaryOAM {
		p.secondaryOAM[i] = 0xFF
	}
	p.spriteCount = 0
	p.sprite0OnLine = false

	height := 8
	if p.ctrl&ctrlSpriteHeight != 0 {
		height = 16
	}

	n := 0
	for n < 64 && p.spriteCount < 8 {
		y := int(p.oam[n*4])
		row := p.scanline - y
		if row >= 0 && row < height {
			copy(p.secondaryOAM[p.spriteCount*4:], p.oam[n*4:n*4+4])
			if n == 0 {
				p.sprite0OnLine = true
			}
			p.spriteCount++
		}
		n++
	}

	if n >= 64 {
		return
	}

	// Diagonal overflow search: m is the buggy shared counter the real
	// PPU reuses as both the in-sprite byte offset and part of the
	// sprite-advance logic once the 8-sprite secondary OAM is full.
	m := 0
	for n < 64 {
		y := int(p.oam[n*4+m])
		row := p.scanline - y
		if row >= 0 && row < height {
			p.status |= statusOverflow
			n++
			m++
			if m == 4 {
				m = 0
			}
		} else {
			// Hardware increments both the sprite and byte counters even
			// on a miss, which is the bug: the next read is OAM[n+1][m+1]
			// rather than OAM[n+1][0].
			n++
			m++
			if m == 4 {
				m = 0
			}
		}
	}
}

func (p *PPU) fetchSpritePatterns() {
	if (p.cycle-257)%8 != 7 {
		return
	}
	slot := (p.cycle - 257) / 8
	if uint8(slot) >= p.spriteCount {
		p.spritePatLo[slot], p.spritePatHi[slot] = 0, 0
		return
	}
	base := slot * 4
	y := p.secondaryOAM[base]
	tile := p.secondaryOAM[base+1]
	attr := p.secondaryOAM[base+2]
	x := p.secondaryOAM[base+3]

	height := 8
	if p.ctrl&ctrlSpriteHeight != 0 {
		height = 16
	}
	row := p.scanline - int(y)
	if attr&0x80 != 0 { // vertical flip
		row = height - 1 - row
	}

	var patternAddr uint16
	if height == 16 {
		table := uint16(tile&0x01) * 0x1000
		tileIndex := uint16(tile &^ 0x01)
		if row >= 8 {
			tileIndex++
			row -= 8
		}
		patternAddr = table + tileIndex*16 + uint16(row)
	} else {
		table := uint16(0)
		if p.ctrl&ctrlSpritePattern != 0 {
			table = 0x1000
		}
		patternAddr = table + uint16(tile)*16 + uint16(row)
	}

	lo := p.busRead(patternAddr)
	hi := p.busRead(patternAddr + 8)
	if attr&0x40 != 0 { // horizontal flip
		lo = flipByte(lo)
		hi = flipByte(hi)
	}
	p.spritePatLo[slot] = lo
	p.spritePatHi[slot] = hi
	p.spriteAttr[slot] = attr
	p.spriteX[slot] = x
	p.spriteIsZero[slot] = p.sprite0OnLine && slot == 0
}

func flipByte(b uint8) uint8 {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

func (p *PPU) renderPixel() {
	x := p.cycle - 1
	y := p.scanline

	bgPixel, bgPalette := uint8(0), uint8(0)
	if p.mask&maskShowBG != 0 && (x >= 8 || p.mask&maskShowBGLeft != 0) {
		mux := uint16(0x8000) >> p.x
		p0 := uint8(0)
		if p.bgShiftLo&mux != 0 {
			p0 = 1
		}
		p1 := uint8(0)
		if p.bgShiftHi&mux != 0 {
			p1 = 1
		}
		bgPixel = (p1 << 1) | p0

		a0 := uint8(0)
		if p.bgShiftAttrLo&mux != 0 {
			a0 = 1
		}
		a1 := uint8(0)
		if p.bgShiftAttrHi&mux != 0 {
			a1 = 1
		}
		bgPalette = (a1 << 1) | a0
	}

	spPixel, spPalette, spPriority, spIsZero := uint8(0), uint8(0), uint8(0), false
	if p.mask&maskShowSprites != 0 && (x >= 8 || p.mask&maskShowSpriteLeft != 0) {
		for i := uint8(0); i < p.spriteCount; i++ {
			offset := x - int(p.spriteX[i])
			if offset < 0 || offset > 7 {
				continue
			}
			bit := uint8(7 - offset)
			p0 := (p.spritePatLo[i] >> bit) & 1
			p1 := (p.spritePatHi[i] >> bit) & 1
			pix := (p1 << 1) | p0
			if pix == 0 {
				continue
			}
			spPixel = pix
			spPalette = (p.spriteAttr[i] & 0x03) + 4
			spPriority = (p.spriteAttr[i] >> 5) & 0x01
			spIsZero = p.spriteIsZero[i]
			break
		}
	}

	var paletteIdx uint16
	switch {
	case bgPixel == 0 && spPixel == 0:
		paletteIdx = 0
	case bgPixel == 0:
		paletteIdx = uint16(spPalette)<<2 | uint16(spPixel)
	case spPixel == 0:
		paletteIdx = uint16(bgPalette)<<2 | uint16(bgPixel)
	default:
		if spIsZero && x != 255 && p.mask&(maskShowBG|maskShowSprites) == (maskShowBG|maskShowSprites) {
			p.status |= statusSprite0
		}
		if spPriority == 0 {
			paletteIdx = uint16(spPalette)<<2 | uint16(spPixel)
		} else {
			paletteIdx = uint16(bgPalette)<<2 | uint16(bgPixel)
		}
	}

	color := p.paletteRAM[p.paletteIndex(0x3F00+paletteIdx)]
	if y >= 0 && y < 240 && x >= 0 && x < 256 {
		p.frameBuffer[y*256+x] = nesColorPalette[color&0x3F] & 0x00FFFFFF
	}
}

// Loopy scroll-register helpers: incrementX/incrementY advance v during
// rendering; copyX/copyY reload the X or Y portions of v from t.

func (p *PPU) incrementX() {
	if p.v&0x001F == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

func (p *PPU) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
	} else {
		p.v &^= 0x7000
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
		p.v = (p.v &^ 0x03E0) | (y << 5)
	}
}

func (p *PPU) copyX() { p.v = (p.v & 0xFBE0) | (p.t & 0x041F) }
func (p *PPU) copyY() { p.v = (p.v & 0x841F) | (p.t & 0x7BE0) }

// nesColorPalette is the 2C02's 64-entry NTSC master palette.
var nesColorPalette = [64]uint32{
	0xFF666666, 0xFF002A88, 0xFF1412A7, 0xFF3B00A4, 0xFF5C007E, 0xFF6E0040, 0xFF6C0600, 0xFF561D00,
	0xFF333500, 0xFF0B4800, 0xFF005200, 0xFF004F08, 0xFF00404D, 0xFF000000, 0xFF000000, 0xFF000000,
	0xFFADADAD, 0xFF155FD9, 0xFF4240FF, 0xFF7527FE, 0xFFA01ACC, 0xFFB71E7B, 0xFFB53120, 0xFF994E00,
	0xFF6B6D00, 0xFF388700, 0xFF0C9300, 0xFF008F32, 0xFF007C8D, 0xFF000000, 0xFF000000, 0xFF000000,
	0xFFFFFEFF, 0xFF64B0FF, 0xFF9290FF, 0xFFC676FF, 0xFFF36AFF, 0xFFFE6ECC, 0xFFFE8170, 0xFFEA9E22,
	0xFFBCBE00, 0xFF88D800, 0xFF5CE430, 0xFF45E082, 0xFF48CDDE, 0xFF4F4F4F, 0xFF000000, 0xFF000000,
	0xFFFFFEFF, 0xFFC0DFFF, 0xFFD3D2FF, 0xFFE8C8FF, 0xFFFBC2FF, 0xFFFEC4EA, 0xFFFECCC5, 0xFFF7D8A5,
	0xFFE4E594, 0xFFCFF29B, 0xFFBEFBB3, 0xFFB8F8D8, 0xFFB8F8F8, 0xFF000000, 0xFF000000, 0xFF000000,
}
