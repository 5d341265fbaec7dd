package ppu

import (
	"bytes"
	"testing"

	"gones/internal/cartridge"
)

// buildNROM returns a minimal NROM cartridge with CHR RAM, for tests that
// don't care about actual tile data.
func buildNROM(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("NES\x1A")
	buf.WriteByte(1) // 1x16KiB PRG
	buf.WriteByte(0) // CHR RAM
	buf.WriteByte(0)
	buf.WriteByte(0)
	buf.Write(make([]byte, 8))
	buf.Write(make([]byte, 16384))
	cart, err := cartridge.LoadFromReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	return cart
}

func newTestPPU(t *testing.T) *PPU {
	p := New()
	p.SetCartridge(buildNROM(t))
	return p
}

func TestRegisterMirrorEvery8Bytes(t *testing.T) {
	p := newTestPPU(t)
	p.WriteRegister(0x2000, 0x80)
	if p.ctrl != 0x80 {
		t.Fatalf("ctrl = %#02x, want $80", p.ctrl)
	}
	p.WriteRegister(0x2008, 0x00) // mirrors $2000
	if p.ctrl != 0x00 {
		t.Fatal("write to $2008 should mirror $2000")
	}
}

func TestPPUDataReadIsBufferedExceptPalette(t *testing.T) {
	p := newTestPPU(t)
	p.busWrite(0x2000, 0x55) // nametable byte
	p.v = 0x2000
	first := p.ReadRegister(0x2007) // returns stale buffer ($00), primes it with $55
	if first != 0 {
		t.Fatalf("first PPUDATA read = %#02x, want buffered $00", first)
	}
	second := p.ReadRegister(0x2007) // returns the buffer primed by the previous read
	if second != 0x55 {
		t.Fatalf("second PPUDATA read = %#02x, want $55 (one read behind)", second)
	}

	p.v = 0x3F00
	p.paletteRAM[0] = 0x16
	direct := p.ReadRegister(0x2007)
	if direct != 0x16 {
		t.Fatalf("palette PPUDATA read should bypass the buffer, got %#02x", direct)
	}
}

func TestPPUAddrWriteSetsV(t *testing.T) {
	p := newTestPPU(t)
	p.WriteRegister(0x2006, 0x21) // high byte
	p.WriteRegister(0x2006, 0x08) // low byte -> $2108
	if p.v != 0x2108 {
		t.Fatalf("v = %#04x, want $2108", p.v)
	}
}

func TestScrollWriteSetsFineXAndCoarse(t *testing.T) {
	p := newTestPPU(t)
	p.WriteRegister(0x2005, 0x7D) // coarse X = 15, fine X = 5
	if p.x != 5 {
		t.Fatalf("fine X = %d, want 5", p.x)
	}
	if p.t&0x001F != 15 {
		t.Fatalf("coarse X in t = %d, want 15", p.t&0x001F)
	}
}

func TestVBlankFlagSetsAtScanline241AndClearsOnRead(t *testing.T) {
	p := newTestPPU(t)
	p.scanline, p.cycle = 241, 1
	p.Clock()
	if !p.IsVBlank() {
		t.Fatal("expected VBlank flag set at scanline 241, cycle 1")
	}
	status := p.ReadRegister(0x2002)
	if status&statusVBlank == 0 {
		t.Fatal("expected the read to observe VBlank set")
	}
	if p.IsVBlank() {
		t.Fatal("reading $2002 must clear the VBlank flag")
	}
}

func TestNMIFiresWhenEnabled(t *testing.T) {
	p := newTestPPU(t)
	p.ctrl = ctrlNMIEnable
	fired := false
	p.SetNMICallback(func() { fired = true })
	p.scanline, p.cycle = 241, 1
	p.Clock()
	if !fired {
		t.Fatal("expected NMI callback to fire at VBlank start with NMI enabled")
	}
}

func TestPaletteMirroring(t *testing.T) {
	p := newTestPPU(t)
	p.busWrite(0x3F00, 0x0F)
	if got := p.busRead(0x3F10); got != 0x0F {
		t.Fatalf("$3F10 should mirror $3F00, got %#02x", got)
	}
}

func TestSpriteOverflowFlagSetPastEightSprites(t *testing.T) {
	p := newTestPPU(t)
	p.mask = maskShowSprites
	for i := 0; i < 9; i++ {
		p.oam[i*4] = 10 // Y so the sprite covers scanline 10
		p.oam[i*4+1] = 0
		p.oam[i*4+2] = 0
		p.oam[i*4+3] = uint8(i * 8)
	}
	p.scanline = 10
	p.evaluateSprites()
	if p.spriteCount != 8 {
		t.Fatalf("spriteCount = %d, want 8 (hardware limit)", p.spriteCount)
	}
	if p.status&statusOverflow == 0 {
		t.Fatal("expected sprite overflow flag set with 9 sprites on one scanline")
	}
}

func TestLoopyIncrementXWrapsNametable(t *testing.T) {
	p := newTestPPU(t)
	p.v = 31 // coarse X maxed out
	p.incrementX()
	if p.v&0x001F != 0 {
		t.Fatalf("coarse X = %d, want wrap to 0", p.v&0x001F)
	}
	if p.v&0x0400 == 0 {
		t.Fatal("expected horizontal nametable bit to toggle on coarse X wrap")
	}
}

func TestLoopyIncrementYWrapsAt240(t *testing.T) {
	p := newTestPPU(t)
	p.v = (29 << 5) | 0x7000 // coarse Y=29, fine Y=7 (about to overflow)
	p.incrementY()
	if (p.v>>5)&0x1F != 0 {
		t.Fatalf("coarse Y = %d, want 0", (p.v>>5)&0x1F)
	}
	if p.v&0x0800 == 0 {
		t.Fatal("expected vertical nametable bit to toggle at coarse Y 29 -> 0")
	}
}

func TestOddFrameCycleSkipWhenRenderingEnabled(t *testing.T) {
	p := newTestPPU(t)
	p.mask = maskShowBG
	p.oddFrame = true
	p.scanline, p.cycle = -1, 0
	p.Clock()
	if p.cycle != 2 {
		t.Fatalf("cycle = %d, want 2 (skip + advance) on odd-frame pre-render", p.cycle)
	}
}

func TestFlipByteReversesBits(t *testing.T) {
	if got := flipByte(0b10000001); got != 0b10000001 {
		t.Fatalf("flipByte(0x81) = %#08b, want symmetric value unchanged", got)
	}
	if got := flipByte(0b00000001); got != 0b10000000 {
		t.Fatalf("flipByte(0x01) = %#08b, want $80", got)
	}
}
