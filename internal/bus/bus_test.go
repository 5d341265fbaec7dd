package bus

import (
	"bytes"
	"testing"

	"gones/internal/cartridge"
)

func buildNROMWithReset(resetAddr uint16) []byte {
	var buf bytes.Buffer
	buf.WriteString("NES\x1A")
	buf.WriteByte(2) // 2x16KiB PRG
	buf.WriteByte(1) // 1x8KiB CHR
	buf.Write(make([]byte, 10))
	prg := make([]byte, 32768)
	prg[0x7FFC] = uint8(resetAddr)
	prg[0x7FFD] = uint8(resetAddr >> 8)
	buf.Write(prg)
	buf.Write(make([]byte, 8192))
	return buf.Bytes()
}

func newTestBus(t *testing.T, resetAddr uint16) *Bus {
	t.Helper()
	cart, err := cartridge.LoadFromReader(bytes.NewReader(buildNROMWithReset(resetAddr)))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	b := New()
	b.LoadCartridge(cart)
	return b
}

func TestRAMMirroredAcrossFourWindows(t *testing.T) {
	b := newTestBus(t, 0x8000)
	b.Write(0x0000, 0x42)
	for _, mirror := range []uint16{0x0800, 0x1000, 0x1800} {
		if got := b.Read(mirror); got != 0x42 {
			t.Fatalf("RAM mirror at %#04x = %#02x, want $42", mirror, got)
		}
	}
}

func TestPPURegistersMirroredEvery8Bytes(t *testing.T) {
	b := newTestBus(t, 0x8000)
	b.Write(0x2000, 0x80)
	b.Write(0x2006, 0x21)
	b.Write(0x2006, 0x00)
	b.Write(0x2007, 0x55)
	b.Write(0x200E, 0x21) // $200E mirrors $2006
	b.Write(0x3FFE, 0x00) // $3FFE mirrors $2006
	if got := b.Read(0x200F); got != 0 { // $200F mirrors $2007; buffered read returns stale value first
		t.Fatalf("first PPUDATA read = %#02x, want buffered $00", got)
	}
	if got := b.Read(0x3FFF); got != 0x55 { // $3FFF mirrors $2007
		t.Fatalf("second PPUDATA read = %#02x, want $55", got)
	}
}

func TestCPURunsAtOneThirdPPURate(t *testing.T) {
	b := newTestBus(t, 0x8000)
	startPPUCycle := b.PPU.GetCycle()
	for i := 0; i < 3; i++ {
		b.Clock()
	}
	if b.totalCycles != 3 {
		t.Fatalf("totalCycles = %d, want 3", b.totalCycles)
	}
	if b.PPU.GetCycle() == startPPUCycle {
		t.Fatal("expected PPU to have advanced across 3 master clocks")
	}
}

func TestOAMDMACopiesOneBytePerStepWhenAligned(t *testing.T) {
	b := newTestBus(t, 0x8000)
	b.ram[0] = 0xAA
	b.startOAMDMA(0x00) // source page $00, aligned (even start)

	cycles := 0
	for b.dmaActive {
		b.stepOAMDMA()
		cycles++
		if cycles > 600 {
			t.Fatal("OAM DMA never completed")
		}
	}
	if cycles != 256 { // stepOAMDMA copies one byte per CPU cycle
		t.Fatalf("OAM DMA performed %d byte transfers, want 256", cycles)
	}
}

func TestOAMDMAOddStartAddsAlignCycle(t *testing.T) {
	b := newTestBus(t, 0x8000)
	b.totalCycles = 1 // odd
	b.startOAMDMA(0x00)
	if !b.dmaAlignWait {
		t.Fatal("expected an alignment wait cycle when DMA starts on an odd CPU cycle")
	}
	b.stepOAMDMA() // consumes the alignment cycle only
	if b.dmaAddr != 0 {
		t.Fatal("alignment cycle must not advance the transfer index")
	}
}

func TestResetLoadsPCFromVector(t *testing.T) {
	b := newTestBus(t, 0xC123)
	if b.CPU.PC != 0xC123 {
		t.Fatalf("PC = %#04x, want $C123", b.CPU.PC)
	}
}

func TestNMIRequestedByPPUIsServicedAtInstructionBoundary(t *testing.T) {
	b := newTestBus(t, 0x8000)
	b.Write(0x2000, 0x80) // enable NMI generation
	b.triggerNMI()
	if !b.nmiPending {
		t.Fatal("expected nmiPending set")
	}
	// The reset stall is 8 CPU cycles (24 master ticks); the NMI is taken
	// at the first instruction boundary after it.
	for i := 0; i < 100 && b.nmiPending; i++ {
		b.Clock()
	}
	if b.nmiPending {
		t.Fatal("expected the pending NMI to be serviced at the instruction boundary")
	}
	if b.CPU.SP != 0xFA {
		t.Fatalf("SP = %#02x, want $FA (PC and P pushed by the NMI)", b.CPU.SP)
	}
}
