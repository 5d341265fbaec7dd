package cartridge

import "testing"

func writeMMC1(m *mapper001, addr uint16, value uint8) {
	for i := 0; i < 5; i++ {
		m.CPUMapWrite(addr, value&0x01)
		value >>= 1
	}
}

func TestMapper001ShiftRegisterResetOnBit7(t *testing.T) {
	m := newMapper001(2, 1)
	m.CPUMapWrite(0x8000, 0x80)
	if m.control&0x0C != 0x0C {
		t.Fatalf("reset write must OR control with 0x0C, got %#x", m.control)
	}
}

func TestMapper001FiveWriteLoadsControlRegister(t *testing.T) {
	m := newMapper001(2, 1)
	writeMMC1(m, 0x8000, 0x13) // mirror=11 (horizontal), prg mode 0
	if m.Mirror() != MirrorHorizontal {
		t.Fatalf("expected horizontal mirroring, got %v", m.Mirror())
	}
}

func TestMapper001PRGFixedLastBankMode(t *testing.T) {
	m := newMapper001(4, 1) // prg mode default (3): fix last bank at $C000
	off, _, ok := m.CPUMapRead(0xC000)
	if !ok {
		t.Fatal("expected CPUMapRead to claim $C000")
	}
	if off != 3*0x4000 {
		t.Fatalf("expected last bank (3) fixed at $C000, got offset %#x", off)
	}
}

func TestMapper002BankSwitchLowWindow(t *testing.T) {
	m := newMapper002(4)
	m.CPUMapWrite(0x8000, 2)
	off, _, ok := m.CPUMapRead(0x8000)
	if !ok || off != 2*0x4000 {
		t.Fatalf("expected low window mapped to bank 2, got offset %#x ok=%v", off, ok)
	}
	offHigh, _, _ := m.CPUMapRead(0xC000)
	if offHigh != 3*0x4000 {
		t.Fatalf("expected high window fixed to last bank (3), got %#x", offHigh)
	}
}

func TestMapper003CHRBankSelect(t *testing.T) {
	m := newMapper003(1)
	m.CPUMapWrite(0x8000, 2)
	off, ok := m.PPUMapRead(0x0100)
	if !ok || off != 2*0x2000+0x100 {
		t.Fatalf("expected CHR bank 2 selected, got offset %#x", off)
	}
}

func TestMapper004BankSelectAndPRGWindows(t *testing.T) {
	m := newMapper004(8, 1) // 8 8KiB PRG banks
	// select register 6 (PRG), write bank 2
	m.CPUMapWrite(0x8000, 6)
	m.CPUMapWrite(0x8001, 2)
	off, _, ok := m.CPUMapRead(0x8000)
	if !ok || off != 2*0x2000 {
		t.Fatalf("expected R6 bank 2 at $8000, got %#x", off)
	}
	// $E000-$FFFF always fixed to the last 8KiB bank.
	offLast, _, _ := m.CPUMapRead(0xE000)
	if offLast != 7*0x2000 {
		t.Fatalf("expected last bank fixed at $E000, got %#x", offLast)
	}
}

func TestMapper004IRQClocksOnA12RisingEdge(t *testing.T) {
	m := newMapper004(8, 2)
	m.CPUMapWrite(0xC000, 4) // latch = 4
	m.CPUMapWrite(0xC001, 0) // request reload
	m.CPUMapWrite(0xE001, 0) // enable

	for i := 0; i < 5; i++ {
		m.NotifyA12(0x0000) // low
		m.NotifyA12(0x1000) // rising edge
	}
	if !m.IRQState() {
		t.Fatal("expected IRQ asserted after counter reaches zero")
	}
	m.IRQClear()
	if m.IRQState() {
		t.Fatal("expected IRQClear to deassert IRQ")
	}
}

func TestMapper004MirrorBit(t *testing.T) {
	m := newMapper004(8, 1)
	m.CPUMapWrite(0xA000, 0x00) // vertical
	if m.Mirror() != MirrorVertical {
		t.Fatalf("expected vertical, got %v", m.Mirror())
	}
	m.CPUMapWrite(0xA000, 0x01) // horizontal
	if m.Mirror() != MirrorHorizontal {
		t.Fatalf("expected horizontal, got %v", m.Mirror())
	}
}
