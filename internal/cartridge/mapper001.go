package cartridge

// mapper001 implements MMC1: a serial shift register loads one of four
// internal registers (control, CHR bank 0, CHR bank 1, PRG bank) five bits
// at a time, LSB first. See spec.md §4.1 variant 1.
type mapper001 struct {
	prgBanks16k int
	chrBanks8k  int

	shift      uint8
	shiftCount uint8

	control  uint8 // mirror[1:0], prg mode[3:2], chr mode[4]
	chrBank0 uint8
	chrBank1 uint8
	prgBank  uint8 // bits 0-3 bank, bit 4 PRG RAM disable
}

func newMapper001(prgBanks16k, chrBanks8k int) *mapper001 {
	m := &mapper001{prgBanks16k: prgBanks16k, chrBanks8k: chrBanks8k}
	m.Reset()
	return m
}

func (m *mapper001) Reset() {
	m.shift = 0
	m.shiftCount = 0
	m.control = 0x0C // PRG mode 3: fix last bank at $C000, 16KiB mode
	m.chrBank0 = 0
	m.chrBank1 = 0
	m.prgBank = 0
}

func (m *mapper001) prgMode() uint8 { return (m.control >> 2) & 0x03 }
func (m *mapper001) chr8kMode() bool { return m.control&0x10 == 0 }

func (m *mapper001) CPUMapRead(addr uint16) (int, bool, bool) {
	if addr >= 0x6000 && addr < 0x8000 {
		return int(addr - 0x6000), true, true
	}
	if addr < 0x8000 {
		return 0, false, false
	}

	switch m.prgMode() {
	case 0, 1: // 32KiB mode, ignore low bit of bank select
		bank := int(m.prgBank&0x0F) >> 1
		return bank*0x8000 + int(addr&0x7FFF), false, true
	case 2: // fix first bank at $8000, switch 16KiB at $C000
		if addr < 0xC000 {
			return int(addr & 0x3FFF), false, true
		}
		bank := int(m.prgBank & 0x0F)
		return bank*0x4000 + int(addr&0x3FFF), false, true
	default: // 3: switch 16KiB at $8000, fix last bank at $C000
		if addr < 0xC000 {
			bank := int(m.prgBank & 0x0F)
			return bank*0x4000 + int(addr&0x3FFF), false, true
		}
		last := m.prgBanks16k - 1
		return last*0x4000 + int(addr&0x3FFF), false, true
	}
}

func (m *mapper001) CPUMapWrite(addr uint16, value uint8) (int, bool, bool) {
	if addr >= 0x6000 && addr < 0x8000 {
		return int(addr - 0x6000), true, true
	}
	if addr < 0x8000 {
		return 0, false, false
	}

	if value&0x80 != 0 {
		m.shift = 0
		m.shiftCount = 0
		m.control |= 0x0C
		return 0, false, true
	}

	m.shift = (m.shift >> 1) | ((value & 0x01) << 4)
	m.shiftCount++
	if m.shiftCount < 5 {
		return 0, false, true
	}

	loaded := m.shift
	m.shift = 0
	m.shiftCount = 0

	switch (addr >> 13) & 0x03 {
	case 0:
		m.control = loaded
	case 1:
		m.chrBank0 = loaded
	case 2:
		m.chrBank1 = loaded
	case 3:
		m.prgBank = loaded
	}
	return 0, false, true
}

func (m *mapper001) PPUMapRead(addr uint16) (int, bool) {
	if addr >= 0x2000 {
		return 0, false
	}
	if m.chr8kMode() {
		bank := int(m.chrBank0 >> 1)
		return bank*0x2000 + int(addr&0x1FFF), true
	}
	if addr < 0x1000 {
		return int(m.chrBank0)*0x1000 + int(addr&0x0FFF), true
	}
	return int(m.chrBank1)*0x1000 + int(addr&0x0FFF), true
}

func (m *mapper001) PPUMapWrite(addr uint16, _ uint8) (int, bool) {
	return m.PPUMapRead(addr)
}

func (m *mapper001) Mirror() MirrorMode {
	switch m.control & 0x03 {
	case 0:
		return MirrorSingleScreenLo
	case 1:
		return MirrorSingleScreenHi
	case 2:
		return MirrorVertical
	default:
		return MirrorHorizontal
	}
}

func (m *mapper001) IRQState() bool        { return false }
func (m *mapper001) IRQClear()             {}
func (m *mapper001) Scanline()             {}
func (m *mapper001) NotifyA12(addr uint16) {}
