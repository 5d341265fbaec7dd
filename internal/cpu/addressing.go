package cpu

// Addressing mode functions compute the effective address (c.addrAbs) or
// mark accumulator mode, and return a 1 when they can contribute a
// page-cross cycle bonus (ANDed with the operate function's own bonus bit
// before being added to the instruction's base cycle count, per spec.md
// §4.2: "the bonus applies only when both request it").

// imp covers both truly implied instructions and accumulator-mode ones
// (ASL A, LSR A, ROL A, ROR A): the operand is the A register itself.
func imp(c *CPU) uint8 {
	c.accumulatorMode = true
	c.fetched = c.A
	return 0
}

func imm(c *CPU) uint8 {
	c.accumulatorMode = false
	c.addrAbs = c.PC
	c.PC++
	return 0
}

func zp0(c *CPU) uint8 {
	c.accumulatorMode = false
	c.addrAbs = uint16(c.bus.Read(c.PC)) & 0x00FF
	c.PC++
	return 0
}

func zpx(c *CPU) uint8 {
	c.accumulatorMode = false
	c.addrAbs = uint16(c.bus.Read(c.PC)+c.X) & 0x00FF
	c.PC++
	return 0
}

func zpy(c *CPU) uint8 {
	c.accumulatorMode = false
	c.addrAbs = uint16(c.bus.Read(c.PC)+c.Y) & 0x00FF
	c.PC++
	return 0
}

func rel(c *CPU) uint8 {
	c.accumulatorMode = false
	offset := uint16(c.bus.Read(c.PC))
	c.PC++
	if offset&0x80 != 0 {
		offset |= 0xFF00 // sign-extend
	}
	c.addrRel = offset
	return 0
}

func abs(c *CPU) uint8 {
	c.accumulatorMode = false
	lo := uint16(c.bus.Read(c.PC))
	c.PC++
	hi := uint16(c.bus.Read(c.PC))
	c.PC++
	c.addrAbs = (hi << 8) | lo
	return 0
}

func abx(c *CPU) uint8 {
	c.accumulatorMode = false
	lo := uint16(c.bus.Read(c.PC))
	c.PC++
	hi := uint16(c.bus.Read(c.PC))
	c.PC++
	base := (hi << 8) | lo
	c.addrAbs = base + uint16(c.X)
	if c.addrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

func aby(c *CPU) uint8 {
	c.accumulatorMode = false
	lo := uint16(c.bus.Read(c.PC))
	c.PC++
	hi := uint16(c.bus.Read(c.PC))
	c.PC++
	base := (hi << 8) | lo
	c.addrAbs = base + uint16(c.Y)
	if c.addrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

// ind implements JMP's indirect addressing, including the famous hardware
// bug: when the pointer's low byte is $FF, the high byte wraps to the
// start of the same page instead of crossing into the next one.
func ind(c *CPU) uint8 {
	c.accumulatorMode = false
	ptrLo := uint16(c.bus.Read(c.PC))
	c.PC++
	ptrHi := uint16(c.bus.Read(c.PC))
	c.PC++
	ptr := (ptrHi << 8) | ptrLo

	var lo, hi uint16
	if ptrLo == 0x00FF {
		lo = uint16(c.bus.Read(ptr))
		hi = uint16(c.bus.Read(ptr & 0xFF00))
	} else {
		lo = uint16(c.bus.Read(ptr))
		hi = uint16(c.bus.Read(ptr + 1))
	}
	c.addrAbs = (hi << 8) | lo
	return 0
}

// izx implements (zp,X): the pointer is looked up in page zero at
// (operand+X), wrapping within the page.
func izx(c *CPU) uint8 {
	c.accumulatorMode = false
	t := uint16(c.bus.Read(c.PC))
	c.PC++
	lo := uint16(c.bus.Read((t + uint16(c.X)) & 0x00FF))
	hi := uint16(c.bus.Read((t + uint16(c.X) + 1) & 0x00FF))
	c.addrAbs = (hi << 8) | lo
	return 0
}

// izy implements (zp),Y: the pointer is looked up in page zero at the
// operand, then indexed by Y with a page-cross bonus.
func izy(c *CPU) uint8 {
	c.accumulatorMode = false
	t := uint16(c.bus.Read(c.PC))
	c.PC++
	lo := uint16(c.bus.Read(t & 0x00FF))
	hi := uint16(c.bus.Read((t + 1) & 0x00FF))
	base := (hi << 8) | lo
	c.addrAbs = base + uint16(c.Y)
	if c.addrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}
