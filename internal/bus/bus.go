// Package bus implements the NES system bus: CPU address decoding and the
// master-clock tick that drives the CPU and PPU in lockstep, plus OAM DMA.
//
// The APU is out of scope: $4000-$4017 (other than the $4014 OAM DMA
// trigger and the $4016/$4017 controller ports) is a stub that always
// reads 0 and discards writes,
// matching real open-bus behavior from the CPU's point of view when no
// audio hardware is modeled.
package bus

import (
	"gones/internal/cartridge"
	"gones/internal/cpu"
	"gones/internal/input"
	"gones/internal/ppu"
)

// Bus wires the CPU, PPU, controller input and cartridge together behind a
// single master clock.
type Bus struct {
	CPU   *cpu.CPU
	PPU   *ppu.PPU
	Input *input.InputState

	cart *cartridge.Cartridge
	ram  [2048]uint8

	nmiPending bool

	// OAM DMA state machine: while it runs the CPU is stalled and only the
	// PPU keeps ticking. Each CPU cycle copies one byte, so a transfer
	// stalls the CPU for 256 cycles (257 when it starts on an odd cycle);
	// reads and writes are not split into separate cycles and there is no
	// leading halt cycle.
	dmaActive    bool
	dmaPage      uint8
	dmaAddr      uint8
	dmaAlignWait bool // one extra cycle if DMA starts on an odd CPU cycle

	totalCycles uint64
	frameCount  uint64
}

// New creates a Bus with no cartridge loaded; call LoadCartridge before Reset.
func New() *Bus {
	b := &Bus{
		PPU:   ppu.New(),
		Input: input.NewInputState(),
	}
	b.CPU = cpu.New(b)
	b.PPU.SetNMICallback(b.triggerNMI)
	return b
}

// LoadCartridge attaches a cartridge and resets the system so CPU/PPU
// state reflects it from power-on.
func (b *Bus) LoadCartridge(cart *cartridge.Cartridge) {
	b.cart = cart
	b.PPU.SetCartridge(cart)
	b.Reset()
}

// Reset reinitialises every component to its power-on/reset state.
func (b *Bus) Reset() {
	for i := range b.ram {
		b.ram[i] = 0
	}
	b.PPU.Reset()
	b.Input.Reset()
	if b.cart != nil {
		b.cart.Reset()
	}
	b.nmiPending = false
	b.dmaActive = false
	b.totalCycles = 0
	b.frameCount = 0
	b.CPU.Reset()
}

func (b *Bus) triggerNMI() { b.nmiPending = true }

// Read services every CPU-visible address.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr&0x07FF]
	case addr < 0x4000:
		return b.PPU.ReadRegister(addr)
	case addr == 0x4016:
		return b.Input.Read(0x4016)
	case addr == 0x4017:
		return b.Input.Read(0x4017)
	case addr < 0x4018:
		return 0 // APU register, out of scope: stub
	case addr < 0x4020:
		return 0 // APU/IO test mode, disabled
	default:
		if b.cart == nil {
			return 0
		}
		return b.cart.ReadPRG(addr)
	}
}

// Write services every CPU-visible address.
func (b *Bus) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		b.ram[addr&0x07FF] = value
	case addr < 0x4000:
		b.PPU.WriteRegister(addr, value)
	case addr == 0x4014:
		b.startOAMDMA(value)
	case addr == 0x4016:
		b.Input.Write(0x4016, value)
	case addr < 0x4018:
		// APU register, out of scope: stub
	case addr < 0x4020:
		// APU/IO test mode, disabled
	default:
		if b.cart != nil {
			b.cart.WritePRG(addr, value)
		}
	}
}

func (b *Bus) startOAMDMA(page uint8) {
	b.dmaActive = true
	b.dmaPage = page
	b.dmaAddr = 0
	b.dmaAlignWait = b.totalCycles%2 == 1
}

// stepOAMDMA performs one CPU cycle of an OAM DMA transfer: the alignment
// wait if one is pending, otherwise one byte read from the source page and
// written to OAM. A full transfer takes 256 calls (257 if it began on an
// odd cycle).
func (b *Bus) stepOAMDMA() {
	if b.dmaAlignWait {
		b.dmaAlignWait = false
		return
	}
	addr := uint16(b.dmaPage)<<8 | uint16(b.dmaAddr)
	b.PPU.WriteOAM(b.dmaAddr, b.Read(addr))
	b.dmaAddr++
	if b.dmaAddr == 0 {
		b.dmaActive = false
	}
}

// Clock advances the system by one master (PPU dot) cycle: the PPU ticks
// every call, the CPU (or the OAM DMA sequencer, while one is active)
// ticks once every three, matching the 2C02's fixed 3:1 ratio with the
// 2A03.
func (b *Bus) Clock() {
	b.PPU.Clock()

	if b.totalCycles%3 == 0 {
		if b.dmaActive {
			b.stepOAMDMA()
		} else {
			if b.CPU.InstructionComplete() {
				if b.nmiPending {
					b.nmiPending = false
					b.CPU.NMI()
				} else if b.cart != nil && b.cart.IRQState() {
					b.CPU.IRQ()
				}
			}
			b.CPU.Clock()
		}
	}

	if b.cart != nil && b.PPU.GetCycle() == 0 {
		b.cart.Scanline()
	}

	b.totalCycles++
}

// RunFrame clocks the system until the PPU reports a completed frame.
func (b *Bus) RunFrame() {
	for {
		b.Clock()
		if b.PPU.FrameComplete() {
			b.frameCount++
			return
		}
	}
}

// FrameBuffer returns the most recently rendered frame, one RGB888 value
// (packed 0x00RRGGBB) per pixel, 256x240.
func (b *Bus) FrameBuffer() [256 * 240]uint32 { return b.PPU.GetFrameBuffer() }

// GetFrameBuffer returns the most recently rendered frame as a slice, for
// callers (video processing, rendering backends) that want to operate on it
// without copying into a fixed-size array first.
func (b *Bus) GetFrameBuffer() []uint32 {
	buf := b.PPU.GetFrameBuffer()
	return buf[:]
}

// TotalCycles returns the number of master clock ticks since Reset.
func (b *Bus) TotalCycles() uint64 { return b.totalCycles }

// GetCycleCount is an alias for TotalCycles, for save-state/debug callers.
func (b *Bus) GetCycleCount() uint64 { return b.totalCycles }

// IsDMAInProgress reports whether an OAM DMA transfer is currently
// suspending the CPU.
func (b *Bus) IsDMAInProgress() bool { return b.dmaActive }

// GetFrameCount returns the number of frames the PPU has completed.
func (b *Bus) GetFrameCount() uint64 { return b.frameCount }

// GetInputState returns the controller input state for direct inspection.
func (b *Bus) GetInputState() *input.InputState { return b.Input }

// SetControllerButtons replaces a controller's full button state at once.
// Controller 0 addresses port 1; any other value addresses port 2.
func (b *Bus) SetControllerButtons(controller int, buttons [8]bool) {
	if controller == 0 {
		b.Input.SetButtons1(buttons)
	} else {
		b.Input.SetButtons2(buttons)
	}
}

// GetAudioSamples always returns nil: audio synthesis is out of scope (see
// package doc). Nothing in this module calls it.
func (b *Bus) GetAudioSamples() []float32 { return nil }

// CPUFlags is a snapshot of the 6502 status register's individual bits.
type CPUFlags struct {
	N, V, B, D, I, Z, C bool
}

// CPUState is a point-in-time snapshot of CPU registers, for debugging and
// save states.
type CPUState struct {
	PC          uint16
	A, X, Y, SP uint8
	Cycles      uint64
	Flags       CPUFlags
}

// GetCPUState snapshots the current CPU registers and flags.
func (b *Bus) GetCPUState() CPUState {
	p := b.CPU.P
	return CPUState{
		PC:     b.CPU.PC,
		A:      b.CPU.A,
		X:      b.CPU.X,
		Y:      b.CPU.Y,
		SP:     b.CPU.SP,
		Cycles: b.totalCycles,
		Flags: CPUFlags{
			N: p&cpu.FlagN != 0,
			V: p&cpu.FlagV != 0,
			B: p&cpu.FlagB != 0,
			D: p&cpu.FlagD != 0,
			I: p&cpu.FlagI != 0,
			Z: p&cpu.FlagZ != 0,
			C: p&cpu.FlagC != 0,
		},
	}
}

// PPUState is a point-in-time snapshot of PPU timing and rendering state,
// for debugging and save states.
type PPUState struct {
	Scanline    int
	Cycle       int
	FrameCount  uint64
	VBlankFlag  bool
	RenderingOn bool
	NMIEnabled  bool
}

// GetPPUState snapshots the current PPU timing position and flags.
func (b *Bus) GetPPUState() PPUState {
	return PPUState{
		Scanline:    b.PPU.GetScanline(),
		Cycle:       b.PPU.GetCycle(),
		FrameCount:  b.frameCount,
		VBlankFlag:  b.PPU.IsVBlank(),
		RenderingOn: b.PPU.RenderingEnabled(),
		NMIEnabled:  b.PPU.NMIEnabled(),
	}
}
