// Package app provides emulator integration for the main application.
package app

import (
	"fmt"
	"time"

	"gones/internal/bus"
)

// Emulator drives the bus's master-clock loop one frame at a time, on
// ebitengine's 60Hz tick.
type Emulator struct {
	bus    *bus.Bus
	config *Config

	isRunning       bool
	lastResetTime   time.Time
	actualFrameTime time.Duration
}

// NewEmulator creates a new emulator instance bound to bus.
func NewEmulator(b *bus.Bus, config *Config) *Emulator {
	e := &Emulator{bus: b, config: config}
	e.Reset()
	return e
}

// Reset marks the uptime clock as restarting; the bus itself is reset
// separately by Application.LoadROM/Reset.
func (e *Emulator) Reset() {
	e.lastResetTime = time.Now()
}

// Start starts the emulator.
func (e *Emulator) Start() { e.isRunning = true }

// Stop stops the emulator.
func (e *Emulator) Stop() { e.isRunning = false }

// Update runs exactly one frame of emulation. It is a no-op when stopped,
// so callers can invoke it unconditionally from a fixed-rate tick.
func (e *Emulator) Update() error {
	if !e.isRunning {
		return nil
	}
	if e.bus == nil {
		return fmt.Errorf("emulator: bus not initialized")
	}
	start := time.Now()
	e.bus.RunFrame()
	e.actualFrameTime = time.Since(start)
	return nil
}

// IsRunning returns whether the emulator is running.
func (e *Emulator) IsRunning() bool { return e.isRunning }

// GetUptime returns the emulator uptime since last reset.
func (e *Emulator) GetUptime() time.Duration { return time.Since(e.lastResetTime) }

// GetActualFrameTime returns how long the last Update call took.
func (e *Emulator) GetActualFrameTime() time.Duration { return e.actualFrameTime }

// Cleanup stops the emulator. It exists so Application.Cleanup has a
// uniform shutdown call regardless of what future emulator state needs
// releasing.
func (e *Emulator) Cleanup() error {
	e.Stop()
	return nil
}
