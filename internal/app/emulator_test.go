package app

import (
	"testing"

	"gones/internal/bus"
)

func TestEmulatorUpdateIsNoOpUntilStarted(t *testing.T) {
	e := NewEmulator(bus.New(), NewConfig())

	if err := e.Update(); err != nil {
		t.Fatalf("Update before Start returned error: %v", err)
	}
	if e.GetActualFrameTime() != 0 {
		t.Fatal("Update before Start should not run a frame")
	}

	e.Start()
	if !e.IsRunning() {
		t.Fatal("expected IsRunning after Start")
	}
	if err := e.Update(); err != nil {
		t.Fatalf("Update after Start returned error: %v", err)
	}

	e.Stop()
	if e.IsRunning() {
		t.Fatal("expected !IsRunning after Stop")
	}
}

func TestEmulatorUpdateRequiresBus(t *testing.T) {
	e := &Emulator{}
	e.Start()
	if err := e.Update(); err == nil {
		t.Fatal("expected error when bus is nil")
	}
}
