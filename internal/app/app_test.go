package app

import (
	"testing"
	"time"

	"gones/internal/graphics"
)

func TestBatterySavePathReplacesExtension(t *testing.T) {
	got := batterySavePath("/roms/zelda.nes")
	if want := "/roms/zelda.sav"; got != want {
		t.Fatalf("batterySavePath = %q, want %q", got, want)
	}
}

func TestApplyControllerKeySetsBothPorts(t *testing.T) {
	app := &Application{}
	app.applyControllerKey(graphics.KeyEvent{Key: graphics.KeyJ, Pressed: true})
	if !app.controller1[0] {
		t.Fatal("expected controller1[0] (A) set by KeyJ")
	}
	app.applyControllerKey(graphics.KeyEvent{Key: graphics.Key5, Pressed: true})
	if !app.controller2[0] {
		t.Fatal("expected controller2[0] (A) set by Key5")
	}
	app.applyControllerKey(graphics.KeyEvent{Key: graphics.KeyJ, Pressed: false})
	if app.controller1[0] {
		t.Fatal("expected controller1[0] cleared on release")
	}
}

func TestHandleSpecialKeyRequiresDoubleTapWithinThreeSeconds(t *testing.T) {
	app := &Application{}
	event := graphics.KeyEvent{Key: graphics.KeyEscape, Pressed: true}

	if !app.handleSpecialKey(event) {
		t.Fatal("first ESC press should be consumed")
	}
	if app.running {
		t.Fatal("first ESC press alone must not stop the application")
	}

	app.running = true
	if !app.handleSpecialKey(event) {
		t.Fatal("second ESC press should be consumed")
	}
	if app.running {
		t.Fatal("second ESC press within 3s should stop the application")
	}
}

func TestHandleSpecialKeyIgnoresStaleDoubleTap(t *testing.T) {
	app := &Application{lastEscTime: time.Now().Add(-4 * time.Second)}
	app.running = true
	app.handleSpecialKey(graphics.KeyEvent{Key: graphics.KeyEscape, Pressed: true})
	if !app.running {
		t.Fatal("ESC press after the 3s window should just restart the timer, not stop")
	}
}
