// Package app implements the gones application: ROM loading, the
// display/input loop, and battery-backed save RAM persistence around the
// emulator core.
package app

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gones/internal/bus"
	"gones/internal/cartridge"
	"gones/internal/graphics"
)

// Application owns the emulator core, the display, and the frame/input
// loop that drives them together.
type Application struct {
	bus     *bus.Bus
	display *graphics.Display // nil in headless mode

	config   *Config
	emulator *Emulator

	running     bool
	paused      bool
	initialized bool
	headless    bool

	frameCount          uint64
	startTime           time.Time
	lastFPSTime         time.Time
	frameCountAtLastFPS uint64
	currentFPS          float64

	romPath   string
	cartridge *cartridge.Cartridge

	lastEscTime time.Time
	controller1 [8]bool
	controller2 [8]bool
}

// ApplicationError wraps a failure during a named application operation.
type ApplicationError struct {
	Component string
	Operation string
	Err       error
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("application %s error during %s: %v", e.Component, e.Operation, e.Err)
}

// NewApplication creates an application in GUI mode.
func NewApplication(configPath string) (*Application, error) {
	return NewApplicationWithMode(configPath, false)
}

// NewApplicationWithMode creates an application, optionally without a
// display (headless mode, used for testing/automation).
func NewApplicationWithMode(configPath string, headless bool) (*Application, error) {
	app := &Application{
		config:      NewConfig(),
		headless:    headless,
		startTime:   time.Now(),
		lastFPSTime: time.Now(),
	}

	if configPath != "" {
		if err := app.config.LoadFromFile(configPath); err != nil {
			fmt.Printf("[APP_WARNING] could not load config from %s, using defaults: %v\n", configPath, err)
		}
	}

	if err := app.initializeComponents(); err != nil {
		return nil, &ApplicationError{Component: "initialization", Operation: "component setup", Err: err}
	}
	return app, nil
}

func (app *Application) initializeComponents() error {
	app.bus = bus.New()
	app.emulator = NewEmulator(app.bus, app.config)

	if !app.headless {
		width, height := app.config.GetWindowResolution()
		app.display = graphics.NewDisplay("gones - Go NES Emulator", width, height, app.config.Video.VSync)
	}

	app.initialized = true
	return nil
}

// LoadROM loads a ROM file and resets the system to run it.
func (app *Application) LoadROM(romPath string) error {
	if !app.initialized {
		return errors.New("application not initialized")
	}

	cart, err := cartridge.LoadFromFile(romPath)
	if err != nil {
		return &ApplicationError{Component: "cartridge", Operation: "load ROM", Err: err}
	}

	app.cartridge = cart
	app.romPath = romPath
	app.bus.LoadCartridge(cart)
	app.bus.Reset()

	if cart.HasBattery() {
		if data, err := os.ReadFile(batterySavePath(romPath)); err == nil {
			cart.LoadBatteryRAM(data)
		}
	}

	if app.display != nil {
		app.display.SetTitle(fmt.Sprintf("gones - %s", filepath.Base(romPath)))
	}

	app.emulator.Start()
	return nil
}

// batterySavePath derives the .sav path for a ROM's battery-backed PRG RAM.
func batterySavePath(romPath string) string {
	ext := filepath.Ext(romPath)
	return romPath[:len(romPath)-len(ext)] + ".sav"
}

func (app *Application) saveBatteryRAM() {
	if app.cartridge == nil || app.romPath == "" || !app.cartridge.HasBattery() {
		return
	}
	data := app.cartridge.BatteryRAM()
	if err := os.WriteFile(batterySavePath(app.romPath), data, 0644); err != nil {
		log.Printf("battery RAM save failed: %v", err)
	}
}

// Run starts the main application loop. In GUI mode this blocks inside
// ebitengine's game loop until the window closes; it is a no-op in
// headless mode (callers drive app.GetBus().RunFrame() directly instead).
func (app *Application) Run() error {
	if !app.initialized {
		return errors.New("application not initialized")
	}
	app.running = true
	app.startTime = time.Now()
	app.lastFPSTime = time.Now()

	if app.display == nil {
		return nil
	}
	return app.display.Run(app.frameTick)
}

// frameTick processes one tick of input, emulation and rendering. It is
// the function ebitengine calls once per display refresh.
func (app *Application) frameTick() error {
	app.processInput()

	if !app.paused && app.cartridge != nil {
		if err := app.emulator.Update(); err != nil {
			if app.config.Debug.EnableLogging {
				log.Printf("emulator update error: %v", err)
			}
		}
	}

	if app.cartridge != nil {
		app.display.RenderFrame(app.bus.FrameBuffer())
	}

	app.updateFPS()

	if app.display.ShouldClose() {
		app.Stop()
	}
	return nil
}

func (app *Application) processInput() {
	if app.display == nil {
		return
	}
	for _, event := range app.display.PollKeys() {
		if app.handleSpecialKey(event) {
			continue
		}
		app.applyControllerKey(event)
	}
	app.bus.SetControllerButtons(0, app.controller1)
	app.bus.SetControllerButtons(1, app.controller2)
}

// handleSpecialKey handles non-controller keys (quit). Returns true if it
// consumed the event.
func (app *Application) handleSpecialKey(event graphics.KeyEvent) bool {
	if event.Key != graphics.KeyEscape || !event.Pressed {
		return false
	}
	now := time.Now()
	if !app.lastEscTime.IsZero() && now.Sub(app.lastEscTime) < 3*time.Second {
		app.Stop()
		return true
	}
	app.lastEscTime = now
	return true
}

// controller1Keys and controller2Keys map tracked keys to NES controller
// button indices, in shift-register order: A, B, Select, Start, Up, Down,
// Left, Right.
var controller1Keys = map[graphics.Key]int{
	graphics.KeyJ:     0,
	graphics.KeyK:     1,
	graphics.KeySpace: 2,
	graphics.KeyEnter: 3,
	graphics.KeyUp:    4,
	graphics.KeyDown:  5,
	graphics.KeyLeft:  6,
	graphics.KeyRight: 7,
	graphics.KeyW:     4,
	graphics.KeyS:     5,
	graphics.KeyA:     6,
	graphics.KeyD:     7,
}

var controller2Keys = map[graphics.Key]int{
	graphics.Key5: 0,
	graphics.Key6: 1,
	graphics.Key8: 2,
	graphics.Key7: 3,
	graphics.Key1: 4,
	graphics.Key2: 5,
	graphics.Key3: 6,
	graphics.Key4: 7,
}

func (app *Application) applyControllerKey(event graphics.KeyEvent) {
	if idx, ok := controller1Keys[event.Key]; ok {
		app.controller1[idx] = event.Pressed
	}
	if idx, ok := controller2Keys[event.Key]; ok {
		app.controller2[idx] = event.Pressed
	}
}

func (app *Application) updateFPS() {
	now := time.Now()
	app.frameCount++
	if now.Sub(app.lastFPSTime) >= time.Second {
		elapsed := now.Sub(app.lastFPSTime).Seconds()
		app.currentFPS = float64(app.frameCount-app.frameCountAtLastFPS) / elapsed
		app.lastFPSTime = now
		app.frameCountAtLastFPS = app.frameCount
		if app.config.Debug.EnableLogging {
			log.Printf("[FPS] %.1f", app.currentFPS)
		}
	}
}

// GetBus returns the bus for direct access (headless mode, tests).
func (app *Application) GetBus() *bus.Bus { return app.bus }

// Stop stops the application loop.
func (app *Application) Stop() {
	app.running = false
	if app.display != nil {
		app.display.Close()
	}
}

// Pause pauses the emulator.
func (app *Application) Pause() { app.paused = true }

// Resume resumes the emulator.
func (app *Application) Resume() { app.paused = false }

// TogglePause toggles pause state.
func (app *Application) TogglePause() { app.paused = !app.paused }

// Reset resets the emulator to its power-on state.
func (app *Application) Reset() {
	if app.bus != nil {
		app.bus.Reset()
	}
}

// IsRunning returns whether the application loop is active.
func (app *Application) IsRunning() bool { return app.running }

// IsPaused returns whether the emulator is paused.
func (app *Application) IsPaused() bool { return app.paused }

// GetFPS returns the current measured frames per second.
func (app *Application) GetFPS() float64 { return app.currentFPS }

// GetFrameCount returns the total frame count since Run started.
func (app *Application) GetFrameCount() uint64 { return app.frameCount }

// GetUptime returns the application's running duration.
func (app *Application) GetUptime() time.Duration { return time.Since(app.startTime) }

// GetROMPath returns the currently loaded ROM path.
func (app *Application) GetROMPath() string { return app.romPath }

// GetConfig returns the application configuration.
func (app *Application) GetConfig() *Config { return app.config }

// ApplyDebugSettings logs CPU/PPU state once when called, when the config's
// debug.enable_logging flag is set.
func (app *Application) ApplyDebugSettings() {
	if app.config == nil || app.bus == nil || !app.config.Debug.EnableLogging {
		return
	}
	cpuState := app.bus.GetCPUState()
	ppuState := app.bus.GetPPUState()
	log.Printf("cpu pc=%#04x a=%#02x x=%#02x y=%#02x sp=%#02x | ppu scanline=%d cycle=%d vblank=%t",
		cpuState.PC, cpuState.A, cpuState.X, cpuState.Y, cpuState.SP,
		ppuState.Scanline, ppuState.Cycle, ppuState.VBlankFlag)
}

// Cleanup releases all resources and persists battery RAM.
func (app *Application) Cleanup() error {
	app.saveBatteryRAM()

	var lastErr error
	if app.emulator != nil {
		if err := app.emulator.Cleanup(); err != nil {
			lastErr = err
			fmt.Printf("[APP_ERROR] emulator cleanup error: %v\n", err)
		}
	}
	app.initialized = false
	return lastErr
}
