package input

import "testing"

func TestSetButtonAndIsPressed(t *testing.T) {
	c := New()
	c.SetButton(ButtonA, true)
	if !c.IsPressed(ButtonA) {
		t.Fatal("expected A pressed")
	}
	if c.IsPressed(ButtonB) {
		t.Fatal("expected B not pressed")
	}
	c.SetButton(ButtonA, false)
	if c.IsPressed(ButtonA) {
		t.Fatal("expected A released")
	}
}

func TestSetButtonsBulk(t *testing.T) {
	c := New()
	c.SetButtons([8]bool{true, false, false, false, false, false, false, true})
	if !c.IsPressed(ButtonA) || !c.IsPressed(ButtonRight) {
		t.Fatal("expected A and Right pressed")
	}
	if c.IsPressed(ButtonB) {
		t.Fatal("expected B not pressed")
	}
}

func TestShiftRegisterSerializesInOrder(t *testing.T) {
	c := New()
	// A, Start, Right pressed: bits 0, 3, 7.
	c.SetButtons([8]bool{true, false, false, true, false, false, false, true})
	c.Write(1) // strobe high, continuously reload
	c.Write(0) // strobe low, latch for serial read

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 1}
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Fatalf("bit %d = %d, want %d", i, got, w)
		}
	}
}

func TestReadPastEighthBitReturnsOne(t *testing.T) {
	c := New()
	c.Write(1)
	c.Write(0)
	for i := 0; i < 8; i++ {
		c.Read()
	}
	if got := c.Read(); got != 1 {
		t.Fatalf("9th read = %d, want 1 (open bus convention)", got)
	}
}

func TestStrobeHighAlwaysReadsButtonA(t *testing.T) {
	c := New()
	c.SetButton(ButtonA, true)
	c.Write(1) // strobe stays high
	for i := 0; i < 3; i++ {
		if got := c.Read(); got != 1 {
			t.Fatalf("read %d while strobed = %d, want 1 (button A)", i, got)
		}
	}
}

func TestInputStateStrobesBothControllersTogether(t *testing.T) {
	is := NewInputState()
	is.SetButtons1([8]bool{true})
	is.SetButtons2([8]bool{false, true})
	is.Write(0x4016, 1)
	is.Write(0x4016, 0)

	if got := is.Read(0x4016) & 1; got != 1 {
		t.Fatalf("$4016 first bit = %d, want 1 (A on controller 1)", got)
	}
	is.Read(0x4017) // first bit: A, not pressed on controller 2
	if got := is.Read(0x4017) & 1; got != 1 {
		t.Fatalf("$4017 second bit = %d, want 1 (B on controller 2)", got)
	}
}

func TestResetClearsState(t *testing.T) {
	c := New()
	c.SetButton(ButtonA, true)
	c.Write(1)
	c.Reset()
	if c.IsPressed(ButtonA) {
		t.Fatal("expected buttons cleared after Reset")
	}
	if c.Read() != 0 {
		t.Fatal("expected shift register cleared after Reset")
	}
}
