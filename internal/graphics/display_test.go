package graphics

import "testing"

func TestFrameToRGBAPacksChannelsAndForcesOpaque(t *testing.T) {
	var frame [256 * 240]uint32
	frame[0] = 0x00102030
	frame[1] = 0x00FFFFFF

	out := FrameToRGBA(frame)

	if out[0] != 0x10 || out[1] != 0x20 || out[2] != 0x30 || out[3] != 0xFF {
		t.Fatalf("pixel 0 = %v, want [10 20 30 ff]", out[0:4])
	}
	if out[4] != 0xFF || out[5] != 0xFF || out[6] != 0xFF || out[7] != 0xFF {
		t.Fatalf("pixel 1 = %v, want [ff ff ff ff]", out[4:8])
	}
}

func TestFrameToRGBACoversEveryPixel(t *testing.T) {
	var frame [256 * 240]uint32
	out := FrameToRGBA(frame)
	if len(out) != 256*240*4 {
		t.Fatalf("len(out) = %d, want %d", len(out), 256*240*4)
	}
}
