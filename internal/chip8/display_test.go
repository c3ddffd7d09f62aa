package chip8

import "testing"

func TestApplySpriteDrawsDigitZero(t *testing.T) {
	d := NewDisplay(8, 8, false)
	zero := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}

	collision := d.ApplySprite(0, 0, zero)
	if collision {
		t.Fatal("first draw onto a blank display should not collide")
	}

	want := map[Point]bool{
		{0, 0}: true, {1, 0}: true, {2, 0}: true, {3, 0}: true,
		{0, 1}: true, {3, 1}: true,
		{0, 2}: true, {3, 2}: true,
		{0, 3}: true, {3, 3}: true,
		{0, 4}: true, {1, 4}: true, {2, 4}: true, {3, 4}: true,
	}
	got := map[Point]bool{}
	for _, p := range d.VisiblePixels() {
		got[p] = true
	}
	if len(got) != len(want) {
		t.Fatalf("got %d visible pixels, want %d (%v)", len(got), len(want), got)
	}
	for p := range want {
		if !got[p] {
			t.Errorf("pixel %+v should be lit", p)
		}
	}
}

func TestApplySpriteTwiceClearsAndReportsCollision(t *testing.T) {
	d := NewDisplay(8, 8, false)
	zero := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}

	d.ApplySprite(0, 0, zero)
	collision := d.ApplySprite(0, 0, zero)

	if !collision {
		t.Error("redrawing the same sprite should report a collision")
	}
	if len(d.VisiblePixels()) != 0 {
		t.Error("XORing the same sprite twice should leave the display blank")
	}
}

func TestApplySpriteClipsByDefault(t *testing.T) {
	d := NewDisplay(8, 8, false)
	row := []byte{0xFF} // 8 lit pixels starting at x=6, only 2 fit unclipped

	d.ApplySprite(6, 0, row)

	got := map[Point]bool{}
	for _, p := range d.VisiblePixels() {
		got[p] = true
	}
	if !got[(Point{6, 0})] || !got[(Point{7, 0})] {
		t.Error("in-bounds pixels should be lit")
	}
	if len(got) != 2 {
		t.Errorf("out-of-bounds pixels should be clipped, got %d lit pixels", len(got))
	}
}

func TestApplySpriteWrapsWhenEnabled(t *testing.T) {
	d := NewDisplay(8, 8, true)
	row := []byte{0xFF}

	d.ApplySprite(6, 0, row)

	got := map[Point]bool{}
	for _, p := range d.VisiblePixels() {
		got[p] = true
	}
	if len(got) != 8 {
		t.Fatalf("wrapping should light all 8 pixels, got %d", len(got))
	}
	for _, x := range []uint8{6, 7, 0, 1, 2, 3, 4, 5} {
		if !got[(Point{x, 0})] {
			t.Errorf("wrapped pixel x=%d should be lit", x)
		}
	}
}

func TestClearTurnsEveryPixelOff(t *testing.T) {
	d := NewDisplay(4, 4, false)
	d.ApplySprite(0, 0, []byte{0xF0})
	d.Clear()
	if len(d.VisiblePixels()) != 0 {
		t.Error("Clear should turn off every pixel")
	}
}
