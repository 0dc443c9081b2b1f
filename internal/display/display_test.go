package display

import "testing"

func TestXORPixelSetsAndCollides(t *testing.T) {
	var buf Buffer

	if collided := buf.XORPixel(3, 4, true); collided {
		t.Fatalf("first draw onto a clear cell reported a collision")
	}
	if !buf.Pixels()[4*Width+3] {
		t.Fatalf("pixel (3,4) was not set after drawing")
	}

	if collided := buf.XORPixel(3, 4, true); !collided {
		t.Fatalf("redrawing onto a set cell should report a collision")
	}
	if buf.Pixels()[4*Width+3] {
		t.Fatalf("XOR of a set pixel with itself should clear it")
	}
}

func TestXORPixelWraps(t *testing.T) {
	var buf Buffer

	buf.XORPixel(Width, Height, true)
	if !buf.Pixels()[0] {
		t.Fatalf("drawing at (Width,Height) should wrap to (0,0)")
	}

	buf.Clear()
	buf.XORPixel(-1, -1, true)
	if !buf.Pixels()[(Height-1)*Width+(Width-1)] {
		t.Fatalf("drawing at (-1,-1) should wrap to the bottom-right cell")
	}
}

func TestClear(t *testing.T) {
	var buf Buffer
	buf.XORPixel(0, 0, true)
	buf.Clear()
	for i, set := range buf.Pixels() {
		if set {
			t.Fatalf("pixel %d still set after Clear", i)
		}
	}
}
