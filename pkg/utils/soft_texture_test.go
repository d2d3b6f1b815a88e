package utils

import (
	"image/color"
	"testing"
)

func TestMakeSoftCircle(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	img := MakeSoftCircle(20, red, 255, 0)

	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("Expected 20x20 image, got %dx%d", b.Dx(), b.Dy())
	}

	center := img.NRGBAAt(10, 10)
	if center.R != 255 || center.G != 0 || center.B != 0 {
		t.Errorf("Expected red center, got %v", center)
	}
	if center.A < 230 {
		t.Errorf("Expected near-opaque center, got alpha %d", center.A)
	}

	// 角落在圆外
	if corner := img.NRGBAAt(0, 0); corner.A != 0 {
		t.Errorf("Expected transparent corner, got alpha %d", corner.A)
	}

	// alpha 由圆心向外递减
	prev := uint8(255)
	for x := 10; x < 20; x++ {
		a := img.NRGBAAt(x, 10).A
		if a > prev {
			t.Fatalf("alpha should not increase outward: x=%d alpha=%d prev=%d", x, a, prev)
		}
		prev = a
	}
}

func TestMakeSoftSquare(t *testing.T) {
	green := color.RGBA{G: 255, A: 255}
	img := MakeSoftSquare(50, green, 200, 150)

	if edge := img.NRGBAAt(0, 25); edge.A != 150 {
		t.Errorf("Expected outer alpha 150 at edge, got %d", edge.A)
	}
	if corner := img.NRGBAAt(49, 49); corner.A != 150 {
		t.Errorf("Expected outer alpha 150 at corner, got %d", corner.A)
	}
	center := img.NRGBAAt(24, 24)
	if center.A < 195 || center.A > 200 {
		t.Errorf("Expected center alpha ~200, got %d", center.A)
	}
	if center.G != 255 || center.R != 0 {
		t.Errorf("Expected green texture, got %v", center)
	}
}

func TestMakeSoftTexture_ZeroSize(t *testing.T) {
	if img := MakeSoftCircle(0, color.RGBA{}, 255, 0); !img.Bounds().Empty() {
		t.Error("Expected empty circle for size 0")
	}
	if img := MakeSoftSquare(0, color.RGBA{}, 255, 0); !img.Bounds().Empty() {
		t.Error("Expected empty square for size 0")
	}
}
