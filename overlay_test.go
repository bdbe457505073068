package main

import (
	"image"
	"image/color"
	"testing"
)

func solidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func countDiffering(a, b *image.NRGBA) int {
	n := 0
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			n++
		}
	}
	return n
}

func TestParseHexColor(t *testing.T) {
	black := color.NRGBA{A: 0xff}
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#004C9F", color.NRGBA{R: 0x00, G: 0x4C, B: 0x9F, A: 0xff}},
		{"FCD535", color.NRGBA{R: 0xFC, G: 0xD5, B: 0x35, A: 0xff}},
		{"#CE1126", color.NRGBA{R: 0xCE, G: 0x11, B: 0x26, A: 0xff}},
		{"#FFFFFF", color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xff}},
		{"", black},
		{"#12345", black},
		{"#GGGGGG", black},
	}
	for _, tt := range tests {
		if got := ParseHexColor(tt.in); got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDrawGradientAlphaEndpoints(t *testing.T) {
	base := solidNRGBA(64, 100, color.NRGBA{A: 0xff})
	out := DrawGradient(base, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, image.Pt(0, 0), 64, 100, 0.4)

	if got, want := out.Bounds(), base.Bounds(); got != want {
		t.Fatalf("bounds changed: got %v, want %v", got, want)
	}

	// Top row: white at alpha 0.4 over black blends to ~102 per channel.
	top := out.NRGBAAt(10, 0)
	if d := int(top.R) - 102; d < -2 || d > 2 {
		t.Errorf("top row R = %d, want ~102", top.R)
	}

	// Bottom row: fully transparent, base shows through unchanged.
	bottom := out.NRGBAAt(10, 99)
	if bottom.R != 0 || bottom.G != 0 || bottom.B != 0 {
		t.Errorf("bottom row = %v, want untouched black", bottom)
	}
}

func TestDrawGradientLeavesRestUntouched(t *testing.T) {
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	base := solidNRGBA(40, 80, white)
	out := DrawGradient(base, color.NRGBA{A: 0xff}, image.Pt(0, 0), 40, 40, 0.8)

	if got := out.NRGBAAt(20, 60); got != white {
		t.Errorf("pixel below gradient region = %v, want %v", got, white)
	}
	if got := out.NRGBAAt(20, 0); got == white {
		t.Error("top row unchanged, gradient not applied")
	}
}

func TestDrawGradientZeroSizeNoop(t *testing.T) {
	base := solidNRGBA(10, 10, color.NRGBA{R: 0x80, A: 0xff})
	if out := DrawGradient(base, color.NRGBA{A: 0xff}, image.Pt(0, 0), 0, 10, 0.5); out != base {
		t.Error("zero-width gradient should return the input image")
	}
	if out := DrawGradient(base, color.NRGBA{A: 0xff}, image.Pt(0, 0), 10, 10, 0); out != base {
		t.Error("zero-opacity gradient should return the input image")
	}
}

func TestDrawTextMarksPixels(t *testing.T) {
	gray := color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	img := solidNRGBA(300, 60, gray)
	ref := solidNRGBA(300, 60, gray)

	out := DrawText(img, "Hello", image.Pt(10, 10), 24, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, WeightRegular, 0, color.NRGBA{})
	if out != img {
		t.Fatal("DrawText must mutate and return the passed image")
	}
	if countDiffering(img, ref) == 0 {
		t.Error("no pixels changed, text was not drawn")
	}
}

func TestDrawTextStrokeAddsOutline(t *testing.T) {
	gray := color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black := color.NRGBA{A: 0xff}
	ref := solidNRGBA(300, 60, gray)

	plain := solidNRGBA(300, 60, gray)
	DrawText(plain, "Hello", image.Pt(10, 10), 24, white, WeightBold, 0, color.NRGBA{})

	stroked := solidNRGBA(300, 60, gray)
	DrawText(stroked, "Hello", image.Pt(10, 10), 24, white, WeightBold, 2, black)

	if countDiffering(stroked, ref) <= countDiffering(plain, ref) {
		t.Error("stroked text should ink more pixels than plain text")
	}
}

func TestDrawTextEmptyNoop(t *testing.T) {
	gray := color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	img := solidNRGBA(50, 20, gray)
	ref := solidNRGBA(50, 20, gray)

	DrawText(img, "", image.Pt(5, 5), 12, color.NRGBA{A: 0xff}, WeightRegular, 0, color.NRGBA{})
	DrawText(img, "x", image.Pt(5, 5), 0, color.NRGBA{A: 0xff}, WeightRegular, 0, color.NRGBA{})
	if countDiffering(img, ref) != 0 {
		t.Error("empty text or zero size must leave the image unchanged")
	}
}

func TestLoadFontNeverNil(t *testing.T) {
	// Whatever the host has installed, the embedded fallback guarantees a font.
	if loadFont(WeightRegular) == nil {
		t.Error("regular font is nil")
	}
	if loadFont(WeightBold) == nil {
		t.Error("bold font is nil")
	}
}
