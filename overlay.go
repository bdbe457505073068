package main

import (
	"image"
	"image/color"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontWeight selects between the regular and bold text faces.
type FontWeight int

const (
	WeightRegular FontWeight = iota
	WeightBold
)

var (
	fontMu    sync.Mutex
	fontCache = map[FontWeight]*opentype.Font{}
)

// systemFontPaths returns the fixed per-OS font files to probe for a weight.
func systemFontPaths(weight FontWeight) []string {
	switch runtime.GOOS {
	case "darwin":
		if weight == WeightBold {
			return []string{
				"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
				"/Library/Fonts/Arial Bold.ttf",
			}
		}
		return []string{
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"/Library/Fonts/Arial.ttf",
			"/System/Library/Fonts/Helvetica.ttc",
			"/System/Library/Fonts/Geneva.ttf",
		}
	case "linux":
		if weight == WeightBold {
			return []string{
				"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
				"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
			}
		}
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		}
	case "windows":
		if weight == WeightBold {
			return []string{`C:\Windows\Fonts\arialbd.ttf`}
		}
		return []string{`C:\Windows\Fonts\arial.ttf`}
	}
	return nil
}

// parseFontFile parses one font file; .ttc collections yield their first font.
func parseFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(strings.ToLower(path), ".ttc") {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		return coll.Font(0)
	}
	return opentype.Parse(data)
}

// loadFont returns the first parseable system font for the weight, falling
// back to the embedded Go fonts. It never fails: any probe error is swallowed
// and the embedded font substituted.
func loadFont(weight FontWeight) *opentype.Font {
	fontMu.Lock()
	defer fontMu.Unlock()

	if parsed, ok := fontCache[weight]; ok {
		return parsed
	}

	var parsed *opentype.Font
	for _, path := range systemFontPaths(weight) {
		if p, err := parseFontFile(path); err == nil {
			parsed = p
			break
		}
	}
	if parsed == nil {
		data := goregular.TTF
		if weight == WeightBold {
			data = gobold.TTF
		}
		parsed, _ = opentype.Parse(data)
	}

	fontCache[weight] = parsed
	return parsed
}

// DrawText renders text with its top-left corner at pos, in the given pixel
// size, weight and color. When stroke > 0 and strokeCol is visible, the text
// is first repeated at every offset within the stroke radius in strokeCol so
// the fill ends up outlined. The image is mutated in place and returned for
// chaining; font trouble never surfaces as an error.
func DrawText(img *image.NRGBA, text string, pos image.Point, size int, col color.NRGBA, weight FontWeight, stroke int, strokeCol color.NRGBA) *image.NRGBA {
	if text == "" || size <= 0 {
		return img
	}

	parsed := loadFont(weight)
	if parsed == nil {
		return img
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return img
	}
	defer face.Close()

	// The drawer's dot sits on the baseline; shift by the ascent so pos
	// addresses the top-left corner of the rendered line.
	ascent := face.Metrics().Ascent.Ceil()
	drawPass := func(c color.NRGBA, dx, dy int) {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: face,
			Dot:  fixed.P(pos.X+dx, pos.Y+ascent+dy),
		}
		d.DrawString(text)
	}

	if stroke > 0 && strokeCol.A > 0 {
		for dy := -stroke; dy <= stroke; dy++ {
			for dx := -stroke; dx <= stroke; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				drawPass(strokeCol, dx, dy)
			}
		}
	}
	drawPass(col, 0, 0)

	return img
}

// DrawGradient composites a vertical fade of col over the region at pos:
// the top row carries opacity, the bottom row is fully transparent, and the
// rows in between are quantized to 1-pixel bands. The blended result is
// returned as a new flattened image with the same bounds as img.
func DrawGradient(img *image.NRGBA, col color.NRGBA, pos image.Point, width, height int, opacity float64) *image.NRGBA {
	if width <= 0 || height <= 0 || opacity <= 0 {
		return img
	}

	layer := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		fade := 1.0
		if height > 1 {
			fade = 1 - float64(y)/float64(height-1)
		}
		row := color.NRGBA{R: col.R, G: col.G, B: col.B, A: uint8(math.Round(opacity * 255 * fade))}
		for x := 0; x < width; x++ {
			layer.SetNRGBA(x, y, row)
		}
	}

	return imaging.Overlay(img, layer, pos, 1.0)
}

// ParseHexColor converts a "#RRGGBB" (or bare "RRGGBB") triplet to an opaque
// NRGBA. Invalid input yields opaque black rather than an error so a bad
// constant can never abort a batch.
func ParseHexColor(s string) color.NRGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.NRGBA{A: 0xff}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
