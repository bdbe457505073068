package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	metadataFilename = "screenshot_metadata.json"
	rawDirName       = "Raw"
	processedDirName = "Processed"
)

// Layout constants shared by every category.
const (
	textMarginFrac     = 0.05 // left margin for all text passes
	gradientHeightFrac = 0.3  // main menu gradient band height
	gradientOpacity    = 0.4
	subtitleGap        = 10 // pixels between title baseline box and subtitle
	titleStrokeWidth   = 2
	footerStrokeWidth  = 1
)

// subtitleFrac applies to the one subtitle pass (main menu).
var subtitleFrac = Frac{Phone: 0.045, Tablet: 0.035}

// Status classifies one screenshot attempt.
type Status int

const (
	StatusWritten Status = iota
	StatusSkipped
	StatusFailed
)

// Result records the outcome of one device/category combination.
type Result struct {
	Device   string
	Filename string
	Status   Status
	Reason   string
}

// Generator drives the overlay batch for one base directory.
type Generator struct {
	BaseDir string

	// Metadata is loaded once from the sidecar JSON file for compatibility
	// with the capture tooling; no overlay routine consults it.
	Metadata map[string]any
}

// NewGenerator loads the metadata sidecar and prepares a batch run. A missing
// or unreadable metadata file is logged and treated as empty.
func NewGenerator(baseDir string) *Generator {
	return &Generator{
		BaseDir:  baseDir,
		Metadata: loadMetadata(filepath.Join(baseDir, metadataFilename)),
	}
}

func loadMetadata(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("❌ Metadata file not found:", path)
		return map[string]any{}
	}
	meta := map[string]any{}
	if err := json.Unmarshal(data, &meta); err != nil {
		fmt.Printf("❌ Metadata file unreadable: %s: %v\n", path, err)
		return map[string]any{}
	}
	return meta
}

// fontSizePx converts a fraction-of-width into a rounded pixel size.
func fontSizePx(width int, frac float64) int {
	return int(math.Round(float64(width) * frac))
}

// processScreenshot applies one category's overlay passes to a single raw
// screenshot and writes the result. The output always keeps the input's
// pixel dimensions; only pixel values change.
func (g *Generator) processScreenshot(rawPath, outPath string, dev DeviceParams, cat Category) error {
	src, err := imaging.Open(rawPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", rawPath, err)
	}

	canvas := imaging.Clone(src)
	width := canvas.Bounds().Dx()
	height := canvas.Bounds().Dy()
	marginX := int(float64(width) * textMarginFrac)

	if cat.Gradient {
		canvas = DrawGradient(canvas, ParseHexColor(AppStoreBlack), image.Pt(0, 0),
			width, int(float64(height)*gradientHeightFrac), gradientOpacity)
	}

	titleSize := fontSizePx(width, cat.TitleFrac.For(dev.Tier))
	titleY := int(float64(height) * cat.TitleY)
	DrawText(canvas, cat.Title, image.Pt(marginX, titleY), titleSize,
		ParseHexColor(cat.TitleColor), WeightBold, titleStrokeWidth, ParseHexColor(cat.TitleStroke))

	if cat.Subtitle != "" {
		subSize := fontSizePx(width, subtitleFrac.For(dev.Tier))
		DrawText(canvas, cat.Subtitle, image.Pt(marginX, titleY+titleSize+subtitleGap), subSize,
			ParseHexColor(cat.SubtitleColor), WeightRegular, footerStrokeWidth, ParseHexColor(AppStoreBlack))
	}

	footerSize := fontSizePx(width, cat.FooterFrac.For(dev.Tier))
	footerY := int(float64(height) * cat.FooterY)
	DrawText(canvas, cat.Footer, image.Pt(marginX, footerY), footerSize,
		ParseHexColor(cat.FooterColor), WeightRegular, footerStrokeWidth, ParseHexColor(AppStoreBlack))

	if err := imaging.Save(canvas, outPath, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
		return fmt.Errorf("save %s: %w", outPath, err)
	}
	return nil
}

// skipDevice marks all six categories of a device as skipped with one reason.
func skipDevice(dev DeviceParams, reason string) []Result {
	results := make([]Result, 0, len(Categories))
	for _, cat := range Categories {
		results = append(results, Result{
			Device:   dev.Name,
			Filename: cat.Filename,
			Status:   StatusSkipped,
			Reason:   reason,
		})
	}
	return results
}

// processDevice runs the six category passes for one device. Missing inputs
// and per-screenshot failures are logged and recorded; nothing escapes.
func (g *Generator) processDevice(dev DeviceParams) []Result {
	rawDir := filepath.Join(g.BaseDir, dev.Dir, rawDirName)
	processedDir := filepath.Join(g.BaseDir, dev.Dir, processedDirName)

	if _, err := os.Stat(rawDir); err != nil {
		fmt.Println("⚠️  Raw directory not found:", rawDir)
		return skipDevice(dev, "raw directory missing")
	}
	if err := os.MkdirAll(processedDir, 0o755); err != nil {
		fmt.Println("⚠️  Cannot create processed directory:", processedDir)
		return skipDevice(dev, "processed directory: "+err.Error())
	}

	var results []Result
	for _, cat := range Categories {
		rawPath := filepath.Join(rawDir, cat.Filename)
		outPath := filepath.Join(processedDir, cat.Filename)

		if _, err := os.Stat(rawPath); err != nil {
			fmt.Println("⚠️  Screenshot not found:", rawPath)
			results = append(results, Result{Device: dev.Name, Filename: cat.Filename, Status: StatusSkipped, Reason: "raw screenshot missing"})
			continue
		}

		fmt.Printf("%s Processing %s screenshot: %s\n", cat.Emoji, cat.Label, dev.Name)
		if err := g.processScreenshot(rawPath, outPath, dev, cat); err != nil {
			fmt.Printf("❌ Error processing %s: %v\n", rawPath, err)
			results = append(results, Result{Device: dev.Name, Filename: cat.Filename, Status: StatusFailed, Reason: err.Error()})
			continue
		}
		fmt.Println("✅ Saved:", outPath)
		results = append(results, Result{Device: dev.Name, Filename: cat.Filename, Status: StatusWritten})
	}
	return results
}

// ProcessAll runs every device in the fixed order and returns every outcome.
// No failure aborts the batch.
func (g *Generator) ProcessAll() []Result {
	fmt.Println("🇷🇴 Starting Romanian Septica Screenshot Overlay Generation")
	fmt.Println("=========================================================")

	var results []Result
	for _, dev := range Devices {
		fmt.Printf("\n📱 Processing %s...\n", dev.Name)
		results = append(results, g.processDevice(dev)...)
	}
	return results
}
