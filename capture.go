package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/chromedp/chromedp"
)

// detectBrowserPath probes the usual install locations for a Chromium-based
// browser (Edge / Chrome / Chromium).
func detectBrowserPath() (string, error) {
	var paths []string
	switch runtime.GOOS {
	case "windows":
		paths = []string{
			filepath.Join(os.Getenv("PROGRAMFILES(X86)"), "Microsoft", "Edge", "Application", "msedge.exe"),
			filepath.Join(os.Getenv("PROGRAMFILES"), "Microsoft", "Edge", "Application", "msedge.exe"),
			filepath.Join(os.Getenv("PROGRAMFILES(X86)"), "Google", "Chrome", "Application", "chrome.exe"),
			filepath.Join(os.Getenv("PROGRAMFILES"), "Google", "Chrome", "Application", "chrome.exe"),
		}
	case "darwin":
		paths = []string{
			"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge",
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		}
	case "linux":
		paths = []string{
			"/usr/bin/microsoft-edge",
			"/usr/bin/google-chrome",
			"/usr/bin/chromium-browser",
			"/usr/bin/chromium",
		}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("no Chromium-based browser found (Chrome / Edge)")
}

// CaptureAll captures raw screenshots for every device from a running web
// build of the app: one page anchor per category, rendered at the device's
// viewport and written into that device's Raw directory. A failing device is
// logged and skipped; the overlay batch still runs off whatever was written.
func (g *Generator) CaptureAll(url string) error {
	browserPath, err := detectBrowserPath()
	if err != nil {
		return fmt.Errorf("browser path: %w", err)
	}
	fmt.Println("🔍 Using browser:", browserPath)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(browserPath),
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Headless,
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancel()

	for _, dev := range Devices {
		if err := g.captureDevice(allocCtx, url, dev); err != nil {
			fmt.Printf("❌ Capture failed (%s): %v\n", dev.Name, err)
			continue
		}
		fmt.Println("🖼️ Capture complete (" + dev.Name + ")")
	}
	return nil
}

// captureDevice shoots all six category anchors at one device's viewport.
func (g *Generator) captureDevice(allocCtx context.Context, url string, dev DeviceParams) error {
	rawDir := filepath.Join(g.BaseDir, dev.Dir, rawDirName)
	if err := os.MkdirAll(rawDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", rawDir, err)
	}

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	for _, cat := range Categories {
		var buf []byte
		err := chromedp.Run(ctx,
			chromedp.EmulateViewport(int64(dev.ScreenW), int64(dev.ScreenH)),
			chromedp.Navigate(url+"#"+cat.Anchor),
			chromedp.Sleep(3*time.Second),
			chromedp.WaitVisible("body", chromedp.ByQuery),
			chromedp.CaptureScreenshot(&buf),
		)
		if err != nil {
			return fmt.Errorf("capture %s: %w", cat.Filename, err)
		}
		if err := os.WriteFile(filepath.Join(rawDir, cat.Filename), buf, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", cat.Filename, err)
		}
	}
	return nil
}
