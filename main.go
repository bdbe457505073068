package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	var baseDir, captureURL string
	if len(os.Args) > 1 {
		baseDir = os.Args[1]
	}
	if len(os.Args) > 2 {
		captureURL = os.Args[2]
	}
	if baseDir == "" {
		baseDir = defaultBaseDir()
	}

	generator := NewGenerator(baseDir)

	if captureURL != "" {
		if err := generator.CaptureAll(captureURL); err != nil {
			fmt.Println("❌ Capture aborted:", err)
		}
	}

	results := generator.ProcessAll()
	printSummary(results)

	// Failures are reported in the summary only; the batch always exits 0.
}

// defaultBaseDir falls back to the executable's own directory, matching the
// behavior when no base directory argument is given.
func defaultBaseDir() string {
	execPath, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(execPath)
}

// printSummary reports every per-screenshot outcome after the batch.
func printSummary(results []Result) {
	var written, skipped, failed int
	for _, r := range results {
		switch r.Status {
		case StatusWritten:
			written++
		case StatusSkipped:
			skipped++
		case StatusFailed:
			failed++
		}
	}

	fmt.Println("\n🎉 Screenshot overlay generation complete!")
	fmt.Printf("📁 %d written, %d skipped, %d failed (of %d)\n", written, skipped, failed, len(results))

	for _, r := range results {
		switch r.Status {
		case StatusSkipped:
			fmt.Printf("⚠️  skipped %s/%s: %s\n", r.Device, r.Filename, r.Reason)
		case StatusFailed:
			fmt.Printf("❌ failed  %s/%s: %s\n", r.Device, r.Filename, r.Reason)
		}
	}
}
