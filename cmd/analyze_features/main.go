package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"scan-recognition/imaging"
	"scan-recognition/scan"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// Extract feature vectors for every image in a directory, then print the
// observed feature scales and per-category rule firing counts. Helps verify
// that rule thresholds sit inside the ranges a sample corpus actually covers.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run main.go <directory>")
	}

	dir := os.Args[1]
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("failed to read directory: %v", err)
	}

	var vectors []scan.FeatureVector
	for _, entry := range entries {
		if entry.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		img, err := imaging.LoadFile(path)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			continue
		}
		vectors = append(vectors, scan.ExtractFeatureVector(img))
	}

	if len(vectors) == 0 {
		log.Fatal("no readable images found")
	}

	analysis := scan.AnalyzeFeatureScales(vectors)
	analysis.PrintFeatureScaleReport()

	fmt.Println("=== Rule Firing Counts ===")
	for _, stats := range scan.CountRuleFirings(vectors) {
		fmt.Printf("%-12s", stats.Category)
		for i, fired := range stats.Fired {
			fmt.Printf("  rule%d: %d/%d", i+1, fired, stats.Samples)
		}
		fmt.Println()
	}
}
