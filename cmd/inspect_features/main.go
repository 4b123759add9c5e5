package main

import (
	"fmt"
	"log"
	"os"

	"scan-recognition/imaging"
	"scan-recognition/scan"
)

// Print the full feature vector and the resulting score distribution for one
// image. Useful when checking why a sample lands in a given modality.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run main.go <path-to-image>")
	}

	img, err := imaging.LoadFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to load image: %v", err)
	}

	fv := scan.ExtractFeatureVector(img)

	fmt.Println("=== Feature Vector ===")
	fmt.Printf("%-20s %dx%d\n", "Resolution", fv.Width, fv.Height)
	fmt.Printf("%-20s %.4f\n", "Aspect Ratio", fv.AspectRatio)
	fmt.Printf("%-20s %.4f\n", "Mean Intensity", fv.MeanIntensity)
	fmt.Printf("%-20s %.4f\n", "Std Intensity", fv.StdIntensity)
	fmt.Printf("%-20s %.4f\n", "Median Intensity", fv.MedianIntensity)
	fmt.Printf("%-20s %.4f\n", "Entropy", fv.Entropy)
	fmt.Printf("%-20s %.4f\n", "Laplacian Variance", fv.LaplacianVar)
	fmt.Printf("%-20s %.6f\n", "Edge Density", fv.EdgeDensity)
	fmt.Printf("%-20s %.4f\n", "Dark Ratio", fv.DarkRatio)
	fmt.Printf("%-20s %.4f\n", "Bright Ratio", fv.BrightRatio)
	fmt.Printf("%-20s %.4f\n", "Contrast", fv.Contrast)

	result := scan.ClassifyFeatures(fv)

	fmt.Println("\n=== Classification ===")
	fmt.Printf("Best: %s (%.1f%%)\n", result.ScanType, result.Confidence)
	for _, score := range result.AllScores {
		fmt.Printf("  %-12s %6.1f%%\n", score.Category, score.Confidence)
	}
}
