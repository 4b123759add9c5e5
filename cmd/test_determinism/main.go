package main

import (
	"fmt"
	"log"
	"os"
	"reflect"

	"scan-recognition/imaging"
	"scan-recognition/scan"
)

// Test if feature extraction and classification are deterministic
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run main.go <path-to-image>")
	}

	testFile := os.Args[1]
	log.Printf("Testing determinism with: %s\n", testFile)

	img, err := imaging.LoadFile(testFile)
	if err != nil {
		log.Fatalf("failed to load image: %v", err)
	}

	const numRuns = 5
	var vectors []scan.FeatureVector
	var results []scan.ClassificationResult

	for i := 0; i < numRuns; i++ {
		fv := scan.ExtractFeatureVector(img)
		vectors = append(vectors, fv)
		results = append(results, scan.ClassifyFeatures(fv))
		log.Printf("Run %d: mean=%.10f std=%.10f entropy=%.10f laplacian=%.10f edges=%.10f",
			i+1, fv.MeanIntensity, fv.StdIntensity, fv.Entropy, fv.LaplacianVar, fv.EdgeDensity)
	}

	fmt.Println("\n=== Determinism Check ===")
	allIdentical := true
	for i := 1; i < numRuns; i++ {
		if vectors[i] != vectors[0] {
			allIdentical = false
			fmt.Printf("Feature vector differs between run 1 and run %d:\n  %+v\n  %+v\n",
				i+1, vectors[0], vectors[i])
		}
		if !reflect.DeepEqual(results[i], results[0]) {
			allIdentical = false
			fmt.Printf("Classification result differs between run 1 and run %d\n", i+1)
		}
	}

	if allIdentical {
		fmt.Println("All runs produced IDENTICAL results (deterministic)")
		fmt.Printf("Best: %s (%.1f%%)\n", results[0].ScanType, results[0].Confidence)
	} else {
		fmt.Println("Pipeline is NON-DETERMINISTIC; repeated calls must be bit-identical")
		os.Exit(1)
	}
}
