package scan

// Feature Extraction Pipeline
//
// This package implements deterministic feature extraction for scan modality
// classification. The system derives 10 scalar statistics from a grayscale
// pixel grid:
//
// Geometry:
//   - Aspect Ratio: width / height (1.0 for zero-area input)
//
// Intensity Statistics:
//   - Mean Intensity: arithmetic mean of pixel values
//   - Std Intensity: population standard deviation of pixel values
//   - Median Intensity: 50th-percentile pixel value
//   - Dark Ratio: fraction of pixels below intensity 50
//   - Bright Ratio: fraction of pixels above intensity 200
//   - Contrast: 95th minus 5th percentile, a robust intensity range
//
// Distribution Features:
//   - Entropy: Shannon entropy (base 2) of the 256-bin intensity histogram,
//     normalised to a probability distribution, zero-probability bins excluded
//
// Texture Features:
//   - Laplacian Variance: variance of the second-derivative response,
//     a sharpness/texture proxy (higher = sharper, more textured)
//   - Edge Density: fraction of pixels flagged by a dual-threshold
//     gradient edge detector (thresholds 50/150)
//
// All thresholds are fixed constants of the design. Extraction is a pure
// function of the pixel grid: no I/O, no randomness, no shared state, so two
// calls on the same image always produce bit-identical vectors.

import (
	"math"

	"scan-recognition/imaging"
)

const (
	darkIntensityLimit     = 50
	brightIntensityLimit   = 200
	contrastLowPercentile  = 5
	contrastHighPercentile = 95
	edgeLowThreshold       = 50
	edgeHighThreshold      = 150
)

// ExtractFeatureVector derives the full scalar descriptor for a grayscale image.
func ExtractFeatureVector(img *imaging.Grayscale) FeatureVector {
	fv := FeatureVector{
		Width:       img.Width,
		Height:      img.Height,
		AspectRatio: 1.0,
	}
	if img.Height > 0 {
		fv.AspectRatio = float64(img.Width) / float64(img.Height)
	}

	total := img.Width * img.Height
	if total == 0 {
		return fv
	}

	hist := intensityHistogram(img.Pix)

	fv.MeanIntensity, fv.StdIntensity = intensityMoments(hist, total)
	fv.MedianIntensity = percentileFromHistogram(hist, total, 50)
	fv.Entropy = shannonEntropy(hist, total)
	fv.LaplacianVar = laplacianVariance(img)
	fv.EdgeDensity = edgeDensity(img, edgeLowThreshold, edgeHighThreshold)
	fv.DarkRatio = intensityFractionBelow(hist, total, darkIntensityLimit)
	fv.BrightRatio = intensityFractionAbove(hist, total, brightIntensityLimit)

	p5 := percentileFromHistogram(hist, total, contrastLowPercentile)
	p95 := percentileFromHistogram(hist, total, contrastHighPercentile)
	fv.Contrast = p95 - p5

	return fv
}

// intensityHistogram counts pixels per intensity value, 0 through 255.
func intensityHistogram(pix []uint8) [256]int {
	var hist [256]int
	for _, v := range pix {
		hist[v]++
	}
	return hist
}

// intensityMoments computes mean and population standard deviation from the
// histogram in a single pass each.
func intensityMoments(hist [256]int, total int) (mean, std float64) {
	var sum float64
	for value, count := range hist {
		sum += float64(value) * float64(count)
	}
	mean = sum / float64(total)

	var variance float64
	for value, count := range hist {
		diff := float64(value) - mean
		variance += diff * diff * float64(count)
	}
	std = math.Sqrt(variance / float64(total))
	return mean, std
}

// shannonEntropy computes base-2 entropy of the normalised histogram. Bins
// with zero probability contribute nothing to the sum.
func shannonEntropy(hist [256]int, total int) float64 {
	var entropy float64
	for _, count := range hist {
		if count == 0 {
			continue
		}
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// intensityFractionBelow returns the fraction of pixels with intensity
// strictly below the limit.
func intensityFractionBelow(hist [256]int, total int, limit int) float64 {
	var count int
	for value := 0; value < limit && value < len(hist); value++ {
		count += hist[value]
	}
	return float64(count) / float64(total)
}

// intensityFractionAbove returns the fraction of pixels with intensity
// strictly above the limit.
func intensityFractionAbove(hist [256]int, total int, limit int) float64 {
	var count int
	for value := limit + 1; value < len(hist); value++ {
		count += hist[value]
	}
	return float64(count) / float64(total)
}

// percentileFromHistogram evaluates the p-th percentile using linear
// interpolation between order statistics, matching the conventional
// rank = p/100 * (n-1) formulation.
func percentileFromHistogram(hist [256]int, total int, p float64) float64 {
	if total == 0 {
		return 0
	}
	if p <= 0 {
		return valueAtOrder(hist, 0)
	}
	if p >= 100 {
		return valueAtOrder(hist, total-1)
	}

	rank := p / 100 * float64(total-1)
	lower := int(math.Floor(rank))
	frac := rank - float64(lower)

	low := valueAtOrder(hist, lower)
	if frac == 0 {
		return low
	}
	high := valueAtOrder(hist, lower+1)
	return low + frac*(high-low)
}

// valueAtOrder returns the k-th smallest intensity (0-based) implied by the
// histogram, without materialising the sorted pixel array.
func valueAtOrder(hist [256]int, k int) float64 {
	cumulative := 0
	for value, count := range hist {
		cumulative += count
		if cumulative > k {
			return float64(value)
		}
	}
	return 255
}

// laplacianVariance measures sharpness as the population variance of the
// second-derivative response.
func laplacianVariance(img *imaging.Grayscale) float64 {
	response := laplacianResponse(img)
	if len(response) == 0 {
		return 0
	}

	var sum float64
	for _, v := range response {
		sum += v
	}
	mean := sum / float64(len(response))

	var variance float64
	for _, v := range response {
		diff := v - mean
		variance += diff * diff
	}
	return variance / float64(len(response))
}

// edgeDensity runs the dual-threshold edge detector and returns the fraction
// of pixels flagged as edges.
func edgeDensity(img *imaging.Grayscale, low, high float64) float64 {
	total := img.Width * img.Height
	if total == 0 {
		return 0
	}

	edges := detectEdges(img, low, high)
	edgeCount := 0
	for _, isEdge := range edges {
		if isEdge {
			edgeCount++
		}
	}
	return float64(edgeCount) / float64(total)
}

// roundTo rounds to the given number of decimal places, half away from zero.
func roundTo(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(value*scale) / scale
}
