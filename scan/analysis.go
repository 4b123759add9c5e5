package scan

import (
	"fmt"
	"math"
)

// FeatureScaleAnalysis summarises the spread of each feature across a set of
// extracted vectors. Useful when tuning or sanity-checking the rule
// thresholds against a corpus of sample scans.
type FeatureScaleAnalysis struct {
	FeatureNames []string
	MinValues    []float64
	MaxValues    []float64
	MeanValues   []float64
	StdValues    []float64
}

// RuleFiringStats records how often each of a category's rules fired across a
// set of feature vectors.
type RuleFiringStats struct {
	Category string
	Fired    []int
	Samples  int
}

// AnalyzeFeatureScales examines a set of feature vectors to understand the
// observed range of every feature.
func AnalyzeFeatureScales(vectors []FeatureVector) FeatureScaleAnalysis {
	if len(vectors) == 0 {
		return FeatureScaleAnalysis{}
	}

	names := featureNames()
	featureCount := len(names)
	analysis := FeatureScaleAnalysis{
		FeatureNames: names,
		MinValues:    make([]float64, featureCount),
		MaxValues:    make([]float64, featureCount),
		MeanValues:   make([]float64, featureCount),
		StdValues:    make([]float64, featureCount),
	}

	for i := range analysis.MinValues {
		analysis.MinValues[i] = math.MaxFloat64
		analysis.MaxValues[i] = -math.MaxFloat64
	}

	for _, fv := range vectors {
		for i, val := range fv.values() {
			if val < analysis.MinValues[i] {
				analysis.MinValues[i] = val
			}
			if val > analysis.MaxValues[i] {
				analysis.MaxValues[i] = val
			}
			analysis.MeanValues[i] += val
		}
	}
	for i := range analysis.MeanValues {
		analysis.MeanValues[i] /= float64(len(vectors))
	}

	for _, fv := range vectors {
		for i, val := range fv.values() {
			diff := val - analysis.MeanValues[i]
			analysis.StdValues[i] += diff * diff
		}
	}
	for i := range analysis.StdValues {
		analysis.StdValues[i] = math.Sqrt(analysis.StdValues[i] / float64(len(vectors)))
	}

	return analysis
}

// CountRuleFirings evaluates the rule table over a set of vectors and counts
// how often each rule fired per category.
func CountRuleFirings(vectors []FeatureVector) []RuleFiringStats {
	stats := make([]RuleFiringStats, len(categories))
	for i, cat := range categories {
		stats[i] = RuleFiringStats{
			Category: cat.Name,
			Fired:    make([]int, len(cat.Rules)),
			Samples:  len(vectors),
		}
	}

	for _, fv := range vectors {
		for i, cat := range categories {
			for j, rule := range cat.Rules {
				if rule.Match(fv) {
					stats[i].Fired[j]++
				}
			}
		}
	}
	return stats
}

// PrintFeatureScaleReport prints a formatted table of feature scales.
func (f *FeatureScaleAnalysis) PrintFeatureScaleReport() {
	fmt.Println("\n=== Feature Scale Analysis ===")
	fmt.Printf("%-20s %12s %12s %12s %12s\n", "Feature", "Min", "Max", "Mean", "Std")
	fmt.Println("----------------------------------------------------------------------")

	for i, name := range f.FeatureNames {
		if i >= len(f.MinValues) {
			break
		}
		fmt.Printf("%-20s %12.4f %12.4f %12.4f %12.4f\n",
			name, f.MinValues[i], f.MaxValues[i], f.MeanValues[i], f.StdValues[i])
	}
	fmt.Println()
}

func featureNames() []string {
	return []string{
		"Aspect Ratio",
		"Mean Intensity",
		"Std Intensity",
		"Median Intensity",
		"Entropy",
		"Laplacian Variance",
		"Edge Density",
		"Dark Ratio",
		"Bright Ratio",
		"Contrast",
	}
}

// values flattens the scalar features in the order reported by featureNames.
func (fv FeatureVector) values() []float64 {
	return []float64{
		fv.AspectRatio,
		fv.MeanIntensity,
		fv.StdIntensity,
		fv.MedianIntensity,
		fv.Entropy,
		fv.LaplacianVar,
		fv.EdgeDensity,
		fv.DarkRatio,
		fv.BrightRatio,
		fv.Contrast,
	}
}
